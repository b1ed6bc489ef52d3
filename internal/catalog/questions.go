package catalog

import "github.com/starchase/starchase-go/internal/model"

// Category names used by the built-in bank and default settings
const (
	CategoryScience       = "science"
	CategoryHistory       = "history"
	CategoryGeography     = "geography"
	CategorySports        = "sports"
	CategoryEntertainment = "entertainment"
)

// Categories returns all built-in category names
func Categories() []string {
	return []string{
		CategoryScience,
		CategoryHistory,
		CategoryGeography,
		CategorySports,
		CategoryEntertainment,
	}
}

// BuiltinQuestions returns the deterministic fallback question bank, used
// when no external question provider is configured or the provider fails.
// Every category carries one question per difficulty.
func BuiltinQuestions() []model.Question {
	return []model.Question{
		// Science
		{ID: "sci-1", Text: "What planet is known as the Red Planet?", Options: [4]string{"Venus", "Mars", "Jupiter", "Mercury"}, CorrectIndex: 1, Difficulty: 1, Category: CategoryScience},
		{ID: "sci-2", Text: "What gas do plants absorb from the atmosphere?", Options: [4]string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"}, CorrectIndex: 2, Difficulty: 2, Category: CategoryScience},
		{ID: "sci-3", Text: "What is the chemical symbol for gold?", Options: [4]string{"Go", "Gd", "Au", "Ag"}, CorrectIndex: 2, Difficulty: 3, Category: CategoryScience},
		{ID: "sci-4", Text: "What particle carries a negative charge?", Options: [4]string{"Proton", "Neutron", "Electron", "Photon"}, CorrectIndex: 2, Difficulty: 4, Category: CategoryScience},
		{ID: "sci-5", Text: "What is the most abundant element in the universe?", Options: [4]string{"Helium", "Oxygen", "Carbon", "Hydrogen"}, CorrectIndex: 3, Difficulty: 5, Category: CategoryScience},

		// History
		{ID: "his-1", Text: "Who was the first president of the United States?", Options: [4]string{"Thomas Jefferson", "George Washington", "John Adams", "Abraham Lincoln"}, CorrectIndex: 1, Difficulty: 1, Category: CategoryHistory},
		{ID: "his-2", Text: "In which year did World War II end?", Options: [4]string{"1943", "1944", "1945", "1946"}, CorrectIndex: 2, Difficulty: 2, Category: CategoryHistory},
		{ID: "his-3", Text: "Which empire built the Colosseum?", Options: [4]string{"Greek", "Roman", "Ottoman", "Persian"}, CorrectIndex: 1, Difficulty: 3, Category: CategoryHistory},
		{ID: "his-4", Text: "Who wrote the 95 Theses?", Options: [4]string{"John Calvin", "Martin Luther", "Henry VIII", "Erasmus"}, CorrectIndex: 1, Difficulty: 4, Category: CategoryHistory},
		{ID: "his-5", Text: "Which dynasty preceded the Ming in China?", Options: [4]string{"Qing", "Han", "Yuan", "Song"}, CorrectIndex: 2, Difficulty: 5, Category: CategoryHistory},

		// Geography
		{ID: "geo-1", Text: "What is the largest ocean on Earth?", Options: [4]string{"Atlantic", "Indian", "Arctic", "Pacific"}, CorrectIndex: 3, Difficulty: 1, Category: CategoryGeography},
		{ID: "geo-2", Text: "What is the capital of Australia?", Options: [4]string{"Sydney", "Melbourne", "Canberra", "Perth"}, CorrectIndex: 2, Difficulty: 2, Category: CategoryGeography},
		{ID: "geo-3", Text: "Which river is the longest in the world?", Options: [4]string{"Amazon", "Nile", "Yangtze", "Mississippi"}, CorrectIndex: 1, Difficulty: 3, Category: CategoryGeography},
		{ID: "geo-4", Text: "Which country has the most time zones?", Options: [4]string{"Russia", "USA", "France", "China"}, CorrectIndex: 2, Difficulty: 4, Category: CategoryGeography},
		{ID: "geo-5", Text: "What is the smallest country by area?", Options: [4]string{"Monaco", "Nauru", "Vatican City", "San Marino"}, CorrectIndex: 2, Difficulty: 5, Category: CategoryGeography},

		// Sports
		{ID: "spo-1", Text: "How many players are on a soccer team on the field?", Options: [4]string{"9", "10", "11", "12"}, CorrectIndex: 2, Difficulty: 1, Category: CategorySports},
		{ID: "spo-2", Text: "In which sport is the term 'love' used for zero?", Options: [4]string{"Badminton", "Tennis", "Squash", "Golf"}, CorrectIndex: 1, Difficulty: 2, Category: CategorySports},
		{ID: "spo-3", Text: "How often are the Summer Olympics held?", Options: [4]string{"Every 2 years", "Every 3 years", "Every 4 years", "Every 5 years"}, CorrectIndex: 2, Difficulty: 3, Category: CategorySports},
		{ID: "spo-4", Text: "What is the maximum break in snooker?", Options: [4]string{"140", "147", "150", "155"}, CorrectIndex: 1, Difficulty: 4, Category: CategorySports},
		{ID: "spo-5", Text: "Which country hosted the first FIFA World Cup?", Options: [4]string{"Brazil", "Italy", "Uruguay", "Argentina"}, CorrectIndex: 2, Difficulty: 5, Category: CategorySports},

		// Entertainment
		{ID: "ent-1", Text: "Which instrument has 88 keys?", Options: [4]string{"Organ", "Piano", "Accordion", "Harpsichord"}, CorrectIndex: 1, Difficulty: 1, Category: CategoryEntertainment},
		{ID: "ent-2", Text: "Who painted the Mona Lisa?", Options: [4]string{"Michelangelo", "Raphael", "Leonardo da Vinci", "Donatello"}, CorrectIndex: 2, Difficulty: 2, Category: CategoryEntertainment},
		{ID: "ent-3", Text: "How many films are in the original Star Wars trilogy?", Options: [4]string{"2", "3", "4", "6"}, CorrectIndex: 1, Difficulty: 3, Category: CategoryEntertainment},
		{ID: "ent-4", Text: "Which composer became deaf later in life?", Options: [4]string{"Mozart", "Bach", "Beethoven", "Chopin"}, CorrectIndex: 2, Difficulty: 4, Category: CategoryEntertainment},
		{ID: "ent-5", Text: "What was the first feature-length animated film?", Options: [4]string{"Pinocchio", "Snow White and the Seven Dwarfs", "Fantasia", "Bambi"}, CorrectIndex: 1, Difficulty: 5, Category: CategoryEntertainment},
	}
}
