package model

// QuestionID uniquely identifies a question in the pool
type QuestionID string

// Difficulty bounds for questions and spins
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// OptionCount is the fixed number of answer options per question
const OptionCount = 4

// Question is a trivia question with exactly one correct option.
// Difficulty determines steps-on-correct for the acting player.
type Question struct {
	ID           QuestionID
	Text         string
	Options      [OptionCount]string
	CorrectIndex int
	Difficulty   int // 1..5
	Category     string
}

// IsCorrect reports whether the given option index is the correct answer
func (q *Question) IsCorrect(optionIndex int) bool {
	return optionIndex == q.CorrectIndex
}
