package model

// Settings is the one-shot configuration consumed at game start
type Settings struct {
	HumanNames       []string
	AutomatedPlayers int
	Categories       []string
	CustomCategory   string
}

// DefaultSettings is the hard-coded fallback used when the provided
// settings are missing or malformed: one human, one automated player,
// all categories.
func DefaultSettings(allCategories []string) Settings {
	return Settings{
		HumanNames:       []string{"Player 1"},
		AutomatedPlayers: 1,
		Categories:       allCategories,
	}
}

// Normalized returns settings safe to bootstrap from, falling back to
// DefaultSettings when the roster would be empty.
func (s Settings) Normalized(allCategories []string) Settings {
	if len(s.HumanNames) == 0 && s.AutomatedPlayers <= 0 {
		return DefaultSettings(allCategories)
	}
	if len(s.Categories) == 0 {
		s.Categories = allCategories
	}
	return s
}
