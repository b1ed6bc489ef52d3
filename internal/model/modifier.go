package model

// ModifierType is the closed set of timed per-player status effects
type ModifierType string

const (
	ModifierDoubleNext     ModifierType = "double_next"
	ModifierShield         ModifierType = "shield"
	ModifierFrozen         ModifierType = "frozen"
	ModifierCategoryMaster ModifierType = "category_master"
)

// PlayerModifier is a timed buff/debuff attached to one player.
// At most one modifier of a given type exists per player.
type PlayerModifier struct {
	PlayerID       PlayerID
	Type           ModifierType
	TurnsRemaining int
	Value          int    // multiplier for double_next
	Category       string // locked category for category_master
}

// ModifierSet tracks active modifiers for all players in a session
type ModifierSet []PlayerModifier

// Add upserts a modifier, replacing any existing entry for the same
// (player, type) pair. The most recent add wins; values are not merged.
func (m *ModifierSet) Add(mod PlayerModifier) {
	m.Remove(mod.PlayerID, mod.Type)
	*m = append(*m, mod)
}

// Remove drops the modifier of the given type for the player, if present
func (m *ModifierSet) Remove(playerID PlayerID, t ModifierType) {
	mods := *m
	for i, mod := range mods {
		if mod.PlayerID == playerID && mod.Type == t {
			*m = append(mods[:i], mods[i+1:]...)
			return
		}
	}
}

// Tick decrements TurnsRemaining on every entry and drops expired ones.
// Called exactly once per completed turn, not per sub-phase. Frozen
// modifiers are exempt: they are removed the instant they cause a skip.
func (m *ModifierSet) Tick() {
	kept := (*m)[:0]
	for _, mod := range *m {
		if mod.Type == ModifierFrozen {
			kept = append(kept, mod)
			continue
		}
		mod.TurnsRemaining--
		if mod.TurnsRemaining > 0 {
			kept = append(kept, mod)
		}
	}
	*m = kept
}

// Get returns the modifier of the given type for the player
func (m ModifierSet) Get(playerID PlayerID, t ModifierType) (PlayerModifier, bool) {
	for _, mod := range m {
		if mod.PlayerID == playerID && mod.Type == t {
			return mod, true
		}
	}
	return PlayerModifier{}, false
}

// Has reports whether the player holds a modifier of the given type
func (m ModifierSet) Has(playerID PlayerID, t ModifierType) bool {
	_, ok := m.Get(playerID, t)
	return ok
}

// MultiplierFor returns the player's double_next multiplier, or 1 if absent
func (m ModifierSet) MultiplierFor(playerID PlayerID) int {
	mod, ok := m.Get(playerID, ModifierDoubleNext)
	if !ok {
		return 1
	}
	if mod.Value <= 0 {
		return DefaultDoubleMultiplier
	}
	return mod.Value
}

// ForcedCategoryFor returns the category_master category, or "" if absent
func (m ModifierSet) ForcedCategoryFor(playerID PlayerID) string {
	mod, ok := m.Get(playerID, ModifierCategoryMaster)
	if !ok {
		return ""
	}
	return mod.Category
}

// IsFrozen reports whether the player must be skipped on their next turn
func (m ModifierSet) IsFrozen(playerID PlayerID) bool {
	return m.Has(playerID, ModifierFrozen)
}

// HasShield reports whether negative twists against the player are suppressed
func (m ModifierSet) HasShield(playerID PlayerID) bool {
	return m.Has(playerID, ModifierShield)
}
