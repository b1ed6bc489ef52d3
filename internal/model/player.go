package model

import "time"

// PlayerID uniquely identifies a player within a session
type PlayerID string

// PlayerKind distinguishes human players from automated ones
type PlayerKind string

const (
	PlayerKindHuman     PlayerKind = "human"
	PlayerKindAutomated PlayerKind = "automated"
)

// Player represents a game participant
type Player struct {
	ID          PlayerID
	DisplayName string
	Kind        PlayerKind
	Score       int
	Position    int // index on the circular track, [0, TrackLength)
	Stars       int // stars collected so far
	Avatar      string
	CreatedAt   time.Time
}

// IsAutomated returns true for bot-controlled players
func (p *Player) IsAutomated() bool {
	return p.Kind == PlayerKindAutomated
}
