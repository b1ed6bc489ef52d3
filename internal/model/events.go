package model

import "time"

// EventType identifies the type of event broadcast to presentation clients
type EventType string

const (
	EventSpinResolved  EventType = "spin_resolved"
	EventQuestionPosed EventType = "question_posed"
	EventAnswersLocked EventType = "answers_locked"
	EventStepsAwarded  EventType = "steps_awarded"
	EventPlayerMoved   EventType = "player_moved"
	EventStarSelecting EventType = "star_selecting"
	EventStarRevealed  EventType = "star_revealed"
	EventTwistDrawn    EventType = "twist_drawn"
	EventTwistApplied  EventType = "twist_applied"
	EventTurnAdvanced  EventType = "turn_advanced"
	EventGameFinished  EventType = "game_finished"
)

// Event is the base structure for all presentation events
type Event struct {
	Type      EventType
	Timestamp time.Time
	SessionID SessionID
	PlayerID  PlayerID // the player who triggered or is affected, if any
	Payload   any
}
