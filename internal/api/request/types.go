// Package request defines the JSON request bodies accepted by the API.
package request

// CreateSessionRequest is the body for creating a new game session
type CreateSessionRequest struct {
	HumanNames       []string `json:"human_names"`
	AutomatedPlayers int      `json:"automated_players"`
	Categories       []string `json:"categories,omitempty"`
	CustomCategory   string   `json:"custom_category,omitempty"`
}

// SpinRequest is the body for spinning the wheel
type SpinRequest struct {
	PlayerID string `json:"player_id"`
}

// AnswerRequest is the body for submitting an answer
type AnswerRequest struct {
	PlayerID string `json:"player_id"`
	Option   int    `json:"option"`
}

// StarRequest is the body for picking a star at a gate
type StarRequest struct {
	PlayerID string `json:"player_id"`
	StarID   int    `json:"star_id"`
}

// TwistChoiceRequest is the body for resolving a choice-requiring twist.
// Exactly one of the target fields is meaningful, depending on the card.
type TwistChoiceRequest struct {
	PlayerID       string `json:"player_id"`
	TargetPlayerID string `json:"target_player_id,omitempty"`
	Gate           *int   `json:"gate,omitempty"`
	Difficulty     int    `json:"difficulty,omitempty"`
	Category       string `json:"category,omitempty"`
	StarID         *int   `json:"star_id,omitempty"`
}
