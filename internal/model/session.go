package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// Phase represents the current state of the turn lifecycle
type Phase string

const (
	PhaseSpinning    Phase = "spinning"
	PhaseQuestion    Phase = "question"
	PhaseTwist       Phase = "twist"
	PhaseTwistChoice Phase = "twist_choice"
	PhaseTwistBonus  Phase = "twist_bonus_question"
	PhaseCountdown   Phase = "countdown"
	PhaseResults     Phase = "results"
	PhaseMoving      Phase = "moving"
	PhaseSelectStar  Phase = "select_star"
	PhaseRevealStar  Phase = "revealing_star"
	PhaseFinished    Phase = "finished"
)

// PendingMove is one movement queue entry, processed one at a time
type PendingMove struct {
	PlayerID PlayerID
	Steps    int
}

// AnswerRecord captures a player's single answer to the current question
type AnswerRecord struct {
	OptionIndex int
	Correct     bool
}

// Session is the complete state of one game. It is owned exclusively by the
// game controller; every other component receives it by reference from the
// controller and never loads it from storage directly.
type Session struct {
	ID    SessionID
	Phase Phase

	Players   []Player
	Stars     []Star
	Modifiers ModifierSet

	// Turn state
	CurrentIdx         int
	SpinDifficulty     int // difficulty produced by the current spin (0 = none yet)
	DifficultyOverride int // pending difficulty_choice override (0 = none)
	ExtraTurnPending   bool
	Reversed           bool
	ReversedTurns      int

	// Question state
	CurrentQuestion *Question
	BonusQuestion   bool // current question came from a bonus_question twist
	BonusSteps      int  // steps awarded on a correct bonus answer
	Answers         map[PlayerID]AnswerRecord
	StepsEarned     map[PlayerID]int

	// Twist state
	ActiveTwist  *TwistCard
	UsedTwistIDs []TwistCardID

	// Question pool consumption
	UsedQuestionIDs []QuestionID

	// Movement / star award state
	MoveQueue       []PendingMove
	GateQueue       []int // gates crossed by SelectingPlayer, awaiting star picks
	SelectingPlayer PlayerID
	SelectedStar    int              // star id pending reveal, -1 when none
	PeekedStars     map[int]PlayerID // star id -> player who peeked its value

	// Generation is bumped on every phase transition. Deferred callbacks
	// carry the generation they were scheduled under and no-op when it no
	// longer matches, so stale timers never mutate a superseded phase.
	Generation uint64

	Settings  Settings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentPlayer returns the acting player, or nil for an empty roster
func (s *Session) CurrentPlayer() *Player {
	if len(s.Players) == 0 {
		return nil
	}
	return &s.Players[s.CurrentIdx]
}

// PlayerByID returns the player with the given id, or nil
func (s *Session) PlayerByID(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// PlayerIndex returns the roster index for the given id, or -1
func (s *Session) PlayerIndex(id PlayerID) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// StarByID returns the star with the given id, or nil
func (s *Session) StarByID(id int) *Star {
	for i := range s.Stars {
		if s.Stars[i].ID == id {
			return &s.Stars[i]
		}
	}
	return nil
}

// UnearnedStarCount returns how many stars remain unearned
func (s *Session) UnearnedStarCount() int {
	count := 0
	for _, star := range s.Stars {
		if !star.Earned {
			count++
		}
	}
	return count
}

// AllStarsEarned reports whether the game-ending condition is met
func (s *Session) AllStarsEarned() bool {
	return s.UnearnedStarCount() == 0
}

// StarsOwnedBy returns the stars currently owned by the given player
func (s *Session) StarsOwnedBy(id PlayerID) []Star {
	var owned []Star
	for _, star := range s.Stars {
		if star.Earned && star.Owner == id {
			owned = append(owned, star)
		}
	}
	return owned
}

// AllAnswered reports whether every player has an answer on record.
// For bonus questions only the acting player answers.
func (s *Session) AllAnswered() bool {
	if s.BonusQuestion {
		_, ok := s.Answers[s.CurrentPlayer().ID]
		return ok
	}
	for _, p := range s.Players {
		if _, ok := s.Answers[p.ID]; !ok {
			return false
		}
	}
	return true
}

// QuestionUsed reports whether a question has been consumed this session
func (s *Session) QuestionUsed(id QuestionID) bool {
	for _, used := range s.UsedQuestionIDs {
		if used == id {
			return true
		}
	}
	return false
}

// MarkQuestionUsed records a question as consumed
func (s *Session) MarkQuestionUsed(id QuestionID) {
	if !s.QuestionUsed(id) {
		s.UsedQuestionIDs = append(s.UsedQuestionIDs, id)
	}
}

// TwistUsed reports whether a twist card has been drawn this deck cycle
func (s *Session) TwistUsed(id TwistCardID) bool {
	for _, used := range s.UsedTwistIDs {
		if used == id {
			return true
		}
	}
	return false
}

// SessionSummary is a lightweight record of a completed session
type SessionSummary struct {
	ID             SessionID
	FinalScores    map[PlayerID]int
	StarsCollected map[PlayerID]int
	Winner         PlayerID
	CompletedAt    time.Time
}
