package response

import (
	"time"

	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/services/twist"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Kind        string `json:"kind"`
	Score       int    `json:"score"`
	Position    int    `json:"position"`
	Stars       int    `json:"stars"`
	Avatar      string `json:"avatar,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		Kind:        string(p.Kind),
		Score:       p.Score,
		Position:    p.Position,
		Stars:       p.Stars,
		Avatar:      p.Avatar,
	}
}

// Star represents a star token. Value is withheld while the star is
// unearned, unless the requesting viewer has peeked it.
type Star struct {
	ID     int     `json:"id"`
	Earned bool    `json:"earned"`
	Value  *int    `json:"value,omitempty"`
	Owner  *string `json:"owner,omitempty"`
}

// StarFromModel converts a model.Star, hiding the value from viewers who
// have not earned a look at it
func StarFromModel(s model.Star, revealed bool) Star {
	star := Star{ID: s.ID, Earned: s.Earned}
	if s.Earned || revealed {
		v := s.Value
		star.Value = &v
	}
	if s.Earned {
		o := string(s.Owner)
		star.Owner = &o
	}
	return star
}

// Question represents the posed question. The correct option index is
// never exposed; correctness comes back through answer results.
type Question struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Difficulty int      `json:"difficulty"`
	Category   string   `json:"category,omitempty"`
	Bonus      bool     `json:"bonus,omitempty"`
}

// QuestionFromModel converts a model.Question
func QuestionFromModel(q *model.Question, bonus bool) *Question {
	if q == nil {
		return nil
	}
	return &Question{
		ID:         string(q.ID),
		Text:       q.Text,
		Options:    q.Options[:],
		Difficulty: q.Difficulty,
		Category:   q.Category,
		Bonus:      bonus,
	}
}

// TwistCard represents the active twist card
type TwistCard struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Effect           string `json:"effect"`
	Positive         bool   `json:"positive"`
	RequiresChoice   bool   `json:"requires_choice"`
	RequiresQuestion bool   `json:"requires_question"`
}

// TwistCardFromModel converts a model.TwistCard
func TwistCardFromModel(c *model.TwistCard) *TwistCard {
	if c == nil {
		return nil
	}
	return &TwistCard{
		ID:               int(c.ID),
		Title:            c.Title,
		Description:      c.Description,
		Effect:           string(c.Effect),
		Positive:         c.Positive,
		RequiresChoice:   c.RequiresChoice,
		RequiresQuestion: c.RequiresQuestion,
	}
}

// Session is the read-only snapshot the presentation layer renders from
type Session struct {
	ID              string          `json:"id"`
	Phase           string          `json:"phase"`
	Players         []Player        `json:"players"`
	Stars           []Star          `json:"stars"`
	CurrentPlayer   string          `json:"current_player"`
	SpinDifficulty  int             `json:"spin_difficulty,omitempty"`
	Question        *Question       `json:"question,omitempty"`
	ActiveTwist     *TwistCard      `json:"active_twist,omitempty"`
	Answered        map[string]bool `json:"answered,omitempty"`
	StepsEarned     map[string]int  `json:"steps_earned,omitempty"`
	SelectingPlayer string          `json:"selecting_player,omitempty"`
	GateQueue       []int           `json:"gate_queue,omitempty"`
	Reversed        bool            `json:"reversed,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SessionFromModel builds the snapshot for one viewer. Unearned star
// values stay hidden unless this viewer peeked them.
func SessionFromModel(sess *model.Session, viewer model.PlayerID) Session {
	players := make([]Player, len(sess.Players))
	for i := range sess.Players {
		players[i] = PlayerFromModel(&sess.Players[i])
	}

	stars := make([]Star, len(sess.Stars))
	for i, star := range sess.Stars {
		peeked := viewer != "" && sess.PeekedStars[star.ID] == viewer
		stars[i] = StarFromModel(star, peeked)
	}

	var answered map[string]bool
	if len(sess.Answers) > 0 {
		answered = make(map[string]bool, len(sess.Answers))
		for pid := range sess.Answers {
			answered[string(pid)] = true
		}
	}

	var steps map[string]int
	if len(sess.StepsEarned) > 0 {
		steps = make(map[string]int, len(sess.StepsEarned))
		for pid, n := range sess.StepsEarned {
			steps[string(pid)] = n
		}
	}

	var currentPlayer string
	if p := sess.CurrentPlayer(); p != nil {
		currentPlayer = string(p.ID)
	}

	return Session{
		ID:              string(sess.ID),
		Phase:           string(sess.Phase),
		Players:         players,
		Stars:           stars,
		CurrentPlayer:   currentPlayer,
		SpinDifficulty:  sess.SpinDifficulty,
		Question:        QuestionFromModel(sess.CurrentQuestion, sess.BonusQuestion),
		ActiveTwist:     TwistCardFromModel(sess.ActiveTwist),
		Answered:        answered,
		StepsEarned:     steps,
		SelectingPlayer: string(sess.SelectingPlayer),
		GateQueue:       sess.GateQueue,
		Reversed:        sess.Reversed,
		CreatedAt:       sess.CreatedAt,
		UpdatedAt:       sess.UpdatedAt,
	}
}

// Candidates lists the valid targets for a pending twist choice
type Candidates struct {
	Players      []string `json:"players,omitempty"`
	Gates        []int    `json:"gates,omitempty"`
	Difficulties []int    `json:"difficulties,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	StarIDs      []int    `json:"star_ids,omitempty"`
}

// CandidatesFromModel converts twist candidates for the wire
func CandidatesFromModel(c twist.Candidates) Candidates {
	players := make([]string, len(c.Players))
	for i, pid := range c.Players {
		players[i] = string(pid)
	}
	return Candidates{
		Players:      players,
		Gates:        c.Gates,
		Difficulties: c.Difficulties,
		Categories:   c.Categories,
		StarIDs:      c.StarIDs,
	}
}

// SessionSummary represents a completed game
type SessionSummary struct {
	ID             string         `json:"id"`
	FinalScores    map[string]int `json:"final_scores"`
	StarsCollected map[string]int `json:"stars_collected"`
	Winner         string         `json:"winner"`
	CompletedAt    time.Time      `json:"completed_at"`
}

// SummaryFromModel converts a model.SessionSummary
func SummaryFromModel(s *model.SessionSummary) SessionSummary {
	scores := make(map[string]int, len(s.FinalScores))
	for pid, score := range s.FinalScores {
		scores[string(pid)] = score
	}
	stars := make(map[string]int, len(s.StarsCollected))
	for pid, n := range s.StarsCollected {
		stars[string(pid)] = n
	}
	return SessionSummary{
		ID:             string(s.ID),
		FinalScores:    scores,
		StarsCollected: stars,
		Winner:         string(s.Winner),
		CompletedAt:    s.CompletedAt,
	}
}
