// Package auto drives automated players: whenever the game is waiting on
// a bot-controlled player, the service picks and submits an intent on
// their behalf.
package auto

import (
	"github.com/starchase/starchase-go/internal/dependencies/random"
	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/services/twist"
)

// Strategy decides an automated player's intents. Implementations must be
// cheap and non-blocking: bot intents are submitted synchronously within
// the triggering request or timer callback, and the visible pacing of a
// game comes from the phase timers (countdown, results, reveal), not from
// simulated thinking time.
type Strategy interface {
	// ChooseAnswer picks an answer option index for the question
	ChooseAnswer(q *model.Question) int

	// ChooseStar picks an unearned star id, or -1 when none remain
	ChooseStar(sess *model.Session) int

	// ChooseTwistTarget picks a target among the offered candidates
	ChooseTwistTarget(sess *model.Session, card model.TwistCard, candidates twist.Candidates) twist.ChoiceTarget
}

// RandomStrategy answers uniformly at random with no skill simulation
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

var _ Strategy = (*RandomStrategy)(nil)

// ChooseAnswer picks uniformly among the answer options
func (s *RandomStrategy) ChooseAnswer(q *model.Question) int {
	return s.random.Intn(model.OptionCount)
}

// ChooseStar picks uniformly among unearned stars
func (s *RandomStrategy) ChooseStar(sess *model.Session) int {
	var unearned []int
	for _, star := range sess.Stars {
		if !star.Earned {
			unearned = append(unearned, star.ID)
		}
	}
	if len(unearned) == 0 {
		return -1
	}
	return unearned[s.random.Intn(len(unearned))]
}

// ChooseTwistTarget picks uniformly from whichever candidate list the
// pending effect offers
func (s *RandomStrategy) ChooseTwistTarget(sess *model.Session, card model.TwistCard, candidates twist.Candidates) twist.ChoiceTarget {
	target := twist.ChoiceTarget{Gate: -1, StarID: -1}
	switch {
	case len(candidates.Players) > 0:
		target.PlayerID = candidates.Players[s.random.Intn(len(candidates.Players))]
	case len(candidates.Gates) > 0:
		target.Gate = candidates.Gates[s.random.Intn(len(candidates.Gates))]
	case len(candidates.Difficulties) > 0:
		target.Difficulty = candidates.Difficulties[s.random.Intn(len(candidates.Difficulties))]
	case len(candidates.Categories) > 0:
		target.Category = candidates.Categories[s.random.Intn(len(candidates.Categories))]
	case len(candidates.StarIDs) > 0:
		target.StarID = candidates.StarIDs[s.random.Intn(len(candidates.StarIDs))]
	}
	return target
}
