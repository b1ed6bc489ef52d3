// Package deck implements the shuffled, non-repeating twist draw pool.
package deck

import (
	"log/slog"

	"github.com/starchase/starchase-go/internal/dependencies/random"
	"github.com/starchase/starchase-go/internal/model"
)

// Service draws twist cards for sessions. Card content is static; each
// session tracks its own used-id set, so one Service serves all sessions.
type Service struct {
	cards  []model.TwistCard
	random random.Random
	logger *slog.Logger
}

// New creates a new deck Service over the given card catalog
func New(cards []model.TwistCard, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		cards:  cards,
		random: rnd,
		logger: logger.With(slog.String("component", "twist-deck")),
	}
}

// Size returns the number of cards in the catalog
func (s *Service) Size() int {
	return len(s.cards)
}

// CardByID returns the catalog card with the given id
func (s *Service) CardByID(id model.TwistCardID) (model.TwistCard, bool) {
	for _, c := range s.cards {
		if c.ID == id {
			return c, true
		}
	}
	return model.TwistCard{}, false
}

// Draw picks uniformly at random among cards not yet used this session
// and marks the result used. When the used-set covers the whole deck it
// is cleared first, so duplicates may recur across reshuffles but never
// within one cycle. Deck exhaustion is never an error.
func (s *Service) Draw(sess *model.Session) model.TwistCard {
	unused := s.unusedCards(sess)
	if len(unused) == 0 {
		s.logger.Info("twist deck exhausted, reshuffling",
			slog.String("session_id", string(sess.ID)),
		)
		sess.UsedTwistIDs = nil
		unused = s.unusedCards(sess)
	}

	card := unused[s.random.Intn(len(unused))]
	s.MarkUsed(sess, card.ID)
	return card
}

// MarkUsed records a card as drawn for the current deck cycle
func (s *Service) MarkUsed(sess *model.Session, id model.TwistCardID) {
	if !sess.TwistUsed(id) {
		sess.UsedTwistIDs = append(sess.UsedTwistIDs, id)
	}
}

func (s *Service) unusedCards(sess *model.Session) []model.TwistCard {
	var unused []model.TwistCard
	for _, c := range s.cards {
		if !sess.TwistUsed(c.ID) {
			unused = append(unused, c)
		}
	}
	return unused
}
