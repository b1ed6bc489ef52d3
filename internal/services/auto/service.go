package auto

import (
	"context"
	"errors"
	"log/slog"

	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/services/game"
)

// MaxAutoIterations bounds the cascading action loop. One iteration per
// automated intent is plenty; the bound only guards against a phase that
// keeps asking for bot input without ever progressing.
const MaxAutoIterations = 64

// Service submits intents for automated players. It is invoked after
// human intents and after timer-driven transitions, and keeps acting
// until the game waits on a human, a timer, or the finish line.
type Service struct {
	games    *game.Controller
	strategy Strategy
	logger   *slog.Logger
}

// New creates a new automated-player Service
func New(games *game.Controller, strategy Strategy, logger *slog.Logger) *Service {
	return &Service{
		games:    games,
		strategy: strategy,
		logger:   logger.With(slog.String("component", "auto-players")),
	}
}

// ProcessAutoActions runs the cascading bot loop for a session. Each
// iteration re-reads the session and submits at most one intent, so a
// bot answer that completes a question round immediately lets the next
// waiting bot act on the resulting phase.
func (s *Service) ProcessAutoActions(ctx context.Context, id model.SessionID) error {
	for i := 0; i < MaxAutoIterations; i++ {
		sess, err := s.games.GetSession(ctx, id)
		if err != nil {
			return err
		}

		acted, err := s.actOnce(ctx, sess)
		if err != nil {
			// A concurrent timer may have moved the phase under us;
			// that's a skipped beat, not a failure
			if errors.Is(err, model.ErrWrongPhase) || errors.Is(err, model.ErrSessionFinished) {
				return nil
			}
			return err
		}
		if !acted {
			return nil
		}
	}

	s.logger.Warn("automated action loop hit its iteration bound",
		slog.String("session_id", string(id)),
	)
	return nil
}

// actOnce submits a single automated intent if the current phase is
// waiting on one, reporting whether it acted
func (s *Service) actOnce(ctx context.Context, sess *model.Session) (bool, error) {
	switch sess.Phase {
	case model.PhaseSpinning:
		acting := sess.CurrentPlayer()
		if acting == nil || !acting.IsAutomated() {
			return false, nil
		}
		return true, s.games.Spin(ctx, sess.ID, acting.ID)

	case model.PhaseQuestion:
		for _, p := range sess.Players {
			if !p.IsAutomated() {
				continue
			}
			if _, answered := sess.Answers[p.ID]; answered {
				continue
			}
			option := s.strategy.ChooseAnswer(sess.CurrentQuestion)
			return true, s.games.SubmitAnswer(ctx, sess.ID, p.ID, option)
		}
		return false, nil

	case model.PhaseTwistBonus:
		acting := sess.CurrentPlayer()
		if !acting.IsAutomated() {
			return false, nil
		}
		if _, answered := sess.Answers[acting.ID]; answered {
			return false, nil
		}
		option := s.strategy.ChooseAnswer(sess.CurrentQuestion)
		return true, s.games.SubmitAnswer(ctx, sess.ID, acting.ID, option)

	case model.PhaseSelectStar:
		selecting := sess.PlayerByID(sess.SelectingPlayer)
		if selecting == nil || !selecting.IsAutomated() {
			return false, nil
		}
		starID := s.strategy.ChooseStar(sess)
		if starID < 0 {
			return false, nil
		}
		return true, s.games.SelectStar(ctx, sess.ID, selecting.ID, starID)

	case model.PhaseTwistChoice:
		acting := sess.CurrentPlayer()
		if !acting.IsAutomated() || sess.ActiveTwist == nil {
			return false, nil
		}
		candidates, err := s.games.Candidates(ctx, sess.ID)
		if err != nil {
			return false, err
		}
		target := s.strategy.ChooseTwistTarget(sess, *sess.ActiveTwist, candidates)
		return true, s.games.SubmitTwistChoice(ctx, sess.ID, acting.ID, target)

	default:
		// Timer-driven phases and finished games need no bot input
		return false, nil
	}
}
