// Package twist implements the twist card resolution engine: immediate
// effects, choice-requiring effects, and the bonus-question directive.
package twist

import (
	"log/slog"

	"github.com/starchase/starchase-go/internal/board"
	"github.com/starchase/starchase-go/internal/dependencies/random"
	"github.com/starchase/starchase-go/internal/model"
)

// Directive tells the state machine where to go after resolving a twist
type Directive string

const (
	// DirectiveNextTurn means the effect is fully applied; advance the turn
	DirectiveNextTurn Directive = "next_turn"
	// DirectiveAwaitChoice means a target must be collected from the
	// presentation boundary before the effect can be applied
	DirectiveAwaitChoice Directive = "await_choice"
	// DirectiveBonusQuestion means the machine must enter the
	// bonus-question sub-phase
	DirectiveBonusQuestion Directive = "bonus_question"
)

// Outcome is the result of resolving a drawn twist against a session
type Outcome struct {
	Directive Directive
	Message   string
}

// ChoiceTarget carries the target supplied by the presentation boundary
// for a choice-requiring twist. Only the field relevant to the effect
// type is read; the rest are ignored.
type ChoiceTarget struct {
	PlayerID   model.PlayerID
	Gate       int // -1 when not a gate choice
	Difficulty int // 0 when not a difficulty choice
	Category   string
	StarID     int // -1 when not a star choice
}

// Candidates enumerates the valid targets for a choice-requiring twist.
// Empty candidates mean the effect cannot apply and must no-op.
type Candidates struct {
	Players      []model.PlayerID
	Gates        []int
	Difficulties []int
	Categories   []string
	StarIDs      []int
}

// Empty reports whether no valid target exists
func (c Candidates) Empty() bool {
	return len(c.Players) == 0 && len(c.Gates) == 0 && len(c.Difficulties) == 0 &&
		len(c.Categories) == 0 && len(c.StarIDs) == 0
}

// Engine resolves twist cards against session state. All mutations happen
// through the session passed in; the engine itself is stateless.
type Engine struct {
	random random.Random
	logger *slog.Logger
}

// NewEngine creates a new twist resolution Engine
func NewEngine(rnd random.Random, logger *slog.Logger) *Engine {
	return &Engine{
		random: rnd,
		logger: logger.With(slog.String("component", "twist-engine")),
	}
}

// Resolve computes the effect of a drawn twist for the acting player.
// Choice-requiring cards mutate nothing yet and return DirectiveAwaitChoice,
// unless no valid target exists, in which case the effect no-ops and the
// turn advances rather than stalling on an impossible choice.
func (e *Engine) Resolve(sess *model.Session, card model.TwistCard) Outcome {
	actor := sess.CurrentPlayer()

	if card.RequiresChoice {
		if e.Candidates(sess, card).Empty() {
			e.logger.Info("twist skipped, no valid target",
				slog.String("session_id", string(sess.ID)),
				slog.String("effect", string(card.Effect)),
			)
			return Outcome{Directive: DirectiveNextTurn, Message: "no valid target"}
		}
		return Outcome{Directive: DirectiveAwaitChoice}
	}

	switch card.Effect {
	case model.TwistMoveBackGate:
		if card.Value > 0 {
			actor.Position = board.MoveBack(actor.Position, card.Value)
		} else {
			actor.Position = board.PreviousGate(actor.Position)
		}

	case model.TwistOthersBackGate:
		for i := range sess.Players {
			p := &sess.Players[i]
			if p.ID == actor.ID {
				continue
			}
			if e.consumeShield(sess, p.ID) {
				continue
			}
			p.Position = board.PreviousGate(p.Position)
		}

	case model.TwistRandomTeleport:
		actor.Position = e.random.Intn(board.TrackLength)

	case model.TwistEveryoneMoves:
		// Mass movement never routes through the star-award protocol,
		// even when it crosses gates
		steps := card.EffectValue(model.DefaultEveryoneMovesSteps)
		for i := range sess.Players {
			sess.Players[i].Position = board.Move(sess.Players[i].Position, steps)
		}

	case model.TwistUpgradeZeroStar:
		upgraded := false
		for i := range sess.Stars {
			star := &sess.Stars[i]
			if star.Earned && star.Owner == actor.ID && star.Value == 0 {
				star.Value = model.UpgradedStarValue
				actor.Score += model.UpgradedStarValue
				upgraded = true
				break
			}
		}
		if !upgraded {
			return Outcome{Directive: DirectiveNextTurn, Message: "no zero-value star to upgrade"}
		}

	case model.TwistInstantPoints:
		actor.Score += card.EffectValue(model.DefaultInstantPoints)

	case model.TwistDoubleNext:
		// Two turns: covers the current pending question and the carry-over
		sess.Modifiers.Add(model.PlayerModifier{
			PlayerID:       actor.ID,
			Type:           model.ModifierDoubleNext,
			TurnsRemaining: model.DefaultDoubleNextTurns,
			Value:          model.DefaultDoubleMultiplier,
		})

	case model.TwistBonusQuestion:
		return Outcome{Directive: DirectiveBonusQuestion}

	case model.TwistExtraTurn:
		sess.ExtraTurnPending = true

	case model.TwistReverseOrder:
		sess.Reversed = true
		sess.ReversedTurns = card.EffectValue(model.DefaultReverseTurns)

	case model.TwistShield:
		sess.Modifiers.Add(model.PlayerModifier{
			PlayerID:       actor.ID,
			Type:           model.ModifierShield,
			TurnsRemaining: card.EffectValue(model.DefaultShieldTurns),
		})

	default:
		// Unhandled effect kinds no-op rather than wedging the turn
		e.logger.Warn("unhandled twist effect",
			slog.String("effect", string(card.Effect)),
		)
	}

	return Outcome{Directive: DirectiveNextTurn}
}

// Candidates returns the valid targets for a choice-requiring card
func (e *Engine) Candidates(sess *model.Session, card model.TwistCard) Candidates {
	actor := sess.CurrentPlayer()

	switch card.Effect {
	case model.TwistStealStar:
		var players []model.PlayerID
		for _, p := range sess.Players {
			if p.ID != actor.ID && p.Stars > 0 {
				players = append(players, p.ID)
			}
		}
		return Candidates{Players: players}

	case model.TwistSwapPositions, model.TwistFreezePlayer, model.TwistPointsSwap:
		var players []model.PlayerID
		for _, p := range sess.Players {
			if p.ID != actor.ID {
				players = append(players, p.ID)
			}
		}
		return Candidates{Players: players}

	case model.TwistTeleportGate:
		gates := make([]int, len(board.Gates))
		copy(gates, board.Gates)
		return Candidates{Gates: gates}

	case model.TwistDifficultyChoice:
		return Candidates{Difficulties: []int{1, 2, 3, 4, 5}}

	case model.TwistCategoryMaster:
		return Candidates{Categories: sess.Settings.Categories}

	case model.TwistFreeStar, model.TwistStarPeek:
		var stars []int
		for _, star := range sess.Stars {
			if !star.Earned {
				stars = append(stars, star.ID)
			}
		}
		return Candidates{StarIDs: stars}

	default:
		return Candidates{}
	}
}

// ApplyChoice applies a choice-requiring effect once the presentation
// boundary has supplied a target. Invalid targets return ErrInvalidTarget;
// targets that became invalid (e.g. a shielded victim) no-op silently.
func (e *Engine) ApplyChoice(sess *model.Session, card model.TwistCard, target ChoiceTarget) error {
	actor := sess.CurrentPlayer()

	switch card.Effect {
	case model.TwistStealStar:
		victim := sess.PlayerByID(target.PlayerID)
		if victim == nil || victim.ID == actor.ID {
			return model.ErrInvalidTarget
		}
		if e.consumeShield(sess, victim.ID) {
			return nil
		}
		owned := sess.StarsOwnedBy(victim.ID)
		if len(owned) == 0 {
			// Caller should have excluded star-less targets; skip gracefully
			return nil
		}
		stolen := owned[e.random.Intn(len(owned))]
		star := sess.StarByID(stolen.ID)
		star.Owner = actor.ID
		actor.Score += star.Value
		actor.Stars++
		victim.Score -= star.Value
		victim.Stars--

	case model.TwistSwapPositions:
		other := sess.PlayerByID(target.PlayerID)
		if other == nil || other.ID == actor.ID {
			return model.ErrInvalidTarget
		}
		actor.Position, other.Position = other.Position, actor.Position

	case model.TwistFreezePlayer:
		victim := sess.PlayerByID(target.PlayerID)
		if victim == nil || victim.ID == actor.ID {
			return model.ErrInvalidTarget
		}
		if e.consumeShield(sess, victim.ID) {
			return nil
		}
		sess.Modifiers.Add(model.PlayerModifier{
			PlayerID:       victim.ID,
			Type:           model.ModifierFrozen,
			TurnsRemaining: 1,
		})

	case model.TwistPointsSwap:
		other := sess.PlayerByID(target.PlayerID)
		if other == nil || other.ID == actor.ID {
			return model.ErrInvalidTarget
		}
		if e.consumeShield(sess, other.ID) {
			return nil
		}
		// Only an underdog swap: no-op unless the actor is strictly behind
		if actor.Score < other.Score {
			actor.Score, other.Score = other.Score, actor.Score
		}

	case model.TwistTeleportGate:
		if !board.IsGate(target.Gate) {
			return model.ErrInvalidTarget
		}
		actor.Position = target.Gate

	case model.TwistDifficultyChoice:
		if target.Difficulty < model.MinDifficulty || target.Difficulty > model.MaxDifficulty {
			return model.ErrInvalidTarget
		}
		sess.DifficultyOverride = target.Difficulty

	case model.TwistCategoryMaster:
		if target.Category == "" {
			return model.ErrInvalidTarget
		}
		sess.Modifiers.Add(model.PlayerModifier{
			PlayerID:       actor.ID,
			Type:           model.ModifierCategoryMaster,
			TurnsRemaining: card.EffectValue(model.DefaultCategoryTurns),
			Category:       target.Category,
		})

	case model.TwistFreeStar:
		star := sess.StarByID(target.StarID)
		if star == nil {
			return model.ErrStarNotFound
		}
		if star.Earned {
			return model.ErrStarAlreadyEarned
		}
		// Same mutation as a normal reveal, minus the suspense sub-phase
		star.Earned = true
		star.Owner = actor.ID
		actor.Score += star.Value
		actor.Stars++

	case model.TwistStarPeek:
		star := sess.StarByID(target.StarID)
		if star == nil {
			return model.ErrStarNotFound
		}
		if star.Earned {
			return model.ErrStarAlreadyEarned
		}
		if sess.PeekedStars == nil {
			sess.PeekedStars = make(map[int]model.PlayerID)
		}
		sess.PeekedStars[star.ID] = actor.ID

	default:
		return model.ErrNoChoicePending
	}

	return nil
}

// consumeShield checks whether a negative effect against the player is
// suppressed by an active shield, consuming the shield when it is
func (e *Engine) consumeShield(sess *model.Session, id model.PlayerID) bool {
	if !sess.Modifiers.HasShield(id) {
		return false
	}
	sess.Modifiers.Remove(id, model.ModifierShield)
	e.logger.Info("shield absorbed a negative twist",
		slog.String("session_id", string(sess.ID)),
		slog.String("player_id", string(id)),
	)
	return true
}
