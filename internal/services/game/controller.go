// Package game implements the turn/phase state machine: the per-turn loop
// from spin through question or twist, movement, the gate/star award
// protocol, and turn advancement.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/starchase/starchase-go/internal/board"
	"github.com/starchase/starchase-go/internal/catalog"
	"github.com/starchase/starchase-go/internal/dependencies/clock"
	"github.com/starchase/starchase-go/internal/dependencies/random"
	"github.com/starchase/starchase-go/internal/dependencies/scheduler"
	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/services/deck"
	"github.com/starchase/starchase-go/internal/services/question"
	"github.com/starchase/starchase-go/internal/services/twist"
	"github.com/starchase/starchase-go/internal/storage"
)

const (
	// wheelFaces is the number of spin wheel faces: one per difficulty
	// plus a single twist face
	wheelFaces = 6
	twistFace  = 5

	sessionIDLength   = 10
	sessionIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Config holds the timed-delay tuning for the state machine. The simulate
// command shrinks these to run full games in milliseconds.
type Config struct {
	CountdownDelay time.Duration
	ResultsDelay   time.Duration
	TwistDelay     time.Duration
	RevealDelay    time.Duration
	PeekDelay      time.Duration
}

// DefaultConfig returns the delays used for interactive play
func DefaultConfig() Config {
	return Config{
		CountdownDelay: 3 * time.Second,
		ResultsDelay:   4 * time.Second,
		TwistDelay:     4 * time.Second,
		RevealDelay:    2 * time.Second,
		PeekDelay:      3 * time.Second,
	}
}

// Controller owns all session state transitions. Every mutation runs under
// a single mutex, so no two transitions ever interleave; timer-driven
// resumptions re-enter through the same lock and are guarded by the
// session generation captured when they were scheduled.
type Controller struct {
	storage   storage.Storage
	questions *question.Service
	deck      *deck.Service
	twists    *twist.Engine
	clock     clock.Clock
	random    random.Random
	scheduler scheduler.Scheduler
	logger    *slog.Logger
	config    Config

	mu         sync.Mutex
	resumeHook func(model.SessionID)
	eventSink  func(model.Event)
}

// New creates a new game Controller
func New(
	store storage.Storage,
	questions *question.Service,
	deckSvc *deck.Service,
	twists *twist.Engine,
	clk clock.Clock,
	rnd random.Random,
	sched scheduler.Scheduler,
	logger *slog.Logger,
	config Config,
) *Controller {
	return &Controller{
		storage:   store,
		questions: questions,
		deck:      deckSvc,
		twists:    twists,
		clock:     clk,
		random:    rnd,
		scheduler: sched,
		logger:    logger.With(slog.String("component", "game-controller")),
		config:    config,
	}
}

// SetResumeHook registers a callback invoked (outside the lock) after a
// timer-driven transition lands, so the automated-player service can react
// to the new phase. Must be called during wiring, before play starts.
func (c *Controller) SetResumeHook(hook func(model.SessionID)) {
	c.resumeHook = hook
}

// SetEventSink registers the presentation event consumer. Must be called
// during wiring, before play starts.
func (c *Controller) SetEventSink(sink func(model.Event)) {
	c.eventSink = sink
}

// CreateSession bootstraps a new game from settings: roster placed at
// gates round-robin, star values shuffled, question pool loaded.
func (c *Controller) CreateSession(ctx context.Context, settings model.Settings) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	settings = settings.Normalized(catalog.Categories())
	now := c.clock.Now()

	var players []model.Player
	for i, name := range settings.HumanNames {
		players = append(players, model.Player{
			ID:          model.PlayerID(fmt.Sprintf("player-%d", i+1)),
			DisplayName: name,
			Kind:        model.PlayerKindHuman,
			Position:    board.GateByIndex(i),
			Avatar:      fmt.Sprintf("avatar-%d", i+1),
			CreatedAt:   now,
		})
	}
	for i := 0; i < settings.AutomatedPlayers; i++ {
		idx := len(settings.HumanNames) + i
		players = append(players, model.Player{
			ID:          model.PlayerID(fmt.Sprintf("bot-%d", i+1)),
			DisplayName: fmt.Sprintf("Bot %d", i+1),
			Kind:        model.PlayerKindAutomated,
			Position:    board.GateByIndex(idx),
			Avatar:      fmt.Sprintf("avatar-%d", idx+1),
			CreatedAt:   now,
		})
	}

	values := model.StarValues()
	c.random.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	stars := make([]model.Star, len(values))
	for i, v := range values {
		stars[i] = model.Star{ID: i, Value: v}
	}

	sess := &model.Session{
		ID:           model.SessionID("game-" + c.random.String(sessionIDLength, sessionIDAlphabet)),
		Phase:        model.PhaseSpinning,
		Players:      players,
		Stars:        stars,
		SelectedStar: -1,
		Settings:     settings,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	c.questions.LoadForSettings(ctx, settings)

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(sess.ID)),
		slog.Int("players", len(players)),
	)
	return sess, nil
}

// GetSession returns the current session state
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storage.GetSession(ctx, id)
}

// Summary returns the completed-game summary
func (c *Controller) Summary(ctx context.Context, id model.SessionID) (*model.SessionSummary, error) {
	return c.storage.GetSummary(ctx, id)
}

// Spin resolves the acting player's spin into either a question at a
// wheel-chosen difficulty or a twist draw. A pending difficulty_choice
// override preempts difficulty faces only, never the twist face.
func (c *Controller) Spin(ctx context.Context, id model.SessionID, playerID model.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.loadInPhase(ctx, id, model.PhaseSpinning)
	if err != nil {
		return err
	}
	if sess.CurrentPlayer().ID != playerID {
		return model.ErrNotActingPlayer
	}

	face := c.random.Intn(wheelFaces)
	if face == twistFace {
		c.drawTwist(ctx, sess)
		return c.save(ctx, sess)
	}

	difficulty := face + 1
	if sess.DifficultyOverride > 0 {
		difficulty = sess.DifficultyOverride
		sess.DifficultyOverride = 0
	}
	sess.SpinDifficulty = difficulty
	c.emit(sess, model.EventSpinResolved, playerID, map[string]any{"difficulty": difficulty})

	c.poseQuestion(ctx, sess, difficulty, false, 0)
	return c.save(ctx, sess)
}

// SubmitAnswer records a player's single answer to the current question.
// Once every eligible player has answered, the countdown starts.
func (c *Controller) SubmitAnswer(ctx context.Context, id model.SessionID, playerID model.PlayerID, option int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.loadActive(ctx, id)
	if err != nil {
		return err
	}
	if sess.Phase != model.PhaseQuestion && sess.Phase != model.PhaseTwistBonus {
		return model.ErrWrongPhase
	}
	if sess.CurrentQuestion == nil {
		return model.ErrNoQuestionPosed
	}
	if sess.BonusQuestion && sess.CurrentPlayer().ID != playerID {
		return model.ErrNotActingPlayer
	}
	if sess.PlayerByID(playerID) == nil {
		return model.ErrPlayerNotFound
	}
	if _, answered := sess.Answers[playerID]; answered {
		return model.ErrAlreadyAnswered
	}
	if option < 0 || option >= model.OptionCount {
		return model.ErrInvalidOption
	}

	sess.Answers[playerID] = model.AnswerRecord{
		OptionIndex: option,
		Correct:     sess.CurrentQuestion.IsCorrect(option),
	}

	if sess.AllAnswered() {
		c.transition(sess, model.PhaseCountdown)
		c.emit(sess, model.EventAnswersLocked, "", nil)
		c.scheduleResume(sess, c.config.CountdownDelay, c.finishCountdown)
	}
	return c.save(ctx, sess)
}

// SelectStar records the selecting player's star pick and starts the
// reveal suspense delay.
func (c *Controller) SelectStar(ctx context.Context, id model.SessionID, playerID model.PlayerID, starID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.loadInPhase(ctx, id, model.PhaseSelectStar)
	if err != nil {
		return err
	}
	if sess.SelectingPlayer != playerID {
		return model.ErrNotSelectingStar
	}
	star := sess.StarByID(starID)
	if star == nil {
		return model.ErrStarNotFound
	}
	if star.Earned {
		return model.ErrStarAlreadyEarned
	}

	sess.SelectedStar = starID
	c.transition(sess, model.PhaseRevealStar)
	c.scheduleResume(sess, c.config.RevealDelay, c.commitReveal)
	return c.save(ctx, sess)
}

// SubmitTwistChoice applies the acting player's target for a
// choice-requiring twist and advances the turn.
func (c *Controller) SubmitTwistChoice(ctx context.Context, id model.SessionID, playerID model.PlayerID, target twist.ChoiceTarget) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.loadInPhase(ctx, id, model.PhaseTwistChoice)
	if err != nil {
		return err
	}
	if sess.CurrentPlayer().ID != playerID {
		return model.ErrNotActingPlayer
	}
	if sess.ActiveTwist == nil {
		return model.ErrNoChoicePending
	}

	card := *sess.ActiveTwist
	if err := c.twists.ApplyChoice(sess, card, target); err != nil {
		return err
	}
	c.emit(sess, model.EventTwistApplied, playerID, map[string]any{"effect": card.Effect})

	if sess.AllStarsEarned() {
		c.finishGame(ctx, sess)
		return c.save(ctx, sess)
	}

	if card.Effect == model.TwistStarPeek {
		// Hold the peeked value on screen briefly before moving on
		sess.ActiveTwist = nil
		c.scheduleResume(sess, c.config.PeekDelay, c.advanceTurn)
		return c.save(ctx, sess)
	}

	c.advanceTurn(ctx, sess)
	return c.save(ctx, sess)
}

// Candidates returns the valid targets for the pending twist choice
func (c *Controller) Candidates(ctx context.Context, id model.SessionID) (twist.Candidates, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.loadInPhase(ctx, id, model.PhaseTwistChoice)
	if err != nil {
		return twist.Candidates{}, err
	}
	if sess.ActiveTwist == nil {
		return twist.Candidates{}, model.ErrNoChoicePending
	}
	return c.twists.Candidates(sess, *sess.ActiveTwist), nil
}

// --- internal transitions (callers hold c.mu) ---

// drawTwist draws a card and resolves it through the twist engine
func (c *Controller) drawTwist(ctx context.Context, sess *model.Session) {
	card := c.deck.Draw(sess)
	sess.ActiveTwist = &card
	c.transition(sess, model.PhaseTwist)
	c.emit(sess, model.EventTwistDrawn, sess.CurrentPlayer().ID, map[string]any{
		"card_id": card.ID,
		"effect":  card.Effect,
	})

	outcome := c.twists.Resolve(sess, card)
	switch outcome.Directive {
	case twist.DirectiveAwaitChoice:
		c.transition(sess, model.PhaseTwistChoice)

	case twist.DirectiveBonusQuestion:
		difficulty := c.random.Intn(model.MaxDifficulty) + 1
		c.poseQuestion(ctx, sess, difficulty, true, card.EffectValue(model.DefaultBonusSteps))

	default:
		c.emit(sess, model.EventTwistApplied, sess.CurrentPlayer().ID, map[string]any{
			"effect":  card.Effect,
			"message": outcome.Message,
		})
		// Leave the card visible for the display delay, then move on
		c.scheduleResume(sess, c.config.TwistDelay, c.advanceTurn)
	}
}

// poseQuestion selects a question for the acting player and enters the
// question (or bonus-question) phase. A fully exhausted pool ends the game.
func (c *Controller) poseQuestion(ctx context.Context, sess *model.Session, difficulty int, bonus bool, bonusSteps int) {
	acting := sess.CurrentPlayer()
	forced := sess.Modifiers.ForcedCategoryFor(acting.ID)

	q := c.questions.SelectByDifficulty(sess, difficulty, forced)
	if q == nil {
		c.logger.Info("question pool exhausted, ending game",
			slog.String("session_id", string(sess.ID)),
		)
		c.finishGame(ctx, sess)
		return
	}

	sess.CurrentQuestion = q
	sess.BonusQuestion = bonus
	sess.BonusSteps = bonusSteps
	sess.Answers = make(map[model.PlayerID]model.AnswerRecord)
	sess.StepsEarned = nil

	if bonus {
		c.transition(sess, model.PhaseTwistBonus)
	} else {
		c.transition(sess, model.PhaseQuestion)
	}
	c.emit(sess, model.EventQuestionPosed, acting.ID, map[string]any{
		"question_id": q.ID,
		"difficulty":  q.Difficulty,
		"bonus":       bonus,
	})
}

// finishCountdown computes per-player steps from the recorded answers.
// The acting player earns difficulty-scaled steps (or the bonus steps),
// everyone else a flat 1 on a correct answer; a double_next modifier is
// consumed the single time it multiplies.
func (c *Controller) finishCountdown(ctx context.Context, sess *model.Session) {
	acting := sess.CurrentPlayer()
	steps := make(map[model.PlayerID]int)

	for i := range sess.Players {
		p := &sess.Players[i]
		rec, ok := sess.Answers[p.ID]
		if !ok || !rec.Correct {
			continue
		}
		base := 1
		if p.ID == acting.ID {
			if sess.BonusQuestion {
				base = sess.BonusSteps
			} else {
				base = sess.CurrentQuestion.Difficulty
			}
		}
		mult := sess.Modifiers.MultiplierFor(p.ID)
		steps[p.ID] = base * mult
		if mult > 1 {
			sess.Modifiers.Remove(p.ID, model.ModifierDoubleNext)
		}
	}

	sess.StepsEarned = steps
	c.transition(sess, model.PhaseResults)
	c.emit(sess, model.EventStepsAwarded, acting.ID, map[string]any{"steps": steps})
	c.scheduleResume(sess, c.config.ResultsDelay, c.proceedResults)
}

// proceedResults builds the movement queue in roster order and starts
// processing it; an empty queue skips straight to turn advance.
func (c *Controller) proceedResults(ctx context.Context, sess *model.Session) {
	sess.MoveQueue = nil
	for _, p := range sess.Players {
		if sess.StepsEarned[p.ID] > 0 {
			sess.MoveQueue = append(sess.MoveQueue, model.PendingMove{
				PlayerID: p.ID,
				Steps:    sess.StepsEarned[p.ID],
			})
		}
	}
	if len(sess.MoveQueue) == 0 {
		c.advanceTurn(ctx, sess)
		return
	}
	c.transition(sess, model.PhaseMoving)
	c.processMoveQueue(ctx, sess)
}

// processMoveQueue applies queued moves one at a time. A move that crosses
// gates while stars remain suspends the queue and opens star selection;
// the queue resumes after the reveal commits.
func (c *Controller) processMoveQueue(ctx context.Context, sess *model.Session) {
	for len(sess.MoveQueue) > 0 {
		mv := sess.MoveQueue[0]
		sess.MoveQueue = sess.MoveQueue[1:]

		p := sess.PlayerByID(mv.PlayerID)
		if p == nil {
			continue
		}
		start := p.Position
		p.Position = board.Move(start, mv.Steps)
		gates := board.GatesCrossed(start, mv.Steps)
		c.emit(sess, model.EventPlayerMoved, p.ID, map[string]any{
			"from":  start,
			"to":    p.Position,
			"gates": gates,
		})

		if len(gates) > 0 && !sess.AllStarsEarned() {
			// One star pick per crossed gate, in traversal order
			sess.SelectingPlayer = p.ID
			sess.GateQueue = gates
			c.transition(sess, model.PhaseSelectStar)
			c.emit(sess, model.EventStarSelecting, p.ID, map[string]any{"gates": gates})
			return
		}
	}
	c.advanceTurn(ctx, sess)
}

// commitReveal awards the selected star after the suspense delay, then
// loops for remaining gate picks or resumes the movement queue.
func (c *Controller) commitReveal(ctx context.Context, sess *model.Session) {
	star := sess.StarByID(sess.SelectedStar)
	p := sess.PlayerByID(sess.SelectingPlayer)
	if star == nil || p == nil {
		c.advanceTurn(ctx, sess)
		return
	}

	star.Earned = true
	star.Owner = p.ID
	p.Score += star.Value
	p.Stars++
	sess.SelectedStar = -1
	c.emit(sess, model.EventStarRevealed, p.ID, map[string]any{
		"star_id": star.ID,
		"value":   star.Value,
	})

	if len(sess.GateQueue) > 0 {
		sess.GateQueue = sess.GateQueue[1:]
	}

	if sess.AllStarsEarned() {
		c.finishGame(ctx, sess)
		return
	}

	if len(sess.GateQueue) > 0 {
		c.transition(sess, model.PhaseSelectStar)
		c.emit(sess, model.EventStarSelecting, p.ID, map[string]any{"gates": sess.GateQueue})
		return
	}

	sess.SelectingPlayer = ""
	c.transition(sess, model.PhaseMoving)
	c.processMoveQueue(ctx, sess)
}

// advanceTurn resets per-turn state and hands the turn to the next
// unfrozen player, honoring extra-turn and reversed-order effects.
func (c *Controller) advanceTurn(ctx context.Context, sess *model.Session) {
	if sess.Phase == model.PhaseFinished {
		return
	}

	sess.ActiveTwist = nil
	sess.CurrentQuestion = nil
	sess.BonusQuestion = false
	sess.BonusSteps = 0
	sess.SpinDifficulty = 0
	sess.Answers = nil
	sess.StepsEarned = nil
	sess.MoveQueue = nil
	sess.GateQueue = nil
	sess.SelectingPlayer = ""
	sess.SelectedStar = -1

	if sess.ExtraTurnPending {
		sess.ExtraTurnPending = false
		c.transition(sess, model.PhaseSpinning)
		c.emit(sess, model.EventTurnAdvanced, sess.CurrentPlayer().ID, map[string]any{"extra_turn": true})
		return
	}

	dir := 1
	if sess.Reversed {
		dir = -1
		sess.ReversedTurns--
		if sess.ReversedTurns <= 0 {
			sess.Reversed = false
		}
	}

	n := len(sess.Players)
	next := ((sess.CurrentIdx+dir)%n + n) % n
	// Consume frozen skips; if everyone is frozen this clears them all
	// and lands back where it started
	for i := 0; i < n && sess.Modifiers.IsFrozen(sess.Players[next].ID); i++ {
		sess.Modifiers.Remove(sess.Players[next].ID, model.ModifierFrozen)
		next = ((next+dir)%n + n) % n
	}

	sess.Modifiers.Tick()
	sess.CurrentIdx = next
	c.transition(sess, model.PhaseSpinning)
	c.emit(sess, model.EventTurnAdvanced, sess.CurrentPlayer().ID, nil)
}

// finishGame moves the session to its terminal phase and records the
// summary. Winner is the highest score; ties go to the earlier joiner.
func (c *Controller) finishGame(ctx context.Context, sess *model.Session) {
	c.transition(sess, model.PhaseFinished)

	winner := sess.Players[0]
	scores := make(map[model.PlayerID]int, len(sess.Players))
	starCounts := make(map[model.PlayerID]int, len(sess.Players))
	for _, p := range sess.Players {
		scores[p.ID] = p.Score
		starCounts[p.ID] = p.Stars
		if p.Score > winner.Score {
			winner = p
		}
	}

	summary := &model.SessionSummary{
		ID:             sess.ID,
		FinalScores:    scores,
		StarsCollected: starCounts,
		Winner:         winner.ID,
		CompletedAt:    c.clock.Now(),
	}
	if err := c.storage.SaveSummary(ctx, summary); err != nil {
		c.logger.Error("failed to save session summary",
			slog.String("session_id", string(sess.ID)),
			slog.Any("error", err),
		)
	}

	c.logger.Info("game finished",
		slog.String("session_id", string(sess.ID)),
		slog.String("winner", string(winner.ID)),
		slog.Int("score", winner.Score),
	)
	c.emit(sess, model.EventGameFinished, winner.ID, map[string]any{"scores": scores})
}

// --- plumbing ---

// transition moves the session to a new phase and bumps the generation so
// timers scheduled under the old phase become no-ops.
func (c *Controller) transition(sess *model.Session, phase model.Phase) {
	sess.Phase = phase
	sess.Generation++
	sess.UpdatedAt = c.clock.Now()
}

// scheduleResume defers fn, tagged with the current generation. When it
// fires it reloads the session under the lock and runs only if no other
// transition has superseded the phase it was scheduled under.
func (c *Controller) scheduleResume(sess *model.Session, delay time.Duration, fn func(context.Context, *model.Session)) {
	id := sess.ID
	gen := sess.Generation
	c.scheduler.Schedule(delay, func() {
		c.resumeScheduled(id, gen, fn)
	})
}

func (c *Controller) resumeScheduled(id model.SessionID, gen uint64, fn func(context.Context, *model.Session)) {
	ctx := context.Background()

	c.mu.Lock()
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil || sess.Generation != gen || sess.Phase == model.PhaseFinished {
		c.mu.Unlock()
		return
	}
	fn(ctx, sess)
	if err := c.save(ctx, sess); err != nil {
		c.logger.Error("failed to save session after timer resume",
			slog.String("session_id", string(id)),
			slog.Any("error", err),
		)
	}
	c.mu.Unlock()

	if c.resumeHook != nil {
		c.resumeHook(id)
	}
}

func (c *Controller) loadActive(ctx context.Context, id model.SessionID) (*model.Session, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Phase == model.PhaseFinished {
		return nil, model.ErrSessionFinished
	}
	return sess, nil
}

func (c *Controller) loadInPhase(ctx context.Context, id model.SessionID, phase model.Phase) (*model.Session, error) {
	sess, err := c.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Phase != phase {
		return nil, model.ErrWrongPhase
	}
	return sess, nil
}

func (c *Controller) save(ctx context.Context, sess *model.Session) error {
	return c.storage.SaveSession(ctx, sess)
}

func (c *Controller) emit(sess *model.Session, t model.EventType, player model.PlayerID, payload any) {
	if c.eventSink == nil {
		return
	}
	c.eventSink(model.Event{
		Type:      t,
		Timestamp: c.clock.Now(),
		SessionID: sess.ID,
		PlayerID:  player,
		Payload:   payload,
	})
}
