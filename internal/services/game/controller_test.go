package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/starchase/starchase-go/internal/catalog"
	"github.com/starchase/starchase-go/internal/dependencies/mocks"
	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/services/deck"
	"github.com/starchase/starchase-go/internal/services/question"
	"github.com/starchase/starchase-go/internal/services/twist"
	"github.com/starchase/starchase-go/internal/storage/memory"
	"github.com/starchase/starchase-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	random     *mocks.MockRandom
	clock      *mocks.MockClock
	scheduler  *mocks.MockScheduler
	questions  *question.Service
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	s.scheduler = mocks.NewMockScheduler()
	s.questions = question.New(s.storage, nil, s.random, logger)
	s.controller = New(
		s.storage,
		s.questions,
		deck.New(catalog.TwistCards(), s.random, logger),
		twist.NewEngine(s.random, logger),
		s.clock,
		s.random,
		s.scheduler,
		logger,
		DefaultConfig(),
	)
	s.ctx = context.Background()
}

// startSession saves a hand-built session so tests control positions and
// star values exactly. Star values are unshuffled: ids 0..9 hold
// 0,50,50,100,100,150,150,200,200,250 in order.
func (s *ControllerSuite) startSession(positions ...int) *model.Session {
	players := make([]model.Player, len(positions))
	for i, pos := range positions {
		id := model.PlayerID([]string{"p1", "p2", "p3", "p4"}[i])
		players[i] = model.Player{
			ID:          id,
			DisplayName: string(id),
			Kind:        model.PlayerKindHuman,
			Position:    pos,
		}
	}
	stars := make([]model.Star, model.StarCount)
	for i, v := range model.StarValues() {
		stars[i] = model.Star{ID: i, Value: v}
	}
	sess := &model.Session{
		ID:           "game-test",
		Phase:        model.PhaseSpinning,
		Players:      players,
		Stars:        stars,
		SelectedStar: -1,
		Settings:     model.Settings{Categories: catalog.Categories()},
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))
	return sess
}

// forceNextTwist marks every card except the given id used, so the next
// twist-face spin must draw that card. It persists the session, so any
// earlier tweaks to sess are saved along with it.
func (s *ControllerSuite) forceNextTwist(sess *model.Session, id model.TwistCardID) {
	for _, c := range catalog.TwistCards() {
		if c.ID != id {
			sess.UsedTwistIDs = append(sess.UsedTwistIDs, c.ID)
		}
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))
}

func (s *ControllerSuite) reload() *model.Session {
	sess, err := s.storage.GetSession(s.ctx, "game-test")
	s.Require().NoError(err)
	return sess
}

func (s *ControllerSuite) TestCreateSessionPlacesRosterAtGates() {
	s.random.QueueString("abc123")
	sess, err := s.controller.CreateSession(s.ctx, model.Settings{
		HumanNames:       []string{"Alice"},
		AutomatedPlayers: 2,
	})
	s.Require().NoError(err)

	s.Require().Len(sess.Players, 3)
	s.Equal(0, sess.Players[0].Position)
	s.Equal(5, sess.Players[1].Position)
	s.Equal(10, sess.Players[2].Position)
	s.Equal(model.PlayerKindHuman, sess.Players[0].Kind)
	s.Equal(model.PlayerKindAutomated, sess.Players[1].Kind)
	s.Equal(model.PhaseSpinning, sess.Phase)

	total := 0
	for _, star := range sess.Stars {
		total += star.Value
	}
	s.Equal(model.StarTotalValue, total)
	s.True(s.questions.IsLoaded(), "built-in bank loaded when no provider is set")
}

func (s *ControllerSuite) TestCreateSessionEmptySettingsFallsBackToDefaults() {
	sess, err := s.controller.CreateSession(s.ctx, model.Settings{})
	s.Require().NoError(err)

	s.Require().Len(sess.Players, 2)
	s.Equal(model.PlayerKindHuman, sess.Players[0].Kind)
	s.Equal(model.PlayerKindAutomated, sess.Players[1].Kind)
}

func (s *ControllerSuite) TestDifficultyThreeTurnWithGateCrossing() {
	s.startSession(3, 7)
	s.questions.LoadQuestions([]model.Question{
		{ID: "q1", Difficulty: 3, CorrectIndex: 1},
	})

	s.random.QueueIntn(2) // wheel face 2 = difficulty 3
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))

	sess := s.reload()
	s.Equal(model.PhaseQuestion, sess.Phase)
	s.Equal(3, sess.SpinDifficulty)

	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, "game-test", "p1", 1))
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, "game-test", "p2", 1))
	s.Equal(model.PhaseCountdown, s.reload().Phase)

	s.Require().True(s.scheduler.FireNext()) // countdown elapses
	sess = s.reload()
	s.Equal(model.PhaseResults, sess.Phase)
	s.Equal(3, sess.StepsEarned["p1"], "acting player earns difficulty steps")
	s.Equal(1, sess.StepsEarned["p2"], "others earn a flat step")

	s.Require().True(s.scheduler.FireNext()) // results display elapses
	sess = s.reload()
	s.Equal(model.PhaseSelectStar, sess.Phase, "crossing gate 5 opens star selection")
	s.Equal(model.PlayerID("p1"), sess.SelectingPlayer)
	s.Equal(6, sess.PlayerByID("p1").Position)

	s.Require().NoError(s.controller.SelectStar(s.ctx, "game-test", "p1", 9))
	s.Equal(model.PhaseRevealStar, s.reload().Phase)

	s.Require().True(s.scheduler.FireNext()) // reveal suspense elapses
	sess = s.reload()
	star := sess.StarByID(9)
	s.True(star.Earned)
	s.Equal(model.PlayerID("p1"), star.Owner)
	s.Equal(250, sess.PlayerByID("p1").Score)
	s.Equal(1, sess.PlayerByID("p1").Stars)

	// p2's queued move resumes, crosses nothing, and the turn advances
	s.Equal(model.PhaseSpinning, sess.Phase)
	s.Equal(8, sess.PlayerByID("p2").Position)
	s.Equal(1, sess.CurrentIdx)
}

func (s *ControllerSuite) TestInstantPointsTwistAdvancesWithoutChoice() {
	sess := s.startSession(3, 7)
	s.forceNextTwist(sess, 8) // instant_points, default 50

	s.random.QueueIntn(5) // twist face
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))

	sess = s.reload()
	s.Equal(model.PhaseTwist, sess.Phase)
	s.Equal(50, sess.PlayerByID("p1").Score)

	s.Require().True(s.scheduler.FireNext()) // card display elapses
	sess = s.reload()
	s.Equal(model.PhaseSpinning, sess.Phase)
	s.Equal(1, sess.CurrentIdx)
}

func (s *ControllerSuite) TestStealStarTransfersOneStar() {
	sess := s.startSession(3, 7)
	for _, id := range []int{3, 5} { // values 100 and 150
		star := sess.StarByID(id)
		star.Earned = true
		star.Owner = "p2"
	}
	p2 := sess.PlayerByID("p2")
	p2.Score = 250
	p2.Stars = 2
	s.forceNextTwist(sess, 19) // steal_star

	s.random.QueueIntn(5) // twist face
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))
	s.Equal(model.PhaseTwistChoice, s.reload().Phase)

	candidates, err := s.controller.Candidates(s.ctx, "game-test")
	s.Require().NoError(err)
	s.Equal([]model.PlayerID{"p2"}, candidates.Players)

	s.random.QueueIntn(0) // steal the first of p2's stars (id 3, value 100)
	s.Require().NoError(s.controller.SubmitTwistChoice(s.ctx, "game-test", "p1", twist.ChoiceTarget{PlayerID: "p2"}))

	sess = s.reload()
	s.Equal(model.PlayerID("p1"), sess.StarByID(3).Owner)
	s.Equal(100, sess.PlayerByID("p1").Score)
	s.Equal(1, sess.PlayerByID("p1").Stars)
	s.Equal(150, sess.PlayerByID("p2").Score)
	s.Equal(1, sess.PlayerByID("p2").Stars)
	s.Equal(model.PhaseSpinning, sess.Phase)
	s.Equal(1, sess.CurrentIdx)
}

func (s *ControllerSuite) TestFreezeSkipsVictimOnNextAdvance() {
	sess := s.startSession(0, 5, 10)
	s.forceNextTwist(sess, 22) // freeze_player

	s.random.QueueIntn(5)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))
	s.Require().NoError(s.controller.SubmitTwistChoice(s.ctx, "game-test", "p1", twist.ChoiceTarget{PlayerID: "p2"}))

	sess = s.reload()
	s.Equal(2, sess.CurrentIdx, "frozen p2 is skipped")
	s.False(sess.Modifiers.IsFrozen("p2"), "the skip consumes the frozen modifier")
}

func (s *ControllerSuite) TestLastStarViaFreeStarFinishesGame() {
	sess := s.startSession(3, 7)
	for id := 0; id < 9; id++ {
		star := sess.StarByID(id)
		star.Earned = true
		star.Owner = "p2"
	}
	p2 := sess.PlayerByID("p2")
	p2.Score = 850
	p2.Stars = 9
	s.forceNextTwist(sess, 28) // free_star

	s.random.QueueIntn(5)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))
	s.Require().NoError(s.controller.SubmitTwistChoice(s.ctx, "game-test", "p1", twist.ChoiceTarget{StarID: 9}))

	sess = s.reload()
	s.Equal(model.PhaseFinished, sess.Phase)
	s.Equal(250, sess.PlayerByID("p1").Score)

	summary, err := s.controller.Summary(s.ctx, "game-test")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p2"), summary.Winner)
	s.Equal(850, summary.FinalScores["p2"])
	s.Equal(9, summary.StarsCollected["p2"])

	s.ErrorIs(s.controller.Spin(s.ctx, "game-test", "p2"), model.ErrSessionFinished)
}

func (s *ControllerSuite) TestWinnerTieBreaksByJoinOrder() {
	sess := s.startSession(3, 7)
	for id := 0; id < 9; id++ {
		star := sess.StarByID(id)
		star.Earned = true
		star.Owner = "p2"
	}
	p2 := sess.PlayerByID("p2")
	p2.Score = 250 // ties with the 250 p1 is about to claim
	p2.Stars = 9
	s.forceNextTwist(sess, 28)

	s.random.QueueIntn(5)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))
	s.Require().NoError(s.controller.SubmitTwistChoice(s.ctx, "game-test", "p1", twist.ChoiceTarget{StarID: 9}))

	summary, err := s.controller.Summary(s.ctx, "game-test")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), summary.Winner)
}

func (s *ControllerSuite) TestExtraTurnReusesSamePlayer() {
	sess := s.startSession(3, 7)
	s.forceNextTwist(sess, 14) // extra_turn

	s.random.QueueIntn(5)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))
	s.Require().True(s.scheduler.FireNext())

	sess = s.reload()
	s.Equal(model.PhaseSpinning, sess.Phase)
	s.Equal(0, sess.CurrentIdx, "acting player spins again")
	s.False(sess.ExtraTurnPending)
}

func (s *ControllerSuite) TestReverseOrderAdvancesBackward() {
	sess := s.startSession(0, 5, 10)
	s.forceNextTwist(sess, 16) // reverse_order, three turns

	s.random.QueueIntn(5)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))
	s.Require().True(s.scheduler.FireNext())

	sess = s.reload()
	s.Equal(2, sess.CurrentIdx, "turn order wraps backward")
	s.True(sess.Reversed)
	s.Equal(2, sess.ReversedTurns)
}

func (s *ControllerSuite) TestDifficultyOverridePreemptsDifficultyFace() {
	sess := s.startSession(3, 7)
	sess.DifficultyOverride = 5
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))
	s.questions.LoadQuestions([]model.Question{
		{ID: "q5", Difficulty: 5, CorrectIndex: 0},
	})

	s.random.QueueIntn(0) // wheel face 0 = difficulty 1, preempted
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))

	sess = s.reload()
	s.Equal(5, sess.SpinDifficulty)
	s.Equal(0, sess.DifficultyOverride, "override is consumed")
}

func (s *ControllerSuite) TestDifficultyOverrideSurvivesTwistFace() {
	sess := s.startSession(3, 7)
	sess.DifficultyOverride = 5
	s.forceNextTwist(sess, 8)

	s.random.QueueIntn(5)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))

	s.Equal(5, s.reload().DifficultyOverride)
}

func (s *ControllerSuite) TestBonusQuestionAwardsBonusStepsAndChecksGates() {
	sess := s.startSession(3, 7)
	s.forceNextTwist(sess, 12) // bonus_question, five steps
	s.questions.LoadQuestions([]model.Question{
		{ID: "q1", Difficulty: 3, CorrectIndex: 0},
	})

	s.random.QueueIntn(5, 0, 2) // twist face, draw index, bonus difficulty 3
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))

	sess = s.reload()
	s.Equal(model.PhaseTwistBonus, sess.Phase)
	s.True(sess.BonusQuestion)
	s.Equal(5, sess.BonusSteps)

	s.ErrorIs(s.controller.SubmitAnswer(s.ctx, "game-test", "p2", 0), model.ErrNotActingPlayer)
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, "game-test", "p1", 0))

	s.Require().True(s.scheduler.FireNext()) // countdown
	sess = s.reload()
	s.Equal(5, sess.StepsEarned["p1"])
	s.Zero(sess.StepsEarned["p2"])

	s.Require().True(s.scheduler.FireNext()) // results
	sess = s.reload()
	s.Equal(model.PhaseSelectStar, sess.Phase, "bonus movement still triggers the star protocol")
	s.Equal(8, sess.PlayerByID("p1").Position)
}

func (s *ControllerSuite) TestDoubleNextConsumedAfterOneUse() {
	sess := s.startSession(3, 7)
	sess.Modifiers.Add(model.PlayerModifier{
		PlayerID:       "p1",
		Type:           model.ModifierDoubleNext,
		TurnsRemaining: 2,
		Value:          2,
	})
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))
	s.questions.LoadQuestions([]model.Question{
		{ID: "q1", Difficulty: 2, CorrectIndex: 0},
	})

	s.random.QueueIntn(1) // difficulty 2
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, "game-test", "p1", 0))
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, "game-test", "p2", 0))
	s.Require().True(s.scheduler.FireNext())

	sess = s.reload()
	s.Equal(4, sess.StepsEarned["p1"], "difficulty steps are doubled")
	s.Equal(1, sess.StepsEarned["p2"])
	s.False(sess.Modifiers.Has("p1", model.ModifierDoubleNext), "consumed on use")
}

func (s *ControllerSuite) TestMultiGateMoveGrantsOnePickPerGate() {
	sess := s.startSession(4, 7)
	sess.MoveQueue = []model.PendingMove{{PlayerID: "p1", Steps: 7}}
	s.controller.transition(sess, model.PhaseMoving)
	s.controller.processMoveQueue(s.ctx, sess)
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	s.Equal(model.PhaseSelectStar, sess.Phase)
	s.Equal([]int{5, 10}, sess.GateQueue)

	s.Require().NoError(s.controller.SelectStar(s.ctx, "game-test", "p1", 0))
	s.Require().True(s.scheduler.FireNext())
	sess = s.reload()
	s.Equal(model.PhaseSelectStar, sess.Phase, "second gate grants a second pick")
	s.Equal([]int{10}, sess.GateQueue)

	s.Require().NoError(s.controller.SelectStar(s.ctx, "game-test", "p1", 1))
	s.Require().True(s.scheduler.FireNext())
	sess = s.reload()
	s.Equal(model.PhaseSpinning, sess.Phase)
	s.Equal(2, sess.PlayerByID("p1").Stars)
}

func (s *ControllerSuite) TestAllFrozenClearsEveryoneAndProceeds() {
	sess := s.startSession(3, 7)
	sess.Modifiers.Add(model.PlayerModifier{PlayerID: "p1", Type: model.ModifierFrozen, TurnsRemaining: 1})
	sess.Modifiers.Add(model.PlayerModifier{PlayerID: "p2", Type: model.ModifierFrozen, TurnsRemaining: 1})

	s.controller.advanceTurn(s.ctx, sess)

	s.False(sess.Modifiers.IsFrozen("p1"))
	s.False(sess.Modifiers.IsFrozen("p2"))
	s.Equal(model.PhaseSpinning, sess.Phase)
}

func (s *ControllerSuite) TestStaleTimerIsNoOp() {
	sess := s.startSession(3, 7)
	s.questions.LoadQuestions([]model.Question{
		{ID: "q1", Difficulty: 1, CorrectIndex: 0},
	})

	s.random.QueueIntn(0)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, "game-test", "p1", 0))
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, "game-test", "p2", 0))
	s.Equal(1, s.scheduler.Pending())

	// A superseding transition bumps the generation before the timer fires
	sess = s.reload()
	sess.Generation++
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	s.Require().True(s.scheduler.FireNext())
	sess = s.reload()
	s.Nil(sess.StepsEarned, "stale countdown must not mutate the session")
	s.Equal(model.PhaseCountdown, sess.Phase)
}

func (s *ControllerSuite) TestQuestionExhaustionEndsGame() {
	s.startSession(3, 7)
	s.questions.LoadQuestions(nil)

	s.random.QueueIntn(0)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))

	s.Equal(model.PhaseFinished, s.reload().Phase)
}

func (s *ControllerSuite) TestIntentValidation() {
	s.startSession(3, 7)
	s.questions.LoadQuestions([]model.Question{
		{ID: "q1", Difficulty: 1, CorrectIndex: 0},
	})

	s.ErrorIs(s.controller.Spin(s.ctx, "game-test", "p2"), model.ErrNotActingPlayer)
	s.ErrorIs(s.controller.SubmitAnswer(s.ctx, "game-test", "p1", 0), model.ErrWrongPhase)

	s.random.QueueIntn(0)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))

	s.ErrorIs(s.controller.SubmitAnswer(s.ctx, "game-test", "p1", 9), model.ErrInvalidOption)
	s.ErrorIs(s.controller.SubmitAnswer(s.ctx, "game-test", "ghost", 0), model.ErrPlayerNotFound)
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, "game-test", "p1", 0))
	s.ErrorIs(s.controller.SubmitAnswer(s.ctx, "game-test", "p1", 0), model.ErrAlreadyAnswered)

	s.ErrorIs(s.controller.Spin(s.ctx, "missing", "p1"), model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestEventsEmittedThroughSink() {
	var types []model.EventType
	s.controller.SetEventSink(func(e model.Event) {
		types = append(types, e.Type)
	})

	sess := s.startSession(3, 7)
	s.forceNextTwist(sess, 8)
	s.random.QueueIntn(5)
	s.Require().NoError(s.controller.Spin(s.ctx, "game-test", "p1"))
	s.Require().True(s.scheduler.FireNext())

	s.Equal([]model.EventType{
		model.EventTwistDrawn,
		model.EventTwistApplied,
		model.EventTurnAdvanced,
	}, types)
}
