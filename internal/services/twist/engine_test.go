package twist

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/starchase/starchase-go/internal/board"
	"github.com/starchase/starchase-go/internal/dependencies/mocks"
	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	random *mocks.MockRandom
	engine *Engine
	sess   *model.Session
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.engine = NewEngine(s.random, testutil.NopLogger())
	s.sess = &model.Session{
		ID: "session-1",
		Players: []model.Player{
			{ID: "p1", DisplayName: "Alice", Position: 7},
			{ID: "p2", DisplayName: "Bob", Position: 12},
			{ID: "p3", DisplayName: "Carol", Position: 3},
		},
		Stars: []model.Star{
			{ID: 0, Value: 0},
			{ID: 1, Value: 100},
			{ID: 2, Value: 250},
		},
		Settings: model.Settings{Categories: []string{"science", "history"}},
	}
}

func (s *EngineSuite) player(id model.PlayerID) *model.Player {
	p := s.sess.PlayerByID(id)
	s.Require().NotNil(p)
	return p
}

func (s *EngineSuite) giveStar(starID int, owner model.PlayerID) {
	star := s.sess.StarByID(starID)
	s.Require().NotNil(star)
	star.Earned = true
	star.Owner = owner
	p := s.player(owner)
	p.Score += star.Value
	p.Stars++
}

func (s *EngineSuite) TestMoveBackGateWithValueStepsBack() {
	out := s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistMoveBackGate, Value: 3})

	s.Equal(DirectiveNextTurn, out.Directive)
	s.Equal(4, s.player("p1").Position)
}

func (s *EngineSuite) TestMoveBackGateWithoutValueSnapsToGate() {
	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistMoveBackGate})

	s.Equal(5, s.player("p1").Position)
}

func (s *EngineSuite) TestOthersBackGateSparesActorAndShielded() {
	s.sess.Modifiers.Add(model.PlayerModifier{PlayerID: "p2", Type: model.ModifierShield, TurnsRemaining: 2})

	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistOthersBackGate})

	s.Equal(7, s.player("p1").Position, "actor untouched")
	s.Equal(12, s.player("p2").Position, "shield holder untouched")
	s.Equal(0, s.player("p3").Position)
	s.False(s.sess.Modifiers.HasShield("p2"), "shield consumed")
}

func (s *EngineSuite) TestRandomTeleport() {
	s.random.QueueIntn(19)

	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistRandomTeleport})

	s.Equal(19, s.player("p1").Position)
}

func (s *EngineSuite) TestEveryoneMovesShiftsWholeRoster() {
	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistEveryoneMoves, Value: 2})

	s.Equal(9, s.player("p1").Position)
	s.Equal(14, s.player("p2").Position)
	s.Equal(5, s.player("p3").Position)
	s.Empty(s.sess.MoveQueue, "mass movement bypasses the movement queue")
}

func (s *EngineSuite) TestUpgradeZeroStar() {
	s.giveStar(0, "p1")

	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistUpgradeZeroStar})

	s.Equal(model.UpgradedStarValue, s.sess.StarByID(0).Value)
	s.Equal(model.UpgradedStarValue, s.player("p1").Score)

	// The upgrade is the one effect that grows the dealt star pool
	total := 0
	for _, star := range s.sess.Stars {
		total += star.Value
	}
	s.Equal(350+model.UpgradedStarValue, total)
}

func (s *EngineSuite) TestUpgradeZeroStarNoOpWithoutOne() {
	s.giveStar(1, "p1")

	out := s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistUpgradeZeroStar})

	s.Equal(DirectiveNextTurn, out.Directive)
	s.Equal(100, s.player("p1").Score)
}

func (s *EngineSuite) TestInstantPointsUsesDefaultWhenUnset() {
	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistInstantPoints})

	s.Equal(model.DefaultInstantPoints, s.player("p1").Score)
}

func (s *EngineSuite) TestDoubleNextAddsModifier() {
	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistDoubleNext})

	s.Equal(model.DefaultDoubleMultiplier, s.sess.Modifiers.MultiplierFor("p1"))
}

func (s *EngineSuite) TestBonusQuestionDirective() {
	out := s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistBonusQuestion, RequiresQuestion: true})

	s.Equal(DirectiveBonusQuestion, out.Directive)
}

func (s *EngineSuite) TestExtraTurnAndReverseOrder() {
	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistExtraTurn})
	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistReverseOrder})

	s.True(s.sess.ExtraTurnPending)
	s.True(s.sess.Reversed)
	s.Equal(model.DefaultReverseTurns, s.sess.ReversedTurns)
}

func (s *EngineSuite) TestShieldGrantsModifier() {
	s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistShield})

	s.True(s.sess.Modifiers.HasShield("p1"))
}

func (s *EngineSuite) TestChoiceCardAwaitsChoice() {
	out := s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistFreezePlayer, RequiresChoice: true})

	s.Equal(DirectiveAwaitChoice, out.Directive)
}

func (s *EngineSuite) TestStealStarWithNoTargetsSkipsToNextTurn() {
	// Nobody owns a star yet
	out := s.engine.Resolve(s.sess, model.TwistCard{Effect: model.TwistStealStar, RequiresChoice: true})

	s.Equal(DirectiveNextTurn, out.Directive)
	s.Equal("no valid target", out.Message)
}

func (s *EngineSuite) TestStealStarCandidatesExcludeSelfAndStarless() {
	s.giveStar(1, "p2")

	c := s.engine.Candidates(s.sess, model.TwistCard{Effect: model.TwistStealStar})

	s.Equal([]model.PlayerID{"p2"}, c.Players)
}

func (s *EngineSuite) TestApplyStealStarTransfersRandomStar() {
	s.giveStar(1, "p2")
	s.giveStar(2, "p2")
	s.random.QueueIntn(1) // steal the second of p2's stars (id 2, value 250)

	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistStealStar}, ChoiceTarget{PlayerID: "p2"})

	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), s.sess.StarByID(2).Owner)
	s.Equal(250, s.player("p1").Score)
	s.Equal(1, s.player("p1").Stars)
	s.Equal(100, s.player("p2").Score)
	s.Equal(1, s.player("p2").Stars)
}

func (s *EngineSuite) TestApplyStealStarConsumesShield() {
	s.giveStar(1, "p2")
	s.sess.Modifiers.Add(model.PlayerModifier{PlayerID: "p2", Type: model.ModifierShield, TurnsRemaining: 2})

	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistStealStar}, ChoiceTarget{PlayerID: "p2"})

	s.Require().NoError(err)
	s.Equal(model.PlayerID("p2"), s.sess.StarByID(1).Owner, "star stays put")
	s.False(s.sess.Modifiers.HasShield("p2"))
}

func (s *EngineSuite) TestApplyStealStarRejectsSelf() {
	s.giveStar(1, "p1")

	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistStealStar}, ChoiceTarget{PlayerID: "p1"})

	s.ErrorIs(err, model.ErrInvalidTarget)
}

func (s *EngineSuite) TestApplySwapPositions() {
	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistSwapPositions}, ChoiceTarget{PlayerID: "p2"})

	s.Require().NoError(err)
	s.Equal(12, s.player("p1").Position)
	s.Equal(7, s.player("p2").Position)
}

func (s *EngineSuite) TestApplyFreezePlayer() {
	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistFreezePlayer}, ChoiceTarget{PlayerID: "p3"})

	s.Require().NoError(err)
	s.True(s.sess.Modifiers.IsFrozen("p3"))
}

func (s *EngineSuite) TestShieldBlocksFreeze() {
	s.sess.Modifiers.Add(model.PlayerModifier{PlayerID: "p3", Type: model.ModifierShield, TurnsRemaining: 1})

	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistFreezePlayer}, ChoiceTarget{PlayerID: "p3"})

	s.Require().NoError(err)
	s.False(s.sess.Modifiers.IsFrozen("p3"))
	s.False(s.sess.Modifiers.HasShield("p3"))
}

func (s *EngineSuite) TestPointsSwapOnlyWhenBehind() {
	s.player("p1").Score = 100
	s.player("p2").Score = 400

	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistPointsSwap}, ChoiceTarget{PlayerID: "p2"})

	s.Require().NoError(err)
	s.Equal(400, s.player("p1").Score)
	s.Equal(100, s.player("p2").Score)
}

func (s *EngineSuite) TestPointsSwapNoOpWhenAhead() {
	s.player("p1").Score = 500
	s.player("p2").Score = 100

	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistPointsSwap}, ChoiceTarget{PlayerID: "p2"})

	s.Require().NoError(err)
	s.Equal(500, s.player("p1").Score)
	s.Equal(100, s.player("p2").Score)
}

func (s *EngineSuite) TestApplyTeleportGate() {
	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistTeleportGate}, ChoiceTarget{Gate: 15})

	s.Require().NoError(err)
	s.Equal(15, s.player("p1").Position)
}

func (s *EngineSuite) TestTeleportGateRejectsNonGate() {
	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistTeleportGate}, ChoiceTarget{Gate: 7})

	s.ErrorIs(err, model.ErrInvalidTarget)
}

func (s *EngineSuite) TestApplyDifficultyChoice() {
	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistDifficultyChoice}, ChoiceTarget{Difficulty: 5})

	s.Require().NoError(err)
	s.Equal(5, s.sess.DifficultyOverride)

	err = s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistDifficultyChoice}, ChoiceTarget{Difficulty: 6})
	s.ErrorIs(err, model.ErrInvalidTarget)
}

func (s *EngineSuite) TestApplyCategoryMaster() {
	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistCategoryMaster}, ChoiceTarget{Category: "science"})

	s.Require().NoError(err)
	s.Equal("science", s.sess.Modifiers.ForcedCategoryFor("p1"))
}

func (s *EngineSuite) TestApplyFreeStar() {
	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistFreeStar}, ChoiceTarget{StarID: 1})

	s.Require().NoError(err)
	star := s.sess.StarByID(1)
	s.True(star.Earned)
	s.Equal(model.PlayerID("p1"), star.Owner)
	s.Equal(100, s.player("p1").Score)
	s.Equal(1, s.player("p1").Stars)
}

func (s *EngineSuite) TestFreeStarRejectsEarnedStar() {
	s.giveStar(1, "p2")

	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistFreeStar}, ChoiceTarget{StarID: 1})

	s.ErrorIs(err, model.ErrStarAlreadyEarned)
}

func (s *EngineSuite) TestApplyStarPeek() {
	err := s.engine.ApplyChoice(s.sess, model.TwistCard{Effect: model.TwistStarPeek}, ChoiceTarget{StarID: 2})

	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), s.sess.PeekedStars[2])
}

func (s *EngineSuite) TestCandidatesForGateAndStarChoices() {
	s.giveStar(0, "p2")

	gates := s.engine.Candidates(s.sess, model.TwistCard{Effect: model.TwistTeleportGate})
	s.Equal(board.Gates, gates.Gates)

	stars := s.engine.Candidates(s.sess, model.TwistCard{Effect: model.TwistFreeStar})
	s.Equal([]int{1, 2}, stars.StarIDs)
}
