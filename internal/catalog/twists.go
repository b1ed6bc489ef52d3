// Package catalog holds the static game content: the twist card catalog
// and the built-in fallback question bank.
package catalog

import "github.com/starchase/starchase-go/internal/model"

// TwistCards returns the fixed 30-card twist catalog. The deck service
// draws from a per-session used-id set over these cards; duplicates of an
// effect carry different values.
func TwistCards() []model.TwistCard {
	return []model.TwistCard{
		{ID: 1, Title: "Checkpoint Slide", Description: "Slide back to your last gate", Effect: model.TwistMoveBackGate, Scope: model.TargetSelf},
		{ID: 2, Title: "Three Steps Back", Description: "Move back three steps", Effect: model.TwistMoveBackGate, Value: 3, Scope: model.TargetSelf},
		{ID: 3, Title: "Mass Recall", Description: "Everyone else returns to their last gate", Effect: model.TwistOthersBackGate, Scope: model.TargetOthers, Positive: true},
		{ID: 4, Title: "Wormhole", Description: "Teleport to a random spot on the track", Effect: model.TwistRandomTeleport, Scope: model.TargetSelf},
		{ID: 5, Title: "Group March", Description: "Everyone advances two steps", Effect: model.TwistEveryoneMoves, Scope: model.TargetAll, Positive: true},
		{ID: 6, Title: "Forced March", Description: "Everyone advances three steps", Effect: model.TwistEveryoneMoves, Value: 3, Scope: model.TargetAll, Positive: true},
		{ID: 7, Title: "Polish the Dud", Description: "Your worthless star becomes worth 250", Effect: model.TwistUpgradeZeroStar, Scope: model.TargetSelf, Positive: true},
		{ID: 8, Title: "Pocket Change", Description: "Gain 50 points instantly", Effect: model.TwistInstantPoints, Scope: model.TargetSelf, Positive: true},
		{ID: 9, Title: "Windfall", Description: "Gain 100 points instantly", Effect: model.TwistInstantPoints, Value: 100, Scope: model.TargetSelf, Positive: true},
		{ID: 10, Title: "Momentum", Description: "Your next correct answer counts double", Effect: model.TwistDoubleNext, Scope: model.TargetSelf, Positive: true},
		{ID: 11, Title: "Second Wind", Description: "Your next correct answer counts double", Effect: model.TwistDoubleNext, Scope: model.TargetSelf, Positive: true},
		{ID: 12, Title: "Lightning Round", Description: "Answer a bonus question for five steps", Effect: model.TwistBonusQuestion, Scope: model.TargetSelf, Positive: true, RequiresQuestion: true},
		{ID: 13, Title: "Sudden Quiz", Description: "Answer a bonus question for three steps", Effect: model.TwistBonusQuestion, Value: 3, Scope: model.TargetSelf, Positive: true, RequiresQuestion: true},
		{ID: 14, Title: "Encore", Description: "Take another turn after this one", Effect: model.TwistExtraTurn, Scope: model.TargetSelf, Positive: true},
		{ID: 15, Title: "Deja Vu", Description: "Take another turn after this one", Effect: model.TwistExtraTurn, Scope: model.TargetSelf, Positive: true},
		{ID: 16, Title: "Turn the Tide", Description: "Turn order reverses for three turns", Effect: model.TwistReverseOrder, Scope: model.TargetAll},
		{ID: 17, Title: "Aegis", Description: "Shielded from bad twists for two turns", Effect: model.TwistShield, Scope: model.TargetSelf, Positive: true},
		{ID: 18, Title: "Bulwark", Description: "Shielded from bad twists for three turns", Effect: model.TwistShield, Value: 3, Scope: model.TargetSelf, Positive: true},
		{ID: 19, Title: "Star Heist", Description: "Steal a random star from a rival", Effect: model.TwistStealStar, Scope: model.TargetChoose, RequiresChoice: true},
		{ID: 20, Title: "Switcheroo", Description: "Swap board positions with a rival", Effect: model.TwistSwapPositions, Scope: model.TargetChoose, RequiresChoice: true},
		{ID: 21, Title: "Trade Places", Description: "Swap board positions with a rival", Effect: model.TwistSwapPositions, Scope: model.TargetChoose, RequiresChoice: true},
		{ID: 22, Title: "Deep Freeze", Description: "Freeze a rival for their next turn", Effect: model.TwistFreezePlayer, Scope: model.TargetChoose, RequiresChoice: true},
		{ID: 23, Title: "Cold Snap", Description: "Freeze a rival for their next turn", Effect: model.TwistFreezePlayer, Scope: model.TargetChoose, RequiresChoice: true},
		{ID: 24, Title: "Robin Hood", Description: "Swap scores with a richer rival", Effect: model.TwistPointsSwap, Scope: model.TargetChoose, RequiresChoice: true},
		{ID: 25, Title: "Gate Pass", Description: "Teleport to a gate of your choice", Effect: model.TwistTeleportGate, Scope: model.TargetChoose, Positive: true, RequiresChoice: true},
		{ID: 26, Title: "Loaded Wheel", Description: "Pick the difficulty of your next spin", Effect: model.TwistDifficultyChoice, Scope: model.TargetChoose, Positive: true, RequiresChoice: true},
		{ID: 27, Title: "Specialist", Description: "Lock your questions to one category", Effect: model.TwistCategoryMaster, Scope: model.TargetChoose, Positive: true, RequiresChoice: true},
		{ID: 28, Title: "Falling Star", Description: "Claim any unearned star outright", Effect: model.TwistFreeStar, Scope: model.TargetChoose, Positive: true, RequiresChoice: true},
		{ID: 29, Title: "Crystal Ball", Description: "Peek at an unearned star's value", Effect: model.TwistStarPeek, Scope: model.TargetChoose, Positive: true, RequiresChoice: true},
		{ID: 30, Title: "Spyglass", Description: "Peek at an unearned star's value", Effect: model.TwistStarPeek, Scope: model.TargetChoose, Positive: true, RequiresChoice: true},
	}
}
