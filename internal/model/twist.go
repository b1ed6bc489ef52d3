package model

// TwistCardID identifies a card in the twist catalog
type TwistCardID int

// TwistEffect is the closed set of twist card effect kinds
type TwistEffect string

const (
	// Immediate effects
	TwistMoveBackGate    TwistEffect = "move_back_gate"
	TwistOthersBackGate  TwistEffect = "others_back_gate"
	TwistRandomTeleport  TwistEffect = "random_teleport"
	TwistEveryoneMoves   TwistEffect = "everyone_moves"
	TwistUpgradeZeroStar TwistEffect = "upgrade_zero_star"
	TwistInstantPoints   TwistEffect = "instant_points"
	TwistDoubleNext      TwistEffect = "double_next"
	TwistExtraTurn       TwistEffect = "extra_turn"
	TwistReverseOrder    TwistEffect = "reverse_order"
	TwistShield          TwistEffect = "shield"

	// Sub-phase effect
	TwistBonusQuestion TwistEffect = "bonus_question"

	// Choice-requiring effects
	TwistStealStar        TwistEffect = "steal_star"
	TwistSwapPositions    TwistEffect = "swap_positions"
	TwistFreezePlayer     TwistEffect = "freeze_player"
	TwistPointsSwap       TwistEffect = "points_swap"
	TwistTeleportGate     TwistEffect = "teleport_gate"
	TwistDifficultyChoice TwistEffect = "difficulty_choice"
	TwistCategoryMaster   TwistEffect = "category_master"
	TwistFreeStar         TwistEffect = "free_star"
	TwistStarPeek         TwistEffect = "star_peek"
)

// TargetScope describes who a twist effect applies to
type TargetScope string

const (
	TargetSelf   TargetScope = "self"
	TargetOthers TargetScope = "others"
	TargetChoose TargetScope = "choose"
	TargetAll    TargetScope = "all"
	TargetRandom TargetScope = "random"
)

// TwistCard is a static catalog entry. The deck holds a per-session used-id
// set over these; card content never changes during play.
type TwistCard struct {
	ID               TwistCardID
	Title            string
	Description      string
	Effect           TwistEffect
	Value            int // 0 means "use the effect's default"
	Scope            TargetScope
	Positive         bool
	RequiresChoice   bool
	RequiresQuestion bool
}

// Default effect values applied when a card's Value is zero
const (
	DefaultEveryoneMovesSteps = 2
	DefaultInstantPoints      = 50
	DefaultDoubleNextTurns    = 2
	DefaultBonusSteps         = 5
	DefaultReverseTurns       = 3
	DefaultShieldTurns        = 2
	DefaultCategoryTurns      = 3
	DefaultDoubleMultiplier   = 2
	UpgradedStarValue         = 250
)

// EffectValue returns the card's value, or the given default when unset
func (c TwistCard) EffectValue(def int) int {
	if c.Value > 0 {
		return c.Value
	}
	return def
}
