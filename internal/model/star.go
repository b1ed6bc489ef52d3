package model

// StarCount is the fixed number of stars in a session
const StarCount = 10

// StarTotalValue is the sum of the star values dealt at game start.
// Ownership changes never alter it, but an upgrade_zero_star twist raises
// the pool total by lifting the zero-value star to UpgradedStarValue.
const StarTotalValue = 1100

// StarValues returns the fixed value multiset assigned to stars at game
// start. The caller shuffles the order so values stay hidden until revealed.
func StarValues() []int {
	return []int{0, 50, 50, 100, 100, 150, 150, 200, 200, 250}
}

// Star is a hidden-value token earned by crossing gates
type Star struct {
	ID     int // 0..StarCount-1
	Value  int
	Earned bool
	Owner  PlayerID // empty until earned
}
