// Package board provides pure geometry for the circular 25-step track.
package board

// TrackLength is the number of positions on the circular track
const TrackLength = 25

// Gates are the checkpoint positions, every 5th step
var Gates = []int{0, 5, 10, 15, 20}

// Move returns the position reached by advancing steps from start,
// wrapping around the track. Steps are always non-negative in this
// domain; backward effects compute an absolute target instead.
func Move(start, steps int) int {
	return (start + steps) % TrackLength
}

// MoveBack returns the position reached by moving backward steps from
// start, staying in range under wraparound.
func MoveBack(start, steps int) int {
	return ((start-steps)%TrackLength + TrackLength) % TrackLength
}

// IsGate reports whether the given position is a gate
func IsGate(position int) bool {
	for _, g := range Gates {
		if g == position {
			return true
		}
	}
	return false
}

// GatesCrossed returns the gates passed when advancing steps from start,
// in traversal order. Every intermediate position is enumerated, so a
// single move that crosses multiple gates reports all of them.
func GatesCrossed(start, steps int) []int {
	var crossed []int
	for i := 1; i <= steps; i++ {
		pos := Move(start, i)
		if IsGate(pos) {
			crossed = append(crossed, pos)
		}
	}
	return crossed
}

// PreviousGate returns the greatest gate strictly below the position,
// wrapping to the last gate when none exists. This models "go back to
// your last checkpoint".
func PreviousGate(position int) int {
	prev := -1
	for _, g := range Gates {
		if g < position {
			prev = g
		}
	}
	if prev == -1 {
		return Gates[len(Gates)-1]
	}
	return prev
}

// GateByIndex returns a gate position by round-robin index, used to place
// players at gates during session bootstrap.
func GateByIndex(i int) int {
	return Gates[i%len(Gates)]
}
