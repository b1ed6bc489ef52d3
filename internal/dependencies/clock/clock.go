package clock

import "time"

// Clock abstracts the wall clock so session timestamps stay controllable
// in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a RealClock
func New() *RealClock {
	return &RealClock{}
}

var _ Clock = (*RealClock)(nil)

func (c *RealClock) Now() time.Time {
	return time.Now()
}
