package mocks

import (
	"time"

	"github.com/starchase/starchase-go/internal/dependencies/scheduler"
)

// ScheduledCall records one deferred callback
type ScheduledCall struct {
	Delay time.Duration
	Fn    func()
}

// MockScheduler collects scheduled callbacks without running them.
// Tests fire them explicitly to simulate timers elapsing.
type MockScheduler struct {
	Calls []ScheduledCall
}

// Ensure MockScheduler implements Scheduler
var _ scheduler.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// Schedule records the callback without running it
func (s *MockScheduler) Schedule(d time.Duration, fn func()) {
	s.Calls = append(s.Calls, ScheduledCall{Delay: d, Fn: fn})
}

// FireNext runs the oldest pending callback, returning false if none
func (s *MockScheduler) FireNext() bool {
	if len(s.Calls) == 0 {
		return false
	}
	call := s.Calls[0]
	s.Calls = s.Calls[1:]
	call.Fn()
	return true
}

// FireAll runs pending callbacks until the queue drains, including any
// callbacks scheduled while firing
func (s *MockScheduler) FireAll() {
	for s.FireNext() {
	}
}

// Pending returns the number of recorded callbacks not yet fired
func (s *MockScheduler) Pending() int {
	return len(s.Calls)
}
