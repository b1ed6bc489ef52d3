package scheduler

import "time"

// Scheduler defers a callback by a duration. The game controller uses it
// for timed resumptions (countdown display, reveal suspense, automated
// players' thinking delays). Callbacks carry no cancellation handle;
// instead callers guard them with a session generation counter so a
// callback from a superseded phase is a no-op when it fires.
type Scheduler interface {
	Schedule(d time.Duration, fn func())
}

// RealScheduler implements Scheduler with time.AfterFunc
type RealScheduler struct{}

// New creates a new RealScheduler
func New() *RealScheduler {
	return &RealScheduler{}
}

// Schedule runs fn on its own goroutine after d has elapsed
func (s *RealScheduler) Schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
