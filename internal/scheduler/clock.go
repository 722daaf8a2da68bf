package scheduler

import "time"

// Clock supplies current time and one-shot timers so reminder timing
// can be driven manually in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable one-shot timer handle.
type Timer interface {
	// Stop reports whether the timer was cancelled before firing.
	Stop() bool
}

type realClock struct{}

// NewClock returns a Clock backed by package time.
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
