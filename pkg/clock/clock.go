package clock

import "time"

// Clock provides the current time. Services take a Clock instead of calling
// time.Now directly so that borrow/return timestamps and the not-in-the-future
// checks are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns a Clock backed by the system clock (UTC).
func New() Clock {
	return realClock{}
}

// Frozen is a Clock that always reports the same instant.
type Frozen struct {
	Time time.Time
}

func (f Frozen) Now() time.Time {
	return f.Time
}
