package clock

import "time"

// Clock threads "now" into components that would otherwise read the ambient
// time, so status and calendar computations stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a settable clock for tests.
type Fixed struct {
	current time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

func (f *Fixed) Now() time.Time {
	return f.current
}

func (f *Fixed) Set(t time.Time) {
	f.current = t
}

func (f *Fixed) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
