package kernel

import "time"

// Clock is the date source for operations that default to "now".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Tests and batch runs that
// replay a past period use it.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
