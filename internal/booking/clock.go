package booking

import "time"

// Clock abstracts wall-clock reads so the scheduling and reservation
// cutoffs can be tested with deterministic timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
