package clock

import "time"

// Clock abstracts time so timer behavior stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns time.Now unmodified. The monotonic reading must be
// preserved: elapsed durations are computed with Sub, and converting the
// timestamp (UTC, Round) would strip the reading and expose the timer to
// wall-clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
