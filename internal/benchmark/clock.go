package benchmark

import "time"

// Clock supplies timestamps to the runner.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, which carries a monotonic reading.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
