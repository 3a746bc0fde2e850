package nightfall

import (
	"math"
	"time"
)

// TotalDuration is the length of one full animation cycle in seconds. The
// frame renderer and the timeline overlay both wrap against this single
// constant; they must never diverge or the two displays drift apart.
const TotalDuration = 45.0

// WrapSeconds folds an elapsed time into [0, total). Negative inputs wrap
// backwards into the cycle, so the result is always a valid loop time.
func WrapSeconds(elapsed, total float64) float64 {
	m := math.Mod(elapsed, total)
	if m < 0 {
		m += total
	}
	return m
}

// Clock converts wall-clock time into loop-relative seconds. The start
// timestamp is captured once at construction; every Now call recomputes the
// wrapped elapsed time from the absolute monotonic difference, so the loop
// never accumulates drift beyond floating point error.
type Clock struct {
	start time.Time
	total float64
}

// NewClock returns a clock that starts its cycle now.
func NewClock(total float64) Clock {
	return Clock{start: time.Now(), total: total}
}

// Now returns the current loop time in [0, total).
func (c Clock) Now() float64 {
	return WrapSeconds(time.Since(c.start).Seconds(), c.total)
}

// Progress returns the fraction of the cycle elapsed, in [0, 1).
func (c Clock) Progress() float64 {
	return c.Now() / c.total
}
