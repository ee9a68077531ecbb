package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// timing.
var clock = clockwork.NewRealClock()

// location is the timezone used to bucket forecast entries into calendar
// dates. Tests pin it via SetLocation for stable date labels.
var location = time.Local

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// SetLocation swaps the digest timezone. Pass nil to reset to time.Local.
func SetLocation(loc *time.Location) {
	if loc == nil {
		location = time.Local
		return
	}
	location = loc
}

// Now returns the current time from the injectable clock.
func Now() time.Time {
	return clock.Now()
}
