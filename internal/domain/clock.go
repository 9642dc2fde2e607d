package domain

import (
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// IDs and timestamps.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for ID and timestamp generation.
// Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// NewID returns an opaque record identifier: the current Unix time in
// milliseconds as a decimal string. Unique enough for a single local
// instance; no collision handling beyond that.
func NewID() string {
	return strconv.FormatInt(clock.Now().UnixMilli(), 10)
}

// Now returns the current time from the injected clock in RFC 3339 form,
// used for CreatedAt and review dates.
func Now() string {
	return clock.Now().UTC().Format(time.RFC3339)
}

// CurrentMonth returns the month (1-12) from the injected clock.
func CurrentMonth() int {
	return int(clock.Now().Month())
}
