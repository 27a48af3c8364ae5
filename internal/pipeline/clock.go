package pipeline

import "github.com/jonboulle/clockwork"

// clock stamps dataset generated-at times, measures run durations, and paces
// the refresh loop. Package-level so tests freeze or advance it without
// threading a Clock through every constructor.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to restore the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
