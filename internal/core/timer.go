package core

import "time"

// FixedStep decides when the simulation should advance at a steady
// ticks-per-second rate. The caller feeds it frame durations, so the elapsed
// time it accumulates is explicit state rather than a hidden clock.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Zero or negative rates pause stepping.
func (f *FixedStep) SetTPS(tps int) {
	if tps < 0 {
		tps = 0
	}
	f.tps = tps
	if tps == 0 {
		f.step = 0
		f.accumulator = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the configured tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Advance adds dt to the accumulator and reports whether a tick is due. At
// most one tick is reported per call; leftover time is capped at one step so a
// long stall does not cause a burst of catch-up ticks.
func (f *FixedStep) Advance(dt time.Duration) bool {
	if f.step <= 0 {
		return false
	}
	if dt > 0 {
		f.accumulator += dt
	}
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}

// ManualStep gates ticks on a step key instead of elapsed time.
type ManualStep struct {
	// Tap steps once per key press; otherwise every frame the key is held.
	Tap bool
}

// Due reports whether a tick should run given this frame's key state.
func (m ManualStep) Due(pressed, held bool) bool {
	if m.Tap {
		return pressed
	}
	return held
}
