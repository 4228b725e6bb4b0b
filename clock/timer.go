package clock

// Timer measures time on a Clock relative to a target duration.
type Timer struct {
	clock *Clock

	target   float64
	base     float64
	last     float64
	paused   bool
	pausedAt float64
}

// Set restarts the timer with a new target.
func (t *Timer) Set(seconds float64) {
	t.target = seconds
	t.base = t.clock.now
	t.paused = false
}

// Reset restarts the timer keeping its target.
func (t *Timer) Reset() {
	t.base = t.clock.now
	t.paused = false
}

// Tick returns the time passed since the previous Tick, or zero while
// paused.
func (t *Timer) Tick() float64 {
	delta := t.clock.now - t.last
	t.last = t.clock.now
	if t.paused {
		return 0
	}
	return delta
}

// Delta returns the time relative to the target: negative before it is
// reached, positive after.
func (t *Timer) Delta() float64 {
	now := t.clock.now
	if t.paused {
		now = t.pausedAt
	}
	return now - t.base - t.target
}

// Done reports whether the target has been reached.
func (t *Timer) Done() bool {
	return t.Delta() >= 0
}

// Pause freezes Delta until Unpause.
func (t *Timer) Pause() {
	if !t.paused {
		t.paused = true
		t.pausedAt = t.clock.now
	}
}

// Unpause resumes the timer. The paused span does not count.
func (t *Timer) Unpause() {
	if t.paused {
		t.base += t.clock.now - t.pausedAt
		t.paused = false
	}
}
