// Package clock keeps simulation time. Every timer reads the same clock
// instead of sampling the wall clock on its own.
package clock

import (
	"time"

	"github.com/automoto/tilephys/config"
)

// Clock is a monotonic simulation time in seconds. Real elapsed time is
// clamped to MaxStep per step so a frame hitch cannot blow up the physics.
type Clock struct {
	MaxStep   float64
	TimeScale float64

	now  float64
	last time.Time
}

// New returns a clock at time zero using the configured max step and scale.
func New() *Clock {
	return &Clock{
		MaxStep:   config.Simulation.MaxStep,
		TimeScale: config.Simulation.TimeScale,
	}
}

// Now returns the current simulation time.
func (c *Clock) Now() float64 {
	return c.now
}

// Step advances the clock by the wall time passed since the previous call
// and returns the simulation delta. The first call only starts the clock.
func (c *Clock) Step(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last).Seconds()
	c.last = now
	return c.Advance(elapsed)
}

// Advance moves the clock forward by elapsed seconds of real time and
// returns the simulation delta. Negative input counts as zero.
func (c *Clock) Advance(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	if c.MaxStep > 0 && elapsed > c.MaxStep {
		elapsed = c.MaxStep
	}
	delta := elapsed * c.TimeScale
	c.now += delta
	return delta
}

// NewTimer returns a timer that expires seconds from now.
func (c *Clock) NewTimer(seconds float64) *Timer {
	return &Timer{
		clock:  c,
		target: seconds,
		base:   c.now,
		last:   c.now,
	}
}
