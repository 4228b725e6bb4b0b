package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockStepClampsToMaxStep(t *testing.T) {
	c := New()
	assert.Equal(t, 0.05, c.MaxStep)

	start := time.Unix(1000, 0)
	assert.Equal(t, 0.0, c.Step(start), "first step only starts the clock")

	assert.InDelta(t, 0.016, c.Step(start.Add(16*time.Millisecond)), 1e-9)
	// A two second hitch only counts as one max step.
	assert.InDelta(t, 0.05, c.Step(start.Add(2016*time.Millisecond)), 1e-9)
	assert.InDelta(t, 0.066, c.Now(), 1e-9)

	// Time never runs backwards.
	assert.Equal(t, 0.0, c.Step(start))
	assert.InDelta(t, 0.066, c.Now(), 1e-9)
}

func TestClockTimeScale(t *testing.T) {
	c := New()
	c.TimeScale = 0.5

	assert.InDelta(t, 0.01, c.Advance(0.02), 1e-12)
	assert.InDelta(t, 0.025, c.Advance(1), 1e-12)
	assert.InDelta(t, 0.035, c.Now(), 1e-12)
}

func TestTimer(t *testing.T) {
	c := &Clock{MaxStep: 1, TimeScale: 1}
	tm := c.NewTimer(2)

	assert.Equal(t, -2.0, tm.Delta())
	assert.False(t, tm.Done())

	c.Advance(0.5)
	assert.Equal(t, 0.5, tm.Tick())
	assert.Equal(t, -1.5, tm.Delta())

	tm.Pause()
	c.Advance(1)
	assert.Equal(t, 0.0, tm.Tick(), "paused timers do not tick")
	assert.Equal(t, -1.5, tm.Delta(), "paused timers are frozen")

	tm.Unpause()
	assert.Equal(t, -1.5, tm.Delta())
	c.Advance(1)
	c.Advance(0.5)
	assert.Equal(t, 0.0, tm.Delta())
	assert.True(t, tm.Done())

	tm.Reset()
	assert.Equal(t, -2.0, tm.Delta())

	tm.Set(0.25)
	c.Advance(0.5)
	assert.Equal(t, 0.25, tm.Delta())
}
