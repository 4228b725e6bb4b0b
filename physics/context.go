package physics

import (
	"github.com/automoto/tilephys/clock"
	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/shared/gamemath"
)

// Context carries everything one tick of simulation reads from outside the
// bodies themselves.
type Context struct {
	Tick    float64 // seconds covered by this tick
	Time    float64 // clock time at the start of the tick
	Clock   *clock.Clock
	Gravity float64
	Map     collision.Tracer
	Bounds  gamemath.Rect // pixel extent of the level; empty means unbounded
	Names   *Registry

	// Requests is where behaviors leave work for the owner of the world,
	// such as a level change. Nil drops the requests.
	Requests *Requests
}

// Tracer returns the collision map to trace against, never nil.
func (c *Context) Tracer() collision.Tracer {
	if c.Map == nil {
		return collision.NoCollision
	}
	return c.Map
}

// InBounds reports whether the rectangle of b still touches the level.
func (c *Context) InBounds(b *Body) bool {
	if c.Bounds.Empty() {
		return true
	}
	return c.Bounds.Overlaps(b.Rect())
}

// SpawnRequest describes a body to create after the current tick.
type SpawnRequest struct {
	Kind     uint8
	Name     string
	X, Y     float64
	Settings map[string]string
}

// Requests collects actions that must wait until the current tick is over.
type Requests struct {
	Level  string // level to load before the next tick
	Spawns []SpawnRequest
}

// LoadLevel asks for name to be loaded once the current tick has finished.
func (c *Context) LoadLevel(name string) {
	if c.Requests != nil {
		c.Requests.Level = name
	}
}

// Spawn asks for a body of kind to be created once the current tick has
// finished.
func (c *Context) Spawn(req SpawnRequest) {
	if c.Requests != nil {
		c.Requests.Spawns = append(c.Requests.Spawns, req)
	}
}
