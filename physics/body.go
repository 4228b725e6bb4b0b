// Package physics moves bodies through a collision map and resolves the
// collisions between them.
package physics

import (
	"math"

	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/shared/gamemath"
)

// CollisionClass decides if and how a body is pushed around by other bodies.
//
// In Active vs Lite or Fixed vs anything collisions only the weak body
// moves. Active vs Active and Active vs Passive share the separation.
// Lite and Passive bodies never collide with each other. Fixed vs Fixed is
// undefined.
type CollisionClass uint8

const (
	Never   CollisionClass = 0
	Lite    CollisionClass = 1
	Passive CollisionClass = 2
	Active  CollisionClass = 4
	Fixed   CollisionClass = 8
)

// EntityType is a bitmask used by the check protocol, independent of the
// collision class.
type EntityType uint8

const (
	TypeNone EntityType = 0
	TypeA    EntityType = 1
	TypeB    EntityType = 2
	TypeBoth EntityType = 3
)

// Axis names the axis a pair was separated on.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// AngleRange is an open interval of angles in radians.
type AngleRange struct {
	Min, Max float64
}

// Contains reports whether Min < a < Max.
func (r AngleRange) Contains(a float64) bool {
	return a > r.Min && a < r.Max
}

// Body is the physical state of one simulated object.
type Body struct {
	ID   int
	Name string
	Kind uint8

	Pos    gamemath.Vector
	Last   gamemath.Vector
	Size   gamemath.Vector
	Offset gamemath.Vector

	Vel      gamemath.Vector
	Accel    gamemath.Vector
	Friction gamemath.Vector
	MaxVel   gamemath.Vector

	GravityFactor     float64
	Bounciness        float64
	MinBounceVelocity float64
	SlopeStanding     AngleRange

	Type         EntityType
	CheckAgainst EntityType
	Collides     CollisionClass

	Standing bool
	Health   float64
	ZIndex   int
	Killed   bool

	// Settings holds the raw key/value pairs the body was spawned with.
	Settings map[string]string

	// Behavior optionally implements any of the hook interfaces in hooks.go.
	Behavior any
}

// NewBody returns a body at (x, y) with the configured defaults.
func NewBody(x, y float64) *Body {
	b := &Body{}
	b.Reset(x, y)
	return b
}

// Reset puts b back to its spawn defaults at (x, y). Name, Kind, Behavior,
// ID and ZIndex are kept.
func (b *Body) Reset(x, y float64) {
	d := config.Body
	b.Pos = gamemath.Vector{X: x, Y: y}
	b.Last = b.Pos
	b.Size = gamemath.Vector{X: d.Width, Y: d.Height}
	b.Offset = gamemath.Vector{}
	b.Vel = gamemath.Vector{}
	b.Accel = gamemath.Vector{}
	b.Friction = gamemath.Vector{}
	b.MaxVel = gamemath.Vector{X: d.MaxVelX, Y: d.MaxVelY}
	b.GravityFactor = d.GravityFactor
	b.Bounciness = 0
	b.MinBounceVelocity = d.MinBounceVelocity
	b.SlopeStanding = AngleRange{Min: d.SlopeStandingMin, Max: d.SlopeStandingMax}
	b.Type = TypeNone
	b.CheckAgainst = TypeNone
	b.Collides = Never
	b.Standing = false
	b.Health = d.Health
	b.Killed = false
	b.Settings = nil
}

// Rect returns the current rectangle of b.
func (b *Body) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// LastRect returns the rectangle b occupied before the current tick.
func (b *Body) LastRect() gamemath.Rect {
	return gamemath.Rect{X: b.Last.X, Y: b.Last.Y, W: b.Size.X, H: b.Size.Y}
}

// Center returns the midpoint of b.
func (b *Body) Center() gamemath.Vector {
	return b.Rect().Center()
}

// Touches reports whether the rectangles of b and other overlap.
func (b *Body) Touches(other *Body) bool {
	return b.Rect().Overlaps(other.Rect())
}

// DistanceTo returns the distance between the centers of b and other.
func (b *Body) DistanceTo(other *Body) float64 {
	return b.Center().Sub(other.Center()).Len()
}

// AngleTo returns the angle from the center of b to the center of other.
func (b *Body) AngleTo(other *Body) float64 {
	d := other.Center().Sub(b.Center())
	return math.Atan2(d.Y, d.X)
}

// Inert reports whether b takes no part in the broad phase.
func (b *Body) Inert() bool {
	return b.Type == TypeNone && b.CheckAgainst == TypeNone && b.Collides == Never
}

// Kill takes b out of the simulation. It stops interacting at once and is
// removed from its world after the current tick.
func (b *Body) Kill() {
	b.Killed = true
	b.Type = TypeNone
	b.CheckAgainst = TypeNone
	b.Collides = Never
}

// ReceiveDamage subtracts amount from the health of b and kills it when
// nothing is left. from may be nil.
func (b *Body) ReceiveDamage(ctx *Context, amount float64, from *Body) {
	if b.Killed {
		return
	}
	if d, ok := b.Behavior.(Damager); ok {
		d.ReceiveDamage(ctx, b, amount, from)
		return
	}
	b.Health -= amount
	if b.Health <= 0 {
		b.Kill()
	}
}
