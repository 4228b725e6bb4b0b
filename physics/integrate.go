package physics

import (
	"math"

	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/shared/gamemath"
)

// Update runs one tick for b: the behavior's own update when it has one,
// Integrate otherwise.
func Update(ctx *Context, b *Body) {
	if u, ok := b.Behavior.(Updater); ok {
		u.Update(ctx, b)
		return
	}
	Integrate(ctx, b)
}

// Integrate applies gravity, acceleration and friction to b, moves it
// through the collision map and reacts to what the trace hit.
func Integrate(ctx *Context, b *Body) {
	b.Last = b.Pos
	b.Vel.Y += ctx.Gravity * ctx.Tick * b.GravityFactor

	b.Vel.X = NewVelocity(ctx.Tick, b.Vel.X, b.Accel.X, b.Friction.X, b.MaxVel.X)
	b.Vel.Y = NewVelocity(ctx.Tick, b.Vel.Y, b.Accel.Y, b.Friction.Y, b.MaxVel.Y)

	mx := b.Vel.X * ctx.Tick
	my := b.Vel.Y * ctx.Tick
	res := ctx.Tracer().Trace(b.Pos.X, b.Pos.Y, mx, my, b.Size.X, b.Size.Y)
	HandleMovementTrace(b, res)

	if o, ok := b.Behavior.(TraceObserver); ok {
		o.HandleTrace(ctx, b, res)
	}
}

// NewVelocity returns the next value of one velocity component.
func NewVelocity(tick, vel, accel, friction, max float64) float64 {
	return gamemath.StepVelocity(tick, vel, accel, friction, max)
}

// HandleMovementTrace turns the flags of a trace into velocity and standing
// state, then moves b to the traced position.
func HandleMovementTrace(b *Body, res collision.TraceResult) {
	b.Standing = false

	if res.CollisionY {
		if b.Bounciness > 0 && math.Abs(b.Vel.Y) > b.MinBounceVelocity {
			b.Vel.Y *= -b.Bounciness
		} else {
			if b.Vel.Y > 0 {
				b.Standing = true
			}
			b.Vel.Y = 0
		}
	}

	if res.CollisionX {
		if b.Bounciness > 0 && math.Abs(b.Vel.X) > b.MinBounceVelocity {
			b.Vel.X *= -b.Bounciness
		} else {
			b.Vel.X = 0
		}
	}

	if s := res.Slope; s != nil {
		if b.Bounciness > 0 {
			b.Vel = gamemath.Reflect(b.Vel, gamemath.Vector{X: s.NX, Y: s.NY}, b.Bounciness)
		} else {
			b.Vel = gamemath.Project(b.Vel, gamemath.Vector{X: s.X, Y: s.Y})
			if b.SlopeStanding.Contains(gamemath.SlopeAngle(s.X, s.Y)) {
				b.Standing = true
			}
		}
	}

	b.Pos = res.Pos
}
