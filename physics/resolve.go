package physics

import "math"

// CheckPair runs the check protocol for two overlapping bodies and
// separates them when their collision classes allow it.
func CheckPair(ctx *Context, a, b *Body) {
	if a.CheckAgainst&b.Type != 0 {
		if c, ok := a.Behavior.(Checker); ok {
			c.Check(ctx, a, b)
		}
	}
	if b.CheckAgainst&a.Type != 0 {
		if c, ok := b.Behavior.(Checker); ok {
			c.Check(ctx, b, a)
		}
	}

	// At least one side must be Active or Fixed, neither may be Never.
	if a.Collides != Never && b.Collides != Never && a.Collides+b.Collides > Active {
		SolveCollision(ctx, a, b)
	}
}

// weakBody returns the body that absorbs the whole separation, or nil when
// both share it.
func weakBody(a, b *Body) *Body {
	if a.Collides == Lite || b.Collides == Fixed {
		return a
	}
	if b.Collides == Lite || a.Collides == Fixed {
		return b
	}
	return nil
}

// SolveCollision separates two overlapping bodies. The axis comes from
// their rectangles on the previous tick: bodies that already overlapped on
// X must have met vertically.
func SolveCollision(ctx *Context, a, b *Body) {
	weak := weakBody(a, b)

	if a.Last.X+a.Size.X > b.Last.X && a.Last.X < b.Last.X+b.Size.X {
		if a.Last.Y < b.Last.Y {
			separateY(ctx, a, b, weak)
		} else {
			separateY(ctx, b, a, weak)
		}
		collideWith(ctx, a, b, AxisY)
		return
	}

	if a.Last.Y+a.Size.Y > b.Last.Y && a.Last.Y < b.Last.Y+b.Size.Y {
		if a.Last.X < b.Last.X {
			separateX(ctx, a, b, weak)
		} else {
			separateX(ctx, b, a, weak)
		}
		collideWith(ctx, a, b, AxisX)
	}
}

func collideWith(ctx *Context, a, b *Body, axis Axis) {
	if c, ok := a.Behavior.(Collider); ok {
		c.CollideWith(ctx, a, b, axis)
	}
	if c, ok := b.Behavior.(Collider); ok {
		c.CollideWith(ctx, b, a, axis)
	}
}

func separateX(ctx *Context, left, right, weak *Body) {
	nudge := left.Pos.X + left.Size.X - right.Pos.X
	tr := ctx.Tracer()

	if weak != nil {
		strong := left
		dx := nudge
		if weak == left {
			strong = right
			dx = -nudge
		}
		weak.Vel.X = -weak.Vel.X*weak.Bounciness + strong.Vel.X

		res := tr.Trace(weak.Pos.X, weak.Pos.Y, dx, 0, weak.Size.X, weak.Size.Y)
		weak.Pos.X = res.Pos.X
		return
	}

	v2 := (left.Vel.X - right.Vel.X) / 2
	left.Vel.X = -v2
	right.Vel.X = v2

	resLeft := tr.Trace(left.Pos.X, left.Pos.Y, -nudge/2, 0, left.Size.X, left.Size.Y)
	left.Pos.X = math.Floor(resLeft.Pos.X)

	resRight := tr.Trace(right.Pos.X, right.Pos.Y, nudge/2, 0, right.Size.X, right.Size.Y)
	right.Pos.X = math.Ceil(resRight.Pos.X)
}

func separateY(ctx *Context, top, bottom, weak *Body) {
	nudge := top.Pos.Y + top.Size.Y - bottom.Pos.Y
	tr := ctx.Tracer()

	if weak != nil {
		strong := top
		dy := nudge
		if weak == top {
			strong = bottom
			dy = -nudge
		}
		weak.Vel.Y = -weak.Vel.Y*weak.Bounciness + strong.Vel.Y

		// Riding on a platform?
		nudgeX := 0.0
		if weak == top && math.Abs(weak.Vel.Y-strong.Vel.Y) < weak.MinBounceVelocity {
			weak.Standing = true
			nudgeX = strong.Vel.X * ctx.Tick
		}

		res := tr.Trace(weak.Pos.X, weak.Pos.Y, nudgeX, dy, weak.Size.X, weak.Size.Y)
		weak.Pos = res.Pos
		return
	}

	// The bottom body is holding the top one up: only the top one moves.
	if ctx.Gravity != 0 && (bottom.Standing || top.Vel.Y > 0) {
		res := tr.Trace(top.Pos.X, top.Pos.Y, 0, -nudge, top.Size.X, top.Size.Y)
		top.Pos.Y = res.Pos.Y

		if top.Bounciness > 0 && top.Vel.Y > top.MinBounceVelocity {
			top.Vel.Y *= -top.Bounciness
		} else {
			top.Standing = true
			top.Vel.Y = 0
		}
		return
	}

	v2 := (top.Vel.Y - bottom.Vel.Y) / 2
	top.Vel.Y = -v2
	bottom.Vel.Y = v2

	nudgeX := bottom.Vel.X * ctx.Tick
	resTop := tr.Trace(top.Pos.X, top.Pos.Y, nudgeX, -nudge/2, top.Size.X, top.Size.Y)
	top.Pos.Y = resTop.Pos.Y

	resBottom := tr.Trace(bottom.Pos.X, bottom.Pos.Y, 0, nudge/2, bottom.Size.X, bottom.Size.Y)
	bottom.Pos.Y = resBottom.Pos.Y
}
