package physics

import "github.com/automoto/tilephys/collision"

// The interfaces below are optional. A body's Behavior implements the ones
// it cares about and the simulation calls them through type assertions.

// Checker is told about every overlapping body whose Type matches the
// CheckAgainst mask of self.
type Checker interface {
	Check(ctx *Context, self, other *Body)
}

// Collider is told after self was physically separated from other.
type Collider interface {
	CollideWith(ctx *Context, self, other *Body, axis Axis)
}

// Updater replaces the default per-tick update. Implementations that still
// want to move call Integrate themselves.
type Updater interface {
	Update(ctx *Context, self *Body)
}

// TraceObserver sees each movement trace after the default handling ran.
type TraceObserver interface {
	HandleTrace(ctx *Context, self *Body, res collision.TraceResult)
}

// Damager replaces the default health bookkeeping of ReceiveDamage.
type Damager interface {
	ReceiveDamage(ctx *Context, self *Body, amount float64, from *Body)
}

// Triggerable bodies can be fired by triggers that name them as targets.
type Triggerable interface {
	Trigger(ctx *Context, self, by *Body)
}

// Readier runs once after a level finished spawning, with every named body
// bound in reg.
type Readier interface {
	Ready(reg *Registry, self *Body)
}

// Eraser runs when self is spliced out of the world.
type Eraser interface {
	Erase(self *Body)
}
