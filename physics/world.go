package physics

import (
	"github.com/automoto/tilephys/clock"
	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/shared/gamemath"
)

// World owns the bodies of one level and steps them.
type World struct {
	Bodies  []*Body
	Names   *Registry
	Clock   *clock.Clock
	Map     collision.Tracer
	Bounds  gamemath.Rect
	Gravity float64

	Hash     *SpatialHash
	AutoSort bool
	SortBy   SortFunc

	// OnRemove runs for every body spliced out after a tick.
	OnRemove func(b *Body)

	Requests Requests

	lastID int
	doSort bool
}

// NewWorld returns an empty world using the given broad phase cell size.
func NewWorld(cellSize float64) *World {
	return &World{
		Names:  NewRegistry(),
		Clock:  clock.New(),
		Map:    collision.NoCollision,
		Hash:   NewSpatialHash(cellSize),
		SortBy: SortByZIndex,
	}
}

// SetMap replaces the collision map. A nil map never collides.
func (w *World) SetMap(m *collision.CollisionMap) {
	if m == nil {
		w.Map = collision.NoCollision
		w.Bounds = gamemath.Rect{}
		return
	}
	w.Map = m
	w.Bounds = gamemath.Rect{W: float64(m.PxWidth), H: float64(m.PxHeight)}
}

// Add appends b to the world, gives it a fresh ID and binds its name.
func (w *World) Add(b *Body) *Body {
	w.lastID++
	b.ID = w.lastID
	w.Bodies = append(w.Bodies, b)
	if b.Name != "" {
		w.Names.Bind(b.Name, b)
	}
	return b
}

// Remove kills b. It is spliced out at the end of the current or next tick.
func (w *World) Remove(b *Body) {
	b.Kill()
}

// Clear drops every body and name without running removal hooks.
func (w *World) Clear() {
	clear(w.Bodies)
	w.Bodies = w.Bodies[:0]
	w.Names.Reset()
	w.doSort = false
}

// Ready runs the Ready hook of every body once the level is spawned.
func (w *World) Ready() {
	for _, b := range w.Bodies {
		if r, ok := b.Behavior.(Readier); ok {
			r.Ready(w.Names, b)
		}
	}
}

// Named returns the live body bound to name.
func (w *World) Named(name string) *Body {
	return w.Names.Lookup(name)
}

// BodiesByKind returns the live bodies of one kind, in list order.
func (w *World) BodiesByKind(kind uint8) []*Body {
	var out []*Body
	for _, b := range w.Bodies {
		if b.Kind == kind && !b.Killed {
			out = append(out, b)
		}
	}
	return out
}

// Sort orders the body list with SortBy right away.
func (w *World) Sort() {
	by := w.SortBy
	if by == nil {
		by = SortByZIndex
	}
	sortBodies(w.Bodies, by)
}

// SortDeferred sorts the body list after the current tick.
func (w *World) SortDeferred() {
	w.doSort = true
}

// Context returns the simulation context for a tick of length tick
// starting at the current clock time.
func (w *World) Context(tick float64) *Context {
	return &Context{
		Tick:     tick,
		Time:     w.Clock.Now(),
		Clock:    w.Clock,
		Gravity:  w.Gravity,
		Map:      w.Map,
		Bounds:   w.Bounds,
		Names:    w.Names,
		Requests: &w.Requests,
	}
}

// Step advances the world by one tick and returns the number of body pairs
// the broad phase found.
//
// The phases run in a fixed order: update every live body, check and
// separate overlapping pairs, splice out killed bodies, then sort if asked.
// The list is never changed while it is being walked.
func (w *World) Step(tick float64) int {
	ctx := w.Context(tick)

	for _, b := range w.Bodies {
		if !b.Killed {
			Update(ctx, b)
		}
	}

	pairs := w.Hash.Pairs(w.Bodies, func(a, b *Body) {
		CheckPair(ctx, a, b)
	})

	w.removeKilled()

	if w.doSort || w.AutoSort {
		w.Sort()
		w.doSort = false
	}
	return pairs
}

func (w *World) removeKilled() {
	kept := w.Bodies[:0]
	var removed []*Body
	for _, b := range w.Bodies {
		if b.Killed {
			removed = append(removed, b)
			continue
		}
		kept = append(kept, b)
	}
	if len(removed) == 0 {
		return
	}
	clear(w.Bodies[len(kept):])
	w.Bodies = kept

	for _, b := range removed {
		if b.Name != "" {
			w.Names.Unbind(b.Name, b)
		}
		if e, ok := b.Behavior.(Eraser); ok {
			e.Erase(b)
		}
		if w.OnRemove != nil {
			w.OnRemove(b)
		}
	}
}
