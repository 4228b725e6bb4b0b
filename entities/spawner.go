package entities

import (
	"errors"
	"fmt"

	"github.com/automoto/tilephys/physics"
)

var ErrUnknownKind = errors.New("unknown body kind")

// Spawner creates bodies in a world, recycling pooled kinds.
type Spawner struct {
	World *physics.World
	Pool  *Pool
}

// NewSpawner returns a spawner for w and hooks its pool into the removal
// phase of w.
func NewSpawner(w *physics.World) *Spawner {
	s := &Spawner{World: w, Pool: NewPool()}
	w.OnRemove = func(b *physics.Body) {
		s.Pool.Put(b)
	}
	return s
}

// Spawn creates a body of kind k at (x, y), binds name if it is not empty
// and adds it to the world.
func (s *Spawner) Spawn(k Kind, name string, x, y float64, settings map[string]string) (*physics.Body, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}

	b := s.Pool.Get(k)
	var behavior Poolable
	if b != nil {
		behavior = b.Behavior.(Poolable)
	} else {
		behavior = Kinds[k].New()
		b = &physics.Body{}
	}

	b.Reset(x, y)
	b.Name = name
	b.Kind = uint8(k)
	b.Behavior = behavior
	behavior.Reset(b, x, y, settings)
	b.Settings = settings

	return s.World.Add(b), nil
}

// SpawnByName spawns a kind given by name or alias.
func (s *Spawner) SpawnByName(kind, name string, x, y float64, settings map[string]string) (*physics.Body, error) {
	k, ok := KindByName(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return s.Spawn(k, name, x, y, settings)
}

// Step advances the world one tick, then creates the bodies requested
// during the tick. It returns the broad phase pair count.
func (s *Spawner) Step(tick float64) (int, error) {
	pairs := s.World.Step(tick)

	reqs := s.World.Requests.Spawns
	s.World.Requests.Spawns = nil
	var errs []error
	for _, r := range reqs {
		if _, err := s.Spawn(Kind(r.Kind), r.Name, r.X, r.Y, r.Settings); err != nil {
			errs = append(errs, err)
		}
	}
	return pairs, errors.Join(errs...)
}

// Reset clears the world and drains every pool, ready for a new level.
func (s *Spawner) Reset() {
	s.World.Clear()
	s.World.Requests = physics.Requests{}
	s.Pool.DrainAll()
}
