package core

import (
	"github.com/automoto/tilephys/entities"
	"github.com/automoto/tilephys/physics"
	"github.com/automoto/tilephys/shared/netcomponents"
	"github.com/automoto/tilephys/simulation"
	"github.com/automoto/tilephys/tags"
	"github.com/yohamta/donburi"
)

// Mirror keeps one donburi entity per live physics body, plus a single
// entity carrying the game state, so esync can replicate them.
type Mirror struct {
	world    donburi.World
	entities map[int]donburi.Entity // body ID -> entity
	seen     map[int]bool

	state    donburi.Entity
	hasState bool

	// OnBody and OnState run once for every entity the mirror creates.
	OnBody  func(e *donburi.Entity) error
	OnState func(e *donburi.Entity) error
}

func NewMirror(world donburi.World) *Mirror {
	return &Mirror{
		world:    world,
		entities: make(map[int]donburi.Entity),
		seen:     make(map[int]bool),
	}
}

// Len returns the number of mirrored bodies.
func (m *Mirror) Len() int {
	return len(m.entities)
}

// Entity returns the entity mirroring the body with the given ID.
func (m *Mirror) Entity(bodyID int) (donburi.Entity, bool) {
	e, ok := m.entities[bodyID]
	return e, ok && m.world.Valid(e)
}

// Sync copies the bodies of sim into the world. Entities of bodies that
// left the simulation are removed.
func (m *Mirror) Sync(sim *simulation.Simulation, watchers int) error {
	clear(m.seen)

	for _, b := range sim.World.Bodies {
		if b.Killed {
			continue
		}
		m.seen[b.ID] = true

		e, ok := m.Entity(b.ID)
		if !ok {
			var err error
			if e, err = m.spawn(b); err != nil {
				return err
			}
		}
		entry := m.world.Entry(e)
		netcomponents.NetBody.SetValue(entry, bodyData(b))
		netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{VX: b.Vel.X, VY: b.Vel.Y})
	}

	for id, e := range m.entities {
		if m.seen[id] {
			continue
		}
		if m.world.Valid(e) {
			m.world.Remove(e)
		}
		delete(m.entities, id)
	}

	return m.syncState(sim, watchers)
}

func (m *Mirror) spawn(b *physics.Body) (donburi.Entity, error) {
	cs := []donburi.IComponentType{tags.Body, netcomponents.NetBody, netcomponents.NetVelocity}
	if entities.KindOf(b) == entities.KindPlayer {
		cs = append(cs, tags.Player)
	}
	e := m.world.Create(cs...)
	if m.OnBody != nil {
		if err := m.OnBody(&e); err != nil {
			m.world.Remove(e)
			return donburi.Null, err
		}
	}
	m.entities[b.ID] = e
	return e, nil
}

func (m *Mirror) syncState(sim *simulation.Simulation, watchers int) error {
	if !m.hasState || !m.world.Valid(m.state) {
		e := m.world.Create(netcomponents.NetGameState)
		if m.OnState != nil {
			if err := m.OnState(&e); err != nil {
				m.world.Remove(e)
				return err
			}
		}
		m.state, m.hasState = e, true
	}

	gs := netcomponents.NetGameStateData{
		Tick:     sim.Ticks,
		Reloads:  sim.Reloads,
		Watchers: watchers,
	}
	if sim.Level != nil {
		gs.Level = sim.Level.Name
	}
	if _, p := sim.Player(); p != nil {
		gs.Coins = p.Coins
	}
	netcomponents.NetGameState.SetValue(m.world.Entry(m.state), gs)
	return nil
}

func bodyData(b *physics.Body) netcomponents.NetBodyData {
	return netcomponents.NetBodyData{
		BodyID:   b.ID,
		Kind:     b.Kind,
		Name:     b.Name,
		X:        b.Pos.X,
		Y:        b.Pos.Y,
		W:        b.Size.X,
		H:        b.Size.Y,
		Standing: b.Standing,
		Health:   b.Health,
	}
}
