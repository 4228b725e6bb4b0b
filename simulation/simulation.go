// Package simulation runs a level: it owns the physics world, the spawner
// and the dead zones, and applies level changes between ticks. The viewer
// and the headless server both drive one.
package simulation

import (
	"errors"
	"fmt"

	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/entities"
	"github.com/automoto/tilephys/physics"
	"github.com/automoto/tilephys/shared/leveldata"
	"github.com/automoto/tilephys/zones"
)

// LevelSource looks levels up by name.
type LevelSource interface {
	Level(name string) (*leveldata.Level, error)
}

// Simulation is one running level.
type Simulation struct {
	World   *physics.World
	Spawner *entities.Spawner
	Zones   *zones.Field
	Level   *leveldata.Level
	Levels  LevelSource

	Ticks uint64
	Pairs int // broad phase pairs of the last tick

	// Reloads counts how often the current level restarted because the
	// player died.
	Reloads int

	player *physics.Body
}

// New returns an empty simulation configured from config.Simulation.
func New(levels LevelSource) *Simulation {
	sc := config.Simulation

	w := physics.NewWorld(sc.CellSize)
	w.Gravity = sc.Gravity
	w.AutoSort = sc.AutoSort
	if by, err := physics.SortByName(sc.SortBy); err == nil {
		w.SortBy = by
	}

	return &Simulation{
		World:   w,
		Spawner: entities.NewSpawner(w),
		Zones:   zones.NewField(0, 0, 0),
		Levels:  levels,
	}
}

// LoadLevel replaces the running level with the level called name.
func (s *Simulation) LoadLevel(name string) error {
	if s.Levels == nil {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	level, err := s.Levels.Level(name)
	if err != nil {
		return err
	}
	return s.Load(level)
}

// Load replaces the running level. Spawns of unknown kinds are skipped and
// reported in the returned error; the rest of the level is still loaded.
func (s *Simulation) Load(level *leveldata.Level) error {
	m, err := level.CollisionMap()
	if err != nil {
		return fmt.Errorf("build collision map for %s: %w", level.Name, err)
	}

	s.Spawner.Reset()
	s.World.SetMap(m)

	s.Zones = zones.NewField(level.PxWidth, level.PxHeight, level.TileSize)
	for _, r := range level.DeadZones {
		s.Zones.AddDeadZone(r)
	}

	var errs []error
	for _, sp := range level.Spawns {
		if _, err := s.Spawner.SpawnByName(sp.Kind, sp.Name, sp.X, sp.Y, sp.Settings); err != nil {
			errs = append(errs, fmt.Errorf("%s: spawn %q: %w", level.Name, sp.Name, err))
		}
	}
	s.World.Ready()

	s.Level = level
	s.Ticks = 0
	s.player = s.findPlayer()

	return errors.Join(errs...)
}

func (s *Simulation) findPlayer() *physics.Body {
	if b := s.World.Named("player"); b != nil {
		return b
	}
	if players := s.World.BodiesByKind(uint8(entities.KindPlayer)); len(players) > 0 {
		return players[0]
	}
	return nil
}

// Step advances the simulation by elapsed wall-clock seconds. The clock
// clamps and scales elapsed before the world sees it.
func (s *Simulation) Step(elapsed float64) error {
	tick := s.World.Clock.Advance(elapsed)

	pairs, err := s.Spawner.Step(tick)
	s.Pairs = pairs
	s.Ticks++

	// Bodies killed here leave the world in the next removal phase.
	s.Zones.Apply(s.World.Bodies)

	if next := s.World.Requests.Level; next != "" {
		s.World.Requests.Level = ""
		coins := s.coins()
		err = errors.Join(err, s.LoadLevel(next))
		if _, p := s.Player(); p != nil {
			p.Coins = coins
		}
		return err
	}

	if s.player != nil && s.player.Killed && s.Level != nil {
		s.Reloads++
		return errors.Join(err, s.Load(s.Level))
	}
	return err
}

// Player returns the body and behavior of the player, or nil when the
// level has none.
func (s *Simulation) Player() (*physics.Body, *entities.Player) {
	if s.player == nil || s.player.Killed {
		return nil, nil
	}
	p, _ := s.player.Behavior.(*entities.Player)
	return s.player, p
}

func (s *Simulation) coins() int {
	if s.player == nil {
		return 0
	}
	if p, ok := s.player.Behavior.(*entities.Player); ok {
		return p.Coins
	}
	return 0
}

// SetInput hands the input of the current tick to the player.
func (s *Simulation) SetInput(in entities.PlayerInput) {
	if _, p := s.Player(); p != nil {
		p.Input = in
	}
}
