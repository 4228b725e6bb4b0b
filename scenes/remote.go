package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tilephys/components"
	cfg "github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/network"
	"github.com/automoto/tilephys/shared/netcomponents"
	"github.com/automoto/tilephys/simulation"
	"github.com/automoto/tilephys/systems"
	"github.com/automoto/tilephys/systems/factory"
	"github.com/automoto/tilephys/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RemoteScene draws the bodies a server replicates and sends it the
// local input. Only the level geometry comes from the local files.
type RemoteScene struct {
	ecsWorld   *ecs.ECS
	netClient  *network.Client
	levels     simulation.LevelSet
	level      string
	once       sync.Once
	presentIDs map[esync.NetworkId]bool
	menu       *ui.PauseUI
}

func NewRemoteScene(client *network.Client, levels simulation.LevelSet) *RemoteScene {
	return &RemoteScene{
		netClient:  client,
		levels:     levels,
		presentIDs: make(map[esync.NetworkId]bool),
	}
}

func (rs *RemoteScene) Update() {
	rs.once.Do(rs.configure)

	if snap := rs.netClient.LatestSnapshot(); snap != nil {
		rs.applySnapshot(*snap)
	}
	if gs, ok := systems.RemoteGameState(rs.ecsWorld.World); ok && gs.Level != rs.level {
		rs.showLevel(gs.Level)
	}

	rs.ecsWorld.Update()
	updatePauseMenu(rs.ecsWorld, rs.menu)
}

func (rs *RemoteScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if rs.ecsWorld == nil {
		return
	}
	rs.ecsWorld.Draw(screen)
	drawPauseMenu(rs.ecsWorld, rs.menu, screen)
}

func (rs *RemoteScene) configure() {
	rs.ecsWorld = ecs.NewECS(donburi.NewWorld())

	// The simulation only holds the level geometry; it is never stepped.
	factory.CreateSimulation(rs.ecsWorld, rs.levels, "")
	factory.CreateCamera(rs.ecsWorld)

	rs.ecsWorld.AddSystem(systems.UpdateInput)
	rs.ecsWorld.AddSystem(systems.UpdatePause)
	rs.ecsWorld.AddSystem(systems.NewRemoteInputSystem(rs.netClient.SendInput))
	rs.ecsWorld.AddSystem(systems.UpdateCamera)

	rs.ecsWorld.AddRenderer(cfg.Default, systems.DrawLevel)
	rs.ecsWorld.AddRenderer(cfg.Default, systems.DrawDeadZones)
	rs.ecsWorld.AddRenderer(cfg.Default, systems.DrawRemoteBodies)
	rs.ecsWorld.AddRenderer(cfg.Default, systems.DrawRemoteHUD)
	rs.ecsWorld.AddRenderer(cfg.Default, systems.DrawPause)

	rs.menu = newPauseMenu(rs.ecsWorld, false)
}

// showLevel swaps in the geometry of the level the server runs.
func (rs *RemoteScene) showLevel(name string) {
	rs.level = name
	level, err := rs.levels.Level(name)
	if err != nil {
		log.Printf("[remote] Warning: server runs a level we do not have: %v", err)
		return
	}
	m, err := level.CollisionMap()
	if err != nil {
		log.Printf("[remote] Warning: %v", err)
		return
	}

	entry, ok := components.Simulation.First(rs.ecsWorld.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	sim.World.SetMap(m)
	sim.Level = level
	systems.SnapCamera(rs.ecsWorld)
}

func (rs *RemoteScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := rs.ecsWorld.World

	clear(rs.presentIDs)

	for _, ent := range snapshot {
		rs.presentIDs[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entity = world.Create(componentTypesFromInstances(compData)...)

			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
		}

		entry := world.Entry(entity)
		for _, data := range compData {
			applyComponentToEntry(entry, data)
		}
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !rs.presentIDs[*id] {
			entry.Remove()
		}
	})
}

func componentTypesFromInstances(components []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range components {
		switch data.(type) {
		case netcomponents.NetBodyData:
			ctypes = append(ctypes, netcomponents.NetBody)
		case netcomponents.NetVelocityData:
			ctypes = append(ctypes, netcomponents.NetVelocity)
		case netcomponents.NetGameStateData:
			ctypes = append(ctypes, netcomponents.NetGameState)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetBodyData:
		setComponent(entry, netcomponents.NetBody, v)
	case netcomponents.NetVelocityData:
		setComponent(entry, netcomponents.NetVelocity, v)
	case netcomponents.NetGameStateData:
		setComponent(entry, netcomponents.NetGameState, v)
	}
}

func setComponent[T any](entry *donburi.Entry, ct *donburi.ComponentType[T], v T) {
	if !entry.HasComponent(ct) {
		entry.AddComponent(ct)
	}
	ct.SetValue(entry, v)
}
