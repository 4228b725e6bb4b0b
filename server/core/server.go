package core

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/tilephys/entities"
	"github.com/automoto/tilephys/shared/messages"
	"github.com/automoto/tilephys/shared/netcomponents"
	"github.com/automoto/tilephys/simulation"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Options configures a Server.
type Options struct {
	TickRate  int
	AssetsDir string // directory holding levels/*.tmx
	Level     string // first level, empty picks the first by name
}

// Server runs one simulation and replicates its bodies to every client.
// The client that connected first drives the player; the others watch.
type Server struct {
	world     donburi.World
	sim       *simulation.Simulation
	mirror    *Mirror
	loop      *GameLoop
	transport *transports.WsServerTransport

	// Clients in join order, guarded by mu (router callbacks run on necs goroutines)
	clients []*router.NetworkClient
	inputs  map[*router.NetworkClient]messages.PlayerInput
	mu      sync.Mutex
}

// NewServer loads the levels and the first level and wires esync.
func NewServer(opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		return nil, errors.New("tick rate must be positive")
	}

	levels, names, err := LoadServerLevels(opts.AssetsDir)
	if err != nil {
		return nil, err
	}
	first, err := startLevel(names, opts.Level)
	if err != nil {
		return nil, err
	}

	sim := simulation.New(levels)
	if err := sim.LoadLevel(first); err != nil {
		// Skipped spawns leave the rest of the level playable.
		log.Printf("[server] Warning: level %s: %v", first, err)
	}

	world := donburi.NewWorld()
	s := &Server{
		world:  world,
		sim:    sim,
		mirror: NewMirror(world),
		inputs: make(map[*router.NetworkClient]messages.PlayerInput),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)
	s.mirror.OnBody = func(e *donburi.Entity) error {
		return srvsync.NetworkSync(world, e,
			srvsync.WithInterp(netcomponents.NetBody, netcomponents.NetVelocity),
		)
	}
	s.mirror.OnState = func(e *donburi.Entity) error {
		return srvsync.NetworkSync(world, e, netcomponents.NetGameState)
	}

	s.setupRouterCallbacks()
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	if err := s.transport.Start(); err != nil {
		return fmt.Errorf("start transport on port %d: %w", port, err)
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		log.Printf("[server] %s joined as %q (version %q)", client.Id(), req.PlayerName, req.Version)
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	s.mu.Lock()
	s.clients = append(s.clients, client)
	n := len(s.clients)
	s.mu.Unlock()

	if n == 1 {
		log.Printf("[server] client %s connected and drives the player", client.Id())
	} else {
		log.Printf("[server] client %s connected as watcher (%d clients)", client.Id(), n)
	}
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	s.clients = removeClient(s.clients, client)
	delete(s.inputs, client)
	s.mu.Unlock()
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.inputs[client]; ok && !input.Newer(prev) {
		return
	}
	s.inputs[client] = input
}

// driverInput returns the input of the driving client.
func (s *Server) driverInput() entities.PlayerInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.clients) == 0 {
		return entities.PlayerInput{}
	}
	return toPlayerInput(s.inputs[s.clients[0]])
}

// step advances the simulation by one server tick and mirrors the result.
func (s *Server) step(dt float64) {
	s.sim.SetInput(s.driverInput())
	if err := s.sim.Step(dt); err != nil {
		log.Printf("[sim] %v", err)
	}
	if err := s.mirror.Sync(s.sim, s.PlayerCount()); err != nil {
		log.Printf("[server] mirror: %v", err)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected clients
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func toPlayerInput(in messages.PlayerInput) entities.PlayerInput {
	return entities.PlayerInput{
		Left:  in.Left,
		Right: in.Right,
		Jump:  in.Jump,
		Shoot: in.Shoot,
	}
}

func removeClient(clients []*router.NetworkClient, c *router.NetworkClient) []*router.NetworkClient {
	for i, other := range clients {
		if other == c {
			return append(clients[:i], clients[i+1:]...)
		}
	}
	return clients
}
