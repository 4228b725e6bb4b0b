package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Interval returns the wall-clock time between two ticks.
func (g *GameLoop) Interval() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.Interval())
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	last := time.Now()
	for {
		select {
		case <-g.stopChan:
			log.Println("[loop] stopped")
			return
		case now := <-ticker.C:
			g.tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick(dt float64) {
	g.server.step(dt)

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[loop] sync error: %v", err)
	}
}
