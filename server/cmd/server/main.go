package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/server/core"
	"github.com/automoto/tilephys/shared/protocol"
)

func main() {
	port := flag.Uint("port", uint(config.Server.Port), "Server port")
	tickRate := flag.Int("tickrate", config.Server.TickRate, "Server tick rate (updates per second)")
	assetsDir := flag.String("assets", "assets", "Directory holding levels/*.tmx")
	level := flag.String("level", "", "First level (empty = first by name)")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server, err := core.NewServer(core.Options{
		TickRate:  *tickRate,
		AssetsDir: *assetsDir,
		Level:     *level,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting tilephys server on port %d (tick rate: %d/s, assets: %s)", *port, *tickRate, *assetsDir)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
