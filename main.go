package main

import (
	"flag"
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/tilephys/assets"
	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/fonts"
	"github.com/automoto/tilephys/network"
	"github.com/automoto/tilephys/scenes"
	"github.com/automoto/tilephys/shared/protocol"
	"github.com/automoto/tilephys/simulation"
	"github.com/automoto/tilephys/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", "", "Level to start with (empty = first by name)")
	levelsDir := flag.String("levels", "", "Load levels from this directory instead of the bundled ones")
	connect := flag.String("connect", "", "Watch a server at host:port instead of running locally")
	name := flag.String("name", "player", "Player name sent to the server")
	scale := flag.Float64("scale", 0, "Window scale (0 = saved or default)")
	debug := flag.Bool("debug", false, "Start with the debug overlay")
	paused := flag.Bool("paused", false, "Start paused")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *scale > 0 {
		config.C.Scale = *scale
	}
	if *debug {
		config.Debug.Overlay = true
	}
	config.Debug.Paused = *paused

	var fsys fs.FS = assets.LevelFS()
	if *levelsDir != "" {
		fsys = os.DirFS(*levelsDir)
	}
	levels, names, err := simulation.LoadLevelSet(fsys, levelsRoot(*levelsDir))
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{}
	if *connect != "" {
		// Register network components for client-side deserialization
		if err := protocol.RegisterComponents(); err != nil {
			log.Fatalf("Failed to register network components: %v", err)
		}
		client := network.NewClient()
		client.Connect(*connect, "", *name)
		g.scene = scenes.NewRemoteScene(client, levels)
	} else {
		g.scene = scenes.NewPlatformerScene(levels, names, *level)
	}

	w := int(float64(config.C.Width) * config.C.Scale)
	h := int(float64(config.C.Height) * config.C.Scale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// levelsRoot returns the directory of the .tmx files inside the level fs.
func levelsRoot(levelsDir string) string {
	if levelsDir != "" {
		return "."
	}
	return assets.LevelsDir
}
