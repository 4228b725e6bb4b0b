package core

import (
	"fmt"
	"log"
	"os"

	"github.com/automoto/tilephys/simulation"
)

// LoadServerLevels loads every .tmx level under assetsDir/levels and returns
// them with their sorted names.
func LoadServerLevels(assetsDir string) (simulation.LevelSet, []string, error) {
	levels, names, err := simulation.LoadLevelSet(os.DirFS(assetsDir), "levels")
	if err != nil {
		return nil, nil, fmt.Errorf("load levels from %s: %w", assetsDir, err)
	}

	for _, name := range names {
		lvl := levels[name]
		log.Printf("[level] %s: %dx%d px, %d spawns, %d dead zones",
			name, lvl.PxWidth, lvl.PxHeight, len(lvl.Spawns), len(lvl.DeadZones))
	}
	return levels, names, nil
}

// startLevel returns want when it is one of names, otherwise the first name.
func startLevel(names []string, want string) (string, error) {
	if len(names) == 0 {
		return "", simulation.ErrUnknownLevel
	}
	if want == "" {
		return names[0], nil
	}
	for _, n := range names {
		if n == want {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", simulation.ErrUnknownLevel, want)
}
