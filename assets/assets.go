// Package assets embeds the bundled levels.
package assets

import (
	"embed"
	"io/fs"
)

// LevelsDir is the directory holding the .tmx files inside LevelFS.
const LevelsDir = "levels"

//go:embed all:levels
var assetFS embed.FS

// LevelFS returns the embedded asset tree.
func LevelFS() fs.FS {
	return assetFS
}
