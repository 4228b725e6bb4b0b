package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

var (
	ErrNoCollisionLayer = errors.New("level has no collision layer")
	ErrNonSquareTiles   = errors.New("level tiles are not square")
	ErrTileCount        = errors.New("collision layer tile count does not match the map size")
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS (viewer) or os.DirFS (server).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("%s: %w (%dx%d)", tmxPath, ErrNonSquareTiles, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		TileSize: levelMap.TileWidth,
		Defs:     collision.TileDefs{},
		PxWidth:  levelMap.Width * levelMap.TileWidth,
		PxHeight: levelMap.Height * levelMap.TileHeight,
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == CollisionLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%s: %w %q", tmxPath, ErrNoCollisionLayer, CollisionLayerName)
	}

	level.Grid, err = buildGrid(layer.Tiles, levelMap.Width, levelMap.Height, level.Defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case EntitiesGroupName:
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, spawnFromObject(o))
			}
		case DeadZonesGroupName:
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	return level, nil
}

// buildGrid turns the row-major layer tiles into collision ids. Infinite
// maps store their tiles in chunks and fail the size check.
func buildGrid(tiles []*tiled.LayerTile, width, height int, defs collision.TileDefs) ([][]int, error) {
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d", ErrTileCount, len(tiles), width, height)
	}
	grid := make([][]int, height)
	for y := range grid {
		row := make([]int, width)
		for x := range row {
			tile := tiles[y*width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			row[x] = tileID(tile, defs)
		}
		grid[y] = row
	}
	return grid, nil
}

// tileID maps a layer tile to its collision id and records slope geometry
// declared on the tileset tile.
func tileID(tile *tiled.LayerTile, defs collision.TileDefs) int {
	id := int(tile.ID) + 1
	if tile.Tileset == nil {
		return id
	}
	tsTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return id
	}

	props := tsTile.Properties
	if v, ok := property(props, "collision"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			id = n
		}
	}

	_, hasLine := property(props, "x1")
	if hasLine && id > 1 {
		defs[id] = collision.TileDef{
			X1:    props.GetFloat("x1"),
			Y1:    props.GetFloat("y1"),
			X2:    props.GetFloat("x2"),
			Y2:    props.GetFloat("y2"),
			Solid: props.GetBool("solid"),
		}
	}
	return id
}

func property(props tiled.Properties, name string) (string, bool) {
	for _, p := range props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

func spawnFromObject(o *tiled.Object) Spawn {
	kind := o.Class
	if kind == "" {
		kind = o.Type //nolint:staticcheck // TMX uses type= attribute
	}

	settings := make(map[string]string, len(o.Properties)+2)
	for _, p := range o.Properties {
		settings[p.Name] = p.Value
	}
	if o.Width > 0 {
		settings["width"] = strconv.FormatFloat(o.Width, 'f', -1, 64)
	}
	if o.Height > 0 {
		settings["height"] = strconv.FormatFloat(o.Height, 'f', -1, 64)
	}

	return Spawn{
		Kind:     kind,
		Name:     o.Name,
		X:        o.X,
		Y:        o.Y,
		W:        o.Width,
		H:        o.Height,
		Settings: settings,
	}
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
