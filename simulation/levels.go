package simulation

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/tilephys/shared/leveldata"
)

var ErrUnknownLevel = errors.New("unknown level")

// LevelSet is a LevelSource backed by levels loaded up front.
type LevelSet map[string]*leveldata.Level

// LoadLevelSet loads every level in dir and returns the set plus the sorted
// level names.
func LoadLevelSet(fsys fs.FS, dir string) (LevelSet, []string, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, dir)
	if err != nil {
		return nil, nil, err
	}
	return LevelSet(levels), names, nil
}

func (ls LevelSet) Level(name string) (*leveldata.Level, error) {
	level, ok := ls[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return level, nil
}
