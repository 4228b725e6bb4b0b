package components

import (
	"github.com/yohamta/donburi"
)

// LevelData tracks which of the bundled levels the viewer is showing.
type LevelData struct {
	Names []string // sorted level names
	Index int
}

// Current returns the name of the selected level, or "" without levels.
func (d *LevelData) Current() string {
	if len(d.Names) == 0 {
		return ""
	}
	return d.Names[d.Index%len(d.Names)]
}

// Next selects the following level, wrapping around.
func (d *LevelData) Next() string {
	if len(d.Names) == 0 {
		return ""
	}
	d.Index = (d.Index + 1) % len(d.Names)
	return d.Names[d.Index]
}

// Select points Index at name and reports whether it is known.
func (d *LevelData) Select(name string) bool {
	for i, n := range d.Names {
		if n == name {
			d.Index = i
			return true
		}
	}
	return false
}

var Level = donburi.NewComponentType[LevelData]()
