package physics

import (
	"cmp"
	"fmt"
	"slices"
)

// SortFunc orders two bodies the way slices.SortStableFunc expects.
type SortFunc func(a, b *Body) int

// SortByZIndex draws low z-indices first.
func SortByZIndex(a, b *Body) int {
	return cmp.Compare(a.ZIndex, b.ZIndex)
}

// SortByPosX orders bodies by their right edge.
func SortByPosX(a, b *Body) int {
	return cmp.Compare(a.Pos.X+a.Size.X, b.Pos.X+b.Size.X)
}

// SortByPosY orders bodies by their bottom edge.
func SortByPosY(a, b *Body) int {
	return cmp.Compare(a.Pos.Y+a.Size.Y, b.Pos.Y+b.Size.Y)
}

// SortByName maps the config names "z", "x" and "y" to sort functions.
func SortByName(name string) (SortFunc, error) {
	switch name {
	case "", "z":
		return SortByZIndex, nil
	case "x":
		return SortByPosX, nil
	case "y":
		return SortByPosY, nil
	}
	return nil, fmt.Errorf("unknown sort order %q", name)
}

func sortBodies(bodies []*Body, by SortFunc) {
	slices.SortStableFunc(bodies, by)
}
