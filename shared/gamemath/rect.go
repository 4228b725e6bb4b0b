package gamemath

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles sharing only an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.X >= o.X+o.W || r.X+r.W <= o.X || r.Y >= o.Y+o.H || r.Y+r.H <= o.Y)
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
