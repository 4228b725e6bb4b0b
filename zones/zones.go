// Package zones indexes the static rectangles of a level that act on bodies
// without colliding with them, such as dead zones.
package zones

import (
	"github.com/automoto/tilephys/physics"
	"github.com/automoto/tilephys/shared/gamemath"
	"github.com/automoto/tilephys/tags"
	"github.com/solarlune/resolv"
)

// TagDeadZone marks dead zones in the field.
const TagDeadZone = tags.ResolvDeadZone

// Field holds the zones of one level in a resolv space.
type Field struct {
	space *resolv.Space
	probe *resolv.Object
	count int
}

// NewField returns an empty field covering a width x height pixel level.
func NewField(width, height int, cellSize int) *Field {
	if cellSize <= 0 {
		cellSize = 16
	}
	cols := max(width/cellSize+1, 1)
	rows := max(height/cellSize+1, 1)
	return &Field{
		space: resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		probe: resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe),
	}
}

// AddDeadZone adds a rectangle that kills every body touching it.
func (f *Field) AddDeadZone(r gamemath.Rect) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = r
	f.space.Add(obj)
	f.count++
	return obj
}

// Len returns the number of zones in the field.
func (f *Field) Len() int {
	return f.count
}

// Touching returns the rectangles carrying tag that overlap r.
func (f *Field) Touching(r gamemath.Rect, tag string) []gamemath.Rect {
	f.probe.X, f.probe.Y = r.X, r.Y
	f.probe.W, f.probe.H = r.W, r.H
	f.space.Add(f.probe)
	defer f.space.Remove(f.probe)

	check := f.probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	// resolv reports objects sharing a cell; keep the real overlaps.
	var out []gamemath.Rect
	for _, obj := range check.ObjectsByTags(tag) {
		zone, ok := obj.Data.(gamemath.Rect)
		if ok && zone.Overlaps(r) {
			out = append(out, zone)
		}
	}
	return out
}

// InDeadZone reports whether b touches a dead zone.
func (f *Field) InDeadZone(b *physics.Body) bool {
	return len(f.Touching(b.Rect(), TagDeadZone)) > 0
}

// Apply kills every live body touching a dead zone and returns the bodies
// it killed. They leave the world on its next removal phase.
func (f *Field) Apply(bodies []*physics.Body) []*physics.Body {
	if f.count == 0 {
		return nil
	}
	var killed []*physics.Body
	for _, b := range bodies {
		if b.Killed || !f.InDeadZone(b) {
			continue
		}
		b.Kill()
		killed = append(killed, b)
	}
	return killed
}
