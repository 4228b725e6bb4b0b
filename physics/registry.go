package physics

// Handle refers to a named body slot. The zero Handle refers to nothing.
type Handle int

// Registry maps body names to stable handles. Names are resolved to
// handles once, when a level is loaded; afterwards lookups are an index.
type Registry struct {
	names map[string]Handle
	slots []*Body
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]Handle),
		slots: []*Body{nil},
	}
}

// Bind associates name with b and returns its handle. Binding a name again
// keeps the handle and points it at the new body.
func (r *Registry) Bind(name string, b *Body) Handle {
	if h, ok := r.names[name]; ok {
		r.slots[h] = b
		return h
	}
	h := Handle(len(r.slots))
	r.slots = append(r.slots, b)
	r.names[name] = h
	return h
}

// Handle returns the handle bound to name.
func (r *Registry) Handle(name string) (Handle, bool) {
	h, ok := r.names[name]
	return h, ok
}

// Resolve turns a list of names into handles, skipping unknown names.
func (r *Registry) Resolve(names ...string) []Handle {
	var out []Handle
	for _, n := range names {
		if h, ok := r.names[n]; ok {
			out = append(out, h)
		}
	}
	return out
}

// Body returns the live body behind h, or nil when the slot is empty or
// its body was killed.
func (r *Registry) Body(h Handle) *Body {
	if h <= 0 || int(h) >= len(r.slots) {
		return nil
	}
	b := r.slots[h]
	if b == nil || b.Killed {
		return nil
	}
	return b
}

// Lookup returns the live body bound to name.
func (r *Registry) Lookup(name string) *Body {
	h, ok := r.names[name]
	if !ok {
		return nil
	}
	return r.Body(h)
}

// Unbind empties the slot of name if it still points at b. The handle
// stays reserved for the name.
func (r *Registry) Unbind(name string, b *Body) {
	if h, ok := r.names[name]; ok && r.slots[h] == b {
		r.slots[h] = nil
	}
}

// Reset forgets every name. Handles issued before are invalid afterwards.
func (r *Registry) Reset() {
	clear(r.names)
	clear(r.slots)
	r.slots = r.slots[:1]
}

// Len returns the number of names known to r.
func (r *Registry) Len() int {
	return len(r.names)
}
