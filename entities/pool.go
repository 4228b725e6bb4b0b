package entities

import "github.com/automoto/tilephys/physics"

// Pool keeps removed bodies of pooled kinds for reuse.
type Pool struct {
	free map[Kind][]*physics.Body
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{free: make(map[Kind][]*physics.Body)}
}

// Put stores b if its kind is pooled and reports whether it did.
func (p *Pool) Put(b *physics.Body) bool {
	k := KindOf(b)
	if !k.Valid() || !Kinds[k].Pooled {
		return false
	}
	if _, ok := b.Behavior.(Poolable); !ok {
		return false
	}
	p.free[k] = append(p.free[k], b)
	return true
}

// Get takes a body of kind k out of the pool, or returns nil.
func (p *Pool) Get(k Kind) *physics.Body {
	list := p.free[k]
	if len(list) == 0 {
		return nil
	}
	b := list[len(list)-1]
	list[len(list)-1] = nil
	p.free[k] = list[:len(list)-1]
	return b
}

// Len returns the number of pooled bodies of kind k.
func (p *Pool) Len(k Kind) int {
	return len(p.free[k])
}

// Drain empties the pool of one kind.
func (p *Pool) Drain(k Kind) {
	delete(p.free, k)
}

// DrainAll empties every pool.
func (p *Pool) DrainAll() {
	clear(p.free)
}
