// Package entities holds the body kinds a level can spawn and the pool and
// spawner that create them.
package entities

import (
	"strings"

	"github.com/automoto/tilephys/physics"
)

// Kind is the stable identifier of a body kind.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindBlob
	KindCoin
	KindFireball
	KindTrigger
	KindHurt
	KindLevelChange
	KindPlatform

	kindCount
)

// Poolable is implemented by the behavior of every kind. Reset puts the
// body and the behavior back into spawn state, whether b is brand new or
// came out of the pool.
type Poolable interface {
	Kind() Kind
	Reset(b *physics.Body, x, y float64, settings map[string]string)
}

// KindInfo describes one row of the dispatch table.
type KindInfo struct {
	Name    string
	Aliases []string
	Pooled  bool
	New     func() Poolable
}

// Kinds is the dispatch table, indexed by Kind.
var Kinds = [kindCount]KindInfo{
	KindPlayer:      {Name: "player", Aliases: []string{"EntityPlayer"}, New: func() Poolable { return &Player{} }},
	KindBlob:        {Name: "blob", Aliases: []string{"EntityBlob", "enemy"}, New: func() Poolable { return &Blob{} }},
	KindCoin:        {Name: "coin", Aliases: []string{"EntityCoin"}, New: func() Poolable { return &Coin{} }},
	KindFireball:    {Name: "fireball", Aliases: []string{"EntityFireball"}, Pooled: true, New: func() Poolable { return &Fireball{} }},
	KindTrigger:     {Name: "trigger", Aliases: []string{"EntityTrigger"}, New: func() Poolable { return &Trigger{} }},
	KindHurt:        {Name: "hurt", Aliases: []string{"EntityHurt"}, New: func() Poolable { return &Hurt{} }},
	KindLevelChange: {Name: "levelchange", Aliases: []string{"EntityLevelChange", "level_change"}, New: func() Poolable { return &LevelChange{} }},
	KindPlatform:    {Name: "platform", Aliases: []string{"EntityPlatform", "floating_platform"}, New: func() Poolable { return &Platform{} }},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind)
	for k, info := range Kinds {
		if info.New == nil {
			continue
		}
		m[strings.ToLower(info.Name)] = Kind(k)
		for _, alias := range info.Aliases {
			m[strings.ToLower(alias)] = Kind(k)
		}
	}
	return m
}()

// KindByName looks a kind up by its name or one of its aliases, ignoring
// case.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Valid reports whether k has an entry in the dispatch table.
func (k Kind) Valid() bool {
	return k < kindCount && Kinds[k].New != nil
}

func (k Kind) String() string {
	if !k.Valid() {
		return "none"
	}
	return Kinds[k].Name
}

// KindOf returns the kind of a body.
func KindOf(b *physics.Body) Kind {
	return Kind(b.Kind)
}
