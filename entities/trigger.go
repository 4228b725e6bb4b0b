package entities

import (
	"strings"

	"github.com/automoto/tilephys/clock"
	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/physics"
)

// Trigger fires its targets when a body of the checked type overlaps it.
// Settings:
//
//	checks    A, B, BOTH or NONE (default A)
//	wait      seconds between two fires, -1 fires only once
//	target.N  names of the bodies to fire
//	width, height
type Trigger struct {
	Wait    float64
	Targets []string

	handles  []physics.Handle
	resolved bool
	canFire  bool
	timer    *clock.Timer
}

func (t *Trigger) Kind() Kind { return KindTrigger }

func (t *Trigger) Reset(b *physics.Body, _, _ float64, settings map[string]string) {
	*t = Trigger{
		Wait:    settingFloat(settings, "wait", config.Kinds.TriggerWait),
		Targets: settingList(settings, "target"),
		canFire: true,
	}

	b.Size.X = settingFloat(settings, "width", 32)
	b.Size.Y = settingFloat(settings, "height", 32)
	b.GravityFactor = 0

	b.Type = physics.TypeNone
	b.CheckAgainst = checksSetting(settings["checks"])
	b.Collides = physics.Never
}

func checksSetting(v string) physics.EntityType {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "B":
		return physics.TypeB
	case "BOTH":
		return physics.TypeBoth
	case "NONE":
		return physics.TypeNone
	default:
		return physics.TypeA
	}
}

// Ready resolves the target names once the level is populated.
func (t *Trigger) Ready(reg *physics.Registry, _ *physics.Body) {
	t.handles = reg.Resolve(t.Targets...)
	t.resolved = true
}

// Update keeps the trigger in place.
func (t *Trigger) Update(*physics.Context, *physics.Body) {}

func (t *Trigger) Check(ctx *physics.Context, self, other *physics.Body) {
	// Without names nothing can be fired; keep the fire for later.
	if ctx.Names == nil || !t.ready(ctx) {
		return
	}
	if !t.resolved {
		t.Ready(ctx.Names, self)
	}
	t.fire(ctx, other)

	if t.Wait < 0 {
		t.canFire = false
		return
	}
	if t.timer != nil {
		t.timer.Set(t.Wait)
	}
}

func (t *Trigger) fire(ctx *physics.Context, by *physics.Body) {
	for _, h := range t.handles {
		target := ctx.Names.Body(h)
		if target == nil {
			continue
		}
		if tr, ok := target.Behavior.(physics.Triggerable); ok {
			tr.Trigger(ctx, target, by)
		}
	}
}

func (t *Trigger) ready(ctx *physics.Context) bool {
	if !t.canFire {
		return false
	}
	if t.timer == nil {
		if ctx.Clock == nil {
			return true
		}
		t.timer = ctx.Clock.NewTimer(0)
	}
	return t.timer.Done()
}

// Hurt damages whatever fired the trigger pointing at it.
type Hurt struct {
	Damage float64
}

func (h *Hurt) Kind() Kind { return KindHurt }

func (h *Hurt) Reset(b *physics.Body, _, _ float64, settings map[string]string) {
	h.Damage = settingFloat(settings, "damage", config.Kinds.HurtDamage)

	b.Size.X = settingFloat(settings, "width", 32)
	b.Size.Y = settingFloat(settings, "height", 32)
	b.GravityFactor = 0
	b.Type = physics.TypeNone
	b.CheckAgainst = physics.TypeNone
	b.Collides = physics.Never
}

func (h *Hurt) Update(*physics.Context, *physics.Body) {}

func (h *Hurt) Trigger(ctx *physics.Context, self, by *physics.Body) {
	by.ReceiveDamage(ctx, h.Damage, self)
}

// LevelChange asks for another level when fired.
type LevelChange struct {
	Level string
}

func (l *LevelChange) Kind() Kind { return KindLevelChange }

func (l *LevelChange) Reset(b *physics.Body, _, _ float64, settings map[string]string) {
	l.Level = strings.TrimSpace(settings["level"])

	b.Size.X = settingFloat(settings, "width", 32)
	b.Size.Y = settingFloat(settings, "height", 32)
	b.GravityFactor = 0
	b.Type = physics.TypeNone
	b.CheckAgainst = physics.TypeNone
	b.Collides = physics.Never
}

func (l *LevelChange) Update(*physics.Context, *physics.Body) {}

func (l *LevelChange) Trigger(ctx *physics.Context, _, _ *physics.Body) {
	if l.Level != "" {
		ctx.LoadLevel(l.Level)
	}
}
