package systems

import (
	"math"

	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateTorches(e *ecs.ECS) {
	StepTorches(e, FrameDelta())
}

type emberSpawn struct {
	img    *ebiten.Image
	x, y   float64
	scale  float64
	vx, vy float64
}

// StepTorches flickers every torch, emits embers at a fixed interval and
// moves the embers already alive. Embers that finished fading or left the
// top of the screen are removed.
func StepTorches(e *ecs.ECS, dt float64) {
	var spawns []emberSpawn

	components.Torch.Each(e.World, func(entry *donburi.Entry) {
		t := components.Torch.Get(entry)
		n := components.Node.Get(entry)

		t.Time += dt
		components.Sprite.Get(entry).Alpha = 0.8 + 0.2*math.Sin(t.Time*cfg.Title.TorchFlickerSpeed)

		if cfg.Title.EmberInterval <= 0 || t.Ember == nil {
			return
		}
		t.EmitAccum += dt
		for t.EmitAccum >= cfg.Title.EmberInterval {
			t.EmitAccum -= cfg.Title.EmberInterval
			drift := cfg.Title.EmberDrift
			if t.Rand != nil {
				drift *= t.Rand.Float64()*2 - 1
			}
			spawns = append(spawns, emberSpawn{
				img:   t.Ember,
				x:     n.X + n.W*n.Scale/2,
				y:     n.Y + n.H*n.Scale/2,
				scale: n.Scale,
				vx:    drift * n.Scale,
				vy:    -cfg.Title.EmberRiseSpeed * n.Scale,
			})
		}
	})

	var dead []*donburi.Entry
	components.Ember.Each(e.World, func(entry *donburi.Entry) {
		em := components.Ember.Get(entry)
		n := components.Node.Get(entry)

		n.X += em.VX * dt
		n.Y += em.VY * dt
		alpha, finished := em.Fade.Update(float32(dt))
		components.Sprite.Get(entry).Alpha = float64(alpha)

		if finished || n.Y+n.H*n.Scale < 0 {
			dead = append(dead, entry)
		}
	})

	for _, entry := range dead {
		e.World.Remove(entry.Entity())
	}
	for _, s := range spawns {
		factory.CreateEmber(e, s.img, s.x, s.y, s.scale, s.vx, s.vy, cfg.Title.EmberLifetime)
	}
}
