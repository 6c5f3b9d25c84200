package systems

import (
	"math"

	"github.com/automoto/pixeldungeon/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PulseAlpha is the overlay alpha after t seconds. Half of each period is
// negative, which draws as fully transparent.
func PulseAlpha(t float64) float64 {
	return math.Sin(-t)
}

func UpdatePulse(e *ecs.ECS) {
	StepPulse(e, FrameDelta())
}

// StepPulse advances every pulsing sprite by dt seconds.
func StepPulse(e *ecs.ECS, dt float64) {
	components.Pulse.Each(e.World, func(entry *donburi.Entry) {
		p := components.Pulse.Get(entry)
		p.Time += dt
		components.Sprite.Get(entry).Alpha = PulseAlpha(p.Time)
	})
}
