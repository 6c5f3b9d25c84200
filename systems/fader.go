package systems

import (
	"github.com/automoto/pixeldungeon/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateFaders(e *ecs.ECS) {
	StepFaders(e, FrameDelta())
}

// StepFaders advances every fader and removes the ones that finished.
func StepFaders(e *ecs.ECS, dt float64) {
	var done []*donburi.Entry
	components.Fader.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fader.Get(entry)
		alpha, finished := f.Tween.Update(float32(dt))
		f.Alpha = float64(alpha)
		if finished {
			done = append(done, entry)
		}
	})

	for _, entry := range done {
		e.World.Remove(entry.Entity())
	}
}
