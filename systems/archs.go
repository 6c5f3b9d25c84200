package systems

import (
	"math"

	"github.com/automoto/pixeldungeon/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateArchs(e *ecs.ECS) {
	StepArchs(e, FrameDelta())
}

// StepArchs scrolls the background layers. The offset wraps at the tile height.
func StepArchs(e *ecs.ECS, dt float64) {
	components.Archs.Each(e.World, func(entry *donburi.Entry) {
		a := components.Archs.Get(entry)
		img := components.Sprite.Get(entry).Image
		if img == nil {
			return
		}
		tileH := float64(img.Bounds().Dy())
		a.Offset = math.Mod(a.Offset+a.Speed*dt, tileH)
	})
}
