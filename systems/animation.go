package systems

import (
	"github.com/automoto/pixeldungeon/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every frame strip by one tick and shows the
// current frame on the entity's sprite.
func UpdateAnimations(e *ecs.ECS) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry).CurrentAnimation
		if anim == nil {
			return
		}
		anim.Update()
		if img := anim.Image(); img != nil && entry.HasComponent(components.Sprite) {
			components.Sprite.Get(entry).Image = img
		}
	})
}
