package components

import (
	"github.com/automoto/pixeldungeon/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData drives an entity's sprite image from a frame strip
type AnimationData struct {
	CurrentAnimation *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
