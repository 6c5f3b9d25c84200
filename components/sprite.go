package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// BlendMode selects how a sprite is combined with what is already on screen
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAdditive
)

type SpriteData struct {
	Image      *ebiten.Image
	Brightness float64 // RGB multiplier, 1 = unchanged
	Alpha      float64 // values outside [0,1] are clamped when drawn
	Blend      BlendMode
}

var Sprite = donburi.NewComponentType[SpriteData]()

// NewSprite returns sprite data with neutral brightness and full opacity.
func NewSprite(img *ebiten.Image) SpriteData {
	return SpriteData{Image: img, Brightness: 1, Alpha: 1}
}
