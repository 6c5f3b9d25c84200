package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FaderData covers the whole screen with Color at Alpha
type FaderData struct {
	Tween *gween.Tween
	Alpha float64
	Color color.RGBA
}

var Fader = donburi.NewComponentType[FaderData]()
