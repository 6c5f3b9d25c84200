package components

import (
	"image/color"

	"github.com/automoto/pixeldungeon/fonts"
	"github.com/yohamta/donburi"
)

type LabelData struct {
	Text  string
	Font  fonts.FontName
	Color color.RGBA
}

var Label = donburi.NewComponentType[LabelData]()
