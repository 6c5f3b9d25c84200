package components

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TorchData is a flickering glow that emits embers
type TorchData struct {
	Time      float64
	EmitAccum float64
	Rand      *rand.Rand
	Ember     *ebiten.Image
}

var Torch = donburi.NewComponentType[TorchData]()

// EmberData is a single rising spark. Fade drives its alpha; the ember is
// removed when the tween finishes.
type EmberData struct {
	VX, VY float64
	Fade   *gween.Tween
}

var Ember = donburi.NewComponentType[EmberData]()
