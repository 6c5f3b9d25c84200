package systems

import "github.com/hajimehoshi/ebiten/v2"

// FrameDelta is the length of one update tick in seconds.
func FrameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}
