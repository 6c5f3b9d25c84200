package animations

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

func TestSliceStrip(t *testing.T) {
	frames := SliceStrip(ebiten.NewImage(64, 16), 16)
	require.Len(t, frames, 4)
	require.Equal(t, 32, frames[2].Bounds().Min.X)
	require.Equal(t, 16, frames[2].Bounds().Dx())

	single := SliceStrip(ebiten.NewImage(8, 8), 16)
	require.Len(t, single, 1)
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(ebiten.NewImage(48, 16), 16, 2)
	require.Equal(t, 0, a.Frame())

	// A frame lasts SpeedInTps+1 ticks.
	for i := 0; i < 3; i++ {
		a.Update()
	}
	require.Equal(t, 1, a.Frame())

	for i := 0; i < 6; i++ {
		a.Update()
	}
	require.Equal(t, 0, a.Frame())
	require.Equal(t, 1, a.Loops)
	require.Same(t, a.Frames[0], a.Image())
}

func TestAnimationRestartWraps(t *testing.T) {
	a := NewAnimation(ebiten.NewImage(48, 16), 16, 2)

	a.Restart(5)
	require.Equal(t, 2, a.Frame())

	a.Restart(-1)
	require.Equal(t, 2, a.Frame())
}
