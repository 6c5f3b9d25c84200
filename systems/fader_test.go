package systems

import (
	"testing"

	"github.com/automoto/pixeldungeon/components"
	"github.com/automoto/pixeldungeon/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

func TestFaderFadesToClearAndRemovesItself(t *testing.T) {
	e := newTestECS(t)
	fader := factory.CreateFader(e, 1)
	require.Equal(t, 1.0, components.Fader.Get(fader).Alpha)

	StepFaders(e, 0.5)
	require.InDelta(t, 0.5, components.Fader.Get(fader).Alpha, 1e-6)

	StepFaders(e, 0.5)
	require.False(t, fader.Valid())
}

func TestZeroDurationFaderFinishesImmediately(t *testing.T) {
	e := newTestECS(t)
	fader := factory.CreateFader(e, 0)

	StepFaders(e, 1.0/60)

	require.False(t, fader.Valid())
}

func TestArchsScrollAndWrap(t *testing.T) {
	e := newTestECS(t)
	archs := factory.CreateArchs(e, ebiten.NewImage(64, 64), 320, 240, 20, factory.ZArchsBack)

	StepArchs(e, 1)
	require.InDelta(t, 20, components.Archs.Get(archs).Offset, 1e-9)

	StepArchs(e, 3)
	require.InDelta(t, 16, components.Archs.Get(archs).Offset, 1e-9)
}
