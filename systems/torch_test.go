package systems

import (
	"testing"

	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/layout"
	"github.com/automoto/pixeldungeon/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func embers(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	components.Ember.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func TestTorchEmitsEmbersAtInterval(t *testing.T) {
	e := newTestECS(t)
	factory.CreateTorch(e, ebiten.NewImage(16, 16), ebiten.NewImage(2, 2), layout.Point{X: 100, Y: 100}, 1, 1)

	StepTorches(e, cfg.Title.EmberInterval*3+0.001)

	spawned := embers(e)
	require.Len(t, spawned, 3)
	for _, entry := range spawned {
		n := components.Node.Get(entry)
		require.Equal(t, 100.0, n.X)
		require.Equal(t, 100.0, n.Y)

		em := components.Ember.Get(entry)
		require.Less(t, em.VY, 0.0, "embers rise")
		require.LessOrEqual(t, em.VX, cfg.Title.EmberDrift)
		require.GreaterOrEqual(t, em.VX, -cfg.Title.EmberDrift)
	}

	StepTorches(e, cfg.Title.EmberLifetime)
	for _, entry := range spawned {
		require.False(t, entry.Valid(), "ember should be removed after fading out")
	}
	require.NotEmpty(t, embers(e), "the torch keeps emitting")
}

func TestTorchFlickerStaysBright(t *testing.T) {
	e := newTestECS(t)
	torch := factory.CreateTorch(e, ebiten.NewImage(16, 16), nil, layout.Point{X: 50, Y: 50}, 2, 7)

	for i := 0; i < 100; i++ {
		StepTorches(e, 1.0/60)
		alpha := components.Sprite.Get(torch).Alpha
		require.GreaterOrEqual(t, alpha, 0.6-1e-9)
		require.LessOrEqual(t, alpha, 1.0+1e-9)
	}
	require.Empty(t, embers(e), "a torch without ember art emits nothing")
}

func TestEmberLeavingScreenIsRemoved(t *testing.T) {
	e := newTestECS(t)
	ember := factory.CreateEmber(e, ebiten.NewImage(2, 2), 10, 1, 1, 0, -100, 10)

	StepTorches(e, 0.1)

	require.False(t, ember.Valid())
}

func TestEmberFadesOut(t *testing.T) {
	e := newTestECS(t)
	ember := factory.CreateEmber(e, ebiten.NewImage(2, 2), 10, 200, 1, 0, -1, 1)

	StepTorches(e, 0.5)
	require.True(t, ember.Valid())
	alpha := components.Sprite.Get(ember).Alpha
	require.Greater(t, alpha, 0.0)
	require.Less(t, alpha, 1.0)
	require.InDelta(t, 199.5, components.Node.Get(ember).Y, 1e-9)

	StepTorches(e, 0.5)
	require.False(t, ember.Valid())
}

func TestTorchFlameAnimates(t *testing.T) {
	e := newTestECS(t)
	torch := factory.CreateTorch(e, ebiten.NewImage(64, 16), nil, layout.Point{X: 50, Y: 50}, 1, 0)
	n := components.Node.Get(torch)
	require.Equal(t, 16.0, n.W)
	require.Equal(t, 42.0, n.X)

	anim := components.Animation.Get(torch).CurrentAnimation
	first := components.Sprite.Get(torch).Image
	require.Same(t, anim.Frames[0], first)

	for i := 0; i <= int(cfg.Title.TorchFrameTicks); i++ {
		UpdateAnimations(e)
	}
	require.Equal(t, 1, anim.Frame())
	require.Same(t, anim.Frames[1], components.Sprite.Get(torch).Image)
}

func TestTorchSeedPicksStartingFrame(t *testing.T) {
	e := newTestECS(t)
	strip := ebiten.NewImage(64, 16)
	a := factory.CreateTorch(e, strip, nil, layout.Point{}, 1, 1)
	b := factory.CreateTorch(e, strip, nil, layout.Point{}, 1, 2)

	require.NotEqual(t,
		components.Animation.Get(a).CurrentAnimation.Frame(),
		components.Animation.Get(b).CurrentAnimation.Frame())
}
