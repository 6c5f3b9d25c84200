package main

import (
	"github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/layout"
	"github.com/automoto/pixeldungeon/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneBuilder creates a fresh scene for an id
type SceneBuilder func(id config.SceneID, services systems.Services) Scene

// Game owns the current scene and implements the navigator and viewport
// handles the scenes are given.
type Game struct {
	audio systems.Audio
	build SceneBuilder

	scene   Scene
	current config.SceneID
	pending config.SceneID

	fadeOut   *gween.Tween
	fadeAlpha float64

	width, height  int
	overlayVisible bool
	quit           bool
}

func NewGame(audio systems.Audio, build SceneBuilder) *Game {
	return &Game{
		audio:          audio,
		build:          build,
		pending:        config.SceneTitle,
		width:          config.C.Width,
		height:         config.C.Height,
		overlayVisible: true,
	}
}

func (g *Game) services() systems.Services {
	return systems.Services{Audio: g.audio, Viewport: g, Navigator: g}
}

// SwitchTo replaces the scene on the next update. With animate the current
// scene fades to black first. Requests made during a fade are ignored.
func (g *Game) SwitchTo(id config.SceneID, animate bool) {
	if g.fadeOut != nil {
		return
	}
	g.pending = id
	if animate && !config.C.SkipFade && g.scene != nil {
		g.fadeOut = gween.New(0, 1, float32(config.Transition.FadeOutDuration), ease.Linear)
	}
}

// Quit ends the game loop after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Size() (int, int) {
	return g.width, g.height
}

func (g *Game) SetOverlayVisible(visible bool) {
	g.overlayVisible = visible
}

func (g *Game) OverlayVisible() bool {
	return g.overlayVisible
}

// Current returns the id of the active scene.
func (g *Game) Current() config.SceneID {
	return g.current
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if u, ok := g.audio.(interface{ Update() }); ok {
		u.Update()
	}

	if g.fadeOut != nil {
		alpha, done := g.fadeOut.Update(float32(systems.FrameDelta()))
		g.fadeAlpha = float64(alpha)
		if !done {
			return nil
		}
		g.fadeOut = nil
		g.fadeAlpha = 0
	}

	if g.pending != config.SceneNone {
		g.switchNow(g.pending)
	}
	g.scene.Update()

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) switchNow(id config.SceneID) {
	g.pending = config.SceneNone
	g.current = id
	g.scene = g.build(id, g.services())
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene == nil {
		return
	}
	g.scene.Draw(screen)

	if g.fadeAlpha > 0 {
		c := systems.WithAlpha(config.Transition.Color, systems.SpriteAlpha(g.fadeAlpha))
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
	}
}

// Layout zooms the window by an integer factor. When the logical size
// changes, the current scene is rebuilt for the new size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := layout.Logical(outsideWidth, outsideHeight, config.Zoom)
	if (w != g.width || h != g.height) && g.scene != nil && g.pending == config.SceneNone && g.fadeOut == nil {
		g.pending = g.current
	}
	g.width, g.height = w, h
	return w, h
}
