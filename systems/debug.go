package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pixeldungeon/components"
	"github.com/automoto/pixeldungeon/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var hitAreaColor = color.RGBA{0, 255, 255, 255}

// DrawDebug draws the frame rate and every pointer hit area. It lives on
// the overlay layer, so scenes that hide the overlay never show it.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(entry).Enabled {
		return
	}

	msg := fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	text.Draw(screen, msg, fonts.Small.Get(), 2, screen.Bounds().Dy()-4, hitAreaColor)

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, hitAreaColor, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, hitAreaColor, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, hitAreaColor, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, hitAreaColor, false) // Right
	}
}

// EnableDebug turns the overlay on for this scene's world.
func EnableDebug(e *ecs.ECS, enabled bool) {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
	}
	components.Debug.Get(entry).Enabled = enabled
}
