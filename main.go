package main

import (
	"log"

	"github.com/automoto/pixeldungeon/assets"
	"github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/fonts"
	"github.com/automoto/pixeldungeon/scenes"
	"github.com/automoto/pixeldungeon/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := config.LoadRuntime(""); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	fonts.LoadDefaults()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Pixel Dungeon")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	engine := systems.NewAudioEngine()
	engine.PreloadAllSFX()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("pixeldungeon"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}
	systems.ApplySavedSettings(saved, engine)

	art := assets.MustLoadTitleArt()
	game := NewGame(engine, func(id config.SceneID, services systems.Services) Scene {
		if id == config.SceneTitle {
			return scenes.NewTitleScene(services, art)
		}
		return scenes.NewInfoScene(id, services)
	})

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
