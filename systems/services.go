package systems

import cfg "github.com/automoto/pixeldungeon/config"

// Audio plays music and one-shot samples.
type Audio interface {
	PlayMusic(path string, loop bool)
	SetMusicVolume(volume float64)
	// PlaySample plays a sound once; pitch 1 is the recorded pitch.
	PlaySample(id cfg.SoundID, volume, pitch float64)
}

// Levels is implemented by audio backends with user volume settings. The
// level multiplies whatever volume a scene asks for. The preferences
// window uses it when the backend provides it.
type Levels interface {
	MusicLevel() float64
	SFXLevel() float64
	SetMusicLevel(level float64)
	SetSFXLevel(level float64)
}

// Viewport reports the logical screen size and controls the overlay layer.
type Viewport interface {
	Size() (w, h int)
	SetOverlayVisible(visible bool)
	OverlayVisible() bool
}

// Navigator switches between scenes.
type Navigator interface {
	// SwitchTo replaces the current scene. With animate the current scene
	// fades out first.
	SwitchTo(id cfg.SceneID, animate bool)
	Quit()
}

// Services bundles the engine handles a scene needs
type Services struct {
	Audio     Audio
	Viewport  Viewport
	Navigator Navigator
}
