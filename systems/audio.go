package systems

import (
	"log"

	"github.com/automoto/pixeldungeon/assets"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type sampleRequest struct {
	id     cfg.SoundID
	volume float64
	pitch  float64
}

// AudioEngine plays music and samples through Ebitengine's audio package.
// It is created once and shared by every scene.
type AudioEngine struct {
	context *audio.Context
	loader  *assets.AudioLoader

	music    *audio.Player
	musicKey string
	gain     float64 // track volume requested by the scene

	musicLevel float64 // user settings
	sfxLevel   float64

	pending []sampleRequest
}

// NewAudioEngine creates the audio context. Ebitengine allows only one per process.
func NewAudioEngine() *AudioEngine {
	ctx := audio.NewContext(cfg.Audio.SampleRate)
	return &AudioEngine{
		context:    ctx,
		loader:     assets.NewAudioLoader(ctx),
		gain:       1,
		musicLevel: cfg.Audio.DefaultMusicVol,
		sfxLevel:   cfg.Audio.DefaultSFXVol,
		pending:    make([]sampleRequest, 0, 8),
	}
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func (a *AudioEngine) PreloadAllSFX() {
	for _, path := range cfg.Sound.SFXPaths {
		if err := a.loader.PreloadSFX(path); err != nil {
			log.Printf("Warning: Could not preload %s: %v", path, err)
		}
	}
}

// Update plays the samples queued since the last tick.
func (a *AudioEngine) Update() {
	for _, req := range a.pending {
		a.playSample(req)
	}
	a.pending = a.pending[:0]
}

func (a *AudioEngine) playSample(req sampleRequest) {
	volume := req.volume * a.sfxLevel
	if mult, ok := cfg.Sound.VolumeMultipliers[req.id]; ok {
		volume *= mult
	}
	if volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[req.id]
	if !ok {
		return
	}

	player, err := a.loader.LoadSFX(path, req.pitch)
	if err != nil {
		log.Printf("Warning: Could not play %s: %v", path, err)
		return
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySample queues a sample for the next Update.
func (a *AudioEngine) PlaySample(id cfg.SoundID, volume, pitch float64) {
	a.pending = append(a.pending, sampleRequest{id: id, volume: volume, pitch: pitch})
}

// PlayMusic starts a track. Asking for the track that is already playing
// keeps it running.
func (a *AudioEngine) PlayMusic(path string, loop bool) {
	if a.musicKey == path && a.music != nil {
		return
	}
	a.StopMusic()

	player, err := a.loader.LoadMusic(path, loop)
	if err != nil {
		log.Printf("Warning: Could not play music %s: %v", path, err)
		return
	}

	a.music = player
	a.musicKey = path
	a.applyMusicVolume()
	player.Play()
}

// SetMusicVolume sets the track volume; the user's music level still applies.
func (a *AudioEngine) SetMusicVolume(volume float64) {
	a.gain = volume
	a.applyMusicVolume()
}

func (a *AudioEngine) applyMusicVolume() {
	if a.music != nil {
		a.music.SetVolume(a.gain * a.musicLevel)
	}
}

// StopMusic immediately stops the current music
func (a *AudioEngine) StopMusic() {
	if a.music != nil {
		_ = a.music.Close()
		a.music = nil
		a.musicKey = ""
	}
}

func (a *AudioEngine) MusicLevel() float64 { return a.musicLevel }
func (a *AudioEngine) SFXLevel() float64   { return a.sfxLevel }

func (a *AudioEngine) SetMusicLevel(level float64) {
	a.musicLevel = level
	a.applyMusicVolume()
}

func (a *AudioEngine) SetSFXLevel(level float64) {
	a.sfxLevel = level
}
