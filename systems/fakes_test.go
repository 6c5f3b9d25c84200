package systems

import (
	"testing"

	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/fonts"
	"github.com/automoto/pixeldungeon/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type playedSample struct {
	id            cfg.SoundID
	volume, pitch float64
}

type fakeAudio struct {
	samples    []playedSample
	music      []string
	volumes    []float64
	musicLevel float64
	sfxLevel   float64
}

func (a *fakeAudio) PlayMusic(path string, loop bool) { a.music = append(a.music, path) }
func (a *fakeAudio) SetMusicVolume(v float64)         { a.volumes = append(a.volumes, v) }
func (a *fakeAudio) PlaySample(id cfg.SoundID, volume, pitch float64) {
	a.samples = append(a.samples, playedSample{id, volume, pitch})
}

func (a *fakeAudio) MusicLevel() float64         { return a.musicLevel }
func (a *fakeAudio) SFXLevel() float64           { return a.sfxLevel }
func (a *fakeAudio) SetMusicLevel(level float64) { a.musicLevel = level }
func (a *fakeAudio) SetSFXLevel(level float64)   { a.sfxLevel = level }

func (a *fakeAudio) count(id cfg.SoundID) int {
	n := 0
	for _, s := range a.samples {
		if s.id == id {
			n++
		}
	}
	return n
}

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	fonts.LoadDefaults()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 320, 240, 16, 16)
	return e
}

func stubWindow(t *testing.T) {
	t.Helper()
	fullscreen := false
	origIs, origSet, origSize := isFullscreen, setFullscreen, setWindowSize
	isFullscreen = func() bool { return fullscreen }
	setFullscreen = func(v bool) { fullscreen = v }
	setWindowSize = func(int, int) {}
	t.Cleanup(func() {
		isFullscreen, setFullscreen, setWindowSize = origIs, origSet, origSize
	})
}
