package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // decoded PCM per path
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// stream is what both decoders return
type stream interface {
	io.ReadSeeker
	Length() int64
}

func (l *AudioLoader) decode(path string) (stream, error) {
	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported audio format: %s", ext)
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	s, err := l.decode(path)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(s)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player for a cached sound effect. A pitch other
// than 1 resamples the sound; below 1 it plays lower and longer.
func (l *AudioLoader) LoadSFX(path string, pitch float64) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	decoded := l.sfxCache[path]

	var src io.ReadSeeker = bytes.NewReader(decoded)
	if pitch > 0 && pitch != 1 {
		rate := l.context.SampleRate()
		src = audio.Resample(src, int64(len(decoded)), rate, int(float64(rate)/pitch))
	}
	return l.context.NewPlayer(src)
}

// LoadMusic returns a streaming player for music. Music is not cached.
func (l *AudioLoader) LoadMusic(path string, loop bool) (*audio.Player, error) {
	s, err := l.decode(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load music: %w", err)
	}

	if !loop {
		return l.context.NewPlayer(s)
	}
	return l.context.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
}
