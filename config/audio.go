package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundClick
	SoundMenuNavigate
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	ThemeMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		ThemeMusic: "audio/music/theme.wav",
		SFXPaths: map[SoundID]string{
			SoundClick:        "audio/sfx/click.wav",
			SoundMenuNavigate: "audio/sfx/click.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMenuNavigate: 0.5,
		},
	}
}
