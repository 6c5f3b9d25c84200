package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

var (
	gdataManager *gdata.Manager
	// loadedSettings seeds the preferences window of every scene.
	loadedSettings *SavedSettings
)

// InitPersistence opens the per-user data directory for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.Prefs.Resolutions) {
		settings.ResolutionIndex = cfg.Prefs.DefaultResolution
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	loadedSettings = s
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the values shown in the preferences window
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		MusicVolume:     s.MusicVolume,
		SFXVolume:       s.SFXVolume,
		Muted:           s.Muted,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	}
	if err := SaveSettings(saved); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettings applies loaded settings at startup, before any scene exists
func ApplySavedSettings(saved *SavedSettings, levels Levels) {
	if saved == nil {
		return
	}
	loadedSettings = saved

	if levels != nil {
		if saved.Muted {
			levels.SetMusicLevel(0)
			levels.SetSFXLevel(0)
		} else {
			levels.SetMusicLevel(saved.MusicVolume)
			levels.SetSFXLevel(saved.SFXVolume)
		}
	}

	setFullscreen(saved.Fullscreen)

	if !saved.Fullscreen {
		res := cfg.Prefs.Resolutions[saved.ResolutionIndex]
		setWindowSize(res.Width, res.Height)
	}
}
