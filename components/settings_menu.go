package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the preferences window
type SettingsMenuOption int

const (
	SettingsOptMusicVolume SettingsMenuOption = iota
	SettingsOptSFXVolume
	SettingsOptMute
	SettingsOptFullscreen
	SettingsOptResolution
	SettingsOptBack
)

// SettingsMenuData stores the current state of the preferences window
type SettingsMenuData struct {
	IsOpen         bool
	SelectedOption SettingsMenuOption
	// JustOpened skips input on the frame the window opens so the press
	// that opened it is not handled twice.
	JustOpened bool

	// Current settings values
	MusicVolume     float64 // 0.0, 0.25, 0.50, 0.75, 1.0
	SFXVolume       float64
	Muted           bool
	Fullscreen      bool
	ResolutionIndex int

	// Row boxes from the last draw, used for pointer selection
	Rows map[SettingsMenuOption][4]float64
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
