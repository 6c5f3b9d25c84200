package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// Window state hooks, replaced in tests.
var (
	isFullscreen  = ebiten.IsFullscreen
	setFullscreen = ebiten.SetFullscreen
	setWindowSize = ebiten.SetWindowSize
)

// NewUpdateSettingsMenu returns the system that drives the preferences window.
func NewUpdateSettingsMenu(audio Audio) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		settings := GetOrCreateSettingsMenu(e, audio)
		if !settings.IsOpen {
			return
		}
		if settings.JustOpened {
			settings.JustOpened = false
			return
		}

		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			navigateUp(settings)
			playMenuSound(audio)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			navigateDown(settings)
			playMenuSound(audio)
		}
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			adjustValue(settings, audio, -1)
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			adjustValue(settings, audio, +1)
		}
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			handleSelect(settings, audio)
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionPrefs).JustPressed {
			closeSettings(settings, audio)
			return
		}

		for _, ev := range GetOrCreatePointer(e).Events {
			if ev.Kind != components.PointerUp {
				continue
			}
			if opt, ok := settingsRowAt(settings, ev.X, ev.Y); ok {
				settings.SelectedOption = opt
				handleClick(settings, audio)
			}
			if !settings.IsOpen {
				return
			}
		}
	}
}

func playMenuSound(audio Audio) {
	if audio != nil {
		audio.PlaySample(cfg.SoundMenuNavigate, 1, 1)
	}
}

func playSelectSound(audio Audio) {
	if audio != nil {
		audio.PlaySample(cfg.SoundClick, 1, 1)
	}
}

// navigateUp moves selection up, skipping hidden options
func navigateUp(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// navigateDown moves selection down, skipping hidden options
func navigateDown(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + 1) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// isOptionHidden returns true if the option should be hidden
func isOptionHidden(s *components.SettingsMenuData, opt components.SettingsMenuOption) bool {
	// Hide resolution when fullscreen is enabled
	return opt == components.SettingsOptResolution && s.Fullscreen
}

// adjustValue changes the value for the selected option
func adjustValue(s *components.SettingsMenuData, audio Audio, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = adjustVolumeStep(s.MusicVolume, direction)
		applyLevels(s, audio)
		playMenuSound(audio)

	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		applyLevels(s, audio)
		// Preview at the new level
		playSelectSound(audio)

	case components.SettingsOptMute:
		toggleMute(s, audio)
		playSelectSound(audio)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		playSelectSound(audio)

	case components.SettingsOptResolution:
		cycleResolution(s, direction)
		playMenuSound(audio)
	}
}

// handleClick is what a pointer tap on a row does. Volumes step up and
// wrap around to silent after the loudest step.
func handleClick(s *components.SettingsMenuData, audio Audio) {
	switch s.SelectedOption {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = cycleVolumeStep(s.MusicVolume)
		applyLevels(s, audio)
		playMenuSound(audio)
	case components.SettingsOptSFXVolume:
		s.SFXVolume = cycleVolumeStep(s.SFXVolume)
		applyLevels(s, audio)
		playSelectSound(audio)
	case components.SettingsOptResolution:
		cycleResolution(s, +1)
		playMenuSound(audio)
	default:
		handleSelect(s, audio)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.Prefs.VolumeSteps
	newIdx := findClosestStepIndex(current, steps) + direction
	newIdx = max(newIdx, 0)
	newIdx = min(newIdx, len(steps)-1)
	return steps[newIdx]
}

func cycleVolumeStep(current float64) float64 {
	steps := cfg.Prefs.VolumeSteps
	return steps[(findClosestStepIndex(current, steps)+1)%len(steps)]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// applyLevels pushes the menu's volumes to the audio backend, honouring mute.
func applyLevels(s *components.SettingsMenuData, audio Audio) {
	levels, ok := audio.(Levels)
	if !ok {
		return
	}
	if s.Muted {
		levels.SetMusicLevel(0)
		levels.SetSFXLevel(0)
		return
	}
	levels.SetMusicLevel(s.MusicVolume)
	levels.SetSFXLevel(s.SFXVolume)
}

func toggleMute(s *components.SettingsMenuData, audio Audio) {
	s.Muted = !s.Muted
	applyLevels(s, audio)
}

func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	setFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available resolutions
func cycleResolution(s *components.SettingsMenuData, direction int) {
	numResolutions := len(cfg.Prefs.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	res := cfg.Prefs.Resolutions[s.ResolutionIndex]
	setWindowSize(res.Width, res.Height)
}

// handleSelect handles the select/enter action
func handleSelect(s *components.SettingsMenuData, audio Audio) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(s, audio)
		playSelectSound(audio)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		playSelectSound(audio)

	case components.SettingsOptBack:
		closeSettings(s, audio)
	}
}

// closeSettings closes the preferences window and saves settings
func closeSettings(s *components.SettingsMenuData, audio Audio) {
	s.IsOpen = false
	playSelectSound(audio)
	SaveCurrentSettings(s)
}

func settingsRowAt(s *components.SettingsMenuData, x, y float64) (components.SettingsMenuOption, bool) {
	for opt, r := range s.Rows {
		if x >= r[0] && x < r[0]+r[2] && y >= r[1] && y < r[1]+r[3] {
			return opt, true
		}
	}
	return 0, false
}

// DrawSettingsMenu renders the preferences window and records each row's box
// for pointer selection.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		return
	}
	settings := components.SettingsMenu.Get(entry)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Prefs.BackgroundColor, false)

	title := "SETTINGS"
	titleW, _ := fonts.Measure(fonts.Title, title)
	text.Draw(screen, title, fonts.Title.Get(), int((width-titleW)/2), int(cfg.Prefs.TitleY), cfg.Prefs.TitleColor)

	visibleCount := 0
	for opt := components.SettingsOptMusicVolume; opt <= components.SettingsOptBack; opt++ {
		if !isOptionHidden(settings, opt) {
			visibleCount++
		}
	}

	rowH := cfg.Prefs.ItemHeight
	step := rowH + cfg.Prefs.ItemGap
	startY := (height-float64(visibleCount)*step)/2 + cfg.Prefs.ItemGap
	labelX := width/2 + cfg.Prefs.LabelOffsetX
	valueX := width/2 + cfg.Prefs.ValueOffsetX
	fontFace := fonts.Regular.Get()
	ascent := fonts.Ascent(fonts.Regular)

	if settings.Rows == nil {
		settings.Rows = make(map[components.SettingsMenuOption][4]float64)
	}
	clear(settings.Rows)

	row := 0
	for opt := components.SettingsOptMusicVolume; opt <= components.SettingsOptBack; opt++ {
		if isOptionHidden(settings, opt) {
			continue
		}
		y := startY + float64(row)*step
		settings.Rows[opt] = [4]float64{labelX, y, 2 * (width/2 - labelX), rowH}

		textColor := cfg.Prefs.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Prefs.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)
		baseline := int(y + ascent)
		text.Draw(screen, label, fontFace, int(labelX), baseline, textColor)
		if value != "" {
			text.Draw(screen, value, fontFace, int(valueX), baseline, textColor)
		}
		row++
	}

	hint := getSettingsHint(getOrCreateInput(e).LastInputMethod)
	hintW, _ := fonts.Measure(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small.Get(), int((width-hintW)/2), int(height)-6, cfg.Prefs.TextColorNormal)
}

// getSettingsHint returns the appropriate hint for the preferences window
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputGamepad:
		return "D-Pad: Navigate  Left/Right: Change  A: Select  B: Back"
	case components.InputPointer:
		return "Tap a row to change it"
	}
	return "Arrows: Navigate  Left/Right: Change  Enter: Select  Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptMusicVolume:
		return "Music", formatVolumeBar(s.MusicVolume)
	case components.SettingsOptSFXVolume:
		return "Sound FX", formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return "Mute", formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptResolution:
		if s.ResolutionIndex < len(cfg.Prefs.Resolutions) {
			return "Resolution", cfg.Prefs.Resolutions[s.ResolutionIndex].Label
		}
		return "Resolution", "Unknown"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := int(volume*10 + 0.5)
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100+0.5))
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS, audio Audio) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		musicVol, sfxVol := cfg.Audio.DefaultMusicVol, cfg.Audio.DefaultSFXVol
		if levels, ok := audio.(Levels); ok {
			musicVol, sfxVol = levels.MusicLevel(), levels.SFXLevel()
		}

		data := components.SettingsMenuData{
			SelectedOption:  components.SettingsOptMusicVolume,
			MusicVolume:     musicVol,
			SFXVolume:       sfxVol,
			ResolutionIndex: cfg.Prefs.DefaultResolution,
		}
		if saved := loadedSettings; saved != nil {
			data.MusicVolume = saved.MusicVolume
			data.SFXVolume = saved.SFXVolume
			data.Muted = saved.Muted
			data.ResolutionIndex = saved.ResolutionIndex
		}
		components.SettingsMenu.SetValue(ent, data)
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the preferences window
func OpenSettings(e *ecs.ECS, audio Audio) {
	settings := GetOrCreateSettingsMenu(e, audio)
	settings.IsOpen = true
	settings.JustOpened = true
	settings.SelectedOption = components.SettingsOptMusicVolume
	settings.Fullscreen = isFullscreen()
}

// IsSettingsOpen returns true if the preferences window is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	entry, ok := components.SettingsMenu.First(e.World)
	return ok && components.SettingsMenu.Get(entry).IsOpen
}
