package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config contains window and build-level settings
type Config struct {
	Width    int
	Height   int
	Version  string
	Debug    bool // Draw the FPS overlay on scenes that keep it visible
	SkipFade bool // Skip the fade-in on scene activation
}

// TitleConfig contains title screen layout and animation values.
// All sizes are in logical units.
type TitleConfig struct {
	// Dashboard buttons
	UnitSize          float64 // Side of a dashboard button
	IconSize          int     // Side of one icon in the dashboard sheet
	IconCount         int     // Icons in the dashboard sheet
	LabelGap          float64 // Gap between icon and label
	PressedBrightness float64 // Icon color multiplier while pressed
	CornerButtonSize  float64 // Preferences / exit buttons

	// Click feedback
	ClickVolume float64
	ClickPitch  float64

	// Torches, relative to the banner's left/right edge
	TorchOffsetX      float64
	TorchOffsetY      float64
	TorchFlickerSpeed float64 // radians per second
	TorchFrameWidth   int     // width of one flame frame in the strip
	TorchFrameTicks   float32 // ticks per flame frame
	EmberInterval     float64 // seconds between embers
	EmberLifetime     float64 // seconds
	EmberRiseSpeed    float64 // units per second
	EmberDrift        float64 // max horizontal units per second

	// Background arch layers, units per second
	ArchsBackSpeed  float64
	ArchsFrontSpeed float64

	FadeDuration float64 // seconds

	LabelColor   color.RGBA
	VersionColor color.RGBA
}

// ZoomConfig holds the minimum logical viewport per orientation.
// The window is zoomed by the largest integer factor that keeps these minimums.
type ZoomConfig struct {
	MinWidthPortrait   int
	MinHeightPortrait  int
	MinWidthLandscape  int
	MinHeightLandscape int
}

// TransitionConfig contains scene switch values
type TransitionConfig struct {
	FadeOutDuration float64 // seconds
	Color           color.RGBA
}

// PrefsConfig contains preferences window configuration values
type PrefsConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ItemHeight        float64
	ItemGap           float64
	LabelOffsetX      float64 // from screen center, negative = left
	ValueOffsetX      float64

	Resolutions       []Resolution
	DefaultResolution int       // index into Resolutions
	VolumeSteps       []float64 // levels the volume rows step through
}

// Resolution is a window size offered by the preferences window
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// Render layers. The overlay layer is screen-space and can be hidden per scene.
const (
	LayerScene ecs.LayerID = iota
	LayerOverlay
)

var C *Config
var Title TitleConfig
var Zoom ZoomConfig
var Transition TransitionConfig
var Prefs PrefsConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey         = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 255}
	Gold         = color.RGBA{R: 255, G: 255, B: 68, A: 255}
	DarkPanel    = color.RGBA{R: 20, G: 16, B: 14, A: 235}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:   480,
		Height:  320,
		Version: "1.9.2a",
	}

	Title = TitleConfig{
		UnitSize:          48,
		IconSize:          32,
		IconCount:         4,
		LabelGap:          2,
		PressedBrightness: 1.5,
		CornerButtonSize:  20,

		ClickVolume: 1,
		ClickPitch:  0.8,

		TorchOffsetX:      18,
		TorchOffsetY:      20,
		TorchFlickerSpeed: 9,
		TorchFrameWidth:   16,
		TorchFrameTicks:   5,
		EmberInterval:     0.08,
		EmberLifetime:     0.6,
		EmberRiseSpeed:    24,
		EmberDrift:        4,

		ArchsBackSpeed:  8,
		ArchsFrontSpeed: 20,

		FadeDuration: 1.0,

		LabelColor:   White,
		VersionColor: Grey,
	}

	Zoom = ZoomConfig{
		MinWidthPortrait:   128,
		MinHeightPortrait:  224,
		MinWidthLandscape:  224,
		MinHeightLandscape: 160,
	}

	Transition = TransitionConfig{
		FadeOutDuration: 0.3,
		Color:           Black,
	}

	Prefs = PrefsConfig{
		BackgroundColor:   DarkPanel,
		TitleColor:        Gold,
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		TitleY:            28,
		ItemHeight:        16,
		ItemGap:           6,
		LabelOffsetX:      -90,
		ValueOffsetX:      10,

		Resolutions: []Resolution{
			{Width: 960, Height: 640, Label: "960 x 640"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 720, Height: 1280, Label: "720 x 1280"},
		},
		DefaultResolution: 0,
		VolumeSteps:       []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
