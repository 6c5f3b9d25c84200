// Package layout computes screen positions for the title screen.
//
// Everything here is a pure function of the viewport and content sizes so the
// arrangement can be checked without a running game.
package layout

import (
	"math"

	cfg "github.com/automoto/pixeldungeon/config"
)

// Point is a position in logical units
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in logical units
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Contains reports whether (x, y) lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Orientation of the viewport
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// OrientationOf returns Landscape when the viewport is wider than tall.
func OrientationOf(w, h float64) Orientation {
	if w > h {
		return Landscape
	}
	return Portrait
}

// Rows is the number of dashboard rows below the banner.
func (o Orientation) Rows() int {
	if o == Landscape {
		return 1
	}
	return 2
}

// Columns is the number of dashboard buttons per row.
func (o Orientation) Columns() int {
	if o == Landscape {
		return 4
	}
	return 2
}

// TitleInput is what the title layout needs to know about its content
type TitleInput struct {
	ViewW, ViewH     float64
	BannerW, BannerH float64
	VersionW         float64
	VersionH         float64
	Unit             float64 // dashboard button side
	Corner           float64 // preferences / exit button side
	TorchOffsetX     float64
	TorchOffsetY     float64
}

// NewTitleInput fills the fixed sizes from the title config.
func NewTitleInput(viewW, viewH, bannerW, bannerH, versionW, versionH float64) TitleInput {
	return TitleInput{
		ViewW:        viewW,
		ViewH:        viewH,
		BannerW:      bannerW,
		BannerH:      bannerH,
		VersionW:     versionW,
		VersionH:     versionH,
		Unit:         cfg.Title.UnitSize,
		Corner:       cfg.Title.CornerButtonSize,
		TorchOffsetX: cfg.Title.TorchOffsetX,
		TorchOffsetY: cfg.Title.TorchOffsetY,
	}
}

// TitlePlan is the resolved arrangement of the title screen
type TitlePlan struct {
	Orientation Orientation
	// Scale is applied to every node; it drops below 1 only when the
	// composition would not otherwise fit the viewport.
	Scale   float64
	Unit    float64 // scaled dashboard button side
	Banner  Rect
	Torches [2]Point
	Buttons map[cfg.SceneID]Rect
	Prefs   Rect
	Exit    Rect
	Version Rect
}

// Title lays out the title screen for the given viewport.
func Title(in TitleInput) TitlePlan {
	o := OrientationOf(in.ViewW, in.ViewH)
	s := fitScale(in, o)
	w, h := in.ViewW, in.ViewH

	unit := in.Unit * s
	bannerW, bannerH := in.BannerW*s, in.BannerH*s

	// The banner and the dashboard rows form one block centred on screen.
	blockH := bannerH + float64(o.Rows())*unit
	banner := Rect{
		X: clamp((w-bannerW)/2, 0, w),
		Y: clamp((h-blockH)/2, 0, h),
		W: bannerW,
		H: bannerH,
	}

	plan := TitlePlan{
		Orientation: o,
		Scale:       s,
		Unit:        unit,
		Banner:      banner,
		Torches: [2]Point{
			{X: banner.X + in.TorchOffsetX*s, Y: banner.Y + in.TorchOffsetY*s},
			{X: banner.Right() - in.TorchOffsetX*s, Y: banner.Y + in.TorchOffsetY*s},
		},
		Buttons: dashboard(o, w, h, blockH, unit),
	}

	corner := in.Corner * s
	plan.Prefs = Rect{X: 0, Y: 0, W: corner, H: corner}
	plan.Exit = Rect{X: clamp(w-corner, 0, w), Y: 0, W: corner, H: corner}

	vw, vh := in.VersionW*s, in.VersionH*s
	plan.Version = Rect{X: clamp(w-vw, 0, w), Y: clamp(h-vh, 0, h), W: vw, H: vh}

	return plan
}

// dashboard places the four navigation buttons. bottom is the top edge of
// the row directly beneath the banner's block.
func dashboard(o Orientation, w, h, blockH, unit float64) map[cfg.SceneID]Rect {
	cx := w / 2
	bottom := (h+blockH)/2 - unit
	at := func(x, y float64) Rect { return Rect{X: x, Y: y, W: unit, H: unit} }

	if o == Landscape {
		highScores := at(cx-unit, bottom)
		badges := at(cx, bottom)
		return map[cfg.SceneID]Rect{
			cfg.SceneRankings: highScores,
			cfg.SceneBadges:   badges,
			cfg.SceneStart:    at(highScores.X-unit, bottom),
			cfg.SceneAbout:    at(badges.Right(), bottom),
		}
	}

	badges := at(cx-unit, bottom)
	about := at(cx, bottom)
	play := at(cx-unit, about.Y-unit)
	return map[cfg.SceneID]Rect{
		cfg.SceneBadges:   badges,
		cfg.SceneAbout:    about,
		cfg.SceneStart:    play,
		cfg.SceneRankings: at(cx, play.Y),
	}
}

// fitScale returns the largest scale <= 1 at which the composition fits.
func fitScale(in TitleInput, o Orientation) float64 {
	contentW := math.Max(in.BannerW, float64(o.Columns())*in.Unit)
	contentW = math.Max(contentW, 2*in.Corner)
	contentW = math.Max(contentW, in.VersionW)
	contentH := in.BannerH + float64(o.Rows())*in.Unit
	contentH = math.Max(contentH, in.Corner)
	contentH = math.Max(contentH, in.VersionH)

	s := 1.0
	if contentW > 0 {
		s = math.Min(s, in.ViewW/contentW)
	}
	if contentH > 0 {
		s = math.Min(s, in.ViewH/contentH)
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
