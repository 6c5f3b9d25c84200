package animations

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation steps through the frames of a horizontal strip, one frame
// every SpeedInTps ticks, looping forever.
type Animation struct {
	Frames       []*ebiten.Image
	SpeedInTps   float32 // ticks per frame
	frameCounter float32
	frame        int
	Loops        int // completed passes through the strip
}

func (a *Animation) Update() {
	if len(a.Frames) == 0 {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame++
		if a.frame >= len(a.Frames) {
			a.frame = 0
			a.Loops++
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Image returns the current frame, or nil for an empty strip.
func (a *Animation) Image() *ebiten.Image {
	if len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.frame]
}

// Restart rewinds to the given frame, wrapped into the strip.
func (a *Animation) Restart(frame int) {
	if n := len(a.Frames); n > 0 {
		a.frame = ((frame % n) + n) % n
	}
	a.frameCounter = a.SpeedInTps
}

func NewAnimation(strip *ebiten.Image, frameWidth int, speed float32) *Animation {
	return &Animation{
		Frames:       SliceStrip(strip, frameWidth),
		SpeedInTps:   speed,
		frameCounter: speed,
	}
}

// SliceStrip cuts a horizontal strip into frames of frameWidth. A strip
// narrower than one frame yields a single frame of the whole image.
func SliceStrip(strip *ebiten.Image, frameWidth int) []*ebiten.Image {
	b := strip.Bounds()
	if frameWidth <= 0 || b.Dx() < frameWidth {
		return []*ebiten.Image{strip}
	}
	n := b.Dx() / frameWidth
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		x := b.Min.X + i*frameWidth
		frames[i] = strip.SubImage(image.Rect(x, b.Min.Y, x+frameWidth, b.Max.Y)).(*ebiten.Image)
	}
	return frames
}
