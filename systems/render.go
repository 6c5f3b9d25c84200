package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/pixeldungeon/components"
	"github.com/automoto/pixeldungeon/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp    = &ebiten.DrawImageOptions{}
	drawQueue []*donburi.Entry
)

// DrawNodes renders every node in Z order. Sprites choose their
// blend per draw call so an additive node never affects the next one.
func DrawNodes(e *ecs.ECS, screen *ebiten.Image) {
	drawQueue = drawQueue[:0]
	components.Node.Each(e.World, func(entry *donburi.Entry) {
		drawQueue = append(drawQueue, entry)
	})
	sort.SliceStable(drawQueue, func(i, j int) bool {
		return components.Node.Get(drawQueue[i]).Z < components.Node.Get(drawQueue[j]).Z
	})

	for _, entry := range drawQueue {
		n := components.Node.Get(entry)
		switch {
		case entry.HasComponent(components.Archs):
			drawArchs(screen, n, components.Sprite.Get(entry), components.Archs.Get(entry))
		case entry.HasComponent(components.Sprite):
			drawSprite(screen, n, components.Sprite.Get(entry))
		case entry.HasComponent(components.Label):
			drawLabel(screen, n, components.Label.Get(entry))
		}
	}
}

// SpriteAlpha clamps a sprite's alpha into the drawable range.
func SpriteAlpha(a float64) float64 {
	switch {
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}

func blendFor(mode components.BlendMode) ebiten.Blend {
	if mode == components.BlendAdditive {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

func prepareSprite(s *components.SpriteData) bool {
	alpha := SpriteAlpha(s.Alpha)
	if s.Image == nil || alpha == 0 {
		return false
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.Scale(float32(s.Brightness), float32(s.Brightness), float32(s.Brightness), 1)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	drawOp.Blend = blendFor(s.Blend)
	return true
}

func drawSprite(screen *ebiten.Image, n *components.NodeData, s *components.SpriteData) {
	if !prepareSprite(s) {
		return
	}
	drawOp.GeoM.Scale(n.Scale, n.Scale)
	drawOp.GeoM.Translate(n.X, n.Y)
	screen.DrawImage(s.Image, drawOp)
}

// drawArchs tiles the layer over the node's box, shifted down by the offset.
func drawArchs(screen *ebiten.Image, n *components.NodeData, s *components.SpriteData, a *components.ArchsData) {
	if !prepareSprite(s) {
		return
	}
	tw := float64(s.Image.Bounds().Dx())
	th := float64(s.Image.Bounds().Dy())
	if tw <= 0 || th <= 0 {
		return
	}

	for y := n.Y + a.Offset - th; y < n.Y+n.H; y += th {
		for x := n.X; x < n.X+n.W; x += tw {
			drawOp.GeoM.Reset()
			drawOp.GeoM.Translate(x, y)
			screen.DrawImage(s.Image, drawOp)
		}
	}
}

func drawLabel(screen *ebiten.Image, n *components.NodeData, l *components.LabelData) {
	if l.Text == "" {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Blend = ebiten.BlendSourceOver

	// Text is drawn from its baseline.
	drawOp.GeoM.Translate(0, fonts.Ascent(l.Font))
	drawOp.GeoM.Scale(n.Scale, n.Scale)
	drawOp.GeoM.Translate(n.X, n.Y)
	drawOp.ColorScale.ScaleWithColor(l.Color)
	text.DrawWithOptions(screen, l.Text, l.Font.Get(), drawOp)
}

// DrawFaders covers the screen with every active fader.
func DrawFaders(e *ecs.ECS, screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	components.Fader.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fader.Get(entry)
		alpha := SpriteAlpha(f.Alpha)
		if alpha == 0 {
			return
		}
		vector.FillRect(screen, 0, 0, w, h, WithAlpha(f.Color, alpha), false)
	})
}

// WithAlpha returns c at the given opacity, premultiplied.
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
