package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/pixeldungeon/archetypes"
	"github.com/automoto/pixeldungeon/assets/animations"
	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/fonts"
	"github.com/automoto/pixeldungeon/layout"
	"github.com/automoto/pixeldungeon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Draw order of the title screen nodes
const (
	ZArchsBack = iota * 10
	ZArchsFront
	ZBanner
	ZPulse
	ZTorch
	ZEmber
	ZButton
	ZLabel
	ZVersion
)

func node(x, y, w, h, scale float64, z int) components.NodeData {
	return components.NodeData{X: x, Y: y, W: w, H: h, Scale: scale, Z: z}
}

func imageSize(img *ebiten.Image) (float64, float64) {
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// CreateArchs creates one scrolling background layer covering the viewport.
func CreateArchs(ecs *ecs.ECS, img *ebiten.Image, w, h, speed float64, z int) *donburi.Entry {
	archs := archetypes.Archs.Spawn(ecs)
	components.Node.SetValue(archs, node(0, 0, w, h, 1, z))
	components.Sprite.SetValue(archs, components.NewSprite(img))
	components.Archs.SetValue(archs, components.ArchsData{Speed: speed})
	return archs
}

func CreateBanner(ecs *ecs.ECS, img *ebiten.Image, r layout.Rect, scale float64) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)
	w, h := imageSize(img)
	components.Node.SetValue(banner, node(r.X, r.Y, w, h, scale, ZBanner))
	components.Sprite.SetValue(banner, components.NewSprite(img))
	return banner
}

// CreatePulseOverlay creates the additive glow over the banner. Its alpha
// starts at sin(0) = 0 and is driven by the pulse system.
func CreatePulseOverlay(ecs *ecs.ECS, img *ebiten.Image, r layout.Rect, scale float64) *donburi.Entry {
	pulse := archetypes.PulseOverlay.Spawn(ecs)
	w, h := imageSize(img)
	components.Node.SetValue(pulse, node(r.X, r.Y, w, h, scale, ZPulse))

	sprite := components.NewSprite(img)
	sprite.Alpha = 0
	sprite.Blend = components.BlendAdditive
	components.Sprite.SetValue(pulse, sprite)
	return pulse
}

// CreateTorch creates a flickering flame centred on p. The flame strip is
// cut into frames; seed picks the starting frame and the ember drift.
func CreateTorch(ecs *ecs.ECS, strip, ember *ebiten.Image, p layout.Point, scale float64, seed int64) *donburi.Entry {
	torch := archetypes.Torch.Spawn(ecs)
	anim := animations.NewAnimation(strip, cfg.Title.TorchFrameWidth, cfg.Title.TorchFrameTicks)
	anim.Restart(int(seed))
	components.Animation.SetValue(torch, components.AnimationData{CurrentAnimation: anim})

	w, h := imageSize(anim.Image())
	components.Node.SetValue(torch, node(p.X-w*scale/2, p.Y-h*scale/2, w, h, scale, ZTorch))

	sprite := components.NewSprite(anim.Image())
	sprite.Blend = components.BlendAdditive
	components.Sprite.SetValue(torch, sprite)

	components.Torch.SetValue(torch, components.TorchData{
		Rand:  rand.New(rand.NewSource(seed)),
		Ember: ember,
	})
	return torch
}

// CreateEmber creates a spark at (x, y) that moves at (vx, vy) and fades out
// over lifetime seconds.
func CreateEmber(ecs *ecs.ECS, img *ebiten.Image, x, y, scale, vx, vy, lifetime float64) *donburi.Entry {
	ember := archetypes.Ember.Spawn(ecs)
	w, h := imageSize(img)
	components.Node.SetValue(ember, node(x, y, w, h, scale, ZEmber))

	sprite := components.NewSprite(img)
	sprite.Blend = components.BlendAdditive
	components.Sprite.SetValue(ember, sprite)

	components.Ember.SetValue(ember, components.EmberData{
		VX:   vx,
		VY:   vy,
		Fade: gween.New(1, 0, float32(lifetime), ease.OutQuad),
	})
	return ember
}

// CreateDashboardButton creates a navigation button in box. The icon is cut
// from sheet by item.Icon; an index outside the sheet is an error.
func CreateDashboardButton(ecs *ecs.ECS, sheet *ebiten.Image, item cfg.DashboardItem, box layout.Rect, scale float64, onClick func()) (*donburi.Entry, error) {
	size := cfg.Title.IconSize
	if !layout.IconFits(item.Icon, size, sheet.Bounds().Dx()) {
		return nil, fmt.Errorf("dashboard button %q: icon %d is outside a sheet %d wide", item.Label, item.Icon, sheet.Bounds().Dx())
	}

	cellRect := layout.IconRect(item.Icon, size).Add(sheet.Bounds().Min)
	iconImg := sheet.SubImage(cellRect).(*ebiten.Image)

	labelW, labelH := fonts.Measure(fonts.Label, item.Label)
	iconSide := float64(size)
	placed := layout.DashboardItem(box, iconSide*scale, iconSide*scale, labelW*scale, cfg.Title.LabelGap*scale)

	icon := archetypes.Icon.Spawn(ecs)
	components.Node.SetValue(icon, node(placed.Icon.X, placed.Icon.Y, iconSide, iconSide, scale, ZButton))
	components.Sprite.SetValue(icon, components.NewSprite(iconImg))

	label := archetypes.Label.Spawn(ecs)
	components.Node.SetValue(label, node(placed.Label.X, placed.Label.Y, labelW, labelH, scale, ZLabel))
	components.Label.SetValue(label, components.LabelData{
		Text:  item.Label,
		Font:  fonts.Label,
		Color: cfg.Title.LabelColor,
	})

	button := archetypes.DashboardButton.Spawn(ecs)
	components.Node.SetValue(button, node(box.X, box.Y, box.W/scale, box.H/scale, scale, ZButton))
	components.Button.SetValue(button, components.ButtonData{
		Icon:    icon,
		OnClick: onClick,
	})
	components.Dashboard.SetValue(button, components.DashboardData{
		Label:  item.Label,
		Icon:   item.Icon,
		Target: item.Target,
		Text:   label,
	})
	addHitArea(ecs, button, box)

	return button, nil
}

// CreateCornerButton creates the preferences or exit button. The icon is
// centred in r and the button is its own icon.
func CreateCornerButton(ecs *ecs.ECS, img *ebiten.Image, r layout.Rect, scale float64, tag donburi.IComponentType, onClick func()) *donburi.Entry {
	button := archetypes.CornerButton.Spawn(ecs, tag)
	w, h := imageSize(img)
	x := layout.Align(r.X + (r.W-w*scale)/2)
	y := layout.Align(r.Y + (r.H-h*scale)/2)
	components.Node.SetValue(button, node(x, y, w, h, scale, ZButton))
	components.Sprite.SetValue(button, components.NewSprite(img))
	components.Button.SetValue(button, components.ButtonData{
		Icon:    button,
		OnClick: onClick,
	})
	addHitArea(ecs, button, r)
	return button
}

// CreateVersionLabel creates the grey version string in the bottom-right corner.
func CreateVersionLabel(ecs *ecs.ECS, version string, r layout.Rect, scale float64) *donburi.Entry {
	label := archetypes.Label.Spawn(ecs, tags.VersionLabel)
	w, h := fonts.Measure(fonts.Small, version)
	components.Node.SetValue(label, node(layout.Align(r.X), layout.Align(r.Y), w, h, scale, ZVersion))
	components.Label.SetValue(label, components.LabelData{
		Text:  version,
		Font:  fonts.Small,
		Color: cfg.Title.VersionColor,
	})
	return label
}

// CreateFader creates a full screen cover that fades from opaque to clear.
func CreateFader(ecs *ecs.ECS, duration float64) *donburi.Entry {
	fader := archetypes.Fader.Spawn(ecs)
	components.Fader.SetValue(fader, components.FaderData{
		Tween: gween.New(1, 0, float32(duration), ease.Linear),
		Alpha: 1,
		Color: cfg.Black,
	})
	return fader
}

func addHitArea(ecs *ecs.ECS, e *donburi.Entry, r layout.Rect) {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvButton)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
