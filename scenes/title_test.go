package scenes

import (
	"math"
	"testing"

	"github.com/automoto/pixeldungeon/assets"
	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/fonts"
	"github.com/automoto/pixeldungeon/layout"
	"github.com/automoto/pixeldungeon/systems"
	"github.com/automoto/pixeldungeon/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

type musicCall struct {
	path string
	loop bool
}

type fakeAudio struct {
	music   []musicCall
	volumes []float64
	samples []cfg.SoundID
}

func (a *fakeAudio) PlayMusic(path string, loop bool) {
	a.music = append(a.music, musicCall{path, loop})
}
func (a *fakeAudio) SetMusicVolume(v float64) { a.volumes = append(a.volumes, v) }
func (a *fakeAudio) PlaySample(id cfg.SoundID, volume, pitch float64) {
	a.samples = append(a.samples, id)
}

type fakeViewport struct {
	w, h    int
	overlay bool
}

func (v *fakeViewport) Size() (int, int)               { return v.w, v.h }
func (v *fakeViewport) SetOverlayVisible(visible bool) { v.overlay = visible }
func (v *fakeViewport) OverlayVisible() bool           { return v.overlay }

type switchCall struct {
	id      cfg.SceneID
	animate bool
}

type fakeNavigator struct {
	switches []switchCall
	quits    int
}

func (n *fakeNavigator) SwitchTo(id cfg.SceneID, animate bool) {
	n.switches = append(n.switches, switchCall{id, animate})
}
func (n *fakeNavigator) Quit() { n.quits++ }

type titleFixture struct {
	scene    *TitleScene
	audio    *fakeAudio
	viewport *fakeViewport
	nav      *fakeNavigator
}

func newTitleFixture(t *testing.T, w, h int) *titleFixture {
	t.Helper()
	fonts.LoadDefaults()

	f := &titleFixture{
		audio:    &fakeAudio{},
		viewport: &fakeViewport{w: w, h: h, overlay: true},
		nav:      &fakeNavigator{},
	}
	services := systems.Services{Audio: f.audio, Viewport: f.viewport, Navigator: f.nav}
	f.scene = NewTitleScene(services, assets.MustLoadTitleArt())
	f.scene.Activate()
	return f
}

func (f *titleFixture) dashboard() map[cfg.SceneID]*components.NodeData {
	nodes := map[cfg.SceneID]*components.NodeData{}
	components.Dashboard.Each(f.scene.ECS().World, func(entry *donburi.Entry) {
		nodes[components.Dashboard.Get(entry).Target] = components.Node.Get(entry)
	})
	return nodes
}

func (f *titleFixture) tap(r layout.Rect) {
	x, y := r.X+r.W/2, r.Y+r.H/2
	e := f.scene.ECS()
	systems.HandlePointer(e, f.audio, components.PointerEvent{Kind: components.PointerDown, ID: 1, X: x, Y: y})
	systems.HandlePointer(e, f.audio, components.PointerEvent{Kind: components.PointerUp, ID: 1, X: x, Y: y})
}

func TestTitleActivateStartsThemeAndHidesOverlay(t *testing.T) {
	f := newTitleFixture(t, 800, 480)

	require.Equal(t, []musicCall{{cfg.Sound.ThemeMusic, true}}, f.audio.music)
	require.Equal(t, []float64{1}, f.audio.volumes)
	require.False(t, f.viewport.overlay)

	f.scene.Activate()
	require.Len(t, f.audio.music, 1, "activation runs once")
}

func TestTitleCreatesEveryNode(t *testing.T) {
	f := newTitleFixture(t, 800, 480)
	world := f.scene.ECS().World

	count := func(tag donburi.IComponentType) int {
		n := 0
		donburi.NewQuery(filter.Contains(tag)).Each(world, func(*donburi.Entry) { n++ })
		return n
	}
	require.Equal(t, 1, count(tags.Banner))
	require.Equal(t, 1, count(tags.PulseOverlay))
	require.Equal(t, 2, count(tags.Torch))
	require.Equal(t, 4, count(tags.DashboardButton))
	require.Equal(t, 1, count(tags.VersionLabel))
	require.Equal(t, 1, count(tags.PrefsButton))
	require.Equal(t, 1, count(tags.ExitButton))
	require.Equal(t, 1, count(tags.Fader))

	version, ok := tags.VersionLabel.First(world)
	require.True(t, ok)
	require.Equal(t, "v "+cfg.C.Version, components.Label.Get(version).Text)

	fader, ok := tags.Fader.First(world)
	require.True(t, ok)
	require.Equal(t, 1.0, components.Fader.Get(fader).Alpha)

	pulse, ok := tags.PulseOverlay.First(world)
	require.True(t, ok)
	require.Zero(t, components.Sprite.Get(pulse).Alpha)
}

func TestTitleLandscapeUsesOneRow(t *testing.T) {
	f := newTitleFixture(t, 800, 480)
	require.Equal(t, layout.Landscape, f.scene.Plan().Orientation)
	require.Equal(t, 1.0, f.scene.Plan().Scale)

	nodes := f.dashboard()
	require.Len(t, nodes, 4)
	y := nodes[cfg.SceneStart].Y
	for id, n := range nodes {
		require.Equal(t, y, n.Y, "%s should share the row", id)
	}
	require.Less(t, nodes[cfg.SceneStart].X, nodes[cfg.SceneRankings].X)
	require.Less(t, nodes[cfg.SceneRankings].X, nodes[cfg.SceneBadges].X)
	require.Less(t, nodes[cfg.SceneBadges].X, nodes[cfg.SceneAbout].X)
}

func TestTitlePortraitUsesTwoRows(t *testing.T) {
	f := newTitleFixture(t, 480, 800)
	require.Equal(t, layout.Portrait, f.scene.Plan().Orientation)

	nodes := f.dashboard()
	require.Equal(t, nodes[cfg.SceneStart].Y, nodes[cfg.SceneRankings].Y)
	require.Equal(t, nodes[cfg.SceneBadges].Y, nodes[cfg.SceneAbout].Y)
	require.Less(t, nodes[cfg.SceneStart].Y, nodes[cfg.SceneBadges].Y)
	require.Equal(t, nodes[cfg.SceneStart].X, nodes[cfg.SceneBadges].X)
}

func TestTitleTorchesFlankBanner(t *testing.T) {
	f := newTitleFixture(t, 800, 480)
	plan := f.scene.Plan()

	require.InDelta(t, plan.Banner.X+cfg.Title.TorchOffsetX, plan.Torches[0].X, 1e-9)
	require.InDelta(t, plan.Banner.Right()-cfg.Title.TorchOffsetX, plan.Torches[1].X, 1e-9)
	require.InDelta(t, plan.Banner.Y+cfg.Title.TorchOffsetY, plan.Torches[0].Y, 1e-9)
	require.Equal(t, plan.Torches[0].Y, plan.Torches[1].Y)
}

func TestTitleDashboardNavigatesWithoutFade(t *testing.T) {
	f := newTitleFixture(t, 800, 480)
	plan := f.scene.Plan()

	f.tap(plan.Buttons[cfg.SceneStart])
	f.tap(plan.Buttons[cfg.SceneBadges])

	require.Equal(t, []switchCall{{cfg.SceneStart, false}, {cfg.SceneBadges, false}}, f.nav.switches)
	require.Equal(t, []cfg.SoundID{cfg.SoundClick, cfg.SoundClick}, f.audio.samples)
	require.Zero(t, f.nav.quits)
}

func TestTitleExitQuits(t *testing.T) {
	f := newTitleFixture(t, 480, 800)

	f.tap(f.scene.Plan().Exit)

	require.Equal(t, 1, f.nav.quits)
	require.Empty(t, f.nav.switches)
}

func TestTitleFitsTinyViewport(t *testing.T) {
	f := newTitleFixture(t, 120, 100)
	plan := f.scene.Plan()

	require.Less(t, plan.Scale, 1.0)
	for id, n := range f.dashboard() {
		require.GreaterOrEqual(t, n.X, 0.0, id.String())
		require.LessOrEqual(t, n.X+n.W*n.Scale, 120+1e-9, id.String())
		require.False(t, math.IsNaN(n.Y))
	}
}

func TestTitleSkipFade(t *testing.T) {
	orig := cfg.C.SkipFade
	cfg.C.SkipFade = true
	t.Cleanup(func() { cfg.C.SkipFade = orig })

	f := newTitleFixture(t, 800, 480)
	world := f.scene.ECS().World
	systems.StepFaders(f.scene.ECS(), 1.0/60)

	_, ok := tags.Fader.First(world)
	require.False(t, ok)
}

func TestTitleExitReachableAtEveryWidth(t *testing.T) {
	for w := 240; w <= 272; w++ {
		f := newTitleFixture(t, w, 160)

		f.tap(f.scene.Plan().Exit)

		require.Equal(t, 1, f.nav.quits, "exit button at %dx160", w)
	}
}

func TestTitleBottomRowReachableAtOddHeights(t *testing.T) {
	for _, h := range []int{250, 266, 281} {
		f := newTitleFixture(t, 160, h)

		f.tap(f.scene.Plan().Buttons[cfg.SceneBadges])

		require.Equal(t, []switchCall{{cfg.SceneBadges, false}}, f.nav.switches, "badges button at 160x%d", h)
	}
}

func TestTitleNodesDrawInsideViewport(t *testing.T) {
	const eps = 1e-9
	sizes := [][2]int{
		{1, 1}, {40, 30}, {100, 90}, {120, 100}, {128, 224}, {160, 266},
		{224, 160}, {250, 160}, {266, 160}, {320, 480}, {480, 800}, {800, 480}, {2560, 1440},
	}
	for _, size := range sizes {
		w, h := float64(size[0]), float64(size[1])
		f := newTitleFixture(t, size[0], size[1])

		components.Node.Each(f.scene.ECS().World, func(entry *donburi.Entry) {
			n := components.Node.Get(entry)
			name := entryName(entry)
			require.GreaterOrEqual(t, n.X, -eps, "%s left edge at %vx%v", name, w, h)
			require.GreaterOrEqual(t, n.Y, -eps, "%s top edge at %vx%v", name, w, h)
			require.LessOrEqual(t, n.X+n.W*n.Scale, w+eps, "%s right edge at %vx%v", name, w, h)
			require.LessOrEqual(t, n.Y+n.H*n.Scale, h+eps, "%s bottom edge at %vx%v", name, w, h)
		})
	}
}

func entryName(entry *donburi.Entry) string {
	switch {
	case entry.HasComponent(components.Label):
		return "label " + components.Label.Get(entry).Text
	case entry.HasComponent(tags.Torch):
		return "torch"
	case entry.HasComponent(tags.Icon):
		return "icon"
	case entry.HasComponent(tags.DashboardButton):
		return "dashboard button"
	}
	return "node"
}
