package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/pixeldungeon/assets"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/fonts"
	"github.com/automoto/pixeldungeon/layout"
	"github.com/automoto/pixeldungeon/systems"
	"github.com/automoto/pixeldungeon/systems/factory"
	"github.com/automoto/pixeldungeon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hitCellSize is the cell side of the pointer hit space
const hitCellSize = 16

// TitleScene is the game's entry screen: a banner with a pulsing glow,
// two torches, four navigation buttons and the preferences/exit corners.
type TitleScene struct {
	ecs      *ecs.ECS
	services systems.Services
	art      assets.TitleArt
	plan     layout.TitlePlan
	once     sync.Once
}

// NewTitleScene creates a title scene. It activates on its first update.
func NewTitleScene(services systems.Services, art assets.TitleArt) *TitleScene {
	return &TitleScene{services: services, art: art}
}

func (ts *TitleScene) Update() {
	ts.Activate()
	ts.ecs.Update()
}

// Activate builds the scene once. Later calls do nothing.
func (ts *TitleScene) Activate() {
	ts.once.Do(ts.configure)
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.DrawLayer(cfg.LayerScene, screen)
	if ts.services.Viewport.OverlayVisible() {
		ts.ecs.DrawLayer(cfg.LayerOverlay, screen)
	}
}

// Plan returns the layout the scene was built with.
func (ts *TitleScene) Plan() layout.TitlePlan {
	return ts.plan
}

// ECS exposes the scene's systems and entities.
func (ts *TitleScene) ECS() *ecs.ECS {
	return ts.ecs
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	audio := ts.services.Audio
	audio.PlayMusic(cfg.Sound.ThemeMusic, true)
	audio.SetMusicVolume(1)

	ts.services.Viewport.SetOverlayVisible(false)
	w, h := ts.services.Viewport.Size()
	vw, vh := float64(w), float64(h)

	version := "v " + cfg.C.Version
	versionW, versionH := fonts.Measure(fonts.Small, version)
	bannerW, bannerH := float64(ts.art.Banner.Bounds().Dx()), float64(ts.art.Banner.Bounds().Dy())
	ts.plan = layout.Title(layout.NewTitleInput(vw, vh, bannerW, bannerH, versionW, versionH))
	plan := ts.plan
	s := plan.Scale

	factory.CreateSpace(ts.ecs, max(w, 1), max(h, 1), hitCellSize, hitCellSize)

	factory.CreateArchs(ts.ecs, ts.art.ArchsBack, vw, vh, cfg.Title.ArchsBackSpeed, factory.ZArchsBack)
	factory.CreateArchs(ts.ecs, ts.art.ArchsFront, vw, vh, cfg.Title.ArchsFrontSpeed, factory.ZArchsFront)

	factory.CreateBanner(ts.ecs, ts.art.Banner, plan.Banner, s)
	for i, p := range plan.Torches {
		factory.CreateTorch(ts.ecs, ts.art.Fireball, ts.art.Ember, p, s, int64(i+1))
	}
	factory.CreatePulseOverlay(ts.ecs, ts.art.Signs, plan.Banner, s)

	nav := ts.services.Navigator
	for _, item := range cfg.Dashboard {
		target := item.Target
		onClick := func() { nav.SwitchTo(target, false) }
		if _, err := factory.CreateDashboardButton(ts.ecs, ts.art.Dashboard, item, plan.Buttons[target], s, onClick); err != nil {
			log.Printf("Warning: Could not create dashboard button: %v", err)
		}
	}

	factory.CreateVersionLabel(ts.ecs, version, plan.Version, s)

	factory.CreateCornerButton(ts.ecs, ts.art.Prefs, plan.Prefs, s, tags.PrefsButton, func() {
		systems.OpenSettings(ts.ecs, audio)
	})
	factory.CreateCornerButton(ts.ecs, ts.art.Exit, plan.Exit, s, tags.ExitButton, nav.Quit)

	fade := cfg.Title.FadeDuration
	if cfg.C.SkipFade {
		fade = 0
	}
	factory.CreateFader(ts.ecs, fade)

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdatePointer)
	ts.ecs.AddSystem(systems.NewUpdateTitleKeys(ts.services))
	ts.ecs.AddSystem(systems.NewUpdateButtons(audio))
	ts.ecs.AddSystem(systems.NewUpdateSettingsMenu(audio))
	ts.ecs.AddSystem(systems.UpdateArchs)
	ts.ecs.AddSystem(systems.UpdatePulse)
	ts.ecs.AddSystem(systems.UpdateAnimations)
	ts.ecs.AddSystem(systems.UpdateTorches)
	ts.ecs.AddSystem(systems.UpdateFaders)

	ts.ecs.AddRenderer(cfg.LayerScene, systems.DrawNodes)
	ts.ecs.AddRenderer(cfg.LayerScene, systems.DrawFaders)
	ts.ecs.AddRenderer(cfg.LayerScene, systems.DrawSettingsMenu)
	ts.ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)

	systems.EnableDebug(ts.ecs, cfg.C.Debug)
}
