package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/systems"
	"github.com/automoto/pixeldungeon/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// infoPage is the static content of a destination screen
type infoPage struct {
	Title string
	Lines []string
}

var infoPages = map[cfg.SceneID]infoPage{
	cfg.SceneStart: {
		Title: "Start",
		Lines: []string{
			"Choose your hero and descend.",
			"The dungeon is not part of this build.",
		},
	},
	cfg.SceneAbout: {
		Title: "About",
		Lines: []string{
			"Pixel Dungeon",
			"A roguelike about diving deep",
			"and coming back alive.",
		},
	},
	cfg.SceneRankings: {
		Title: "High Scores",
		Lines: []string{"No games played yet."},
	},
	cfg.SceneBadges: {
		Title: "Badges",
		Lines: []string{"No badges unlocked yet."},
	},
}

// InfoScene is one of the screens the title dashboard leads to. It shows a
// panel with a Back button that returns to the title with a fade.
type InfoScene struct {
	ecs      *ecs.ECS
	id       cfg.SceneID
	services systems.Services
	infoUI   *ui.InfoUI
	once     sync.Once
	goBack   bool
}

func NewInfoScene(id cfg.SceneID, services systems.Services) *InfoScene {
	return &InfoScene{id: id, services: services}
}

func (s *InfoScene) Update() {
	s.once.Do(s.configure)

	s.ecs.Update()
	s.infoUI.Update()

	if systems.ActionJustPressed(s.ecs, cfg.ActionMenuBack) {
		s.goBack = true
	}
	if s.goBack {
		s.goBack = false
		s.services.Navigator.SwitchTo(cfg.SceneTitle, true)
	}
}

func (s *InfoScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.infoUI.UI.Draw(screen)
	if s.services.Viewport.OverlayVisible() {
		s.ecs.DrawLayer(cfg.LayerOverlay, screen)
	}
}

func (s *InfoScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)
	systems.EnableDebug(s.ecs, cfg.C.Debug)

	s.services.Viewport.SetOverlayVisible(true)

	page, ok := infoPages[s.id]
	if !ok {
		page = infoPage{Title: s.id.String()}
	}
	s.infoUI = ui.NewInfoUI(page.Title, page.Lines, func() { s.goBack = true })
}
