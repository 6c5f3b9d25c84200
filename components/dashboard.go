package components

import (
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/yohamta/donburi"
)

// DashboardData identifies one navigation button of the title screen
type DashboardData struct {
	Label  string
	Icon   int
	Target cfg.SceneID
	Text   *donburi.Entry // label entry drawn beneath the icon
}

var Dashboard = donburi.NewComponentType[DashboardData]()
