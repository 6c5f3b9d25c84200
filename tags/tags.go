package tags

import "github.com/yohamta/donburi"

var (
	Background      = donburi.NewTag().SetName("Background")
	Banner          = donburi.NewTag().SetName("Banner")
	PulseOverlay    = donburi.NewTag().SetName("PulseOverlay")
	Torch           = donburi.NewTag().SetName("Torch")
	Ember           = donburi.NewTag().SetName("Ember")
	DashboardButton = donburi.NewTag().SetName("DashboardButton")
	Icon            = donburi.NewTag().SetName("Icon")
	Label           = donburi.NewTag().SetName("Label")
	VersionLabel    = donburi.NewTag().SetName("VersionLabel")
	PrefsButton     = donburi.NewTag().SetName("PrefsButton")
	ExitButton      = donburi.NewTag().SetName("ExitButton")
	Fader           = donburi.NewTag().SetName("Fader")
	Cursor          = donburi.NewTag().SetName("Cursor")
)

// Resolv tags for pointer hit areas
const (
	ResolvButton = "button"
	ResolvCursor = "cursor"
)
