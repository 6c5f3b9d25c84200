package systems

import (
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTitleKeys returns the title screen's keyboard and gamepad
// shortcuts: Back quits the game and Prefs opens the preferences window.
func NewUpdateTitleKeys(services Services) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			return
		}
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionPrefs).JustPressed {
			OpenSettings(e, services.Audio)
			playSelectSound(services.Audio)
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed && services.Navigator != nil {
			services.Navigator.Quit()
		}
	}
}
