package systems

import (
	"testing"

	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/stretchr/testify/require"
)

type fakeNavigator struct {
	switches []cfg.SceneID
	quits    int
}

func (n *fakeNavigator) SwitchTo(id cfg.SceneID, animate bool) { n.switches = append(n.switches, id) }
func (n *fakeNavigator) Quit()                                 { n.quits++ }

func TestTitleKeys(t *testing.T) {
	stubWindow(t)
	resetLoadedSettings(t)
	e := newTestECS(t)
	audio := &fakeAudio{musicLevel: 1, sfxLevel: 1}
	nav := &fakeNavigator{}
	update := NewUpdateTitleKeys(Services{Audio: audio, Navigator: nav})
	input := getOrCreateInput(e)

	input.Current[cfg.ActionPrefs] = true
	update(e)
	require.True(t, IsSettingsOpen(e))
	require.Equal(t, 1, audio.count(cfg.SoundClick))

	// Back belongs to the preferences window while it is open.
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMenuBack] = true
	update(e)
	require.Zero(t, nav.quits)

	GetOrCreateSettingsMenu(e, audio).IsOpen = false
	update(e)
	require.Equal(t, 1, nav.quits)
	require.Empty(t, nav.switches)
}
