package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedDashboard(t *testing.T) {
	require.Len(t, Dashboard, 4)
	require.Equal(t, DashboardItem{Label: "Play", Icon: 0, Target: SceneStart}, Dashboard[0])
	require.Equal(t, SceneBadges, Dashboard[3].Target)
}

func TestLoadDashboardRejectsBadItems(t *testing.T) {
	cases := map[string]string{
		"too few items": `
items:
  - {label: Play, icon: 0, target: start}
`,
		"unknown target": `
items:
  - {label: Play, icon: 0, target: start}
  - {label: About, icon: 1, target: about}
  - {label: High Scores, icon: 2, target: rankings}
  - {label: Shop, icon: 3, target: shop}
`,
		"title is not a destination": `
items:
  - {label: Play, icon: 0, target: start}
  - {label: About, icon: 1, target: about}
  - {label: High Scores, icon: 2, target: rankings}
  - {label: Home, icon: 3, target: title}
`,
		"duplicate target": `
items:
  - {label: Play, icon: 0, target: start}
  - {label: About, icon: 1, target: about}
  - {label: High Scores, icon: 2, target: rankings}
  - {label: Again, icon: 3, target: start}
`,
		"duplicate icon": `
items:
  - {label: Play, icon: 0, target: start}
  - {label: About, icon: 1, target: about}
  - {label: High Scores, icon: 2, target: rankings}
  - {label: Badges, icon: 2, target: badges}
`,
		"icon outside sheet": `
items:
  - {label: Play, icon: 0, target: start}
  - {label: About, icon: 1, target: about}
  - {label: High Scores, icon: 2, target: rankings}
  - {label: Badges, icon: 4, target: badges}
`,
		"empty label": `
items:
  - {label: "", icon: 0, target: start}
  - {label: About, icon: 1, target: about}
  - {label: High Scores, icon: 2, target: rankings}
  - {label: Badges, icon: 3, target: badges}
`,
		"not yaml": `items: [`,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadDashboard([]byte(data), 4)
			require.Error(t, err)
		})
	}
}

func TestLoadDashboardKeepsOrder(t *testing.T) {
	items, err := LoadDashboard([]byte(`
items:
  - {label: Badges, icon: 3, target: Badges}
  - {label: High Scores, icon: 2, target: rankings}
  - {label: About, icon: 1, target: about}
  - {label: Play, icon: 0, target: start}
`), 4)
	require.NoError(t, err)
	require.Equal(t, SceneBadges, items[0].Target)
	require.Equal(t, SceneStart, items[3].Target)
}

func TestParseSceneID(t *testing.T) {
	id, err := ParseSceneID(" Rankings ")
	require.NoError(t, err)
	require.Equal(t, SceneRankings, id)
	require.Equal(t, "rankings", id.String())

	_, err = ParseSceneID("dungeon")
	require.Error(t, err)

	require.Equal(t, "SceneID(42)", SceneID(42).String())
}
