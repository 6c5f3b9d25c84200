package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed dashboard.yaml
var dashboardYAML []byte

// DashboardItem describes one navigation button of the title screen
type DashboardItem struct {
	Label  string  `yaml:"label"`
	Icon   int     `yaml:"icon"`
	Target SceneID `yaml:"target"`
}

type dashboardFile struct {
	Items []DashboardItem `yaml:"items"`
}

// dashboardTargets are the destinations the title layout has a slot for.
var dashboardTargets = []SceneID{SceneStart, SceneAbout, SceneRankings, SceneBadges}

// Dashboard is the parsed embedded dashboard definition
var Dashboard []DashboardItem

// LoadDashboard parses and validates a dashboard definition.
// Every layout slot must be filled exactly once and icon indexes must be
// distinct cells of a sheet holding iconCount icons.
func LoadDashboard(data []byte, iconCount int) ([]DashboardItem, error) {
	var f dashboardFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse dashboard: %w", err)
	}

	if len(f.Items) != len(dashboardTargets) {
		return nil, fmt.Errorf("dashboard needs %d items, got %d", len(dashboardTargets), len(f.Items))
	}

	seenTargets := make(map[SceneID]bool, len(f.Items))
	seenIcons := make(map[int]bool, len(f.Items))
	for i, item := range f.Items {
		if item.Label == "" {
			return nil, fmt.Errorf("dashboard item %d: empty label", i)
		}
		if item.Icon < 0 || item.Icon >= iconCount {
			return nil, fmt.Errorf("dashboard item %q: icon %d outside sheet of %d", item.Label, item.Icon, iconCount)
		}
		if !isDashboardTarget(item.Target) {
			return nil, fmt.Errorf("dashboard item %q: %s is not a dashboard destination", item.Label, item.Target)
		}
		if seenTargets[item.Target] {
			return nil, fmt.Errorf("dashboard item %q: duplicate target %s", item.Label, item.Target)
		}
		if seenIcons[item.Icon] {
			return nil, fmt.Errorf("dashboard item %q: duplicate icon %d", item.Label, item.Icon)
		}
		seenTargets[item.Target] = true
		seenIcons[item.Icon] = true
	}

	return f.Items, nil
}

func isDashboardTarget(id SceneID) bool {
	for _, t := range dashboardTargets {
		if t == id {
			return true
		}
	}
	return false
}

func init() {
	items, err := LoadDashboard(dashboardYAML, Title.IconCount)
	if err != nil {
		panic(fmt.Sprintf("embedded dashboard: %v", err))
	}
	Dashboard = items
}
