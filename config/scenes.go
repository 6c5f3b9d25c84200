package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneID identifies a top-level screen the game can switch to
type SceneID int

const (
	SceneNone SceneID = iota
	SceneTitle
	SceneStart
	SceneAbout
	SceneRankings
	SceneBadges
)

var sceneNames = map[SceneID]string{
	SceneTitle:    "title",
	SceneStart:    "start",
	SceneAbout:    "about",
	SceneRankings: "rankings",
	SceneBadges:   "badges",
}

func (s SceneID) String() string {
	if name, ok := sceneNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SceneID(%d)", int(s))
}

// ParseSceneID resolves a scene name. Matching is case-insensitive.
func ParseSceneID(name string) (SceneID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for id, n := range sceneNames {
		if n == key {
			return id, nil
		}
	}
	return SceneNone, fmt.Errorf("unknown scene %q", name)
}

// UnmarshalYAML lets scene identifiers be written by name in data files.
func (s *SceneID) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	id, err := ParseSceneID(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = id
	return nil
}
