package archetypes

import (
	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/automoto/pixeldungeon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Archs = newArchetype(
		tags.Background,
		components.Node,
		components.Sprite,
		components.Archs,
	)
	Banner = newArchetype(
		tags.Banner,
		components.Node,
		components.Sprite,
	)
	PulseOverlay = newArchetype(
		tags.PulseOverlay,
		components.Node,
		components.Sprite,
		components.Pulse,
	)
	Torch = newArchetype(
		tags.Torch,
		components.Node,
		components.Sprite,
		components.Torch,
		components.Animation,
	)
	Ember = newArchetype(
		tags.Ember,
		components.Node,
		components.Sprite,
		components.Ember,
	)
	DashboardButton = newArchetype(
		tags.DashboardButton,
		components.Node,
		components.Button,
		components.Dashboard,
		components.Object,
	)
	CornerButton = newArchetype(
		components.Node,
		components.Sprite,
		components.Button,
		components.Object,
	)
	Icon = newArchetype(
		tags.Icon,
		components.Node,
		components.Sprite,
	)
	Label = newArchetype(
		tags.Label,
		components.Node,
		components.Label,
	)
	Fader = newArchetype(
		tags.Fader,
		components.Fader,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity on the scene layer with the archetype's
// components plus any extra ones, such as a tag.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.LayerScene, all...))
}
