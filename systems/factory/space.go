package factory

import (
	"github.com/automoto/pixeldungeon/archetypes"
	"github.com/automoto/pixeldungeon/components"
	"github.com/automoto/pixeldungeon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the scene's hit area space along with the 1x1 cursor
// object used to probe it. The space is rounded up to whole cells so the
// right and bottom edges of the screen stay covered.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		coveringSize(width, cellWidth),
		coveringSize(height, cellHeight),
		cellWidth,
		cellHeight,
	)
	components.Space.Set(space, spaceData)

	cursor := ecs.World.Entry(ecs.World.Create(tags.Cursor, components.Object))
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	obj.Data = cursor
	components.Object.SetValue(cursor, components.ObjectData{Object: obj})
	spaceData.Add(obj)

	return space
}

// coveringSize rounds size up to a whole number of cells, at least one.
func coveringSize(size, cell int) int {
	if cell <= 0 {
		return max(size, 1)
	}
	cells := max((size+cell-1)/cell, 1)
	return cells * cell
}
