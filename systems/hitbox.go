package systems

import (
	"github.com/automoto/pixeldungeon/components"
	"github.com/automoto/pixeldungeon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ButtonAt returns the button whose hit area contains (x, y), if any.
func ButtonAt(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	cursorEntry, ok := tags.Cursor.First(ecs.World)
	if !ok {
		return nil
	}
	cursor := components.Object.Get(cursorEntry)
	cursor.X, cursor.Y = x, y
	cursor.Update()

	collision := cursor.Check(0, 0, tags.ResolvButton)
	if collision == nil {
		return nil
	}

	// The space reports everything sharing a cell with the cursor.
	for _, obj := range collision.Objects {
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			return entry
		}
	}
	return nil
}

// hitTest reports whether (x, y) is inside the entry's own hit area.
func hitTest(e *donburi.Entry, x, y float64) bool {
	if !e.HasComponent(components.Object) {
		return false
	}
	obj := components.Object.Get(e)
	return x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H
}
