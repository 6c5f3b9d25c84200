package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the pointer hit area of an entity
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space that holds every hit area of a scene
var Space = donburi.NewComponentType[resolv.Space]()
