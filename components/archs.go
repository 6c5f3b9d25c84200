package components

import "github.com/yohamta/donburi"

// ArchsData scrolls a tiled background layer vertically
type ArchsData struct {
	Speed  float64 // units per second
	Offset float64
}

var Archs = donburi.NewComponentType[ArchsData]()
