package components

import "github.com/yohamta/donburi"

// NodeData places an entity on screen. X/Y is the top-left corner in logical
// units; W/H is the unscaled size and Scale is applied on draw.
type NodeData struct {
	X, Y  float64
	W, H  float64
	Scale float64
	Z     int // draw order, lower first
}

var Node = donburi.NewComponentType[NodeData]()
