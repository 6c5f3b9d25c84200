package components

import "github.com/yohamta/donburi"

// PulseData accumulates time for a sprite whose alpha follows sin(-Time)
type PulseData struct {
	Time float64
}

var Pulse = donburi.NewComponentType[PulseData]()
