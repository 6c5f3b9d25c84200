package components

import (
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputPointer
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// PointerEventKind is what happened to a pointer this frame
type PointerEventKind int

const (
	PointerDown PointerEventKind = iota
	PointerUp
	PointerMove
	// PointerCancel is reported when a pointer vanishes without a release.
	PointerCancel
)

func (k PointerEventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent is one mouse or touch event in logical coordinates.
// The mouse uses cfg.Input.MousePointerID; touches use their touch id.
type PointerEvent struct {
	Kind PointerEventKind
	ID   int
	X, Y float64
}

// PointerData holds this frame's pointer events and the pointers still down
type PointerData struct {
	Events []PointerEvent
	Down   map[int][2]float64 // last known position per held pointer
}

var Pointer = donburi.NewComponentType[PointerData]()
