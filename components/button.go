package components

import "github.com/yohamta/donburi"

// ButtonState is the touch state of a button
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonPressed
)

func (s ButtonState) String() string {
	if s == ButtonPressed {
		return "pressed"
	}
	return "idle"
}

// ButtonData drives a tappable icon. While pressed, PointerID holds the
// pointer that pressed it; only that pointer can release or cancel it.
type ButtonData struct {
	State     ButtonState
	PointerID int
	Icon      *donburi.Entry // entry whose sprite brightens while pressed
	OnClick   func()
}

var Button = donburi.NewComponentType[ButtonData]()
