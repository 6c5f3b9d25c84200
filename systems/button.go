package systems

import (
	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateButtons returns the system that feeds this frame's pointer
// events to the scene's buttons. Buttons ignore input while the
// preferences window is open.
func NewUpdateButtons(audio Audio) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			CancelButtons(e)
			return
		}
		pointer := GetOrCreatePointer(e)
		for _, ev := range pointer.Events {
			HandlePointer(e, audio, ev)
		}
	}
}

// HandlePointer runs one pointer event through the button state machine:
// down on an idle button presses it, up over it clicks, and anything else
// that ends the touch resets it without a click.
func HandlePointer(e *ecs.ECS, audio Audio, ev components.PointerEvent) {
	switch ev.Kind {
	case components.PointerDown:
		entry := ButtonAt(e, ev.X, ev.Y)
		if entry == nil || !entry.HasComponent(components.Button) {
			return
		}
		if components.Button.Get(entry).State == components.ButtonIdle {
			press(entry, ev.ID, audio)
		}

	case components.PointerUp:
		for _, entry := range pressedBy(e, ev.ID) {
			reset(entry)
			if hitTest(entry, ev.X, ev.Y) {
				if onClick := components.Button.Get(entry).OnClick; onClick != nil {
					onClick()
				}
			}
		}

	case components.PointerMove:
		for _, entry := range pressedBy(e, ev.ID) {
			if !hitTest(entry, ev.X, ev.Y) {
				reset(entry)
			}
		}

	case components.PointerCancel:
		for _, entry := range pressedBy(e, ev.ID) {
			reset(entry)
		}
	}
}

// CancelButtons returns every pressed button to idle without clicking.
func CancelButtons(e *ecs.ECS) {
	var pressed []*donburi.Entry
	components.Button.Each(e.World, func(entry *donburi.Entry) {
		if components.Button.Get(entry).State == components.ButtonPressed {
			pressed = append(pressed, entry)
		}
	})
	for _, entry := range pressed {
		reset(entry)
	}
}

func pressedBy(e *ecs.ECS, pointerID int) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Button.Each(e.World, func(entry *donburi.Entry) {
		b := components.Button.Get(entry)
		if b.State == components.ButtonPressed && b.PointerID == pointerID {
			entries = append(entries, entry)
		}
	})
	return entries
}

func press(entry *donburi.Entry, pointerID int, audio Audio) {
	b := components.Button.Get(entry)
	b.State = components.ButtonPressed
	b.PointerID = pointerID
	setIconBrightness(b, cfg.Title.PressedBrightness)

	if audio != nil {
		audio.PlaySample(cfg.SoundClick, cfg.Title.ClickVolume, cfg.Title.ClickPitch)
	}
}

func reset(entry *donburi.Entry) {
	b := components.Button.Get(entry)
	b.State = components.ButtonIdle
	setIconBrightness(b, 1)
}

func setIconBrightness(b *components.ButtonData, brightness float64) {
	if b.Icon == nil || !b.Icon.Valid() || !b.Icon.HasComponent(components.Sprite) {
		return
	}
	components.Sprite.Get(b.Icon).Brightness = brightness
}
