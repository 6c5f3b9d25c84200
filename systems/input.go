package systems

import (
	"sort"

	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations every frame
var (
	gamepadIDs      []ebiten.GamepadID
	touchIDs        []ebiten.TouchID
	releasedTouches []ebiten.TouchID
	heldPointers    []pointerSample
	releasedPtrs    []pointerSample
)

// UpdateInput polls keyboard and gamepads and updates the Input component.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if mergeAnalogStick(input, gamepadIDs) {
		gamepadUsed = true
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// mergeAnalogStick maps the left stick of any gamepad onto menu directions
func mergeAnalogStick(input *components.InputData, gamepads []ebiten.GamepadID) bool {
	deadzone := cfg.Input.AnalogDeadzone
	used := false

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			input.Current[cfg.ActionMenuLeft] = true
			used = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMenuRight] = true
			used = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMenuUp] = true
			used = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMenuDown] = true
			used = true
		}
	}
	return used
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ActionJustPressed reports whether the action went down this frame.
func ActionJustPressed(ecs *ecs.ECS, id cfg.ActionID) bool {
	return GetAction(getOrCreateInput(ecs), id).JustPressed
}

type pointerSample struct {
	id   int
	x, y float64
}

// UpdatePointer turns mouse and touch state into this frame's pointer events.
func UpdatePointer(ecs *ecs.ECS) {
	pointer := GetOrCreatePointer(ecs)

	heldPointers = heldPointers[:0]
	releasedPtrs = releasedPtrs[:0]

	mx, my := ebiten.CursorPosition()
	mouse := pointerSample{id: cfg.Input.MousePointerID, x: float64(mx), y: float64(my)}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		heldPointers = append(heldPointers, mouse)
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		releasedPtrs = append(releasedPtrs, mouse)
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		heldPointers = append(heldPointers, pointerSample{id: int(id), x: float64(x), y: float64(y)})
	}
	releasedTouches = inpututil.AppendJustReleasedTouchIDs(releasedTouches[:0])
	for _, id := range releasedTouches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		releasedPtrs = append(releasedPtrs, pointerSample{id: int(id), x: float64(x), y: float64(y)})
	}

	collectPointerEvents(pointer, heldPointers, releasedPtrs)

	if len(pointer.Events) > 0 {
		getOrCreateInput(ecs).LastInputMethod = components.InputPointer
	}
}

// collectPointerEvents compares the pointers held now against the ones held
// last frame. A pointer that disappears without a release is cancelled.
func collectPointerEvents(p *components.PointerData, held, released []pointerSample) {
	p.Events = p.Events[:0]
	if p.Down == nil {
		p.Down = make(map[int][2]float64)
	}

	seen := make(map[int]bool, len(held)+len(released))
	for _, s := range held {
		seen[s.id] = true
		pos := [2]float64{s.x, s.y}
		last, ok := p.Down[s.id]
		switch {
		case !ok:
			p.Events = append(p.Events, components.PointerEvent{Kind: components.PointerDown, ID: s.id, X: s.x, Y: s.y})
		case last != pos:
			p.Events = append(p.Events, components.PointerEvent{Kind: components.PointerMove, ID: s.id, X: s.x, Y: s.y})
		}
		p.Down[s.id] = pos
	}

	for _, s := range released {
		seen[s.id] = true
		if _, ok := p.Down[s.id]; !ok {
			continue
		}
		p.Events = append(p.Events, components.PointerEvent{Kind: components.PointerUp, ID: s.id, X: s.x, Y: s.y})
		delete(p.Down, s.id)
	}

	var vanished []int
	for id := range p.Down {
		if !seen[id] {
			vanished = append(vanished, id)
		}
	}
	sort.Ints(vanished)
	for _, id := range vanished {
		pos := p.Down[id]
		p.Events = append(p.Events, components.PointerEvent{Kind: components.PointerCancel, ID: id, X: pos[0], Y: pos[1]})
		delete(p.Down, id)
	}
}

// GetOrCreatePointer returns the singleton Pointer component, creating if needed
func GetOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
		components.Pointer.SetValue(entry, components.PointerData{
			Down: make(map[int][2]float64),
		})
	}
	return components.Pointer.Get(entry)
}
