package systems

import (
	"testing"

	"github.com/automoto/pixeldungeon/components"
	cfg "github.com/automoto/pixeldungeon/config"
	"github.com/stretchr/testify/require"
)

func kinds(p *components.PointerData) []components.PointerEventKind {
	out := make([]components.PointerEventKind, len(p.Events))
	for i, ev := range p.Events {
		out[i] = ev.Kind
	}
	return out
}

func TestPointerLifecycle(t *testing.T) {
	p := &components.PointerData{}
	mouse := cfg.Input.MousePointerID

	collectPointerEvents(p, []pointerSample{{id: mouse, x: 5, y: 6}}, nil)
	require.Equal(t, []components.PointerEventKind{components.PointerDown}, kinds(p))
	require.Equal(t, mouse, p.Events[0].ID)

	collectPointerEvents(p, []pointerSample{{id: mouse, x: 5, y: 6}}, nil)
	require.Empty(t, p.Events, "a still pointer reports nothing")

	collectPointerEvents(p, []pointerSample{{id: mouse, x: 7, y: 6}}, nil)
	require.Equal(t, []components.PointerEventKind{components.PointerMove}, kinds(p))
	require.Equal(t, 7.0, p.Events[0].X)

	collectPointerEvents(p, nil, []pointerSample{{id: mouse, x: 8, y: 9}})
	require.Equal(t, []components.PointerEventKind{components.PointerUp}, kinds(p))
	require.Equal(t, 8.0, p.Events[0].X)
	require.Equal(t, 9.0, p.Events[0].Y)
	require.Empty(t, p.Down)
}

func TestPointerReleaseWithoutPressIsIgnored(t *testing.T) {
	p := &components.PointerData{}

	collectPointerEvents(p, nil, []pointerSample{{id: 4, x: 1, y: 1}})

	require.Empty(t, p.Events)
}

func TestVanishedPointersAreCancelled(t *testing.T) {
	p := &components.PointerData{}
	collectPointerEvents(p, []pointerSample{{id: 3, x: 1, y: 1}, {id: 1, x: 2, y: 2}, {id: 2, x: 3, y: 3}}, nil)
	require.Len(t, p.Events, 3)

	collectPointerEvents(p, []pointerSample{{id: 2, x: 3, y: 3}}, nil)

	require.Equal(t, []components.PointerEvent{
		{Kind: components.PointerCancel, ID: 1, X: 2, Y: 2},
		{Kind: components.PointerCancel, ID: 3, X: 1, Y: 1},
	}, p.Events)
	require.Len(t, p.Down, 1)
}

func TestGetActionEdges(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMenuSelect] = true

	state := GetAction(input, cfg.ActionMenuSelect)
	require.True(t, state.Pressed)
	require.True(t, state.JustPressed)
	require.False(t, state.JustReleased)

	input.Previous = input.Current
	state = GetAction(input, cfg.ActionMenuSelect)
	require.True(t, state.Pressed)
	require.False(t, state.JustPressed)

	input.Previous = input.Current
	input.Current[cfg.ActionMenuSelect] = false
	state = GetAction(input, cfg.ActionMenuSelect)
	require.False(t, state.Pressed)
	require.True(t, state.JustReleased)
}
