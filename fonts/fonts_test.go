package fonts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	LoadDefaults()

	w, h := Measure(Label, "High Scores")
	require.Greater(t, w, 0.0)
	require.Greater(t, h, 0.0)

	shortW, _ := Measure(Label, "Play")
	require.Less(t, shortW, w)

	w, h = Measure(Label, "")
	require.Zero(t, w)
	require.Zero(t, h)

	require.Greater(t, Ascent(Small), 0.0)
}

func TestMissingFontPanics(t *testing.T) {
	require.Panics(t, func() { FontName("missing").Get() })
}
