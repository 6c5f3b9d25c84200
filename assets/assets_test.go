package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTitleArtSizes(t *testing.T) {
	art := MustLoadTitleArt()

	require.Equal(t, 132, art.Banner.Bounds().Dx())
	require.Equal(t, art.Banner.Bounds().Size(), art.Signs.Bounds().Size())
	require.Equal(t, 128, art.Dashboard.Bounds().Dx())
	require.Equal(t, 32, art.Dashboard.Bounds().Dy())
	require.Equal(t, 16, art.Prefs.Bounds().Dx())
	require.Equal(t, 16, art.Exit.Bounds().Dx())
	require.NotEqual(t, art.Prefs.Bounds().Min, art.Exit.Bounds().Min)
}

func TestLoadImageCaches(t *testing.T) {
	l := NewImageLoader()

	first, err := l.LoadImage(EmberPath)
	require.NoError(t, err)
	second, err := l.LoadImage(EmberPath)
	require.NoError(t, err)
	require.Same(t, first, second)

	_, err = l.LoadImage("images/missing.png")
	require.Error(t, err)
}
