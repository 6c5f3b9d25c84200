package layout

import cfg "github.com/automoto/pixeldungeon/config"

// Zoom returns the integer zoom factor for a window of the given size: the
// largest factor that still leaves the minimum logical size for the window's
// orientation. It never returns less than 1.
func Zoom(outsideW, outsideH int, z cfg.ZoomConfig) int {
	minW, minH := z.MinWidthPortrait, z.MinHeightPortrait
	if outsideW > outsideH {
		minW, minH = z.MinWidthLandscape, z.MinHeightLandscape
	}
	if minW <= 0 || minH <= 0 {
		return 1
	}

	zoom := min(outsideW/minW, outsideH/minH)
	return max(zoom, 1)
}

// Logical converts a window size into the logical viewport size.
func Logical(outsideW, outsideH int, z cfg.ZoomConfig) (int, int) {
	zoom := Zoom(outsideW, outsideH, z)
	return max(outsideW/zoom, 1), max(outsideH/zoom, 1)
}
