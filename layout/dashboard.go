package layout

import (
	"image"
	"math"
)

// IconRect returns the sprite sheet cell of the dashboard icon at index.
// Icons are laid out left to right in a single row of size x size cells.
func IconRect(index, size int) image.Rectangle {
	return image.Rect(index*size, 0, (index+1)*size, size)
}

// IconFits reports whether index addresses a cell inside a sheet of the given width.
func IconFits(index, size, sheetWidth int) bool {
	return index >= 0 && size > 0 && (index+1)*size <= sheetWidth
}

// ItemLayout positions the icon and label of a dashboard button inside its box.
// The icon sits centred at the top; the label is centred beneath it.
type ItemLayout struct {
	Icon  Point
	Label Point
}

// DashboardItem lays out one dashboard button. iconW/iconH and labelW are
// already scaled; gap is the scaled distance between icon and label.
func DashboardItem(box Rect, iconW, iconH, labelW, gap float64) ItemLayout {
	icon := Point{
		X: Align(box.X + (box.W-iconW)/2),
		Y: Align(box.Y),
	}
	return ItemLayout{
		Icon: icon,
		Label: Point{
			X: Align(box.X + (box.W-labelW)/2),
			Y: Align(icon.Y + iconH + gap),
		},
	}
}

// Align snaps a coordinate to the logical pixel grid.
func Align(v float64) float64 {
	return math.Floor(v)
}
