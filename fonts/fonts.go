package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

type FontName string

const (
	Label   FontName = "label"   // dashboard labels
	Small   FontName = "small"   // version string, hints
	Regular FontName = "regular" // preferences rows
	Title   FontName = "title"   // window titles
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the game uses from the bundled Go font.
func LoadDefaults() {
	LoadFontWithSize(Label, goregular.TTF, 9)
	LoadFontWithSize(Small, goregular.TTF, 8)
	LoadFontWithSize(Regular, goregular.TTF, 10)
	LoadFontWithSize(Title, goregular.TTF, 14)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

// Measure returns the advance width and the line height of s in the given face.
func Measure(name FontName, s string) (width, height float64) {
	face := name.Get()
	if s == "" {
		return 0, 0
	}
	m := face.Metrics()
	return fixedToFloat(font.MeasureString(face, s)), fixedToFloat(m.Ascent + m.Descent)
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent(name FontName) float64 {
	return fixedToFloat(name.Get().Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
