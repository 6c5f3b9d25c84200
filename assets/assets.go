package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:images
	imageFS embed.FS

	imageLoader = NewImageLoader()
)

// TitleArt holds every image the title screen draws
type TitleArt struct {
	ArchsBack  *ebiten.Image
	ArchsFront *ebiten.Image
	Banner     *ebiten.Image
	Signs      *ebiten.Image // glow drawn over the banner
	Dashboard  *ebiten.Image // icon sheet, one row of square cells
	Prefs      *ebiten.Image
	Exit       *ebiten.Image
	Fireball   *ebiten.Image
	Ember      *ebiten.Image
}

// Image paths inside the embedded filesystem
const (
	ArchsBackPath  = "images/archs_back.png"
	ArchsFrontPath = "images/archs_front.png"
	BannerPath     = "images/banner.png"
	SignsPath      = "images/banner_signs.png"
	DashboardPath  = "images/dashboard.png"
	IconsPath      = "images/icons.png"
	FireballPath   = "images/fireball.png"
	EmberPath      = "images/ember.png"
)

// ImageLoader decodes embedded images once and caches them by path
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	img, err := l.LoadImage(path)
	if err != nil {
		panic(err)
	}
	return img
}

func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// MustLoadTitleArt loads the title screen images. The preferences and exit
// icons share one sheet of 16x16 cells.
func MustLoadTitleArt() TitleArt {
	icons := imageLoader.MustLoadImage(IconsPath)
	return TitleArt{
		ArchsBack:  imageLoader.MustLoadImage(ArchsBackPath),
		ArchsFront: imageLoader.MustLoadImage(ArchsFrontPath),
		Banner:     imageLoader.MustLoadImage(BannerPath),
		Signs:      imageLoader.MustLoadImage(SignsPath),
		Dashboard:  imageLoader.MustLoadImage(DashboardPath),
		Prefs:      cell(icons, 0, 16),
		Exit:       cell(icons, 1, 16),
		Fireball:   imageLoader.MustLoadImage(FireballPath),
		Ember:      imageLoader.MustLoadImage(EmberPath),
	}
}

func cell(sheet *ebiten.Image, index, size int) *ebiten.Image {
	x := index * size
	return sheet.SubImage(image.Rect(x, 0, x+size, size)).(*ebiten.Image)
}
