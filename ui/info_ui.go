package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// InfoUI is a centred panel with a heading, a few lines of text and a
// Back button.
type InfoUI struct {
	UI *ebitenui.UI

	OnGoBack func()

	titleFace  text.Face
	normalFace text.Face
}

func NewInfoUI(title string, lines []string, onGoBack func()) *InfoUI {
	ui := &InfoUI{
		OnGoBack: onGoBack,
	}
	ui.loadFonts()
	ui.buildUI(title, lines)
	return ui
}

func (ui *InfoUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 9}
}

func (ui *InfoUI) buildUI(title string, lines []string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 16, 14, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 68, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, line := range lines {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{220, 220, 220, 255},
			}),
		))
	}

	contentContainer.AddChild(ui.buildBackButton())
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *InfoUI) buildBackButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 18)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 50, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 70, 55, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 32, 26, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	)
}

func (ui *InfoUI) Update() {
	ui.UI.Update()
}
