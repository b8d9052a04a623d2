package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are the ebitenui fonts shared by every screen.
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	return faces{
		title:  &text.GoTextFace{Source: fontSource, Size: 18},
		normal: &text.GoTextFace{Source: fontSource, Size: 12},
		small:  &text.GoTextFace{Source: fontSource, Size: 10},
	}
}

var (
	textIdle     = color.RGBA{255, 255, 255, 255}
	textDim      = color.RGBA{200, 200, 200, 255}
	textDisabled = color.RGBA{100, 100, 100, 255}
	statusColor  = color.RGBA{255, 200, 100, 255}
)

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func column(spacing int, padding *widget.Insets, bg color.Color) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	}
	if bg != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)))
	}
	return widget.NewContainer(opts...)
}

func label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}))
}

// button builds a flat colored button. base is the idle background.
func button(s string, face *text.Face, w, h int, base color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, h)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(base),
			Hover:    image.NewNineSliceColor(lighten(base, 30)),
			Pressed:  image.NewNineSliceColor(lighten(base, -15)),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 46, 255}),
		}),
		widget.ButtonOpts.Text(s, face, &widget.ButtonTextColor{
			Idle:     textIdle,
			Hover:    textIdle,
			Pressed:  textDim,
			Disabled: textDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func textInput(face *text.Face, w int, placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          textIdle,
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         textIdle,
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

func lighten(c color.RGBA, d int) color.RGBA {
	ch := func(v uint8) uint8 { return uint8(min(max(int(v)+d, 0), 255)) }
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}
