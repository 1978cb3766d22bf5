package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// addParamsSection adds the spawn parameter sliders. Slider ranges keep
// mass and radius strictly positive, so the panel can never hand the store
// an invalid body.
func addParamsSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, params *SpawnParams) {
	addSlider(parent, theme, fontFace, 1, 100, int(params.Radius),
		func(v int) string { return fmt.Sprintf("Radius: %d", v) },
		func(v int) { params.Radius = float64(v) })

	addSlider(parent, theme, fontFace, 1, 1000, int(params.Mass),
		func(v int) string { return fmt.Sprintf("Mass: %d", v) },
		func(v int) { params.Mass = float64(v) })

	addSlider(parent, theme, fontFace, -100, 100, int(params.VelX),
		func(v int) string { return fmt.Sprintf("Velocity X: %d", v) },
		func(v int) { params.VelX = float64(v) })

	addSlider(parent, theme, fontFace, -100, 100, int(params.VelY),
		func(v int) string { return fmt.Sprintf("Velocity Y: %d", v) },
		func(v int) { params.VelY = float64(v) })

	addSlider(parent, theme, fontFace, 0, 255, int(params.R),
		func(v int) string { return fmt.Sprintf("Red: %d", v) },
		func(v int) { params.R = uint8(v) })

	addSlider(parent, theme, fontFace, 0, 255, int(params.G),
		func(v int) string { return fmt.Sprintf("Green: %d", v) },
		func(v int) { params.G = uint8(v) })

	addSlider(parent, theme, fontFace, 0, 255, int(params.B),
		func(v int) string { return fmt.Sprintf("Blue: %d", v) },
		func(v int) { params.B = uint8(v) })
}

func addSlider(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, min, max, initial int, format func(v int) string, onChange func(v int)) {
	valueText := widget.NewText(
		widget.TextOpts.Text(format(initial), fontFace, color.White),
	)
	parent.AddChild(valueText)

	slider := widget.NewSlider(
		widget.SliderOpts.Orientation(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(min, max),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 16)),
		widget.SliderOpts.Images(theme.SliderTheme.TrackImage, theme.SliderTheme.HandleImage),
		widget.SliderOpts.FixedHandleSize(8),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int { return 1 }),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			valueText.Label = format(args.Current)
			if onChange != nil {
				onChange(args.Current)
			}
		}),
	)
	slider.Current = initial
	parent.AddChild(slider)
}
