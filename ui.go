package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PlanetUICallbacks is how the creator panel talks back to the host. The
// panel never touches the store directly.
type PlanetUICallbacks struct {
	OnSpawn        func()
	OnRemove       func(index int)
	OnFocus        func(index int)
	OnSpawnOnClick func(enabled bool)
}

// BuildPlanetUI assembles the "Planet Creator" panel: spawn parameter
// sliders, spawn controls, and the live body list.
func BuildPlanetUI(params *SpawnParams, cb PlanetUICallbacks) (*ebitenui.UI, *BodyPanel) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newPlanetTheme(&fontFace)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(ui.PrimaryTheme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(300, baseHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchVertical:    true,
			}),
		),
	)

	title := widget.NewText(
		widget.TextOpts.Text("Planet Creator", &fontFace, color.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	panel.AddChild(title)

	addParamsSection(panel, ui.PrimaryTheme, &fontFace, params)
	addSpawnSection(panel, ui.PrimaryTheme, &fontFace, cb)
	bodyPanel := addBodiesSection(panel, ui.PrimaryTheme, &fontFace, cb)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	ui.Container = root
	return ui, bodyPanel
}

func addSpawnSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, cb PlanetUICallbacks) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	spawnBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Spawn", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cb.OnSpawn != nil {
				cb.OnSpawn()
			}
		}),
	)
	row.AddChild(spawnBtn)

	spawnOnClick := false
	var clickBtn *widget.Button
	clickBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Spawn on click: Off", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			spawnOnClick = !spawnOnClick
			label := "Spawn on click: Off"
			if spawnOnClick {
				label = "Spawn on click: On"
			}
			if txt := clickBtn.Text(); txt != nil {
				txt.Label = label
			}
			if cb.OnSpawnOnClick != nil {
				cb.OnSpawnOnClick(spawnOnClick)
			}
		}),
	)
	row.AddChild(clickBtn)

	parent.AddChild(row)
}
