package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/kepler27b/planets/physics"
)

// BodyEntry is a row in the body list. Index is the store index; the list
// shows the newest body first.
type BodyEntry struct {
	Index  int
	Mass   float64
	Radius float64
}

// BodyPanel holds the list widget plus the selection state the Remove
// button acts on.
type BodyPanel struct {
	list    *widget.List
	entries []any

	selected int
	// suppressEvents, when true, keeps programmatic list population from
	// being treated as user selections.
	suppressEvents bool
}

// SetBodies repopulates the list from the store's bodies, newest first.
func (bp *BodyPanel) SetBodies(bodies []*physics.Body) {
	if bp == nil || bp.list == nil {
		return
	}
	bp.suppressEvents = true
	entries := make([]any, 0, len(bodies))
	for i := len(bodies) - 1; i >= 0; i-- {
		entries = append(entries, BodyEntry{Index: i, Mass: bodies[i].Mass, Radius: bodies[i].Radius})
	}
	bp.entries = entries
	bp.list.SetEntries(entries)
	bp.selected = -1
	bp.suppressEvents = false
}

func addBodiesSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, cb PlanetUICallbacks) *BodyPanel {
	bodiesLabel := widget.NewLabel(
		widget.LabelOpts.Text("Planets", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	parent.AddChild(bodiesLabel)

	panel := &BodyPanel{selected: -1}

	bodyList := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(BodyEntry); ok {
				return fmt.Sprintf("Planet %d  mass %g  radius %g", entry.Index+1, entry.Mass, entry.Radius)
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(BodyEntry)
			if !ok {
				return
			}
			panel.selected = entry.Index
			if panel.suppressEvents {
				return
			}
			if cb.OnFocus != nil {
				cb.OnFocus(entry.Index)
			}
		}),
	)
	parent.AddChild(bodyList)
	panel.list = bodyList

	removeBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Remove", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if panel.selected < 0 || cb.OnRemove == nil {
				return
			}
			cb.OnRemove(panel.selected)
		}),
	)
	parent.AddChild(removeBtn)

	return panel
}
