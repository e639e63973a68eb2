package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	helpColor     = "color"
	helpLineWidth = "line-width"
)

var helpTexts = []struct{ kind, text string }{
	{helpColor, "Type a color name, #rrggbb or rgb(r, g, b) and press Enter."},
	{helpLineWidth, "Type a width in pixels, e.g. 4 or 4px, and press Enter."},
}

type helpPanel struct {
	box       *fyne.Container
	dismissed bool
}

// helpPanels are hints shown the first time an input is focused. Closing one
// removes it for the rest of the session.
type helpPanels struct {
	panels map[string]*helpPanel
	list   *fyne.Container
}

func newHelpPanels() *helpPanels {
	h := &helpPanels{panels: make(map[string]*helpPanel), list: container.NewVBox()}
	for _, t := range helpTexts {
		kind := t.kind
		label := widget.NewLabel(t.text)
		label.Wrapping = fyne.TextWrapWord
		closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), func() { h.Dismiss(kind) })
		box := container.NewBorder(nil, nil, nil, closeBtn, label)
		box.Hide()

		h.panels[kind] = &helpPanel{box: box}
		h.list.Add(box)
	}
	return h
}

func (h *helpPanels) Show(kind string) {
	p, ok := h.panels[kind]
	if !ok || p.dismissed {
		return
	}
	p.box.Show()
}

func (h *helpPanels) Dismiss(kind string) {
	p, ok := h.panels[kind]
	if !ok {
		return
	}
	p.dismissed = true
	p.box.Hide()
}

func (h *helpPanels) Visible(kind string) bool {
	p, ok := h.panels[kind]
	return ok && p.box.Visible()
}

func (h *helpPanels) Content() fyne.CanvasObject {
	return h.list
}
