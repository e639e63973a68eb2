package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"Sketchpad/internal/paint"
	"Sketchpad/internal/state"
)

// --- Color swatch tile ---
type colorSwatch struct {
	widget.BaseWidget
	Color    string
	OnTapped func(string)
	fill     *canvas.Rectangle
}

func newColorSwatch(c string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{OnTapped: tapped, fill: canvas.NewRectangle(color.Transparent)}
	s.fill.SetMinSize(fyne.NewSize(28, 28))
	s.SetColor(c)
	s.ExtendBaseWidget(s)
	return s
}

// SetColor repaints the tile. Colors that do not parse leave the fill as it was.
func (s *colorSwatch) SetColor(c string) {
	s.Color = c
	if fill, ok := paint.ParseColor(c); ok {
		s.fill.FillColor = fill
		s.fill.Refresh()
	}
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.fill, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- Entry that reports focus ---
type focusEntry struct {
	widget.Entry
	onFocus func()
}

func newFocusEntry(onFocus func()) *focusEntry {
	e := &focusEntry{onFocus: onFocus}
	e.ExtendBaseWidget(e)
	return e
}

func (e *focusEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.onFocus != nil {
		e.onFocus()
	}
}

// currentColorView is the palette's "current color" slot.
type currentColorView struct {
	indicator *colorSwatch
	input     *focusEntry
}

var _ state.PaletteView = (*currentColorView)(nil)

func (v *currentColorView) ShowColor(c string) {
	v.indicator.SetColor(c)
	v.input.SetText(c)
}

type widthView struct {
	input *focusEntry
}

var _ state.WidthView = (*widthView)(nil)

func (v *widthView) ShowWidth(text string) {
	v.input.SetText(text)
}

// --- The main toolbar ---
func newToolbar(p *painter, swatches []state.Swatch) fyne.CanvasObject {
	colorBox := container.NewHBox()
	for _, s := range swatches {
		tile := newColorSwatch(s.Color, func(c string) { p.ctrl.SwitchColor(c) })
		p.swatches = append(p.swatches, tile)
		colorBox.Add(tile)
	}

	p.colorInput.SetPlaceHolder("color")
	p.colorInput.OnSubmitted = func(text string) { p.ctrl.SubmitColor(text) }
	colorInput := container.New(layout.NewGridWrapLayout(fyne.NewSize(130, 36)), p.colorInput)

	p.widthInput.OnSubmitted = func(text string) { p.ctrl.SubmitWidth(text) }
	p.decrease = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() { p.ctrl.DecreaseWidth() })
	p.increase = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() { p.ctrl.IncreaseWidth() })
	widthInput := container.New(layout.NewGridWrapLayout(fyne.NewSize(70, 36)), p.widthInput)

	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() { p.ctrl.Clear() })

	return container.NewHBox(
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		p.indicator,
		colorInput,
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		p.decrease,
		widthInput,
		p.increase,
		layout.NewSpacer(),
		clearBtn,
	)
}
