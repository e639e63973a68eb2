package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"Sketchpad/internal/config"
	"Sketchpad/internal/control"
	"Sketchpad/internal/paint"
	"Sketchpad/internal/state"
)

// painter holds the widgets of one drawing window and the controller behind them.
type painter struct {
	board      *BoardWidget
	ctrl       *control.Controller
	swatches   []*colorSwatch
	indicator  *colorSwatch
	colorInput *focusEntry
	widthInput *focusEntry
	increase   *widget.Button
	decrease   *widget.Button
	help       *helpPanels
	content    fyne.CanvasObject
}

func newPainter(cfg config.Config, notifier control.Notifier) (*painter, error) {
	p := &painter{help: newHelpPanels()}

	p.board = NewBoardWidget(fyne.NewSize(float32(cfg.Surface.Width), float32(cfg.Surface.Height)))
	surface, err := paint.NewSurface([]paint.Element{p.board}, p.board.Context(),
		paint.Size{Width: cfg.Surface.Width, Height: cfg.Surface.Height})
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	surface.SetGlow(cfg.Surface.Glow)

	style := cfg.StrokeStyle()
	p.indicator = newColorSwatch(style.Color, nil)
	p.colorInput = newFocusEntry(func() { p.help.Show(helpColor) })
	palette, err := state.NewPalette(
		[]state.PaletteView{&currentColorView{indicator: p.indicator, input: p.colorInput}},
		cfg.Swatches, style.Color)
	if err != nil {
		return nil, fmt.Errorf("create palette: %w", err)
	}

	p.widthInput = newFocusEntry(func() { p.help.Show(helpLineWidth) })
	width, err := state.NewLineWidth([]state.WidthView{&widthView{input: p.widthInput}})
	if err != nil {
		return nil, fmt.Errorf("create line width: %w", err)
	}
	width.SetWidthValue(style.Width)

	p.ctrl, err = control.New(surface, palette, width, notifier)
	if err != nil {
		return nil, fmt.Errorf("create controller: %w", err)
	}
	p.board.SetHandler(p.ctrl)

	toolbar := newToolbar(p, palette.Swatches())
	p.content = container.NewBorder(toolbar, p.help.Content(), nil, nil, container.NewCenter(p.board))
	return p, nil
}

// windowNotifier shows alerts as dialogs over the window.
type windowNotifier struct {
	win fyne.Window
}

func (n windowNotifier) Alert(message string) {
	dialog.ShowInformation("Sketchpad", message, n.win)
}

func RunApp(cfg config.Config) error {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(1024, 768))

	p, err := newPainter(cfg, windowNotifier{win: myWindow})
	if err != nil {
		return err
	}
	log.Printf("[UI] Drawing surface ready, %d swatches", len(p.swatches))

	myWindow.SetContent(p.content)
	myWindow.ShowAndRun()
	return nil
}
