package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"Sketchpad/internal/paint"
)

var boardBackground = color.NRGBA{R: 0x1e, G: 0x1f, B: 0x26, A: 0xff}

// PointerHandler receives the board's mouse input in window coordinates.
type PointerHandler interface {
	PointerDown(paint.PointerEvent)
	PointerMove(paint.PointerEvent)
	PointerUp(paint.PointerEvent)
	PointerLeave()
}

// BoardWidget is the drawing surface element.
type BoardWidget struct {
	widget.BaseWidget
	ctx     *canvasContext
	minSize fyne.Size
	handler PointerHandler
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ paint.Element = (*BoardWidget)(nil)

func NewBoardWidget(size fyne.Size) *BoardWidget {
	b := &BoardWidget{minSize: size}
	b.ctx = newCanvasContext(b.Refresh)
	b.ExtendBaseWidget(b)
	return b
}

// Context is the drawing context backing the board.
func (b *BoardWidget) Context() paint.Context {
	return b.ctx
}

func (b *BoardWidget) SetHandler(h PointerHandler) {
	b.handler = h
}

// Bounds reports the board's rectangle in window coordinates.
func (b *BoardWidget) Bounds() paint.Rect {
	pos := b.Position()
	if a := fyne.CurrentApp(); a != nil {
		pos = a.Driver().AbsolutePositionForObject(b)
	}
	size := b.Size()
	return paint.Rect{
		X:      float64(pos.X),
		Y:      float64(pos.Y),
		Width:  float64(size.Width),
		Height: float64(size.Height),
	}
}

func pointerEvent(e *desktop.MouseEvent) paint.PointerEvent {
	return paint.PointerEvent{
		ClientX: float64(e.AbsolutePosition.X),
		ClientY: float64(e.AbsolutePosition.Y),
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && b.handler != nil {
		b.handler.PointerDown(pointerEvent(e))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && b.handler != nil {
		b.handler.PointerUp(pointerEvent(e))
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.handler != nil {
		b.handler.PointerMove(pointerEvent(e))
	}
}

func (b *BoardWidget) MouseOut() {
	if b.handler != nil {
		b.handler.PointerLeave()
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{
		board:      b,
		background: canvas.NewRectangle(boardBackground),
	}
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return append([]fyne.CanvasObject{r.background}, r.board.ctx.Objects()...)
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.minSize
}

func (r *boardWidgetRenderer) Destroy() {}
