// Package painttest provides in-memory stand-ins for the host canvas.
package painttest

import (
	"Sketchpad/internal/paint"
)

type Call struct {
	Op   string
	Args []any
}

// Line is one stroked segment still visible on the recorder.
type Line struct {
	From, To    paint.Point
	Color       string
	Width       float64
	ShadowColor string
}

// Recorder is a paint.Context that remembers every call and keeps the lines
// that a real canvas would show.
type Recorder struct {
	Calls []Call
	Lines []Line

	strokeStyle string
	lineWidth   float64
	shadowColor string
	shadowBlur  float64

	cursor  paint.Point
	pending []Line
}

func NewRecorder() *Recorder {
	return &Recorder{strokeStyle: "#000000", lineWidth: 1, shadowColor: "transparent"}
}

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

// Ops lists the recorded operation names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count reports how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps the drawing state.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) BeginPath() {
	r.record("beginPath")
	r.pending = nil
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record("moveTo", x, y)
	r.cursor = paint.Point{X: x, Y: y}
}

func (r *Recorder) LineTo(x, y float64) {
	r.record("lineTo", x, y)
	to := paint.Point{X: x, Y: y}
	r.pending = append(r.pending, Line{From: r.cursor, To: to})
	r.cursor = to
}

func (r *Recorder) Stroke() {
	r.record("stroke")
	for _, l := range r.pending {
		l.Color = r.strokeStyle
		l.Width = r.lineWidth
		l.ShadowColor = r.shadowColor
		r.Lines = append(r.Lines, l)
	}
}

func (r *Recorder) ClosePath() {
	r.record("closePath")
}

func (r *Recorder) ClearRect(x, y, width, height float64) {
	r.record("clearRect", x, y, width, height)
	rect := paint.Rect{X: x, Y: y, Width: width, Height: height}
	kept := r.Lines[:0]
	for _, l := range r.Lines {
		if !paint.SegmentTouchesRect(l.From, l.To, rect) {
			kept = append(kept, l)
		}
	}
	r.Lines = kept
}

func (r *Recorder) SetStrokeStyle(color string) {
	r.record("strokeStyle", color)
	if _, ok := paint.ParseColor(color); ok {
		r.strokeStyle = color
	}
}

func (r *Recorder) StrokeStyle() string {
	return r.strokeStyle
}

func (r *Recorder) SetLineWidth(width float64) {
	r.record("lineWidth", width)
	if width > 0 {
		r.lineWidth = width
	}
}

func (r *Recorder) LineWidth() float64 {
	return r.lineWidth
}

func (r *Recorder) SetShadowColor(color string) {
	r.record("shadowColor", color)
	if _, ok := paint.ParseColor(color); ok {
		r.shadowColor = color
	}
}

func (r *Recorder) ShadowColor() string {
	return r.shadowColor
}

func (r *Recorder) SetShadowBlur(blur float64) {
	r.record("shadowBlur", blur)
	r.shadowBlur = blur
}

func (r *Recorder) ShadowBlur() float64 {
	return r.shadowBlur
}

func (r *Recorder) SetShadowOffset(x, y float64) {
	r.record("shadowOffset", x, y)
}

// Element is a movable stand-in for the surface's host element.
type Element struct {
	Rect paint.Rect
}

func (e *Element) Bounds() paint.Rect {
	return e.Rect
}

// MoveBy shifts the element within the viewport.
func (e *Element) MoveBy(dx, dy float64) {
	e.Rect.X += dx
	e.Rect.Y += dy
}
