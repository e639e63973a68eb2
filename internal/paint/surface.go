package paint

import (
	"errors"
	"fmt"
	"log"

	"Sketchpad/internal/element"
)

var ErrNoContext = errors.New("surface has no drawing context")

// Surface draws line segments onto a single host element.
type Surface struct {
	el    Element
	ctx   Context
	size  Size
	style StrokeStyle
}

// NewSurface binds a surface to the one element in matches. It fails when the
// element is missing or ambiguous, leaving no surface to draw on.
func NewSurface(matches []Element, ctx Context, size Size) (*Surface, error) {
	el, err := element.Single("drawing surface", matches)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		return nil, fmt.Errorf("drawing surface: %w", ErrNoContext)
	}

	s := &Surface{el: el, ctx: ctx}
	s.initialize(size)
	return s, nil
}

func (s *Surface) initialize(size Size) {
	s.size = size
	s.SetStrokeStyle(DefaultStrokeStyle)
	s.ctx.SetShadowBlur(GlowBlur)
	s.ctx.SetShadowOffset(0, 0)
	log.Printf("[SURFACE] Initialized %.0fx%.0f, color %s, width %d",
		size.Width, size.Height, s.style.Color, s.style.Width)
}

// SetStrokeStyle applies style to the context. The glow follows whatever color
// the context actually accepted.
func (s *Surface) SetStrokeStyle(style StrokeStyle) {
	s.ctx.SetStrokeStyle(style.Color)
	s.ctx.SetShadowColor(s.ctx.StrokeStyle())
	s.ctx.SetLineWidth(float64(style.Width))
	s.style = StrokeStyle{Color: s.ctx.StrokeStyle(), Width: style.Width}
}

// SetGlow turns the soft shadow around strokes on or off.
func (s *Surface) SetGlow(on bool) {
	if on {
		s.ctx.SetShadowBlur(GlowBlur)
		return
	}
	s.ctx.SetShadowBlur(0)
}

// Style returns the style currently applied to the context.
func (s *Surface) Style() StrokeStyle {
	return s.style
}

// DrawSegment strokes from→to as its own path.
func (s *Surface) DrawSegment(from, to Point) {
	s.ctx.BeginPath()
	s.ctx.MoveTo(from.X, from.Y)
	s.ctx.LineTo(to.X, to.Y)
	s.ctx.Stroke()
	s.ctx.ClosePath()
}

// Clear erases everything drawn so far.
func (s *Surface) Clear() {
	s.ctx.ClearRect(0, 0, s.size.Width, s.size.Height)
}

// PointerPositionFor converts a viewport position to surface coordinates.
// The element's bounds are read on every call since layout can move it.
func (s *Surface) PointerPositionFor(ev PointerEvent) Point {
	r := s.el.Bounds()
	return Point{X: ev.ClientX - r.X, Y: ev.ClientY - r.Y}
}
