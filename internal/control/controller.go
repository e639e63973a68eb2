package control

import (
	"errors"
	"log"

	"Sketchpad/internal/paint"
	"Sketchpad/internal/state"
)

const widthAlert = "Please input a number greater than 0."

var (
	ErrNoSurface = errors.New("controller needs a drawing surface")
	ErrNoPalette = errors.New("controller needs a palette")
)

// Notifier shows a blocking message to the user.
type Notifier interface {
	Alert(message string)
}

// Controller turns user input into changes on the palette, the width control
// and the surface, keeping the three consistent.
type Controller struct {
	surface  *paint.Surface
	palette  *state.Palette
	width    *state.LineWidth
	notifier Notifier
	gesture  Gesture
}

// New wires the components together. The width control is optional; without
// it the width operations do nothing.
func New(surface *paint.Surface, palette *state.Palette, width *state.LineWidth, notifier Notifier) (*Controller, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if palette == nil {
		return nil, ErrNoPalette
	}

	c := &Controller{
		surface:  surface,
		palette:  palette,
		width:    width,
		notifier: notifier,
	}
	// Bring the surface in line with whatever the controls show.
	style := surface.Style()
	style.Color = palette.CurrentColor()
	if width != nil {
		style.Width = width.CurrentWidth()
	}
	surface.SetStrokeStyle(style)
	return c, nil
}

// SwitchColor selects color on the palette and draws with it from now on.
func (c *Controller) SwitchColor(color string) {
	style := c.surface.Style()
	style.Color = color
	c.surface.SetStrokeStyle(style)
	c.palette.Select(color)
}

// SubmitColor handles a confirmed color text input. Empty input is ignored.
func (c *Controller) SubmitColor(text string) {
	if text == "" {
		return
	}
	c.SwitchColor(text)
}

// SetLineWidth applies input to the width control and the surface. Rejected
// input is reported to the user.
func (c *Controller) SetLineWidth(input string) bool {
	if c.width == nil {
		return false
	}
	return c.applyWidth(c.width.SetWidth(input), input)
}

func (c *Controller) SubmitWidth(text string) {
	c.SetLineWidth(text)
}

func (c *Controller) IncreaseWidth() {
	if c.width == nil {
		return
	}
	c.applyWidth(c.width.Increase(), "+1")
}

func (c *Controller) DecreaseWidth() {
	if c.width == nil {
		return
	}
	c.applyWidth(c.width.Decrease(), "-1")
}

// applyWidth hands an accepted width to the surface. A zero width means the
// control rejected the change and the user is told.
func (c *Controller) applyWidth(w int, input string) bool {
	if w <= 0 {
		log.Printf("[CONTROL] Rejected line width %q", input)
		if c.notifier != nil {
			c.notifier.Alert(widthAlert)
		}
		return false
	}

	style := c.surface.Style()
	style.Width = w
	c.surface.SetStrokeStyle(style)
	return true
}

func (c *Controller) Clear() {
	c.surface.Clear()
	log.Println("[CONTROL] Surface cleared")
}

func (c *Controller) PointerDown(ev paint.PointerEvent) {
	c.gesture.Down(c.surface.PointerPositionFor(ev))
}

func (c *Controller) PointerMove(ev paint.PointerEvent) {
	if c.gesture.State() != Drawing {
		return
	}
	to := c.surface.PointerPositionFor(ev)
	if from, ok := c.gesture.Move(to); ok {
		c.surface.DrawSegment(from, to)
	}
}

func (c *Controller) PointerUp(paint.PointerEvent) {
	c.endGesture("released")
}

// PointerLeave ends the gesture so that re-entering with the button still held
// does not draw a line from where the pointer left.
func (c *Controller) PointerLeave() {
	c.endGesture("left surface")
}

func (c *Controller) endGesture(reason string) {
	id := c.gesture.ID()
	if n, ok := c.gesture.End(); ok {
		log.Printf("[CONTROL] Gesture %s %s after %d segments", id, reason, n)
	}
}
