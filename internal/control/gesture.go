package control

import (
	"github.com/google/uuid"

	"Sketchpad/internal/paint"
)

type GestureState int

const (
	Idle GestureState = iota
	Drawing
)

func (s GestureState) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Gesture tracks one press-to-release stroke.
type Gesture struct {
	state    GestureState
	last     paint.Point
	id       string
	segments int
}

func (g *Gesture) State() GestureState {
	return g.state
}

// ID identifies the current gesture; empty while idle.
func (g *Gesture) ID() string {
	return g.id
}

// Down starts a gesture at p. A press during a gesture starts a new one.
func (g *Gesture) Down(p paint.Point) {
	g.state = Drawing
	g.last = p
	g.id = uuid.NewString()
	g.segments = 0
}

// Move advances the stroke to p and returns the segment to draw. Nothing is
// returned while idle.
func (g *Gesture) Move(p paint.Point) (from paint.Point, ok bool) {
	if g.state != Drawing {
		return paint.Point{}, false
	}
	from = g.last
	g.last = p
	g.segments++
	return from, true
}

// End finishes the gesture and reports how many segments it drew. It is a
// no-op while idle.
func (g *Gesture) End() (segments int, ended bool) {
	if g.state != Drawing {
		return 0, false
	}
	segments = g.segments
	*g = Gesture{}
	return segments, true
}
