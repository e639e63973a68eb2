package paint

// Point is a position in surface pixels, relative to the surface's top-left corner.
type Point struct {
	X, Y float64
}

// StrokeStyle is applied to every segment drawn until it is changed.
type StrokeStyle struct {
	Color string
	Width int
}

// DefaultStrokeStyle is what a fresh surface draws with.
var DefaultStrokeStyle = StrokeStyle{Color: "lawngreen", Width: 1}

// GlowBlur is the shadow blur radius of the line glow.
const GlowBlur = 20

type Size struct {
	Width, Height float64
}

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// PointerEvent carries the viewport position of a mouse event.
type PointerEvent struct {
	ClientX, ClientY float64
}
