package paint

// Context is a 2D immediate-mode drawing context.
type Context interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	ClosePath()
	ClearRect(x, y, width, height float64)

	// SetStrokeStyle ignores colors it cannot parse and keeps the previous one.
	SetStrokeStyle(color string)
	// StrokeStyle returns the color strokes are currently drawn with.
	StrokeStyle() string
	SetLineWidth(width float64)
	SetShadowColor(color string)
	SetShadowBlur(blur float64)
	SetShadowOffset(x, y float64)
}

// Element is the host element a surface draws into.
type Element interface {
	// Bounds reports where the element currently sits in the viewport.
	Bounds() Rect
}
