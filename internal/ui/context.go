package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"Sketchpad/internal/paint"
)

// glowAlpha scales the shadow color of the halo drawn under each stroke.
const glowAlpha = 0.35

var _ paint.Context = (*canvasContext)(nil)

// canvasContext draws immediate-mode paths as fyne line objects.
type canvasContext struct {
	mu      sync.RWMutex
	objects []fyne.CanvasObject

	strokeName string
	stroke     color.NRGBA
	width      float32
	shadowName string
	shadow     color.NRGBA
	blur       float32
	offset     fyne.Position

	cursor  fyne.Position
	pending [][2]fyne.Position

	onChange func()
}

func newCanvasContext(onChange func()) *canvasContext {
	return &canvasContext{
		strokeName: "#000000",
		stroke:     color.NRGBA{A: 0xff},
		width:      1,
		shadowName: "transparent",
		onChange:   onChange,
	}
}

func (c *canvasContext) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Objects returns a snapshot of the drawn lines, bottom first.
func (c *canvasContext) Objects() []fyne.CanvasObject {
	c.mu.RLock()
	defer c.mu.RUnlock()
	objects := make([]fyne.CanvasObject, len(c.objects))
	copy(objects, c.objects)
	return objects
}

func (c *canvasContext) BeginPath() {
	c.pending = nil
}

func (c *canvasContext) MoveTo(x, y float64) {
	c.cursor = fyne.NewPos(float32(x), float32(y))
}

func (c *canvasContext) LineTo(x, y float64) {
	to := fyne.NewPos(float32(x), float32(y))
	c.pending = append(c.pending, [2]fyne.Position{c.cursor, to})
	c.cursor = to
}

func (c *canvasContext) Stroke() {
	if len(c.pending) == 0 {
		return
	}

	c.mu.Lock()
	for _, seg := range c.pending {
		if c.blur > 0 && c.shadow.A > 0 {
			halo := c.shadow
			halo.A = uint8(float32(halo.A) * glowAlpha)
			glow := canvas.NewLine(halo)
			glow.StrokeWidth = c.width + c.blur/2
			glow.Position1 = seg[0].Add(c.offset)
			glow.Position2 = seg[1].Add(c.offset)
			c.objects = append(c.objects, glow)
		}

		line := canvas.NewLine(c.stroke)
		line.StrokeWidth = c.width
		line.Position1 = seg[0]
		line.Position2 = seg[1]
		c.objects = append(c.objects, line)
	}
	c.mu.Unlock()

	c.changed()
}

// ClosePath does nothing for open polylines once they are stroked.
func (c *canvasContext) ClosePath() {}

func (c *canvasContext) ClearRect(x, y, width, height float64) {
	r := paint.Rect{X: x, Y: y, Width: width, Height: height}
	point := func(p fyne.Position) paint.Point {
		return paint.Point{X: float64(p.X), Y: float64(p.Y)}
	}

	// Lines are whole objects: any line reaching into r goes.
	c.mu.Lock()
	kept := make([]fyne.CanvasObject, 0, len(c.objects))
	for _, o := range c.objects {
		if l, ok := o.(*canvas.Line); ok && paint.SegmentTouchesRect(point(l.Position1), point(l.Position2), r) {
			continue
		}
		kept = append(kept, o)
	}
	c.objects = kept
	c.mu.Unlock()

	c.changed()
}

func (c *canvasContext) SetStrokeStyle(name string) {
	if col, ok := paint.ParseColor(name); ok {
		c.strokeName, c.stroke = name, col
	}
}

func (c *canvasContext) StrokeStyle() string {
	return c.strokeName
}

func (c *canvasContext) SetLineWidth(width float64) {
	if width > 0 {
		c.width = float32(width)
	}
}

func (c *canvasContext) SetShadowColor(name string) {
	if col, ok := paint.ParseColor(name); ok {
		c.shadowName, c.shadow = name, col
	}
}

func (c *canvasContext) SetShadowBlur(blur float64) {
	if blur >= 0 {
		c.blur = float32(blur)
	}
}

func (c *canvasContext) SetShadowOffset(x, y float64) {
	c.offset = fyne.NewPos(float32(x), float32(y))
}
