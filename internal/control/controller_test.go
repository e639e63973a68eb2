package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sketchpad/internal/paint"
	"Sketchpad/internal/paint/painttest"
	"Sketchpad/internal/state"
)

type colorView struct{ shown string }

func (v *colorView) ShowColor(c string) { v.shown = c }

type widthView struct{ shown string }

func (v *widthView) ShowWidth(s string) { v.shown = s }

type alerts struct{ messages []string }

func (a *alerts) Alert(m string) { a.messages = append(a.messages, m) }

type fixture struct {
	c      *Controller
	rec    *painttest.Recorder
	el     *painttest.Element
	colors *colorView
	widths *widthView
	alerts *alerts
}

func newFixture(t *testing.T, withWidth bool) *fixture {
	t.Helper()
	f := &fixture{
		rec:    painttest.NewRecorder(),
		el:     &painttest.Element{Rect: paint.Rect{X: 0, Y: 0, Width: 800, Height: 400}},
		colors: &colorView{},
		widths: &widthView{},
		alerts: &alerts{},
	}
	surface, err := paint.NewSurface([]paint.Element{f.el}, f.rec, paint.Size{Width: 800, Height: 400})
	require.NoError(t, err)
	palette, err := state.NewPalette([]state.PaletteView{f.colors}, []state.Swatch{{Color: "red"}}, "lawngreen")
	require.NoError(t, err)

	var width *state.LineWidth
	if withWidth {
		width, err = state.NewLineWidth([]state.WidthView{f.widths})
		require.NoError(t, err)
	}
	f.c, err = New(surface, palette, width, f.alerts)
	require.NoError(t, err)
	return f
}

func at(x, y float64) paint.PointerEvent {
	return paint.PointerEvent{ClientX: x, ClientY: y}
}

func TestNewRequiresSurfaceAndPalette(t *testing.T) {
	f := newFixture(t, false)

	c, err := New(nil, f.c.palette, nil, nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNoSurface)

	c, err = New(f.c.surface, nil, nil, nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNoPalette)
}

func TestGestureDrawsSegments(t *testing.T) {
	f := newFixture(t, true)

	f.c.PointerDown(at(10, 10))
	f.c.PointerMove(at(20, 20))
	require.Len(t, f.rec.Lines, 1)
	assert.Equal(t, paint.Point{X: 10, Y: 10}, f.rec.Lines[0].From)
	assert.Equal(t, paint.Point{X: 20, Y: 20}, f.rec.Lines[0].To)

	f.c.PointerUp(at(20, 20))
	f.c.PointerMove(at(30, 30))
	assert.Len(t, f.rec.Lines, 1)
	assert.Equal(t, Idle, f.c.gesture.State())
}

func TestGestureUsesSurfaceCoordinates(t *testing.T) {
	f := newFixture(t, true)
	f.el.Rect.X, f.el.Rect.Y = 100, 50

	f.c.PointerDown(at(110, 60))
	f.el.MoveBy(0, -20) // page scrolled mid-gesture
	f.c.PointerMove(at(120, 50))

	require.Len(t, f.rec.Lines, 1)
	assert.Equal(t, paint.Point{X: 10, Y: 10}, f.rec.Lines[0].From)
	assert.Equal(t, paint.Point{X: 20, Y: 20}, f.rec.Lines[0].To)
}

func TestPointerLeaveEndsGesture(t *testing.T) {
	f := newFixture(t, true)

	f.c.PointerDown(at(10, 10))
	f.c.PointerMove(at(15, 15))
	f.c.PointerLeave()
	// re-entering with the button still down
	f.c.PointerMove(at(300, 300))

	assert.Len(t, f.rec.Lines, 1)
	assert.Equal(t, Idle, f.c.gesture.State())
}

func TestSwitchColor(t *testing.T) {
	f := newFixture(t, true)
	assert.Equal(t, "lawngreen", f.colors.shown)

	f.c.SwitchColor("red")
	assert.Equal(t, "red", f.c.palette.CurrentColor())
	assert.Equal(t, "red", f.colors.shown)

	f.c.PointerDown(at(0, 0))
	f.c.PointerMove(at(5, 5))
	require.Len(t, f.rec.Lines, 1)
	assert.Equal(t, "red", f.rec.Lines[0].Color)
	assert.Equal(t, "red", f.rec.Lines[0].ShadowColor)
}

func TestSubmitColor(t *testing.T) {
	f := newFixture(t, true)

	f.c.SubmitColor("")
	assert.Equal(t, "lawngreen", f.c.palette.CurrentColor())

	f.c.SubmitColor("#1e90ff")
	assert.Equal(t, "#1e90ff", f.c.palette.CurrentColor())
	assert.Equal(t, "#1e90ff", f.rec.StrokeStyle())

	// Unknown colors are shown as typed but the surface keeps drawing in the old one.
	f.c.SubmitColor("blurple")
	assert.Equal(t, "blurple", f.colors.shown)
	assert.Equal(t, "#1e90ff", f.rec.StrokeStyle())
	assert.Empty(t, f.alerts.messages)
}

func TestSetLineWidth(t *testing.T) {
	f := newFixture(t, true)

	assert.True(t, f.c.SetLineWidth("6px"))
	assert.Equal(t, float64(6), f.rec.LineWidth())
	assert.Equal(t, "6px", f.widths.shown)
	assert.Equal(t, 6, f.c.surface.Style().Width)

	assert.False(t, f.c.SetLineWidth("06"))
	assert.Equal(t, float64(6), f.rec.LineWidth())
	assert.Equal(t, "6px", f.widths.shown)
	assert.Equal(t, []string{widthAlert}, f.alerts.messages)
}

func TestStepWidth(t *testing.T) {
	f := newFixture(t, true)

	f.c.IncreaseWidth()
	f.c.IncreaseWidth()
	assert.Equal(t, "3px", f.widths.shown)
	assert.Equal(t, float64(3), f.rec.LineWidth())

	f.c.DecreaseWidth()
	f.c.DecreaseWidth()
	assert.Empty(t, f.alerts.messages)
	f.c.DecreaseWidth()
	assert.Equal(t, "1px", f.widths.shown)
	assert.Equal(t, float64(1), f.rec.LineWidth())
	assert.Equal(t, []string{widthAlert}, f.alerts.messages)
}

func TestWithoutWidthControl(t *testing.T) {
	f := newFixture(t, false)

	assert.False(t, f.c.SetLineWidth("4"))
	f.c.IncreaseWidth()
	f.c.DecreaseWidth()
	assert.Equal(t, 1, f.c.surface.Style().Width)
	assert.Empty(t, f.alerts.messages)
}

func TestClear(t *testing.T) {
	f := newFixture(t, true)
	f.c.PointerDown(at(1, 1))
	f.c.PointerMove(at(2, 2))
	f.c.PointerMove(at(3, 3))
	require.Len(t, f.rec.Lines, 2)

	f.c.Clear()
	assert.Empty(t, f.rec.Lines)
	assert.Equal(t, 1, f.rec.Count("clearRect"))
}

func TestClearErasesStrokeLeavingSurface(t *testing.T) {
	f := newFixture(t, true)
	f.c.PointerDown(at(790, 200))
	f.c.PointerMove(at(801, 200))
	require.Len(t, f.rec.Lines, 1)

	f.c.Clear()
	assert.Empty(t, f.rec.Lines)
}
