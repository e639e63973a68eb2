package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sketchpad/internal/element"
)

type fakeColorView struct{ shown string }

func (v *fakeColorView) ShowColor(c string) { v.shown = c }

type fakeWidthView struct{ shown string }

func (v *fakeWidthView) ShowWidth(s string) { v.shown = s }

func TestPaletteSelect(t *testing.T) {
	view := &fakeColorView{}
	p, err := NewPalette([]PaletteView{view}, []Swatch{{"red"}, {"blue"}}, "lawngreen")
	require.NoError(t, err)
	assert.Equal(t, "lawngreen", p.CurrentColor())
	assert.Equal(t, "lawngreen", view.shown)

	p.Select("red")
	assert.Equal(t, "red", p.CurrentColor())
	assert.Equal(t, "red", view.shown)

	// Free-form text passes through untouched.
	p.Select("not a color")
	assert.Equal(t, "not a color", p.CurrentColor())
	assert.Equal(t, "not a color", view.shown)
}

func TestPaletteSwatchesAreFixed(t *testing.T) {
	p, err := NewPalette([]PaletteView{&fakeColorView{}}, []Swatch{{"red"}}, "red")
	require.NoError(t, err)
	got := p.Swatches()
	got[0].Color = "blue"
	assert.Equal(t, []Swatch{{"red"}}, p.Swatches())
}

func TestNewPaletteNeedsOneView(t *testing.T) {
	p, err := NewPalette(nil, nil, "red")
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, element.ErrNotFound))

	p, err = NewPalette([]PaletteView{&fakeColorView{}, &fakeColorView{}}, nil, "red")
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, element.ErrAmbiguous))
}

func newLineWidth(t *testing.T) (*LineWidth, *fakeWidthView) {
	t.Helper()
	view := &fakeWidthView{}
	l, err := NewLineWidth([]WidthView{view})
	require.NoError(t, err)
	return l, view
}

func TestLineWidthValid(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"7", 7},
		{"12px", 12},
		{"100", 100},
		{" 3px ", 3},
	}
	for _, tt := range tests {
		l, view := newLineWidth(t)
		assert.Equal(t, tt.want, l.SetWidth(tt.in), tt.in)
		assert.Equal(t, tt.want, l.CurrentWidth(), tt.in)
		assert.Equal(t, formatWidth(tt.want), view.shown, tt.in)
	}
}

func TestLineWidthInvalid(t *testing.T) {
	for _, in := range []string{"0", "-3", "05", "0px", "abc", "", "1.5", "px", "3pt", "99999999999999999999999"} {
		l, view := newLineWidth(t)
		require.Equal(t, 4, l.SetWidth("4"))
		view.shown = "garbage"

		assert.Equal(t, 0, l.SetWidth(in), in)
		assert.Equal(t, 4, l.CurrentWidth(), in)
		assert.Equal(t, "4px", view.shown, in)
	}
}

func TestLineWidthStep(t *testing.T) {
	l, view := newLineWidth(t)
	assert.Equal(t, "1px", view.shown)

	assert.Equal(t, 2, l.Increase())
	assert.Equal(t, 2, l.CurrentWidth())

	assert.Equal(t, 1, l.Decrease())
	assert.Equal(t, 0, l.Decrease())
	assert.Equal(t, 1, l.CurrentWidth())
	assert.Equal(t, "1px", view.shown)

	assert.Equal(t, 0, l.SetWidthValue(-5))
	assert.Equal(t, 1, l.CurrentWidth())
}

func TestNewLineWidthNeedsOneView(t *testing.T) {
	l, err := NewLineWidth(nil)
	assert.Nil(t, l)
	assert.True(t, errors.Is(err, element.ErrNotFound))
}
