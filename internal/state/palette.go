package state

import (
	"log"

	"Sketchpad/internal/element"
)

// Swatch is a predefined selectable color.
type Swatch struct {
	Color string `toml:"color"`
}

// PaletteView is the "current color" slot: an indicator tile and a text input.
type PaletteView interface {
	ShowColor(color string)
}

// Palette holds the fixed swatches and the color currently selected.
type Palette struct {
	view     PaletteView
	swatches []Swatch
	current  string
}

// NewPalette binds a palette to its current-color slot. The slot must be
// unique.
func NewPalette(views []PaletteView, swatches []Swatch, initial string) (*Palette, error) {
	view, err := element.Single("palette", views)
	if err != nil {
		return nil, err
	}

	p := &Palette{
		view:     view,
		swatches: append([]Swatch(nil), swatches...),
	}
	p.Select(initial)
	return p, nil
}

// Select makes color current. Any text is accepted; whoever renders it
// decides what an unknown color looks like.
func (p *Palette) Select(color string) {
	p.current = color
	p.view.ShowColor(color)
	log.Printf("[PALETTE] Current color: %s", color)
}

func (p *Palette) CurrentColor() string {
	return p.current
}

func (p *Palette) Swatches() []Swatch {
	return append([]Swatch(nil), p.swatches...)
}
