package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"

	"Sketchpad/internal/paint"
	"Sketchpad/internal/state"
)

type Surface struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Glow   bool    `toml:"glow"`
}

type Stroke struct {
	Color string `toml:"color"`
	Width int    `toml:"width"`
}

// Config is the fixed setup of the drawing window.
type Config struct {
	Title    string         `toml:"title"`
	Surface  Surface        `toml:"surface"`
	Stroke   Stroke         `toml:"stroke"`
	Swatches []state.Swatch `toml:"swatch"`
}

func Default() Config {
	return Config{
		Title: "Sketchpad",
		Surface: Surface{
			Width:  800,
			Height: 384,
			Glow:   true,
		},
		Stroke: Stroke{
			Color: paint.DefaultStrokeStyle.Color,
			Width: paint.DefaultStrokeStyle.Width,
		},
		Swatches: []state.Swatch{
			{Color: "black"},
			{Color: "white"},
			{Color: "red"},
			{Color: "orange"},
			{Color: "yellow"},
			{Color: "lawngreen"},
			{Color: "deepskyblue"},
			{Color: "blue"},
			{Color: "purple"},
		},
	}
}

// Load reads a TOML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// A file that lists swatches replaces the default set.
	cfg.Swatches = nil
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if !md.IsDefined("swatch") {
		cfg.Swatches = Default().Swatches
	}
	for _, key := range md.Undecoded() {
		log.Printf("[CONFIG] Ignoring unknown key %q in %s", key.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s: %d swatches", path, len(cfg.Swatches))
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface size %vx%v must be positive", c.Surface.Width, c.Surface.Height))
	}
	if c.Stroke.Width <= 0 {
		errs = append(errs, fmt.Errorf("stroke width %d must be positive", c.Stroke.Width))
	}
	if _, ok := paint.ParseColor(c.Stroke.Color); !ok {
		errs = append(errs, fmt.Errorf("stroke color %q is not a color", c.Stroke.Color))
	}
	if len(c.Swatches) == 0 {
		errs = append(errs, errors.New("no swatches"))
	}
	for i, s := range c.Swatches {
		if _, ok := paint.ParseColor(s.Color); !ok {
			errs = append(errs, fmt.Errorf("swatch %d: %q is not a color", i, s.Color))
		}
	}
	return errors.Join(errs...)
}

// StrokeStyle is the style the surface starts with.
func (c Config) StrokeStyle() paint.StrokeStyle {
	return paint.StrokeStyle{Color: c.Stroke.Color, Width: c.Stroke.Width}
}
