// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/widgetcollection/giox/anim"
	"github.com/widgetcollection/giox/flow"
	"github.com/widgetcollection/giox/internal/colorutil"
	"github.com/widgetcollection/giox/particle"
)

// Config is the demo configuration. Every key is optional; missing keys
// keep their DefaultConfig value.
type Config struct {
	Window    WindowConfig    `toml:"window"`
	Flow      FlowConfig      `toml:"flow"`
	Particles ParticlesConfig `toml:"particles"`
}

type WindowConfig struct {
	Title string `toml:"title"`
	// Width and Height are in dp.
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type FlowConfig struct {
	// Orientation is "row" or "column".
	Orientation string `toml:"orientation"`
	// Alignment is "start", "center" or "end".
	Alignment    string   `toml:"alignment"`
	MainSpacing  float32  `toml:"main_spacing"`
	CrossSpacing float32  `toml:"cross_spacing"`
	Items        []string `toml:"items"`
}

type ParticlesConfig struct {
	InnerRadius float32 `toml:"inner_radius"`
	// Color is an SVG colour name or a #rrggbb[aa] hex triplet.
	Color    string   `toml:"color"`
	Count    int      `toml:"count"`
	Interval Duration `toml:"interval"`
	// Cycle is the period of the progress ring. Particle speed does not
	// depend on it.
	Cycle Duration `toml:"cycle"`
	// Seed of the random source. Zero seeds from the clock.
	Seed uint64 `toml:"seed"`
}

// Duration is a time.Duration written as a Go duration string such as
// "16ms".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Widget collection",
			Width:  480,
			Height: 800,
		},
		Flow: FlowConfig{
			Orientation:  "row",
			Alignment:    "center",
			MainSpacing:  8,
			CrossSpacing: 8,
			Items: []string{
				"layout", "flow", "wrap", "particles", "card",
				"marker", "triangle", "linear", "shadow", "gio",
			},
		},
		Particles: ParticlesConfig{
			Color:    "white",
			Count:    particle.DefaultCount,
			Interval: Duration{anim.DefaultInterval},
			Cycle:    Duration{anim.DefaultCycle},
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults and
// validates the result. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("widgetdemo: load config: %w", err)
	}
	var errs []error
	for _, k := range md.Undecoded() {
		errs = append(errs, fmt.Errorf("unknown key %q", k.String()))
	}
	if err := errors.Join(append(errs, cfg.Validate())...); err != nil {
		return Config{}, fmt.Errorf("widgetdemo: invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig encodes cfg as TOML.
func WriteConfig(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("widgetdemo: write config: %w", err)
	}
	return nil
}

// Validate reports every invalid value in c.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %vx%v must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := c.Flow.orientation(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Flow.alignment(); err != nil {
		errs = append(errs, err)
	}
	if c.Flow.MainSpacing < 0 || c.Flow.CrossSpacing < 0 {
		errs = append(errs, errors.New("flow: spacing must not be negative"))
	}
	p := c.Particles
	if p.InnerRadius < 0 {
		errs = append(errs, errors.New("particles: inner_radius must not be negative"))
	}
	if p.Count < 0 {
		errs = append(errs, errors.New("particles: count must not be negative"))
	}
	if p.Interval.Duration < 0 || p.Cycle.Duration < 0 {
		errs = append(errs, errors.New("particles: interval and cycle must not be negative"))
	}
	if _, err := p.color(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (f FlowConfig) orientation() (flow.Orientation, error) {
	switch strings.ToLower(f.Orientation) {
	case "row", "":
		return flow.RowWrap, nil
	case "column":
		return flow.ColumnWrap, nil
	}
	return 0, fmt.Errorf("flow: unknown orientation %q", f.Orientation)
}

func (f FlowConfig) alignment() (flow.Alignment, error) {
	switch strings.ToLower(f.Alignment) {
	case "center", "":
		return flow.Center, nil
	case "start":
		return flow.Start, nil
	case "end":
		return flow.End, nil
	}
	return 0, fmt.Errorf("flow: unknown alignment %q", f.Alignment)
}

func (p ParticlesConfig) color() (color.NRGBA, error) {
	c, err := colorutil.Parse(p.Color)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("particles: %w", err)
	}
	return c, nil
}

// seed returns the configured seed, or one derived from now.
func (p ParticlesConfig) seed(now time.Time) uint64 {
	if p.Seed != 0 {
		return p.Seed
	}
	return uint64(now.UnixNano())
}
