// Package config holds the runtime settings of a termcanvas application
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config is the full set of knobs the engine reads at startup
type Config struct {
	// FPS is the target frame rate; the frame budget is 1/FPS
	FPS float64 `yaml:"fps"`

	// HideCursor hides the terminal cursor for the session
	HideCursor bool `yaml:"hide_cursor"`

	// CellWidth is the number of terminal columns each logical cell spans
	CellWidth uint `yaml:"cell_width"`

	// Width and Height override the terminal size in blocks; zero means fill the terminal
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Backend selects the output path: "ansi" or "tcell"
	Backend string `yaml:"backend"`

	// Debug enables file logging
	Debug bool `yaml:"debug"`
}

// Default returns the baseline configuration
func Default() *Config {
	return &Config{
		FPS:        60,
		HideCursor: true,
		CellWidth:  2,
		Backend:    BackendANSI,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if !(c.FPS > 0) || c.FPS > 1000 {
		return errors.Errorf("config: fps must be in (0, 1000], got %v", c.FPS)
	}
	if c.CellWidth == 0 || c.CellWidth > 8 {
		return errors.Errorf("config: cell_width must be in [1, 8], got %d", c.CellWidth)
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("config: width and height must not be negative, got %dx%d", c.Width, c.Height)
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return errors.Errorf("config: unknown backend %q", c.Backend)
	}
	return nil
}

// FrameBudget returns the time allotted to one frame
func (c *Config) FrameBudget() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

// WithFPS sets the target frame rate
func (c *Config) WithFPS(fps float64) *Config {
	c.FPS = fps
	return c
}

// WithCellWidth sets the replication factor of each block
func (c *Config) WithCellWidth(w uint) *Config {
	c.CellWidth = w
	return c
}

// WithHideCursor toggles cursor hiding
func (c *Config) WithHideCursor(hide bool) *Config {
	c.HideCursor = hide
	return c
}

// WithSize fixes the grid size in blocks
func (c *Config) WithSize(width, height int) *Config {
	c.Width, c.Height = width, height
	return c
}

// WithBackend selects the output backend
func (c *Config) WithBackend(name string) *Config {
	c.Backend = name
	return c
}
