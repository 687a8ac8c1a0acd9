package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// WindowConfig describes the window and the GL context requested for it.
// Field names double as TOML keys.
type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Resizable  bool   `toml:"resizable"`
	VSync      bool   `toml:"vsync"`
	Fullscreen bool   `toml:"fullscreen"`
	Samples    int    `toml:"samples"`
	Debug      bool   `toml:"debug"`
	GLMajor    int    `toml:"gl_major"`
	GLMinor    int    `toml:"gl_minor"`
	Background Color  `toml:"background"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      1280,
		Height:     720,
		Title:      "diamond-gl",
		Resizable:  true,
		VSync:      true,
		Fullscreen: false,
		Samples:    4,
		GLMajor:    4,
		GLMinor:    6,
		Background: Color{0.1, 0.1, 0.12, 1},
	}
}

var errInvalidConfig = errors.New("invalid window config")

// Validate checks the values window.New relies on.
func (c WindowConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", errInvalidConfig, c.Width, c.Height)
	case c.Samples < 0:
		return fmt.Errorf("%w: %d samples", errInvalidConfig, c.Samples)
	case c.GLMajor < 4 || (c.GLMajor == 4 && c.GLMinor < 5):
		return fmt.Errorf("%w: OpenGL %d.%d lacks direct state access", errInvalidConfig, c.GLMajor, c.GLMinor)
	}
	return nil
}

// ParseWindowConfig overlays TOML data on the defaults.
func ParseWindowConfig(data []byte) (WindowConfig, error) {
	config := DefaultWindowConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return WindowConfig{}, fmt.Errorf("failed to parse window config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return WindowConfig{}, err
	}
	return config, nil
}

// LoadWindowConfig reads a TOML file. Keys missing from the file keep their
// default values.
func LoadWindowConfig(path string) (WindowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WindowConfig{}, fmt.Errorf("failed to read window config: %w", err)
	}
	return ParseWindowConfig(data)
}
