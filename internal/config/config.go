package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinyrange/glwin/internal/window"
)

// Config is the effective configuration of the demo window.
type Config struct {
	Name         string
	Width        int
	Height       int
	ColorBits    int
	DepthBits    int
	StencilBits  int
	SwapInterval int
	FullScreen   bool
	LogLevel     slog.Level
}

// raw mirrors the YAML file. Pointers distinguish unset keys from zero.
type raw struct {
	Window *rawWindow `yaml:"window"`
	Log    *rawLog    `yaml:"log"`
}

type rawWindow struct {
	Name         *string `yaml:"name"`
	Width        *int    `yaml:"width"`
	Height       *int    `yaml:"height"`
	ColorBits    *int    `yaml:"color_bits"`
	DepthBits    *int    `yaml:"depth_bits"`
	StencilBits  *int    `yaml:"stencil_bits"`
	SwapInterval *int    `yaml:"swap_interval"`
	FullScreen   *bool   `yaml:"fullscreen"`
}

type rawLog struct {
	Level *string `yaml:"level"`
}

func Default() Config {
	def := window.DefaultConfig("glwin")
	return Config{
		Name:         def.Name,
		Width:        def.Width,
		Height:       def.Height,
		ColorBits:    def.ColorBits,
		DepthBits:    def.DepthBits,
		StencilBits:  def.StencilBits,
		SwapInterval: 1,
		LogLevel:     slog.LevelInfo,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var r raw
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	cfg := Default()
	if w := r.Window; w != nil {
		setString(&cfg.Name, w.Name)
		setInt(&cfg.Width, w.Width)
		setInt(&cfg.Height, w.Height)
		setInt(&cfg.ColorBits, w.ColorBits)
		setInt(&cfg.DepthBits, w.DepthBits)
		setInt(&cfg.StencilBits, w.StencilBits)
		setInt(&cfg.SwapInterval, w.SwapInterval)
		if w.FullScreen != nil {
			cfg.FullScreen = *w.FullScreen
		}
	}
	if r.Log != nil && r.Log.Level != nil {
		level, err := parseLevel(*r.Log.Level)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.ColorBits <= 0 {
		errs = append(errs, fmt.Errorf("window.color_bits must be positive, got %d", c.ColorBits))
	}
	if c.DepthBits < 0 || c.StencilBits < 0 {
		errs = append(errs, errors.New("window depth and stencil bits must not be negative"))
	}
	return errors.Join(errs...)
}

// Window converts the configuration into window creation parameters.
func (c Config) Window() window.Config {
	return window.Config{
		Name:        c.Name,
		Width:       c.Width,
		Height:      c.Height,
		ColorBits:   c.ColorBits,
		DepthBits:   c.DepthBits,
		StencilBits: c.StencilBits,
	}
}
