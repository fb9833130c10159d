// ABOUTME: Overlay settings: compile-time defaults with an optional YAML override file
// ABOUTME: Non-zero file values replace defaults; Validate rejects unusable timings and geometry

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Variant selects how the overlay surface itself behaves between key presses.
type Variant string

const (
	// VariantPersistent keeps the background at a fixed opacity; only
	// individual entries fade.
	VariantPersistent Variant = "persistent"

	// VariantAutoHide fades the whole overlay out after HideDelay of inactivity.
	VariantAutoHide Variant = "autohide"
)

// Settings holds every tunable of the overlay. The defaults are the fixed
// constants the overlay was designed around.
type Settings struct {
	MaxKeys int `yaml:"max_keys,omitempty"`

	Display time.Duration `yaml:"display,omitempty"`
	FadeOut time.Duration `yaml:"fade_out,omitempty"`
	PressIn time.Duration `yaml:"press_in,omitempty"`

	HideDelay  time.Duration `yaml:"hide_delay,omitempty"`
	WindowFade time.Duration `yaml:"window_fade,omitempty"`

	FrameInterval time.Duration `yaml:"frame_interval,omitempty"`

	Variant    Variant `yaml:"variant,omitempty"`
	Background float64 `yaml:"background_opacity,omitempty"`

	// WidthFraction is the overlay width relative to the terminal width.
	WidthFraction float64 `yaml:"width_fraction,omitempty"`
	// TopFraction places the overlay's top edge relative to the terminal height.
	TopFraction float64 `yaml:"top_fraction,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		MaxKeys:       15,
		Display:       4000 * time.Millisecond,
		FadeOut:       800 * time.Millisecond,
		PressIn:       150 * time.Millisecond,
		HideDelay:     3000 * time.Millisecond,
		WindowFade:    500 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
		Variant:       VariantPersistent,
		Background:    0.5,
		WidthFraction: 0.66,
		TopFraction:   0.85,
	}
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid settings")

// Validate checks that the settings can drive the overlay.
func (s Settings) Validate() error {
	if s.MaxKeys <= 0 {
		return fmt.Errorf("%w: max_keys must be positive, got %d", ErrInvalid, s.MaxKeys)
	}
	for name, d := range map[string]time.Duration{
		"display":        s.Display,
		"fade_out":       s.FadeOut,
		"press_in":       s.PressIn,
		"hide_delay":     s.HideDelay,
		"window_fade":    s.WindowFade,
		"frame_interval": s.FrameInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, name, d)
		}
	}
	switch s.Variant {
	case VariantPersistent, VariantAutoHide:
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalid, s.Variant)
	}
	if s.Background < 0 || s.Background > 1 {
		return fmt.Errorf("%w: background_opacity must be within [0,1], got %g", ErrInvalid, s.Background)
	}
	if s.WidthFraction <= 0 || s.WidthFraction > 1 {
		return fmt.Errorf("%w: width_fraction must be within (0,1], got %g", ErrInvalid, s.WidthFraction)
	}
	if s.TopFraction < 0 || s.TopFraction > 1 {
		return fmt.Errorf("%w: top_fraction must be within [0,1], got %g", ErrInvalid, s.TopFraction)
	}
	return nil
}

// Load reads the default config file on top of Defaults. A missing file is
// not an error.
func Load() (*Settings, error) {
	s, err := LoadFile(ConfigFile())
	if errors.Is(err, os.ErrNotExist) {
		d := Defaults()
		return &d, nil
	}
	return s, err
}

// LoadFile reads path on top of Defaults and validates the result.
// Unlike Load, a missing file is reported.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	merged := merge(Defaults(), file)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &merged, nil
}

// merge overlays non-zero override fields onto base.
func merge(base, override Settings) Settings {
	result := base

	if override.MaxKeys != 0 {
		result.MaxKeys = override.MaxKeys
	}
	if override.Display != 0 {
		result.Display = override.Display
	}
	if override.FadeOut != 0 {
		result.FadeOut = override.FadeOut
	}
	if override.PressIn != 0 {
		result.PressIn = override.PressIn
	}
	if override.HideDelay != 0 {
		result.HideDelay = override.HideDelay
	}
	if override.WindowFade != 0 {
		result.WindowFade = override.WindowFade
	}
	if override.FrameInterval != 0 {
		result.FrameInterval = override.FrameInterval
	}
	if override.Variant != "" {
		result.Variant = override.Variant
	}
	if override.Background != 0 {
		result.Background = override.Background
	}
	if override.WidthFraction != 0 {
		result.WidthFraction = override.WidthFraction
	}
	if override.TopFraction != 0 {
		result.TopFraction = override.TopFraction
	}

	return result
}
