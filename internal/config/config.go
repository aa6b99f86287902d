// Package config loads the wavebar configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/wavebar/internal/visualizer"
)

// DefaultRefreshInterval is the render tick cadence.
const DefaultRefreshInterval = 32 * time.Millisecond

// Config mirrors the YAML file. Enum values are kept as strings until
// Resolve so that unknown names can fall back instead of failing the load.
type Config struct {
	ProgressBarStyle  string  `yaml:"progress_bar_style"`
	ShowAnimatedBoxes bool    `yaml:"show_animated_boxes"`
	EnableEffects     bool    `yaml:"enable_effects"`
	ProgressBarEffect string  `yaml:"progress_bar_effect"`
	RefreshIntervalMs int     `yaml:"refresh_interval_ms"`
	ColorScheme       string  `yaml:"color_scheme"`
	AlbumColor        string  `yaml:"album_color"`
	BPM               float64 `yaml:"bpm"`
}

// Default returns the built-in configuration.
func Default() *Config {
	bar := visualizer.DefaultBarConfig()
	return &Config{
		ProgressBarStyle:  bar.Style.String(),
		ShowAnimatedBoxes: bar.ShowBoxes,
		EnableEffects:     bar.EffectsEnabled,
		ProgressBarEffect: bar.Effect.String(),
		RefreshIntervalMs: int(DefaultRefreshInterval.Milliseconds()),
		ColorScheme:       visualizer.SchemeCyan.String(),
	}
}

// LoadFromFile overlays the YAML file at path onto c.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// DefaultPaths lists the files TryLoadDefault looks for, in order.
func DefaultPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".config", "wavebar", "config.yaml"),
		filepath.Join(home, ".config", "wavebar", "config.yml"),
		filepath.Join(home, ".wavebar.yaml"),
	}
}

// TryLoadDefault loads the first default file that exists. It returns the
// path it loaded, or "" when none was found.
func (c *Config) TryLoadDefault() (string, error) {
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, c.LoadFromFile(p)
		}
	}
	return "", nil
}

// Settings is the resolved, typed configuration.
type Settings struct {
	Bar        visualizer.BarConfig
	Scheme     visualizer.Scheme
	Refresh    time.Duration
	AlbumColor *visualizer.RGB
	BPM        float64
}

// Warning reports a value that was replaced by its default.
type Warning struct {
	Field    string
	Value    string
	Fallback string
}

func (w Warning) String() string {
	return fmt.Sprintf("unsupported %s %q, using %q", w.Field, w.Value, w.Fallback)
}

// Resolve converts c into Settings. Unsupported values never fail: each is
// replaced by its default and reported as a Warning.
func (c *Config) Resolve() (Settings, []Warning) {
	var warns []Warning
	s := Settings{
		Bar: visualizer.BarConfig{
			ShowBoxes:      c.ShowAnimatedBoxes,
			EffectsEnabled: c.EnableEffects,
		},
		BPM: c.BPM,
	}

	var ok bool
	if s.Bar.Style, ok = visualizer.ParseStyle(c.ProgressBarStyle); !ok {
		warns = append(warns, Warning{"progress_bar_style", c.ProgressBarStyle, s.Bar.Style.String()})
	}
	if s.Bar.Effect, ok = visualizer.ParseEffect(c.ProgressBarEffect); !ok {
		warns = append(warns, Warning{"progress_bar_effect", c.ProgressBarEffect, s.Bar.Effect.String()})
	}
	if s.Scheme, ok = visualizer.ParseScheme(c.ColorScheme); !ok {
		warns = append(warns, Warning{"color_scheme", c.ColorScheme, s.Scheme.String()})
	}

	s.Refresh = time.Duration(c.RefreshIntervalMs) * time.Millisecond
	if s.Refresh <= 0 {
		s.Refresh = DefaultRefreshInterval
		warns = append(warns, Warning{"refresh_interval_ms", fmt.Sprint(c.RefreshIntervalMs), fmt.Sprint(DefaultRefreshInterval.Milliseconds())})
	}

	if c.AlbumColor != "" {
		rgb, err := visualizer.ParseHex(c.AlbumColor)
		if err != nil {
			warns = append(warns, Warning{"album_color", c.AlbumColor, ""})
		} else {
			s.AlbumColor = &rgb
		}
	}

	if s.BPM < 0 {
		warns = append(warns, Warning{"bpm", fmt.Sprint(c.BPM), "0"})
		s.BPM = 0
	}
	return s, warns
}
