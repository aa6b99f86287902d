package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/olivier-w/wavebar/internal/visualizer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultResolvesWithoutWarnings(t *testing.T) {
	s, warns := Default().Resolve()
	if len(warns) != 0 {
		t.Fatalf("expected no warnings, got %v", warns)
	}
	if s.Bar != visualizer.DefaultBarConfig() {
		t.Fatalf("expected default bar config, got %+v", s.Bar)
	}
	if s.Scheme != visualizer.SchemeCyan {
		t.Fatalf("expected cyan, got %s", s.Scheme)
	}
	if s.Refresh != DefaultRefreshInterval {
		t.Fatalf("expected %v, got %v", DefaultRefreshInterval, s.Refresh)
	}
	if s.AlbumColor != nil {
		t.Fatalf("expected no album color, got %v", *s.AlbumColor)
	}
}

func TestLoadFromFileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
progress_bar_style: classic
progress_bar_effect: triangles
color_scheme: sunset
album_color: "#ff8800"
bpm: 96
`)
	cfg := Default()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, warns := cfg.Resolve()
	if len(warns) != 0 {
		t.Fatalf("expected no warnings, got %v", warns)
	}
	if s.Bar.Style != visualizer.StyleClassic || s.Bar.Effect != visualizer.EffectTriangles {
		t.Fatalf("unexpected bar config %+v", s.Bar)
	}
	if !s.Bar.ShowBoxes || !s.Bar.EffectsEnabled {
		t.Fatalf("expected unset booleans to keep defaults, got %+v", s.Bar)
	}
	if s.Scheme != visualizer.SchemeSunset {
		t.Fatalf("expected sunset, got %s", s.Scheme)
	}
	if s.AlbumColor == nil || *s.AlbumColor != (visualizer.RGB{R: 255, G: 136, B: 0}) {
		t.Fatalf("expected album color #ff8800, got %v", s.AlbumColor)
	}
	if s.BPM != 96 {
		t.Fatalf("expected bpm 96, got %v", s.BPM)
	}
}

func TestUnknownValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
progress_bar_style: zigzag
progress_bar_effect: sparkles
color_scheme: mauve
refresh_interval_ms: -5
album_color: not-a-color
bpm: -20
enable_effects: false
`)
	cfg := Default()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, warns := cfg.Resolve()
	if len(warns) != 6 {
		t.Fatalf("expected 6 warnings, got %d: %v", len(warns), warns)
	}
	if s.Bar.Style != visualizer.DefaultStyle || s.Bar.Effect != visualizer.DefaultEffect {
		t.Fatalf("expected default style and effect, got %+v", s.Bar)
	}
	if s.Bar.EffectsEnabled {
		t.Fatal("expected effects to stay disabled")
	}
	if s.Scheme != visualizer.SchemeCyan || s.Refresh != DefaultRefreshInterval {
		t.Fatalf("expected fallbacks, got %s %v", s.Scheme, s.Refresh)
	}
	if s.AlbumColor != nil || s.BPM != 0 {
		t.Fatalf("expected no album color and bpm 0, got %v %v", s.AlbumColor, s.BPM)
	}
	if warns[0].Field != "progress_bar_style" || warns[0].Fallback != "sine_wave" {
		t.Fatalf("unexpected first warning %+v", warns[0])
	}
}

func TestMalformedYAMLIsAnError(t *testing.T) {
	path := writeConfig(t, "progress_bar_style: [unclosed\n")
	if err := Default().LoadFromFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMissingFileIsAnError(t *testing.T) {
	if err := Default().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestTryLoadDefaultFindsHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "wavebar")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("refresh_interval_ms: 50\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := Default()
	path, err := cfg.TryLoadDefault()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "config.yml" {
		t.Fatalf("expected config.yml, got %q", path)
	}
	s, _ := cfg.Resolve()
	if s.Refresh != 50*time.Millisecond {
		t.Fatalf("expected 50ms, got %v", s.Refresh)
	}
}

func TestTryLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path, err := Default().TryLoadDefault()
	if err != nil || path != "" {
		t.Fatalf("expected nothing loaded, got %q %v", path, err)
	}
}
