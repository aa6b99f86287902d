package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/olivier-w/wavebar/internal/config"
	"github.com/olivier-w/wavebar/internal/logger"
	"github.com/olivier-w/wavebar/internal/playback"
	"github.com/olivier-w/wavebar/internal/ui"
	"github.com/olivier-w/wavebar/internal/visualizer"
)

// demoDuration is used when no track length is known and none was given.
const demoDuration = 3*time.Minute + 30*time.Second

var errorColor = color.New(color.FgHiRed)

func main() {
	if err := run(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "Path to config file (default: ~/.config/wavebar/config.yaml)")
	style := flag.String("style", "", "Progress bar style: classic, sine_wave")
	effect := flag.String("effect", "", "Progress bar effect: circles, squares, triangles, none")
	scheme := flag.String("scheme", "", "Ring color scheme: "+strings.Join(visualizer.SchemeNames(), ", "))
	bpm := flag.Float64("bpm", 0, "Tempo in beats per minute (overrides the tag)")
	baseColor := flag.String("color", "", "Album base color as #rrggbb")
	duration := flag.Duration("duration", 0, "Track length (overrides the tag)")
	title := flag.String("title", "", "Track title (overrides the tag)")
	logPath := flag.String("log", logger.DefaultPath(), "Log output path; empty discards logs")
	verbose := flag.Bool("v", false, "Verbose (debug) logging")
	flag.Parse()

	log, err := logger.New(*verbose, *logPath)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	zap.ReplaceGlobals(log)
	defer log.Sync() //nolint:errcheck
	ctx := logger.NewContext(context.Background(), log)

	cfg := config.Default()
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			return err
		}
	} else {
		path, err := cfg.TryLoadDefault()
		if err != nil {
			return err
		}
		if path != "" {
			logger.L(ctx).Info("loaded config", zap.String("path", path))
		}
	}
	applyFlags(cfg, *style, *effect, *scheme, *baseColor)

	settings, warns := cfg.Resolve()
	for _, w := range warns {
		logger.L(ctx).Warn("config fallback",
			zap.String("field", w.Field),
			zap.String("value", w.Value),
			zap.String("using", w.Fallback))
	}

	opts := playback.Options{
		Duration:  demoDuration,
		BPM:       settings.BPM,
		BaseColor: settings.AlbumColor,
		Title:     "wavebar demo",
	}
	var artist string
	if args := flag.Args(); len(args) > 0 {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("file not found: %s", path)
		}
		info := playback.ReadTrackInfo(path)
		opts.Title = info.Title
		opts.Duration = info.Duration
		if info.BPM > 0 {
			opts.BPM = info.BPM
		}
		artist = info.Artist
		logger.L(ctx).Info("read track info",
			zap.String("title", info.Title),
			zap.Float64("bpm", info.BPM),
			zap.Duration("duration", info.Duration))
	}
	if *bpm > 0 {
		opts.BPM = *bpm
	}
	if *duration > 0 {
		opts.Duration = *duration
	}
	if *title != "" {
		opts.Title = *title
	}

	t := playback.New(opts)
	defer t.Close()

	m := ui.New(ui.Options{
		Transport: t,
		Settings:  settings,
		Title:     opts.Title,
		Artist:    artist,
		Profile:   termenv.EnvColorProfile(),
		Logger:    logger.L(ctx),
	})

	logger.L(ctx).Info("starting", zap.String("title", opts.Title), zap.Duration("duration", opts.Duration))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.L(ctx).Info("stopped")
	return nil
}

func applyFlags(cfg *config.Config, style, effect, scheme, baseColor string) {
	if style != "" {
		cfg.ProgressBarStyle = style
	}
	if effect != "" {
		cfg.ProgressBarEffect = effect
	}
	if scheme != "" {
		cfg.ColorScheme = scheme
	}
	if baseColor != "" {
		cfg.AlbumColor = baseColor
	}
}
