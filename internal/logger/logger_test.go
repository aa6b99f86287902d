package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLReturnsContextLogger(t *testing.T) {
	l := zap.NewNop()
	ctx := NewContext(context.Background(), l)
	if got := L(ctx); got != l {
		t.Fatal("expected logger from context")
	}
	if got := L(context.Background()); got != zap.L() {
		t.Fatal("expected global logger fallback")
	}
}

func TestNewWritesToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavebar.log")
	l, err := New(true, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Debug("effect changed", zap.String("effect", "squares"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "effect changed") {
		t.Fatalf("expected debug entry in log, got %q", data)
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	l, err := New(true, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zap.ErrorLevel) {
		t.Fatal("expected a discarding logger")
	}
}

func TestDefaultPathIsAFile(t *testing.T) {
	path := DefaultPath()
	if path == "stderr" || path == "stdout" || !filepath.IsAbs(path) {
		t.Fatalf("expected an absolute file path, got %q", path)
	}
}
