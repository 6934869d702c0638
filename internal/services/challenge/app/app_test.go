package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/louisbranch/hidden.space/internal/platform/config"
	"github.com/louisbranch/hidden.space/internal/steg"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.OutputDir != "output" || cfg.CatalogPath != "output/catalog.db" || cfg.Width != 800 || cfg.Height != 800 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("HIDDEN_SPACE_OUTPUT_DIR", "art")
	t.Setenv("HIDDEN_SPACE_IMAGE_WIDTH", "64")

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.OutputDir != "art" || cfg.Width != 64 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestOpenWithCatalog(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(Config{
		OutputDir:   filepath.Join(dir, "out"),
		CatalogPath: filepath.Join(dir, "db", "catalog.db"),
		Width:       40,
		Height:      40,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	if _, err := a.Service.Generate(context.Background(), 11, steg.MethodGreen); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := a.Service.Verify(context.Background(), 11); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestOpenWithoutCatalog(t *testing.T) {
	a, err := Open(Config{OutputDir: t.TempDir(), Width: 40, Height: 40})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := a.Service.List(context.Background(), 1, ""); err == nil {
		t.Fatal("expected list to fail without catalog")
	}
}

func TestOpenRejectsBadDimensions(t *testing.T) {
	_, err := Open(Config{OutputDir: t.TempDir(), Width: 0, Height: 40})
	if !errors.Is(err, steg.ErrInvalidConfig) {
		t.Fatalf("error = %v, want ErrInvalidConfig", err)
	}
}
