// Package app assembles the challenge runtime shared by the CLI and the MCP
// adapter: engine, cover renderer, catalog and service.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/hidden.space/internal/cover"
	"github.com/louisbranch/hidden.space/internal/services/challenge/service"
	"github.com/louisbranch/hidden.space/internal/services/challenge/storage/sqlite"
	"github.com/louisbranch/hidden.space/internal/steg"
)

// Config holds the settings every binary reads from the environment.
type Config struct {
	OutputDir   string `env:"HIDDEN_SPACE_OUTPUT_DIR"    envDefault:"output"`
	CatalogPath string `env:"HIDDEN_SPACE_CATALOG_PATH"  envDefault:"output/catalog.db"`
	Width       int    `env:"HIDDEN_SPACE_IMAGE_WIDTH"   envDefault:"800"`
	Height      int    `env:"HIDDEN_SPACE_IMAGE_HEIGHT"  envDefault:"800"`
}

// App owns the challenge service and the resources behind it.
type App struct {
	Service *service.Service
	store   *sqlite.Store
}

// Open builds the runtime. An empty CatalogPath disables the catalog.
func Open(cfg Config, opts ...service.Option) (*App, error) {
	stegCfg := steg.DefaultConfig()
	stegCfg.Width = cfg.Width
	stegCfg.Height = cfg.Height
	engine, err := steg.NewEngine(stegCfg, cover.NewRenderer())
	if err != nil {
		return nil, err
	}

	a := &App{}
	if path := strings.TrimSpace(cfg.CatalogPath); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create catalog dir: %w", err)
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		a.store = store
		opts = append([]service.Option{service.WithStore(store)}, opts...)
	}

	svc, err := service.New(engine, cfg.OutputDir, opts...)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Service = svc
	return a, nil
}

// Close releases the catalog.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}
