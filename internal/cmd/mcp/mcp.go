// Package mcp parses MCP command flags and serves the challenge tools over
// stdio or HTTP.
package mcp

import (
	"context"
	"flag"

	platformcmd "github.com/louisbranch/hidden.space/internal/platform/cmd"
	"github.com/louisbranch/hidden.space/internal/random"
	"github.com/louisbranch/hidden.space/internal/services/challenge/app"
	mcpservice "github.com/louisbranch/hidden.space/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	app.Config
	HTTPAddr  string `env:"HIDDEN_SPACE_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	Transport string `env:"HIDDEN_SPACE_MCP_TRANSPORT" envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "artifact output directory")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "catalog database path; empty disables the catalog")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	a, err := app.Open(cfg.Config)
	if err != nil {
		return err
	}
	defer a.Close()

	server, err := mcpservice.New(a.Service, random.NewSeed)
	if err != nil {
		return err
	}
	return server.Run(ctx, mcpservice.Config{
		Transport: mcpservice.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
	})
}
