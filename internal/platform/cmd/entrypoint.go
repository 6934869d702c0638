// Package cmd holds the startup plumbing shared by the hidden.space binaries.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/louisbranch/hidden.space/internal/platform/config"
	"github.com/louisbranch/hidden.space/internal/platform/otel"
)

const otelShutdownTimeout = 5 * time.Second

// Service identifiers for startup telemetry and log prefixes.
const (
	ServiceChallenge = "challenge"
	ServiceMCP       = "mcp"
)

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from env and then parses flags, so flags
// registered against cfg fields override the environment.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// LogPrefix returns the conventional log prefix for service.
func LogPrefix(service string) string {
	return "[" + strings.ToUpper(service) + "] "
}

// RunWithTelemetry configures tracing and executes run.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}

// Main is the body of every cmd/<bin>/main.go. It cancels on SIGINT/SIGTERM
// and exits with the status the error code maps to. The caller sets the log
// prefix before parsing flags.
func Main(service string, run func(context.Context) error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RunWithTelemetry(ctx, service, run)
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		config.ExitErr(err)
	}
}
