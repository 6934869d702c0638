package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/hidden.space/internal/services/mcp/domain"
)

const (
	serverName    = "hidden.space MCP"
	serverVersion = "0.1.0"

	defaultHTTPAddr     = "localhost:8081"
	httpShutdownTimeout = 5 * time.Second
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves the streamable HTTP transport.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	// HTTPAddr is the listen address for TransportHTTP. Defaults to
	// localhost:8081.
	HTTPAddr string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New registers the challenge tools against svc. seeds may be nil, in which
// case challenge_generate requires an explicit seed.
func New(svc domain.ChallengeService, seeds domain.SeedSource) (*Server, error) {
	if svc == nil {
		return nil, errors.New("challenge service is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerChallengeTools(mcpServer, svc, seeds)
	return &Server{mcpServer: mcpServer}, nil
}

func registerChallengeTools(server *mcp.Server, svc domain.ChallengeService, seeds domain.SeedSource) {
	mcp.AddTool(server, domain.ChallengeGenerateTool(), domain.ChallengeGenerateHandler(svc, seeds))
	mcp.AddTool(server, domain.ChallengeSolveTool(), domain.ChallengeSolveHandler(svc))
	mcp.AddTool(server, domain.ChallengeVerifyTool(), domain.ChallengeVerifyHandler(svc))
	mcp.AddTool(server, domain.ChallengeListTool(), domain.ChallengeListHandler(svc))
}

// Run serves MCP over the configured transport and blocks until ctx ends.
func (s *Server) Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	switch cfg.Transport {
	case TransportStdio:
		return s.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		addr := cfg.HTTPAddr
		if addr == "" {
			addr = defaultHTTPAddr
		}
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return s.serveHTTP(ctx, listener)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// serveWithTransport runs one MCP session. Cancellation is a clean stop.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// serveHTTP serves the streamable HTTP transport on listener until ctx ends.
func (s *Server) serveHTTP(ctx context.Context, listener net.Listener) error {
	if s == nil || s.mcpServer == nil {
		_ = listener.Close()
		return fmt.Errorf("MCP server is not configured")
	}
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.mcpServer }, nil)
	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("MCP HTTP listening on %s", listener.Addr())
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP HTTP: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown MCP HTTP: %w", err)
		}
		return nil
	}
}
