package main

import (
	"context"
	"flag"
	"log"
	"os"

	mcpcmd "github.com/louisbranch/hidden.space/internal/cmd/mcp"
	platformcmd "github.com/louisbranch/hidden.space/internal/platform/cmd"
)

// main serves the challenge tools over MCP on stdio or HTTP.
func main() {
	log.SetPrefix(platformcmd.LogPrefix(platformcmd.ServiceMCP))
	cfg, err := mcpcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	platformcmd.Main(platformcmd.ServiceMCP, func(ctx context.Context) error {
		return mcpcmd.Run(ctx, cfg)
	})
}
