package main

import (
	"context"
	"flag"
	"log"
	"os"

	challengecmd "github.com/louisbranch/hidden.space/internal/cmd/challenge"
	platformcmd "github.com/louisbranch/hidden.space/internal/platform/cmd"
)

// main generates a challenge, or solves, verifies or lists existing ones.
func main() {
	log.SetPrefix(platformcmd.LogPrefix(platformcmd.ServiceChallenge))
	cfg, err := challengecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	platformcmd.Main(platformcmd.ServiceChallenge, func(ctx context.Context) error {
		return challengecmd.Run(ctx, cfg, os.Stdout)
	})
}
