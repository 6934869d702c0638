// Package challenge parses the challenge command flags and runs one of its
// modes: generate-then-solve (default), solve, verify, list or a Haar
// sub-band dump of an artifact.
package challenge

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"time"

	platformcmd "github.com/louisbranch/hidden.space/internal/platform/cmd"
	"github.com/louisbranch/hidden.space/internal/random"
	"github.com/louisbranch/hidden.space/internal/services/challenge/app"
	"github.com/louisbranch/hidden.space/internal/steg"
)

// listPageSize is the page size used when walking the whole catalog.
const listPageSize = 50

// Config holds challenge command configuration.
type Config struct {
	app.Config
	Method string `env:"HIDDEN_SPACE_METHOD"`

	// Seed is negative when a random seed should be drawn.
	Seed   int64
	Path   string
	Solve  bool
	Verify bool
	List   bool
	// DWTDump writes per-channel Haar sub-band images of an artifact.
	DWTDump bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Seed: -1}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "challenge seed (0-4294967295); random when negative")
	fs.StringVar(&cfg.Method, "method", cfg.Method, "LSB, RED, GREEN, BLUE, ALPHA, PVD, BPCS, DCT, DWT or DFT; drawn from the seed when empty")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "artifact output directory")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "catalog database path; empty disables the catalog")
	fs.StringVar(&cfg.Path, "path", cfg.Path, "artifact to solve or dump; defaults to <out>/<seed>.png")
	fs.BoolVar(&cfg.Solve, "solve", false, "only solve an existing artifact")
	fs.BoolVar(&cfg.Verify, "verify", false, "check an artifact against the catalog")
	fs.BoolVar(&cfg.List, "list", false, "list catalogued challenges")
	fs.BoolVar(&cfg.DWTDump, "dwt-dump", false, "write Haar sub-band images of an artifact's red, green and blue planes")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.Seed > math.MaxUint32 {
		return Config{}, fmt.Errorf("seed %d exceeds 32 bits", cfg.Seed)
	}
	modes := 0
	for _, on := range []bool{cfg.Solve, cfg.Verify, cfg.List, cfg.DWTDump} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return Config{}, errors.New("-solve, -verify, -list and -dwt-dump are mutually exclusive")
	}
	if (cfg.Solve || cfg.Verify || cfg.DWTDump) && cfg.Seed < 0 {
		return Config{}, errors.New("-seed is required to solve, verify or dump")
	}
	return cfg, nil
}

// Run executes the selected mode and writes its report to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	method, err := steg.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	a, err := app.Open(cfg.Config)
	if err != nil {
		return err
	}
	defer a.Close()
	r := runner{app: a, out: out}

	switch {
	case cfg.List:
		return r.list(ctx)
	case cfg.Verify:
		return r.verify(ctx, uint32(cfg.Seed))
	case cfg.Solve:
		return r.solve(ctx, uint32(cfg.Seed), method, cfg.Path)
	case cfg.DWTDump:
		return r.dwtDump(ctx, uint32(cfg.Seed), cfg.Path)
	}

	seed := uint32(cfg.Seed)
	if cfg.Seed < 0 {
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
	}
	return r.generate(ctx, seed, method)
}

type runner struct {
	app *app.App
	out io.Writer
}

// generate writes the artifact, prints the challenge and then solves it back
// from disk.
func (r runner) generate(ctx context.Context, seed uint32, method steg.Method) error {
	generated, err := r.app.Service.Generate(ctx, seed, method)
	if generated.Challenge.Phrase != "" {
		fmt.Fprintln(r.out, generated.Challenge)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "artifact: %s\ndigest: %s\n", generated.ArtifactPath, generated.Digest)

	solved, err := r.app.Service.Solve(ctx, seed, method, generated.ArtifactPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "solved: %s\n", solved.Phrase)
	if solved.Phrase != generated.Challenge.Phrase {
		return fmt.Errorf("solved phrase %q does not match %q", solved.Phrase, generated.Challenge.Phrase)
	}
	return nil
}

func (r runner) solve(ctx context.Context, seed uint32, method steg.Method, path string) error {
	solved, err := r.app.Service.Solve(ctx, seed, method, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "seed: %d\nmethod: %s\nartifact: %s\nslug: %s\n", solved.Seed, solved.Method, solved.ArtifactPath, solved.Phrase)
	return nil
}

func (r runner) verify(ctx context.Context, seed uint32) error {
	verified, err := r.app.Service.Verify(ctx, seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "seed: %d\nartifact: %s\ndigest: %s\nintact: true\n", verified.Seed, verified.ArtifactPath, verified.Actual)
	return nil
}

func (r runner) dwtDump(ctx context.Context, seed uint32, path string) error {
	result, err := r.app.Service.DecomposeDWT(ctx, seed, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "seed: %d\nartifact: %s\n", result.Seed, result.ArtifactPath)
	for _, band := range result.Bands {
		fmt.Fprintf(r.out, "%s: %s\n", band.Channel, band.Path)
	}
	return nil
}

func (r runner) list(ctx context.Context) error {
	token := ""
	for {
		page, err := r.app.Service.List(ctx, listPageSize, token)
		if err != nil {
			return err
		}
		for _, c := range page.Challenges {
			fmt.Fprintf(r.out, "%d\t%dx%d\t%s\t%s\n", c.Seed, c.Width, c.Height, c.CreatedAt.Format(time.RFC3339), c.ArtifactPath)
		}
		if page.NextPageToken == "" {
			return nil
		}
		token = page.NextPageToken
	}
}
