// Package service orchestrates challenge generation, solving and catalog
// verification on top of the steg engine.
package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
	"github.com/louisbranch/hidden.space/internal/raster"
	"github.com/louisbranch/hidden.space/internal/services/challenge/integrity"
	"github.com/louisbranch/hidden.space/internal/services/challenge/storage"
	"github.com/louisbranch/hidden.space/internal/steg"
)

const (
	tracerName = "github.com/louisbranch/hidden.space/internal/services/challenge/service"

	defaultListPageSize = 10
	maxListPageSize     = 50
)

// Service generates artifacts into an output directory and optionally
// records them in a catalog.
type Service struct {
	engine    *steg.Engine
	store     storage.ChallengeStore
	outputDir string
	tracer    trace.Tracer
	clock     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithStore enables the catalog. Without one, Verify and List fail with
// CodeInvalidConfig.
func WithStore(store storage.ChallengeStore) Option {
	return func(s *Service) { s.store = store }
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracer = tp.Tracer(tracerName) }
}

// WithClock overrides the catalog timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// New builds a Service writing artifacts under outputDir.
func New(engine *steg.Engine, outputDir string, opts ...Option) (*Service, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if strings.TrimSpace(outputDir) == "" {
		return nil, errors.New("output dir is required")
	}
	s := &Service{
		engine:    engine,
		outputDir: outputDir,
		tracer:    otel.Tracer(tracerName),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Engine returns the engine the service drives.
func (s *Service) Engine() *steg.Engine {
	return s.engine
}

// GenerateResult describes a generated artifact.
type GenerateResult struct {
	Challenge    steg.Challenge
	ArtifactPath string
	Digest       string
}

// Generate embeds the seed's phrase, writes the artifact and records it in
// the catalog when one is configured. When embedding fails the result still
// carries the seed's challenge but nothing is written.
func (s *Service) Generate(ctx context.Context, seed uint32, method steg.Method) (result GenerateResult, err error) {
	ctx, span := s.start(ctx, "challenge.Generate", seed, method)
	defer func() { finish(span, err) }()
	if err := ctx.Err(); err != nil {
		return GenerateResult{}, err
	}

	challenge, err := s.engine.Embed(seed, method)
	result.Challenge = challenge
	span.SetAttributes(attribute.String("challenge.resolved_method", challenge.Method.String()))
	if err != nil {
		return result, err
	}

	path := raster.ArtifactPath(s.outputDir, seed)
	if err := raster.Save(path, challenge.Image); err != nil {
		return result, err
	}
	digest, err := integrity.DigestFile(path)
	if err != nil {
		return result, apperrors.WrapWithMetadata(apperrors.CodeImageIO, "digest artifact", map[string]string{"path": path}, err)
	}
	result.ArtifactPath = path
	result.Digest = digest

	if s.store != nil {
		cfg := s.engine.Config()
		if err := s.store.PutChallenge(ctx, storage.Challenge{
			Seed:         seed,
			ArtifactPath: path,
			Digest:       digest,
			Width:        cfg.Width,
			Height:       cfg.Height,
			CreatedAt:    s.clock().UTC(),
		}); err != nil {
			return result, fmt.Errorf("record challenge %d: %w", seed, err)
		}
	}
	return result, nil
}

// SolveResult is a recovered phrase.
type SolveResult struct {
	Seed         uint32
	Method       steg.Method
	Phrase       string
	ArtifactPath string
}

// Solve extracts the phrase from the artifact at path. An empty path means
// the conventional artifact location for seed.
func (s *Service) Solve(ctx context.Context, seed uint32, method steg.Method, path string) (result SolveResult, err error) {
	ctx, span := s.start(ctx, "challenge.Solve", seed, method)
	defer func() { finish(span, err) }()
	if err := ctx.Err(); err != nil {
		return SolveResult{}, err
	}

	if strings.TrimSpace(path) == "" {
		path = raster.ArtifactPath(s.outputDir, seed)
	}
	result = SolveResult{
		Seed:         seed,
		Method:       s.engine.ResolveMethod(seed, method),
		ArtifactPath: path,
	}
	img, err := raster.Open(path)
	if err != nil {
		return result, err
	}
	phrase, err := s.engine.Extract(seed, method, img)
	if err != nil {
		return result, err
	}
	result.Phrase = phrase
	return result, nil
}

// VerifyResult compares an artifact against its catalog entry.
type VerifyResult struct {
	Seed         uint32
	ArtifactPath string
	Expected     string
	Actual       string
}

// Verify re-hashes the catalogued artifact for seed. A digest mismatch is
// reported as CodeArtifactModified.
func (s *Service) Verify(ctx context.Context, seed uint32) (result VerifyResult, err error) {
	ctx, span := s.start(ctx, "challenge.Verify", seed, steg.MethodUnspecified)
	defer func() { finish(span, err) }()
	if err := s.requireStore(ctx); err != nil {
		return VerifyResult{}, err
	}

	record, err := s.store.GetChallenge(ctx, seed)
	if err != nil {
		return VerifyResult{}, notFound(err, seed)
	}
	result = VerifyResult{Seed: seed, ArtifactPath: record.ArtifactPath, Expected: record.Digest}
	actual, err := integrity.DigestFile(record.ArtifactPath)
	if err != nil {
		return result, apperrors.WrapWithMetadata(apperrors.CodeImageIO, "digest artifact", map[string]string{"path": record.ArtifactPath}, err)
	}
	result.Actual = actual
	if actual != record.Digest {
		return result, apperrors.WithMetadata(apperrors.CodeArtifactModified, "artifact does not match catalog", map[string]string{
			"path":     record.ArtifactPath,
			"expected": record.Digest,
			"actual":   actual,
		})
	}
	return result, nil
}

// dwtChannels are the colour planes decomposed by DecomposeDWT.
var dwtChannels = []steg.Channel{steg.ChannelRed, steg.ChannelGreen, steg.ChannelBlue}

// BandDump is one decomposed channel plane written as a grayscale PNG.
type BandDump struct {
	Channel steg.Channel
	Path    string
}

// DWTResult lists the sub-band images written for an artifact.
type DWTResult struct {
	Seed         uint32
	ArtifactPath string
	Bands        []BandDump
}

// DecomposeDWT applies one Haar level to the red, green and blue planes of an
// artifact and writes each result to <out>/<seed>-dwt-<channel>.png. It is a
// diagnostic for inspecting frequency bands; it never embeds or extracts.
func (s *Service) DecomposeDWT(ctx context.Context, seed uint32, path string) (result DWTResult, err error) {
	ctx, span := s.start(ctx, "challenge.DecomposeDWT", seed, steg.MethodDWT)
	defer func() { finish(span, err) }()
	if err := ctx.Err(); err != nil {
		return DWTResult{}, err
	}

	if strings.TrimSpace(path) == "" {
		path = raster.ArtifactPath(s.outputDir, seed)
	}
	result = DWTResult{Seed: seed, ArtifactPath: path}
	img, err := raster.Open(path)
	if err != nil {
		return result, err
	}
	for _, ch := range dwtChannels {
		bands, err := steg.HaarDWT(img.Plane(ch), img.Width, img.Height)
		if err != nil {
			return result, err
		}
		out := filepath.Join(s.outputDir, fmt.Sprintf("%d-dwt-%s%s", seed, ch, raster.Extension))
		if err := raster.SaveGray(out, img.Width, img.Height, bands); err != nil {
			return result, err
		}
		result.Bands = append(result.Bands, BandDump{Channel: ch, Path: out})
	}
	return result, nil
}

// List returns one catalog page. pageSize is clamped to [1,50]; zero selects
// the default.
func (s *Service) List(ctx context.Context, pageSize int, pageToken string) (page storage.ChallengePage, err error) {
	ctx, span := s.tracer.Start(ctx, "challenge.List")
	defer func() { finish(span, err) }()
	if err := s.requireStore(ctx); err != nil {
		return storage.ChallengePage{}, err
	}

	switch {
	case pageSize <= 0:
		pageSize = defaultListPageSize
	case pageSize > maxListPageSize:
		pageSize = maxListPageSize
	}
	span.SetAttributes(attribute.Int("challenge.page_size", pageSize))
	return s.store.ListChallenges(ctx, pageSize, pageToken)
}

func (s *Service) requireStore(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.store == nil {
		return apperrors.New(apperrors.CodeInvalidConfig, "challenge catalog is not configured")
	}
	return nil
}

func (s *Service) start(ctx context.Context, name string, seed uint32, method steg.Method) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int64("challenge.seed", int64(seed)),
		attribute.String("challenge.method", method.String()),
	))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func notFound(err error, seed uint32) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.WrapWithMetadata(apperrors.CodeNotFound, "challenge not in catalog", map[string]string{
			"seed": fmt.Sprint(seed),
		}, err)
	}
	return fmt.Errorf("get challenge %d: %w", seed, err)
}
