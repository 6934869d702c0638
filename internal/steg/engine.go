package steg

import (
	"errors"
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
)

// CoverProvider renders the seed-pure cover image a challenge starts from.
type CoverProvider interface {
	Render(seed uint32, width, height int) (*Image, error)
}

// CoverFunc adapts a function to CoverProvider.
type CoverFunc func(seed uint32, width, height int) (*Image, error)

// Render calls f.
func (f CoverFunc) Render(seed uint32, width, height int) (*Image, error) {
	return f(seed, width, height)
}

// Challenge is the result of hiding a seed's phrase in a cover image.
type Challenge struct {
	Seed      uint32
	Phrase    string
	Method    Method
	Placement Placement
	Image     *Image
}

func (c Challenge) String() string {
	return fmt.Sprintf("seed: %d\nslug: %s\nmethod: %s\noffset: %d\nlayer: %d",
		c.Seed, c.Phrase, c.Method, c.Placement.Offset, c.Placement.Index)
}

// Engine embeds and extracts phrases for one fixed configuration. It holds
// no mutable state and is safe for concurrent use as long as callers do not
// share image buffers.
type Engine struct {
	cfg   Config
	cover CoverProvider
}

// NewEngine validates cfg and builds an engine. cover may be nil when every
// call supplies its own image.
func NewEngine(cfg Config, cover CoverProvider) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	words := make([]string, len(cfg.Words))
	copy(words, cfg.Words)
	cfg.Words = words
	return &Engine{cfg: cfg, cover: cover}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Phrase returns the phrase seed hides.
func (e *Engine) Phrase(seed uint32) string {
	return GeneratePhrase(NewStreams(seed).Phrase, e.cfg)
}

// Embed renders the cover for seed and hides the seed's phrase in it.
func (e *Engine) Embed(seed uint32, method Method) (Challenge, error) {
	img, err := e.render(seed)
	if err != nil {
		return Challenge{}, err
	}
	return e.EmbedInto(seed, method, img)
}

// EmbedInto hides the seed's phrase in img, mutating it in place. When
// method is MethodUnspecified one is drawn from the seed.
//
// On error the returned Challenge still carries the seed's phrase and
// resolved method, and img is left unmodified. For methods without a codec
// the error matches ErrUnsupportedMethod.
func (e *Engine) EmbedInto(seed uint32, method Method, img *Image) (Challenge, error) {
	if !method.Valid() {
		return Challenge{}, unknownMethodError(method)
	}
	if err := e.checkImage(img); err != nil {
		return Challenge{}, err
	}

	streams := NewStreams(seed)
	phrase := GeneratePhrase(streams.Phrase, e.cfg)
	method = streams.ResolveMethod(method)

	challenge := Challenge{
		Seed:   seed,
		Phrase: phrase,
		Method: method,
		Image:  img,
	}
	placement, err := codecFor(method).embed(streams.Embedding, img, ToBits([]byte(phrase)))
	if err != nil {
		return challenge, fmt.Errorf("embed seed %d with %s: %w", seed, method, err)
	}
	challenge.Placement = placement
	return challenge, nil
}

// Extract recovers the phrase hidden in img for seed. A nil img is replaced
// by the seed's unmodified cover, which only yields the phrase for methods
// that leave no trace.
func (e *Engine) Extract(seed uint32, method Method, img *Image) (string, error) {
	if !method.Valid() {
		return "", unknownMethodError(method)
	}
	if img == nil {
		rendered, err := e.render(seed)
		if err != nil {
			return "", err
		}
		img = rendered
	}
	if err := e.checkImage(img); err != nil {
		return "", err
	}

	streams := NewStreams(seed)
	phrase := GeneratePhrase(streams.Phrase, e.cfg)
	method = streams.ResolveMethod(method)

	bits, err := codecFor(method).extract(streams.Embedding, img, len(phrase)*8)
	if err != nil {
		return "", fmt.Errorf("extract seed %d with %s: %w", seed, method, err)
	}
	data, err := FromBits(bits)
	if err != nil {
		return "", fmt.Errorf("extract seed %d with %s: %w", seed, method, err)
	}
	return DecodeText(data), nil
}

// ResolveMethod reports which method seed uses when requested is
// MethodUnspecified.
func (e *Engine) ResolveMethod(seed uint32, requested Method) Method {
	return NewStreams(seed).ResolveMethod(requested)
}

func (e *Engine) render(seed uint32) (*Image, error) {
	if e.cover == nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidConfig, "render cover", errors.New("no cover provider configured"))
	}
	img, err := e.cover.Render(seed, e.cfg.Width, e.cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("render cover for seed %d: %w", seed, err)
	}
	return img, nil
}

func (e *Engine) checkImage(img *Image) error {
	if img == nil {
		return apperrors.New(apperrors.CodeImageDimensions, "image is required")
	}
	if img.Width != e.cfg.Width || img.Height != e.cfg.Height || len(img.Pix) != e.cfg.pixelCount() {
		return apperrors.WithMetadata(apperrors.CodeImageDimensions, "image dimensions do not match configuration", map[string]string{
			"want": strconv.Itoa(e.cfg.Width) + "x" + strconv.Itoa(e.cfg.Height),
			"got":  strconv.Itoa(img.Width) + "x" + strconv.Itoa(img.Height),
		})
	}
	return nil
}

func unknownMethodError(method Method) error {
	return apperrors.WithMetadata(apperrors.CodeUnknownMethod, "unknown method", map[string]string{
		"method": strconv.Itoa(int(method)),
	})
}
