package steg

import (
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
)

const (
	// DefaultWidth is the width of generated cover images.
	DefaultWidth = 800
	// DefaultHeight is the height of generated cover images.
	DefaultHeight = 800
	// DefaultWordCount is the number of words in a phrase.
	DefaultWordCount = 4
	// DefaultSeparator joins phrase words.
	DefaultSeparator = "-"
	// DefaultTemplate wraps the joined words.
	DefaultTemplate = "DJP{%s}"
)

// Config holds the values embed and extract must agree on. It is immutable
// once an Engine is built.
type Config struct {
	Width     int
	Height    int
	Words     []string
	WordCount int
	Separator string
	Template  string
}

// DefaultConfig returns the 800x800, four-animal configuration.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Words:     Animals(),
		WordCount: DefaultWordCount,
		Separator: DefaultSeparator,
		Template:  DefaultTemplate,
	}
}

// Validate reports whether the configuration can drive an engine.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return apperrors.WithMetadata(apperrors.CodeInvalidConfig, "image dimensions must be positive", map[string]string{
			"width":  strconv.Itoa(c.Width),
			"height": strconv.Itoa(c.Height),
		})
	case len(c.Words) == 0:
		return apperrors.New(apperrors.CodeInvalidConfig, "word list is empty")
	case c.WordCount <= 0:
		return apperrors.New(apperrors.CodeInvalidConfig, "word count must be positive")
	case strings.Count(c.Template, "%s") != 1 || strings.Count(c.Template, "%") != 1:
		return apperrors.WithMetadata(apperrors.CodeInvalidConfig, "template must contain exactly one %s verb", map[string]string{
			"template": c.Template,
		})
	}
	return nil
}

func (c Config) pixelCount() int {
	return c.Width * c.Height
}
