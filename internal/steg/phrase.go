package steg

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// GeneratePhrase draws cfg.WordCount words (with replacement) from cfg.Words,
// joins them with cfg.Separator and wraps the result in cfg.Template. It
// consumes exactly cfg.WordCount draws from rng.
func GeneratePhrase(rng *rand.Rand, cfg Config) string {
	words := make([]string, cfg.WordCount)
	for i := range words {
		words[i] = cfg.Words[rng.IntN(len(cfg.Words))]
	}
	return fmt.Sprintf(cfg.Template, strings.Join(words, cfg.Separator))
}
