// Package cover renders the seed-pure images challenges are hidden in.
package cover

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ojrac/opensimplex-go"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
	"github.com/louisbranch/hidden.space/internal/steg"
)

const (
	// DefaultOctaves is the number of noise layers summed per sample.
	DefaultOctaves = 6
	// DefaultLacunarity is the frequency multiplier between octaves.
	DefaultLacunarity = 2.0
	// DefaultGain scales the weight carried from one octave to the next.
	DefaultGain = 2.0
	// DefaultOffset lifts the inverted noise before squaring.
	DefaultOffset = 1.0
	// DefaultExtent is the half-width of the sampled plane.
	DefaultExtent = 0.7
	// DefaultStops is the number of colours in the gradient.
	DefaultStops = 30
)

// paletteStream keeps the palette generator apart from the message streams.
const paletteStream = 0x9e3779b97f4a7c15

// Renderer draws ridged multifractal noise through a seed-keyed gradient.
//
// # Determinism
//
// Render is a pure function of (seed, width, height) and the Renderer
// fields. The noise field is seeded with the seed and the gradient stops are
// drawn from a PCG generator keyed by the seed, so a solver can rebuild the
// untouched cover at any time.
type Renderer struct {
	Octaves    int
	Lacunarity float64
	Gain       float64
	Offset     float64
	Extent     float64
	Stops      int
}

// NewRenderer returns a Renderer with the default parameters.
func NewRenderer() *Renderer {
	return &Renderer{
		Octaves:    DefaultOctaves,
		Lacunarity: DefaultLacunarity,
		Gain:       DefaultGain,
		Offset:     DefaultOffset,
		Extent:     DefaultExtent,
		Stops:      DefaultStops,
	}
}

// Render implements steg.CoverProvider.
func (r *Renderer) Render(seed uint32, width, height int) (*steg.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeImageDimensions, "cover dimensions must be positive", map[string]string{
			"width":  strconv.Itoa(width),
			"height": strconv.Itoa(height),
		})
	}
	if r.Octaves <= 0 || r.Stops < 2 {
		return nil, apperrors.New(apperrors.CodeInvalidConfig, "cover needs at least one octave and two gradient stops")
	}

	field := r.field(seed, width, height)
	palette := r.palette(seed)

	img := steg.NewImage(width, height)
	for i, v := range field {
		c := sample(palette, v)
		red, green, blue := c.RGB255()
		img.Pix[i] = steg.Pixel{red, green, blue, 255}
	}
	return img, nil
}

// field samples the noise over the plane and rescales it to [0,1].
func (r *Renderer) field(seed uint32, width, height int) []float64 {
	noise := opensimplex.New(int64(seed))
	values := make([]float64, width*height)
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < height; y++ {
		py := lerp(-r.Extent, r.Extent, axis(y, height))
		for x := 0; x < width; x++ {
			px := lerp(-r.Extent, r.Extent, axis(x, width))
			v := r.ridged(noise, px, py)
			values[y*width+x] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	span := hi - lo
	for i, v := range values {
		if span == 0 {
			values[i] = 0
			continue
		}
		values[i] = (v - lo) / span
	}
	return values
}

// ridged sums octaves of inverted, squared noise, each weighted by the
// previous octave's signal.
func (r *Renderer) ridged(noise opensimplex.Noise, x, y float64) float64 {
	signal := r.Offset - math.Abs(noise.Eval2(x, y))
	signal *= signal
	total := signal
	frequency := 1.0
	for i := 1; i < r.Octaves; i++ {
		x *= r.Lacunarity
		y *= r.Lacunarity
		frequency *= r.Lacunarity
		weight := clamp01(signal * r.Gain)
		signal = r.Offset - math.Abs(noise.Eval2(x, y))
		signal *= signal * weight
		total += signal / frequency
	}
	return total
}

// palette draws the gradient stops for seed.
func (r *Renderer) palette(seed uint32) []colorful.Color {
	// #nosec G404 -- palette colours must be reproducible from the seed.
	rng := rand.New(rand.NewPCG(uint64(seed), paletteStream))
	stops := make([]colorful.Color, r.Stops)
	for i := range stops {
		stops[i] = colorful.Hsv(rng.Float64()*360, 0.35+0.65*rng.Float64(), 0.25+0.75*rng.Float64())
	}
	return stops
}

// sample blends the two stops around v in Lab space.
func sample(palette []colorful.Color, v float64) colorful.Color {
	pos := clamp01(v) * float64(len(palette)-1)
	i := int(pos)
	if i >= len(palette)-1 {
		return palette[len(palette)-1].Clamped()
	}
	return palette[i].BlendLab(palette[i+1], pos-float64(i)).Clamped()
}

func axis(i, n int) float64 {
	if n == 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

var _ steg.CoverProvider = (*Renderer)(nil)
