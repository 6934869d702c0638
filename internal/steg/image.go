package steg

// Pixel is one RGBA sample.
type Pixel [4]uint8

// Channel selects one component of a Pixel.
type Channel int

// Channels in Pixel order.
const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	case ChannelAlpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// Image is a fixed-size RGBA pixel buffer flattened in row-major order.
// Embedding mutates it in place; callers must not share one buffer between
// concurrent embeds.
type Image struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewImage allocates a zeroed width x height buffer.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// At returns the pixel at column x, row y.
func (m *Image) At(x, y int) Pixel {
	return m.Pix[y*m.Width+x]
}

// Set stores the pixel at column x, row y.
func (m *Image) Set(x, y int, p Pixel) {
	m.Pix[y*m.Width+x] = p
}

// Plane copies one channel of every pixel into a row-major sample slice.
func (m *Image) Plane(c Channel) []uint8 {
	out := make([]uint8, len(m.Pix))
	for i, px := range m.Pix {
		out[i] = px[c]
	}
	return out
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	if m == nil {
		return nil
	}
	out := &Image{Width: m.Width, Height: m.Height, Pix: make([]Pixel, len(m.Pix))}
	copy(out.Pix, m.Pix)
	return out
}

// Equal reports whether both buffers hold identical pixels.
func (m *Image) Equal(other *Image) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Width != other.Width || m.Height != other.Height || len(m.Pix) != len(other.Pix) {
		return false
	}
	for i := range m.Pix {
		if m.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}
