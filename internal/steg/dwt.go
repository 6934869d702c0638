package steg

import (
	"strconv"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
)

// HaarDWT applies one level of the forward Haar transform to a single channel
// plane of width*height samples stored row-major. It is a diagnostic view of
// an image's frequency bands and plays no part in embedding: MethodDWT stays
// unsupported.
//
// Rows are transformed first, then columns. Each pass writes pair sums to the
// first half and pair differences to the second half, both saturating at 0
// and 255, so the result holds the LL, HL, LH and HH sub-bands as quadrants.
// Both dimensions must be even.
func HaarDWT(plane []uint8, width, height int) ([]uint8, error) {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 || len(plane) != width*height {
		return nil, apperrors.WithMetadata(apperrors.CodeImageDimensions, "haar transform needs an even-sized plane", map[string]string{
			"width":   strconv.Itoa(width),
			"height":  strconv.Itoa(height),
			"samples": strconv.Itoa(len(plane)),
		})
	}

	rows := make([]uint8, len(plane))
	half := width / 2
	for y := 0; y < height; y++ {
		row := plane[y*width : (y+1)*width]
		out := rows[y*width : (y+1)*width]
		for i := 0; i < half; i++ {
			out[i], out[half+i] = haarPair(row[2*i], row[2*i+1])
		}
	}

	out := make([]uint8, len(plane))
	half = height / 2
	for x := 0; x < width; x++ {
		for i := 0; i < half; i++ {
			sum, diff := haarPair(rows[(2*i)*width+x], rows[(2*i+1)*width+x])
			out[i*width+x] = sum
			out[(half+i)*width+x] = diff
		}
	}
	return out, nil
}

func haarPair(a, b uint8) (sum, diff uint8) {
	s := int(a) + int(b)
	if s > 255 {
		s = 255
	}
	d := int(a) - int(b)
	if d < 0 {
		d = 0
	}
	return uint8(s), uint8(d)
}
