// Package raster moves steg images and single-channel planes to and from
// lossless PNG files.
package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
	"github.com/louisbranch/hidden.space/internal/steg"
)

// Extension is the file extension of challenge artifacts.
const Extension = ".png"

// ArtifactPath returns the conventional artifact location for seed.
func ArtifactPath(dir string, seed uint32) string {
	return filepath.Join(dir, fmt.Sprintf("%d%s", seed, Extension))
}

// ToNRGBA copies img into a non-premultiplied image so channel bytes survive
// encoding exactly.
func ToNRGBA(img *steg.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, px := range img.Pix {
		copy(out.Pix[i*4:i*4+4], px[:])
	}
	return out
}

// FromImage converts any decoded image into a steg image. NRGBA sources and
// opaque sources keep their exact channel bytes; translucent premultiplied
// sources are converted through color.NRGBAModel.
func FromImage(src image.Image) *steg.Image {
	bounds := src.Bounds()
	img := steg.NewImage(bounds.Dx(), bounds.Dy())
	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				o := nrgba.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				img.Set(x, y, steg.Pixel{nrgba.Pix[o], nrgba.Pix[o+1], nrgba.Pix[o+2], nrgba.Pix[o+3]})
			}
		}
		return img
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			img.Set(x, y, steg.Pixel{c.R, c.G, c.B, c.A})
		}
	}
	return img
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img *steg.Image) error {
	if err := png.Encode(w, ToNRGBA(img)); err != nil {
		return apperrors.Wrap(apperrors.CodeImageIO, "encode png", err)
	}
	return nil
}

// Decode reads a PNG from r.
func Decode(r io.Reader) (*steg.Image, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeImageIO, "decode png", err)
	}
	return FromImage(src), nil
}

// Save writes img to path, creating parent directories as needed.
func Save(path string, img *steg.Image) error {
	return writeFile(path, func(w io.Writer) error { return Encode(w, img) })
}

// EncodeGray writes a single-channel width x height sample buffer, stored
// row-major, to w as an 8-bit grayscale PNG.
func EncodeGray(w io.Writer, width, height int, samples []uint8) error {
	if width <= 0 || height <= 0 || len(samples) != width*height {
		return apperrors.WithMetadata(apperrors.CodeImageDimensions, "grayscale buffer does not match its dimensions", map[string]string{
			"width":   strconv.Itoa(width),
			"height":  strconv.Itoa(height),
			"samples": strconv.Itoa(len(samples)),
		})
	}
	gray := &image.Gray{Pix: samples, Stride: width, Rect: image.Rect(0, 0, width, height)}
	if err := png.Encode(w, gray); err != nil {
		return apperrors.Wrap(apperrors.CodeImageIO, "encode grayscale png", err)
	}
	return nil
}

// SaveGray writes a grayscale PNG to path, creating parent directories as
// needed.
func SaveGray(path string, width, height int, samples []uint8) error {
	return writeFile(path, func(w io.Writer) error { return EncodeGray(w, width, height, samples) })
}

// DecodeGray reads a PNG from r as luma samples. Colour sources are
// converted through color.GrayModel.
func DecodeGray(r io.Reader) (samples []uint8, width, height int, err error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, 0, 0, apperrors.Wrap(apperrors.CodeImageIO, "decode png", err)
	}
	bounds := src.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	samples = make([]uint8, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			samples = append(samples, color.GrayModel.Convert(src.At(x, y)).(color.Gray).Y)
		}
	}
	return samples, width, height, nil
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	meta := map[string]string{"path": path}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapWithMetadata(apperrors.CodeImageIO, "create artifact dir", meta, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeImageIO, "create artifact", meta, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = apperrors.WrapWithMetadata(apperrors.CodeImageIO, "close artifact", meta, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeImageIO, "write artifact", meta, err)
	}
	return nil
}

// Open reads the PNG at path.
func Open(path string) (*steg.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeImageIO, "open artifact", map[string]string{"path": path}, err)
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}
