package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
	"github.com/louisbranch/hidden.space/internal/steg"
)

func testImage(alpha bool) *steg.Image {
	img := steg.NewImage(7, 5)
	for i := range img.Pix {
		a := uint8(255)
		if alpha {
			a = uint8(250 + i%6)
		}
		img.Pix[i] = steg.Pixel{uint8(i * 37), uint8(i * 11), uint8(255 - i), a}
	}
	return img
}

func TestEncodeDecodePreservesBytes(t *testing.T) {
	t.Parallel()

	for _, alpha := range []bool{false, true} {
		img := testImage(alpha)
		var buf bytes.Buffer
		if err := Encode(&buf, img); err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Decode(&buf)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !got.Equal(img) {
			t.Fatalf("alpha=%v: decoded image differs", alpha)
		}
	}
}

func TestSaveOpen(t *testing.T) {
	t.Parallel()

	path := ArtifactPath(filepath.Join(t.TempDir(), "nested"), 120)
	if filepath.Base(path) != "120.png" {
		t.Fatalf("artifact path = %q", path)
	}
	img := testImage(true)
	if err := Save(path, img); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !got.Equal(img) {
		t.Fatal("reopened image differs")
	}
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.png"))
	if code := apperrors.GetCode(err); code != apperrors.CodeImageIO {
		t.Fatalf("code = %q, want %q (err %v)", code, apperrors.CodeImageIO, err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := Decode(bytes.NewReader([]byte("not a png"))); err == nil {
		t.Fatal("expected error")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(2, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	sub := src.SubImage(image.Rect(1, 2, 4, 4))
	got := FromImage(sub)
	if got.Width != 3 || got.Height != 2 {
		t.Fatalf("geometry %dx%d, want 3x2", got.Width, got.Height)
	}
	if px := got.At(1, 1); px != (steg.Pixel{1, 2, 3, 4}) {
		t.Fatalf("pixel = %v, want {1 2 3 4}", px)
	}
}

func testPlane(width, height int) []uint8 {
	samples := make([]uint8, width*height)
	for i := range samples {
		samples[i] = uint8(i*29 + 3)
	}
	return samples
}

func TestEncodeGrayPreservesSamples(t *testing.T) {
	t.Parallel()

	samples := testPlane(9, 4)
	var buf bytes.Buffer
	if err := EncodeGray(&buf, 9, 4, samples); err != nil {
		t.Fatalf("encode gray: %v", err)
	}
	src, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	if _, ok := src.(*image.Gray); !ok {
		t.Fatalf("decoded %T, want *image.Gray", src)
	}
	got, width, height, err := DecodeGray(&buf)
	if err != nil {
		t.Fatalf("decode gray: %v", err)
	}
	if width != 9 || height != 4 {
		t.Fatalf("geometry %dx%d, want 9x4", width, height)
	}
	if !bytes.Equal(got, samples) {
		t.Fatalf("samples = %v, want %v", got, samples)
	}
}

func TestSaveGray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "plane.png")
	samples := testPlane(4, 6)
	if err := SaveGray(path, 4, 6, samples); err != nil {
		t.Fatalf("save gray: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	got, _, _, err := DecodeGray(f)
	if err != nil {
		t.Fatalf("decode gray: %v", err)
	}
	if !bytes.Equal(got, samples) {
		t.Fatal("reopened plane differs")
	}
}

func TestEncodeGrayRejectsMismatchedBuffer(t *testing.T) {
	t.Parallel()

	err := EncodeGray(io.Discard, 4, 4, make([]uint8, 15))
	if code := apperrors.GetCode(err); code != apperrors.CodeImageDimensions {
		t.Fatalf("code = %q, want %q (err %v)", code, apperrors.CodeImageDimensions, err)
	}
}
