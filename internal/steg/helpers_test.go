package steg

import "testing"

// testConfig is a small geometry that still fits every default phrase.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 48
	return cfg
}

// patternCover paints a seed-keyed gradient with hard edges so PVD sees a
// mix of smooth and high-contrast pairs.
func patternCover(seed uint32, width, height int) (*Image, error) {
	img := NewImage(width, height)
	s := int(seed)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, Pixel{
				uint8((x*17 + s) ^ (y * 31)),
				uint8(x*43 + y*13 + s),
				uint8((x * 7) ^ (y*11 + s)),
				255,
			})
		}
	}
	return img, nil
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(testConfig(), CoverFunc(patternCover))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func implementedMethods() []Method {
	var out []Method
	for _, m := range Methods() {
		if m.Implemented() {
			out = append(out, m)
		}
	}
	return out
}
