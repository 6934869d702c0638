package steg

import (
	"bytes"
	"errors"
	"testing"
)

func TestLayerPlacementAlignedAndBounded(t *testing.T) {
	img := NewImage(40, 40)
	bits := make([]uint8, 100)
	for seed := uint64(0); seed < 200; seed++ {
		placement, err := layerCodec{channel: ChannelRed}.embed(newGenerator(seed), img, bits)
		if err != nil {
			t.Fatalf("seed %d: embed: %v", seed, err)
		}
		if placement.Offset%8 != 0 {
			t.Fatalf("seed %d: offset %d is not byte aligned", seed, placement.Offset)
		}
		if placement.Offset+len(bits) > len(img.Pix) {
			t.Fatalf("seed %d: offset %d overruns image", seed, placement.Offset)
		}
		if placement.Index < 0 || placement.Index > 2 {
			t.Fatalf("seed %d: layer %d outside {0,1,2}", seed, placement.Index)
		}
	}
}

func TestLayerDrawsTwoValues(t *testing.T) {
	img := NewImage(20, 20)
	bits := make([]uint8, 16)

	rng := newGenerator(11)
	placement, err := layerCodec{channel: ChannelBlue}.embed(rng, img, bits)
	if err != nil {
		t.Fatalf("embed: %v", err)
	}

	reference := newGenerator(11)
	offset := int(reference.Uint64() % uint64(400-16+1))
	offset -= offset % 8
	layer := int(reference.Uint64() % 3)
	if placement.Offset != offset || placement.Index != layer {
		t.Fatalf("placement = %+v, want {%d %d}", placement, offset, layer)
	}
	if rng.Uint64() != reference.Uint64() {
		t.Fatal("layer embed did not consume exactly two draws")
	}
}

func TestLayerTouchesOnlySelectedPlane(t *testing.T) {
	for _, ch := range []Channel{ChannelRed, ChannelGreen, ChannelBlue, ChannelAlpha} {
		img, _ := patternCover(2, 24, 24)
		before := img.Clone()
		bits := ToBits([]byte("plane"))

		placement, err := layerCodec{channel: ch}.embed(newGenerator(8), img, bits)
		if err != nil {
			t.Fatalf("%s: embed: %v", ch, err)
		}
		mask := uint8(1) << placement.Index
		for i := range img.Pix {
			for other := ChannelRed; other <= ChannelAlpha; other++ {
				got, was := img.Pix[i][other], before.Pix[i][other]
				if other != ch && got != was {
					t.Fatalf("%s: pixel %d channel %s changed", ch, i, other)
				}
				if other == ch && got&^mask != was&^mask {
					t.Fatalf("%s: pixel %d changed outside plane %d", ch, i, placement.Index)
				}
			}
		}

		got, err := layerCodec{channel: ch}.extract(newGenerator(8), img, len(bits))
		if err != nil {
			t.Fatalf("%s: extract: %v", ch, err)
		}
		if !bytes.Equal(got, bits) {
			t.Fatalf("%s: extracted bits differ", ch)
		}
	}
}

func TestLayerCapacity(t *testing.T) {
	img := NewImage(4, 4)
	_, err := layerCodec{channel: ChannelGreen}.embed(newGenerator(1), img, make([]uint8, 17))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("embed error = %v, want ErrCapacityExceeded", err)
	}
}
