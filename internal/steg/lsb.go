package steg

// lsbCodec writes three bits per pixel into the least significant bit of
// red, green and blue. Alpha is never touched.
type lsbCodec struct{}

const lsbBitsPerPixel = 3

func lsbPixels(bitLen int) int {
	return (bitLen + lsbBitsPerPixel - 1) / lsbBitsPerPixel
}

// offset draws the starting pixel. It is the only draw this method makes.
func (lsbCodec) offset(rng drawer, img *Image, bitLen int) (int, error) {
	total := len(img.Pix)
	need := lsbPixels(bitLen)
	if need > total {
		return 0, capacityError(MethodLSB, bitLen, total*lsbBitsPerPixel)
	}
	return int(rng.Uint64() % uint64(total-need+1)), nil
}

func (c lsbCodec) embed(rng drawer, img *Image, bits []uint8) (Placement, error) {
	offset, err := c.offset(rng, img, len(bits))
	if err != nil {
		return Placement{}, err
	}
	next := 0
	for i := 0; i < lsbPixels(len(bits)); i++ {
		px := &img.Pix[offset+i]
		for ch := ChannelRed; ch <= ChannelBlue && next < len(bits); ch++ {
			px[ch] = px[ch]&^1 | bits[next]
			next++
		}
	}
	return Placement{Offset: offset}, nil
}

func (c lsbCodec) extract(rng drawer, img *Image, bitLen int) ([]uint8, error) {
	offset, err := c.offset(rng, img, bitLen)
	if err != nil {
		return nil, err
	}
	n := lsbPixels(bitLen)
	bits := make([]uint8, 0, n*lsbBitsPerPixel)
	for _, px := range img.Pix[offset : offset+n] {
		for ch := ChannelRed; ch <= ChannelBlue; ch++ {
			bits = append(bits, px[ch]&1)
		}
	}
	return bits[:bitLen], nil
}
