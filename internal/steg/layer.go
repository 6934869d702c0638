package steg

// layerCodec writes one bit per pixel into a single channel, on one of its
// three lowest bit planes.
type layerCodec struct {
	channel Channel
}

const (
	layerCount     = 3
	layerAlignment = 8
)

func (c layerCodec) method() Method {
	switch c.channel {
	case ChannelGreen:
		return MethodGreen
	case ChannelBlue:
		return MethodBlue
	case ChannelAlpha:
		return MethodAlpha
	default:
		return MethodRed
	}
}

// placement makes exactly two draws: the byte-aligned start pixel, then the
// bit plane.
func (c layerCodec) placement(rng drawer, img *Image, bitLen int) (Placement, error) {
	total := len(img.Pix)
	if bitLen > total {
		return Placement{}, capacityError(c.method(), bitLen, total)
	}
	offset := int(rng.Uint64() % uint64(total-bitLen+1))
	offset -= offset % layerAlignment
	layer := int(rng.Uint64() % layerCount)
	return Placement{Offset: offset, Index: layer}, nil
}

func (c layerCodec) embed(rng drawer, img *Image, bits []uint8) (Placement, error) {
	placement, err := c.placement(rng, img, len(bits))
	if err != nil {
		return Placement{}, err
	}
	mask := uint8(1) << placement.Index
	for i, bit := range bits {
		px := &img.Pix[placement.Offset+i]
		px[c.channel] = px[c.channel]&^mask | bit<<placement.Index
	}
	return placement, nil
}

func (c layerCodec) extract(rng drawer, img *Image, bitLen int) ([]uint8, error) {
	placement, err := c.placement(rng, img, bitLen)
	if err != nil {
		return nil, err
	}
	bits := make([]uint8, bitLen)
	for i := range bits {
		bits[i] = img.Pix[placement.Offset+i][c.channel] >> placement.Index & 1
	}
	return bits, nil
}
