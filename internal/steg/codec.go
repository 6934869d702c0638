package steg

// Placement records where a method put the message. It is derived from the
// seed and returned for display only; extraction recomputes it.
type Placement struct {
	Offset int
	Index  int
}

// drawer is the slice of a generator the codecs consume.
type drawer interface {
	Uint64() uint64
}

// codec is one symmetric embed/extract pair. Both sides must consume the
// same draws in the same order.
type codec interface {
	embed(rng drawer, img *Image, bits []uint8) (Placement, error)
	extract(rng drawer, img *Image, bitLen int) ([]uint8, error)
}

func codecFor(method Method) codec {
	switch method {
	case MethodLSB:
		return lsbCodec{}
	case MethodRed:
		return layerCodec{channel: ChannelRed}
	case MethodGreen:
		return layerCodec{channel: ChannelGreen}
	case MethodBlue:
		return layerCodec{channel: ChannelBlue}
	case MethodAlpha:
		return layerCodec{channel: ChannelAlpha}
	case MethodPVD:
		return pvdCodec{}
	default:
		return unsupportedCodec{method: method}
	}
}

// unsupportedCodec stands in for declared methods without an algorithm.
// Embedding leaves the image alone and extraction yields nothing.
type unsupportedCodec struct {
	method Method
}

func (c unsupportedCodec) embed(drawer, *Image, []uint8) (Placement, error) {
	return Placement{}, unsupportedError(c.method)
}

func (c unsupportedCodec) extract(drawer, *Image, int) ([]uint8, error) {
	return nil, unsupportedError(c.method)
}
