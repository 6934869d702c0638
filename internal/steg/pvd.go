package steg

import "math/bits"

// interval is one row of the PVD range table. Its width is a power of two,
// so a difference inside it can carry log2(width) bits.
type interval struct {
	lower int
	upper int
}

var intervals = [...]interval{
	{0, 7},
	{8, 15},
	{16, 31},
	{32, 63},
	{64, 127},
	{128, 255},
}

// intervalFor returns the bit capacity and floor of the range holding
// |difference|. Magnitudes above 255 fall into the last range.
func intervalFor(difference int) (capacity int, floor int) {
	magnitude := difference
	if magnitude < 0 {
		magnitude = -magnitude
	}
	for _, iv := range intervals {
		if magnitude <= iv.upper {
			return bits.TrailingZeros(uint(iv.upper - iv.lower + 1)), iv.lower
		}
	}
	last := intervals[len(intervals)-1]
	return bits.TrailingZeros(uint(last.upper - last.lower + 1)), last.lower
}

// pvdCodec hides bits in the difference between paired pixels. Placement
// comes entirely from the zigzag scan; it draws nothing from the generator.
type pvdCodec struct{}

// capacity sums per-channel capacity over the pairs of img, stopping early
// once need bits are covered. Embedding keeps every difference inside its
// original range, so this is exactly what embed can store.
func (pvdCodec) capacity(img *Image, order []int, need int) int {
	total := 0
	for i := 0; i+1 < len(order); i += 2 {
		p1, p2 := img.Pix[order[i]], img.Pix[order[i+1]]
		for ch := ChannelRed; ch <= ChannelBlue; ch++ {
			n, _ := intervalFor(int(p2[ch]) - int(p1[ch]))
			total += n
			if total >= need {
				return total
			}
		}
	}
	return total
}

func (c pvdCodec) embed(_ drawer, img *Image, message []uint8) (Placement, error) {
	order := Zigzag(img.Width, img.Height)
	if have := c.capacity(img, order, len(message)); have < len(message) {
		return Placement{}, capacityError(MethodPVD, len(message), have)
	}

	next := 0
	for i := 0; i+1 < len(order) && next < len(message); i += 2 {
		p1, p2 := &img.Pix[order[i]], &img.Pix[order[i+1]]
		for ch := ChannelRed; ch <= ChannelBlue && next < len(message); ch++ {
			difference := int(p2[ch]) - int(p1[ch])
			capacity, floor := intervalFor(difference)

			take := min(capacity, len(message)-next)
			value := 0
			for _, bit := range message[next : next+take] {
				value = value<<1 | int(bit)
			}
			next += take

			target := floor + value
			if difference < 0 {
				target = -target
			}
			p1[ch], p2[ch] = spread(int(p1[ch]), int(p2[ch]), target-difference)
		}
	}
	return Placement{}, nil
}

func (c pvdCodec) extract(_ drawer, img *Image, bitLen int) ([]uint8, error) {
	order := Zigzag(img.Width, img.Height)
	out := make([]uint8, 0, bitLen)
	for i := 0; i+1 < len(order) && len(out) < bitLen; i += 2 {
		p1, p2 := img.Pix[order[i]], img.Pix[order[i+1]]
		for ch := ChannelRed; ch <= ChannelBlue && len(out) < bitLen; ch++ {
			difference := int(p2[ch]) - int(p1[ch])
			capacity, floor := intervalFor(difference)
			magnitude := difference
			if magnitude < 0 {
				magnitude = -magnitude
			}
			value := magnitude - floor

			take := min(capacity, bitLen-len(out))
			for shift := take - 1; shift >= 0; shift-- {
				out = append(out, uint8(value>>shift&1))
			}
		}
	}
	if len(out) < bitLen {
		return nil, capacityError(MethodPVD, bitLen, len(out))
	}
	return out, nil
}

// spread moves the pair (p1, p2) so that p2-p1 grows by delta: p1 drops by
// floor(delta/2) and p2 rises by the rest. If that leaves the byte range,
// both values shift together, which keeps the new difference intact. That
// always fits because the target difference never exceeds 255.
func spread(p1, p2, delta int) (uint8, uint8) {
	down := delta >> 1
	n1 := p1 - down
	n2 := p2 + (delta - down)
	if low := min(n1, n2); low < 0 {
		n1 -= low
		n2 -= low
	}
	if high := max(n1, n2); high > 255 {
		n1 -= high - 255
		n2 -= high - 255
	}
	return uint8(n1), uint8(n2)
}
