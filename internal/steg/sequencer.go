package steg

import "math/rand/v2"

// pcgStream is the fixed PCG increment shared by every generator in the
// package.
const pcgStream = 0xda3e39cb94b95bdb

// Streams holds the three generators derived from one seed.
//
// NewStreams draws exactly one value from the primary generator to seed the
// phrase generator. The method generator is a fresh generator on the same
// seed, so drawing a method never moves the primary generator. What remains
// of the primary generator is the embedding generator. Embed and Extract
// both build Streams from scratch per call; a Streams value must never be
// reused across calls.
type Streams struct {
	Phrase    *rand.Rand
	Method    *rand.Rand
	Embedding *rand.Rand
}

// NewStreams derives the phrase, method and embedding generators for seed.
func NewStreams(seed uint32) Streams {
	primary := newGenerator(uint64(seed))
	phraseSeed := primary.Uint32()
	return Streams{
		Phrase:    newGenerator(uint64(phraseSeed)),
		Method:    newGenerator(uint64(seed)),
		Embedding: primary,
	}
}

// ResolveMethod returns requested unchanged unless it is MethodUnspecified,
// in which case one value is drawn from the method generator.
func (s Streams) ResolveMethod(requested Method) Method {
	if requested != MethodUnspecified {
		return requested
	}
	return MethodFromDraw(s.Method.Uint64())
}

func newGenerator(seed uint64) *rand.Rand {
	// Deterministic by construction; not for secrets.
	// #nosec G404
	return rand.New(rand.NewPCG(seed, pcgStream))
}
