// Package steg hides seed-derived phrases inside RGBA pixel buffers and
// recovers them again.
//
// # Determinism
//
// Nothing about a challenge is stored. Given a seed, the package derives the
// phrase, the concealment method (unless the caller fixes one) and every
// placement parameter from three pseudo-random streams (see NewStreams).
// Embedding and extraction both rebuild those streams from scratch and draw
// from them in the same order, so the extractor reads exactly the pixels the
// embedder wrote.
//
// # Methods
//
// LSB spreads the message over the least significant bit of the red, green
// and blue channels of consecutive pixels. The single-channel methods (RED,
// GREEN, BLUE, ALPHA) write one bit per pixel into one of the three lowest
// bit planes of a channel. PVD hides a variable number of bits in the
// difference between paired pixels, following a boustrophedon scan. BPCS,
// DCT, DWT and DFT are declared for the draw table but have no codec; they
// report ErrUnsupportedMethod.
package steg
