package fwint

import (
	"crypto/rand"
	"io"

	sha3 "golang.org/x/crypto/sha3"
)

// Rand is a source of uniformly distributed 32-bit words. It need not be
// cryptographically secure; *math/rand.Rand implements it, as does
// *ShakeRand.
type Rand interface {
	Uint32() uint32
}

// ShakeRand is a deterministic pseudo-random generator based on four
// parallel SHAKE256 instances, with interleaved outputs. Two instances
// created with the same seed produce the same sequence. It implements
// both Rand and io.Reader. A ShakeRand is not safe for concurrent use.
//
// Lane i absorbs seed||byte(i). Output is taken in 8-byte chunks from
// lanes 0, 1, 2, 3 in turn, so each refill yields 544 bytes: one 136-byte
// SHAKE256 block per lane.
type ShakeRand struct {
	state [4]sha3.ShakeHash
	buf   [4 * 136]byte
	ptr   int
}

// NewShakeRand creates a new generator initialized with the provided
// seed (of any length).
func NewShakeRand(seed []byte) *ShakeRand {
	r := new(ShakeRand)
	r.ptr = len(r.buf)
	for lane := range r.state {
		h := sha3.NewShake256()
		h.Write(seed)
		h.Write([]byte{byte(lane)})
		r.state[lane] = h
	}
	return r
}

// NewSystemRand returns a ShakeRand seeded with 32 bytes from the
// operating system's RNG.
func NewSystemRand() (*ShakeRand, error) {
	var seed [32]byte
	if _, err := io.ReadFull(rand.Reader, seed[:]); err != nil {
		return nil, err
	}
	return NewShakeRand(seed[:]), nil
}

// Use rng, or a fresh system-seeded generator when it is nil.
func rand_or_default(op string, rng Rand) (Rand, error) {
	if rng != nil {
		return rng, nil
	}
	r, err := NewSystemRand()
	if err != nil {
		return nil, fail(op, err)
	}
	return r, nil
}

// Uint32 returns the next 32-bit word (little-endian decoding of the
// next four output bytes).
func (r *ShakeRand) Uint32() uint32 {
	ptr := r.ptr
	if ptr >= (len(r.buf) - 3) {
		r.refill()
		ptr = 0
	}
	r.ptr = ptr + 4
	return uint32(r.buf[ptr]) | (uint32(r.buf[ptr+1]) << 8) |
		(uint32(r.buf[ptr+2]) << 16) | (uint32(r.buf[ptr+3]) << 24)
}

// Read fills p with pseudo-random bytes; it never fails.
func (r *ShakeRand) Read(p []byte) (int, error) {
	for i := range p {
		if r.ptr == len(r.buf) {
			r.refill()
		}
		p[i] = r.buf[r.ptr]
		r.ptr++
	}
	return len(p), nil
}

// refill squeezes one block from every lane; chunk k of lane i lands at
// offset 32*k + 8*i.
func (r *ShakeRand) refill() {
	var block [136]byte
	for lane, h := range r.state {
		h.Read(block[:])
		for off := 0; off < len(block); off += 8 {
			dst := 4*off + 8*lane
			copy(r.buf[dst:dst+8], block[off:off+8])
		}
	}
	r.ptr = 0
}

// Get a value in [0, n) for a small positive n, by scaling a random word
// (as a fraction of 2^32) by n.
func rand_below(rng Rand, n int) int {
	return int((uint64(rng.Uint32()) * uint64(n)) >> 32)
}

// GenerateRandomBits returns a random non-negative value of exactly
// bits bits: the low words are filled from rng, the top requested bit is
// forced to 1 and the bits above it are cleared. The bit length must be
// between 1 and MaxBits-1.
func GenerateRandomBits(bits int, rng Rand) (*Int, error) {
	if bits < 1 || bits >= MaxBits {
		return nil, failf("GenerateRandomBits", ErrInvalidArgument, "bit length %d", bits)
	}
	rng, err := rand_or_default("GenerateRandomBits", rng)
	if err != nil {
		return nil, err
	}
	return random_bits(bits, rng), nil
}

// Inner function; bits is assumed to be in range and rng non-nil.
func random_bits(bits int, rng Rand) *Int {
	z := new(Int)
	dw := (bits + 31) >> 5
	for i := 0; i < dw; i++ {
		z.data[i] = rng.Uint32()
	}
	rem := uint(bits & 31)
	if rem != 0 {
		z.data[dw-1] |= uint32(1) << (rem - 1)
		z.data[dw-1] &= 0xFFFFFFFF >> (32 - rem)
	} else {
		z.data[dw-1] |= 0x80000000
	}
	z.norm()
	return z
}

// GenerateCoprime returns a random value of exactly bits bits which is
// coprime with x. Candidates are drawn with GenerateRandomBits until one
// qualifies; there is no iteration limit.
func (x *Int) GenerateCoprime(bits int, rng Rand) (*Int, error) {
	if bits < 1 || bits >= MaxBits {
		return nil, failf("GenerateCoprime", ErrInvalidArgument, "bit length %d", bits)
	}
	rng, err := rand_or_default("GenerateCoprime", rng)
	if err != nil {
		return nil, err
	}
	for {
		r := random_bits(bits, rng)
		g, err := r.Gcd(x)
		if err != nil {
			return nil, fail("GenerateCoprime", err)
		}
		if g.is_one() {
			return r, nil
		}
	}
}

// GeneratePseudoPrime returns a random odd value of exactly bits bits
// (at least 2) that passes IsProbablePrimeRounds(confidence). Candidates
// are drawn until one is accepted; there is no iteration limit.
func GeneratePseudoPrime(bits int, confidence int, rng Rand) (*Int, error) {
	if bits < 2 || bits >= MaxBits {
		return nil, failf("GeneratePseudoPrime", ErrInvalidArgument, "bit length %d", bits)
	}
	rng, err := rand_or_default("GeneratePseudoPrime", rng)
	if err != nil {
		return nil, err
	}
	for {
		r := random_bits(bits, rng)
		r.data[0] |= 1
		ok, err := r.IsProbablePrimeRounds(confidence, rng)
		if err != nil {
			return nil, fail("GeneratePseudoPrime", err)
		}
		if ok {
			return r, nil
		}
	}
}
