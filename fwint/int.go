package fwint

import (
	"math/bits"
)

// Capacity is the number of 32-bit words held by every Int.
const Capacity = 500

// MaxBits is the total width of an Int, sign bit included.
const MaxBits = Capacity * 32

// Int is a signed integer of fixed width MaxBits, in two's complement.
//
// Words are stored in low-to-high order. The value is always kept fully
// sign-extended over the whole array (all words beyond the significant
// ones are 0x00000000 for a non-negative value, 0xFFFFFFFF for a negative
// one), so the sign is bit 31 of the last word. The length field counts
// the words up to the highest non-zero one (at least 1); for a negative
// value it is therefore always Capacity.
//
// The zero value is a valid Int equal to 0.
type Int struct {
	data   [Capacity]uint32
	length int
}

// Recompute the length after the words have been modified.
func (z *Int) norm() {
	n := Capacity
	for n > 1 && z.data[n-1] == 0 {
		n--
	}
	z.length = n
}

// Number of significant words (at least 1).
func (x *Int) size() int {
	if x.length < 1 {
		return 1
	}
	return x.length
}

func (x *Int) neg() bool {
	return (x.data[Capacity-1] >> 31) != 0
}

// Replace z with its two's complement negation (no overflow check).
func (z *Int) negate_raw() {
	cc := uint64(1)
	for i := 0; i < Capacity; i++ {
		w := uint64(^z.data[i]) + cc
		z.data[i] = uint32(w)
		cc = w >> 32
	}
	z.norm()
}

// Get the magnitude of x as a trimmed word slice. The most negative value
// yields 2^(MaxBits-1), which is representable as an unsigned pattern.
// The returned slice is a fresh copy.
func (x *Int) mag() []uint32 {
	if !x.neg() {
		m := make([]uint32, x.size())
		copy(m, x.data[:x.size()])
		return nat_trim(m)
	}
	t := *x
	t.negate_raw()
	m := make([]uint32, t.size())
	copy(m, t.data[:t.size()])
	return nat_trim(m)
}

// Build an Int from a magnitude and a sign. The magnitude may be longer
// than Capacity words as long as its extra words are zero. Fails if the
// signed value does not fit; the most negative value -2^(MaxBits-1) is
// accepted.
func from_mag(op string, m []uint32, negative bool) (*Int, error) {
	m = nat_trim(m)
	if len(m) > Capacity {
		return nil, fail(op, ErrOverflow)
	}
	z := new(Int)
	copy(z.data[:], m)
	if z.neg() {
		// Only -2^(MaxBits-1) has its top bit set in magnitude form.
		if !negative || len(nat_trim(z.data[:Capacity-1])) != 0 ||
			z.data[Capacity-1] != 0x80000000 {
			return nil, fail(op, ErrOverflow)
		}
		z.norm()
		return z, nil
	}
	z.norm()
	if negative && !z.IsZero() {
		z.negate_raw()
	}
	return z, nil
}

// NewInt returns a new Int set to v.
func NewInt(v int64) *Int {
	z := new(Int)
	u := uint64(v)
	z.data[0] = uint32(u)
	z.data[1] = uint32(u >> 32)
	if v < 0 {
		for i := 2; i < Capacity; i++ {
			z.data[i] = 0xFFFFFFFF
		}
	}
	z.norm()
	return z
}

// NewUint returns a new Int set to v.
func NewUint(v uint64) *Int {
	z := new(Int)
	z.data[0] = uint32(v)
	z.data[1] = uint32(v >> 32)
	z.norm()
	return z
}

// FromWords returns a new Int whose low-to-high two's complement words
// are w; missing high words are taken as zero, so the value is
// non-negative unless w has Capacity words with the top bit set. At most
// Capacity words are accepted.
func FromWords(w []uint32) (*Int, error) {
	if len(w) > Capacity {
		return nil, failf("FromWords", ErrOverflow, "%d words", len(w))
	}
	z := new(Int)
	copy(z.data[:], w)
	z.norm()
	return z, nil
}

// Clone returns a copy of x.
func (x *Int) Clone() *Int {
	z := new(Int)
	*z = *x
	z.length = x.size()
	return z
}

// Len returns the number of significant words of x (1 to Capacity).
func (x *Int) Len() int {
	return x.size()
}

// Words returns a copy of the significant two's complement words of x,
// low-to-high.
func (x *Int) Words() []uint32 {
	w := make([]uint32, x.size())
	copy(w, x.data[:x.size()])
	return w
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	if x.neg() {
		return -1
	}
	if x.IsZero() {
		return 0
	}
	return 1
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool {
	return x.size() == 1 && x.data[0] == 0
}

// Report whether x == 1.
func (x *Int) is_one() bool {
	return x.size() == 1 && x.data[0] == 1
}

// BitLen returns the length of the absolute value of x in bits; 0 has
// bit length 0.
func (x *Int) BitLen() int {
	m := x.mag()
	if len(m) == 0 {
		return 0
	}
	return (len(m)-1)*32 + bits.Len32(m[len(m)-1])
}

// Number of trailing zero bits of a non-zero x.
func (x *Int) trailing_zeros() int {
	for i := 0; i < Capacity; i++ {
		if x.data[i] != 0 {
			return i*32 + bits.TrailingZeros32(x.data[i])
		}
	}
	return 0
}

var (
	int_zero = NewInt(0)
	int_one  = NewInt(1)
	int_two  = NewInt(2)
)
