package fwint

import (
	"fmt"
	"strings"
)

// Conversions from and to machine integers, byte arrays and strings.

const digit_chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Int32 returns the low 32 bits of x as an int32 (truncating).
func (x *Int) Int32() int32 {
	return int32(x.data[0])
}

// Int64 returns the low 64 bits of x as an int64 (truncating).
func (x *Int) Int64() int64 {
	return int64(uint64(x.data[0]) | (uint64(x.data[1]) << 32))
}

// FromBytes interprets b as an unsigned big-endian magnitude. The result
// is never negative; an error is returned if the magnitude needs more
// than MaxBits-1 bits. Leading zero bytes are ignored, and an empty
// slice yields 0.
func FromBytes(b []byte) (*Int, error) {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > Capacity*4 {
		return nil, failf("FromBytes", ErrOverflow, "%d bytes", len(b))
	}
	z := new(Int)
	j := 0
	for i := len(b); i > 0; i -= 4 {
		w := uint32(0)
		k := i - 4
		if k < 0 {
			k = 0
		}
		for _, c := range b[k:i] {
			w = (w << 8) | uint32(c)
		}
		z.data[j] = w
		j++
	}
	if z.neg() {
		return nil, failf("FromBytes", ErrOverflow, "%d bytes", len(b))
	}
	z.norm()
	return z, nil
}

// Bytes returns the absolute value of x as a big-endian byte array of
// minimal length (no leading zero byte). The sign is not encoded. Zero
// is returned as a single zero byte.
func (x *Int) Bytes() []byte {
	m := x.mag()
	if len(m) == 0 {
		return []byte{0}
	}
	top := m[len(m)-1]
	nb := 0
	for t := top; t != 0; t >>= 8 {
		nb++
	}
	b := make([]byte, nb+4*(len(m)-1))
	j := 0
	for k := nb - 1; k >= 0; k-- {
		b[j] = byte(top >> (8 * uint(k)))
		j++
	}
	for i := len(m) - 2; i >= 0; i-- {
		w := m[i]
		b[j] = byte(w >> 24)
		b[j+1] = byte(w >> 16)
		b[j+2] = byte(w >> 8)
		b[j+3] = byte(w)
		j += 4
	}
	return b
}

// Get the largest power of radix that fits in a word, and its exponent.
func radix_chunk(radix int) (uint32, int) {
	p := uint64(radix)
	k := 1
	for p*uint64(radix) <= 0xFFFFFFFF {
		p *= uint64(radix)
		k++
	}
	return uint32(p), k
}

// Text returns the representation of x in the given radix (2 to 36):
// a '-' sign for negative values, then the digits of the absolute value
// (0-9, then A-Z), without leading zeros.
func (x *Int) Text(radix int) (string, error) {
	if radix < 2 || radix > 36 {
		return "", failf("Text", ErrInvalidArgument, "radix %d", radix)
	}
	m := x.mag()
	if len(m) == 0 {
		return "0", nil
	}

	// Peel off chunks of k digits by dividing by radix^k, then split
	// each chunk into digits. Digits are produced low-to-high.
	pk, k := radix_chunk(radix)
	digits := make([]byte, 0, len(m)*32)
	for len(m) > 0 {
		c := nat_div_small(m, m, pk)
		m = nat_trim(m)
		for i := 0; i < k; i++ {
			if len(m) == 0 && c == 0 {
				break
			}
			digits = append(digits, digit_chars[c%uint32(radix)])
			c /= uint32(radix)
		}
	}

	var sb strings.Builder
	if x.neg() {
		sb.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String(), nil
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	s, _ := x.Text(10)
	return s
}

// HexString returns the raw two's complement words of x in hexadecimal,
// high word first, without sign: the top significant word is printed
// without leading zeros and the others on eight digits each. For a
// negative value this includes all the sign-extension words, so the
// result does not parse back to the same value with Parse.
func (x *Int) HexString() string {
	n := x.size()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%X", x.data[n-1])
	for i := n - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08X", x.data[i])
	}
	return sb.String()
}

// Parse converts a string in the given radix (2 to 36) into an Int. The
// accepted format is the one produced by Text: an optional '-' followed
// by at least one digit; letters may be in either case and surrounding
// white space is ignored.
func Parse(s string, radix int) (*Int, error) {
	if radix < 2 || radix > 36 {
		return nil, failf("Parse", ErrInvalidArgument, "radix %d", radix)
	}
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, failf("Parse", ErrFormat, "no digits")
	}
	vals := make([]uint32, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'A' && c <= 'Z':
			d = int(c-'A') + 10
		case c >= 'a' && c <= 'z':
			d = int(c-'a') + 10
		default:
			d = 36
		}
		if d >= radix {
			return nil, failf("Parse", ErrFormat,
				"invalid digit %q for radix %d", c, radix)
		}
		vals[i] = uint32(d)
	}

	// Horner evaluation over the magnitude, with one spare word to
	// detect overflow.
	acc := make([]uint32, Capacity+1)
	alen := 0
	r := uint64(radix)
	for _, d := range vals {
		cc := uint64(d)
		for i := 0; i < alen; i++ {
			w := uint64(acc[i])*r + cc
			acc[i] = uint32(w)
			cc = w >> 32
		}
		if cc != 0 {
			if alen == len(acc) {
				return nil, fail("Parse", ErrOverflow)
			}
			acc[alen] = uint32(cc)
			alen++
		}
	}
	return from_mag("Parse", acc[:alen], negative)
}

// MustParse is like Parse but panics on error. It is meant for
// constants in tests and examples.
func MustParse(s string, radix int) *Int {
	z, err := Parse(s, radix)
	if err != nil {
		panic(err)
	}
	return z
}
