package fwint

import (
	"math/bits"
)

// Unsigned word-level arithmetic.
//
// Magnitudes are handled as slices of 32-bit words in low-to-high order,
// without any sign convention. The functions below are the building
// blocks of the signed Int operators; they never allocate unless noted,
// and they do not check for overflow (callers size their outputs).

// Return x without its high zero words (possibly an empty slice).
func nat_trim(x []uint32) []uint32 {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// Compare two magnitudes; returned value is -1, 0 or 1. Inputs need not
// be trimmed.
func nat_cmp(x []uint32, y []uint32) int {
	x = nat_trim(x)
	y = nat_trim(y)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Schoolbook product z = x*y. Slice z must have length at least
// len(x)+len(y) and be cleared by the caller; z must not overlap x or y.
// Zero words of x are skipped.
func nat_mul(z []uint32, x []uint32, y []uint32) {
	for i := 0; i < len(x); i++ {
		xw := uint64(x[i])
		if xw == 0 {
			continue
		}
		cc := uint64(0)
		k := i
		for j := 0; j < len(y); j++ {
			t := xw*uint64(y[j]) + uint64(z[k]) + cc
			z[k] = uint32(t)
			cc = t >> 32
			k++
		}
		z[i+len(y)] = uint32(cc)
	}
}

// Divide magnitude u by the single word d (non-zero). The quotient is
// written in q (same length as u, may be u itself); the remainder is
// returned.
func nat_div_small(q []uint32, u []uint32, d uint32) uint32 {
	r := uint32(0)
	for i := len(u) - 1; i >= 0; i-- {
		q[i], r = bits.Div32(r, u[i], d)
	}
	return r
}

// Remainder of magnitude u modulo the single word d (non-zero).
func nat_mod_small(u []uint32, d uint32) uint32 {
	r := uint32(0)
	for i := len(u) - 1; i >= 0; i-- {
		_, r = bits.Div32(r, u[i], d)
	}
	return r
}

// Long division of u by v, with len(v) >= 2 and v[len(v)-1] != 0
// (normalized long division, Knuth's Algorithm D). Let m = len(u) and
// n = len(v), with m >= n. The quotient (m-n+1 words) is written in q,
// the remainder (n words) in r. Temporary buffers are allocated.
func nat_divmod(q []uint32, r []uint32, u []uint32, v []uint32) {
	m := len(u)
	n := len(v)

	// Normalize: shift v left until its top bit is set, and shift u by
	// the same amount (u gains an extra top word). Shifting a uint32 by
	// 32 yields 0 in Go, so s = 0 needs no special case.
	s := uint(bits.LeadingZeros32(v[n-1]))
	vn := make([]uint32, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = (v[i] << s) | (v[i-1] >> (32 - s))
	}
	vn[0] = v[0] << s
	un := make([]uint32, m+1)
	un[m] = u[m-1] >> (32 - s)
	for i := m - 1; i > 0; i-- {
		un[i] = (u[i] << s) | (u[i-1] >> (32 - s))
	}
	un[0] = u[0] << s

	vtop := uint64(vn[n-1])
	vnext := uint64(vn[n-2])
	for j := m - n; j >= 0; j-- {
		// Estimate the quotient word from the top two words of the
		// current window and the top divisor word, then correct it
		// downward using the second divisor word. After this loop,
		// qhat is at most one unit too large.
		num := (uint64(un[j+n]) << 32) | uint64(un[j+n-1])
		qhat := num / vtop
		rhat := num - qhat*vtop
		for qhat >= (1<<32) || qhat*vnext > ((rhat<<32)|uint64(un[j+n-2])) {
			qhat--
			rhat += vtop
			if rhat >= (1 << 32) {
				break
			}
		}

		// Multiply and subtract.
		k := int64(0)
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p&0xFFFFFFFF)
			un[i+j] = uint32(t)
			k = int64(p>>32) - (t >> 32)
		}
		t := int64(un[j+n]) - k
		un[j+n] = uint32(t)

		// If the subtraction went negative, the estimate was one too
		// large: add the divisor back.
		if t < 0 {
			qhat--
			cc := uint64(0)
			for i := 0; i < n; i++ {
				w := uint64(un[i+j]) + uint64(vn[i]) + cc
				un[i+j] = uint32(w)
				cc = w >> 32
			}
			un[j+n] += uint32(cc)
		}
		q[j] = uint32(qhat)
	}

	// Denormalize the remainder.
	for i := 0; i < n-1; i++ {
		r[i] = (un[i] >> s) | (un[i+1] << (32 - s))
	}
	r[n-1] = un[n-1] >> s
}

// Subtract y from x in place, over len(x) words (y may be shorter);
// the final borrow (0 or 1) is returned.
func nat_sub(x []uint32, y []uint32) uint32 {
	bb := uint64(0)
	for i := 0; i < len(x); i++ {
		yw := uint64(0)
		if i < len(y) {
			yw = uint64(y[i])
		}
		w := uint64(x[i]) - yw - bb
		x[i] = uint32(w)
		bb = w >> 63
	}
	return uint32(bb)
}
