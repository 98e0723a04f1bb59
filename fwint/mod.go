package fwint

// Modular arithmetic: Barrett reduction, modular exponentiation, GCD and
// modular inverse.

// MaxModulusWords is the largest word length of a modulus usable with
// Barrett reduction (and thus with ModPow): the reduction constant
// b^(2k)/n and the intermediate products must fit in an Int.
const MaxModulusWords = (Capacity - 2) / 2

// BarrettConstant returns floor(b^(2k) / n), with b = 2^32 and k the
// word length of n. It is the precomputed value expected by
// BarrettReduce. The modulus n must be positive and at most
// MaxModulusWords words long.
func BarrettConstant(n *Int) (*Int, error) {
	if n.IsZero() {
		return nil, fail("BarrettConstant", ErrDivideByZero)
	}
	if n.neg() {
		return nil, failf("BarrettConstant", ErrInvalidArgument, "negative modulus")
	}
	k := n.size()
	if k > MaxModulusWords {
		return nil, failf("BarrettConstant", ErrOverflow, "modulus of %d words", k)
	}
	b2k := new(Int)
	b2k.data[2*k] = 1
	b2k.norm()
	return b2k.Div(n)
}

// BarrettReduce returns x mod n, using the constant mu computed by
// BarrettConstant(n) to replace the division with two multiplications.
//
// The input must satisfy 0 <= x < b^(2k) (k being the word length of n),
// which holds in particular for 0 <= x < n^2.
func BarrettReduce(x, n, mu *Int) (*Int, error) {
	if n.Sign() <= 0 || mu.Sign() <= 0 {
		return nil, failf("BarrettReduce", ErrInvalidArgument, "non-positive modulus or constant")
	}
	if x.neg() {
		return nil, failf("BarrettReduce", ErrInvalidArgument, "negative operand")
	}
	k := n.size()
	xw := x.data[:x.size()]
	if len(xw) > 2*k {
		return nil, failf("BarrettReduce", ErrInvalidArgument,
			"operand of %d words for a modulus of %d words", len(xw), k)
	}

	// q1 = floor(x / b^(k-1))
	// q2 = q1 * mu
	// q3 = floor(q2 / b^(k+1))
	var q1 []uint32
	if len(xw) > k-1 {
		q1 = xw[k-1:]
	}
	muw := mu.data[:mu.size()]
	q2 := make([]uint32, len(q1)+len(muw))
	nat_mul(q2, q1, muw)
	var q3 []uint32
	if len(q2) > k+1 {
		q3 = q2[k+1:]
	}

	// r1 = x mod b^(k+1)
	r := make([]uint32, k+1)
	copy(r, xw)

	// r2 = (q3 * n) mod b^(k+1), computed as a truncated product.
	nw := n.data[:k]
	r2 := make([]uint32, k+1)
	for i := 0; i < len(q3) && i < k+1; i++ {
		qw := uint64(q3[i])
		if qw == 0 {
			continue
		}
		cc := uint64(0)
		t := i
		for j := 0; j < k && t < k+1; j++ {
			w := qw*uint64(nw[j]) + uint64(r2[t]) + cc
			r2[t] = uint32(w)
			cc = w >> 32
			t++
		}
		if t < k+1 {
			r2[t] = uint32(cc)
		}
	}

	// r = r1 - r2 mod b^(k+1); dropping the borrow adds b^(k+1) when
	// the difference is negative. At most two subtractions of n remain.
	nat_sub(r, r2)
	for nat_cmp(r, nw) >= 0 {
		nat_sub(r, nw)
	}
	return from_mag("BarrettReduce", r, false)
}

// ModPow returns x^e mod |m|.
//
// The exponent must be non-negative. Exponentiation is a left-to-right
// square-and-multiply, from the most significant bit of e down, with a
// Barrett reduction after every product. A negative x is handled through
// its absolute value; for an odd exponent the result is then negated,
// i.e. it lies in (-|m|, 0].
func (x *Int) ModPow(e, m *Int) (*Int, error) {
	if e.neg() {
		return nil, fail("ModPow", ErrNegativeExponent)
	}
	if m.IsZero() {
		return nil, fail("ModPow", ErrDivideByZero)
	}
	n, err := from_mag("ModPow", m.mag(), false)
	if err != nil {
		return nil, err
	}
	if n.is_one() {
		return new(Int), nil
	}
	mu, err := BarrettConstant(n)
	if err != nil {
		return nil, fail("ModPow", err)
	}
	_, bm := div_mag(x.mag(), n.mag())
	base, err := from_mag("ModPow", bm, false)
	if err != nil {
		return nil, err
	}

	var c calc
	result := int_one.Clone()
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = c.mulmod(result, result, n, mu)
		if e.Bit(i) != 0 {
			result = c.mulmod(result, base, n, mu)
		}
	}
	if x.neg() && e.Bit(0) != 0 {
		result = c.neg(result)
	}
	if c.err != nil {
		return nil, fail("ModPow", c.err)
	}
	return result, nil
}

// Gcd returns the greatest common divisor of |x| and |y| (Euclid's
// algorithm). Gcd(0, 0) is 0.
func (x *Int) Gcd(y *Int) (*Int, error) {
	a := x.mag()
	b := y.mag()
	for len(a) > 0 {
		_, r := div_mag(b, a)
		b = a
		a = nat_trim(r)
	}
	return from_mag("Gcd", b, false)
}

// ModInverse returns the inverse of x modulo m, i.e. the value v in
// [0, m) such that x*v = 1 mod m. The modulus must be positive;
// ErrNoInverse is returned when gcd(x, m) != 1.
func (x *Int) ModInverse(m *Int) (*Int, error) {
	if m.IsZero() {
		return nil, fail("ModInverse", ErrDivideByZero)
	}
	if m.neg() {
		return nil, failf("ModInverse", ErrInvalidArgument, "negative modulus")
	}

	// Extended Euclid over (m, x mod m), tracking only the Bezout
	// coefficient of x: t_{i+1} = t_{i-1} - q_i*t_i.
	var c calc
	r0 := m.Clone()
	r1 := c.nmod(x, m)
	t0 := new(Int)
	t1 := int_one.Clone()
	for c.err == nil && !r1.IsZero() {
		q, r, err := r0.DivMod(r1)
		if err != nil {
			return nil, fail("ModInverse", err)
		}
		r0, r1 = r1, r
		t0, t1 = t1, c.sub(t0, c.mul(q, t1))
	}
	if c.err != nil {
		return nil, fail("ModInverse", c.err)
	}
	if !r0.is_one() {
		return nil, fail("ModInverse", ErrNoInverse)
	}
	v := c.nmod(t0, m)
	if c.err != nil {
		return nil, fail("ModInverse", c.err)
	}
	return v, nil
}
