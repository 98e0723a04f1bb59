package fwint

// LucasSequence returns U_k mod n, V_k mod n and Q^k mod n for the Lucas
// sequences of parameters (p, q):
//
//	U_0 = 0, U_1 = 1, U_{i+2} = p*U_{i+1} - q*U_i
//	V_0 = 2, V_1 = p, V_{i+2} = p*V_{i+1} - q*V_i
//
// The modulus n must be positive and k non-negative. The index is
// written as k = t*2^s with t odd; the terms for t are obtained by index
// doubling over the bits of t, then s more doublings give the terms for
// k. All returned values lie in [0, n).
func LucasSequence(p, q, k, n *Int) (u, v, qk *Int, err error) {
	if n.Sign() <= 0 {
		return nil, nil, nil, failf("LucasSequence", ErrInvalidArgument, "non-positive modulus")
	}
	if k.neg() {
		return nil, nil, nil, failf("LucasSequence", ErrInvalidArgument, "negative index")
	}
	if k.IsZero() {
		var c calc
		u = new(Int)
		v = c.nmod(int_two, n)
		qk = c.nmod(int_one, n)
		return u, v, qk, c.err
	}
	mu, err := BarrettConstant(n)
	if err != nil {
		return nil, nil, nil, fail("LucasSequence", err)
	}
	s := k.trailing_zeros()
	t := k.Rsh(uint(s))
	return lucas_sequence_odd(p, q, t, n, mu, s)
}

// Compute (U_{k*2^s}, V_{k*2^s}, Q^{k*2^s}) modulo n, for an odd k.
// mu is the Barrett constant for n.
func lucas_sequence_odd(p, q, k, n, mu *Int, s int) (u, v, qk *Int, err error) {
	if k.data[0]&1 == 0 {
		return nil, nil, nil, failf("LucasSequence", ErrInvalidArgument, "index must be odd")
	}

	var c calc
	mm := func(a, b *Int) *Int {
		return c.mulmod(a, b, n, mu)
	}
	sub := func(a, b *Int) *Int {
		return c.nmod(c.sub(a, b), n)
	}
	dbl := func(a *Int) *Int {
		return c.nmod(a.Lsh(1), n)
	}

	pm := c.nmod(p, n)
	qm := c.nmod(q, n)

	// With m the part of the index processed so far, the loop keeps:
	//   u1 = U_{m+1}, v = V_m, v1 = V_{m+1}, qk = Q^m
	// starting from m = 0. Bit 0 of k (always set) is handled after
	// the loop.
	u1 := c.nmod(int_one, n)
	v = c.nmod(int_two, n)
	v1 := pm
	qk = u1
	for i := k.BitLen() - 1; i >= 1 && c.err == nil; i-- {
		if k.Bit(i) != 0 {
			// m -> 2m+1
			u1 = mm(u1, v1)
			v = sub(mm(v, v1), mm(pm, qk))
			v1 = sub(mm(v1, v1), dbl(mm(qk, qm)))
			qk = mm(mm(qk, qk), qm)
		} else {
			// m -> 2m
			u1 = sub(mm(u1, v), qk)
			v1 = sub(mm(v, v1), mm(pm, qk))
			v = sub(mm(v, v), dbl(qk))
			qk = mm(qk, qk)
		}
	}

	// Last bit: m -> 2m+1 = k.
	u = sub(mm(u1, v), qk)
	v = sub(mm(v, v1), mm(pm, qk))
	qk = mm(mm(qk, qk), qm)

	for i := 0; i < s; i++ {
		u = mm(u, v)
		v = sub(mm(v, v), dbl(qk))
		qk = mm(qk, qk)
	}
	if c.err != nil {
		return nil, nil, nil, fail("LucasSequence", c.err)
	}
	return u, v, qk, nil
}
