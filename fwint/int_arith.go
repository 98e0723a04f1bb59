package fwint

// Add returns x + y.
func (x *Int) Add(y *Int) (*Int, error) {
	z := new(Int)
	n := x.size()
	if y.size() > n {
		n = y.size()
	}
	cc := uint64(0)
	for i := 0; i < n; i++ {
		w := uint64(x.data[i]) + uint64(y.data[i]) + cc
		z.data[i] = uint32(w)
		cc = w >> 32
	}
	if cc != 0 && n < Capacity {
		z.data[n] = uint32(cc)
	}
	z.norm()

	// Operands of the same sign must yield a result of that sign.
	if x.neg() == y.neg() && z.neg() != x.neg() {
		return nil, fail("Add", ErrOverflow)
	}
	return z, nil
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) (*Int, error) {
	z := new(Int)
	n := x.size()
	if y.size() > n {
		n = y.size()
	}
	bb := uint64(0)
	for i := 0; i < n; i++ {
		w := uint64(x.data[i]) - uint64(y.data[i]) - bb
		z.data[i] = uint32(w)
		bb = w >> 63
	}

	// A final borrow below Capacity words means the result went
	// negative: sign-extend it.
	if bb != 0 {
		for i := n; i < Capacity; i++ {
			z.data[i] = 0xFFFFFFFF
		}
	}
	z.norm()

	if x.neg() != y.neg() && z.neg() != x.neg() {
		return nil, fail("Sub", ErrOverflow)
	}
	return z, nil
}

// Neg returns -x. Negating the most negative value overflows.
func (x *Int) Neg() (*Int, error) {
	if x.IsZero() {
		return new(Int), nil
	}
	z := x.Clone()
	z.negate_raw()
	if z.neg() == x.neg() {
		return nil, fail("Neg", ErrOverflow)
	}
	return z, nil
}

// Inc returns x + 1.
func (x *Int) Inc() (*Int, error) {
	z, err := x.Add(int_one)
	if err != nil {
		return nil, fail("Inc", ErrOverflow)
	}
	return z, nil
}

// Dec returns x - 1.
func (x *Int) Dec() (*Int, error) {
	z, err := x.Sub(int_one)
	if err != nil {
		return nil, fail("Dec", ErrOverflow)
	}
	return z, nil
}

// Abs returns |x|. The absolute value of the most negative value
// overflows.
func (x *Int) Abs() (*Int, error) {
	if !x.neg() {
		return x.Clone(), nil
	}
	return from_mag("Abs", x.mag(), false)
}

// Mul returns x * y.
//
// The product is computed on the absolute values and the sign is applied
// afterwards; a product equal to the most negative value is accepted.
func (x *Int) Mul(y *Int) (*Int, error) {
	xm := x.mag()
	ym := y.mag()
	if len(xm) == 0 || len(ym) == 0 {
		return new(Int), nil
	}
	if len(xm)+len(ym) > Capacity+1 {
		return nil, fail("Mul", ErrOverflow)
	}
	t := make([]uint32, len(xm)+len(ym))
	nat_mul(t, xm, ym)
	return from_mag("Mul", t, x.neg() != y.neg())
}

// Compute quotient and remainder magnitudes of |x| / |y|. The divisor
// must not be zero.
func div_mag(xm []uint32, ym []uint32) (q []uint32, r []uint32) {
	if nat_cmp(xm, ym) < 0 {
		return nil, xm
	}
	if len(ym) == 1 {
		q = make([]uint32, len(xm))
		rw := nat_div_small(q, xm, ym[0])
		return q, []uint32{rw}
	}
	q = make([]uint32, len(xm)-len(ym)+1)
	r = make([]uint32, len(ym))
	nat_divmod(q, r, xm, ym)
	return q, r
}

// DivMod returns the quotient x / y truncated toward zero, and the
// remainder x - y*(x/y), which has the sign of x.
func (x *Int) DivMod(y *Int) (q *Int, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, fail("DivMod", ErrDivideByZero)
	}
	qm, rm := div_mag(x.mag(), y.mag())
	q, err = from_mag("DivMod", qm, x.neg() != y.neg())
	if err != nil {
		return nil, nil, err
	}
	r, err = from_mag("DivMod", rm, x.neg())
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// Div returns x / y, truncated toward zero.
func (x *Int) Div(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, fail("Div", ErrDivideByZero)
	}
	qm, _ := div_mag(x.mag(), y.mag())
	return from_mag("Div", qm, x.neg() != y.neg())
}

// Mod returns x % y; the result has the sign of x (or is zero).
func (x *Int) Mod(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, fail("Mod", ErrDivideByZero)
	}
	_, rm := div_mag(x.mag(), y.mag())
	return from_mag("Mod", rm, x.neg())
}

// Get |x| mod d for a small non-zero d.
func (x *Int) mod_word(d uint32) uint32 {
	return nat_mod_small(x.mag(), d)
}
