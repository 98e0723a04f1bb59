package fwint

// calc chains fallible Int operations and keeps the first error. Once an
// error has been recorded, every further operation is skipped and
// returns zero; the caller checks c.err once at the end of a sequence.
type calc struct {
	err error
}

func (c *calc) keep(z *Int, err error) *Int {
	if c.err != nil {
		return new(Int)
	}
	if err != nil {
		c.err = err
		return new(Int)
	}
	return z
}

func (c *calc) add(x, y *Int) *Int {
	if c.err != nil {
		return new(Int)
	}
	return c.keep(x.Add(y))
}

func (c *calc) sub(x, y *Int) *Int {
	if c.err != nil {
		return new(Int)
	}
	return c.keep(x.Sub(y))
}

func (c *calc) mul(x, y *Int) *Int {
	if c.err != nil {
		return new(Int)
	}
	return c.keep(x.Mul(y))
}

func (c *calc) mod(x, y *Int) *Int {
	if c.err != nil {
		return new(Int)
	}
	return c.keep(x.Mod(y))
}

func (c *calc) neg(x *Int) *Int {
	if c.err != nil {
		return new(Int)
	}
	return c.keep(x.Neg())
}

// Compute x*y reduced with Barrett's method; both operands must lie in
// [0, n).
func (c *calc) mulmod(x, y, n, mu *Int) *Int {
	p := c.mul(x, y)
	if c.err != nil {
		return new(Int)
	}
	return c.keep(BarrettReduce(p, n, mu))
}

// Reduce x modulo a positive n into [0, n).
func (c *calc) nmod(x, n *Int) *Int {
	r := c.mod(x, n)
	if c.err == nil && r.neg() {
		r = c.add(r, n)
	}
	return r
}
