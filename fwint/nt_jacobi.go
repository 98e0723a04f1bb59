package fwint

// Jacobi returns the Jacobi symbol (a/b), which is -1, 0 or 1.
//
// The lower argument b must be positive and odd. The computation uses
// quadratic reciprocity: a is reduced modulo b, a negative a is replaced
// by -a (flipping the sign when b = 3 mod 4), factors of two are removed
// from a (flipping the sign for an odd count when b = 3 or 5 mod 8), and
// the process continues on (b mod a, a), with an additional flip when
// both are 3 mod 4. It runs as a loop with an accumulated sign rather
// than through recursion.
func Jacobi(a, b *Int) (int, error) {
	if b.data[0]&1 == 0 {
		return 0, fail("Jacobi", ErrEvenModulus)
	}
	if b.neg() {
		return 0, failf("Jacobi", ErrInvalidArgument, "negative modulus")
	}

	var c calc
	s := 1
	for {
		if a.Cmp(b) >= 0 {
			a = c.mod(a, b)
		}
		if c.err != nil {
			return 0, fail("Jacobi", c.err)
		}
		if a.IsZero() {
			return 0, nil
		}
		if a.is_one() {
			return s, nil
		}
		if a.neg() {
			// (-1/b) = -1 exactly when (b-1)/2 is odd.
			if ((b.data[0] - 1) & 2) != 0 {
				s = -s
			}
			a = c.neg(a)
			continue
		}

		e := a.trailing_zeros()
		a1 := a.Rsh(uint(e))
		b8 := b.data[0] & 7
		if (e&1) != 0 && (b8 == 3 || b8 == 5) {
			s = -s
		}
		if (b.data[0]&3) == 3 && (a1.data[0]&3) == 3 {
			s = -s
		}
		if a1.is_one() {
			return s, nil
		}
		a, b = c.mod(b, a1), a1
	}
}
