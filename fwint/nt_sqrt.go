package fwint

// Sqrt returns floor(sqrt(x)) for a non-negative x.
//
// The result is built bit by bit from the highest possible bit down: each
// bit is tentatively set and kept only if the square of the partial
// result does not exceed x.
func (x *Int) Sqrt() (*Int, error) {
	if x.neg() {
		return nil, failf("Sqrt", ErrInvalidArgument, "negative operand")
	}
	r := new(Int)
	for i := (x.BitLen()+1)/2 - 1; i >= 0; i-- {
		r.data[i>>5] |= uint32(1) << (uint(i) & 31)
		r.norm()
		sq, err := r.Mul(r)
		if err != nil || sq.Cmp(x) > 0 {
			r.data[i>>5] &^= uint32(1) << (uint(i) & 31)
			r.norm()
		}
	}
	return r, nil
}
