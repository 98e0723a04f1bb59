package fwint

// Cmp compares x and y and returns -1, 0 or +1 when x < y, x == y or
// x > y, respectively.
func (x *Int) Cmp(y *Int) int {
	xn := x.neg()
	yn := y.neg()
	if xn != yn {
		if xn {
			return -1
		}
		return 1
	}

	// Same sign: two's complement patterns order like unsigned words.
	n := x.size()
	if y.size() > n {
		n = y.size()
	}
	for i := n - 1; i >= 0; i-- {
		if x.data[i] != y.data[i] {
			if x.data[i] < y.data[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}

// Min returns a copy of the smaller of x and y.
func Min(x, y *Int) *Int {
	if x.Cmp(y) <= 0 {
		return x.Clone()
	}
	return y.Clone()
}

// Max returns a copy of the larger of x and y.
func Max(x, y *Int) *Int {
	if x.Cmp(y) >= 0 {
		return x.Clone()
	}
	return y.Clone()
}
