package fwint

// Lsh returns x << s. Bits pushed beyond MaxBits are dropped, including
// into and past the sign bit; no overflow is reported.
func (x *Int) Lsh(s uint) *Int {
	z := new(Int)
	if s >= MaxBits {
		return z
	}
	ws := int(s >> 5)
	bs := s & 31
	for i := Capacity - 1; i >= ws; i-- {
		w := x.data[i-ws] << bs
		if bs != 0 && i-ws > 0 {
			w |= x.data[i-ws-1] >> (32 - bs)
		}
		z.data[i] = w
	}
	z.norm()
	return z
}

// Rsh returns x >> s, with sign extension (rounding toward minus
// infinity). A negative value stays negative.
func (x *Int) Rsh(s uint) *Int {
	z := new(Int)
	fill := uint32(0)
	if x.neg() {
		fill = 0xFFFFFFFF
	}
	if s >= MaxBits {
		for i := range z.data {
			z.data[i] = fill
		}
		z.norm()
		return z
	}
	ws := int(s >> 5)
	bs := s & 31
	for i := 0; i < Capacity; i++ {
		j := i + ws
		lo := fill
		if j < Capacity {
			lo = x.data[j]
		}
		hi := fill
		if j+1 < Capacity {
			hi = x.data[j+1]
		}
		w := lo >> bs
		if bs != 0 {
			w |= hi << (32 - bs)
		}
		z.data[i] = w
	}
	z.norm()
	return z
}

// Not returns the bitwise complement ^x (that is, -x-1).
func (x *Int) Not() *Int {
	z := new(Int)
	for i := 0; i < Capacity; i++ {
		z.data[i] = ^x.data[i]
	}
	z.norm()
	return z
}

// And returns x & y.
func (x *Int) And(y *Int) *Int {
	z := new(Int)
	for i := 0; i < Capacity; i++ {
		z.data[i] = x.data[i] & y.data[i]
	}
	z.norm()
	return z
}

// Or returns x | y.
func (x *Int) Or(y *Int) *Int {
	z := new(Int)
	for i := 0; i < Capacity; i++ {
		z.data[i] = x.data[i] | y.data[i]
	}
	z.norm()
	return z
}

// Xor returns x ^ y.
func (x *Int) Xor(y *Int) *Int {
	z := new(Int)
	for i := 0; i < Capacity; i++ {
		z.data[i] = x.data[i] ^ y.data[i]
	}
	z.norm()
	return z
}

// Bit returns the value (0 or 1) of bit i of the two's complement
// representation of x. Indexes at or beyond MaxBits report the sign.
func (x *Int) Bit(i int) uint {
	if i < 0 {
		return 0
	}
	if i >= MaxBits {
		i = MaxBits - 1
	}
	return uint(x.data[i>>5]>>(uint(i)&31)) & 1
}

// SetBit sets bit i of x to 1.
//
// Unlike every other operation on Int, SetBit and UnsetBit modify their
// receiver in place. Setting bit MaxBits-1 makes the value negative.
func (x *Int) SetBit(i int) error {
	if i < 0 || i >= MaxBits {
		return failf("SetBit", ErrInvalidArgument, "bit index %d", i)
	}
	x.data[i>>5] |= uint32(1) << (uint(i) & 31)
	x.norm()
	return nil
}

// UnsetBit clears bit i of x, in place (see SetBit).
func (x *Int) UnsetBit(i int) error {
	if i < 0 || i >= MaxBits {
		return failf("UnsetBit", ErrInvalidArgument, "bit index %d", i)
	}
	x.data[i>>5] &^= uint32(1) << (uint(i) & 31)
	x.norm()
	return nil
}
