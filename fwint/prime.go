package fwint

// Primality tests. Every test works on |x|; the trivial cases (0 and 1
// are not prime, 2 and 3 are, other even values are not) are resolved
// before any randomness is consumed. Errors are only reported when an
// internal computation fails, e.g. for a modulus too large for Barrett
// reduction.

// Primes below 2000, used for trial division.
var small_primes = make_small_primes(2000)

// Sieve of Eratosthenes for all primes below n.
func make_small_primes(n int) []uint32 {
	composite := make([]bool, n)
	var pp []uint32
	for i := 2; i < n; i++ {
		if composite[i] {
			continue
		}
		pp = append(pp, uint32(i))
		for j := i * i; j < n; j += i {
			composite[j] = true
		}
	}
	return pp
}

// Resolve the trivial cases. If done is true, the answer is prime;
// otherwise n = |x| is odd and at least 5.
func prime_prelude(x *Int) (n *Int, done bool, prime bool) {
	if x.data[0]&1 == 0 {
		// Even values, including the most negative one and zero; only
		// +2 and -2 are prime.
		if x.size() == 1 && x.data[0] == 2 {
			return nil, true, true
		}
		if x.neg() {
			t, err := x.Neg()
			if err == nil && t.size() == 1 && t.data[0] == 2 {
				return nil, true, true
			}
		}
		return nil, true, false
	}
	// x is odd here, so it is not the most negative value and Abs
	// cannot overflow.
	n, err := x.Abs()
	if err != nil {
		return nil, true, false
	}
	if n.size() == 1 && n.data[0] <= 3 {
		return nil, true, n.data[0] == 3
	}
	return n, false, false
}

// Report whether an odd n >= 5 has a factor among the small primes.
// When n is itself a small prime, the scan stops before reaching it and
// false is returned.
func has_small_factor(n *Int) bool {
	for _, p := range small_primes {
		if n.size() == 1 && p >= n.data[0] {
			break
		}
		if n.mod_word(p) == 0 {
			return true
		}
	}
	return false
}

// Choose a random base a with 2 <= a < n: a random bit length strictly
// below that of n (at least 2) is drawn first, then a random value of
// exactly that length.
func random_base(n *Int, rng Rand) *Int {
	nbits := n.BitLen()
	for {
		tb := rand_below(rng, nbits)
		if tb >= 2 {
			return random_bits(tb, rng)
		}
	}
}

// Split n-1 into 2^s*t with t odd; n must be odd and at least 3.
func split_nm1(n *Int) (nm1, t *Int, s int) {
	nm1, _ = n.Dec()
	s = nm1.trailing_zeros()
	t = nm1.Rsh(uint(s))
	return nm1, t, s
}

// One Rabin-Miller round with base a: pass when a^t = 1 or
// a^(t*2^j) = n-1 for some 0 <= j < s.
func rabin_miller_round(n, nm1, t *Int, s int, a, mu *Int) (bool, error) {
	b, err := a.ModPow(t, n)
	if err != nil {
		return false, err
	}
	if b.is_one() {
		return true, nil
	}
	var c calc
	for j := 0; j < s; j++ {
		if b.Equal(nm1) {
			return true, nil
		}
		b = c.mulmod(b, b, n, mu)
		if c.err != nil {
			return false, c.err
		}
	}
	return false, nil
}

// FermatLittleTest runs confidence rounds of the Fermat test: a random
// base a < |x| is drawn, the test fails if a shares a factor with |x| or
// if a^(|x|-1) mod |x| != 1. A nil rng is replaced with a fresh
// system-seeded ShakeRand. Carmichael numbers (e.g. 561) may pass this
// test for bases coprime with them.
func (x *Int) FermatLittleTest(confidence int, rng Rand) (bool, error) {
	n, done, prime := prime_prelude(x)
	if done {
		return prime, nil
	}
	rng, err := rand_or_default("FermatLittleTest", rng)
	if err != nil {
		return false, err
	}
	nm1, _ := n.Dec()
	for round := 0; round < confidence; round++ {
		a := random_base(n, rng)
		g, err := a.Gcd(n)
		if err != nil {
			return false, fail("FermatLittleTest", err)
		}
		if !g.is_one() {
			return false, nil
		}
		r, err := a.ModPow(nm1, n)
		if err != nil {
			return false, fail("FermatLittleTest", err)
		}
		if !r.is_one() {
			return false, nil
		}
	}
	return true, nil
}

// RabinMillerTest runs confidence rounds of the Rabin-Miller strong
// pseudoprime test with random bases. With n-1 = 2^s*t (t odd), a base
// a passes if a^t = 1 mod n or a^(t*2^j) = -1 mod n for some j < s.
func (x *Int) RabinMillerTest(confidence int, rng Rand) (bool, error) {
	n, done, prime := prime_prelude(x)
	if done {
		return prime, nil
	}
	rng, err := rand_or_default("RabinMillerTest", rng)
	if err != nil {
		return false, err
	}
	return rabin_miller(n, confidence, rng)
}

// Inner Rabin-Miller loop for an odd n >= 5.
func rabin_miller(n *Int, confidence int, rng Rand) (bool, error) {
	mu, err := BarrettConstant(n)
	if err != nil {
		return false, fail("RabinMillerTest", err)
	}
	nm1, t, s := split_nm1(n)
	for round := 0; round < confidence; round++ {
		a := random_base(n, rng)
		g, err := a.Gcd(n)
		if err != nil {
			return false, fail("RabinMillerTest", err)
		}
		if !g.is_one() {
			return false, nil
		}
		ok, err := rabin_miller_round(n, nm1, t, s, a, mu)
		if err != nil {
			return false, fail("RabinMillerTest", err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// SolovayStrassenTest runs confidence rounds of the Solovay-Strassen
// test: for each random base a, a^((n-1)/2) mod n must equal the Jacobi
// symbol (a/n), with n-1 standing for -1.
func (x *Int) SolovayStrassenTest(confidence int, rng Rand) (bool, error) {
	n, done, prime := prime_prelude(x)
	if done {
		return prime, nil
	}
	rng, err := rand_or_default("SolovayStrassenTest", rng)
	if err != nil {
		return false, err
	}
	nm1, _ := n.Dec()
	half := nm1.Rsh(1)
	for round := 0; round < confidence; round++ {
		a := random_base(n, rng)
		g, err := a.Gcd(n)
		if err != nil {
			return false, fail("SolovayStrassenTest", err)
		}
		if !g.is_one() {
			return false, nil
		}
		r, err := a.ModPow(half, n)
		if err != nil {
			return false, fail("SolovayStrassenTest", err)
		}
		var e int
		switch {
		case r.is_one():
			e = 1
		case r.Equal(nm1):
			e = -1
		default:
			return false, nil
		}
		j, err := Jacobi(a, n)
		if err != nil {
			return false, fail("SolovayStrassenTest", err)
		}
		if j != e {
			return false, nil
		}
	}
	return true, nil
}

// LucasStrongTest runs the strong Lucas probable prime test with the
// parameters of Selfridge's method A: D is the first of 5, -7, 9, -11...
// with Jacobi symbol (D/n) = -1, P = 1 and Q = (1-D)/4. The test is
// deterministic.
func (x *Int) LucasStrongTest() (bool, error) {
	n, done, prime := prime_prelude(x)
	if done {
		return prime, nil
	}
	return lucas_strong(n)
}

// Strong Lucas test on an odd n >= 5.
func lucas_strong(n *Int) (bool, error) {
	var c calc

	// Select D. A zero symbol with |D| < n reveals a proper factor. A
	// perfect square never yields -1, so squares are detected after a
	// number of attempts.
	d := int64(5)
	for count := 0; ; count++ {
		dd := NewInt(d)
		j, err := Jacobi(dd, n)
		if err != nil {
			return false, fail("LucasStrongTest", err)
		}
		if j == -1 {
			break
		}
		if j == 0 && NewInt(abs64(d)).Cmp(n) < 0 {
			return false, nil
		}
		if count == 20 {
			r, err := n.Sqrt()
			if err != nil {
				return false, fail("LucasStrongTest", err)
			}
			if c.mul(r, r).Equal(n) {
				return false, nil
			}
			if c.err != nil {
				return false, fail("LucasStrongTest", c.err)
			}
		}
		if d < 0 {
			d = -d + 2
		} else {
			d = -(d + 2)
		}
	}
	q := NewInt((1 - d) >> 2)

	// n+1 = t*2^s with t odd.
	np1 := c.add(n, int_one)
	if c.err != nil {
		return false, fail("LucasStrongTest", c.err)
	}
	s := np1.trailing_zeros()
	t := np1.Rsh(uint(s))

	mu, err := BarrettConstant(n)
	if err != nil {
		return false, fail("LucasStrongTest", err)
	}
	u, v, qk, err := lucas_sequence_odd(int_one, q, t, n, mu, 0)
	if err != nil {
		return false, fail("LucasStrongTest", err)
	}

	prime := u.IsZero() || v.IsZero()
	for r := 1; r < s; r++ {
		if !prime {
			// V_{2k} = V_k^2 - 2*Q^k
			v = c.nmod(c.sub(c.mulmod(v, v, n, mu), c.nmod(qk.Lsh(1), n)), n)
			prime = c.err == nil && v.IsZero()
		}
		qk = c.mulmod(qk, qk, n, mu)
	}
	if c.err != nil {
		return false, fail("LucasStrongTest", c.err)
	}

	// Here qk = Q^((n+1)/2), which must match Q*(Q/n) (Euler's
	// criterion) whenever Q is coprime with n.
	if prime {
		g, err := n.Gcd(q)
		if err != nil {
			return false, fail("LucasStrongTest", err)
		}
		if g.is_one() {
			jq, err := Jacobi(q, n)
			if err != nil {
				return false, fail("LucasStrongTest", err)
			}
			want := c.nmod(c.mul(q, NewInt(int64(jq))), n)
			if c.err != nil {
				return false, fail("LucasStrongTest", c.err)
			}
			if !qk.Equal(want) {
				prime = false
			}
		}
	}
	return prime, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// IsProbablePrime reports whether |x| is probably prime, using trial
// division by the primes below 2000, then a Rabin-Miller test with base
// 2, then a strong Lucas test (the Baillie-PSW combination). No
// composite is known to pass this test. It does not use randomness.
func (x *Int) IsProbablePrime() (bool, error) {
	n, done, prime := prime_prelude(x)
	if done {
		return prime, nil
	}
	if has_small_factor(n) {
		return false, nil
	}
	mu, err := BarrettConstant(n)
	if err != nil {
		return false, fail("IsProbablePrime", err)
	}
	nm1, t, s := split_nm1(n)
	ok, err := rabin_miller_round(n, nm1, t, s, int_two, mu)
	if err != nil {
		return false, fail("IsProbablePrime", err)
	}
	if !ok {
		return false, nil
	}
	return lucas_strong(n)
}

// IsProbablePrimeRounds is the weaker, randomized variant of
// IsProbablePrime: trial division by the primes below 2000, then
// confidence rounds of Rabin-Miller with random bases.
func (x *Int) IsProbablePrimeRounds(confidence int, rng Rand) (bool, error) {
	n, done, prime := prime_prelude(x)
	if done {
		return prime, nil
	}
	if has_small_factor(n) {
		return false, nil
	}
	rng, err := rand_or_default("IsProbablePrimeRounds", rng)
	if err != nil {
		return false, err
	}
	return rabin_miller(n, confidence, rng)
}
