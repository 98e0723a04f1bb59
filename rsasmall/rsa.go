// Package rsasmall implements a minimal RSA-style key pair on top of the
// fixed-width integers of package fwint.
//
// This is not a production RSA implementation: there is no padding, no
// constant-time arithmetic, and the public exponent is random. Note the
// naming of the two operations, kept for compatibility with existing
// data: Encrypt raises to the private exponent d, and Decrypt raises to
// the public exponent e. Since e and d are inverses, each operation
// undoes the other.
package rsasmall

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benjivesterby/go-fwint/fwint"
	"github.com/benjivesterby/go-fwint/internal/logging"
)

var (
	// ErrKeySize is returned for a key size outside [MinKeyBits, MaxKeyBits],
	// or a stored modulus which is not usable.
	ErrKeySize = errors.New("rsasmall: invalid key size")

	// ErrValueOutOfRange is returned when a value to transform is
	// negative or not lower than the modulus.
	ErrValueOutOfRange = errors.New("rsasmall: value out of range")
)

// MinKeyBits is the smallest supported modulus size.
const MinKeyBits = 8

// MaxKeyBits is the largest supported modulus size; exponentiation
// modulo n requires n to fit in fwint.MaxModulusWords words.
const MaxKeyBits = fwint.MaxModulusWords * 32

// KeyPair holds a modulus n and two exponents e and d with
// e*d = 1 mod (p-1)(q-1). A KeyPair is immutable.
type KeyPair struct {
	n *fwint.Int
	e *fwint.Int
	d *fwint.Int
}

// GenerateKeys creates a new key pair whose modulus is the product of
// two distinct probable primes of bits/2 and bits-bits/2 bits. The public
// exponent e is a random value coprime with phi = (p-1)(q-1), of the same
// bit length as phi, and d = e^-1 mod phi. A nil rng draws from the
// system RNG.
func GenerateKeys(bits int, rng fwint.Rand, opts ...Option) (*KeyPair, error) {
	if bits < MinKeyBits || bits > MaxKeyBits {
		return nil, fmt.Errorf("%w: %d bits", ErrKeySize, bits)
	}
	cfg := newConfig(opts)
	log := cfg.logger.With("bits", bits)
	if rng == nil {
		r, err := fwint.NewSystemRand()
		if err != nil {
			return nil, fmt.Errorf("rsasmall: random source: %w", err)
		}
		rng = r
	}

	pbits := bits / 2
	qbits := bits - pbits
	p, err := generatePrime(pbits, cfg.confidence, rng, nil, log)
	if err != nil {
		return nil, err
	}
	q, err := generatePrime(qbits, cfg.confidence, rng, p, log)
	if err != nil {
		return nil, err
	}

	n, err := p.Mul(q)
	if err != nil {
		return nil, fmt.Errorf("rsasmall: modulus: %w", err)
	}
	p1, err := p.Dec()
	if err != nil {
		return nil, err
	}
	q1, err := q.Dec()
	if err != nil {
		return nil, err
	}
	phi, err := p1.Mul(q1)
	if err != nil {
		return nil, fmt.Errorf("rsasmall: totient: %w", err)
	}

	e, err := phi.GenerateCoprime(phi.BitLen(), rng)
	if err != nil {
		return nil, fmt.Errorf("rsasmall: public exponent: %w", err)
	}
	d, err := e.ModInverse(phi)
	if err != nil {
		return nil, fmt.Errorf("rsasmall: private exponent: %w", err)
	}

	log.Info("key pair generated",
		"modulus_bits", n.BitLen(),
		"e_bits", e.BitLen(),
		logging.Redacted("d"))
	return &KeyPair{n: n, e: e, d: d}, nil
}

// Draw probable primes until one has exactly the requested bit length
// and differs from not (if not nil).
func generatePrime(bits, confidence int, rng fwint.Rand, not *fwint.Int, log logging.Logger) (*fwint.Int, error) {
	for tries := 1; ; tries++ {
		p, err := fwint.GeneratePseudoPrime(bits, confidence, rng)
		if err != nil {
			return nil, fmt.Errorf("rsasmall: prime generation: %w", err)
		}
		if p.BitLen() != bits || (not != nil && p.Equal(not)) {
			log.Debug("prime candidate rejected", "prime_bits", bits, "try", tries)
			continue
		}
		log.Debug("prime found", "prime_bits", bits, "tries", tries)
		return p, nil
	}
}

// NewKeyPair rebuilds a key pair from its modulus and exponents. The
// exponents are not checked against each other (the factors of n are not
// known), only for range: n > 1 within MaxKeyBits, and 0 < d, e.
func NewKeyPair(n, d, e *fwint.Int) (*KeyPair, error) {
	if n == nil || d == nil || e == nil {
		return nil, fmt.Errorf("%w: missing key component", fwint.ErrInvalidArgument)
	}
	if n.Cmp(fwint.NewInt(1)) <= 0 || n.BitLen() > MaxKeyBits {
		return nil, fmt.Errorf("%w: modulus of %d bits", ErrKeySize, n.BitLen())
	}
	if d.Sign() <= 0 || e.Sign() <= 0 {
		return nil, fmt.Errorf("%w: non-positive exponent", fwint.ErrInvalidArgument)
	}
	return &KeyPair{n: n.Clone(), e: e.Clone(), d: d.Clone()}, nil
}

// Modulus returns n.
func (k *KeyPair) Modulus() *fwint.Int {
	return k.n.Clone()
}

// PublicExponent returns e.
func (k *KeyPair) PublicExponent() *fwint.Int {
	return k.e.Clone()
}

// PrivateExponent returns d.
func (k *KeyPair) PrivateExponent() *fwint.Int {
	return k.d.Clone()
}

// PublicKey returns the pair (n, e).
func (k *KeyPair) PublicKey() (n, e *fwint.Int) {
	return k.n.Clone(), k.e.Clone()
}

// PrivateKey returns the pair (n, d).
func (k *KeyPair) PrivateKey() (n, d *fwint.Int) {
	return k.n.Clone(), k.d.Clone()
}

// BitLen returns the bit length of the modulus.
func (k *KeyPair) BitLen() int {
	return k.n.BitLen()
}

func (k *KeyPair) checkRange(v *fwint.Int) error {
	if v.Sign() < 0 || v.Cmp(k.n) >= 0 {
		return ErrValueOutOfRange
	}
	return nil
}

// Encrypt returns v^d mod n, for 0 <= v < n.
func (k *KeyPair) Encrypt(v *fwint.Int) (*fwint.Int, error) {
	if err := k.checkRange(v); err != nil {
		return nil, err
	}
	return v.ModPow(k.d, k.n)
}

// Decrypt returns v^e mod n, for 0 <= v < n.
func (k *KeyPair) Decrypt(v *fwint.Int) (*fwint.Int, error) {
	if err := k.checkRange(v); err != nil {
		return nil, err
	}
	return v.ModPow(k.e, k.n)
}

func (k *KeyPair) transformBytes(b []byte, f func(*fwint.Int) (*fwint.Int, error)) ([]byte, error) {
	v, err := fwint.FromBytes(b)
	if err != nil {
		return nil, ErrValueOutOfRange
	}
	r, err := f(v)
	if err != nil {
		return nil, err
	}
	return r.Bytes(), nil
}

// EncryptBytes applies Encrypt to b read as an unsigned big-endian
// integer, and returns the result in the same encoding (minimal length).
func (k *KeyPair) EncryptBytes(b []byte) ([]byte, error) {
	return k.transformBytes(b, k.Encrypt)
}

// DecryptBytes applies Decrypt to b read as an unsigned big-endian
// integer, and returns the result in the same encoding (minimal length).
func (k *KeyPair) DecryptBytes(b []byte) ([]byte, error) {
	return k.transformBytes(b, k.Decrypt)
}

type keyJSON struct {
	N string `json:"n"`
	E string `json:"e"`
	D string `json:"d"`
}

// MarshalJSON encodes the key pair as {"n", "e", "d"}, each value in
// hexadecimal.
func (k *KeyPair) MarshalJSON() ([]byte, error) {
	var kj keyJSON
	var err error
	if kj.N, err = k.n.Text(16); err != nil {
		return nil, err
	}
	if kj.E, err = k.e.Text(16); err != nil {
		return nil, err
	}
	if kj.D, err = k.d.Text(16); err != nil {
		return nil, err
	}
	return json.Marshal(kj)
}

// UnmarshalJSON decodes a key pair produced by MarshalJSON.
func (k *KeyPair) UnmarshalJSON(data []byte) error {
	var kj keyJSON
	if err := json.Unmarshal(data, &kj); err != nil {
		return err
	}
	n, err := fwint.Parse(kj.N, 16)
	if err != nil {
		return fmt.Errorf("rsasmall: modulus: %w", err)
	}
	e, err := fwint.Parse(kj.E, 16)
	if err != nil {
		return fmt.Errorf("rsasmall: public exponent: %w", err)
	}
	d, err := fwint.Parse(kj.D, 16)
	if err != nil {
		return fmt.Errorf("rsasmall: private exponent: %w", err)
	}
	kp, err := NewKeyPair(n, d, e)
	if err != nil {
		return err
	}
	*k = *kp
	return nil
}
