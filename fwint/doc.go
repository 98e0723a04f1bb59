// This package implements a fixed-capacity, two's complement, signed
// multi-precision integer, and the number-theoretic algorithms built on
// top of it.
//
// An [Int] holds at most [Capacity] 32-bit words ([MaxBits] bits), sign
// included. Unlike math/big, values never grow beyond that capacity: an
// operation whose exact result would not fit fails with [ErrOverflow]
// instead of silently truncating or reallocating. Code that relies on
// this bound (primality testing, key generation) can thus observe when a
// computation leaves the representable range.
//
// Values are immutable from the caller's point of view: every operator
// returns a new instance and leaves its operands untouched. The only
// exceptions are [Int.SetBit] and [Int.UnsetBit], which modify the
// receiver in place.
//
// The package provides:
//
//   - arithmetic, bitwise and comparison operators, conversion from and
//     to machine integers, radix strings and big-endian byte arrays;
//   - modular arithmetic: Barrett reduction ([BarrettReduce]), modular
//     exponentiation ([Int.ModPow]), GCD ([Int.Gcd]) and modular
//     inversion ([Int.ModInverse]);
//   - number theory: the Jacobi symbol ([Jacobi]), Lucas sequences
//     ([LucasSequence]), integer square root ([Int.Sqrt]), and random
//     value generation ([GenerateRandomBits], [GeneratePseudoPrime],
//     [Int.GenerateCoprime]);
//   - probabilistic primality tests: Fermat, Rabin-Miller,
//     Solovay-Strassen, strong Lucas, and the BPSW-style combination
//     used by [Int.IsProbablePrime].
//
// Randomized functions take a [Rand] source explicitly; no process-wide
// generator is used. A [Rand] must not be shared between goroutines
// without external synchronization. [ShakeRand] is a seedable
// SHAKE256-based generator; *math/rand.Rand also satisfies [Rand]. When
// a nil source is provided, a fresh [ShakeRand] seeded from the
// operating system's RNG is used for that call.
//
// WARNING: none of this code is constant-time, and the random sources
// are not required to be cryptographically secure. It is meant for
// experiments and small demonstrations, not for protecting secrets.
package fwint
