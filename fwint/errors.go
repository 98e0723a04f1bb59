package fwint

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow indicates that the exact result of an operation does
	// not fit in MaxBits bits (sign included).
	ErrOverflow = errors.New("fwint: arithmetic overflow")

	// ErrDivideByZero indicates a division or reduction by zero.
	ErrDivideByZero = errors.New("fwint: division by zero")

	// ErrInvalidArgument indicates an operand outside the domain of an
	// operation (bad radix, negative square root, even Lucas index...).
	ErrInvalidArgument = errors.New("fwint: invalid argument")

	// ErrFormat indicates a malformed radix string.
	ErrFormat = errors.New("fwint: invalid number format")

	// ErrNoInverse indicates that a modular inverse was requested for a
	// value not coprime with the modulus.
	ErrNoInverse = errors.New("fwint: no inverse exists")

	// ErrNegativeExponent is returned by ModPow for exponents below zero.
	ErrNegativeExponent = errors.New("fwint: negative exponent")

	// ErrEvenModulus is returned by Jacobi when the lower argument is even.
	ErrEvenModulus = errors.New("fwint: Jacobi symbol requires an odd modulus")
)

// Error wraps one of the sentinel errors above with the name of the
// operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fwint.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(op string, err error) error {
	return &Error{Op: op, Err: err}
}

func failf(op string, err error, format string, args ...interface{}) error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))}
}
