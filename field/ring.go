package field

import (
	"errors"
)

// Ring is the coefficient-ring capability consumed by the polynomial layer.
// Elements are values: no method mutates its arguments, and results never
// alias them.
type Ring[E any] interface {
	Zero() E
	One() E
	FromInt64(v int64) E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E
	// Div returns the exact quotient a/b, or ErrNotDivisible.
	Div(a, b E) (E, error)

	Equals(a, b E) bool
	IsZero(a E) bool
	IsOne(a E) bool
	IsInvertible(a E) bool

	// IsField reports whether every non-zero element is invertible.
	IsField() bool
	// Characteristic is 0 for QQ and ZZ.
	Characteristic() uint64

	String(a E) string
	// Parse reads a decimal literal, optionally a fraction "a/b".
	Parse(s string) (E, error)
	Name() string
}

// GCDDomain is a Ring with greatest common divisors.
type GCDDomain[E any] interface {
	Ring[E]
	// GCD is normalised: non-negative for ZZ, monic for fields.
	GCD(a, b E) E
}

// Ordered is a Ring with a total order compatible with its arithmetic.
type Ordered[E any] interface {
	Ring[E]
	Cmp(a, b E) int
}

var (
	ErrNotDivisible = errors.New("exact division has no solution in this ring")
	ErrDivByZero    = errors.New("division by zero")
	ErrModulus      = errors.New("bad modulus for a prime field")
	ErrParse        = errors.New("cannot parse ring element")
)
