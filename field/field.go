package field

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-groebner/numtheory"
	"lukechampine.com/uint128"
)

// PrimeField is Z/pZ on machine words.
type PrimeField struct {
	prime uint64
}

const maxBitUsage = 63

/*
NewPrimeField returns the field with p elements.
Fails with ErrModulus when p is not a prime below 2^63.
*/
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime >= (1 << maxBitUsage) {
		return nil, fmt.Errorf("%w: supporting up to 63-bit primes, got %d", ErrModulus, prime)
	}

	if !numtheory.IsPrime64(prime) {
		return nil, fmt.Errorf("%w: %d is not prime", ErrModulus, prime)
	}

	return &PrimeField{prime: prime}, nil
}

// Modulus returns p.
func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) Name() string {
	return "FF_" + strconv.FormatUint(f.prime, 10)
}

func (f *PrimeField) Characteristic() uint64 {
	return f.prime
}

func (f *PrimeField) IsField() bool {
	return true
}

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 % f.prime }

func (f *PrimeField) FromInt64(v int64) uint64 {
	if v >= 0 {
		return uint64(v) % f.prime
	}

	// -v may overflow for MinInt64, so reduce the magnitude as uint64.
	return f.Neg(uint64(-(v+1))%f.prime + 1)
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	if a == 0 {
		return b
	}

	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(a, b, f.prime)
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(mod)
}

func (f *PrimeField) Pow(base, exp uint64) uint64 {
	return numtheory.PowerMod64(base, exp, f.prime)
}

// Inverse panics on zero.
func (f *PrimeField) Inverse(e uint64) uint64 {
	if e%f.prime == 0 {
		panic("zero has no inverse")
	}

	// a^(p-2) = a^-1 by Fermat.
	return f.Pow(e, f.prime-2)
}

func (f *PrimeField) Div(a, b uint64) (uint64, error) {
	if b%f.prime == 0 {
		return 0, ErrDivByZero
	}

	return f.Mul(a, f.Inverse(b)), nil
}

func (f *PrimeField) Neg(e uint64) uint64 {
	if e == 0 {
		return 0
	}

	return (f.prime - e)
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

func (f *PrimeField) Equals(a, b uint64) bool {
	mod := f.prime
	return (a % mod) == (b % mod)
}

func (f *PrimeField) IsZero(a uint64) bool {
	return a%f.prime == 0
}

func (f *PrimeField) IsOne(a uint64) bool {
	return a%f.prime == 1%f.prime
}

func (f *PrimeField) IsInvertible(a uint64) bool {
	return !f.IsZero(a)
}

// GCD is 1 unless both are zero: every non-zero element is a unit.
func (f *PrimeField) GCD(a, b uint64) uint64 {
	if f.IsZero(a) && f.IsZero(b) {
		return 0
	}

	return f.One()
}

/*
String prints the symmetric representative, e.g. p-1 prints as -1.
*/
func (f *PrimeField) String(a uint64) string {
	a %= f.prime
	if a > f.prime/2 {
		return "-" + strconv.FormatUint(f.prime-a, 10)
	}

	return strconv.FormatUint(a, 10)
}

func (f *PrimeField) Parse(s string) (uint64, error) {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")

	n, ok := new(big.Int).SetString(strings.TrimSpace(num), 10)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}

	val := f.fromBig(n)
	if !found {
		return val, nil
	}

	d, ok := new(big.Int).SetString(strings.TrimSpace(den), 10)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}

	inv, err := numtheory.InvMod(d, new(big.Int).SetUint64(f.prime))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDivByZero, s)
	}

	return f.Mul(val, inv.Uint64()), nil
}

func (f *PrimeField) fromBig(n *big.Int) uint64 {
	return new(big.Int).Mod(n, new(big.Int).SetUint64(f.prime)).Uint64()
}
