package field

import (
	"fmt"
	"math/big"
	"strings"
)

// Integers is ZZ on *big.Int. It is a GCD domain, not a field: Div only
// succeeds when the quotient is exact.
type Integers struct{}

var ZZ = Integers{}

func (Integers) Name() string           { return "ZZ" }
func (Integers) Characteristic() uint64 { return 0 }
func (Integers) IsField() bool          { return false }

func (Integers) Zero() *big.Int { return new(big.Int) }
func (Integers) One() *big.Int  { return big.NewInt(1) }

func (Integers) FromInt64(v int64) *big.Int { return big.NewInt(v) }

func (Integers) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (Integers) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (Integers) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (Integers) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }

func (Integers) Div(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivByZero
	}

	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		return nil, ErrNotDivisible
	}

	return q, nil
}

func (Integers) Equals(a, b *big.Int) bool { return a.Cmp(b) == 0 }
func (Integers) Cmp(a, b *big.Int) int     { return a.Cmp(b) }
func (Integers) IsZero(a *big.Int) bool    { return a.Sign() == 0 }
func (Integers) String(a *big.Int) string  { return a.String() }

func (Integers) IsOne(a *big.Int) bool {
	return a.IsInt64() && a.Int64() == 1
}

func (Integers) IsInvertible(a *big.Int) bool {
	return a.IsInt64() && (a.Int64() == 1 || a.Int64() == -1)
}

func (Integers) GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

func (Integers) Parse(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return n, nil
}
