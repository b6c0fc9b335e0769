package field

import (
	"fmt"
	"math/big"
	"strings"
)

// Rationals is QQ on *big.Rat.
type Rationals struct{}

// QQ is the shared rational field; it is stateless.
var QQ = Rationals{}

func (Rationals) Name() string           { return "QQ" }
func (Rationals) Characteristic() uint64 { return 0 }
func (Rationals) IsField() bool          { return true }

func (Rationals) Zero() *big.Rat { return new(big.Rat) }
func (Rationals) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rationals) FromInt64(v int64) *big.Rat { return big.NewRat(v, 1) }

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rationals) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rationals) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }

func (Rationals) Div(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivByZero
	}

	return new(big.Rat).Quo(a, b), nil
}

func (Rationals) Equals(a, b *big.Rat) bool    { return a.Cmp(b) == 0 }
func (Rationals) Cmp(a, b *big.Rat) int        { return a.Cmp(b) }
func (Rationals) IsZero(a *big.Rat) bool       { return a.Sign() == 0 }
func (Rationals) IsInvertible(a *big.Rat) bool { return a.Sign() != 0 }
func (Rationals) String(a *big.Rat) string     { return a.RatString() }
func (Rationals) IsOne(a *big.Rat) bool        { return a.IsInt() && a.Num().IsInt64() && a.Num().Int64() == 1 }

func (Rationals) GCD(a, b *big.Rat) *big.Rat {
	if a.Sign() == 0 && b.Sign() == 0 {
		return new(big.Rat)
	}

	return big.NewRat(1, 1)
}

func (Rationals) Parse(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return r, nil
}
