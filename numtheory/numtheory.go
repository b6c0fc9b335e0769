package numtheory

import (
	"errors"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

var (
	ErrBadArg        = errors.New("numtheory: bad argument")
	ErrNotInvertible = errors.New("numtheory: element is not invertible")
)

// IsPrime64 reports whether n is prime; Baillie-PSW is deterministic below 2^64.
func IsPrime64(n uint64) bool {
	return n > 1 && ring.IsPrime(n)
}

// bredBits bounds the moduli handed to lattigo's Barrett reduction.
const bredBits = 61

// PowerMod64 returns base^exp mod m for a modulus below 2^63.
func PowerMod64(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}

	if m < 1<<bredBits {
		return ring.ModExp(base%m, exp, m)
	}

	x, b := uint64(1), base%m
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			x = mulMod(x, b, m)
		}

		b = mulMod(b, b, m)
	}

	return x
}

func mulMod(a, b, m uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(m)
}

// ExtGCD returns g = gcd(a, b) together with x, y such that a*x + b*y = g.
// g is non-negative.
func ExtGCD(a, b *big.Int) (g, x, y *big.Int) {
	x, y = new(big.Int), new(big.Int)
	g = new(big.Int).GCD(x, y, new(big.Int).Abs(a), new(big.Int).Abs(b))

	if a.Sign() < 0 {
		x.Neg(x)
	}

	if b.Sign() < 0 {
		y.Neg(y)
	}

	return g, x, y
}

// InvMod returns the inverse of a modulo m in [0, m).
func InvMod(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrBadArg
	}

	g, x, _ := ExtGCD(a, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotInvertible
	}

	return x.Mod(x, m), nil
}

/*
ILogBase returns the largest k with base^k <= |n|.

The value is an integer floor and is therefore only approximate as a
logarithm; it does not round to nearest.
*/
func ILogBase(n *big.Int, base int64) (int, error) {
	if n.Sign() == 0 || base < 2 {
		return 0, ErrBadArg
	}

	abs := new(big.Int).Abs(n)
	if base == 2 {
		return abs.BitLen() - 1, nil
	}

	b := big.NewInt(base)

	// estimate from the bit length, then correct.
	k := int(float64(abs.BitLen()-1) / math.Log2(float64(base)))
	if k < 0 {
		k = 0
	}

	pow := new(big.Int).Exp(b, big.NewInt(int64(k)), nil)
	for pow.Cmp(abs) > 0 {
		pow.Quo(pow, b)
		k--
	}

	next := new(big.Int).Mul(pow, b)
	for next.Cmp(abs) <= 0 {
		pow.Set(next)
		next.Mul(next, b)
		k++
	}

	return k, nil
}

const logPrec = 128

// Log returns the natural logarithm of a positive rational, computed on
// 128-bit floats as log(num) - log(den).
// The result is rounded by the float arithmetic, not truncated.
func Log(r *big.Rat) (*big.Float, error) {
	if r.Sign() <= 0 {
		return nil, ErrBadArg
	}

	num := new(big.Float).SetPrec(logPrec).SetInt(r.Num())
	den := new(big.Float).SetPrec(logPrec).SetInt(r.Denom())

	lnum := bigfloat.Log(num)
	if r.IsInt() {
		return lnum, nil
	}

	return new(big.Float).SetPrec(logPrec).Sub(lnum, bigfloat.Log(den)), nil
}
