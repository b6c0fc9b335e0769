package monomial

import (
	"fmt"
	"math"
	"math/big"
)

var (
	_ store = (*smallStore)(nil)
	_ store = (*bigStore)(nil)
)

// bigStore keeps arbitrary precision exponents and compares through the
// order matrix.
type bigStore struct {
	rows [][]*big.Int
	mk   masker
}

func newBigStore(m *Monoid) *bigStore {
	mat := m.ord.Matrix()

	rows := make([][]*big.Int, len(mat))
	for i, row := range mat {
		rows[i] = make([]*big.Int, len(row))
		for j, x := range row {
			rows[i][j] = big.NewInt(x)
		}
	}

	return &bigStore{rows: rows, mk: m.mk}
}

func (s *bigStore) wrap(e []*big.Int) PP {
	w := make([]uint32, maskWords)
	setMask(w, s.mk.big(e))

	return PP{w: w, b: &bigExps{xs: e}}
}

func (s *bigStore) fromInt64(e []int64) (PP, error) {
	v := make([]*big.Int, len(e))
	for i, x := range e {
		if x < 0 {
			return PP{}, fmt.Errorf("%w: negative exponent %d", ErrBadArg, x)
		}

		v[i] = big.NewInt(x)
	}

	return s.wrap(v), nil
}

func (s *bigStore) fromBig(e []*big.Int) (PP, error) {
	v := make([]*big.Int, len(e))
	for i, x := range e {
		if x.Sign() < 0 {
			return PP{}, fmt.Errorf("%w: negative exponent %s", ErrBadArg, x)
		}

		v[i] = new(big.Int).Set(x)
	}

	return s.wrap(v), nil
}

func (s *bigStore) exponent(a PP, i int) *big.Int {
	return new(big.Int).Set(a.b.xs[i])
}

func (s *bigStore) isZeroAt(a PP, i int) bool {
	return a.b.xs[i].Sign() == 0
}

func (s *bigStore) combine(a, b PP, op func(z, x, y *big.Int)) PP {
	v := make([]*big.Int, len(a.b.xs))
	for i := range v {
		v[i] = new(big.Int)
		op(v[i], a.b.xs[i], b.b.xs[i])
	}

	return s.wrap(v)
}

func (s *bigStore) mul(a, b PP) (PP, error) {
	return s.combine(a, b, func(z, x, y *big.Int) { z.Add(x, y) }), nil
}

func (s *bigStore) mulAll(a PP, bs []PP) ([]PP, error) {
	out := make([]PP, len(bs))
	for k, b := range bs {
		out[k], _ = s.mul(a, b)
	}

	return out, nil
}

// pack has nothing to do: big power products never share storage.
func (s *bigStore) pack([]PP) {}

func (s *bigStore) div(a, b PP) PP {
	return s.combine(a, b, func(z, x, y *big.Int) { z.Sub(x, y) })
}

func (s *bigStore) colon(a, b PP) PP {
	return s.combine(a, b, func(z, x, y *big.Int) {
		if x.Cmp(y) > 0 {
			z.Sub(x, y)
		}
	})
}

func (s *bigStore) gcd(a, b PP) PP {
	return s.combine(a, b, func(z, x, y *big.Int) {
		if x.Cmp(y) < 0 {
			z.Set(x)
		} else {
			z.Set(y)
		}
	})
}

func (s *bigStore) lcm(a, b PP) PP {
	return s.combine(a, b, func(z, x, y *big.Int) {
		if x.Cmp(y) > 0 {
			z.Set(x)
		} else {
			z.Set(y)
		}
	})
}

func (s *bigStore) divides(a, b PP) bool {
	for i := range a.b.xs {
		if b.b.xs[i].Cmp(a.b.xs[i]) > 0 {
			return false
		}
	}

	return true
}

func (s *bigStore) cmp(a, b PP) int {
	da, db := new(big.Int), new(big.Int)
	tmp := new(big.Int)

	for _, row := range s.rows {
		da.SetInt64(0)
		db.SetInt64(0)

		for j, w := range row {
			if w.Sign() == 0 {
				continue
			}

			da.Add(da, tmp.Mul(w, a.b.xs[j]))
			db.Add(db, tmp.Mul(w, b.b.xs[j]))
		}

		if c := da.Cmp(db); c != 0 {
			return c
		}
	}

	return 0
}

func (s *bigStore) equal(a, b PP) bool {
	for i := range a.b.xs {
		if a.b.xs[i].Cmp(b.b.xs[i]) != 0 {
			return false
		}
	}

	return true
}

func (s *bigStore) isOne(a PP) bool {
	for _, x := range a.b.xs {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

func (s *bigStore) stdDeg(a PP) int64 {
	d := new(big.Int)
	for _, x := range a.b.xs {
		d.Add(d, x)
	}

	if !d.IsInt64() {
		return math.MaxInt64
	}

	return d.Int64()
}

func (s *bigStore) dot(a PP, w []int64) (int64, error) {
	d := new(big.Int)
	tmp := new(big.Int)

	for i, x := range a.b.xs {
		d.Add(d, tmp.Mul(big.NewInt(w[i]), x))
	}

	if !d.IsInt64() {
		return 0, fmt.Errorf("%w: weighted degree %s does not fit in an int64", ErrExponentOverflow, d)
	}

	return d.Int64(), nil
}

func (s *bigStore) radical(a PP) PP {
	v := make([]*big.Int, len(a.b.xs))
	for i, x := range a.b.xs {
		v[i] = big.NewInt(int64(x.Sign()))
	}

	return s.wrap(v)
}

func (s *bigStore) project(a PP, keep func(i int) bool) PP {
	v := make([]*big.Int, len(a.b.xs))
	for i, x := range a.b.xs {
		v[i] = new(big.Int)
		if keep(i) {
			v[i].Set(x)
		}
	}

	return s.wrap(v)
}
