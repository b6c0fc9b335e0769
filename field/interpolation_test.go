package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonomialQuickDiv(t *testing.T) {
	a := assert.New(t)

	f := fp(t, 157)

	t.Run("simple", func(t *testing.T) {
		m1 := NewPolynomial[uint64](f, []uint64{f.Neg(5), 1})
		m2 := NewPolynomial[uint64](f, []uint64{f.Neg(3), 1})

		m := m1.Mul(m2)

		q, r := m.LongDiv(m1)

		a.Equal(makeConstantPoly[uint64](f, 0).ToSlice(), r.ToSlice())
		a.Equal(m2.ToSlice(), q.ToSlice())

		intr := NewInterpolator[uint64](f)

		q_ := intr.mDivMi(m, 5)
		a.Equal(q.ToSlice(), q_.ToSlice())

		q, r = m.LongDiv(m2)
		a.Equal(makeConstantPoly[uint64](f, 0).ToSlice(), r.ToSlice())
		a.Equal(m1.ToSlice(), q.ToSlice())

		q_ = intr.mDivMi(m, 3)
		a.Equal(q.ToSlice(), q_.ToSlice())
	})

	t.Run("complex", func(t *testing.T) {
		xs := []uint64{1, 2, 3, 5, 6, 7}

		intr := NewInterpolator[uint64](f)
		m := PolyProductMonicNegRoots[uint64](f, xs)

		for _, x := range xs {
			mi := NewPolynomial[uint64](f, []uint64{f.Neg(x), 1})

			qQuickDiv := intr.mDivMi(m, x)
			qLongdiv, _ := m.LongDiv(mi)
			a.True(qQuickDiv.Equals(qLongdiv))
		}
	})
}

func TestInterpolation(t *testing.T) {
	a := assert.New(t)

	f := fp(t, 157)

	p := NewPolynomial[uint64](f, []uint64{0, 1, 2})

	intr := NewInterpolator[uint64](f)

	xs, ys := evalPolyForTest(f, p, 0, 3)

	interpolated, err := intr.Interpolate(xs, ys)
	a.NoError(err)

	a.Equal(p.ToSlice(), interpolated.ToSlice())

	t.Run("rationals", func(t *testing.T) {
		// the line through (0, 1/2) and (2, 3/2).
		xs := []*big.Rat{big.NewRat(0, 1), big.NewRat(2, 1)}
		ys := []*big.Rat{big.NewRat(1, 2), big.NewRat(3, 2)}

		line, err := NewInterpolator[*big.Rat](QQ).Interpolate(xs, ys)
		a.NoError(err)
		a.Equal("1/2*x^1 + 1/2", line.String())
	})

	t.Run("bad points", func(t *testing.T) {
		_, err := intr.Interpolate([]uint64{1, 2}, []uint64{1})
		a.ErrorIs(err, errPointsSizeMismatch)

		_, err = intr.Interpolate(nil, nil)
		a.ErrorIs(err, errNoPoints)

		_, err = intr.Interpolate([]uint64{1, 1}, []uint64{1, 2})
		a.ErrorIs(err, errNonUniqueXs)
	})
}

func FuzzInterpolation(f *testing.F) {
	testcases := []uint64{1, 5, 1 << 62, (1 << 63) - 1}
	for _, tc := range testcases {
		f.Add(tc) // Use f.Add to provide a seed corpus
	}

	fld, err := NewPrimeField(largePrime)
	if err != nil {
		f.FailNow()
	}

	f.Fuzz(func(t *testing.T, randomSeed uint64) {
		a := assert.New(t)
		const boundingDegree = 10

		p := randomPolynomial(fld, randomSeed, boundingDegree)

		intr := NewInterpolator[uint64](fld)

		xs, ys := evalPolyForTest(fld, p, randomSeed%largePrime, boundingDegree)
		q, err := intr.Interpolate(xs, ys)
		a.NoError(err)

		a.True(p.Equals(q))
	})
}

func evalPolyForTest(f *PrimeField, p *Polynomial[uint64], start uint64, numEvals int) ([]uint64, []uint64) {
	xs := make([]uint64, numEvals)
	for i := range xs {
		xs[i] = f.Reduce(start + uint64(i) + 1)
	}

	ys := make([]uint64, len(xs))

	for i, x := range xs {
		ys[i] = p.Eval(x)
	}

	return xs, ys
}

func BenchmarkMDivMi(b *testing.B) {
	f := fp(b, 157)

	xs := []uint64{1, 2, 3, 5, 6, 7}

	intr := NewInterpolator[uint64](f)
	m := PolyProductMonicNegRoots[uint64](f, xs)
	mi := NewPolynomial[uint64](f, []uint64{f.Neg(xs[0]), 1})

	b.Run("mDivMi", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			intr.mDivMi(m, xs[0])
		}
	})

	b.Run("LongDiv", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			m.LongDiv(mi)
		}
	})
}
