package groebner

import (
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qqRing(t testing.TB, ord monomial.Ordering, names ...string) *poly.Ring[*big.Rat] {
	m, err := monomial.NewMonoid(ord, monomial.WithNames(names...))
	require.NoError(t, err)

	return poly.NewRing[*big.Rat](field.QQ, m)
}

func fpRing(t testing.TB, p uint64, ord monomial.Ordering, names ...string) *poly.Ring[uint64] {
	f, err := field.NewPrimeField(p)
	require.NoError(t, err)

	m, err := monomial.NewMonoid(ord, monomial.WithNames(names...))
	require.NoError(t, err)

	return poly.NewRing[uint64](f, m)
}

func parseAll[E any](t testing.TB, r *poly.Ring[E], ss ...string) []*poly.Poly[E] {
	ps, err := r.ParseList(ss...)
	require.NoError(t, err)

	return ps
}

func strs[E any](ps []*poly.Poly[E]) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

func sPoly[E any](t testing.TB, r *poly.Ring[E], f, g *poly.Poly[E]) *poly.Poly[E] {
	m, cr := r.Monoid(), r.Coeffs()

	ft, err := f.LT()
	require.NoError(t, err)
	gt, err := g.LT()
	require.NoError(t, err)

	l := m.Lcm(ft.PP, gt.PP)

	qf, err := m.Div(l, ft.PP)
	require.NoError(t, err)
	qg, err := m.Div(l, gt.PP)
	require.NoError(t, err)

	cf, err := cr.Div(cr.One(), ft.Coeff)
	require.NoError(t, err)
	cg, err := cr.Div(cr.One(), gt.Coeff)
	require.NoError(t, err)

	a, err := f.MulTerm(cf, qf)
	require.NoError(t, err)
	b, err := g.MulTerm(cg, qg)
	require.NoError(t, err)

	return a.Sub(b)
}

// requireGroebner checks Buchberger's criterion and that every generator
// reduces to zero.
func requireGroebner[E any](t testing.TB, r *poly.Ring[E], gens, gb []*poly.Poly[E]) {
	for i := range gb {
		for j := i + 1; j < len(gb); j++ {
			nf, err := NormalForm(r, sPoly(t, r, gb[i], gb[j]), gb)
			require.NoError(t, err)
			require.True(t, nf.IsZero(), "S(%s, %s) reduces to %s", gb[i], gb[j], nf)
		}
	}

	for _, g := range gens {
		nf, err := NormalForm(r, g, gb)
		require.NoError(t, err)
		require.True(t, nf.IsZero(), "%s reduces to %s", g, nf)
	}
}

func cyclic4[E any](t testing.TB, r *poly.Ring[E], homog bool) []*poly.Poly[E] {
	last := "a*b*c*d - 1"
	if homog {
		last = "a*b*c*d - h^4"
	}

	return parseAll(t, r,
		"a + b + c + d",
		"a*b + b*c + c*d + d*a",
		"a*b*c + b*c*d + c*d*a + d*a*b",
		last,
	)
}

func TestGBasisSmall(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.Lex(2), "x", "y")
	gens := parseAll(t, r, "x^2 - y", "x*y - 1")

	gb, minGens, err := ComputeGBasis(r, gens)
	a.NoError(err)
	a.Equal([]string{"y^3 - 1", "x - y^2"}, strs(gb))
	a.Empty(minGens)

	requireGroebner(t, r, gens, gb)

	lt, err := ComputeLT(r, gens)
	a.NoError(err)
	a.Equal([]string{"y^3", "x"}, strs(lt))
}

func TestCyclic4(t *testing.T) {
	a := assert.New(t)

	t.Run("affine", func(t *testing.T) {
		r := qqRing(t, monomial.DegRevLex(4), "a", "b", "c", "d")
		gens := cyclic4(t, r, false)

		stats := &Stats{}

		gb, minGens, err := ComputeGBasis(r, gens, WithStats(stats))
		a.NoError(err)
		a.Len(gb, 7)
		a.Empty(minGens)
		a.Equal("a + b + c + d", gb[0].String())

		requireGroebner(t, r, gens, gb)

		a.Equal(1, stats.Runs)
		a.NotEqual(uuid.Nil, stats.RunID)
		a.Equal(7, stats.BasisSize)
		a.Equal(1, stats.States[Done])
		a.Equal(1, stats.States[Interreducing])
		a.Equal(stats.PairsProcessed, stats.States[ReducingPair])
		a.Positive(stats.PairsCreated)
		a.False(stats.MonomialFastPath)
	})

	t.Run("homogeneous", func(t *testing.T) {
		r := qqRing(t, monomial.DegRevLex(5), "a", "b", "c", "d", "h")
		gens := cyclic4(t, r, true)

		gb, minGens, err := ComputeGBasis(r, gens)
		a.NoError(err)
		a.Len(minGens, 4)

		requireGroebner(t, r, gens, gb)
		requireGroebner(t, r, minGens, gb)
	})

	t.Run("prime field", func(t *testing.T) {
		r := fpRing(t, 32003, monomial.DegRevLex(4), "a", "b", "c", "d")
		gens := cyclic4(t, r, false)

		gb, _, err := ComputeGBasis(r, gens)
		a.NoError(err)
		a.Len(gb, 7)

		requireGroebner(t, r, gens, gb)
	})
}

func TestStrategiesAgree(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegLex(3), "x", "y", "z")
	gens := parseAll(t, r, "x^2 + y*z - 2", "x*z + y^2 - 3", "x*y + z^2 - 5")

	want, _, err := ComputeGBasis(r, gens)
	require.NoError(t, err)
	requireGroebner(t, r, gens, want)

	for _, s := range []Strategy{Normal, Degree} {
		t.Run(s.String(), func(t *testing.T) {
			gb, _, err := ComputeGBasis(r, gens, WithStrategy(s))
			a.NoError(err)
			a.Equal(strs(want), strs(gb))
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		gb, _, err := ComputeGBasis(r, want)
		a.NoError(err)
		a.Equal(strs(want), strs(gb))
	})

	t.Run("without interreduction", func(t *testing.T) {
		gb, _, err := ComputeGBasis(r, gens, WithoutInterreduction())
		a.NoError(err)
		a.Len(gb, len(want))
		requireGroebner(t, r, gens, gb)

		lt, err := ComputeLT(r, gens)
		a.NoError(err)

		for i, g := range gb {
			lpp, _ := g.LPP()
			want, _ := lt[i].LPP()
			a.True(r.Monoid().Equal(lpp, want))
		}
	})
}

func TestParseStrategy(t *testing.T) {
	a := assert.New(t)

	for _, s := range []Strategy{Sugar, Normal, Degree} {
		got, err := ParseStrategy(s.String())
		a.NoError(err)
		a.Equal(s, got)
	}

	_, err := ParseStrategy("fastest")
	a.ErrorIs(err, ErrBadArg)

	a.Panics(func() { WithStrategy(Strategy(7)) })
}

func TestFastPaths(t *testing.T) {
	a := assert.New(t)

	t.Run("monomial", func(t *testing.T) {
		r := qqRing(t, monomial.DegRevLex(2), "x", "y")
		gens := parseAll(t, r, "x^2", "3*x*y", "y^3", "x^2*y", "0")

		stats := &Stats{}

		gb, minGens, err := ComputeGBasis(r, gens, WithStats(stats))
		a.NoError(err)
		a.Equal([]string{"x*y", "x^2", "y^3"}, strs(gb))
		a.Equal(strs(gb), strs(minGens))

		a.True(stats.MonomialFastPath)
		a.Zero(stats.PairsCreated)
		a.Zero(stats.Runs)
	})

	t.Run("univariate", func(t *testing.T) {
		r := qqRing(t, monomial.Lex(2), "x", "y")
		gens := parseAll(t, r, "x^3 - 1", "x^2 - 1", "2*x^4 - 2*x")

		stats := &Stats{}

		gb, _, err := ComputeGBasis(r, gens, WithStats(stats))
		a.NoError(err)
		a.Equal([]string{"x - 1"}, strs(gb))
		a.True(stats.UnivariateFastPath)
		a.Zero(stats.Runs)
	})

	t.Run("zero ideal", func(t *testing.T) {
		r := qqRing(t, monomial.Lex(2), "x", "y")

		gb, _, err := ComputeGBasis(r, parseAll(t, r, "0"))
		a.NoError(err)
		a.Empty(gb)
	})
}

func TestUnitIdeal(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(2), "x", "y")
	gens := parseAll(t, r, "x*y - 1", "x", "y^5 + x^3*y + 2")

	gb, _, err := ComputeGBasis(r, gens)
	a.NoError(err)
	a.Equal([]string{"1"}, strs(gb))
}

func TestErrors(t *testing.T) {
	a := assert.New(t)

	t.Run("not a field", func(t *testing.T) {
		m, err := monomial.NewMonoid(monomial.Lex(2), monomial.WithNames("x", "y"))
		require.NoError(t, err)

		zr := poly.NewRing[*big.Int](field.ZZ, m)
		gens := parseAll(t, zr, "2*x - y")

		_, _, err = ComputeGBasis(zr, gens)
		a.ErrorIs(err, ErrNotAField)

		_, err = NewIdeal(zr, gens)
		a.ErrorIs(err, ErrNotAField)
	})

	t.Run("mixed rings", func(t *testing.T) {
		r := qqRing(t, monomial.Lex(2), "x", "y")
		s := qqRing(t, monomial.Lex(2), "x", "y")

		_, _, err := ComputeGBasis(r, []*poly.Poly[*big.Rat]{r.Indet(0), s.Indet(1)})
		a.ErrorIs(err, ErrBadArg)

		_, err = ComputeElim(r, []*poly.Poly[*big.Rat]{r.Indet(0)}, []int{2})
		a.ErrorIs(err, ErrBadArg)

		_, err = ComputeElim(r, []*poly.Poly[*big.Rat]{r.Indet(0)}, []int{1, 1})
		a.ErrorIs(err, ErrBadArg)
	})

	t.Run("exponent overflow", func(t *testing.T) {
		m, err := monomial.NewMonoid(monomial.DegRevLex(2), monomial.WithNames("x", "y"), monomial.WithMaxExponent(3))
		require.NoError(t, err)

		r := poly.NewRing[*big.Rat](field.QQ, m)
		gens := parseAll(t, r, "x^3 - y", "x*y^3 - 1")

		_, _, err = ComputeGBasis(r, gens)
		a.ErrorIs(err, ErrExponentOverflow)
	})
}

func TestNormalFormDescent(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(3), "x", "y", "z")
	gens := parseAll(t, r, "x^2 - y*z", "y^2 - x*z", "z^2 - x*y")

	gb, _, err := ComputeGBasis(r, gens)
	require.NoError(t, err)

	f, err := r.Parse("x^5*y + 3*x^2*y^2*z - z^4 + x + 1")
	require.NoError(t, err)

	var seen []monomial.PP

	nf, err := NormalForm(r, f, gb, WithReductionTrace(func(pp monomial.PP) {
		seen = append(seen, pp)
	}))
	a.NoError(err)
	a.NotEmpty(seen)

	for i := 1; i < len(seen); i++ {
		a.Negative(r.Monoid().Cmp(seen[i], seen[i-1]), "step %d", i)
	}

	// the normal form differs from f by an ideal member.
	member, err := NormalForm(r, f.Sub(nf), gb)
	a.NoError(err)
	a.True(member.IsZero())

	// no term of the normal form is divisible by a leading power product.
	for _, term := range nf.Terms() {
		for _, g := range gb {
			lpp, _ := g.LPP()
			a.False(r.Monoid().IsDivisible(term.PP, lpp))
		}
	}
}

func TestElim(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(3), "t", "x", "y")
	gens := parseAll(t, r, "x - t^2", "y - t^3")

	out, err := ComputeElim(r, gens, []int{0})
	a.NoError(err)
	a.Equal([]string{"x^3 - y^2"}, strs(out))
}

func TestIntersectionAndColon(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(2), "x", "y")

	out, err := ComputeIntersection(r, parseAll(t, r, "x"), parseAll(t, r, "y"))
	a.NoError(err)
	a.Equal([]string{"x*y"}, strs(out))

	out, err = ComputeIntersection(r, parseAll(t, r, "x - 1"), parseAll(t, r, "x + 1"))
	a.NoError(err)
	a.Equal([]string{"x^2 - 1"}, strs(out))

	out, err = ComputeColonByPrincipal(r, parseAll(t, r, "x*y"), r.Indet(0))
	a.NoError(err)
	a.Equal([]string{"y"}, strs(out))

	out, err = ComputeColonByPrincipal(r, parseAll(t, r, "x*y", "x^2"), r.Indet(0))
	a.NoError(err)
	requireSameIdeal(t, r, out, parseAll(t, r, "x", "y"))

	out, err = ComputeColonByPrincipal(r, parseAll(t, r, "x*y"), r.Zero())
	a.NoError(err)
	a.Equal([]string{"1"}, strs(out))

	out, err = ComputeCColon(r, parseAll(t, r, "x^2*y", "x*y^2"), parseAll(t, r, "x", "y"))
	a.NoError(err)
	requireSameIdeal(t, r, out, parseAll(t, r, "x*y"))
}

func requireSameIdeal[E any](t testing.TB, r *poly.Ring[E], a, b []*poly.Poly[E]) {
	I, err := NewIdeal(r, a)
	require.NoError(t, err)

	J, err := NewIdeal(r, b)
	require.NoError(t, err)

	eq, err := I.Equal(J)
	require.NoError(t, err)
	require.True(t, eq, "%s != %s", I, J)
}

func TestSaturation(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(2), "x", "y")

	out, err := ComputeSaturationByPrincipal(r, parseAll(t, r, "x^2*y", "y^2"), r.Indet(0))
	a.NoError(err)
	a.Equal([]string{"y"}, strs(out))

	out, err = ComputeSaturationByPrincipal(r, parseAll(t, r, "x*y - y", "x^2 - x"), mustPoly(t, r, "x - 1"))
	a.NoError(err)
	requireSameIdeal(t, r, out, parseAll(t, r, "x", "y"))

	out, err = ComputeSSaturation(r, parseAll(t, r, "x^2*y^3", "x^4"), parseAll(t, r, "x", "y"))
	a.NoError(err)
	a.Equal([]string{"x^2"}, strs(out))

	in, err := RadicalMembership(r, parseAll(t, r, "x^3", "y^2 - x"), r.Indet(1))
	a.NoError(err)
	a.True(in)

	in, err = RadicalMembership(r, parseAll(t, r, "x^3"), r.Indet(1))
	a.NoError(err)
	a.False(in)
}

func TestSaturationByIndet(t *testing.T) {
	r := qqRing(t, monomial.DegRevLex(3), "x", "y", "z")
	o := gatherOptions(nil)

	tests := []struct {
		name string
		gens []string
		x    int
		want []string
	}{
		{"prime component", []string{"x*z^2", "y*z - x^2"}, 2, []string{"x", "y"}},
		{"unit", []string{"x^2*y", "y^2"}, 1, []string{"1"}},
		{"nothing to remove", []string{"x^2 - y*z"}, 0, []string{"x^2 - y*z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gens := parseAll(t, r, tt.gens...)

			byIndet, err := saturationByIndet(r, gens, tt.x, o)
			require.NoError(t, err)

			byRabinowitsch, err := rabinowitschSaturation(r, gens, r.Indet(tt.x), o)
			require.NoError(t, err)

			requireSameIdeal(t, r, byIndet, byRabinowitsch)
			requireSameIdeal(t, r, byIndet, parseAll(t, r, tt.want...))
		})
	}

	stats := &Stats{}
	out, err := ComputeSaturationByPrincipal(r, parseAll(t, r, "x*z^2", "y*z - x^2"), mustPoly(t, r, "2*z^3"), WithStats(stats))
	require.NoError(t, err)
	requireSameIdeal(t, r, out, parseAll(t, r, "x", "y"))
	assert.Equal(t, 1, stats.Runs)
}

func TestUnivariateRadicalMembership(t *testing.T) {
	r := qqRing(t, monomial.DegRevLex(2), "x", "y")

	tests := []struct {
		gens []string
		f    string
		want bool
	}{
		{[]string{"x^3 - x^2"}, "x^2 - x", true},
		{[]string{"x^3 - x^2"}, "x", false},
		{[]string{"x^4 - 2*x^2 + 1", "x^3 - x"}, "x^2 - 1", true},
		{[]string{"x^4 - 2*x^2 + 1", "x^3 - x"}, "x - 1", false},
		{[]string{"0"}, "x", false},
		{[]string{"0"}, "3", false},
		{[]string{"2"}, "x", true},
		{[]string{"y^2"}, "7*y", true},
	}

	for _, tt := range tests {
		t.Run(tt.f, func(t *testing.T) {
			stats := &Stats{}

			in, err := RadicalMembership(r, parseAll(t, r, tt.gens...), mustPoly(t, r, tt.f), WithStats(stats))
			require.NoError(t, err)
			assert.Equal(t, tt.want, in, "%v", tt.gens)
			assert.True(t, stats.UnivariateFastPath)
			assert.Zero(t, stats.Runs)
		})
	}

	t.Run("characteristic 3", func(t *testing.T) {
		a := assert.New(t)

		fr := fpRing(t, 3, monomial.DegRevLex(1), "x")
		gens := parseAll(t, fr, "x^3 - 1")

		in, err := RadicalMembership(fr, gens, mustPoly(t, fr, "x - 1"))
		a.NoError(err)
		a.True(in)

		in, err = RadicalMembership(fr, gens, mustPoly(t, fr, "x"))
		a.NoError(err)
		a.False(in)
	})
}

func mustPoly[E any](t testing.TB, r *poly.Ring[E], s string) *poly.Poly[E] {
	p, err := r.Parse(s)
	require.NoError(t, err, s)

	return p
}

func TestHomogenization(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(4), "x", "y", "z", "h")

	out, err := ComputeHomogenization(r, parseAll(t, r, "y - x^2", "z - x^3"), 3)
	a.NoError(err)

	for _, p := range out {
		a.True(p.IsHomog(), p.String())
	}

	requireSameIdeal(t, r, out, parseAll(t, r, "y*h - x^2", "z*h - x*y", "x*z - y^2"))

	_, err = ComputeHomogenization(r, parseAll(t, r, "y - h"), 3)
	a.ErrorIs(err, ErrBadArg)
}

func TestSyzygies(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(3), "x", "y", "z")
	gens := parseAll(t, r, "x*y", "y*z", "x*z")

	syz, err := ComputeSyz(r, gens)
	a.NoError(err)
	require.NotEmpty(t, syz)

	fm := syz[0].Module()
	a.Equal(3, fm.Rank())

	for _, v := range syz {
		sum := r.Zero()
		for i, g := range gens {
			p, err := v.Component(i).Mul(g)
			require.NoError(t, err)

			sum = sum.Add(p)
		}

		a.True(sum.IsZero(), v.String())
	}

	sm, err := NewSubmodule(fm, syz)
	require.NoError(t, err)

	for _, c := range [][]string{{"z", "-x", "0"}, {"0", "x", "-y"}, {"z", "0", "-y"}} {
		v, err := fm.NewVector(parseAll(t, r, c...)...)
		require.NoError(t, err)

		in, err := sm.Contains(v)
		a.NoError(err)
		a.True(in, v.String())
	}
}

func TestIntegers(t *testing.T) {
	a := assert.New(t)

	m, err := monomial.NewMonoid(monomial.Lex(2), monomial.WithNames("x", "y"))
	require.NoError(t, err)

	zr := poly.NewRing[*big.Int](field.ZZ, m)

	gb, err := ComputeGBasisIntegers(zr, parseAll(t, zr, "2*x*y - 4", "3*x + 3"))
	a.NoError(err)
	a.Equal([]string{"y + 2", "x + 1"}, strs(gb))
}

func TestNormalFormOverIntegers(t *testing.T) {
	a := assert.New(t)

	m, err := monomial.NewMonoid(monomial.Lex(2), monomial.WithNames("x", "y"))
	require.NoError(t, err)

	zr := poly.NewRing[*big.Int](field.ZZ, m)
	basis := parseAll(t, zr, "2*x - 1", "x - y")

	// 2 does not divide 3, so x - y is the reducer.
	stats := &Stats{}
	nf, err := NormalForm(zr, mustPoly(t, zr, "3*x"), basis, WithStats(stats))
	require.NoError(t, err)
	a.Equal("3*y", nf.String())
	a.Equal(1, stats.Reductions)

	nf, err = NormalForm(zr, mustPoly(t, zr, "4*x + 1"), basis)
	require.NoError(t, err)
	a.Equal("3", nf.String())
}

func BenchmarkCyclic4(b *testing.B) {
	for _, s := range []Strategy{Sugar, Normal, Degree} {
		b.Run(s.String(), func(b *testing.B) {
			r := fpRing(b, 32003, monomial.DegRevLex(4), "a", "b", "c", "d")
			gens := cyclic4(b, r, false)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, _, err := ComputeGBasis(r, gens, WithStrategy(s)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
