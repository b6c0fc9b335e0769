package groebner

import (
	"testing"

	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pps(t testing.TB, m *monomial.Monoid, exps ...[]int64) []monomial.PP {
	out := make([]monomial.PP, len(exps))
	for i, e := range exps {
		pp, err := m.New(e)
		require.NoError(t, err)

		out[i] = pp
	}

	return out
}

func ppStrings(m *monomial.Monoid, ps []monomial.PP) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = m.String(p)
	}

	return out
}

func TestMonomialCombinatorics(t *testing.T) {
	a := assert.New(t)

	m, err := monomial.NewMonoid(monomial.DegRevLex(3), monomial.WithNames("x", "y", "z"))
	require.NoError(t, err)

	I := pps(t, m, []int64{2, 1, 0}, []int64{0, 2, 0}, []int64{1, 2, 0}, []int64{0, 2, 0})
	J := pps(t, m, []int64{1, 0, 0}, []int64{0, 0, 1})

	a.Equal([]string{"y^2", "x^2*y"}, ppStrings(m, minimalize(m, I)))
	a.Equal([]string{"z", "x", "y^2"}, ppStrings(m, monomialSum(m, I, J)))

	prod, err := monomialProduct(m, minimalize(m, I), J)
	a.NoError(err)
	a.Equal([]string{"y^2*z", "x*y^2", "x^2*y*z", "x^3*y"}, ppStrings(m, prod))

	a.Equal([]string{"y^2*z", "x*y^2", "x^2*y"}, ppStrings(m, monomialIntersection(m, minimalize(m, I), J)))

	a.Equal([]string{"y^2", "x*y"}, ppStrings(m, monomialColon(m, minimalize(m, I), J[:1])))
	a.Equal([]string{"y"}, ppStrings(m, monomialSaturation(m, minimalize(m, I), J[:1])))
	a.Equal([]string{"1"}, ppStrings(m, monomialColon(m, I, nil)))
}

func TestAlexanderDual(t *testing.T) {
	a := assert.New(t)

	m, err := monomial.NewMonoid(monomial.DegRevLex(4), monomial.WithNames("a", "b", "c", "d"))
	require.NoError(t, err)

	// the 4-cycle ab, bc, cd, da has minimal vertex covers {a, c} and {b, d}.
	edges := pps(t, m, []int64{1, 1, 0, 0}, []int64{0, 1, 1, 0}, []int64{0, 0, 1, 1}, []int64{1, 0, 0, 1})

	covers := alexanderDual(m, minimalize(m, edges))
	a.ElementsMatch([][]int{{0, 2}, {1, 3}}, covers)

	a.Nil(alexanderDual(m, nil))
}

func TestUnivariateFastPath(t *testing.T) {
	a := assert.New(t)

	r := fpRing(t, 7, monomial.DegRevLex(2), "x", "y")

	// not homogeneous, one indeterminate.
	gens := parseAll(t, r, "y^4 - 1", "y^2 + 3*y + 2")

	gb, ok := univariateGBasis(r, gens)
	a.True(ok)
	a.Equal([]string{"y + 1"}, strs(gb))

	_, ok = univariateGBasis(r, parseAll(t, r, "y^2", "y^3"))
	a.False(ok)

	_, ok = univariateGBasis(r, parseAll(t, r, "x + y"))
	a.False(ok)

	gb, ok = univariateGBasis(r, parseAll(t, r, "0", "2*x^2 - 2"))
	a.True(ok)
	a.Equal([]string{"x^2 - 1"}, strs(gb))
}
