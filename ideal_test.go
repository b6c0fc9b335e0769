package groebner

import (
	"math/big"
	"testing"

	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdeal(t testing.TB, r *poly.Ring[*big.Rat], gens ...string) *Ideal[*big.Rat] {
	I, err := NewIdeal(r, parseAll(t, r, gens...))
	require.NoError(t, err)

	return I
}

func requireEqualIdeals[E any](t testing.TB, I, J *Ideal[E]) {
	eq, err := I.Equal(J)
	require.NoError(t, err)
	require.True(t, eq, "%s != %s", I, J)
}

func TestIdealMembership(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(2), "x", "y")
	I := newIdeal(t, r, "x^2 - y")

	in, err := I.Contains(mustPoly(t, r, "x^4 - y^2"))
	a.NoError(err)
	a.True(in)

	in, err = I.Contains(r.Indet(1))
	a.NoError(err)
	a.False(in)

	// adding generators drops the cached basis.
	a.NoError(I.Add(newIdeal(t, r, "x")))

	in, err = I.Contains(r.Indet(1))
	a.NoError(err)
	a.True(in)

	gb, err := I.GBasis()
	a.NoError(err)
	a.Equal([]string{"y", "x"}, strs(gb))

	one, err := I.IsOne()
	a.NoError(err)
	a.False(one)

	nf, err := I.NormalForm(mustPoly(t, r, "x*y + x + y + 7"))
	a.NoError(err)
	a.Equal("7", nf.String())

	_, err = I.Contains(qqRing(t, monomial.DegRevLex(2), "x", "y").Indet(0))
	a.ErrorIs(err, ErrBadArg)
}

func TestIdealColon(t *testing.T) {
	r := qqRing(t, monomial.DegRevLex(2), "x", "y")

	t.Run("monomial", func(t *testing.T) {
		I := newIdeal(t, r, "x*y")
		require.NoError(t, I.Colon(newIdeal(t, r, "x")))
		requireEqualIdeals(t, I, newIdeal(t, r, "y"))

		J := newIdeal(t, r, "x*y", "x^2")
		require.NoError(t, J.Colon(newIdeal(t, r, "x")))
		requireEqualIdeals(t, J, newIdeal(t, r, "x", "y"))
	})

	t.Run("embedding", func(t *testing.T) {
		// same ideals, generators that are not power products.
		I := newIdeal(t, r, "x*y", "x*y + x^2")
		require.NoError(t, I.Colon(newIdeal(t, r, "x")))
		requireEqualIdeals(t, I, newIdeal(t, r, "x", "y"))

		J := newIdeal(t, r, "x^2 - y^2")
		require.NoError(t, J.Colon(newIdeal(t, r, "x + y")))
		requireEqualIdeals(t, J, newIdeal(t, r, "x - y"))
	})
}

func TestIdealOperations(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(3), "x", "y", "z")

	t.Run("product", func(t *testing.T) {
		I := newIdeal(t, r, "x", "y")
		a.NoError(I.Mul(newIdeal(t, r, "x", "z")))
		requireEqualIdeals(t, I, newIdeal(t, r, "x^2", "x*z", "x*y", "y*z"))

		J := newIdeal(t, r, "x + y")
		a.NoError(J.Mul(newIdeal(t, r, "x - y")))
		requireEqualIdeals(t, J, newIdeal(t, r, "x^2 - y^2"))
	})

	t.Run("intersection", func(t *testing.T) {
		I := newIdeal(t, r, "x^2", "y")
		a.NoError(I.Intersect(newIdeal(t, r, "x*y", "z")))
		requireEqualIdeals(t, I, newIdeal(t, r, "x*y", "y*z", "x^2*z"))

		J := newIdeal(t, r, "x - 1")
		a.NoError(J.Intersect(newIdeal(t, r, "x + 1")))
		requireEqualIdeals(t, J, newIdeal(t, r, "x^2 - 1"))
	})

	t.Run("saturation", func(t *testing.T) {
		I := newIdeal(t, r, "x^2*y", "x*z^3")
		a.NoError(I.Saturate(newIdeal(t, r, "x")))
		requireEqualIdeals(t, I, newIdeal(t, r, "y", "z^3"))

		J := newIdeal(t, r, "x*y - y", "x^2 - x")
		a.NoError(J.Saturate(newIdeal(t, r, "x - 1")))
		requireEqualIdeals(t, J, newIdeal(t, r, "x", "y"))
	})

	t.Run("elimination", func(t *testing.T) {
		I := newIdeal(t, r, "x - y^2", "z - y^3")

		J, err := I.Elim(1)
		a.NoError(err)
		requireEqualIdeals(t, J, newIdeal(t, r, "x^3 - z^2"))
	})

	t.Run("mismatched rings", func(t *testing.T) {
		s := qqRing(t, monomial.DegRevLex(3), "x", "y", "z")
		I := newIdeal(t, r, "x")

		a.ErrorIs(I.Add(newIdeal(t, s, "x")), ErrBadArg)
		a.ErrorIs(I.Intersect(newIdeal(t, s, "x")), ErrBadArg)
	})
}

func TestIdealFlags(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(3), "x", "y", "z")

	tests := []struct {
		gens             []string
		prime, maximal   bool
		monomial, sqfree bool
	}{
		{[]string{"x", "y"}, true, false, true, true},
		{[]string{"x", "y", "z"}, true, true, true, true},
		{[]string{"x*y"}, false, false, true, true},
		{[]string{"x^2", "y"}, false, false, true, false},
		{[]string{"x + y - 1"}, true, false, false, false},
		{[]string{"x - 1", "y - 2", "z + x"}, true, true, false, false},
		{[]string{"x + y", "y"}, true, false, true, true},
		{[]string{"x*y - 1", "x"}, false, false, true, true},
	}

	for _, tt := range tests {
		I := newIdeal(t, r, tt.gens...)

		prime, err := I.IsPrime()
		a.NoError(err, I.String())
		a.Equal(tt.prime, prime, I.String())

		maximal, err := I.IsMaximal()
		a.NoError(err, I.String())
		a.Equal(tt.maximal, maximal, I.String())

		mono, err := I.IsMonomial()
		a.NoError(err)
		a.Equal(tt.monomial, mono, I.String())

		sqfree, err := I.IsSquareFreeMonomial()
		a.NoError(err)
		a.Equal(tt.sqfree, sqfree, I.String())
	}

	zero := newIdeal(t, r, "0")
	a.True(zero.IsZero())

	prime, err := zero.IsPrime()
	a.NoError(err)
	a.True(prime)

	maximal, err := zero.IsMaximal()
	a.NoError(err)
	a.False(maximal)
}

func TestIdealKnownFlags(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(2), "x", "y")
	I := newIdeal(t, r, "x^2 - y^3")

	_, err := I.IsPrime()
	a.ErrorIs(err, ErrNotYetImplemented)

	I.SetPrime(true)

	prime, err := I.IsPrime()
	a.NoError(err)
	a.True(prime)

	c := I.Clone()

	// changing the generators forgets what was set.
	a.NoError(I.Add(newIdeal(t, r, "x")))

	_, err = I.IsMaximal()
	a.NoError(err)

	prime, err = c.IsPrime()
	a.NoError(err)
	a.True(prime)

	c.SetMaximal(false)
	a.NoError(c.Add(newIdeal(t, r, "y")))

	_, err = c.IsMaximal()
	a.NoError(err)
}

func TestPrimaryDecomposition(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(3), "x", "y", "z")

	comps, err := newIdeal(t, r, "x*y", "y*z").PrimaryDecomposition()
	a.NoError(err)
	require.Len(t, comps, 2)

	requireEqualIdeals(t, comps[0], newIdeal(t, r, "y"))
	requireEqualIdeals(t, comps[1], newIdeal(t, r, "x", "z"))

	// the components intersect back to the ideal.
	I := comps[0].Clone()
	a.NoError(I.Intersect(comps[1]))
	requireEqualIdeals(t, I, newIdeal(t, r, "x*y", "y*z"))

	comps, err = newIdeal(t, r, "x*y*z").PrimaryDecomposition()
	a.NoError(err)
	a.Len(comps, 3)

	comps, err = newIdeal(t, r, "1").PrimaryDecomposition()
	a.NoError(err)
	a.Empty(comps)

	_, err = newIdeal(t, r, "x^2").PrimaryDecomposition()
	a.ErrorIs(err, ErrNotYetImplemented)

	_, err = newIdeal(t, r, "x + y").PrimaryDecomposition()
	a.ErrorIs(err, ErrNotYetImplemented)
}

func TestIdealMinGens(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(3), "x", "y", "z")
	I := newIdeal(t, r, "x^2 - y*z", "x^3 - x*y*z", "y^2 - x*z")

	minGens, err := I.MinGens()
	a.NoError(err)
	a.Len(minGens, 2)

	J, err := NewIdeal(r, minGens)
	require.NoError(t, err)
	requireEqualIdeals(t, I, J)

	a.Equal("ideal(x^2 - y*z, x^3 - x*y*z, y^2 - x*z)", I.String())
}

func TestIdealIgnoresInterreductionOption(t *testing.T) {
	a := assert.New(t)

	r := qqRing(t, monomial.DegRevLex(2), "x", "y")
	gens := parseAll(t, r, "x^2 + y", "x^2")

	// the minimal basis keeps the reducible tail of x^2 + y.
	gb, _, err := ComputeGBasis(r, gens, WithoutInterreduction())
	require.NoError(t, err)
	a.Equal([]string{"y", "x^2 + y"}, strs(gb))

	I, err := NewIdeal(r, gens, WithoutInterreduction())
	require.NoError(t, err)

	gb, err = I.GBasis()
	a.NoError(err)
	a.Equal([]string{"y", "x^2"}, strs(gb))

	requireEqualIdeals(t, I, newIdeal(t, r, "x^2", "y"))

	I, err = NewIdeal(r, gens, WithoutInterreduction())
	require.NoError(t, err)

	mono, err := I.IsMonomial()
	a.NoError(err)
	a.True(mono)
}
