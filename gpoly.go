package groebner

import (
	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
)

// gpoly is a basis element with the data the engine keeps on it.
type gpoly[E any] struct {
	p     *poly.Poly[E]
	lpp   monomial.PP
	sugar int64
	// component is the index of the component indeterminate of lpp in module
	// mode, and -1 otherwise.
	component int
	// redundant elements have a leading power product divisible by a later
	// element; they stay for the pairs that still refer to them.
	redundant bool
}

/*
degreeFunc returns the degree used for sugar: the first grading row when the
ordering has one, the standard degree otherwise.
*/
func degreeFunc(m *monomial.Monoid) func(monomial.PP) (int64, error) {
	if m.GradingDim() == 0 {
		return func(pp monomial.PP) (int64, error) {
			return m.StdDeg(pp), nil
		}
	}

	row := m.Ordering().Matrix()[0]

	return func(pp monomial.PP) (int64, error) {
		return m.WeightedDeg(pp, row)
	}
}

// sugarOf is the largest degree of a term of p.
func sugarOf[E any](p *poly.Poly[E], deg func(monomial.PP) (int64, error)) (int64, error) {
	var s int64

	for i := 0; i < p.Len(); i++ {
		d, err := deg(p.Term(i).PP)
		if err != nil {
			return 0, err
		}

		s = max(s, d)
	}

	return s, nil
}

func componentOf(m *monomial.Monoid, pp monomial.PP, comps []int) int {
	for c, i := range comps {
		if e, err := m.Exponent(pp, i); err == nil && e > 0 {
			return c
		}
	}

	return -1
}
