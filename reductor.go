package groebner

import (
	"fmt"

	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
)

/*
reductor computes full normal forms against a growing list of reducers.

The division masks of the reducers are kept side by side so that most
candidates are rejected without touching their exponents. When the leading
coefficient of a candidate does not divide the coefficient to cancel (only
possible outside fields) the next candidate is tried.
*/
type reductor[E any] struct {
	r     *poly.Ring[E]
	deg   func(monomial.PP) (int64, error)
	masks []monomial.DivMask
	gs    []*gpoly[E]
	trace func(monomial.PP)
	steps int
}

func newReductor[E any](r *poly.Ring[E], trace func(monomial.PP)) *reductor[E] {
	return &reductor[E]{
		r:     r,
		deg:   degreeFunc(r.Monoid()),
		trace: trace,
	}
}

func (rd *reductor[E]) add(g *gpoly[E]) {
	rd.masks = append(rd.masks, g.lpp.Mask())
	rd.gs = append(rd.gs, g)
}

func (rd *reductor[E]) find(t poly.Term[E]) (*gpoly[E], monomial.PP, E, bool) {
	cr, m := rd.r.Coeffs(), rd.r.Monoid()
	tm := t.PP.Mask()

	for k, mask := range rd.masks {
		if !mask.MayDivide(tm) || rd.gs[k].redundant {
			continue
		}

		g := rd.gs[k]

		q, err := m.Div(t.PP, g.lpp)
		if err != nil {
			continue
		}

		c, err := cr.Div(t.Coeff, g.p.Term(0).Coeff)
		if err != nil {
			continue
		}

		return g, q, c, true
	}

	var zero E
	return nil, monomial.PP{}, zero, false
}

/*
reduce returns the normal form of f and its sugar. Every term that no
reducer can cancel moves to the remainder, so the leading power products
looked at strictly decrease.
*/
func (rd *reductor[E]) reduce(f *poly.Poly[E], sugar int64) (*poly.Poly[E], int64, error) {
	cr := rd.r.Coeffs()

	acc := poly.NewGeobucket(rd.r)
	acc.Add(f)

	var rem []poly.Term[E]
	for {
		t, ok := acc.LeadingTerm()
		if !ok {
			break
		}

		if rd.trace != nil {
			rd.trace(t.PP)
		}

		g, q, c, found := rd.find(t)
		if !found {
			acc.PopLeading()
			rem = append(rem, t)

			continue
		}

		if err := acc.AddMul(cr.Neg(c), q, g.p); err != nil {
			return nil, 0, fmt.Errorf("reducing %s: %w", rd.r.Monoid().String(t.PP), err)
		}

		rd.steps++

		d, err := rd.deg(q)
		if err != nil {
			return nil, 0, err
		}

		sugar = max(sugar, g.sugar+d)
	}

	return rd.r.FromTerms(rem), sugar, nil
}

/*
NormalForm reduces f fully against basis, which need not be a Groebner
basis. It works over any coefficient ring: a reduction step whose
coefficient division is not exact is skipped in favour of the next reducer.
*/
func NormalForm[E any](r *poly.Ring[E], f *poly.Poly[E], basis []*poly.Poly[E], opts ...Option) (*poly.Poly[E], error) {
	if err := checkRing(r, f); err != nil {
		return nil, err
	}

	if err := checkRing(r, basis...); err != nil {
		return nil, err
	}

	o := gatherOptions(opts)

	rd := newReductor(r, o.trace)
	for _, b := range basis {
		if b.IsZero() {
			continue
		}

		lpp, _ := b.LPP()
		rd.add(&gpoly[E]{p: b, lpp: lpp, component: -1})
	}

	nf, _, err := rd.reduce(f, 0)
	o.stats.Reductions += rd.steps

	return nf, err
}

func checkRing[E any](r *poly.Ring[E], ps ...*poly.Poly[E]) error {
	for i, p := range ps {
		if p == nil || p.Ring() != r {
			return fmt.Errorf("%w: polynomial %d is not in %s", ErrBadArg, i, r)
		}
	}

	return nil
}

func checkField[E any](r *poly.Ring[E]) error {
	if !r.Coeffs().IsField() {
		return fmt.Errorf("%w: %s", ErrNotAField, r.Coeffs().Name())
	}

	return nil
}
