package groebner

import (
	"fmt"
	"strconv"

	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
)

/*
embedding maps a ring into a working ring whose indeterminates are, in
order, the base ones, nExtra new ones and nComps component indeterminates.
A vector (v_0, ..., v_(k-1)) becomes the polynomial sum v_i*e_i, linear in
the component indeterminates.

The working ordering starts with the given leading rows, continues with the
base ordering (zero on the new columns) and is completed by unit rows.
*/
type embedding[E any] struct {
	base   *poly.Ring[E]
	work   *poly.Ring[E]
	n      int
	extras []int
	comps  []int
	toWork []int
	toBase []int
}

// row returns a row of the working matrix with ones at the given columns.
func row(size int, cols ...int) []int64 {
	r := make([]int64, size)
	for _, c := range cols {
		r[c] = 1
	}

	return r
}

func newEmbedding[E any](base *poly.Ring[E], nExtra, nComps int, gradingDim int, lead ...[]int64) (*embedding[E], error) {
	bm := base.Monoid()
	n := bm.NumIndets()
	size := n + nExtra + nComps

	names := bm.Names()
	used := make(map[string]bool, size)
	for _, s := range names {
		used[s] = true
	}

	fresh := func(prefix string, i int) string {
		for k := 0; ; k++ {
			s := prefix + strconv.Itoa(i)
			if k > 0 {
				s = prefix + strconv.Itoa(i) + "_" + strconv.Itoa(k)
			}

			if !used[s] {
				used[s] = true
				return s
			}
		}
	}

	em := &embedding[E]{base: base, n: n}

	for i := 0; i < nExtra; i++ {
		names = append(names, fresh("t", i))
		em.extras = append(em.extras, n+i)
	}

	for i := 0; i < nComps; i++ {
		names = append(names, fresh("e", i))
		em.comps = append(em.comps, n+nExtra+i)
	}

	rows := make([][]int64, 0, len(lead)+n)
	rows = append(rows, lead...)

	for _, r := range bm.Ordering().Matrix() {
		padded := make([]int64, size)
		copy(padded, r)
		rows = append(rows, padded)
	}

	ord, err := monomial.CompleteOrdering(size, rows, gradingDim)
	if err != nil {
		return nil, err
	}

	opts := []monomial.Option{monomial.WithNames(names...), monomial.WithDivMask(bm.MaskRule())}
	if bm.IsBig() {
		opts = append(opts, monomial.WithBigExponents())
	} else {
		opts = append(opts, monomial.WithMaxExponent(bm.MaxExponent()))
	}

	wm, err := monomial.NewMonoid(ord, opts...)
	if err != nil {
		return nil, err
	}

	em.work = poly.NewRing(base.Coeffs(), wm)

	em.toWork = make([]int, n)
	em.toBase = make([]int, size)

	for i := range em.toBase {
		em.toBase[i] = -1
	}

	for i := 0; i < n; i++ {
		em.toWork[i] = i
		em.toBase[i] = i
	}

	return em, nil
}

func (em *embedding[E]) in(p *poly.Poly[E]) (*poly.Poly[E], error) {
	return poly.Map(p, em.work, em.toWork)
}

func (em *embedding[E]) inAll(ps []*poly.Poly[E]) ([]*poly.Poly[E], error) {
	out := make([]*poly.Poly[E], 0, len(ps))
	for _, p := range ps {
		w, err := em.in(p)
		if err != nil {
			return nil, err
		}

		out = append(out, w)
	}

	return out, nil
}

// out maps back a polynomial free of the new indeterminates.
func (em *embedding[E]) out(p *poly.Poly[E]) (*poly.Poly[E], error) {
	return poly.Map(p, em.base, em.toBase)
}

// extra returns t_i in the working ring.
func (em *embedding[E]) extra(i int) *poly.Poly[E] {
	return em.work.Indet(em.extras[i])
}

// vecIn embeds a vector into the components offset, offset+1, ...
func (em *embedding[E]) vecIn(v []*poly.Poly[E], offset int) (*poly.Poly[E], error) {
	wm := em.work.Monoid()
	one := em.work.Coeffs().One()

	sum := em.work.Zero()
	for i, c := range v {
		w, err := em.in(c)
		if err != nil {
			return nil, err
		}

		w, err = w.MulTerm(one, wm.Indet(em.comps[offset+i]))
		if err != nil {
			return nil, err
		}

		sum = sum.Add(w)
	}

	return sum, nil
}

/*
vecOut splits p along the component indeterminates and returns components
from, ..., to-1 in the base ring. Terms of other components are an error.
*/
func (em *embedding[E]) vecOut(p *poly.Poly[E], from, to int) ([]*poly.Poly[E], error) {
	wm := em.work.Monoid()

	parts := make([][]poly.Term[E], to-from)
	for _, t := range p.Terms() {
		c := componentOf(wm, t.PP, em.comps)
		if c < from || c >= to {
			return nil, fmt.Errorf("%w: term %s outside components [%d, %d)", ErrBadArg, wm.String(t.PP), from, to)
		}

		q, err := wm.Div(t.PP, wm.Indet(em.comps[c]))
		if err != nil {
			return nil, err
		}

		parts[c-from] = append(parts[c-from], poly.Term[E]{Coeff: t.Coeff, PP: q})
	}

	out := make([]*poly.Poly[E], len(parts))
	for i, ts := range parts {
		v, err := em.out(em.work.FromTerms(ts))
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// avoids reports whether the leading power product of p has none of the
// given working indeterminates; under an elimination ordering for them
// this means that p has none of them.
func (em *embedding[E]) avoids(p *poly.Poly[E], indets []int) bool {
	lpp, err := p.LPP()
	if err != nil {
		return true
	}

	wm := em.work.Monoid()
	for _, i := range indets {
		if e, err := wm.Exponent(lpp, i); err != nil || e > 0 {
			return false
		}
	}

	return true
}

// component reports the component of the leading power product of p.
func (em *embedding[E]) component(p *poly.Poly[E]) int {
	lpp, err := p.LPP()
	if err != nil {
		return -1
	}

	return componentOf(em.work.Monoid(), lpp, em.comps)
}
