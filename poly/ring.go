/*
Package poly implements sparse multivariate polynomials over a coefficient
ring: ordered term lists, a geobucket accumulator, parsing and printing.
*/
package poly

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/monomial"
)

var (
	ErrZeroPoly      = errors.New("zero polynomial has no leading term")
	ErrNotGCDDomain  = errors.New("coefficient ring has no gcd")
	ErrBadArg        = monomial.ErrBadArg
	ErrNotDivisible  = field.ErrNotDivisible
	ErrParse         = field.ErrParse
	ErrMismatchRings = errors.New("polynomials belong to different rings")
)

// Ring is a polynomial ring: a coefficient ring and a monoid of power products.
type Ring[E any] struct {
	coeffs field.Ring[E]
	m      *monomial.Monoid
}

func NewRing[E any](coeffs field.Ring[E], m *monomial.Monoid) *Ring[E] {
	return &Ring[E]{coeffs: coeffs, m: m}
}

func (r *Ring[E]) Coeffs() field.Ring[E]       { return r.coeffs }
func (r *Ring[E]) Monoid() *monomial.Monoid    { return r.m }
func (r *Ring[E]) NumIndets() int              { return r.m.NumIndets() }
func (r *Ring[E]) Ordering() monomial.Ordering { return r.m.Ordering() }

// String prints e.g. "QQ[x, y, z] DegRevLex".
func (r *Ring[E]) String() string {
	return r.coeffs.Name() + r.m.Describe()
}

// Term is a coefficient times a power product; stored terms are never zero.
type Term[E any] struct {
	Coeff E
	PP    monomial.PP
}

func (r *Ring[E]) Zero() *Poly[E] {
	return &Poly[E]{r: r}
}

func (r *Ring[E]) One() *Poly[E] {
	return r.Const(r.coeffs.One())
}

func (r *Ring[E]) Const(c E) *Poly[E] {
	return r.Monomial(c, r.m.One())
}

func (r *Ring[E]) FromInt64(v int64) *Poly[E] {
	return r.Const(r.coeffs.FromInt64(v))
}

// Indet returns x_i, panicking for an index out of range.
func (r *Ring[E]) Indet(i int) *Poly[E] {
	return r.Monomial(r.coeffs.One(), r.m.Indet(i))
}

func (r *Ring[E]) Monomial(c E, pp monomial.PP) *Poly[E] {
	if r.coeffs.IsZero(c) {
		return r.Zero()
	}

	return &Poly[E]{r: r, terms: []Term[E]{{Coeff: c, PP: pp}}}
}

// FromTerms sorts the terms, adds up repeated power products and drops zeros.
func (r *Ring[E]) FromTerms(terms []Term[E]) *Poly[E] {
	ts := append([]Term[E](nil), terms...)

	sort.SliceStable(ts, func(i, j int) bool {
		return r.m.Cmp(ts[i].PP, ts[j].PP) > 0
	})

	out := make([]Term[E], 0, len(ts))
	for _, t := range ts {
		if n := len(out); n > 0 && r.m.Equal(out[n-1].PP, t.PP) {
			out[n-1].Coeff = r.coeffs.Add(out[n-1].Coeff, t.Coeff)

			continue
		}

		out = append(out, t)
	}

	kept := out[:0]
	for _, t := range out {
		if !r.coeffs.IsZero(t.Coeff) {
			kept = append(kept, t)
		}
	}

	r.pack(kept)

	return &Poly[E]{r: r, terms: kept}
}

// pack gives the power products of freshly built terms one allocation of
// their own, so that the batches they were cut from can be collected.
func (r *Ring[E]) pack(terms []Term[E]) {
	pps := make([]monomial.PP, len(terms))
	for i, t := range terms {
		pps[i] = t.PP
	}

	r.m.Pack(pps)

	for i := range terms {
		terms[i].PP = pps[i]
	}
}

func (r *Ring[E]) check(p *Poly[E]) {
	if p.r != r {
		panic(fmt.Errorf("%w: %s and %s", ErrMismatchRings, r, p.r))
	}
}
