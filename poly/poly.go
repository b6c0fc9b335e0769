package poly

import (
	"fmt"
	"strings"

	"github.com/jonathanmweiss/go-groebner/monomial"
)

/*
Poly is an element of a polynomial Ring.

Terms are kept in strictly decreasing power product order with no zero
coefficient; the first one is the leading term. Polys are values: no method
modifies its receiver or its arguments.
*/
type Poly[E any] struct {
	r     *Ring[E]
	terms []Term[E]
}

func (p *Poly[E]) Ring() *Ring[E] { return p.r }
func (p *Poly[E]) IsZero() bool   { return len(p.terms) == 0 }
func (p *Poly[E]) Len() int       { return len(p.terms) }

// Term returns the i-th term, 0 being the leading one.
func (p *Poly[E]) Term(i int) Term[E] {
	return p.terms[i]
}

func (p *Poly[E]) Terms() []Term[E] {
	return append([]Term[E](nil), p.terms...)
}

func (p *Poly[E]) LPP() (monomial.PP, error) {
	if p.IsZero() {
		return monomial.PP{}, ErrZeroPoly
	}

	return p.terms[0].PP, nil
}

func (p *Poly[E]) LC() (E, error) {
	if p.IsZero() {
		var zero E
		return zero, ErrZeroPoly
	}

	return p.terms[0].Coeff, nil
}

func (p *Poly[E]) LT() (Term[E], error) {
	if p.IsZero() {
		return Term[E]{}, ErrZeroPoly
	}

	return p.terms[0], nil
}

func (p *Poly[E]) IsConst() bool {
	return p.IsZero() || (len(p.terms) == 1 && p.r.m.IsOne(p.terms[0].PP))
}

func (p *Poly[E]) IsOne() bool {
	return p.IsConst() && !p.IsZero() && p.r.coeffs.IsOne(p.terms[0].Coeff)
}

// IsMonomial reports whether p is a single non-zero term.
func (p *Poly[E]) IsMonomial() bool {
	return len(p.terms) == 1
}

func (p *Poly[E]) Equal(q *Poly[E]) bool {
	p.r.check(q)

	if len(p.terms) != len(q.terms) {
		return false
	}

	for i, t := range p.terms {
		u := q.terms[i]
		if !p.r.m.Equal(t.PP, u.PP) || !p.r.coeffs.Equals(t.Coeff, u.Coeff) {
			return false
		}
	}

	return true
}

func (p *Poly[E]) Add(q *Poly[E]) *Poly[E] {
	p.r.check(q)

	return &Poly[E]{r: p.r, terms: mergeTerms(p.r, p.terms, q.terms, false)}
}

func (p *Poly[E]) Sub(q *Poly[E]) *Poly[E] {
	p.r.check(q)

	return &Poly[E]{r: p.r, terms: mergeTerms(p.r, p.terms, q.terms, true)}
}

func (p *Poly[E]) Neg() *Poly[E] {
	terms := make([]Term[E], len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term[E]{Coeff: p.r.coeffs.Neg(t.Coeff), PP: t.PP}
	}

	return &Poly[E]{r: p.r, terms: terms}
}

func (p *Poly[E]) MulScalar(c E) *Poly[E] {
	cr := p.r.coeffs

	terms := make([]Term[E], 0, len(p.terms))
	for _, t := range p.terms {
		// zero divisors are possible outside fields.
		if v := cr.Mul(c, t.Coeff); !cr.IsZero(v) {
			terms = append(terms, Term[E]{Coeff: v, PP: t.PP})
		}
	}

	return &Poly[E]{r: p.r, terms: terms}
}

// MulTerm returns c*pp*p. Multiplying by a power product keeps the order,
// so no sorting is needed.
func (p *Poly[E]) MulTerm(c E, pp monomial.PP) (*Poly[E], error) {
	cr := p.r.coeffs

	pps := make([]monomial.PP, len(p.terms))
	for i, t := range p.terms {
		pps[i] = t.PP
	}

	prods, err := p.r.m.MulAll(pp, pps)
	if err != nil {
		return nil, err
	}

	terms := make([]Term[E], 0, len(p.terms))
	for i, t := range p.terms {
		// zero divisors are possible outside fields.
		if v := cr.Mul(c, t.Coeff); !cr.IsZero(v) {
			terms = append(terms, Term[E]{Coeff: v, PP: prods[i]})
		}
	}

	return &Poly[E]{r: p.r, terms: terms}, nil
}

// Mul accumulates the partial products of the shorter factor in a geobucket.
func (p *Poly[E]) Mul(q *Poly[E]) (*Poly[E], error) {
	p.r.check(q)

	short, long := p, q
	if short.Len() > long.Len() {
		short, long = long, short
	}

	gb := NewGeobucket(p.r)
	for _, t := range short.terms {
		if err := gb.AddMul(t.Coeff, t.PP, long); err != nil {
			return nil, err
		}
	}

	return gb.Value(), nil
}

func (p *Poly[E]) Pow(k int) (*Poly[E], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative power %d", ErrBadArg, k)
	}

	res := p.r.One()
	base := p

	for k > 0 {
		var err error

		if k&1 == 1 {
			if res, err = res.Mul(base); err != nil {
				return nil, err
			}
		}

		k >>= 1
		if k > 0 {
			if base, err = base.Mul(base); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// Monic divides by the leading coefficient; zero stays zero.
func (p *Poly[E]) Monic() (*Poly[E], error) {
	if p.IsZero() {
		return p, nil
	}

	cr := p.r.coeffs

	inv, err := cr.Div(cr.One(), p.terms[0].Coeff)
	if err != nil {
		return nil, err
	}

	return p.MulScalar(inv), nil
}

// StdDeg is the largest standard degree of a term.
func (p *Poly[E]) StdDeg() (int64, error) {
	if p.IsZero() {
		return 0, ErrZeroPoly
	}

	var d int64
	for _, t := range p.terms {
		d = max(d, p.r.m.StdDeg(t.PP))
	}

	return d, nil
}

// WDeg is the degree of the leading power product.
func (p *Poly[E]) WDeg() (monomial.Degree, error) {
	if p.IsZero() {
		return nil, ErrZeroPoly
	}

	return p.r.m.WDeg(p.terms[0].PP)
}

// IsHomog reports whether all terms have the same degree. In a ring of
// grading dimension 0 every polynomial is homogeneous.
func (p *Poly[E]) IsHomog() bool {
	if p.IsZero() || p.r.m.GradingDim() == 0 {
		return true
	}

	d0, err := p.r.m.WDeg(p.terms[0].PP)
	if err != nil {
		return false
	}

	for _, t := range p.terms[1:] {
		d, err := p.r.m.WDeg(t.PP)
		if err != nil || d.Cmp(d0) != 0 {
			return false
		}
	}

	return true
}

// Deriv is the formal partial derivative by x_i.
func (p *Poly[E]) Deriv(i int) (*Poly[E], error) {
	cr, m := p.r.coeffs, p.r.m
	x := m.Indet(i)

	terms := make([]Term[E], 0, len(p.terms))
	for _, t := range p.terms {
		e, err := m.Exponent(t.PP, i)
		if err != nil {
			return nil, err
		}

		if e == 0 {
			continue
		}

		c := cr.Mul(cr.FromInt64(e), t.Coeff)
		if cr.IsZero(c) {
			continue
		}

		q, err := m.Div(t.PP, x)
		if err != nil {
			return nil, err
		}

		terms = append(terms, Term[E]{Coeff: c, PP: q})
	}

	return &Poly[E]{r: p.r, terms: terms}, nil
}

// Homogenize multiplies every term by the power of x_h bringing it up to the
// standard degree of p.
func (p *Poly[E]) Homogenize(h int) (*Poly[E], error) {
	if p.IsZero() {
		return p, nil
	}

	m := p.r.m

	d, err := p.StdDeg()
	if err != nil {
		return nil, err
	}

	terms := make([]Term[E], len(p.terms))
	for k, t := range p.terms {
		hp, err := m.IndetPower(h, d-m.StdDeg(t.PP))
		if err != nil {
			return nil, err
		}

		pp, err := m.Mul(t.PP, hp)
		if err != nil {
			return nil, err
		}

		terms[k] = Term[E]{Coeff: t.Coeff, PP: pp}
	}

	return p.r.FromTerms(terms), nil
}

// Eval substitutes pt[i] for x_i.
func (p *Poly[E]) Eval(pt []E) (E, error) {
	cr, m := p.r.coeffs, p.r.m
	sum := cr.Zero()

	if len(pt) != m.NumIndets() {
		return sum, fmt.Errorf("%w: point of dimension %d for %d indeterminates", ErrBadArg, len(pt), m.NumIndets())
	}

	for _, t := range p.terms {
		exps, err := m.Exponents(t.PP)
		if err != nil {
			return sum, err
		}

		v := t.Coeff
		for i, e := range exps {
			v = cr.Mul(v, pow(cr, pt[i], e))
		}

		sum = cr.Add(sum, v)
	}

	return sum, nil
}

func pow[E any](cr interface {
	One() E
	Mul(a, b E) E
}, base E, e int64) E {
	res := cr.One()
	for e > 0 {
		if e&1 == 1 {
			res = cr.Mul(res, base)
		}

		base = cr.Mul(base, base)
		e >>= 1
	}

	return res
}

// DivExact returns p/q, or ErrNotDivisible when q does not divide p.
func (p *Poly[E]) DivExact(q *Poly[E]) (*Poly[E], error) {
	p.r.check(q)

	if q.IsZero() {
		return nil, fmt.Errorf("%w: division by the zero polynomial", ErrBadArg)
	}

	cr, m := p.r.coeffs, p.r.m
	lt := q.terms[0]

	quot := make([]Term[E], 0)
	rem := p

	for !rem.IsZero() {
		head := rem.terms[0]

		pp, err := m.Div(head.PP, lt.PP)
		if err != nil {
			return nil, ErrNotDivisible
		}

		c, err := cr.Div(head.Coeff, lt.Coeff)
		if err != nil {
			return nil, ErrNotDivisible
		}

		// the quotient terms come out in decreasing order.
		quot = append(quot, Term[E]{Coeff: c, PP: pp})

		sub, err := q.MulTerm(c, pp)
		if err != nil {
			return nil, err
		}

		rem = rem.Sub(sub)
	}

	return &Poly[E]{r: p.r, terms: quot}, nil
}

func (p *Poly[E]) String() string {
	if p.IsZero() {
		return "0"
	}

	cr, m := p.r.coeffs, p.r.m

	bldr := strings.Builder{}
	for i, t := range p.terms {
		c := cr.String(t.Coeff)

		neg := strings.HasPrefix(c, "-")
		if neg {
			c = c[1:]
		}

		switch {
		case i == 0 && neg:
			bldr.WriteString("-")
		case i > 0 && neg:
			bldr.WriteString(" - ")
		case i > 0:
			bldr.WriteString(" + ")
		}

		if m.IsOne(t.PP) {
			bldr.WriteString(c)

			continue
		}

		if c != "1" {
			bldr.WriteString(c)
			bldr.WriteString("*")
		}

		bldr.WriteString(m.String(t.PP))
	}

	return bldr.String()
}

// mergeTerms returns a + b (a - b when sub), always in a fresh slice.
func mergeTerms[E any](r *Ring[E], a, b []Term[E], sub bool) []Term[E] {
	cr, m := r.coeffs, r.m
	out := make([]Term[E], 0, len(a)+len(b))

	neg := func(c E) E {
		if sub {
			return cr.Neg(c)
		}

		return c
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := m.Cmp(a[i].PP, b[j].PP); {
		case c > 0:
			out = append(out, a[i])
			i++
		case c < 0:
			out = append(out, Term[E]{Coeff: neg(b[j].Coeff), PP: b[j].PP})
			j++
		default:
			var v E
			if sub {
				v = cr.Sub(a[i].Coeff, b[j].Coeff)
			} else {
				v = cr.Add(a[i].Coeff, b[j].Coeff)
			}

			if !cr.IsZero(v) {
				out = append(out, Term[E]{Coeff: v, PP: a[i].PP})
			}

			i++
			j++
		}
	}

	out = append(out, a[i:]...)
	for ; j < len(b); j++ {
		out = append(out, Term[E]{Coeff: neg(b[j].Coeff), PP: b[j].PP})
	}

	return out
}
