package groebner

import (
	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
)

// maxDenseDegree bounds the degree of dense univariate conversions.
const maxDenseDegree = 1 << 16

/*
univariateGBasis handles generators in one indeterminate x over a field: the
ideal is principal, generated by the monic gcd. It reports false when the
generators are not of that shape, or when they are homogeneous for a grading
(minimal generators are then wanted from the engine).
*/
func univariateGBasis[E any](r *poly.Ring[E], gens []*poly.Poly[E]) ([]*poly.Poly[E], bool) {
	m := r.Monoid()

	x, ok := univariateIndet(m, gens...)
	if !ok || x < 0 {
		return nil, false
	}

	if m.GradingDim() > 0 && allHomog(gens) {
		return nil, false
	}

	acc, ok := denseGcd(r, gens, x)
	if !ok {
		return nil, false
	}

	if acc.IsZero() {
		return nil, true
	}

	return []*poly.Poly[E]{fromDense(r, acc, x)}, true
}

/*
univariateRadical decides f in radical(gens) when everything lives in one
indeterminate x: the ideal is (g) for g the gcd, and f lies in its radical
iff the square-free part of g divides f.
*/
func univariateRadical[E any](r *poly.Ring[E], gens []*poly.Poly[E], f *poly.Poly[E]) (in, ok bool) {
	x, ok := univariateIndet(r.Monoid(), append([]*poly.Poly[E]{f}, gens...)...)
	if !ok {
		return false, false
	}

	// only constants: any indeterminate will do.
	x = max(x, 0)

	g, ok := denseGcd(r, gens, x)
	if !ok {
		return false, false
	}

	df, ok := toDense(r, f, x)
	if !ok {
		return false, false
	}

	if g.IsZero() {
		return df.IsZero(), true
	}

	pr := field.NewDensePolyRing(r.Coeffs())

	_, rem := pr.LongDiv(df, pr.SquareFreePart(g))

	return rem.IsZero(), true
}

// univariateIndet returns the only indeterminate occurring in ps, or -1 when
// they are all constant. It reports false when two indeterminates occur.
func univariateIndet[E any](m *monomial.Monoid, ps ...*poly.Poly[E]) (int, bool) {
	x := -1

	for _, p := range ps {
		for i := 0; i < p.Len(); i++ {
			for _, j := range m.Support(p.Term(i).PP) {
				if x >= 0 && j != x {
					return -1, false
				}

				x = j
			}
		}
	}

	return x, true
}

func allHomog[E any](ps []*poly.Poly[E]) bool {
	for _, p := range ps {
		if !p.IsHomog() {
			return false
		}
	}

	return true
}

// denseGcd is the monic gcd of gens as dense polynomials in x.
func denseGcd[E any](r *poly.Ring[E], gens []*poly.Poly[E], x int) (*field.Polynomial[E], bool) {
	cr := r.Coeffs()
	pr := field.NewDensePolyRing(cr)

	acc := field.NewPolynomial(cr, []E{cr.Zero()})
	for _, g := range gens {
		d, ok := toDense(r, g, x)
		if !ok {
			return nil, false
		}

		acc = pr.GCD(acc, d)
	}

	return acc, true
}

func toDense[E any](r *poly.Ring[E], g *poly.Poly[E], x int) (*field.Polynomial[E], bool) {
	cr, m := r.Coeffs(), r.Monoid()

	if g.IsZero() {
		return field.NewPolynomial(cr, []E{cr.Zero()}), true
	}

	d, err := m.Exponent(g.Term(0).PP, x)
	if err != nil || d > maxDenseDegree {
		return nil, false
	}

	coeffs := make([]E, d+1)
	for i := range coeffs {
		coeffs[i] = cr.Zero()
	}

	for _, t := range g.Terms() {
		e, err := m.Exponent(t.PP, x)
		if err != nil {
			return nil, false
		}

		coeffs[e] = t.Coeff
	}

	return field.NewPolynomial(cr, coeffs), true
}

func fromDense[E any](r *poly.Ring[E], p *field.Polynomial[E], x int) *poly.Poly[E] {
	cr, m := r.Coeffs(), r.Monoid()

	var terms []poly.Term[E]
	for i := 0; i <= p.Degree(); i++ {
		c := p.Coeff(i)
		if cr.IsZero(c) {
			continue
		}

		pp, err := m.IndetPower(x, int64(i))
		if err != nil {
			continue
		}

		terms = append(terms, poly.Term[E]{Coeff: c, PP: pp})
	}

	return r.FromTerms(terms)
}
