package poly

import (
	"fmt"
	"math/big"

	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/numtheory"
)

// Content is the gcd of the coefficients; it needs a GCD domain.
func (p *Poly[E]) Content() (E, error) {
	d, ok := p.r.coeffs.(field.GCDDomain[E])
	if !ok {
		var zero E
		return zero, fmt.Errorf("%w: %s", ErrNotGCDDomain, p.r.coeffs.Name())
	}

	g := d.Zero()
	for _, t := range p.terms {
		g = d.GCD(g, t.Coeff)
		if d.IsOne(g) {
			break
		}
	}

	return g, nil
}

// PrimitivePart divides p by its content. Over ZZ the leading coefficient
// of the result is positive.
func (p *Poly[E]) PrimitivePart() (*Poly[E], error) {
	if p.IsZero() {
		return p, nil
	}

	g, err := p.Content()
	if err != nil {
		return nil, err
	}

	cr := p.r.coeffs
	if o, ok := cr.(field.Ordered[E]); ok && o.Cmp(p.terms[0].Coeff, o.Zero()) < 0 {
		g = cr.Neg(g)
	}

	terms := make([]Term[E], len(p.terms))
	for i, t := range p.terms {
		c, err := cr.Div(t.Coeff, g)
		if err != nil {
			return nil, err
		}

		terms[i] = Term[E]{Coeff: c, PP: t.PP}
	}

	return &Poly[E]{r: p.r, terms: terms}, nil
}

/*
ClearDenominators maps a polynomial over QQ to zr (a ring over ZZ on the
same monoid) by multiplying with the lcm of the coefficient denominators,
which is returned as well.
*/
func ClearDenominators(p *Poly[*big.Rat], zr *Ring[*big.Int]) (*Poly[*big.Int], *big.Int, error) {
	if p.r.m != zr.m {
		return nil, nil, fmt.Errorf("%w: rings have different monoids", ErrMismatchRings)
	}

	l := big.NewInt(1)
	g := new(big.Int)

	for _, t := range p.terms {
		den := t.Coeff.Denom()
		g.GCD(nil, nil, l, den)
		l.Mul(l, new(big.Int).Quo(den, g))
	}

	terms := make([]Term[*big.Int], len(p.terms))
	for i, t := range p.terms {
		c := new(big.Int).Quo(l, t.Coeff.Denom())
		c.Mul(c, t.Coeff.Num())

		terms[i] = Term[*big.Int]{Coeff: c, PP: t.PP}
	}

	return &Poly[*big.Int]{r: zr, terms: terms}, l, nil
}

// FromIntegers views an integer polynomial over QQ, on the same monoid.
func FromIntegers(p *Poly[*big.Int], qr *Ring[*big.Rat]) (*Poly[*big.Rat], error) {
	if p.r.m != qr.m {
		return nil, fmt.Errorf("%w: rings have different monoids", ErrMismatchRings)
	}

	terms := make([]Term[*big.Rat], len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term[*big.Rat]{Coeff: new(big.Rat).SetInt(t.Coeff), PP: t.PP}
	}

	return &Poly[*big.Rat]{r: qr, terms: terms}, nil
}

/*
LogHeight is the natural log of the largest absolute value of a numerator or
denominator among the coefficients of p; 0 for the zero polynomial.
*/
func LogHeight(p *Poly[*big.Rat]) (*big.Float, error) {
	h := height(p)
	if h.Sign() == 0 {
		return new(big.Float), nil
	}

	return numtheory.Log(new(big.Rat).SetInt(h))
}

// HeightDigits is the number of decimal digits of the height of p; 0 for
// the zero polynomial.
func HeightDigits(p *Poly[*big.Rat]) int {
	k, err := numtheory.ILogBase(height(p), 10)
	if err != nil {
		return 0
	}

	return k + 1
}

func height(p *Poly[*big.Rat]) *big.Int {
	h := new(big.Int)
	for _, t := range p.terms {
		for _, x := range []*big.Int{t.Coeff.Num(), t.Coeff.Denom()} {
			if a := new(big.Int).Abs(x); a.Cmp(h) > 0 {
				h = a
			}
		}
	}

	return h
}

/*
Map sends p into the ring to, which must have the same coefficients:
x_i goes to x_(indexMap[i]), and a negative entry requires that x_i does
not occur. The terms are re-sorted under the target ordering.
*/
func Map[E any](p *Poly[E], to *Ring[E], indexMap []int) (*Poly[E], error) {
	terms := make([]Term[E], len(p.terms))
	for i, t := range p.terms {
		pp, err := to.m.Embed(p.r.m, t.PP, indexMap)
		if err != nil {
			return nil, err
		}

		terms[i] = Term[E]{Coeff: t.Coeff, PP: pp}
	}

	return to.FromTerms(terms), nil
}
