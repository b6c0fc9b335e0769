package field

import (
	"math"
	"strconv"
	"strings"
)

// Polynomial is a dense univariate polynomial over a Ring.
type Polynomial[E any] struct {
	f     Ring[E]
	inner []E
}

/*
NewPolynomial expects the coefficients to be in the same ring
and ordered from lowest to highest degree. (e.g. [1, 2, 3] is 1 + 2x + 3x^2)
*/
func NewPolynomial[E any](f Ring[E], inner []E) *Polynomial[E] {
	if len(inner) == 0 {
		panic("empty polynomial")
	}

	return &Polynomial[E]{
		inner: inner,
		f:     f,
	}
}

func makeConstantPoly[E any](f Ring[E], u E) *Polynomial[E] {
	return NewPolynomial(f, []E{u})
}

func (p *Polynomial[E]) Ring() Ring[E] {
	return p.f
}

func (p *Polynomial[E]) IsZero() bool {
	return p.leadingCoeffPos() < 0
}

func (p *Polynomial[E]) Equals(q *Polynomial[E]) bool {
	n := p.leadingCoeffPos()
	if n != q.leadingCoeffPos() {
		return false
	}

	fld := p.f
	for i := 0; i <= n; i++ {
		if !fld.Equals(p.inner[i], q.inner[i]) {
			return false
		}
	}

	return true
}

// Degree is math.MinInt for the zero polynomial.
func (p *Polynomial[E]) Degree() int {
	return p.leadingCoeffPos()
}

func (p *Polynomial[E]) LeadCoeff() E {
	if pos := p.leadingCoeffPos(); pos >= 0 {
		return p.inner[pos]
	}

	return p.f.Zero()
}

// Coeff returns the coefficient of x^i.
func (p *Polynomial[E]) Coeff(i int) E {
	if i < 0 || i >= len(p.inner) {
		return p.f.Zero()
	}

	return p.inner[i]
}

func (p *Polynomial[E]) leadingCoeffPos() int {
	for i := len(p.inner) - 1; i >= 0; i-- {
		if !p.f.IsZero(p.inner[i]) {
			return i
		}
	}

	return math.MinInt
}

func (p *Polynomial[E]) removeLeadingZeroes() {
	lead := p.leadingCoeffPos()
	if lead < 0 {
		p.inner = []E{p.f.Zero()}

		return
	}

	p.inner = p.inner[:lead+1]
}

func (p *Polynomial[E]) Copy() *Polynomial[E] {
	innercopy := make([]E, len(p.inner))
	copy(innercopy, p.inner)

	return NewPolynomial(p.f, innercopy)
}

func (p *Polynomial[E]) String() string {
	p.removeLeadingZeroes()

	if len(p.inner) == 1 {
		return p.f.String(p.inner[0])
	}

	bldr := strings.Builder{}

	first := true
	for i := len(p.inner) - 1; i >= 0; i-- {
		if p.f.IsZero(p.inner[i]) {
			continue
		}

		if !first {
			bldr.WriteString(" + ")
		}
		first = false

		bldr.WriteString(p.f.String(p.inner[i]))

		if i != 0 {
			bldr.WriteString("*x^")
			bldr.WriteString(strconv.Itoa(i))
		}
	}

	return bldr.String()
}

func (p *Polynomial[E]) ToSlice() []E {
	list := make([]E, len(p.inner))
	copy(list, p.inner)

	return list
}

// Eval uses horner's rule.
func (p *Polynomial[E]) Eval(x E) E {
	fld := p.f

	result := fld.Zero()
	for i := len(p.inner) - 1; i >= 0; i-- {
		result = fld.Add(p.inner[i], fld.Mul(x, result))
	}

	return result
}

func (p *Polynomial[E]) Add(q *Polynomial[E]) *Polynomial[E] {
	c := &Polynomial[E]{f: p.f}
	NewDensePolyRing(p.f).AddPoly(p, q, c)

	return c
}

func (p *Polynomial[E]) Sub(q *Polynomial[E]) *Polynomial[E] {
	c := &Polynomial[E]{f: p.f}
	NewDensePolyRing(p.f).SubPoly(p, q, c)

	return c
}

func (p *Polynomial[E]) Mul(q *Polynomial[E]) *Polynomial[E] {
	c := &Polynomial[E]{f: p.f}
	NewDensePolyRing(p.f).MulPoly(p, q, c)

	return c
}

func (p *Polynomial[E]) LongDiv(q *Polynomial[E]) (*Polynomial[E], *Polynomial[E]) {
	return NewDensePolyRing(p.f).LongDiv(p, q)
}
