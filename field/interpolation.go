package field

import "errors"

type Interpolator[E any] struct {
	Field Ring[E]
}

func NewInterpolator[E any](field Ring[E]) *Interpolator[E] {
	return &Interpolator[E]{Field: field}
}

var (
	errPointsSizeMismatch = errors.New("points size mismatch")
	errNonUniqueXs        = errors.New("non-unique x values")
	errNoPoints           = errors.New("no interpolation points")
)

// Interpolation code follows the Lagrange interpolation method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// This algorithm is optimise to save on operations. It is O(n^2) in total.
// The algorithm is as follows:
// 1. Create m(x) = \prod_{0\le i \le n} m_i(x) = \prod_{0\le i \le n} (x - x_i)
// 2. For each i, create q_i(x) = m(x) / m_i(x). This is done by removing m_i(x) from m(x) by dividing by m_i(x).
// 3. then from each q_i create l_i by multiplying q_i by the inverse of q_i(x_i).
// 4. Finally, sum all l_i* y_i to get the polynomial.
func (intr *Interpolator[E]) Interpolate(xs, ys []E) (*Polynomial[E], error) {
	if err := intr.validateInterpolationPoints(xs, ys); err != nil {
		return nil, err
	}

	fld := intr.Field
	pr := NewDensePolyRing(fld)

	// O(n^2) total cost, since we are multiplying n polynomials of degree 1.
	m := PolyProductMonicNegRoots(fld, xs)

	sum := makeConstantPoly(fld, fld.Zero())
	for i, x := range xs {
		qi := intr.mDivMi(m, x) // O(n) fast division.
		s := qi.Eval(x)

		// this will be the denominator inside the product: \prod_{0\le j \le n, j\ne i} (x_i - u_j)/ (u_i-u_j)
		scale, err := fld.Div(ys[i], s)
		if err != nil {
			return nil, err
		}

		li := &Polynomial[E]{f: fld}
		pr.MulScalar(qi, scale, li) // l_i(x) * y_i
		pr.AddPoly(sum, li, sum)
	}

	return sum, nil
}

/*
mDivMi divides m by (x - ui). This is quicker than the long division method since
we know that mi is of degree 1, and that we don't have a remainder.
*/
func (intr *Interpolator[E]) mDivMi(m_ *Polynomial[E], ui E) *Polynomial[E] {
	fld := intr.Field

	m := m_.Copy()
	qinner := make([]E, len(m.inner)-1)

	for i := len(m.inner) - 1; i > 0; i-- {
		qinner[i-1] = m.inner[i]
		// synthetic division by (x - ui)
		m.inner[i-1] = fld.Add(m.inner[i-1], fld.Mul(m.inner[i], ui))
	}

	return NewPolynomial(fld, qinner)
}

func (intr *Interpolator[E]) validateInterpolationPoints(xs []E, ys []E) error {
	if len(xs) != len(ys) {
		return errPointsSizeMismatch
	}

	if len(xs) == 0 {
		return errNoPoints
	}

	// elements need not be comparable; their canonical print form is.
	mapXs := make(map[string]struct{})
	for _, x := range xs {
		mapXs[intr.Field.String(x)] = struct{}{}
	}

	if len(mapXs) != len(xs) {
		return errNonUniqueXs
	}

	return nil
}
