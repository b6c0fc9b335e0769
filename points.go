package groebner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/poly"
)

/*
IdealOfPoints returns the reduced Groebner basis of the ideal of polynomials
vanishing on the given affine points, sorted by increasing leading power
product. Repeated points count once; no points give the whole ring.

Under Lex, when the last coordinates separate the points, the basis is read
off by interpolation: x_i - g_i(z) for i < n-1 and the product of the
(z - c) over the last coordinates c.
*/
func IdealOfPoints[E any](r *poly.Ring[E], points [][]E, opts ...Option) ([]*poly.Poly[E], error) {
	if err := checkField(r); err != nil {
		return nil, err
	}

	n := r.NumIndets()
	cr := r.Coeffs()

	seen := make(map[string]bool, len(points))
	pts := make([][]E, 0, len(points))

	for k, pt := range points {
		if len(pt) != n {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrBadArg, k, len(pt), n)
		}

		key := pointKey(cr, pt)
		if seen[key] {
			continue
		}

		seen[key] = true
		pts = append(pts, pt)
	}

	if len(pts) == 0 {
		return []*poly.Poly[E]{r.One()}, nil
	}

	if n == 0 {
		return nil, nil
	}

	if isLex(r) {
		if gb, ok, err := shapeBasis(r, pts); err != nil || ok {
			return gb, err
		}
	}

	o := gatherOptions(opts)

	acc := maximalIdeal(r, pts[0])
	for _, pt := range pts[1:] {
		var err error
		if acc, err = intersection(r, acc, maximalIdeal(r, pt), o); err != nil {
			return nil, err
		}
	}

	gb, _, err := gbasis(r, acc, o)

	return gb, err
}

func pointKey[E any](cr field.Ring[E], pt []E) string {
	parts := make([]string, len(pt))
	for i, c := range pt {
		parts[i] = cr.String(c)
	}

	return strings.Join(parts, ",")
}

func isLex[E any](r *poly.Ring[E]) bool {
	m := r.Monoid()
	if m.GradingDim() != 0 {
		return false
	}

	for i, row := range m.Ordering().Matrix() {
		for j, v := range row {
			if (i == j) != (v == 1) || (i != j && v != 0) {
				return false
			}
		}
	}

	return true
}

func shapeBasis[E any](r *poly.Ring[E], pts [][]E) ([]*poly.Poly[E], bool, error) {
	n := r.NumIndets()
	cr := r.Coeffs()
	z := n - 1

	zs := make([]E, len(pts))
	seen := make(map[string]bool, len(pts))

	for k, pt := range pts {
		key := cr.String(pt[z])
		if seen[key] {
			return nil, false, nil
		}

		seen[key] = true
		zs[k] = pt[z]
	}

	gb := make([]*poly.Poly[E], 0, n)
	gb = append(gb, fromDense(r, field.PolyProductMonicNegRoots(cr, zs), z))

	intr := field.NewInterpolator(cr)
	ys := make([]E, len(pts))

	for i := n - 2; i >= 0; i-- {
		for k, pt := range pts {
			ys[k] = pt[i]
		}

		g, err := intr.Interpolate(zs, ys)
		if err != nil {
			return nil, false, err
		}

		gb = append(gb, r.Indet(i).Sub(fromDense(r, g, z)))
	}

	sortByLPP(r, gb)

	return gb, true, nil
}

// maximalIdeal returns x_i - c_i for the point c.
func maximalIdeal[E any](r *poly.Ring[E], pt []E) []*poly.Poly[E] {
	out := make([]*poly.Poly[E], len(pt))
	for i, c := range pt {
		out[i] = r.Indet(i).Sub(r.Const(c))
	}

	return out
}

// sortByLPP sorts non-zero polynomials by increasing leading power product.
func sortByLPP[E any](r *poly.Ring[E], ps []*poly.Poly[E]) {
	m := r.Monoid()

	sort.SliceStable(ps, func(i, j int) bool {
		a, _ := ps[i].LPP()
		b, _ := ps[j].LPP()

		return m.Cmp(a, b) < 0
	})
}
