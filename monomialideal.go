package groebner

import (
	"sort"

	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
)

// isMonomialList reports whether every non-zero polynomial is a single term.
func isMonomialList[E any](ps []*poly.Poly[E]) bool {
	for _, p := range ps {
		if !p.IsZero() && !p.IsMonomial() {
			return false
		}
	}

	return true
}

func lpps[E any](ps []*poly.Poly[E]) []monomial.PP {
	out := make([]monomial.PP, 0, len(ps))
	for _, p := range ps {
		if lpp, err := p.LPP(); err == nil {
			out = append(out, lpp)
		}
	}

	return out
}

/*
minimalize drops every power product divisible by another one (keeping one
of equal ones) and sorts the rest increasingly. The result minimally
generates the same monomial ideal.
*/
func minimalize(m *monomial.Monoid, pps []monomial.PP) []monomial.PP {
	sorted := append([]monomial.PP(nil), pps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return m.Cmp(sorted[i], sorted[j]) < 0
	})

	// a divisor is never larger, so it comes first.
	out := make([]monomial.PP, 0, len(sorted))
	for _, a := range sorted {
		divisible := false
		for _, b := range out {
			if m.IsDivisible(a, b) {
				divisible = true

				break
			}
		}

		if !divisible {
			out = append(out, a)
		}
	}

	return out
}

func monomialsOf[E any](r *poly.Ring[E], pps []monomial.PP) []*poly.Poly[E] {
	one := r.Coeffs().One()

	out := make([]*poly.Poly[E], len(pps))
	for i, pp := range pps {
		out[i] = r.Monomial(one, pp)
	}

	return out
}

// monomialGBasis is the reduced Groebner basis of an ideal with monomial
// generators: its minimal generators, monic.
func monomialGBasis[E any](r *poly.Ring[E], gens []*poly.Poly[E]) []*poly.Poly[E] {
	return monomialsOf(r, minimalize(r.Monoid(), lpps(gens)))
}

func monomialSum(m *monomial.Monoid, a, b []monomial.PP) []monomial.PP {
	return minimalize(m, append(append([]monomial.PP(nil), a...), b...))
}

func monomialProduct(m *monomial.Monoid, a, b []monomial.PP) ([]monomial.PP, error) {
	out := make([]monomial.PP, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			p, err := m.Mul(x, y)
			if err != nil {
				return nil, err
			}

			out = append(out, p)
		}
	}

	return minimalize(m, out), nil
}

// monomialIntersection uses (a_i) intersected with (b_j) = (lcm(a_i, b_j)).
func monomialIntersection(m *monomial.Monoid, a, b []monomial.PP) []monomial.PP {
	out := make([]monomial.PP, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, m.Lcm(x, y))
		}
	}

	return minimalize(m, out)
}

// monomialColon computes I:(b_1, ..., b_k), the intersection of the
// (a_i / gcd(a_i, b_j))_i.
func monomialColon(m *monomial.Monoid, a, b []monomial.PP) []monomial.PP {
	return intersectParts(m, b, func(y monomial.PP) []monomial.PP {
		part := make([]monomial.PP, len(a))
		for i, x := range a {
			part[i] = m.Colon(x, y)
		}

		return part
	})
}

// monomialSaturation computes I:J^infinity: saturating by b_j drops the
// indeterminates of b_j from every generator.
func monomialSaturation(m *monomial.Monoid, a, b []monomial.PP) []monomial.PP {
	return intersectParts(m, b, func(y monomial.PP) []monomial.PP {
		supp := m.Support(y)

		part := make([]monomial.PP, len(a))
		for i, x := range a {
			part[i] = m.Without(x, supp...)
		}

		return part
	})
}

// intersectParts intersects part(y) over all y; the empty intersection is
// the whole ring.
func intersectParts(m *monomial.Monoid, ys []monomial.PP, part func(monomial.PP) []monomial.PP) []monomial.PP {
	if len(ys) == 0 {
		return []monomial.PP{m.One()}
	}

	acc := minimalize(m, part(ys[0]))
	for _, y := range ys[1:] {
		acc = monomialIntersection(m, acc, part(y))
	}

	return acc
}

/*
alexanderDual computes the minimal primes of a square-free monomial ideal:
a prime (x_i : i in S) contains I exactly when S meets the support of every
generator, and the minimal such S are the supports of the minimal generators
of the intersection of the ideals (x_i : x_i divides a).
*/
func alexanderDual(m *monomial.Monoid, a []monomial.PP) [][]int {
	primes := make([][]monomial.PP, len(a))
	for k, x := range a {
		for _, i := range m.Support(x) {
			primes[k] = append(primes[k], m.Indet(i))
		}
	}

	if len(primes) == 0 {
		return nil
	}

	acc := minimalize(m, primes[0])
	for _, p := range primes[1:] {
		acc = monomialIntersection(m, acc, p)
	}

	out := make([][]int, len(acc))
	for k, x := range acc {
		out[k] = m.Support(x)
	}

	return out
}
