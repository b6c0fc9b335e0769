package groebner

import (
	"fmt"
	"math/big"

	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
)

func checkIdealArgs[E any](r *poly.Ring[E], lists ...[]*poly.Poly[E]) error {
	if err := checkField(r); err != nil {
		return err
	}

	for _, l := range lists {
		if err := checkRing(r, l...); err != nil {
			return err
		}
	}

	return nil
}

func checkModuleArgs[E any](fm *FreeModule[E], lists ...[]*Vector[E]) error {
	if err := checkField(fm.r); err != nil {
		return err
	}

	for _, l := range lists {
		if err := checkVectors(fm, l...); err != nil {
			return err
		}
	}

	return nil
}

/*
ComputeGBasis returns the reduced Groebner basis of the ideal generated by
gens, monic and sorted by increasing leading power product. When the ring has
a grading and all generators are homogeneous, it also returns a minimal set
of generators; otherwise minGens is empty.

Monomial generators and generators in a single indeterminate are handled
without the pair machinery.
*/
func ComputeGBasis[E any](r *poly.Ring[E], gens []*poly.Poly[E], opts ...Option) (gb, minGens []*poly.Poly[E], err error) {
	if err := checkIdealArgs(r, gens); err != nil {
		return nil, nil, err
	}

	return gbasis(r, gens, gatherOptions(opts))
}

func gbasis[E any](r *poly.Ring[E], gens []*poly.Poly[E], o options) ([]*poly.Poly[E], []*poly.Poly[E], error) {
	if isMonomialList(gens) {
		o.stats.MonomialFastPath = true

		gb := monomialGBasis(r, gens)
		o.stats.BasisSize = len(gb)

		if r.Monoid().GradingDim() == 0 {
			return gb, nil, nil
		}

		return gb, append([]*poly.Poly[E](nil), gb...), nil
	}

	if gb, ok := univariateGBasis(r, gens); ok {
		o.stats.UnivariateFastPath = true
		o.stats.BasisSize = len(gb)

		return gb, nil, nil
	}

	cfg := newEngineConfig(o)
	cfg.minGens = true

	res, err := runEngine(r, gens, cfg)
	if err != nil {
		return nil, nil, err
	}

	return res.gb, res.minGens, nil
}

/*
ComputeGBasisModule returns the reduced Groebner basis of the submodule
generated by gens, for the term over position ordering with component 0
largest, and its minimal generators when the input is homogeneous.
*/
func ComputeGBasisModule[E any](fm *FreeModule[E], gens []*Vector[E], opts ...Option) (gb, minGens []*Vector[E], err error) {
	if err := checkModuleArgs(fm, gens); err != nil {
		return nil, nil, err
	}

	em := fm.emb

	work, err := embedVectors(em, gens, 0)
	if err != nil {
		return nil, nil, err
	}

	cfg := newEngineConfig(gatherOptions(opts))
	cfg.comps = em.comps
	cfg.unitStops = false
	cfg.minGens = true

	res, err := runEngine(em.work, work, cfg)
	if err != nil {
		return nil, nil, err
	}

	if gb, err = fm.fromWork(em, res.gb, 0); err != nil {
		return nil, nil, err
	}

	if minGens, err = fm.fromWork(em, res.minGens, 0); err != nil {
		return nil, nil, err
	}

	return gb, minGens, nil
}

/*
ComputeGBasisIntegers takes integer generators through QQ: it returns the
reduced Groebner basis over QQ of the ideal they generate, each element
scaled to a primitive integer polynomial with positive leading coefficient.
*/
func ComputeGBasisIntegers(zr *poly.Ring[*big.Int], gens []*poly.Poly[*big.Int], opts ...Option) ([]*poly.Poly[*big.Int], error) {
	if err := checkRing(zr, gens...); err != nil {
		return nil, err
	}

	qr := poly.NewRing[*big.Rat](field.QQ, zr.Monoid())

	qgens := make([]*poly.Poly[*big.Rat], len(gens))
	for i, g := range gens {
		q, err := poly.FromIntegers(g, qr)
		if err != nil {
			return nil, err
		}

		qgens[i] = q
	}

	gb, _, err := ComputeGBasis(qr, qgens, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]*poly.Poly[*big.Int], len(gb))
	for i, g := range gb {
		z, _, err := poly.ClearDenominators(g, zr)
		if err != nil {
			return nil, err
		}

		if out[i], err = z.PrimitivePart(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func checkIndets[E any](r *poly.Ring[E], indets []int) error {
	seen := make(map[int]bool, len(indets))
	for _, i := range indets {
		if i < 0 || i >= r.NumIndets() {
			return fmt.Errorf("%w: indeterminate %d out of range for %s", ErrBadArg, i, r)
		}

		if seen[i] {
			return fmt.Errorf("%w: indeterminate %d repeated", ErrBadArg, i)
		}

		seen[i] = true
	}

	return nil
}

/*
ComputeElim returns generators of the intersection of the ideal with the
subring of the indeterminates not listed, from a Groebner basis for an
elimination ordering.
*/
func ComputeElim[E any](r *poly.Ring[E], gens []*poly.Poly[E], indets []int, opts ...Option) ([]*poly.Poly[E], error) {
	if err := checkIdealArgs(r, gens); err != nil {
		return nil, err
	}

	if err := checkIndets(r, indets); err != nil {
		return nil, err
	}

	em, err := newEmbedding(r, 0, 0, 0, row(r.NumIndets(), indets...))
	if err != nil {
		return nil, err
	}

	work, err := em.inAll(gens)
	if err != nil {
		return nil, err
	}

	res, err := runEngine(em.work, work, newEngineConfig(gatherOptions(opts)))
	if err != nil {
		return nil, err
	}

	var out []*poly.Poly[E]
	for _, g := range res.gb {
		if !em.avoids(g, indets) {
			continue
		}

		p, err := em.out(g)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}

/*
ComputeSyz returns generators of the module of syzygies of gens, vectors
(a_0, ..., a_(k-1)) with sum a_i*gens[i] = 0, in the free module of rank
len(gens).
*/
func ComputeSyz[E any](r *poly.Ring[E], gens []*poly.Poly[E], opts ...Option) ([]*Vector[E], error) {
	if err := checkIdealArgs(r, gens); err != nil {
		return nil, err
	}

	fm, err := NewFreeModule(r, len(gens))
	if err != nil {
		return nil, err
	}

	n, k := r.NumIndets(), len(gens)

	// position over term on the extra component 0.
	em, err := newEmbedding(r, 0, k+1, 0, row(n+k+1, n))
	if err != nil {
		return nil, err
	}

	work := make([]*poly.Poly[E], k)
	for i, g := range gens {
		unit := make([]*poly.Poly[E], k+1)
		unit[0] = g
		for j := 1; j <= k; j++ {
			unit[j] = r.Zero()
		}

		unit[i+1] = r.One()

		if work[i], err = em.vecIn(unit, 0); err != nil {
			return nil, err
		}
	}

	return syzygies(fm, em, work, 1, gatherOptions(opts))
}

/*
ComputeSyzModule returns generators of the syzygies of vectors gens, in the
free module of rank len(gens).
*/
func ComputeSyzModule[E any](fm *FreeModule[E], gens []*Vector[E], opts ...Option) ([]*Vector[E], error) {
	if err := checkModuleArgs(fm, gens); err != nil {
		return nil, err
	}

	return syzModule(fm, gens, gatherOptions(opts))
}

func syzModule[E any](fm *FreeModule[E], gens []*Vector[E], o options) ([]*Vector[E], error) {
	out, err := NewFreeModule(fm.r, len(gens))
	if err != nil {
		return nil, err
	}

	n, m, k := fm.r.NumIndets(), fm.rank, len(gens)

	lead := make([]int, m)
	for i := range lead {
		lead[i] = n + i
	}

	em, err := newEmbedding(fm.r, 0, m+k, 0, row(n+m+k, lead...))
	if err != nil {
		return nil, err
	}

	work := make([]*poly.Poly[E], k)
	for i, v := range gens {
		c := append(v.Components(), make([]*poly.Poly[E], k)...)
		for j := m; j < m+k; j++ {
			c[j] = fm.r.Zero()
		}

		c[m+i] = fm.r.One()

		if work[i], err = em.vecIn(c, 0); err != nil {
			return nil, err
		}
	}

	return syzygies(out, em, work, m, o)
}

// syzygies keeps the basis elements living in components offset and up.
func syzygies[E any](fm *FreeModule[E], em *embedding[E], work []*poly.Poly[E], offset int, o options) ([]*Vector[E], error) {
	cfg := newEngineConfig(o)
	cfg.comps = em.comps
	cfg.unitStops = false

	res, err := runEngine(em.work, work, cfg)
	if err != nil {
		return nil, err
	}

	var keep []*poly.Poly[E]
	for _, g := range res.gb {
		if em.component(g) >= offset {
			keep = append(keep, g)
		}
	}

	return fm.fromWork(em, keep, offset)
}

/*
ComputeIntersection returns generators of the intersection of the ideals
generated by i and j: the elements free of t in a Groebner basis of
t*I + (1-t)*J for an ordering eliminating t.
*/
func ComputeIntersection[E any](r *poly.Ring[E], i, j []*poly.Poly[E], opts ...Option) ([]*poly.Poly[E], error) {
	if err := checkIdealArgs(r, i, j); err != nil {
		return nil, err
	}

	return intersection(r, i, j, gatherOptions(opts))
}

func intersection[E any](r *poly.Ring[E], i, j []*poly.Poly[E], o options) ([]*poly.Poly[E], error) {
	n := r.NumIndets()

	em, err := newEmbedding(r, 1, 0, 0, row(n+1, n))
	if err != nil {
		return nil, err
	}

	work, err := tagged(em, i, j, func(ps []*poly.Poly[E]) ([]*poly.Poly[E], error) { return em.inAll(ps) })
	if err != nil {
		return nil, err
	}

	res, err := runEngine(em.work, work, newEngineConfig(o))
	if err != nil {
		return nil, err
	}

	var out []*poly.Poly[E]
	for _, g := range res.gb {
		if !em.avoids(g, em.extras) {
			continue
		}

		p, err := em.out(g)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}

// tagged embeds a and b and multiplies them by t and 1-t.
func tagged[E any, T any](em *embedding[E], a, b []T, in func([]T) ([]*poly.Poly[E], error)) ([]*poly.Poly[E], error) {
	t := em.extra(0)
	oneMinusT := em.work.One().Sub(t)

	wa, err := in(a)
	if err != nil {
		return nil, err
	}

	wb, err := in(b)
	if err != nil {
		return nil, err
	}

	out := make([]*poly.Poly[E], 0, len(wa)+len(wb))
	for _, p := range wa {
		q, err := p.Mul(t)
		if err != nil {
			return nil, err
		}

		out = append(out, q)
	}

	for _, p := range wb {
		q, err := p.Mul(oneMinusT)
		if err != nil {
			return nil, err
		}

		out = append(out, q)
	}

	return out, nil
}

// ComputeIntersectionModule is ComputeIntersection for submodules of fm.
func ComputeIntersectionModule[E any](fm *FreeModule[E], a, b []*Vector[E], opts ...Option) ([]*Vector[E], error) {
	if err := checkModuleArgs(fm, a, b); err != nil {
		return nil, err
	}

	return intersectionModule(fm, a, b, gatherOptions(opts))
}

func intersectionModule[E any](fm *FreeModule[E], a, b []*Vector[E], o options) ([]*Vector[E], error) {
	n := fm.r.NumIndets()

	em, err := newEmbedding(fm.r, 1, fm.rank, 0, row(n+1+fm.rank, n))
	if err != nil {
		return nil, err
	}

	work, err := tagged(em, a, b, func(vs []*Vector[E]) ([]*poly.Poly[E], error) { return embedVectors(em, vs, 0) })
	if err != nil {
		return nil, err
	}

	cfg := newEngineConfig(o)
	cfg.comps = em.comps
	cfg.unitStops = false

	res, err := runEngine(em.work, work, cfg)
	if err != nil {
		return nil, err
	}

	var keep []*poly.Poly[E]
	for _, g := range res.gb {
		if em.avoids(g, em.extras) {
			keep = append(keep, g)
		}
	}

	return fm.fromWork(em, keep, 0)
}

/*
ComputeColonByPrincipal returns generators of I:(f), the elements g with
g*f in I, as (I intersected with (f)) divided by f. The colon by zero is the
whole ring.
*/
func ComputeColonByPrincipal[E any](r *poly.Ring[E], i []*poly.Poly[E], f *poly.Poly[E], opts ...Option) ([]*poly.Poly[E], error) {
	if err := checkIdealArgs(r, i, []*poly.Poly[E]{f}); err != nil {
		return nil, err
	}

	return colonByPrincipal(r, i, f, gatherOptions(opts))
}

func colonByPrincipal[E any](r *poly.Ring[E], i []*poly.Poly[E], f *poly.Poly[E], o options) ([]*poly.Poly[E], error) {
	if f.IsZero() {
		return []*poly.Poly[E]{r.One()}, nil
	}

	inter, err := intersection(r, i, []*poly.Poly[E]{f}, o)
	if err != nil {
		return nil, err
	}

	out := make([]*poly.Poly[E], len(inter))
	for k, g := range inter {
		q, err := g.DivExact(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s by %s: %w", ErrBadQuotient, g, f, err)
		}

		out[k] = q
	}

	return out, nil
}

/*
ComputeColonByPrincipalModule returns generators of M:f, the vectors v with
f*v in M, as (M intersected with f*fm) divided by f.
*/
func ComputeColonByPrincipalModule[E any](fm *FreeModule[E], m []*Vector[E], f *poly.Poly[E], opts ...Option) ([]*Vector[E], error) {
	if err := checkModuleArgs(fm, m); err != nil {
		return nil, err
	}

	if err := checkRing(fm.r, f); err != nil {
		return nil, err
	}

	units := make([]*Vector[E], fm.rank)
	for k := range units {
		units[k] = fm.Unit(k)
	}

	if f.IsZero() {
		return units, nil
	}

	fs := make([]*Vector[E], fm.rank)
	for k, u := range units {
		v, err := u.Scale(f)
		if err != nil {
			return nil, err
		}

		fs[k] = v
	}

	inter, err := intersectionModule(fm, m, fs, gatherOptions(opts))
	if err != nil {
		return nil, err
	}

	out := make([]*Vector[E], len(inter))
	for k, v := range inter {
		c := make([]*poly.Poly[E], fm.rank)
		for j, p := range v.c {
			if c[j], err = p.DivExact(f); err != nil {
				return nil, fmt.Errorf("%w: %s by %s: %w", ErrBadQuotient, p, f, err)
			}
		}

		out[k] = &Vector[E]{fm: fm, c: c}
	}

	return out, nil
}

/*
ComputeCColon returns generators of I:J, the intersection of the colons of I
by the generators of J.
*/
func ComputeCColon[E any](r *poly.Ring[E], i, j []*poly.Poly[E], opts ...Option) ([]*poly.Poly[E], error) {
	if err := checkIdealArgs(r, i, j); err != nil {
		return nil, err
	}

	o := gatherOptions(opts)

	return intersectAll(r, j, o, func(g *poly.Poly[E]) ([]*poly.Poly[E], error) {
		return colonByPrincipal(r, i, g, o)
	})
}

// intersectAll intersects part(g) over the non-zero g; the empty
// intersection is the whole ring.
func intersectAll[E any](r *poly.Ring[E], gs []*poly.Poly[E], o options, part func(*poly.Poly[E]) ([]*poly.Poly[E], error)) ([]*poly.Poly[E], error) {
	var acc []*poly.Poly[E]

	first := true
	for _, g := range gs {
		if g.IsZero() {
			continue
		}

		p, err := part(g)
		if err != nil {
			return nil, err
		}

		if first {
			acc, first = p, false

			continue
		}

		if acc, err = intersection(r, acc, p, o); err != nil {
			return nil, err
		}
	}

	if first {
		return []*poly.Poly[E]{r.One()}, nil
	}

	return acc, nil
}

/*
ComputeCColonModule returns generators of the ideal M:N of ring elements f
with f*N inside M. The colon by one vector n is read off the syzygies of
(n, m_1, ..., m_s).
*/
func ComputeCColonModule[E any](fm *FreeModule[E], m, n []*Vector[E], opts ...Option) ([]*poly.Poly[E], error) {
	if err := checkModuleArgs(fm, m, n); err != nil {
		return nil, err
	}

	o := gatherOptions(opts)

	var acc []*poly.Poly[E]

	first := true
	for _, v := range n {
		if v.IsZero() {
			continue
		}

		syz, err := syzModule(fm, append([]*Vector[E]{v}, m...), o)
		if err != nil {
			return nil, err
		}

		var part []*poly.Poly[E]
		for _, s := range syz {
			if c := s.Component(0); !c.IsZero() {
				part = append(part, c)
			}
		}

		if first {
			acc, first = part, false

			continue
		}

		if acc, err = intersection(fm.r, acc, part, o); err != nil {
			return nil, err
		}
	}

	if first {
		return []*poly.Poly[E]{fm.r.One()}, nil
	}

	return acc, nil
}

/*
ComputeSaturationByPrincipal returns generators of I:f^infinity, the
elements free of t in a Groebner basis of I + (1 - t*f) for an ordering
eliminating t. When f is a power of one indeterminate and I is homogeneous,
the engine divides that indeterminate out of each new element instead.
*/
func ComputeSaturationByPrincipal[E any](r *poly.Ring[E], i []*poly.Poly[E], f *poly.Poly[E], opts ...Option) ([]*poly.Poly[E], error) {
	if err := checkIdealArgs(r, i, []*poly.Poly[E]{f}); err != nil {
		return nil, err
	}

	return saturation(r, i, f, gatherOptions(opts))
}

func saturation[E any](r *poly.Ring[E], i []*poly.Poly[E], f *poly.Poly[E], o options) ([]*poly.Poly[E], error) {
	if f.IsZero() {
		return []*poly.Poly[E]{r.One()}, nil
	}

	if f.IsConst() {
		return append([]*poly.Poly[E](nil), i...), nil
	}

	if lpp, _ := f.LPP(); f.IsMonomial() && stdHomog(r.Monoid(), i) {
		if x, ok := r.Monoid().IsIndetPower(lpp); ok {
			return saturationByIndet(r, i, x, o)
		}
	}

	return rabinowitschSaturation(r, i, f, o)
}

func rabinowitschSaturation[E any](r *poly.Ring[E], i []*poly.Poly[E], f *poly.Poly[E], o options) ([]*poly.Poly[E], error) {
	em, work, err := rabinowitsch(r, i, f)
	if err != nil {
		return nil, err
	}

	res, err := runEngine(em.work, work, newEngineConfig(o))
	if err != nil {
		return nil, err
	}

	var out []*poly.Poly[E]
	for _, g := range res.gb {
		if !em.avoids(g, em.extras) {
			continue
		}

		p, err := em.out(g)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}

// rabinowitsch embeds I + (1 - t*f) in a ring eliminating t.
func rabinowitsch[E any](r *poly.Ring[E], i []*poly.Poly[E], f *poly.Poly[E]) (*embedding[E], []*poly.Poly[E], error) {
	n := r.NumIndets()

	em, err := newEmbedding(r, 1, 0, 0, row(n+1, n))
	if err != nil {
		return nil, nil, err
	}

	work, err := em.inAll(i)
	if err != nil {
		return nil, nil, err
	}

	wf, err := em.in(f)
	if err != nil {
		return nil, nil, err
	}

	tf, err := wf.Mul(em.extra(0))
	if err != nil {
		return nil, nil, err
	}

	return em, append(work, em.work.One().Sub(tf)), nil
}

// ComputeSSaturation returns generators of I:J^infinity, the intersection of
// the saturations of I by the generators of J.
func ComputeSSaturation[E any](r *poly.Ring[E], i, j []*poly.Poly[E], opts ...Option) ([]*poly.Poly[E], error) {
	if err := checkIdealArgs(r, i, j); err != nil {
		return nil, err
	}

	o := gatherOptions(opts)

	return intersectAll(r, j, o, func(g *poly.Poly[E]) ([]*poly.Poly[E], error) {
		return saturation(r, i, g, o)
	})
}

/*
ComputeHomogenization returns generators of the homogenization of the ideal
by the indeterminate h, which must not occur in the generators: the
homogenized generators saturated by h. The saturation is the saturating
engine for a degree reverse lexicographic ordering where h is the smallest
indeterminate, so no extra indeterminate is needed.
*/
func ComputeHomogenization[E any](r *poly.Ring[E], gens []*poly.Poly[E], h int, opts ...Option) ([]*poly.Poly[E], error) {
	if err := checkIdealArgs(r, gens); err != nil {
		return nil, err
	}

	if err := checkIndets(r, []int{h}); err != nil {
		return nil, err
	}

	m := r.Monoid()

	homog := make([]*poly.Poly[E], 0, len(gens))
	for k, g := range gens {
		for i := 0; i < g.Len(); i++ {
			if e, err := m.Exponent(g.Term(i).PP, h); err != nil || e > 0 {
				return nil, fmt.Errorf("%w: generator %d involves the homogenizing indeterminate %s", ErrBadArg, k, m.IndetName(h))
			}
		}

		p, err := g.Homogenize(h)
		if err != nil {
			return nil, err
		}

		homog = append(homog, p)
	}

	return saturationByIndet(r, homog, h, gatherOptions(opts))
}

/*
saturationByIndet computes I:x^infinity for I generated by polynomials
homogeneous for the standard grading. The engine runs under degrevlex with x
last and divides every new element by the largest power of x it can.
*/
func saturationByIndet[E any](r *poly.Ring[E], i []*poly.Poly[E], x int, o options) ([]*poly.Poly[E], error) {
	n := r.NumIndets()

	last := make([]int64, n)
	last[x] = -1

	em, err := newEmbedding(r, 0, 0, 1, row(n, allIndets(n)...), last)
	if err != nil {
		return nil, err
	}

	work, err := em.inAll(i)
	if err != nil {
		return nil, err
	}

	cfg := newEngineConfig(o)
	cfg.satIndet = x

	res, err := runEngine(em.work, work, cfg)
	if err != nil {
		return nil, err
	}

	out := make([]*poly.Poly[E], 0, len(res.gb))
	for _, g := range res.gb {
		p, err := em.out(g)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}

// stdHomog reports whether every p is homogeneous for the standard grading.
func stdHomog[E any](m *monomial.Monoid, ps []*poly.Poly[E]) bool {
	for _, p := range ps {
		for k := 1; k < p.Len(); k++ {
			if m.StdDeg(p.Term(k).PP) != m.StdDeg(p.Term(0).PP) {
				return false
			}
		}
	}

	return true
}

func allIndets(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// RadicalMembership reports whether some power of f lies in the ideal,
// that is whether 1 lies in I + (1 - t*f). In a single indeterminate it
// divides f by the square-free part of the gcd instead.
func RadicalMembership[E any](r *poly.Ring[E], i []*poly.Poly[E], f *poly.Poly[E], opts ...Option) (bool, error) {
	if err := checkIdealArgs(r, i, []*poly.Poly[E]{f}); err != nil {
		return false, err
	}

	if f.IsZero() {
		return true, nil
	}

	o := gatherOptions(opts)

	if in, ok := univariateRadical(r, i, f); ok {
		o.stats.UnivariateFastPath = true

		return in, nil
	}

	em, work, err := rabinowitsch(r, i, f)
	if err != nil {
		return false, err
	}

	res, err := runEngine(em.work, work, newEngineConfig(o))
	if err != nil {
		return false, err
	}

	return len(res.gb) == 1 && res.gb[0].IsOne(), nil
}

// ComputeLT returns the monic leading terms of the reduced Groebner basis:
// the minimal generators of the leading term ideal.
func ComputeLT[E any](r *poly.Ring[E], gens []*poly.Poly[E], opts ...Option) ([]*poly.Poly[E], error) {
	gb, _, err := ComputeGBasis(r, gens, opts...)
	if err != nil {
		return nil, err
	}

	one := r.Coeffs().One()

	out := make([]*poly.Poly[E], len(gb))
	for k, g := range gb {
		lpp, _ := g.LPP()
		out[k] = r.Monomial(one, lpp)
	}

	return out, nil
}

// ComputeLTModule returns the leading terms of the reduced Groebner basis of
// a submodule, each a monomial times a unit vector.
func ComputeLTModule[E any](fm *FreeModule[E], gens []*Vector[E], opts ...Option) ([]*Vector[E], error) {
	gb, _, err := ComputeGBasisModule(fm, gens, opts...)
	if err != nil {
		return nil, err
	}

	em := fm.emb
	one := fm.r.Coeffs().One()

	work, err := embedVectors(em, gb, 0)
	if err != nil {
		return nil, err
	}

	lts := make([]*poly.Poly[E], len(work))
	for k, w := range work {
		lpp, _ := w.LPP()
		lts[k] = em.work.Monomial(one, lpp)
	}

	return fm.fromWork(em, lts, 0)
}
