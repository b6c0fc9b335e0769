package groebner

import (
	"fmt"
	"strings"

	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
)

// flag is a cached property that may not be known yet.
type flag int8

const (
	unknown flag = iota
	no
	yes
)

func flagOf(b bool) flag {
	if b {
		return yes
	}

	return no
}

// idealCache holds everything derived from the generators.
type idealCache[E any] struct {
	gb      []*poly.Poly[E]
	minGens []*poly.Poly[E]
	haveGB  bool

	prime    flag
	maximal  flag
	monomial flag
	sqfree   flag
}

/*
Ideal is the ideal of a polynomial ring over a field generated by a list of
polynomials. Its Groebner basis and properties are computed on demand and
cached; the operations that change the generators (Add, Mul, Intersect,
Colon, Saturate) drop the cache.

An Ideal is not safe for concurrent use.
*/
type Ideal[E any] struct {
	r     *poly.Ring[E]
	gens  []*poly.Poly[E]
	opts  []Option
	cache idealCache[E]
}

// NewIdeal returns the ideal generated by gens. The options are used for
// every Groebner basis computed for the ideal.
func NewIdeal[E any](r *poly.Ring[E], gens []*poly.Poly[E], opts ...Option) (*Ideal[E], error) {
	if err := checkIdealArgs(r, gens); err != nil {
		return nil, err
	}

	return &Ideal[E]{r: r, gens: append([]*poly.Poly[E](nil), gens...), opts: opts}, nil
}

func (I *Ideal[E]) Ring() *poly.Ring[E] { return I.r }

func (I *Ideal[E]) Gens() []*poly.Poly[E] {
	return append([]*poly.Poly[E](nil), I.gens...)
}

func (I *Ideal[E]) invalidate() {
	I.cache = idealCache[E]{}
}

func (I *Ideal[E]) setGens(gens []*poly.Poly[E]) {
	I.gens = gens
	I.invalidate()
}

func (I *Ideal[E]) ensureGB() error {
	if I.cache.haveGB {
		return nil
	}

	o := gatherOptions(I.opts)
	o.interreduce = true

	gb, minGens, err := gbasis(I.r, I.gens, o)
	if err != nil {
		return err
	}

	I.cache.gb, I.cache.minGens, I.cache.haveGB = gb, minGens, true

	return nil
}

// GBasis returns the reduced Groebner basis, sorted by increasing leading
// power product.
func (I *Ideal[E]) GBasis() ([]*poly.Poly[E], error) {
	if err := I.ensureGB(); err != nil {
		return nil, err
	}

	return append([]*poly.Poly[E](nil), I.cache.gb...), nil
}

// MinGens returns minimal generators of a homogeneous ideal; it is empty
// when the ideal is not known to be homogeneous.
func (I *Ideal[E]) MinGens() ([]*poly.Poly[E], error) {
	if err := I.ensureGB(); err != nil {
		return nil, err
	}

	return append([]*poly.Poly[E](nil), I.cache.minGens...), nil
}

func (I *Ideal[E]) NormalForm(f *poly.Poly[E]) (*poly.Poly[E], error) {
	if err := checkRing(I.r, f); err != nil {
		return nil, err
	}

	if err := I.ensureGB(); err != nil {
		return nil, err
	}

	return NormalForm(I.r, f, I.cache.gb)
}

func (I *Ideal[E]) Contains(f *poly.Poly[E]) (bool, error) {
	nf, err := I.NormalForm(f)
	if err != nil {
		return false, err
	}

	return nf.IsZero(), nil
}

// Equal compares reduced Groebner bases; ideals of different rings differ.
func (I *Ideal[E]) Equal(J *Ideal[E]) (bool, error) {
	if I.r != J.r {
		return false, nil
	}

	a, err := I.GBasis()
	if err != nil {
		return false, err
	}

	b, err := J.GBasis()
	if err != nil {
		return false, err
	}

	if len(a) != len(b) {
		return false, nil
	}

	for k, g := range a {
		if !g.Equal(b[k]) {
			return false, nil
		}
	}

	return true, nil
}

func (I *Ideal[E]) IsZero() bool {
	for _, g := range I.gens {
		if !g.IsZero() {
			return false
		}
	}

	return true
}

func (I *Ideal[E]) IsOne() (bool, error) {
	gb, err := I.GBasis()
	if err != nil {
		return false, err
	}

	return len(gb) == 1 && gb[0].IsOne(), nil
}

// IsMonomial reports whether the ideal is generated by power products.
func (I *Ideal[E]) IsMonomial() (bool, error) {
	if I.cache.monomial != unknown {
		return I.cache.monomial == yes, nil
	}

	if isMonomialList(I.gens) {
		I.cache.monomial = yes

		return true, nil
	}

	// a monomial ideal has a reduced basis of power products.
	gb, err := I.GBasis()
	if err != nil {
		return false, err
	}

	I.cache.monomial = flagOf(isMonomialList(gb))

	return I.cache.monomial == yes, nil
}

func (I *Ideal[E]) IsSquareFreeMonomial() (bool, error) {
	if I.cache.sqfree != unknown {
		return I.cache.sqfree == yes, nil
	}

	mono, err := I.IsMonomial()
	if err != nil || !mono {
		return false, err
	}

	m := I.r.Monoid()

	sqfree := true
	for _, pp := range I.monomialGens() {
		if !m.IsSquareFree(pp) {
			sqfree = false

			break
		}
	}

	I.cache.sqfree = flagOf(sqfree)

	return sqfree, nil
}

// monomialGens returns the minimal power products of a monomial ideal.
func (I *Ideal[E]) monomialGens() []monomial.PP {
	if I.cache.haveGB {
		return lpps(I.cache.gb)
	}

	return minimalize(I.r.Monoid(), lpps(I.gens))
}

/*
IsPrime decides primality for the zero ideal, monomial ideals and ideals with
a basis of linear polynomials; other ideals give ErrNotYetImplemented unless
the answer was set with SetPrime.
*/
func (I *Ideal[E]) IsPrime() (bool, error) {
	if I.cache.prime != unknown {
		return I.cache.prime == yes, nil
	}

	prime, err := I.decide(func(pps []monomial.PP) bool {
		m := I.r.Monoid()
		for _, pp := range pps {
			if _, ok := m.IsIndetPower(pp); !ok || m.StdDeg(pp) != 1 {
				return false
			}
		}

		return true
	}, func(gb []*poly.Poly[E]) bool { return true }, true)
	if err != nil {
		return false, err
	}

	I.cache.prime = flagOf(prime)

	return prime, nil
}

// IsMaximal works on the same ideals as IsPrime.
func (I *Ideal[E]) IsMaximal() (bool, error) {
	if I.cache.maximal != unknown {
		return I.cache.maximal == yes, nil
	}

	n := I.r.NumIndets()

	maximal, err := I.decide(func(pps []monomial.PP) bool {
		m := I.r.Monoid()
		if len(pps) != n {
			return false
		}

		for _, pp := range pps {
			if _, ok := m.IsIndetPower(pp); !ok || m.StdDeg(pp) != 1 {
				return false
			}
		}

		return true
	}, func(gb []*poly.Poly[E]) bool { return len(gb) == n }, n == 0)
	if err != nil {
		return false, err
	}

	I.cache.maximal = flagOf(maximal)
	if maximal {
		I.cache.prime = yes
	}

	return maximal, nil
}

// decide runs a primality-style test on the cases it knows; the unit ideal
// is never prime.
func (I *Ideal[E]) decide(mono func([]monomial.PP) bool, linear func([]*poly.Poly[E]) bool, zero bool) (bool, error) {
	gb, err := I.GBasis()
	if err != nil {
		return false, err
	}

	if len(gb) == 0 {
		return zero, nil
	}

	if gb[0].IsConst() {
		return false, nil
	}

	if isMonomialList(gb) {
		return mono(lpps(gb)), nil
	}

	for _, g := range gb {
		if d, err := g.StdDeg(); err != nil || d > 1 {
			return false, fmt.Errorf("%w: primality of %s", ErrNotYetImplemented, I)
		}
	}

	return linear(gb), nil
}

// SetPrime records a known answer for IsPrime until the generators change.
func (I *Ideal[E]) SetPrime(prime bool) {
	I.cache.prime = flagOf(prime)
	if !prime {
		I.cache.maximal = no
	}
}

// SetMaximal records a known answer for IsMaximal; a maximal ideal is prime.
func (I *Ideal[E]) SetMaximal(maximal bool) {
	I.cache.maximal = flagOf(maximal)
	if maximal {
		I.cache.prime = yes
	}
}

func (I *Ideal[E]) check(J *Ideal[E]) error {
	if J == nil || J.r != I.r {
		return fmt.Errorf("%w: ideals of different rings", ErrBadArg)
	}

	return nil
}

func (I *Ideal[E]) bothMonomial(J *Ideal[E]) bool {
	return isMonomialList(I.gens) && isMonomialList(J.gens)
}

func (I *Ideal[E]) setMonomial(pps []monomial.PP) {
	I.setGens(monomialsOf(I.r, pps))
	I.cache.monomial = yes
}

// Add replaces I by I + J.
func (I *Ideal[E]) Add(J *Ideal[E]) error {
	if err := I.check(J); err != nil {
		return err
	}

	if I.bothMonomial(J) {
		I.setMonomial(monomialSum(I.r.Monoid(), lpps(I.gens), lpps(J.gens)))

		return nil
	}

	I.setGens(append(append([]*poly.Poly[E](nil), I.gens...), J.gens...))

	return nil
}

// Mul replaces I by the product I*J.
func (I *Ideal[E]) Mul(J *Ideal[E]) error {
	if err := I.check(J); err != nil {
		return err
	}

	if I.bothMonomial(J) {
		pps, err := monomialProduct(I.r.Monoid(), lpps(I.gens), lpps(J.gens))
		if err != nil {
			return err
		}

		I.setMonomial(pps)

		return nil
	}

	gens := make([]*poly.Poly[E], 0, len(I.gens)*len(J.gens))
	for _, f := range I.gens {
		for _, g := range J.gens {
			p, err := f.Mul(g)
			if err != nil {
				return err
			}

			if !p.IsZero() {
				gens = append(gens, p)
			}
		}
	}

	I.setGens(gens)

	return nil
}

// Intersect replaces I by the intersection of I and J.
func (I *Ideal[E]) Intersect(J *Ideal[E]) error {
	if err := I.check(J); err != nil {
		return err
	}

	if I.bothMonomial(J) {
		I.setMonomial(monomialIntersection(I.r.Monoid(), lpps(I.gens), lpps(J.gens)))

		return nil
	}

	gens, err := intersection(I.r, I.gens, J.gens, gatherOptions(I.opts))
	if err != nil {
		return err
	}

	I.setGens(gens)

	return nil
}

// Colon replaces I by I:J.
func (I *Ideal[E]) Colon(J *Ideal[E]) error {
	if err := I.check(J); err != nil {
		return err
	}

	if I.bothMonomial(J) {
		I.setMonomial(monomialColon(I.r.Monoid(), lpps(I.gens), lpps(J.gens)))

		return nil
	}

	o := gatherOptions(I.opts)

	gens, err := intersectAll(I.r, J.gens, o, func(g *poly.Poly[E]) ([]*poly.Poly[E], error) {
		return colonByPrincipal(I.r, I.gens, g, o)
	})
	if err != nil {
		return err
	}

	I.setGens(gens)

	return nil
}

// Saturate replaces I by I:J^infinity.
func (I *Ideal[E]) Saturate(J *Ideal[E]) error {
	if err := I.check(J); err != nil {
		return err
	}

	if I.bothMonomial(J) {
		I.setMonomial(monomialSaturation(I.r.Monoid(), lpps(I.gens), lpps(J.gens)))

		return nil
	}

	o := gatherOptions(I.opts)

	gens, err := intersectAll(I.r, J.gens, o, func(g *poly.Poly[E]) ([]*poly.Poly[E], error) {
		return saturation(I.r, I.gens, g, o)
	})
	if err != nil {
		return err
	}

	I.setGens(gens)

	return nil
}

// Elim returns the ideal of elements of I free of the given indeterminates.
func (I *Ideal[E]) Elim(indets ...int) (*Ideal[E], error) {
	gens, err := ComputeElim(I.r, I.gens, indets, I.opts...)
	if err != nil {
		return nil, err
	}

	return NewIdeal(I.r, gens, I.opts...)
}

/*
PrimaryDecomposition returns the primary components of a square-free
monomial ideal, which are its minimal primes (x_i : i in S), in the order
given by Alexander duality. The unit ideal has no components. Other ideals
give ErrNotYetImplemented.
*/
func (I *Ideal[E]) PrimaryDecomposition() ([]*Ideal[E], error) {
	sqfree, err := I.IsSquareFreeMonomial()
	if err != nil {
		return nil, err
	}

	if !sqfree {
		return nil, fmt.Errorf("%w: primary decomposition of %s", ErrNotYetImplemented, I)
	}

	pps := I.monomialGens()
	if len(pps) == 0 {
		return []*Ideal[E]{I.Clone()}, nil
	}

	m := I.r.Monoid()
	if m.IsOne(pps[0]) {
		return nil, nil
	}

	supports := alexanderDual(m, pps)

	out := make([]*Ideal[E], len(supports))
	for k, s := range supports {
		gens := make([]*poly.Poly[E], len(s))
		for j, i := range s {
			gens[j] = I.r.Indet(i)
		}

		J := &Ideal[E]{r: I.r, gens: gens, opts: I.opts}
		J.cache.monomial, J.cache.sqfree, J.cache.prime = yes, yes, yes
		out[k] = J
	}

	return out, nil
}

// Clone returns an independent copy sharing the cached results.
func (I *Ideal[E]) Clone() *Ideal[E] {
	return &Ideal[E]{
		r:     I.r,
		gens:  append([]*poly.Poly[E](nil), I.gens...),
		opts:  I.opts,
		cache: I.cache,
	}
}

func (I *Ideal[E]) String() string {
	parts := make([]string, len(I.gens))
	for k, g := range I.gens {
		parts[k] = g.String()
	}

	return "ideal(" + strings.Join(parts, ", ") + ")"
}
