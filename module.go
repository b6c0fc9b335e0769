package groebner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathanmweiss/go-groebner/poly"
)

// FreeModule is R^rank over a polynomial ring R.
type FreeModule[E any] struct {
	r    *poly.Ring[E]
	rank int
	// emb is the position embedding used for Groebner bases: term over
	// position, component 0 largest.
	emb *embedding[E]
}

func NewFreeModule[E any](r *poly.Ring[E], rank int) (*FreeModule[E], error) {
	if rank < 1 {
		return nil, fmt.Errorf("%w: free module of rank %d", ErrBadArg, rank)
	}

	emb, err := newEmbedding(r, 0, rank, r.Monoid().GradingDim())
	if err != nil {
		return nil, err
	}

	return &FreeModule[E]{r: r, rank: rank, emb: emb}, nil
}

func (fm *FreeModule[E]) Ring() *poly.Ring[E] { return fm.r }
func (fm *FreeModule[E]) Rank() int           { return fm.rank }

func (fm *FreeModule[E]) String() string {
	return fmt.Sprintf("%s^%d", fm.r, fm.rank)
}

// Vector is an element of a FreeModule. Vectors are values.
type Vector[E any] struct {
	fm *FreeModule[E]
	c  []*poly.Poly[E]
}

// NewVector builds a vector from its components, all in the module's ring.
func (fm *FreeModule[E]) NewVector(comps ...*poly.Poly[E]) (*Vector[E], error) {
	if len(comps) != fm.rank {
		return nil, fmt.Errorf("%w: %d components for rank %d", ErrBadArg, len(comps), fm.rank)
	}

	if err := checkRing(fm.r, comps...); err != nil {
		return nil, err
	}

	return &Vector[E]{fm: fm, c: append([]*poly.Poly[E](nil), comps...)}, nil
}

func (fm *FreeModule[E]) Zero() *Vector[E] {
	c := make([]*poly.Poly[E], fm.rank)
	for i := range c {
		c[i] = fm.r.Zero()
	}

	return &Vector[E]{fm: fm, c: c}
}

// Unit returns the i-th standard basis vector; it panics for i out of range.
func (fm *FreeModule[E]) Unit(i int) *Vector[E] {
	v := fm.Zero()
	v.c[i] = fm.r.One()

	return v
}

func (v *Vector[E]) Module() *FreeModule[E]       { return v.fm }
func (v *Vector[E]) Component(i int) *poly.Poly[E] { return v.c[i] }

func (v *Vector[E]) Components() []*poly.Poly[E] {
	return append([]*poly.Poly[E](nil), v.c...)
}

func (v *Vector[E]) IsZero() bool {
	for _, c := range v.c {
		if !c.IsZero() {
			return false
		}
	}

	return true
}

func (v *Vector[E]) Equal(w *Vector[E]) bool {
	if v.fm != w.fm {
		return false
	}

	for i, c := range v.c {
		if !c.Equal(w.c[i]) {
			return false
		}
	}

	return true
}

func (v *Vector[E]) Add(w *Vector[E]) *Vector[E] {
	out := make([]*poly.Poly[E], len(v.c))
	for i, c := range v.c {
		out[i] = c.Add(w.c[i])
	}

	return &Vector[E]{fm: v.fm, c: out}
}

func (v *Vector[E]) Sub(w *Vector[E]) *Vector[E] {
	out := make([]*poly.Poly[E], len(v.c))
	for i, c := range v.c {
		out[i] = c.Sub(w.c[i])
	}

	return &Vector[E]{fm: v.fm, c: out}
}

// Scale returns f*v.
func (v *Vector[E]) Scale(f *poly.Poly[E]) (*Vector[E], error) {
	out := make([]*poly.Poly[E], len(v.c))
	for i, c := range v.c {
		p, err := f.Mul(c)
		if err != nil {
			return nil, err
		}

		out[i] = p
	}

	return &Vector[E]{fm: v.fm, c: out}, nil
}

func (v *Vector[E]) String() string {
	parts := make([]string, len(v.c))
	for i, c := range v.c {
		parts[i] = c.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func checkVectors[E any](fm *FreeModule[E], vs ...*Vector[E]) error {
	for i, v := range vs {
		if v == nil || v.fm != fm {
			return fmt.Errorf("%w: vector %d is not in %s", ErrBadArg, i, fm)
		}
	}

	return nil
}

// embedVectors embeds vectors of rank k at component offset.
func embedVectors[E any](em *embedding[E], vs []*Vector[E], offset int) ([]*poly.Poly[E], error) {
	out := make([]*poly.Poly[E], 0, len(vs))
	for _, v := range vs {
		w, err := em.vecIn(v.c, offset)
		if err != nil {
			return nil, err
		}

		out = append(out, w)
	}

	return out, nil
}

func (fm *FreeModule[E]) fromWork(em *embedding[E], ps []*poly.Poly[E], offset int) ([]*Vector[E], error) {
	out := make([]*Vector[E], 0, len(ps))
	for _, p := range ps {
		c, err := em.vecOut(p, offset, offset+fm.rank)
		if err != nil {
			return nil, err
		}

		out = append(out, &Vector[E]{fm: fm, c: c})
	}

	return out, nil
}

/*
Submodule is the submodule of a free module generated by some vectors, with
a lazily computed Groebner basis.
*/
type Submodule[E any] struct {
	fm   *FreeModule[E]
	gens []*Vector[E]
	opts []Option

	gb      []*Vector[E]
	minGens []*Vector[E]
	// gbWork is gb embedded in fm's working ring, for normal forms.
	gbWork []*poly.Poly[E]
	haveGB bool
}

func NewSubmodule[E any](fm *FreeModule[E], gens []*Vector[E], opts ...Option) (*Submodule[E], error) {
	if err := checkField(fm.r); err != nil {
		return nil, err
	}

	if err := checkVectors(fm, gens...); err != nil {
		return nil, err
	}

	return &Submodule[E]{fm: fm, gens: append([]*Vector[E](nil), gens...), opts: opts}, nil
}

func (sm *Submodule[E]) Module() *FreeModule[E] { return sm.fm }

func (sm *Submodule[E]) Gens() []*Vector[E] {
	return append([]*Vector[E](nil), sm.gens...)
}

func (sm *Submodule[E]) invalidate() {
	sm.gb, sm.minGens, sm.gbWork, sm.haveGB = nil, nil, nil, false
}

func (sm *Submodule[E]) ensureGB() error {
	if sm.haveGB {
		return nil
	}

	opts := append(slices.Clone(sm.opts), withInterreduction())

	gb, minGens, err := ComputeGBasisModule(sm.fm, sm.gens, opts...)
	if err != nil {
		return err
	}

	work, err := embedVectors(sm.fm.emb, gb, 0)
	if err != nil {
		return err
	}

	sm.gb, sm.minGens, sm.gbWork, sm.haveGB = gb, minGens, work, true

	return nil
}

func (sm *Submodule[E]) GBasis() ([]*Vector[E], error) {
	if err := sm.ensureGB(); err != nil {
		return nil, err
	}

	return append([]*Vector[E](nil), sm.gb...), nil
}

func (sm *Submodule[E]) MinGens() ([]*Vector[E], error) {
	if err := sm.ensureGB(); err != nil {
		return nil, err
	}

	return append([]*Vector[E](nil), sm.minGens...), nil
}

// NormalForm reduces v against the Groebner basis.
func (sm *Submodule[E]) NormalForm(v *Vector[E]) (*Vector[E], error) {
	if err := checkVectors(sm.fm, v); err != nil {
		return nil, err
	}

	if err := sm.ensureGB(); err != nil {
		return nil, err
	}

	em := sm.fm.emb

	w, err := em.vecIn(v.c, 0)
	if err != nil {
		return nil, err
	}

	nf, err := NormalForm(em.work, w, sm.gbWork)
	if err != nil {
		return nil, err
	}

	out, err := sm.fm.fromWork(em, []*poly.Poly[E]{nf}, 0)
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

func (sm *Submodule[E]) Contains(v *Vector[E]) (bool, error) {
	nf, err := sm.NormalForm(v)
	if err != nil {
		return false, err
	}

	return nf.IsZero(), nil
}

// Syz returns generators of the syzygies of the generators.
func (sm *Submodule[E]) Syz() ([]*Vector[E], error) {
	return ComputeSyzModule(sm.fm, sm.gens, sm.opts...)
}

// Intersect replaces the submodule by its intersection with other.
func (sm *Submodule[E]) Intersect(other *Submodule[E]) error {
	if other.fm != sm.fm {
		return fmt.Errorf("%w: submodules of different free modules", ErrBadArg)
	}

	gens, err := ComputeIntersectionModule(sm.fm, sm.gens, other.gens, sm.opts...)
	if err != nil {
		return err
	}

	sm.gens = gens
	sm.invalidate()

	return nil
}

// Colon returns the ideal of ring elements f with f*other inside sm.
func (sm *Submodule[E]) Colon(other *Submodule[E]) (*Ideal[E], error) {
	if other.fm != sm.fm {
		return nil, fmt.Errorf("%w: submodules of different free modules", ErrBadArg)
	}

	gens, err := ComputeCColonModule(sm.fm, sm.gens, other.gens, sm.opts...)
	if err != nil {
		return nil, err
	}

	return NewIdeal(sm.fm.r, gens, sm.opts...)
}

// Equal compares the reduced Groebner bases.
func (sm *Submodule[E]) Equal(other *Submodule[E]) (bool, error) {
	if other.fm != sm.fm {
		return false, nil
	}

	a, err := sm.GBasis()
	if err != nil {
		return false, err
	}

	b, err := other.GBasis()
	if err != nil {
		return false, err
	}

	if len(a) != len(b) {
		return false, nil
	}

	for i, v := range a {
		if !v.Equal(b[i]) {
			return false, nil
		}
	}

	return true, nil
}
