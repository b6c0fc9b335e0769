package groebner

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jonathanmweiss/go-groebner/monomial"
	"github.com/jonathanmweiss/go-groebner/poly"
)

// State is a phase of an engine run.
type State int

const (
	Idle State = iota
	PreparingPairs
	ReducingPair
	BasisUpdated
	Interreducing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PreparingPairs:
		return "preparing pairs"
	case ReducingPair:
		return "reducing pair"
	case BasisUpdated:
		return "basis updated"
	case Interreducing:
		return "interreducing"
	case Done:
		return "done"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

type engineConfig struct {
	options

	// comps lists the component indeterminates in module mode.
	comps []int
	// satIndet >= 0 selects the saturating algorithm: every new element is
	// divided by the largest power of that indeterminate dividing it.
	satIndet int
	// unitStops ends the run as soon as a non-zero constant is found.
	unitStops bool
	// minGens asks for the minimal generators of homogeneous input.
	minGens bool
}

func newEngineConfig(o options) engineConfig {
	return engineConfig{options: o, satIndet: -1, unitStops: true}
}

type engine[E any] struct {
	r     *poly.Ring[E]
	cfg   engineConfig
	stats *Stats
	id    uuid.UUID
	state State
	deg   func(monomial.PP) (int64, error)

	inputs  []*gpoly[E]
	basis   []*gpoly[E]
	queue   pairQueue
	rd      *reductor[E]
	homog   bool
	minGens []*poly.Poly[E]
	age     int
}

type engineResult[E any] struct {
	gb      []*poly.Poly[E]
	minGens []*poly.Poly[E]
}

/*
runEngine computes the reduced Groebner basis, monic and sorted by increasing
leading power product, of the ideal or submodule generated by inputs.
r must have field coefficients.
*/
func runEngine[E any](r *poly.Ring[E], inputs []*poly.Poly[E], cfg engineConfig) (engineResult[E], error) {
	e := &engine[E]{
		r:     r,
		cfg:   cfg,
		stats: cfg.stats,
		id:    uuid.New(),
		deg:   degreeFunc(r.Monoid()),
		queue: pairQueue{m: r.Monoid(), strategy: cfg.strategy},
		rd:    newReductor(r, cfg.trace),
	}

	e.stats.RunID = e.id
	e.stats.Runs++

	log.Debugf("run %s: %d inputs in %s, strategy %s", e.id, len(inputs), r, cfg.strategy)

	if err := e.prepare(inputs); err != nil {
		return engineResult[E]{}, err
	}

	if err := e.loop(); err != nil {
		return engineResult[E]{}, err
	}

	e.setState(Interreducing)

	gb, err := e.interreduce()
	if err != nil {
		return engineResult[E]{}, err
	}

	e.setState(Done)

	e.stats.Reductions += e.rd.steps
	e.stats.BasisSize = len(gb)

	log.Debugf("run %s: basis of %d, %d pairs processed, discarded %d coprime, %d chain, %d B, %d zero reductions",
		e.id, len(gb), e.stats.PairsProcessed, e.stats.CoprimeDiscarded, e.stats.ChainDiscarded,
		e.stats.BDiscarded, e.stats.ZeroReductions)

	res := engineResult[E]{gb: gb}
	if e.homog {
		res.minGens = e.minGens
	}

	return res, nil
}

func (e *engine[E]) setState(s State) {
	e.state = s
	e.stats.enter(s)
}

func (e *engine[E]) prepare(inputs []*poly.Poly[E]) error {
	e.setState(PreparingPairs)

	m := e.r.Monoid()
	e.homog = e.cfg.minGens && m.GradingDim() > 0

	for _, f := range inputs {
		if f.IsZero() {
			continue
		}

		if !f.IsHomog() {
			e.homog = false
		}

		s, err := sugarOf(f, e.deg)
		if err != nil {
			return err
		}

		lpp, _ := f.LPP()

		e.inputs = append(e.inputs, &gpoly[E]{p: f, lpp: lpp, sugar: s, component: -1})
		e.age++
		e.queue.items = append(e.queue.items, &pair{
			i:     len(e.inputs) - 1,
			j:     -1,
			lcm:   lpp,
			sugar: s,
			deg:   m.StdDeg(lpp),
			age:   e.age,
		})
	}

	e.queue.homog = e.homog
	heap.Init(&e.queue)

	return nil
}

func (e *engine[E]) loop() error {
	for e.queue.Len() > 0 {
		p := e.queue.pop()

		e.setState(ReducingPair)
		e.stats.PairsProcessed++

		f, err := e.pairPoly(p)
		if err != nil {
			return err
		}

		nf, sugar, err := e.rd.reduce(f, p.sugar)
		if err != nil {
			return err
		}

		if nf.IsZero() {
			e.stats.ZeroReductions++
			e.setState(PreparingPairs)

			continue
		}

		if e.cfg.satIndet >= 0 {
			if nf, sugar, err = e.saturate(nf, sugar); err != nil {
				return err
			}

			if nf.IsZero() {
				e.stats.ZeroReductions++
				e.setState(PreparingPairs)

				continue
			}
		}

		if nf, err = nf.Monic(); err != nil {
			return fmt.Errorf("%w: %w", ErrCoefficientsNotInField, err)
		}

		if p.isInput() && e.homog {
			e.minGens = append(e.minGens, nf)
		}

		if err := e.insert(nf, sugar); err != nil {
			return err
		}

		e.setState(BasisUpdated)

		if e.cfg.unitStops && nf.IsConst() {
			log.Debugf("run %s: found a unit", e.id)

			e.basis = e.basis[len(e.basis)-1:]
			e.queue.clear()
		}

		e.setState(PreparingPairs)
	}

	return nil
}

// pairPoly is the S-polynomial of a pair, or the input itself.
func (e *engine[E]) pairPoly(p *pair) (*poly.Poly[E], error) {
	if p.isInput() {
		return e.inputs[p.i].p, nil
	}

	m := e.r.Monoid()
	one := e.r.Coeffs().One()
	gi, gj := e.basis[p.i], e.basis[p.j]

	qi, err := m.Div(p.lcm, gi.lpp)
	if err != nil {
		return nil, err
	}

	qj, err := m.Div(p.lcm, gj.lpp)
	if err != nil {
		return nil, err
	}

	a, err := gi.p.MulTerm(one, qi)
	if err != nil {
		return nil, err
	}

	b, err := gj.p.MulTerm(one, qj)
	if err != nil {
		return nil, err
	}

	return a.Sub(b), nil
}

/*
saturate divides f by the largest power of the saturating indeterminate
dividing it, reduces again, and repeats until nothing divides.
*/
func (e *engine[E]) saturate(f *poly.Poly[E], sugar int64) (*poly.Poly[E], int64, error) {
	m := e.r.Monoid()
	x := e.cfg.satIndet

	for !f.IsZero() {
		k := int64(-1)
		for i := 0; i < f.Len(); i++ {
			ex, err := m.Exponent(f.Term(i).PP, x)
			if err != nil {
				return nil, 0, err
			}

			if k < 0 || ex < k {
				k = ex
			}
		}

		if k == 0 {
			break
		}

		xk, err := m.IndetPower(x, k)
		if err != nil {
			return nil, 0, err
		}

		terms := f.Terms()
		for i, t := range terms {
			if terms[i].PP, err = m.Div(t.PP, xk); err != nil {
				return nil, 0, err
			}
		}

		d, err := e.deg(xk)
		if err != nil {
			return nil, 0, err
		}

		if f, sugar, err = e.rd.reduce(e.r.FromTerms(terms), sugar-d); err != nil {
			return nil, 0, err
		}
	}

	return f, sugar, nil
}

func (e *engine[E]) insert(f *poly.Poly[E], sugar int64) error {
	lpp, _ := f.LPP()

	g := &gpoly[E]{
		p:         f,
		lpp:       lpp,
		sugar:     sugar,
		component: componentOf(e.r.Monoid(), lpp, e.cfg.comps),
	}

	e.basis = append(e.basis, g)
	e.rd.add(g)

	return e.update(len(e.basis) - 1)
}

/*
interreduce keeps the non-redundant elements, whose leading power products
are pairwise non-divisible, and reduces their tails. The tail of g cannot be
reduced by g itself, since a multiple of lpp(g) is never smaller than it.
*/
func (e *engine[E]) interreduce() ([]*poly.Poly[E], error) {
	m := e.r.Monoid()

	var live []*gpoly[E]
	for _, g := range e.basis {
		if !g.redundant {
			live = append(live, g)
		}
	}

	sort.Slice(live, func(i, j int) bool {
		return m.Cmp(live[i].lpp, live[j].lpp) < 0
	})

	out := make([]*poly.Poly[E], len(live))
	if !e.cfg.interreduce {
		for i, g := range live {
			out[i] = g.p
		}

		return out, nil
	}

	rd := newReductor(e.r, nil)
	for _, g := range live {
		rd.add(g)
	}

	for i, g := range live {
		lt, _ := g.p.LT()
		head := e.r.Monomial(lt.Coeff, lt.PP)

		tail, _, err := rd.reduce(g.p.Sub(head), 0)
		if err != nil {
			return nil, err
		}

		out[i] = head.Add(tail)
	}

	e.rd.steps += rd.steps

	return out, nil
}
