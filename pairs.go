package groebner

import (
	"container/heap"

	"github.com/jonathanmweiss/go-groebner/monomial"
)

// pair is a pending S-pair (i, j) of basis indices, or an input polynomial
// waiting to enter the basis when j < 0, in which case i indexes the inputs.
type pair struct {
	i, j  int
	lcm   monomial.PP
	sugar int64
	deg   int64
	age   int
}

func (p *pair) isInput() bool {
	return p.j < 0
}

/*
pairQueue is a min-heap of pairs. Ties always put S-pairs before input
polynomials, so that an input is only looked at once everything below its
degree is known; in homogeneous mode the inputs that survive reduction are
then exactly the minimal generators.
*/
type pairQueue struct {
	items    []*pair
	m        *monomial.Monoid
	strategy Strategy
	homog    bool
}

func (q *pairQueue) Len() int      { return len(q.items) }
func (q *pairQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *pairQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]

	switch {
	case q.strategy == Sugar || q.homog:
		if a.sugar != b.sugar {
			return a.sugar < b.sugar
		}
	case q.strategy == Degree:
		if a.deg != b.deg {
			return a.deg < b.deg
		}
	}

	if q.strategy == Normal && !q.homog {
		if c := q.m.Cmp(a.lcm, b.lcm); c != 0 {
			return c < 0
		}
	}

	if a.isInput() != b.isInput() {
		return !a.isInput()
	}

	if c := q.m.Cmp(a.lcm, b.lcm); c != 0 {
		return c < 0
	}

	return a.age < b.age
}

func (q *pairQueue) Push(x any) {
	q.items = append(q.items, x.(*pair))
}

func (q *pairQueue) Pop() any {
	n := len(q.items)
	p := q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]

	return p
}

func (q *pairQueue) push(p *pair) {
	heap.Push(q, p)
}

func (q *pairQueue) pop() *pair {
	return heap.Pop(q).(*pair)
}

// filter keeps the pairs for which keep is true.
func (q *pairQueue) filter(keep func(*pair) bool) {
	kept := q.items[:0]
	for _, p := range q.items {
		if keep(p) {
			kept = append(kept, p)
		}
	}

	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = nil
	}

	q.items = kept
	heap.Init(q)
}

func (q *pairQueue) clear() {
	q.items = nil
}

/*
update inserts the pairs of the new basis element k, following Gebauer and
Moeller:

  - among the new pairs, one whose lcm is a multiple of another new pair's
    lcm is dropped, and of several with equal lcm one survives (a coprime one
    if there is one, and then it is dropped as well);
  - new pairs with coprime leading power products are dropped;
  - an old pair (i, j) is dropped when lpp(k) divides its lcm and differs from
    lcm(i, k) and lcm(j, k);
  - old elements whose leading power product is a multiple of lpp(k) become
    redundant.

In module mode only elements of the same component are paired.
*/
func (e *engine[E]) update(k int) error {
	m := e.r.Monoid()
	h := e.basis[k]

	var cands []*pair
	for i, g := range e.basis[:k] {
		if g.redundant || g.component != h.component {
			continue
		}

		p, err := e.newPair(i, k)
		if err != nil {
			return err
		}

		cands = append(cands, p)
	}

	e.stats.PairsCreated += len(cands)

	dominated := func(p *pair, others []*pair) bool {
		for _, o := range others {
			if m.IsDivisible(p.lcm, o.lcm) {
				return true
			}
		}

		return false
	}

	kept := make([]*pair, 0, len(cands))
	for idx, p := range cands {
		coprime := m.IsCoprime(e.basis[p.i].lpp, h.lpp)
		if !coprime && (dominated(p, cands[idx+1:]) || dominated(p, kept)) {
			e.stats.ChainDiscarded++

			continue
		}

		kept = append(kept, p)
	}

	e.queue.filter(func(p *pair) bool {
		if p.isInput() || !m.IsDivisible(p.lcm, h.lpp) {
			return true
		}

		li := m.Lcm(e.basis[p.i].lpp, h.lpp)
		lj := m.Lcm(e.basis[p.j].lpp, h.lpp)
		if m.Equal(li, p.lcm) || m.Equal(lj, p.lcm) {
			return true
		}

		e.stats.BDiscarded++

		return false
	})

	for _, p := range kept {
		if m.IsCoprime(e.basis[p.i].lpp, h.lpp) {
			e.stats.CoprimeDiscarded++

			continue
		}

		e.queue.push(p)
	}

	for _, g := range e.basis[:k] {
		if !g.redundant && m.IsDivisible(g.lpp, h.lpp) {
			g.redundant = true
		}
	}

	return nil
}

func (e *engine[E]) newPair(i, j int) (*pair, error) {
	m := e.r.Monoid()
	gi, gj := e.basis[i], e.basis[j]

	lcm := m.Lcm(gi.lpp, gj.lpp)

	sugar := int64(0)
	for _, g := range []*gpoly[E]{gi, gj} {
		q, err := m.Div(lcm, g.lpp)
		if err != nil {
			return nil, err
		}

		d, err := e.deg(q)
		if err != nil {
			return nil, err
		}

		sugar = max(sugar, g.sugar+d)
	}

	e.age++

	return &pair{i: i, j: j, lcm: lcm, sugar: sugar, deg: m.StdDeg(lcm), age: e.age}, nil
}
