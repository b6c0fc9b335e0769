package poly

import "github.com/jonathanmweiss/go-groebner/monomial"

/*
Geobucket accumulates a sum of polynomials.

Bucket i holds at most 4^(i+1) terms; adding a polynomial merges it into the
first bucket large enough, and a bucket that overflows is emptied into the
next one. Repeated additions of short polynomials to a long sum therefore
cost about a logarithmic number of merges per term instead of a full merge
each time.
*/
type Geobucket[E any] struct {
	r       *Ring[E]
	buckets [][]Term[E]
}

func NewGeobucket[E any](r *Ring[E]) *Geobucket[E] {
	return &Geobucket[E]{r: r}
}

func bucketCap(i int) int {
	return 4 << (2 * i)
}

func (g *Geobucket[E]) Add(p *Poly[E]) {
	g.r.check(p)
	g.insert(p.terms)
}

// AddMul adds c*pp*p.
func (g *Geobucket[E]) AddMul(c E, pp monomial.PP, p *Poly[E]) error {
	g.r.check(p)

	q, err := p.MulTerm(c, pp)
	if err != nil {
		return err
	}

	g.insert(q.terms)

	return nil
}

func (g *Geobucket[E]) insert(terms []Term[E]) {
	if len(terms) == 0 {
		return
	}

	i := 0
	for bucketCap(i) < len(terms) {
		i++
	}

	for {
		for len(g.buckets) <= i {
			g.buckets = append(g.buckets, nil)
		}

		// mergeTerms never aliases its inputs, so buckets own their slices.
		merged := mergeTerms(g.r, g.buckets[i], terms, false)
		if len(merged) <= bucketCap(i) {
			g.buckets[i] = merged

			return
		}

		g.buckets[i] = nil
		terms = merged
		i++
	}
}

/*
LeadingTerm returns the leading term of the sum, or false when the sum is
zero. Equal leading power products across buckets are combined on the way,
and cancelled heads are dropped.
*/
func (g *Geobucket[E]) LeadingTerm() (Term[E], bool) {
	cr, m := g.r.coeffs, g.r.m

	for {
		best := -1
		for i, b := range g.buckets {
			if len(b) == 0 {
				continue
			}

			if best < 0 || m.Cmp(b[0].PP, g.buckets[best][0].PP) > 0 {
				best = i
			}
		}

		if best < 0 {
			return Term[E]{}, false
		}

		head := g.buckets[best][0]
		sum := head.Coeff

		for i, b := range g.buckets {
			if i == best || len(b) == 0 || !m.Equal(b[0].PP, head.PP) {
				continue
			}

			sum = cr.Add(sum, b[0].Coeff)
			g.buckets[i] = b[1:]
		}

		if cr.IsZero(sum) {
			g.buckets[best] = g.buckets[best][1:]

			continue
		}

		g.buckets[best][0] = Term[E]{Coeff: sum, PP: head.PP}

		return g.buckets[best][0], true
	}
}

// PopLeading removes and returns the leading term.
func (g *Geobucket[E]) PopLeading() (Term[E], bool) {
	t, ok := g.LeadingTerm()
	if !ok {
		return t, false
	}

	for i, b := range g.buckets {
		if len(b) > 0 && g.r.m.Equal(b[0].PP, t.PP) {
			g.buckets[i] = b[1:]

			break
		}
	}

	return t, true
}

func (g *Geobucket[E]) IsZero() bool {
	_, ok := g.LeadingTerm()

	return !ok
}

// Value returns the whole sum; the geobucket keeps it as a single bucket.
func (g *Geobucket[E]) Value() *Poly[E] {
	var all []Term[E]
	for _, b := range g.buckets {
		all = mergeTerms(g.r, all, b, false)
	}

	g.buckets = nil
	g.insert(all)

	terms := append([]Term[E](nil), all...)
	g.r.pack(terms)

	return &Poly[E]{r: g.r, terms: terms}
}
