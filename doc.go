/*
Package groebner computes Groebner bases of polynomial ideals and submodules
of free modules over a field, and the ideal operations built on them:
elimination, syzygies, intersection, colon, saturation, homogenization,
radical membership and leading term ideals.

The engine is Buchberger's algorithm with a sugar-ordered pair queue, the
Gebauer-Moeller criteria and full reduction through a geobucket. Most
operations do not run the engine on their input directly: the generators are
embedded into a larger ring, with extra indeterminates and an ordering that
makes a single Groebner basis answer the question, and the relevant basis
elements are mapped back.

	m, _ := monomial.NewMonoid(monomial.DegRevLex(2), monomial.WithNames("x", "y"))
	r := poly.NewRing[*big.Rat](field.QQ, m)
	gens, _ := r.ParseList("x*y", "x^2")
	gb, _, _ := groebner.ComputeGBasis(r, gens)

A computation is single threaded. Separate computations may run in parallel
when they do not share a monoid that is still being built.
*/
package groebner
