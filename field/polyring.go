package field

type PolyRing[E any] interface {
	GetField() Ring[E]

	// compute c = a * scalar
	MulScalar(a *Polynomial[E], scalar E, c *Polynomial[E])

	// compute c = a * b
	MulPoly(a, b, c *Polynomial[E])
	// compute c = a + b
	AddPoly(a, b, c *Polynomial[E])
	// compute c = a - b
	SubPoly(a, b, c *Polynomial[E])

	// Creates quotient and remainder
	LongDiv(a, b *Polynomial[E]) (q *Polynomial[E], r *Polynomial[E]) // returns quotient, remainder

	// Extended Euclidean algorithm.
	PartialExtendedEuclidean(a, b *Polynomial[E], stopDegree int) (gcd, x, y *Polynomial[E])

	// Monic greatest common divisor, zero iff both are zero.
	GCD(a, b *Polynomial[E]) *Polynomial[E]
	Deriv(a *Polynomial[E]) *Polynomial[E]
	// Product of the distinct monic irreducible factors of a.
	SquareFreePart(a *Polynomial[E]) *Polynomial[E]
}

// DensePolyRing implements PolyRing over a coefficient field.
type DensePolyRing[E any] struct {
	f Ring[E]
}

// NewDensePolyRing constructs a ring over the provided coefficient field.
func NewDensePolyRing[E any](f Ring[E]) *DensePolyRing[E] { return &DensePolyRing[E]{f: f} }

func (r *DensePolyRing[E]) GetField() Ring[E] { return r.f }

// ---------- utilities ----------

func ensureLen[E any](c *Polynomial[E], n int) {
	if len(c.inner) < n {
		tmp := make([]E, n)
		copy(tmp, c.inner)
		c.inner = tmp
	} else {
		c.inner = c.inner[:n]
	}
}

// trimTrailingZeros keeps at least one coefficient so the zero polynomial is [0].
func (r *DensePolyRing[E]) trimTrailingZeros(p *Polynomial[E]) {
	i := len(p.inner) - 1
	for i > 0 && r.f.IsZero(p.inner[i]) {
		i--
	}

	if i < 0 {
		p.inner = []E{r.f.Zero()}
		return
	}

	p.inner = p.inner[:i+1]
}

// ---------- Poly ops ----------
func (r *DensePolyRing[E]) MulScalar(a *Polynomial[E], scalar E, c *Polynomial[E]) {
	f := r.f

	ensureLen(c, len(a.inner))
	for i := range a.inner {
		c.inner[i] = f.Mul(a.inner[i], scalar)
	}

	c.f = f
	r.trimTrailingZeros(c)
}

func (r *DensePolyRing[E]) AddPoly(a, b, c *Polynomial[E]) {
	r.combine(a, b, c, r.f.Add)
}

func (r *DensePolyRing[E]) SubPoly(a, b, c *Polynomial[E]) {
	r.combine(a, b, c, r.f.Sub)
}

func (r *DensePolyRing[E]) combine(a, b, c *Polynomial[E], op func(x, y E) E) {
	alen := len(a.inner)
	blen := len(b.inner)
	n := max(alen, blen)

	// a or b may alias c, so write into a fresh slice.
	out := make([]E, n)

	var av, bv E
	for i := 0; i < n; i++ {
		if i < alen {
			av = a.inner[i]
		} else {
			av = r.f.Zero()
		}

		if i < blen {
			bv = b.inner[i]
		} else {
			bv = r.f.Zero()
		}

		out[i] = op(av, bv)
	}

	c.f = r.f
	c.inner = out
	r.trimTrailingZeros(c)
}

func (r *DensePolyRing[E]) MulPoly(a, b, c *Polynomial[E]) {
	if a.IsZero() || b.IsZero() {
		c.f = r.f
		c.inner = []E{r.f.Zero()}

		return
	}

	newLen := len(a.inner) + len(b.inner) - 1
	out := make([]E, newLen)
	for i := range out {
		out[i] = r.f.Zero()
	}

	// Perform schoolbook convolution: O(n*m).
	// out[i+j] += a[i] * b[j]
	for i := range a.inner {
		ai := a.inner[i]
		if r.f.IsZero(ai) {
			continue
		}

		for j := range b.inner {
			out[i+j] = r.f.Add(out[i+j], r.f.Mul(ai, b.inner[j]))
		}
	}

	// Write result into c (safe even if c==a or c==b because we used `out`).
	c.f = r.f
	c.inner = out

	r.trimTrailingZeros(c)
}

func (r *DensePolyRing[E]) monomialMultPoly(ai E, deg int, p *Polynomial[E]) *Polynomial[E] {
	fld := r.f
	prod := make([]E, len(p.inner)+deg)

	for i := range deg {
		prod[i] = fld.Zero()
	}

	for i := range p.inner {
		prod[i+deg] = fld.Mul(ai, p.inner[i])
	}

	return NewPolynomial(fld, prod)
}

// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard
//
// returns q, r such that a = q*b + r. Panics when b is zero.
func (r *DensePolyRing[E]) LongDiv(a, b *Polynomial[E]) (q *Polynomial[E], rem *Polynomial[E]) {
	fld := r.f

	n, m := a.Degree(), b.Degree()
	if m < 0 {
		panic(ErrDivByZero)
	}

	rem = a.Copy()
	if n < m {
		return makeConstantPoly(fld, fld.Zero()), rem
	}

	u, err := fld.Div(fld.One(), b.LeadCoeff())
	if err != nil {
		panic(err)
	}

	qInner := make([]E, n-m+1)

	for i := n - m; i >= 0; i-- {
		if rem.Degree() == m+i {
			qInner[i] = fld.Mul(rem.LeadCoeff(), u)
			r.SubPoly(rem, r.monomialMultPoly(qInner[i], i, b), rem)
		} else {
			qInner[i] = fld.Zero()
		}
	}

	r.trimTrailingZeros(rem)

	q = NewPolynomial(fld, qInner)
	q.removeLeadingZeroes()

	return q, rem
}

// returns r= gcd(a,b), x, y such that ax + by = r.
// where r.Degree() < stopDegree.
func (r *DensePolyRing[E]) PartialExtendedEuclidean(a, b *Polynomial[E], stopDegree int) (gcd, x, y *Polynomial[E]) {
	// Work on local copies ensuring inputs aren't mutated.
	A := a.Copy()
	B := b.Copy()

	// Invariants:
	//   A = x0*a_orig + y0*b_orig
	//   B = x1*a_orig + y1*b_orig
	x0 := makeConstantPoly(r.f, r.f.One())
	x1 := makeConstantPoly(r.f, r.f.Zero())
	y0 := makeConstantPoly(r.f, r.f.Zero())
	y1 := makeConstantPoly(r.f, r.f.One())

	// Reusable temporaries.
	tmp1 := &Polynomial[E]{f: r.f} // holds q*x1 or q*y1
	tmp2 := &Polynomial[E]{f: r.f} // holds x0 - q*x1 or y0 - q*y1

	for A.Degree() >= stopDegree {
		// If B == 0, can't divide further.
		if B.Degree() < 0 {
			break
		}

		// A = q*B + r
		q, rrem := r.LongDiv(A, B)
		A, B = B, rrem // GCD recursive step: gcd(A, B) = gcd(B,rrem)

		// following Bézout's identity:
		// x update: (x0, x1) = (x1, x0 - q*x1)
		r.MulPoly(q, x1, tmp1)    // tmp1 = q * x1
		r.SubPoly(x0, tmp1, tmp2) // tmp2 = x0 - q*x1
		x0, x1, tmp2 = x1, tmp2, x0

		// y update: (y0, y1) = (y1, y0 - q*y1)
		r.MulPoly(q, y1, tmp1)    // tmp1 = q * y1
		r.SubPoly(y0, tmp1, tmp2) // tmp2 = y0 - q*y1
		y0, y1, tmp2 = y1, tmp2, y0
	}

	// gcd = A, x = x0, y = y0
	return A, x0, y0
}

func (r *DensePolyRing[E]) Monic(a *Polynomial[E]) *Polynomial[E] {
	if a.IsZero() {
		return a.Copy()
	}

	inv, err := r.f.Div(r.f.One(), a.LeadCoeff())
	if err != nil {
		panic(err)
	}

	c := &Polynomial[E]{f: r.f}
	r.MulScalar(a, inv, c)

	return c
}

func (r *DensePolyRing[E]) GCD(a, b *Polynomial[E]) *Polynomial[E] {
	if a.IsZero() {
		return r.Monic(b)
	}

	if b.IsZero() {
		return r.Monic(a)
	}

	// running the euclidean loop down to the zero remainder.
	g, _, _ := r.PartialExtendedEuclidean(a, b, 0)
	if g.IsZero() {
		return makeConstantPoly(r.f, r.f.Zero())
	}

	return r.Monic(g)
}

func (r *DensePolyRing[E]) Deriv(a *Polynomial[E]) *Polynomial[E] {
	if len(a.inner) <= 1 {
		return makeConstantPoly(r.f, r.f.Zero())
	}

	out := make([]E, len(a.inner)-1)
	for i := 1; i < len(a.inner); i++ {
		out[i-1] = r.f.Mul(r.f.FromInt64(int64(i)), a.inner[i])
	}

	d := NewPolynomial(r.f, out)
	r.trimTrailingZeros(d)

	return d
}

/*
SquareFreePart returns the monic radical of a.

In characteristic p a factor whose multiplicity is divisible by p survives
the gcd with the derivative; that part is a polynomial in x^p and is handled
by taking p-th roots of prime field coefficients (the identity on FF_p).
*/
func (r *DensePolyRing[E]) SquareFreePart(a *Polynomial[E]) *Polynomial[E] {
	if a.Degree() <= 0 {
		if a.IsZero() {
			return a.Copy()
		}

		return makeConstantPoly(r.f, r.f.One())
	}

	d := r.Deriv(a)
	if d.IsZero() {
		return r.SquareFreePart(r.pthRoot(a))
	}

	g := r.GCD(a, d)
	q, _ := r.LongDiv(a, g)
	q = r.Monic(q)

	// strip from g every factor already in q.
	for {
		h := r.GCD(g, q)
		if h.Degree() <= 0 {
			break
		}

		g, _ = r.LongDiv(g, h)
	}

	if g.Degree() <= 0 {
		return q
	}

	rest := r.SquareFreePart(g)

	prod := &Polynomial[E]{f: r.f}
	r.MulPoly(q, rest, prod)

	return r.Monic(prod)
}

// pthRoot maps sum a_i x^(i*p) to sum a_i x^i.
func (r *DensePolyRing[E]) pthRoot(a *Polynomial[E]) *Polynomial[E] {
	p := int(r.f.Characteristic())
	if p == 0 {
		panic("zero derivative of a non-constant polynomial in characteristic 0")
	}

	out := make([]E, a.Degree()/p+1)
	for i := range out {
		out[i] = a.Coeff(i * p)
	}

	return NewPolynomial(r.f, out)
}

// PolyProductMonicNegRoots computes \prod (x - r_i).
func PolyProductMonicNegRoots[E any](f Ring[E], roots []E) *Polynomial[E] {
	n := len(roots)
	if n == 0 {
		return makeConstantPoly(f, f.One())
	}

	coeffs := make([]E, n+1)
	for i := range coeffs {
		coeffs[i] = f.Zero()
	}
	coeffs[0] = f.One()

	deg := 0
	for _, r := range roots {
		neg := f.Neg(r) // -r
		coeffs[deg+1] = f.Zero()
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = f.Add(coeffs[j+1], coeffs[j])
			// new[j]   += old[j] * (-r)
			coeffs[j] = f.Mul(coeffs[j], neg)
		}
		deg++
	}

	return &Polynomial[E]{f: f, inner: coeffs}
}
