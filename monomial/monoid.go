/*
Package monomial implements power products (monomials) of a fixed number of
indeterminates: exponent vectors in small or arbitrary precision, term
orderings and division masks.
*/
package monomial

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrBadArg           = errors.New("bad argument")
	ErrExponentOverflow = errors.New("exponent overflow")
	ErrNotDivisible     = errors.New("power product is not divisible")
)

// MaxSmallExponent is the largest exponent a small monoid can be configured for.
const MaxSmallExponent = math.MaxInt32

/*
PP is a power product (monomial) owned by the Monoid that built it.

PPs are immutable values; every operation returns a fresh one. Mixing PPs of
different monoids is a programming error.

A PP is a handle on one word vector: the division mask, then the exponents
of a small monoid. A big monoid keeps its exponents behind b.
*/
type PP struct {
	w []uint32
	b *bigExps
}

type bigExps struct {
	xs []*big.Int
}

func (p PP) Mask() DivMask {
	if len(p.w) < maskWords {
		return 0
	}

	return DivMask(p.w[0]) | DivMask(p.w[1])<<32
}

func (p PP) exps() []uint32 {
	return p.w[maskWords:]
}

// Degree is a multi-degree, compared lexicographically.
type Degree []int64

func (d Degree) Cmp(o Degree) int {
	for i := range d {
		switch {
		case d[i] > o[i]:
			return 1
		case d[i] < o[i]:
			return -1
		}
	}

	return 0
}

func (d Degree) String() string {
	if len(d) == 1 {
		return strconv.FormatInt(d[0], 10)
	}

	parts := make([]string, len(d))
	for i, x := range d {
		parts[i] = strconv.FormatInt(x, 10)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

type options struct {
	names  []string
	big    bool
	maxExp uint32
	rule   MaskRule
}

type Option func(*options)

// WithNames sets the indeterminate names; default x0, x1, ...
func WithNames(names ...string) Option {
	return func(o *options) {
		o.names = append([]string(nil), names...)
	}
}

// WithBigExponents selects arbitrary precision exponents; such a monoid
// never reports ErrExponentOverflow.
func WithBigExponents() Option {
	return func(o *options) {
		o.big = true
	}
}

// WithMaxExponent caps small exponents. Panics outside [1, MaxSmallExponent].
func WithMaxExponent(max uint32) Option {
	if max == 0 || max > MaxSmallExponent {
		panic(fmt.Sprintf("max exponent %d out of range [1, %d]", max, MaxSmallExponent))
	}

	return func(o *options) {
		o.maxExp = max
	}
}

func WithDivMask(rule MaskRule) Option {
	if rule < EvenPowers || rule > NoMask {
		panic(fmt.Sprintf("unknown mask rule %d", rule))
	}

	return func(o *options) {
		o.rule = rule
	}
}

// Monoid owns power products of a fixed arity under a fixed ordering.
// It is safe for concurrent use.
type Monoid struct {
	ord    Ordering
	n      int
	names  []string
	index  map[string]int
	big    bool
	maxExp uint32
	mk     masker

	grading [][]int64
	st      store
	one     PP
}

// store is the exponent representation capability, small or big.
type store interface {
	fromInt64(e []int64) (PP, error)
	fromBig(e []*big.Int) (PP, error)
	exponent(a PP, i int) *big.Int
	isZeroAt(a PP, i int) bool

	mul(a, b PP) (PP, error)
	// mulAll multiplies a by every b, checking all before building any.
	mulAll(a PP, bs []PP) ([]PP, error)
	pack(pps []PP)
	// div assumes b divides a.
	div(a, b PP) PP
	colon(a, b PP) PP
	gcd(a, b PP) PP
	lcm(a, b PP) PP
	// divides reports whether b divides a.
	divides(a, b PP) bool

	cmp(a, b PP) int
	equal(a, b PP) bool
	isOne(a PP) bool

	stdDeg(a PP) int64
	dot(a PP, w []int64) (int64, error)

	// radical clips every exponent to 1.
	radical(a PP) PP
	// project zeroes the exponents of the indeterminates keep rejects.
	project(a PP, keep func(i int) bool) PP
}

func NewMonoid(ord Ordering, opts ...Option) (*Monoid, error) {
	if ord == nil {
		return nil, fmt.Errorf("%w: nil ordering", ErrBadArg)
	}

	n := ord.NumIndets()
	o := options{maxExp: MaxSmallExponent, rule: EvenPowers}

	for _, opt := range opts {
		opt(&o)
	}

	if o.names == nil {
		o.names = make([]string, n)
		for i := range o.names {
			o.names[i] = "x" + strconv.Itoa(i)
		}
	}

	if len(o.names) != n {
		return nil, fmt.Errorf("%w: %d names for %d indeterminates", ErrBadArg, len(o.names), n)
	}

	index := make(map[string]int, n)
	for i, name := range o.names {
		if !validName(name) {
			return nil, fmt.Errorf("%w: invalid indeterminate name %q", ErrBadArg, name)
		}

		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("%w: duplicate indeterminate name %q", ErrBadArg, name)
		}

		index[name] = i
	}

	m := &Monoid{
		ord:    ord,
		n:      n,
		names:  o.names,
		index:  index,
		big:    o.big,
		maxExp: o.maxExp,
		mk:     newMasker(o.rule, n),
	}

	m.grading = ord.Matrix()[:ord.GradingDim()]

	if m.big {
		m.st = newBigStore(m)
	} else {
		m.st = newSmallStore(m)
	}

	one, err := m.st.fromInt64(make([]int64, n))
	if err != nil {
		return nil, err
	}

	m.one = one

	return m, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		if unicode.IsLetter(r) {
			continue
		}

		if i > 0 && (unicode.IsDigit(r) || r == '_') {
			continue
		}

		return false
	}

	return true
}

func (m *Monoid) Ordering() Ordering  { return m.ord }
func (m *Monoid) NumIndets() int      { return m.n }
func (m *Monoid) IsBig() bool         { return m.big }
func (m *Monoid) MaxExponent() uint32 { return m.maxExp }

// GradingDim is the length of the degrees returned by WDeg.
func (m *Monoid) GradingDim() int {
	return len(m.grading)
}

func (m *Monoid) MaskRule() MaskRule {
	return m.mk.rule
}

func (m *Monoid) Names() []string {
	return append([]string(nil), m.names...)
}

func (m *Monoid) IndetName(i int) string {
	m.checkIndex(i)

	return m.names[i]
}

// IndetIndex looks an indeterminate up by name.
func (m *Monoid) IndetIndex(name string) (int, bool) {
	i, ok := m.index[name]

	return i, ok
}

func (m *Monoid) checkIndex(i int) {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("indeterminate index %d out of range [0, %d)", i, m.n))
	}
}

func (m *Monoid) checkLen(k int) error {
	if k != m.n {
		return fmt.Errorf("%w: exponent vector of length %d, want %d", ErrBadArg, k, m.n)
	}

	return nil
}

// New builds the power product with the given exponents.
func (m *Monoid) New(exps []int64) (PP, error) {
	if err := m.checkLen(len(exps)); err != nil {
		return PP{}, err
	}

	return m.st.fromInt64(exps)
}

func (m *Monoid) NewBig(exps []*big.Int) (PP, error) {
	if err := m.checkLen(len(exps)); err != nil {
		return PP{}, err
	}

	return m.st.fromBig(exps)
}

func (m *Monoid) One() PP {
	return m.one
}

// Indet returns x_i and panics for an index out of range.
func (m *Monoid) Indet(i int) PP {
	p, err := m.IndetPower(i, 1)
	if err != nil {
		panic(err)
	}

	return p
}

func (m *Monoid) IndetPower(i int, d int64) (PP, error) {
	m.checkIndex(i)

	exps := make([]int64, m.n)
	exps[i] = d

	return m.st.fromInt64(exps)
}

// Mul returns a*b; on ErrExponentOverflow nothing was built.
func (m *Monoid) Mul(a, b PP) (PP, error) {
	return m.st.mul(a, b)
}

// MulAll returns a*b for every b in bs; the products share one allocation.
// On ErrExponentOverflow nothing was built.
func (m *Monoid) MulAll(a PP, bs []PP) ([]PP, error) {
	return m.st.mulAll(a, bs)
}

/*
Pack moves the power products in pps into one allocation sized for them,
replacing the entries in place. The products of a MulAll batch keep the
whole batch alive; packing the few that survive lets the rest go.
*/
func (m *Monoid) Pack(pps []PP) {
	m.st.pack(pps)
}

func (m *Monoid) Div(a, b PP) (PP, error) {
	if !m.IsDivisible(a, b) {
		return PP{}, ErrNotDivisible
	}

	return m.st.div(a, b), nil
}

// Colon returns a / gcd(a, b).
func (m *Monoid) Colon(a, b PP) PP {
	return m.st.colon(a, b)
}

func (m *Monoid) Gcd(a, b PP) PP {
	return m.st.gcd(a, b)
}

func (m *Monoid) Lcm(a, b PP) PP {
	return m.st.lcm(a, b)
}

// IsDivisible reports whether b divides a.
func (m *Monoid) IsDivisible(a, b PP) bool {
	if !b.Mask().MayDivide(a.Mask()) {
		return false
	}

	return m.st.divides(a, b)
}

func (m *Monoid) IsCoprime(a, b PP) bool {
	for i := 0; i < m.n; i++ {
		if !m.st.isZeroAt(a, i) && !m.st.isZeroAt(b, i) {
			return false
		}
	}

	return true
}

func (m *Monoid) IsOne(a PP) bool {
	return m.st.isOne(a)
}

func (m *Monoid) Equal(a, b PP) bool {
	return a.Mask() == b.Mask() && m.st.equal(a, b)
}

// Cmp returns -1, 0 or 1 as a is smaller than, equal to or larger than b.
func (m *Monoid) Cmp(a, b PP) int {
	return m.st.cmp(a, b)
}

// StdDeg is the sum of the exponents; it saturates at math.MaxInt64.
func (m *Monoid) StdDeg(a PP) int64 {
	return m.st.stdDeg(a)
}

// WDeg is the degree given by the grading rows of the ordering.
func (m *Monoid) WDeg(a PP) (Degree, error) {
	d := make(Degree, len(m.grading))
	for i, row := range m.grading {
		v, err := m.st.dot(a, row)
		if err != nil {
			return nil, err
		}

		d[i] = v
	}

	return d, nil
}

// WeightedDeg is the dot product of the exponents with w.
func (m *Monoid) WeightedDeg(a PP, w []int64) (int64, error) {
	if err := m.checkLen(len(w)); err != nil {
		return 0, err
	}

	return m.st.dot(a, w)
}

// Exponent returns the exponent of x_i in a.
func (m *Monoid) Exponent(a PP, i int) (int64, error) {
	m.checkIndex(i)

	if !m.big {
		return int64(a.exps()[i]), nil
	}

	x := a.b.xs[i]
	if !x.IsInt64() {
		return 0, fmt.Errorf("%w: exponent %s does not fit in an int64", ErrExponentOverflow, x)
	}

	return x.Int64(), nil
}

func (m *Monoid) Exponents(a PP) ([]int64, error) {
	out := make([]int64, m.n)
	for i := range out {
		x, err := m.Exponent(a, i)
		if err != nil {
			return nil, err
		}

		out[i] = x
	}

	return out, nil
}

func (m *Monoid) BigExponents(a PP) []*big.Int {
	out := make([]*big.Int, m.n)
	for i := range out {
		out[i] = m.st.exponent(a, i)
	}

	return out
}

// IndetPart returns x_i^(exponent of x_i in a).
func (m *Monoid) IndetPart(a PP, i int) PP {
	m.checkIndex(i)

	return m.st.project(a, func(j int) bool { return j == i })
}

// Without returns a with the exponents of the given indeterminates set to zero.
func (m *Monoid) Without(a PP, indets ...int) PP {
	drop := make(map[int]struct{}, len(indets))
	for _, i := range indets {
		m.checkIndex(i)
		drop[i] = struct{}{}
	}

	return m.st.project(a, func(j int) bool {
		_, ok := drop[j]
		return !ok
	})
}

// Support lists the indeterminates occurring in a, in increasing index order.
func (m *Monoid) Support(a PP) []int {
	var out []int
	for i := 0; i < m.n; i++ {
		if !m.st.isZeroAt(a, i) {
			out = append(out, i)
		}
	}

	return out
}

// IsIndetPower reports whether a = x_i^d with d > 0, and returns i.
func (m *Monoid) IsIndetPower(a PP) (int, bool) {
	supp := m.Support(a)
	if len(supp) != 1 {
		return -1, false
	}

	return supp[0], true
}

func (m *Monoid) IsSquareFree(a PP) bool {
	return m.Equal(a, m.Radical(a))
}

func (m *Monoid) Radical(a PP) PP {
	return m.st.radical(a)
}

/*
Embed maps a from the monoid from into m: x_i goes to x_(indexMap[i]).
A negative entry drops the indeterminate, which then must not occur in a.
*/
func (m *Monoid) Embed(from *Monoid, a PP, indexMap []int) (PP, error) {
	if len(indexMap) != from.n {
		return PP{}, fmt.Errorf("%w: index map of length %d for %d indeterminates", ErrBadArg, len(indexMap), from.n)
	}

	if !from.big && !m.big {
		ae := a.exps()

		exps := make([]int64, m.n)
		for i, j := range indexMap {
			if err := m.placeExponent(i, j, ae[i] == 0); err != nil {
				return PP{}, err
			}

			if j >= 0 {
				exps[j] += int64(ae[i])
			}
		}

		return m.st.fromInt64(exps)
	}

	exps := make([]*big.Int, m.n)
	for i := range exps {
		exps[i] = new(big.Int)
	}

	for i, j := range indexMap {
		x := from.st.exponent(a, i)
		if err := m.placeExponent(i, j, x.Sign() == 0); err != nil {
			return PP{}, err
		}

		if j >= 0 {
			exps[j].Add(exps[j], x)
		}
	}

	return m.st.fromBig(exps)
}

func (m *Monoid) placeExponent(i, j int, zero bool) error {
	if j >= m.n {
		return fmt.Errorf("%w: index map sends %d to %d, out of range", ErrBadArg, i, j)
	}

	if j < 0 && !zero {
		return fmt.Errorf("%w: dropped indeterminate %d occurs", ErrBadArg, i)
	}

	return nil
}

func (m *Monoid) String(a PP) string {
	if m.IsOne(a) {
		return "1"
	}

	bldr := strings.Builder{}
	for i := 0; i < m.n; i++ {
		if m.st.isZeroAt(a, i) {
			continue
		}

		if bldr.Len() > 0 {
			bldr.WriteByte('*')
		}

		bldr.WriteString(m.names[i])

		if x := m.st.exponent(a, i); !x.IsInt64() || x.Int64() != 1 {
			bldr.WriteByte('^')
			bldr.WriteString(x.String())
		}
	}

	return bldr.String()
}

// Describe prints the monoid, e.g. "[x, y, z] DegRevLex".
func (m *Monoid) Describe() string {
	return "[" + strings.Join(m.names, ", ") + "] " + m.ord.String()
}
