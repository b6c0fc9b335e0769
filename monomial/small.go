package monomial

import (
	"fmt"
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

// smallStore keeps exponents as uint32 bounded by the monoid's MaxExponent,
// right after the mask words of each power product.
type smallStore struct {
	ord    Ordering
	maxExp uint32
	mk     masker
	width  int
}

func newSmallStore(m *Monoid) *smallStore {
	return &smallStore{
		ord:    m.ord,
		maxExp: m.maxExp,
		mk:     m.mk,
		width:  maskWords + m.n,
	}
}

func (s *smallStore) alloc() []uint32 {
	return make([]uint32, s.width)
}

// wrap fills in the mask of v, whose exponents are already set.
func (s *smallStore) wrap(v []uint32) PP {
	setMask(v, s.mk.small(v[maskWords:]))

	return PP{w: v}
}

func (s *smallStore) fromInt64(e []int64) (PP, error) {
	for _, x := range e {
		if x < 0 {
			return PP{}, fmt.Errorf("%w: negative exponent %d", ErrBadArg, x)
		}

		if x > int64(s.maxExp) {
			return PP{}, fmt.Errorf("%w: exponent %d exceeds %d", ErrExponentOverflow, x, s.maxExp)
		}
	}

	v := s.alloc()
	for i, x := range e {
		v[maskWords+i] = uint32(x)
	}

	return s.wrap(v), nil
}

func (s *smallStore) fromBig(e []*big.Int) (PP, error) {
	exps := make([]int64, len(e))
	for i, x := range e {
		if !x.IsInt64() {
			if x.Sign() < 0 {
				return PP{}, fmt.Errorf("%w: negative exponent %s", ErrBadArg, x)
			}

			return PP{}, fmt.Errorf("%w: exponent %s exceeds %d", ErrExponentOverflow, x, s.maxExp)
		}

		exps[i] = x.Int64()
	}

	return s.fromInt64(exps)
}

func (s *smallStore) exponent(a PP, i int) *big.Int {
	return new(big.Int).SetUint64(uint64(a.exps()[i]))
}

func (s *smallStore) isZeroAt(a PP, i int) bool {
	return a.exps()[i] == 0
}

func (s *smallStore) checkMul(ae, be []uint32) error {
	// both operands are at most 2^31-1, so the sums fit in a uint32.
	for i := range ae {
		if ae[i]+be[i] > s.maxExp {
			return fmt.Errorf("%w: exponent %d of indeterminate %d exceeds %d",
				ErrExponentOverflow, uint64(ae[i])+uint64(be[i]), i, s.maxExp)
		}
	}

	return nil
}

func (s *smallStore) mul(a, b PP) (PP, error) {
	ae, be := a.exps(), b.exps()
	if err := s.checkMul(ae, be); err != nil {
		return PP{}, err
	}

	v := s.alloc()
	for i := range ae {
		v[maskWords+i] = ae[i] + be[i]
	}

	return s.wrap(v), nil
}

func (s *smallStore) mulAll(a PP, bs []PP) ([]PP, error) {
	ae := a.exps()
	for _, b := range bs {
		if err := s.checkMul(ae, b.exps()); err != nil {
			return nil, err
		}
	}

	blk := newBlock(s.width, len(bs))

	out := make([]PP, len(bs))
	for k, b := range bs {
		v, be := blk.next(), b.exps()
		for i := range ae {
			v[maskWords+i] = ae[i] + be[i]
		}

		out[k] = s.wrap(v)
	}

	return out, nil
}

func (s *smallStore) pack(pps []PP) {
	blk := newBlock(s.width, len(pps))
	for k, p := range pps {
		v := blk.next()
		copy(v, p.w)
		pps[k] = PP{w: v}
	}
}

func (s *smallStore) div(a, b PP) PP {
	ae, be := a.exps(), b.exps()

	v := s.alloc()
	for i := range ae {
		v[maskWords+i] = ae[i] - be[i]
	}

	return s.wrap(v)
}

func (s *smallStore) colon(a, b PP) PP {
	ae, be := a.exps(), b.exps()

	v := s.alloc()
	for i := range ae {
		if ae[i] > be[i] {
			v[maskWords+i] = ae[i] - be[i]
		}
	}

	return s.wrap(v)
}

func (s *smallStore) gcd(a, b PP) PP {
	ae, be := a.exps(), b.exps()

	v := s.alloc()
	for i := range ae {
		v[maskWords+i] = min(ae[i], be[i])
	}

	return s.wrap(v)
}

func (s *smallStore) lcm(a, b PP) PP {
	ae, be := a.exps(), b.exps()

	v := s.alloc()
	for i := range ae {
		v[maskWords+i] = max(ae[i], be[i])
	}

	return s.wrap(v)
}

func (s *smallStore) divides(a, b PP) bool {
	ae, be := a.exps(), b.exps()
	for i := range ae {
		if be[i] > ae[i] {
			return false
		}
	}

	return true
}

func (s *smallStore) cmp(a, b PP) int {
	return s.ord.cmp(a.exps(), b.exps())
}

func (s *smallStore) equal(a, b PP) bool {
	ae, be := a.exps(), b.exps()
	for i := range ae {
		if ae[i] != be[i] {
			return false
		}
	}

	return true
}

func (s *smallStore) isOne(a PP) bool {
	for _, x := range a.exps() {
		if x != 0 {
			return false
		}
	}

	return true
}

func (s *smallStore) stdDeg(a PP) int64 {
	var d int64
	for _, x := range a.exps() {
		d += int64(x)
	}

	return d
}

func (s *smallStore) dot(a PP, w []int64) (int64, error) {
	return dot128(w, a.exps())
}

// dot128 accumulates the positive and negative parts in 128 bits and fails
// only when the final value does not fit in an int64.
func dot128(w []int64, e []uint32) (int64, error) {
	var pos, neg uint128.Uint128

	for i, x := range e {
		if x == 0 || w[i] == 0 {
			continue
		}

		if w[i] > 0 {
			pos = pos.Add(uint128.From64(uint64(w[i])).Mul64(uint64(x)))
		} else {
			mag := uint64(-(w[i] + 1)) + 1
			neg = neg.Add(uint128.From64(mag).Mul64(uint64(x)))
		}
	}

	if pos.Cmp(neg) >= 0 {
		d := pos.Sub(neg)
		if d.Cmp64(math.MaxInt64) > 0 {
			return 0, fmt.Errorf("%w: weighted degree %s exceeds int64", ErrExponentOverflow, d)
		}

		return int64(d.Lo), nil
	}

	d := neg.Sub(pos)
	if d.Cmp64(1<<63) > 0 {
		return 0, fmt.Errorf("%w: weighted degree -%s below int64", ErrExponentOverflow, d)
	}

	return int64(-d.Lo), nil
}

func (s *smallStore) radical(a PP) PP {
	ae := a.exps()

	v := s.alloc()
	for i := range ae {
		v[maskWords+i] = min(ae[i], 1)
	}

	return s.wrap(v)
}

func (s *smallStore) project(a PP, keep func(i int) bool) PP {
	ae := a.exps()

	v := s.alloc()
	for i := range ae {
		if keep(i) {
			v[maskWords+i] = ae[i]
		}
	}

	return s.wrap(v)
}
