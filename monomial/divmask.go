package monomial

import (
	"math/big"
	"math/bits"
)

/*
DivMask is a 64-bit summary of an exponent vector.

If b divides a then mask(b) is a subset of mask(a); the converse does not
hold, so a failed MayDivide proves non-divisibility and a passed one still
needs the full exponent check.
*/
type DivMask uint64

// MayDivide is false when m's power product certainly does not divide other's.
func (m DivMask) MayDivide(other DivMask) bool {
	return m&^other == 0
}

func (m DivMask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// MaskRule selects how exponent vectors are summarised into a DivMask.
type MaskRule int

const (
	// EvenPowers gives each indeterminate 64/n bits and sets the first
	// ceil(e/2) of them.
	EvenPowers MaskRule = iota
	// SingleBitWrap sets bit i mod 64 when indeterminate i occurs.
	SingleBitWrap
	// NoMask always yields the empty mask, so every test passes to the
	// full exponent comparison.
	NoMask
)

func (r MaskRule) String() string {
	switch r {
	case EvenPowers:
		return "EvenPowers"
	case SingleBitWrap:
		return "SingleBitWrap"
	case NoMask:
		return "NoMask"
	}

	return "MaskRule(?)"
}

type masker struct {
	rule    MaskRule
	bitsPer int
}

func newMasker(rule MaskRule, n int) masker {
	k := 1
	if rule == EvenPowers && n > 0 && n <= 64 {
		k = 64 / n
	}

	return masker{rule: rule, bitsPer: k}
}

// bitsFor is the mask contribution of exponent e of indeterminate i.
func (mk masker) bitsFor(i int, e uint64) DivMask {
	if e == 0 {
		return 0
	}

	switch mk.rule {
	case SingleBitWrap:
		return 1 << (uint(i) % 64)
	case EvenPowers:
		if mk.bitsPer == 1 {
			return 1 << (uint(i) % 64)
		}

		count := min((e+1)/2, uint64(mk.bitsPer))

		return DivMask(((uint64(1) << count) - 1) << (uint(i * mk.bitsPer)))
	}

	return 0
}

func (mk masker) small(e []uint32) DivMask {
	if mk.rule == NoMask {
		return 0
	}

	var m DivMask
	for i, x := range e {
		m |= mk.bitsFor(i, uint64(x))
	}

	return m
}

func (mk masker) big(e []*big.Int) DivMask {
	if mk.rule == NoMask {
		return 0
	}

	// anything above 128 saturates every rule.
	var m DivMask
	for i, x := range e {
		v := uint64(128)
		if x.IsUint64() && x.Uint64() < v {
			v = x.Uint64()
		}

		m |= mk.bitsFor(i, v)
	}

	return m
}
