package mod

import (
	"fmt"

	"github.com/minosgalanakis/bigmod/limb"
)

// montgomeryConstant computes R² mod N for R = 2^(n·W) by 2·n·W modular
// doublings of 1. No division is needed, and the sequence of operations
// depends only on the limb count, not on N's value. The returned vector is
// freshly allocated and owned by the descriptor it is attached to.
//
// The limb-count bound is re-checked here because this is the arithmetic
// that relies on the double-width headroom; violating it is a bug in the
// calling code, not an input error.
func montgomeryConstant(n limb.Vector) limb.Vector {
	if len(n) == 0 || len(n) > MaxLimbs {
		panic(fmt.Sprintf("mod: montgomery setup: limb count %d out of range [1, %d]", len(n), MaxLimbs))
	}
	rr := limb.NewVector(len(n))
	rr[0] = 1
	t := limb.NewVector(len(n))

	// Reduce the seed once so rr < N holds before the first doubling
	// (N = 1 is the only case where it does not).
	borrow := t.Sub(rr, n)
	rr.CondAssign(borrow.Not(), t)

	for i := 0; i < 2*len(n)*limb.Bits; i++ {
		// rr < N, so 2·rr < 2N: one masked subtraction reduces. The
		// shifted-out bit means 2·rr ≥ 2^(n·W) > N.
		carry := rr.ShiftLeft1()
		borrow := t.Sub(rr, n)
		rr.CondAssign(carry|borrow.Not(), t)
	}
	return rr
}

// ToMontgomery replaces x's value with x·R mod N, in place: a Montgomery
// multiplication of x by the precomputed R² constant. x must be a reduced
// plain-representation residue of m's limb count. The run time depends
// only on the limb count.
func (m *Modulus) ToMontgomery(x limb.Vector) error {
	if err := m.montOK(x); err != nil {
		return err
	}
	d := limb.NewVector(len(m.value))
	d.MontMul(x, m.rr, m.value, m.m0inv)
	copy(x, d)
	d.Wipe()
	return nil
}

// FromMontgomery replaces x's value with x·R⁻¹ mod N, in place: a
// Montgomery multiplication of x by 1, undoing ToMontgomery. The run time
// depends only on the limb count.
func (m *Modulus) FromMontgomery(x limb.Vector) error {
	if err := m.montOK(x); err != nil {
		return err
	}
	one := limb.NewVector(len(m.value))
	one[0] = 1
	d := limb.NewVector(len(m.value))
	d.MontMul(x, one, m.value, m.m0inv)
	copy(x, d)
	d.Wipe()
	return nil
}

func (m *Modulus) montOK(x limb.Vector) error {
	if err := m.structOK(); err != nil {
		return err
	}
	if m.rr == nil {
		return fmt.Errorf("%w: modulus has no montgomery constant", ErrInvalidInput)
	}
	if len(x) != len(m.value) {
		return fmt.Errorf("%w: operand has %d limbs, modulus has %d", ErrInvalidInput, len(x), len(m.value))
	}
	return nil
}
