// Package limb implements the base numeric representation used by the
// modular-arithmetic engine: fixed-length vectors of machine-word limbs,
// least-significant limb first, together with the carry-propagating and
// constant-time primitives that higher layers are built on.
//
// A Vector has no sign and no dynamic length; its value is
// Σ v[i]·2^(i·Bits). Operations that combine vectors require equal lengths
// and enforce that at a single checked entry point. Unless a function's
// documentation says otherwise, its control flow depends only on limb
// counts, never on limb values.
package limb

import (
	"fmt"
	"math/bits"
)

// Word is one limb: an unsigned integer of the platform's natural width.
type Word uint

const (
	// Bits is the width of a Word in bits.
	Bits = bits.UintSize
	// Bytes is the width of a Word in bytes.
	Bytes = Bits / 8
)

// Vector is a fixed-length limb vector, least-significant limb first. The
// length is fixed at allocation; vectors are never resized.
type Vector []Word

// NewVector returns a zero-valued vector of n limbs.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	u := make(Vector, len(v))
	copy(u, v)
	return u
}

// Wipe overwrites every limb of v with zero. Use on vectors that held
// secret material before releasing them.
func (v Vector) Wipe() {
	for i := range v {
		v[i] = 0
	}
}

// BitLen returns the exact bit length of v's value. It is not constant
// time; call it only on public values such as a modulus.
func (v Vector) BitLen() int {
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] != 0 {
			return i*Bits + bits.Len(uint(v[i]))
		}
	}
	return 0
}

// checkLen verifies that all vectors have the same length and returns it.
// A mismatch is a bug in the calling code, not an input error.
func checkLen(v Vector, rest ...Vector) int {
	n := len(v)
	for _, u := range rest {
		if len(u) != n {
			panic(fmt.Sprintf("limb: vector length mismatch: %d != %d", len(u), n))
		}
	}
	return n
}
