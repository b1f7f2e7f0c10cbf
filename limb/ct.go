package limb

import "math/bits"

// Choice is a single-bit condition, 0 or 1, produced and consumed by the
// constant-time selectors. Using a dedicated type keeps secret-dependent
// conditions out of ordinary if statements: a Choice is turned into a full
// limb mask, never into a branch.
type Choice Word

// Not returns the opposite choice.
func (c Choice) Not() Choice { return c ^ 1 }

// mask expands c into an all-ones (c == 1) or all-zeros (c == 0) word.
func (c Choice) mask() Word { return -Word(c) }

// Select returns x when on == 1 and y when on == 0, without branching.
func Select(on Choice, x, y Word) Word {
	return y ^ (on.mask() & (y ^ x))
}

// Eq returns 1 when x == y and 0 otherwise, in constant time.
func Eq(x, y Word) Choice {
	d := uint(x ^ y)
	// d|-d has its top bit set unless d == 0.
	return Choice((^(d | -d)) >> (Bits - 1))
}

// LtWord returns 1 when x < y and 0 otherwise, in constant time.
func LtWord(x, y Word) Choice {
	_, borrow := bits.Sub(uint(x), uint(y), 0)
	return Choice(borrow)
}

// CondAssign sets v = u when on == 1 and leaves v unchanged when on == 0,
// reading and writing every limb either way.
func (v Vector) CondAssign(on Choice, u Vector) {
	checkLen(v, u)
	m := on.mask()
	for i := range v {
		v[i] ^= m & (v[i] ^ u[i])
	}
}

// Equal returns 1 when v and u hold the same value, in constant time.
// The vectors must have the same length.
func (v Vector) Equal(u Vector) Choice {
	checkLen(v, u)
	var acc Word
	for i := range v {
		acc |= v[i] ^ u[i]
	}
	return Eq(acc, 0)
}

// IsZero returns 1 when v's value is zero, in constant time.
func (v Vector) IsZero() Choice {
	var acc Word
	for i := range v {
		acc |= v[i]
	}
	return Eq(acc, 0)
}

// Lt returns 1 when v's value is strictly less than u's, computed as the
// final borrow of v − u with no early exit. The vectors must have the same
// length.
func (v Vector) Lt(u Vector) Choice {
	checkLen(v, u)
	var borrow uint
	for i := range v {
		_, borrow = bits.Sub(uint(v[i]), uint(u[i]), borrow)
	}
	return Choice(borrow)
}
