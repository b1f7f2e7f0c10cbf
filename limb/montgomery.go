package limb

import (
	"math/bits"

	"github.com/minosgalanakis/bigmod/debug"
)

func alias(x, y Vector) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}

// triple is a three-limb accumulator for the multiply-accumulate steps of
// Montgomery multiplication. Adding two full-width products and a carry
// never overflows three limbs.
type triple struct {
	w0, w1, w2 Word
}

func (t *triple) add(u triple) {
	w0, c := bits.Add(uint(t.w0), uint(u.w0), 0)
	w1, c := bits.Add(uint(t.w1), uint(u.w1), c)
	w2, _ := bits.Add(uint(t.w2), uint(u.w2), c)
	t.w0 = Word(w0)
	t.w1 = Word(w1)
	t.w2 = Word(w2)
}

// mulTriple returns the double-width product a*b as a triple. bits.Mul
// compiles to a single wide multiply and inlines.
func mulTriple(a, b Word) triple {
	hi, lo := bits.Mul(uint(a), uint(b))
	return triple{w0: Word(lo), w1: Word(hi)}
}

// MontInverse returns −m0⁻¹ mod 2^Bits for an odd m0, the per-limb
// reduction constant of Montgomery multiplication. Hensel lifting: m0 is
// its own inverse mod 8, and each step doubles the bits of precision, so
// five steps cover 64-bit words.
func MontInverse(m0 Word) Word {
	y := m0
	for i := 0; i < 5; i++ {
		y = y * (2 - m0*y)
	}
	return -y
}

// MontMul sets d = a·b·R⁻¹ mod m where R = 2^(len(m)*Bits), using the
// coarsely-integrated-operand-scanning form with a final masked
// subtraction. Requirements: all vectors have the same length, m is odd,
// m0inv = MontInverse(m[0]), a and b are below m, and d does not alias
// a, b or m. The run time depends only on the limb count.
func (d Vector) MontMul(a, b, m Vector, m0inv Word) {
	n := checkLen(d, a, b, m)
	debug.Assert(!alias(d, a) && !alias(d, b) && !alias(d, m), "MontMul: d aliases an operand")
	for i := range d {
		d[i] = 0
	}
	var hi Word
	for i := 0; i < n; i++ {
		f := (d[0] + a[i]*b[0]) * m0inv
		var c triple
		for j := 0; j < n; j++ {
			z := triple{w0: d[j]}
			z.add(mulTriple(a[i], b[j]))
			z.add(mulTriple(f, m[j]))
			z.add(c)
			if j > 0 {
				d[j-1] = z.w0
			}
			c.w0, c.w1 = z.w1, z.w2
		}
		z := triple{w0: hi}
		z.add(c)
		d[n-1] = z.w0
		hi = z.w1
	}
	// The accumulated value hi·R + d is below 2m; a single masked
	// subtraction brings it into [0, m).
	t := NewVector(n)
	borrow := t.Sub(d, m)
	d.CondAssign(Choice(hi)|borrow.Not(), t)
	t.Wipe()
}
