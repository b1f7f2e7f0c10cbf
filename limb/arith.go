package limb

import "math/bits"

// Add sets z = x + y and returns the outgoing carry. All three vectors
// must have the same length; z may alias x or y.
func (z Vector) Add(x, y Vector) Choice {
	checkLen(z, x, y)
	var carry uint
	for i := range z {
		var w uint
		w, carry = bits.Add(uint(x[i]), uint(y[i]), carry)
		z[i] = Word(w)
	}
	return Choice(carry)
}

// Sub sets z = x − y and returns the outgoing borrow. All three vectors
// must have the same length; z may alias x or y.
func (z Vector) Sub(x, y Vector) Choice {
	checkLen(z, x, y)
	var borrow uint
	for i := range z {
		var w uint
		w, borrow = bits.Sub(uint(x[i]), uint(y[i]), borrow)
		z[i] = Word(w)
	}
	return Choice(borrow)
}

// ShiftLeft1 doubles v in place and returns the shifted-out top bit.
func (v Vector) ShiftLeft1() Choice {
	var carry Word
	for i := range v {
		next := v[i] >> (Bits - 1)
		v[i] = v[i]<<1 | carry
		carry = next
	}
	return Choice(carry)
}

// SetBytes parses a big-endian buffer into v, left-padded: missing
// high-order bytes are zero. The buffer must fit, i.e.
// len(b) <= len(v)*Bytes; the caller checks that before calling. Every
// limb of v is overwritten.
func (v Vector) SetBytes(b []byte) {
	for i := range v {
		v[i] = 0
	}
	for j := range b {
		i := len(b) - 1 - j
		v[i/Bytes] |= Word(b[j]) << ((i % Bytes) * 8)
	}
}

// PutBytes serializes v as a big-endian buffer, left-padding with zero
// bytes when dst is longer than v's minimal encoding. Exactly len(dst)
// bytes are written; the caller guarantees that the value fits, i.e. that
// all bits of v above 8*len(dst) are zero.
func (v Vector) PutBytes(dst []byte) {
	for j := range dst {
		i := len(dst) - 1 - j
		k := i / Bytes
		var b byte
		if k < len(v) {
			b = byte(v[k] >> ((i % Bytes) * 8))
		}
		dst[j] = b
	}
}
