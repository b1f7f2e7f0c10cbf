package mod

import (
	"fmt"

	"github.com/minosgalanakis/bigmod/limb"
)

// Read imports a big-endian unsigned integer into dst as a reduced residue
// under m. The buffer is left-padded: high-order bytes missing from input
// are zero. dst must have at least m.Limbs() limbs; the first m.Limbs()
// limbs are fully overwritten, and limbs beyond them are left untouched.
//
// Read fails with ErrBufferTooSmall when input cannot fit in m.Limbs()
// limbs regardless of its value, and with ErrInvalidInput when the parsed
// value is not strictly below the modulus — a residue is always reduced.
// On error the destination is zeroed; no partial import survives.
//
// The reduction check is a constant-time borrow computation; control flow
// depends only on buffer and limb lengths.
func (m *Modulus) Read(dst limb.Vector, input []byte) error {
	if err := m.structOK(); err != nil {
		return err
	}
	if len(dst) < len(m.value) {
		return fmt.Errorf("%w: destination has %d limbs, modulus needs %d", ErrInvalidInput, len(dst), len(m.value))
	}
	x := dst[:len(m.value)]
	if len(input) > len(x)*limb.Bytes {
		return fmt.Errorf("%w: %d input bytes exceed %d-limb capacity", ErrBufferTooSmall, len(input), len(x))
	}
	x.SetBytes(input)
	if x.Lt(m.value) != 1 {
		x.Wipe()
		return fmt.Errorf("%w: value is not below the modulus", ErrInvalidInput)
	}
	return nil
}

// Write exports src as a big-endian unsigned integer of exactly
// len(output) bytes, left-padding with zero bytes. src must be a reduced
// residue of m's limb count, in whichever representation the caller is
// tracking; Write serializes the limbs as they are.
//
// Write fails with ErrBufferTooSmall when output is shorter than
// m.ByteLen(), the minimal width that can hold any residue. On success
// exactly len(output) bytes are written; the byte count never depends on
// src's value.
func (m *Modulus) Write(src limb.Vector, output []byte) error {
	if err := m.structOK(); err != nil {
		return err
	}
	if len(src) < len(m.value) {
		return fmt.Errorf("%w: source has %d limbs, modulus needs %d", ErrInvalidInput, len(src), len(m.value))
	}
	if len(output) < m.ByteLen() {
		return fmt.Errorf("%w: %d output bytes, modulus needs %d", ErrBufferTooSmall, len(output), m.ByteLen())
	}
	src[:len(m.value)].PutBytes(output)
	return nil
}
