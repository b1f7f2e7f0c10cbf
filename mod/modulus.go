// Package mod implements the modulus descriptor of the modular-arithmetic
// engine and the operations defined on it: big-endian import and export of
// residues, Montgomery constant setup, and conversion of residues between
// plain and Montgomery representation.
//
// A Modulus is immutable after construction and safe to share across
// goroutines; residue vectors are owned by one operation at a time. The
// package tracks no representation state for residues — the caller knows
// which representation a given vector is in.
package mod

import (
	"errors"
	"fmt"

	"github.com/minosgalanakis/bigmod/limb"
	"github.com/minosgalanakis/bigmod/logger"
)

var (
	// ErrBufferTooSmall reports a caller-supplied byte buffer that cannot
	// hold a value of the modulus's width.
	ErrBufferTooSmall = errors.New("buffer too small for modulus width")
	// ErrInvalidInput reports a violated structural precondition: a
	// malformed modulus, an unreduced value, or a missing Montgomery
	// constant.
	ErrInvalidInput = errors.New("invalid input")
)

// Representation selects how residues under a Modulus are encoded.
type Representation uint8

const (
	// Plain is the canonical representation: a residue vector holds the
	// value itself.
	Plain Representation = iota + 1
	// Montgomery means residue vectors hold X·R mod N for R = 2^(n·W).
	// It requires an odd modulus.
	Montgomery
)

func (r Representation) String() string {
	switch r {
	case Plain:
		return "plain"
	case Montgomery:
		return "montgomery"
	default:
		return fmt.Sprintf("representation(%d)", uint8(r))
	}
}

const (
	// maxBignumLimbs is the widest multi-precision integer supported by
	// the engine as a whole.
	maxBignumLimbs = 10000
	// MaxLimbs bounds the limb count of a Modulus. It is half the
	// engine-wide maximum minus a safety margin, leaving room for the
	// double-width intermediates of Montgomery reduction.
	MaxLimbs = maxBignumLimbs/2 - 2
)

// Modulus describes a modulus N: its value, limb count and representation
// mode, plus the precomputed Montgomery constants when that mode is
// active. It is immutable after construction; the constants live and die
// with the descriptor.
type Modulus struct {
	value limb.Vector
	bits  int
	rep   Representation

	// Montgomery mode only. rr holds R² mod N; m0inv holds −N⁻¹ mod 2^W.
	rr    limb.Vector
	m0inv limb.Word
}

// NewModulus builds a modulus descriptor from a trusted plain-form value,
// least-significant limb first. The value is copied; the caller's slice is
// not retained. For the Montgomery representation the value must be odd,
// and R² mod N is computed here, amortized over the descriptor's lifetime.
//
// A zero or even-under-Montgomery value is an input error. A limb count of
// zero or above MaxLimbs is a bug in the calling code and panics.
func NewModulus(value []limb.Word, rep Representation) (*Modulus, error) {
	if len(value) == 0 || len(value) > MaxLimbs {
		panic(fmt.Sprintf("mod: modulus limb count %d out of range [1, %d]", len(value), MaxLimbs))
	}
	v := limb.Vector(value).Clone()
	if v.IsZero() == 1 {
		return nil, fmt.Errorf("%w: modulus is zero", ErrInvalidInput)
	}
	m := &Modulus{value: v, bits: v.BitLen(), rep: rep}
	switch rep {
	case Plain:
	case Montgomery:
		if v[0]&1 == 0 {
			return nil, fmt.Errorf("%w: montgomery representation requires an odd modulus", ErrInvalidInput)
		}
		m.rr = montgomeryConstant(v)
		m.m0inv = limb.MontInverse(v[0])
		log := logger.Logger()
		log.Debug().
			Int("limbs", len(v)).
			Int("bits", m.bits).
			Msg("montgomery constants computed")
	default:
		return nil, fmt.Errorf("%w: unknown representation %d", ErrInvalidInput, rep)
	}
	return m, nil
}

// Limbs returns the modulus's limb count.
func (m *Modulus) Limbs() int { return len(m.value) }

// BitLen returns the modulus's exact bit length.
func (m *Modulus) BitLen() int { return m.bits }

// ByteLen returns the minimal byte length that can encode any residue,
// ceil(BitLen/8).
func (m *Modulus) ByteLen() int { return (m.bits + 7) / 8 }

// Representation returns the representation mode residues under m are
// assumed to be in.
func (m *Modulus) Representation() Representation { return m.rep }

// Value returns a copy of the modulus value. The descriptor's own storage
// is never exposed.
func (m *Modulus) Value() limb.Vector { return m.value.Clone() }

// NewResidue returns a zero vector sized to hold residues under m.
func (m *Modulus) NewResidue() limb.Vector { return limb.NewVector(len(m.value)) }

// Wipe overwrites the descriptor's limb storage, including the Montgomery
// constant. The descriptor must not be used afterwards. A modulus is
// normally public; Wipe matters for descriptors derived from secret
// material.
func (m *Modulus) Wipe() {
	m.value.Wipe()
	m.rr.Wipe()
	m.m0inv = 0
	m.bits = 0
	m.rep = 0
}

// structOK rejects descriptors that are malformed or already wiped.
func (m *Modulus) structOK() error {
	if m == nil || len(m.value) == 0 || m.bits == 0 {
		return fmt.Errorf("%w: malformed modulus descriptor", ErrInvalidInput)
	}
	if m.rep != Plain && m.rep != Montgomery {
		return fmt.Errorf("%w: malformed modulus descriptor", ErrInvalidInput)
	}
	return nil
}
