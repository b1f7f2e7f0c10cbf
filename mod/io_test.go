package mod

import (
	"bytes"
	"math/big"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minosgalanakis/bigmod/limb"
)

func TestReadRejectsUnreducedValue(t *testing.T) {
	m, err := NewModulus([]limb.Word{0xFF}, Plain)
	require.NoError(t, err)
	dst := m.NewResidue()

	err = m.Read(dst, []byte{0xFF})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, limb.Vector{0}, dst, "failed import must leave no partial value")

	err = m.Read(dst, []byte{0xFE})
	require.NoError(t, err)
	assert.Equal(t, limb.Vector{0xFE}, dst)
}

func TestReadBufferTooSmall(t *testing.T) {
	m, err := NewModulus([]limb.Word{0xFF}, Plain)
	require.NoError(t, err)

	input := make([]byte, limb.Bytes+1)
	err = m.Read(m.NewResidue(), input)
	require.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestReadLeftPads(t *testing.T) {
	m, err := NewModulus([]limb.Word{1, 1}, Plain) // N = 2^W + 1
	require.NoError(t, err)
	dst := m.NewResidue()

	require.NoError(t, m.Read(dst, []byte{0x07}))
	assert.Equal(t, limb.Vector{7, 0}, dst)

	// empty buffer imports zero
	require.NoError(t, m.Read(dst, nil))
	assert.Equal(t, limb.Vector{0, 0}, dst)
}

func TestReadShortDestination(t *testing.T) {
	m, err := NewModulus([]limb.Word{1, 1}, Plain)
	require.NoError(t, err)
	err = m.Read(limb.NewVector(1), []byte{1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestWriteLengthBoundary(t *testing.T) {
	// N = 0x01FF: nine bits, two-byte minimal width
	m, err := NewModulus([]limb.Word{0x01FF}, Plain)
	require.NoError(t, err)
	require.Equal(t, 2, m.ByteLen())

	src := limb.Vector{0x01FE}

	err = m.Write(src, make([]byte, 1))
	require.ErrorIs(t, err, ErrBufferTooSmall)

	out := make([]byte, 2)
	require.NoError(t, m.Write(src, out))
	assert.Empty(t, cmp.Diff([]byte{0x01, 0xFE}, out))

	// longer buffers are left-padded with zero bytes
	out = make([]byte, 5)
	require.NoError(t, m.Write(src, out))
	assert.Empty(t, cmp.Diff([]byte{0x00, 0x00, 0x00, 0x01, 0xFE}, out))
}

func TestWriteAlwaysFillsBuffer(t *testing.T) {
	m, err := NewModulus([]limb.Word{0xFF}, Plain)
	require.NoError(t, err)

	out := bytes.Repeat([]byte{0xAA}, 4)
	require.NoError(t, m.Write(limb.Vector{0}, out))
	assert.Equal(t, []byte{0, 0, 0, 0}, out)
}

func TestByteRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("read(write(x)) == x", prop.ForAll(
		func(seed int64, extra uint8) bool {
			rng := rand.New(rand.NewSource(seed))

			// random modulus of varied bit length so both exact and
			// padded encodings are exercised
			bound := new(big.Int).Lsh(big.NewInt(1), uint(8+rng.Intn(3*limb.Bits)))
			nBig := new(big.Int).Rand(rng, bound)
			nBig.SetBit(nBig, 0, 1)
			if nBig.Cmp(big.NewInt(1)) <= 0 {
				return true
			}
			n := (nBig.BitLen() + limb.Bits - 1) / limb.Bits
			m, err := NewModulus(vecFromBig(n, nBig), Plain)
			if err != nil {
				return false
			}

			xBig := new(big.Int).Rand(rng, nBig)
			x := vecFromBig(n, xBig)

			// any length between the minimal width and the limb
			// capacity round-trips
			l := m.ByteLen() + int(extra%8)
			if max := n * limb.Bytes; l > max {
				l = max
			}
			out := make([]byte, l)
			if err := m.Write(x, out); err != nil {
				return false
			}
			back := m.NewResidue()
			if err := m.Read(back, out); err != nil {
				return false
			}
			return back.Equal(x) == 1
		},
		gen.Int64(),
		gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
