package mod

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/minosgalanakis/bigmod/limb"
)

// modulusWire is the serialized form of a Modulus. Only the value and the
// representation mode travel; the Montgomery constants are recomputed on
// load so that a crafted encoding can never attach a wrong constant to a
// descriptor.
type modulusWire struct {
	Value []limb.Word `cbor:"1,keyasint"`
	Rep   uint8       `cbor:"2,keyasint"`
}

// MarshalBinary encodes the modulus as deterministic CBOR.
func (m *Modulus) MarshalBinary() ([]byte, error) {
	if err := m.structOK(); err != nil {
		return nil, err
	}
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := enc.NewEncoder(buf).Encode(modulusWire{
		Value: m.value,
		Rep:   uint8(m.rep),
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a modulus serialized by MarshalBinary,
// rebuilding the descriptor through NewModulus: validation and Montgomery
// constant setup run exactly as they do for a freshly constructed modulus.
func (m *Modulus) UnmarshalBinary(data []byte) error {
	var w modulusWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(w.Value) == 0 || len(w.Value) > MaxLimbs {
		return fmt.Errorf("%w: modulus limb count %d out of range [1, %d]", ErrInvalidInput, len(w.Value), MaxLimbs)
	}
	decoded, err := NewModulus(w.Value, Representation(w.Rep))
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}
