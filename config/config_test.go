package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiresModularArithmetic(t *testing.T) {
	cases := []struct {
		name string
		set  Set
		want bool
	}{
		{"empty", NewSet(), false},
		{"symmetric only", NewSet(KeyTypeAES, AlgGCM, AlgSHA256, AlgHMAC), false},
		{"ecdsa", NewSet(AlgECDSA, AlgSHA256), true},
		{"ecdh", NewSet(AlgECDH, KeyTypeECCKeyPair), true},
		{"rsa", NewSet(KeyTypeRSAPublicKey, AlgRSAPSS), true},
		{"ffdh", NewSet(AlgFFDH, KeyTypeDHKeyPair), true},
		{"jpake", NewSet(AlgJPAKE), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.set.RequiresModularArithmetic())
		})
	}
}

func TestSetMembership(t *testing.T) {
	s := NewSet(AlgSHA256, AlgHMAC)
	assert.True(t, s.Has(AlgSHA256))
	assert.True(t, s.Has(AlgHMAC))
	assert.False(t, s.Has(AlgECDSA))
	assert.Equal(t, 2, s.Count())
}

func TestWithDoesNotMutate(t *testing.T) {
	base := NewSet(AlgSHA256)
	extended := base.With(AlgECDSA, AlgECDH)

	assert.False(t, base.Has(AlgECDSA))
	assert.False(t, base.RequiresModularArithmetic())
	assert.True(t, extended.Has(AlgECDSA))
	assert.True(t, extended.Has(AlgSHA256))
	assert.Equal(t, 3, extended.Count())
}

func TestZeroSet(t *testing.T) {
	var s Set
	assert.False(t, s.Has(AlgECDSA))
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.RequiresModularArithmetic())
	assert.Equal(t, "{}", s.String())
}

func TestString(t *testing.T) {
	s := NewSet(AlgECDSA)
	assert.Equal(t, "{ALG_ECDSA}", s.String())
	assert.Equal(t, "ALG_RSA_PSS", AlgRSAPSS.String())
	assert.Equal(t, "CAPABILITY_UNKNOWN", Capability(999).String())
}
