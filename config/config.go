// Package config models the build-time capability configuration of the
// surrounding cryptographic library: which algorithms and key types a
// build compiles in. The capability set is an explicit value handed to
// whoever assembles a build, never ambient global state consulted from
// the arithmetic core.
//
// The core modular-arithmetic operations carry no toggle of their own:
// they are required whenever any capability that consumes modular
// arithmetic (RSA, elliptic-curve, Diffie-Hellman) is selected, and are
// orthogonal to the rest of the set.
package config

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Capability names one build-time feature toggle.
type Capability uint

const (
	AlgECDSA Capability = iota
	AlgDeterministicECDSA
	AlgECDH
	AlgFFDH
	AlgJPAKE
	AlgRSAOAEP
	AlgRSAPKCS1v15Crypt
	AlgRSAPKCS1v15Sign
	AlgRSAPSS
	AlgHMAC
	AlgHKDF
	AlgSHA256
	AlgSHA384
	AlgSHA512
	AlgGCM
	AlgChaCha20Poly1305
	KeyTypeECCKeyPair
	KeyTypeECCPublicKey
	KeyTypeDHKeyPair
	KeyTypeDHPublicKey
	KeyTypeRSAKeyPair
	KeyTypeRSAPublicKey
	KeyTypeAES
	KeyTypeChaCha20
	KeyTypeHMAC
	KeyTypeRawData

	numCapabilities
)

var capabilityNames = map[Capability]string{
	AlgECDSA:              "ALG_ECDSA",
	AlgDeterministicECDSA: "ALG_DETERMINISTIC_ECDSA",
	AlgECDH:               "ALG_ECDH",
	AlgFFDH:               "ALG_FFDH",
	AlgJPAKE:              "ALG_JPAKE",
	AlgRSAOAEP:            "ALG_RSA_OAEP",
	AlgRSAPKCS1v15Crypt:   "ALG_RSA_PKCS1V15_CRYPT",
	AlgRSAPKCS1v15Sign:    "ALG_RSA_PKCS1V15_SIGN",
	AlgRSAPSS:             "ALG_RSA_PSS",
	AlgHMAC:               "ALG_HMAC",
	AlgHKDF:               "ALG_HKDF",
	AlgSHA256:             "ALG_SHA_256",
	AlgSHA384:             "ALG_SHA_384",
	AlgSHA512:             "ALG_SHA_512",
	AlgGCM:                "ALG_GCM",
	AlgChaCha20Poly1305:   "ALG_CHACHA20_POLY1305",
	KeyTypeECCKeyPair:     "KEY_TYPE_ECC_KEY_PAIR",
	KeyTypeECCPublicKey:   "KEY_TYPE_ECC_PUBLIC_KEY",
	KeyTypeDHKeyPair:      "KEY_TYPE_DH_KEY_PAIR",
	KeyTypeDHPublicKey:    "KEY_TYPE_DH_PUBLIC_KEY",
	KeyTypeRSAKeyPair:     "KEY_TYPE_RSA_KEY_PAIR",
	KeyTypeRSAPublicKey:   "KEY_TYPE_RSA_PUBLIC_KEY",
	KeyTypeAES:            "KEY_TYPE_AES",
	KeyTypeChaCha20:       "KEY_TYPE_CHACHA20",
	KeyTypeHMAC:           "KEY_TYPE_HMAC",
	KeyTypeRawData:        "KEY_TYPE_RAW_DATA",
}

func (c Capability) String() string {
	if s, ok := capabilityNames[c]; ok {
		return s
	}
	return "CAPABILITY_UNKNOWN"
}

// modArithConsumers are the capabilities whose implementations are built
// on the modular-arithmetic engine.
var modArithConsumers = []Capability{
	AlgECDSA, AlgDeterministicECDSA, AlgECDH, AlgFFDH, AlgJPAKE,
	AlgRSAOAEP, AlgRSAPKCS1v15Crypt, AlgRSAPKCS1v15Sign, AlgRSAPSS,
	KeyTypeECCKeyPair, KeyTypeECCPublicKey,
	KeyTypeDHKeyPair, KeyTypeDHPublicKey,
	KeyTypeRSAKeyPair, KeyTypeRSAPublicKey,
}

// Set is an immutable collection of selected capabilities.
type Set struct {
	caps *bitset.BitSet
}

// NewSet returns a set with the given capabilities selected.
func NewSet(caps ...Capability) Set {
	s := Set{caps: bitset.New(uint(numCapabilities))}
	for _, c := range caps {
		s.caps.Set(uint(c))
	}
	return s
}

// With returns a copy of s with the given capabilities added; s itself is
// unchanged.
func (s Set) With(caps ...Capability) Set {
	out := Set{caps: s.caps.Clone()}
	for _, c := range caps {
		out.caps.Set(uint(c))
	}
	return out
}

// Has reports whether c is selected.
func (s Set) Has(c Capability) bool {
	return s.caps != nil && s.caps.Test(uint(c))
}

// Count returns the number of selected capabilities.
func (s Set) Count() int {
	if s.caps == nil {
		return 0
	}
	return int(s.caps.Count())
}

// RequiresModularArithmetic reports whether any selected capability
// consumes the modular-arithmetic engine, i.e. whether the engine must be
// compiled into a build with this configuration.
func (s Set) RequiresModularArithmetic() bool {
	for _, c := range modArithConsumers {
		if s.Has(c) {
			return true
		}
	}
	return false
}

func (s Set) String() string {
	if s.caps == nil {
		return "{}"
	}
	var names []string
	for c := Capability(0); c < numCapabilities; c++ {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	return "{" + strings.Join(names, " ") + "}"
}
