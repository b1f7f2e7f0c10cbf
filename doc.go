// Package bigmod provides the fixed-width modular-arithmetic engine that
// underlies public-key and elliptic-curve operations: limb vectors, modulus
// descriptors, and the import/export and Montgomery-representation
// conversions every higher-level modular routine is built on.
//
// The package tree is organized as follows:
//   - limb: machine-word limb vectors and constant-time arithmetic primitives
//   - mod: modulus descriptors, byte import/export, Montgomery conversions
//   - config: build-time capability configuration
//
// Higher-level modular arithmetic (addition, multiplication, inversion,
// exponentiation) and elliptic-curve point operations are layered above this
// module and are not part of it.
package bigmod

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
