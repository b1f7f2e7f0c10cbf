//go:build !debug

package debug


// Debug reports whether the debug build tag is set.
const Debug = false

// Assert does nothing in non-debug builds. With the debug build tag it
// panics if condition is false.
func Assert(condition bool, message ...string) {
}
