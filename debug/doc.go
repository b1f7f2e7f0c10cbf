// Package debug exposes the debug build flag and the defensive assertions
// used across bigmod packages. Build with the "debug" tag to turn the
// assertions on.
package debug
