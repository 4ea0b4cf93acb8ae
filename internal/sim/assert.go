//go:build !orbitdebug

package sim

// debugAssert is a no-op in release builds; invariant violations clamp
// or no-op instead of crashing the run. Build with -tags orbitdebug to
// turn violations into panics during development.
func debugAssert(bool, string) {}
