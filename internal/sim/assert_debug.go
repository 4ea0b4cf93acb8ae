//go:build orbitdebug

package sim

import "fmt"

// debugAssert panics on invariant violations in debug builds.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("sim: invariant violated: %s", msg))
	}
}
