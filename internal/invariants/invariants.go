// Package invariants provides debug-only assertions.
//
// Build with -tags invariants to turn them on. With the tag absent every check
// compiles away, so callers guard expensive checks with Enabled directly.
package invariants

import "fmt"

// Assert panics with the formatted message if cond is false and invariants
// are enabled.
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
