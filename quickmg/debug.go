//go:build !mgdebug

package quickmg

// debugChecks enables contract assertions in Apply. Build with -tags mgdebug to turn them on.
const debugChecks = false
