//go:build mgdebug

package quickmg

const debugChecks = true
