//go:build !race

package unguardedcounter

const raceEnabled = false
