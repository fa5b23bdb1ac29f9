// Package nanos provides integer-nanosecond fixed-point helpers for exact
// timing arithmetic. Durations are scaled to whole nanoseconds before any
// divisibility or GCD computation, so checks never depend on floating-point
// modulo behaviour near precision boundaries.
package nanos

import "math"

// PerSecond is the number of nanoseconds in one second.
const PerSecond = 1e9

// FromSeconds converts a duration in seconds to whole nanoseconds,
// rounding half away from zero.
func FromSeconds(s float64) int64 {
	return int64(math.Round(s * PerSecond))
}

// ToSeconds converts whole nanoseconds back to seconds.
func ToSeconds(n int64) float64 {
	return float64(n) / PerSecond
}

// IsMultiple reports whether d is an exact integer multiple of step.
// Both values are given in seconds and compared at nanosecond resolution.
// A zero or negative step never divides anything; a zero duration is a
// multiple of every step.
func IsMultiple(d, step float64) bool {
	stepNS := FromSeconds(step)
	if stepNS <= 0 {
		return false
	}

	dNS := FromSeconds(d)
	if dNS == 0 {
		return true
	}
	if dNS < 0 {
		return false
	}

	return dNS%stepNS == 0
}

// GCD returns the greatest common divisor of a and b.
// Negative inputs are treated by absolute value; GCD(0, b) == b.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// GCDAll returns the greatest common divisor of all positive durations in
// seconds, expressed in nanoseconds. Zero durations are skipped; the result
// is 0 when no positive duration is present.
func GCDAll(durations []float64) int64 {
	var g int64

	for _, d := range durations {
		n := FromSeconds(d)
		if n <= 0 {
			continue
		}

		g = GCD(g, n)
		if g == 1 {
			break
		}
	}

	return g
}
