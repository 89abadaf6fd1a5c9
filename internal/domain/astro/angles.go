// Package astro provides the astronomical time and angle primitives the rest
// of the engine is built on: angle normalization, Julian Day conversion, the
// solar ecliptic longitude series and sidereal time. Everything here is a
// pure function over float64 degrees; no state, no I/O.
package astro

import (
	"math"
)

// DefaultPrecision is the rounding precision applied by NormalizeAngle.
const DefaultPrecision = 1e-6

// Mod is the true mathematical modulo: the result is always in [0, b) for
// positive b, even when a is negative. math.Mod truncates toward zero and
// would return -7 % 3 == -1; we need 2.
func Mod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}

// NormalizeAngle reduces a degree value into [0, 360) and rounds it to
// DefaultPrecision. Values arbitrarily far out of range are handled
// (1080 -> 0, -30 -> 330).
func NormalizeAngle(a float64) float64 {
	return NormalizeAngleTo(a, DefaultPrecision)
}

// NormalizeAngleTo reduces a degree value into [0, 360) and rounds to the
// given precision. Rounding can land exactly on 360, which folds back to 0 so
// the half-open invariant holds.
func NormalizeAngleTo(a, precision float64) float64 {
	a = Mod(a, 360)
	if precision > 0 {
		a = math.Round(a/precision) * precision
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngularDistance returns the shortest angular separation between two
// longitudes, in [0, 180].
func AngularDistance(a, b float64) float64 {
	return math.Abs(Mod(a-b+180, 360) - 180)
}

// ArcContains reports whether longitude l lies on the arc running from
// longitude `from` forward (counterclockwise) to longitude `to`. The test is
// piecewise to stay correct across the 360/0 boundary: when from < to the arc
// is the plain interval [from, to]; otherwise it wraps and l matches if it is
// in [from, 360) or [0, to].
func ArcContains(l, from, to float64) bool {
	l = Mod(l, 360)
	from = Mod(from, 360)
	to = Mod(to, 360)
	if from <= to {
		return l >= from && l <= to
	}
	return l >= from || l <= to
}
