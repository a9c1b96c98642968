// Package geom holds the small amount of plane geometry shared by the
// movement, casting and projection code.
package geom

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// NormalizeAngle folds a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	// Adding Tau to a tiny negative remainder rounds up to exactly Tau.
	if a >= Tau {
		a = 0
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return math.Sqrt(dx*dx + dy*dy)
}
