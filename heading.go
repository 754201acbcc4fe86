package trk

import "math"

// Heading words store an angle as a signed 2^31-scaled fraction of pi, so
// the full int32 range spans one turn and arithmetic wraps naturally.

// HeadingAngle converts a stored heading word to radians in [-pi, pi).
func HeadingAngle(word int32) float64 {
	return float64(word) / (1 << 31) * math.Pi
}

// HeadingWord converts an angle in radians to a heading word. Angles are
// wrapped onto the int32 range; +pi maps to the same word as -pi.
func HeadingWord(rad float64) int32 {
	w := math.Round(rad / math.Pi * (1 << 31))
	// Fold onto one turn before narrowing.
	turn := math.Mod(w, 1<<32)
	if turn >= 1<<31 {
		turn -= 1 << 32
	} else if turn < -(1 << 31) {
		turn += 1 << 32
	}
	if turn == 1<<31 {
		turn = -(1 << 31)
	}
	return int32(turn)
}
