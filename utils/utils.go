package utils

import (
	"math"
	"math/bits"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is zero.
func GCD(a, b int64) int64 {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|, and false if it doesn't
// fit in an int64. LCM with zero is zero.
func LCM(a, b int64) (int64, bool) {
	a, b = Abs(a), Abs(b)
	if a == 0 || b == 0 {
		return 0, true
	}

	// Divide before multiplying, so the only overflow is a real one.
	hi, lo := bits.Mul64(uint64(a/GCD(a, b)), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}

func Abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Clamp returns n, constrained to [min, max].
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
