package utils

import "cmp"

// Clamp bounds v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampMin bounds v from below.
func ClampMin[T cmp.Ordered](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}
