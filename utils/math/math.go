package math

import "golang.org/x/exp/constraints"

func Min[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Between reports whether lo < v < hi.
func Between[T constraints.Integer](v, lo, hi T) bool {
	return lo < v && v < hi
}
