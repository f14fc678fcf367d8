package utils

import (
	"golang.org/x/exp/constraints"
)

func Max[T constraints.Ordered](x, y T) T {
	if x < y {
		return y
	}
	return x
}

func Min[T constraints.Ordered](x, y T) T {
	if y < x {
		return y
	}
	return x
}

func MaxSlice[T constraints.Ordered](slice []T) T {
	max := slice[0]
	for i := range slice {
		max = Max(max, slice[i])
	}
	return max
}

func MinSlice[T constraints.Ordered](slice []T) T {
	min := slice[0]
	for i := range slice {
		min = Min(min, slice[i])
	}
	return min
}
