package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Wrapper for sorting that gives the indexes of a hypothetically sorted array.
// It is certainly slower than sorting the array directly, but it does not modify the input array.
type indexed[T constraints.Ordered] struct {
	Index []int
	Input []T
}

func (s indexed[T]) Len() int { return len(s.Index) }
func (s indexed[T]) Swap(i, j int) {
	s.Index[i], s.Index[j] = s.Index[j], s.Index[i]
}

func (s *indexed[T]) Init(input []T, size int) {
	s.Input = input
	s.Index = make([]int, size)
	for i := range s.Index {
		s.Index[i] = i
	}
}

// Smallest first version (adds the less function).
type indexedSf[T constraints.Ordered] struct {
	indexed[T]
}

func (s indexedSf[T]) Less(i, j int) bool { return s.Input[s.Index[i]] < s.Input[s.Index[j]] }

// Largest first version (adds the less function).
type indexedLf[T constraints.Ordered] struct {
	indexed[T]
}

func (s indexedLf[T]) Less(i, j int) bool { return s.Input[s.Index[i]] > s.Input[s.Index[j]] }

// Does not sort the input array, instead a newly allocated index array that represents the sorted order is returned.
// Smallest values first. Stable, so equal keys keep ascending index order.
func SortGiveIndexesSmallestFirst[T constraints.Ordered](input []T) []int {
	isf := indexedSf[T]{}
	isf.Init(input, len(input))
	sort.Stable(isf)
	return isf.Index
}

// Does not sort the input array, instead a newly allocated index array that represents the sorted order is returned.
// Largest values first.
func SortGiveIndexesLargestFirst[T constraints.Ordered](input []T) []int {
	ilf := indexedLf[T]{}
	ilf.Init(input, len(input))
	sort.Stable(ilf)
	return ilf.Index
}
