package internal

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of values, using Heap's algorithm.
// The yielded slice is reused between iterations; clone it to keep it.
func Permutations[T any](values []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		perm := slices.Clone(values)
		count := make([]int, len(perm))

		if !yield(perm) {
			return
		}

		for n := 1; n < len(perm); {
			if count[n] < n {
				if n%2 == 0 {
					perm[0], perm[n] = perm[n], perm[0]
				} else {
					perm[count[n]], perm[n] = perm[n], perm[count[n]]
				}
				if !yield(perm) {
					return // Stop if the consumer stops
				}
				count[n]++
				n = 1
			} else {
				count[n] = 0
				n++
			}
		}
	}
}
