// Package sortutil is the in-place sort primitive every static builder
// in this module consumes (spec §1/§2: the core "only requires an
// in-place introsort primitive", supplied by the surrounding
// general-purpose collection library that is otherwise out of scope).
//
// It is a thin wrapper over the standard library's sort.Sort, which
// since Go 1.19 is itself a pattern-defeating quicksort — an introsort
// family member — so there is no reason for this module to carry its
// own sorting algorithm. See DESIGN.md for the "why stdlib, not a
// third-party sort package" note.
package sortutil

import "sort"

// byLess adapts a slice and a less function to sort.Interface.
type byLess[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (s byLess[T]) Len() int           { return len(s.items) }
func (s byLess[T]) Less(i, j int) bool { return s.less(s.items[i], s.items[j]) }
func (s byLess[T]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

// Sort sorts items in place according to less, which must impose a
// strict weak ordering.
func Sort[T any](items []T, less func(a, b T) bool) {
	sort.Sort(byLess[T]{items: items, less: less})
}

// Search is sort.Search, re-exported so callers only need to import
// this one package for every ordering primitive.
func Search(n int, f func(int) bool) int {
	return sort.Search(n, f)
}
