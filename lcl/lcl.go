package lcl

import (
	"github.com/halvorsen/ivset"
	"github.com/halvorsen/ivset/sortutil"
)

// List is a Layered Containment List: a static, read-only interval
// collection (spec §4.3). The zero value is not usable; construct with
// New.
type List[T any] struct {
	cmp   func(a, b T) int
	count int

	// intervalLayers[l] holds the intervals at layer l, in canonical
	// order. pointerLayers[l] has one more entry than intervalLayers[l]:
	// pointerLayers[l][i] is the start index, in intervalLayers[l+1], of
	// the run contained in intervalLayers[l][i]; pointerLayers[l][i+1]
	// (or the trailing sentinel, for the last real entry) is its end.
	intervalLayers [][]ivset.Interval[T]
	pointerLayers  [][]int
}

// New builds a List from items, which need not be pre-sorted or
// deduplicated. cmp compares two endpoint values.
func New[T any](cmp func(a, b T) int, items []ivset.Interval[T]) *List[T] {
	l := &List[T]{cmp: cmp}
	if len(items) == 0 {
		return l
	}

	sorted := make([]ivset.Interval[T], len(items))
	copy(sorted, items)
	sortutil.Sort(sorted, func(a, b ivset.Interval[T]) bool { return ivset.Less(cmp, a, b) })
	l.count = len(sorted)

	var stack []ivset.Interval[T]
	for _, item := range sorted {
		for len(stack) > 0 && !ivset.StrictlyContains(cmp, stack[len(stack)-1], item) {
			stack = stack[:len(stack)-1]
		}
		layer := len(stack)
		for len(l.intervalLayers) <= layer {
			l.intervalLayers = append(l.intervalLayers, nil)
			l.pointerLayers = append(l.pointerLayers, nil)
		}

		ptr := 0
		if layer+1 < len(l.intervalLayers) {
			ptr = len(l.intervalLayers[layer+1])
		}
		l.pointerLayers[layer] = append(l.pointerLayers[layer], ptr)
		l.intervalLayers[layer] = append(l.intervalLayers[layer], item)
		stack = append(stack, item)
	}

	for lvl := range l.intervalLayers {
		next := 0
		if lvl+1 < len(l.intervalLayers) {
			next = len(l.intervalLayers[lvl+1])
		}
		l.pointerLayers[lvl] = append(l.pointerLayers[lvl], next)
	}

	return l
}

// Count returns the number of intervals in the list.
func (l *List[T]) Count() int {
	if l == nil {
		return 0
	}
	return l.count
}

// IsEmpty reports whether Count() == 0.
func (l *List[T]) IsEmpty() bool { return l.Count() == 0 }

// Layers returns the number of layers built (spec §4.3 supplement, for
// diagnostics/tests).
func (l *List[T]) Layers() int {
	if l == nil {
		return 0
	}
	return len(l.intervalLayers)
}

// LayerSize returns the number of entries at layer lvl, or 0 if lvl is
// out of range.
func (l *List[T]) LayerSize(lvl int) int {
	if l == nil || lvl < 0 || lvl >= len(l.intervalLayers) {
		return 0
	}
	return len(l.intervalLayers[lvl])
}

// Capabilities reports this index's capability flags (spec §9).
func (l *List[T]) Capabilities() ivset.Capabilities {
	return ivset.Capabilities{AllowsOverlaps: true, AllowsReferenceDuplicates: true, IsReadOnly: true}
}
