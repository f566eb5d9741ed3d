package sit

import (
	"github.com/halvorsen/ivset"
	"github.com/halvorsen/ivset/sortutil"
)

// node is one pivot of the tree: a median endpoint plus the intervals
// containing it, kept in two sort orders, and the left/right subtrees
// of intervals entirely below/above the pivot.
type node[T any] struct {
	pivot T

	leftSorted  []ivset.Interval[T] // ascending by Low
	rightSorted []ivset.Interval[T] // descending by High

	left, right *node[T]
}

// Tree is a Static Interval Tree: a static, read-only interval
// collection (spec §4.4). The zero value is not usable; construct with
// New.
type Tree[T any] struct {
	cmp    func(a, b T) int
	root   *node[T]
	count  int
	sorted []ivset.Interval[T] // canonical order, cached at build time
}

// New builds a Tree from items, which need not be pre-sorted or
// deduplicated. cmp compares two endpoint values.
func New[T any](cmp func(a, b T) int, items []ivset.Interval[T]) *Tree[T] {
	t := &Tree[T]{cmp: cmp, count: len(items)}
	if len(items) == 0 {
		return t
	}

	t.sorted = make([]ivset.Interval[T], len(items))
	copy(t.sorted, items)
	sortutil.Sort(t.sorted, func(a, b ivset.Interval[T]) bool { return ivset.Less(cmp, a, b) })

	t.root = buildNode(cmp, t.sorted)
	return t
}

func buildNode[T any](cmp func(a, b T) int, items []ivset.Interval[T]) *node[T] {
	if len(items) == 0 {
		return nil
	}

	pivot := medianEndpoint(cmp, items)

	var here, left, right []ivset.Interval[T]
	for _, it := range items {
		switch {
		case containsPivot(cmp, it, pivot):
			here = append(here, it)
		case cmp(it.High, pivot) <= 0:
			left = append(left, it)
		default:
			right = append(right, it)
		}
	}

	// The median endpoint can land exactly on an excluded boundary no
	// interval actually contains — e.g. the sole open interval (5, 10)
	// has endpoints {5, 10}, neither of which it contains. When that
	// happens here stays empty and every item falls to the same side,
	// so recursing on that side would see the same unsplit set again
	// and never terminate. Stop splitting instead: keep every item at
	// this node. FindOverlaps falls back to an explicit overlap check
	// for this node's items rather than trusting the usual
	// every-item-contains-the-pivot invariant.
	if len(here) == 0 && (len(left) == len(items) || len(right) == len(items)) {
		here = items
		left, right = nil, nil
	}

	n := &node[T]{pivot: pivot}

	n.leftSorted = append([]ivset.Interval[T](nil), here...)
	sortutil.Sort(n.leftSorted, func(a, b ivset.Interval[T]) bool {
		if c := cmp(a.Low, b.Low); c != 0 {
			return c < 0
		}
		return ivset.Less(cmp, a, b)
	})

	n.rightSorted = append([]ivset.Interval[T](nil), here...)
	sortutil.Sort(n.rightSorted, func(a, b ivset.Interval[T]) bool {
		if c := cmp(a.High, b.High); c != 0 {
			return c > 0
		}
		return ivset.Less(cmp, a, b)
	})

	n.left = buildNode(cmp, left)
	n.right = buildNode(cmp, right)
	return n
}

// medianEndpoint picks the pivot as the median value among every Low
// and High endpoint in items (spec §4.4: "Pivot = median of endpoints
// of the input").
func medianEndpoint[T any](cmp func(a, b T) int, items []ivset.Interval[T]) T {
	endpoints := make([]T, 0, len(items)*2)
	for _, it := range items {
		endpoints = append(endpoints, it.Low, it.High)
	}
	sortutil.Sort(endpoints, func(a, b T) bool { return cmp(a, b) < 0 })
	return endpoints[len(endpoints)/2]
}

// containsPivot reports whether it contains the point pivot, honoring
// it's inclusion flags at the boundary.
func containsPivot[T any](cmp func(a, b T) int, it ivset.Interval[T], pivot T) bool {
	loOK := cmp(it.Low, pivot) < 0 || (cmp(it.Low, pivot) == 0 && it.LowIncluded)
	hiOK := cmp(pivot, it.High) < 0 || (cmp(pivot, it.High) == 0 && it.HighIncluded)
	return loOK && hiOK
}

// Count returns the number of intervals in the tree.
func (t *Tree[T]) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether Count() == 0.
func (t *Tree[T]) IsEmpty() bool { return t.Count() == 0 }

// Depth returns the tree's maximum depth (spec §4.4 supplement), 0 for
// an empty tree.
func (t *Tree[T]) Depth() int {
	if t == nil {
		return 0
	}
	return depth(t.root)
}

func depth[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	l, r := depth(n.left), depth(n.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Capabilities reports this index's capability flags (spec §9).
func (t *Tree[T]) Capabilities() ivset.Capabilities {
	return ivset.Capabilities{AllowsOverlaps: true, AllowsReferenceDuplicates: true, IsReadOnly: true}
}
