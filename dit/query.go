package dit

import "github.com/halvorsen/ivset"

// FindOverlapsPoint returns a cursor over every interval containing
// point.
func (t *Tree[T]) FindOverlapsPoint(point T) ivset.Cursor[T] {
	return t.FindOverlaps(pointQuery(point))
}

// FindOverlaps returns a lazy cursor over every interval overlapping
// query. A node's cached subtree span (spec §4.6) prunes whole
// subtrees that cannot possibly contain a match.
func (t *Tree[T]) FindOverlaps(query ivset.Interval[T]) ivset.Cursor[T] {
	var stack []*node[T]
	if t.root != nil && overlapsSpan(t.cmp, t.root, query) {
		stack = append(stack, t.root)
	}

	next := func() (ivset.Interval[T], bool, error) {
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.right != nil && overlapsSpan(t.cmp, n.right, query) {
				stack = append(stack, n.right)
			}
			if n.left != nil && overlapsSpan(t.cmp, n.left, query) {
				stack = append(stack, n.left)
			}
			if ivset.Overlaps(t.cmp, n.iv, query) {
				return n.iv, true, nil
			}
		}
		return ivset.Interval[T]{}, false, nil
	}

	return ivset.NewCursor(next)
}

func overlapsSpan[T any](cmp func(a, b T) int, n *node[T], query ivset.Interval[T]) bool {
	span := ivset.Interval[T]{Low: n.spanLow, High: n.spanHigh, LowIncluded: n.spanLowIncluded, HighIncluded: n.spanHighIncluded}
	return ivset.Overlaps(cmp, span, query)
}

// FindOverlap reports whether any interval overlaps query, and returns
// one such interval (the witness) if so.
func (t *Tree[T]) FindOverlap(query ivset.Interval[T]) (ivset.Interval[T], bool) {
	iv, ok, _ := t.FindOverlaps(query).Next()
	return iv, ok
}

// CountOverlaps returns the number of intervals overlapping query.
func (t *Tree[T]) CountOverlaps(query ivset.Interval[T]) int {
	n := 0
	c := t.FindOverlaps(query)
	for {
		_, ok, _ := c.Next()
		if !ok {
			return n
		}
		n++
	}
}

// Span returns the smallest interval containing every member, and
// false if the tree is empty — read directly off the root's cached
// subtree span, the one query this augmentation answers in O(1).
func (t *Tree[T]) Span() (ivset.Interval[T], bool) {
	if t.root == nil {
		return ivset.Interval[T]{}, false
	}
	return ivset.Interval[T]{
		Low:          t.root.spanLow,
		High:         t.root.spanHigh,
		LowIncluded:  t.root.spanLowIncluded,
		HighIncluded: t.root.spanHighIncluded,
	}, true
}

// Gaps returns the maximal sub-intervals of cover not covered by any
// member (spec §4.7).
func (t *Tree[T]) Gaps(cover ivset.Interval[T]) ivset.Cursor[T] {
	c, _ := ivset.GapsOf(t.cmp, t.IterateSorted(), cover)
	return c
}

// IterateSorted returns a cursor over every member in canonical order:
// a plain in-order walk, since the tree is keyed by that same order.
func (t *Tree[T]) IterateSorted() ivset.Cursor[T] {
	var stack []*node[T]
	n := t.root

	next := func() (ivset.Interval[T], bool, error) {
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n = top.right
			return top.iv, true, nil
		}
		return ivset.Interval[T]{}, false, nil
	}

	return ivset.NewCursor(next)
}

// Iterate returns a cursor over every member. The tree's natural
// traversal order is already canonical, so Iterate is IterateSorted.
func (t *Tree[T]) Iterate() ivset.Cursor[T] {
	return t.IterateSorted()
}
