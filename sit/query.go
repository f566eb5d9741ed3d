package sit

import "github.com/halvorsen/ivset"

// FindOverlapsPoint returns a cursor over every interval containing
// point.
func (t *Tree[T]) FindOverlapsPoint(point T) ivset.Cursor[T] {
	q := ivset.Interval[T]{Low: point, High: point, LowIncluded: true, HighIncluded: true}
	return t.FindOverlaps(q)
}

// FindOverlaps returns a cursor over every interval overlapping query
// (spec §4.4 "Query", generalized from a single stabbed point to a
// range: a query entirely left or right of a node's pivot only
// descends that side; a query spanning the pivot emits the node's
// entries that overlap the query and descends both sides).
func (t *Tree[T]) FindOverlaps(query ivset.Interval[T]) ivset.Cursor[T] {
	var stack []*node[T]
	if t.root != nil {
		stack = append(stack, t.root)
	}

	var pending []ivset.Interval[T]
	idx := 0

	next := func() (ivset.Interval[T], bool, error) {
		for {
			if idx < len(pending) {
				v := pending[idx]
				idx++
				return v, true, nil
			}
			if len(stack) == 0 {
				return ivset.Interval[T]{}, false, nil
			}
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			pending, idx = nil, 0

			cmpHigh := t.cmp(query.High, n.pivot)
			entirelyLeft := cmpHigh < 0 || (cmpHigh == 0 && !query.HighIncluded)
			cmpLow := t.cmp(query.Low, n.pivot)
			entirelyRight := cmpLow > 0 || (cmpLow == 0 && !query.LowIncluded)

			switch {
			case entirelyLeft:
				pending = scanLeft(t.cmp, n.leftSorted, query)
				if n.left != nil {
					stack = append(stack, n.left)
				}
			case entirelyRight:
				pending = scanRight(t.cmp, n.rightSorted, query)
				if n.right != nil {
					stack = append(stack, n.right)
				}
			default:
				// Ordinarily every entry in n.leftSorted contains the
				// pivot, and the pivot lies within query, so every
				// entry is guaranteed to overlap query without
				// checking. A node built from an unsplit degenerate
				// set (see buildNode) doesn't carry that guarantee, so
				// filter explicitly.
				pending = filterOverlaps(t.cmp, n.leftSorted, query)
				if n.left != nil {
					stack = append(stack, n.left)
				}
				if n.right != nil {
					stack = append(stack, n.right)
				}
			}
		}
	}

	return ivset.NewCursor(next)
}

// scanLeft scans leftSorted (ascending by Low) while an entry could
// still reach query, stopping as soon as one entry's Low passes beyond
// query.High — no later entry, having an even larger Low, can overlap
// either.
func scanLeft[T any](cmp func(a, b T) int, leftSorted []ivset.Interval[T], query ivset.Interval[T]) []ivset.Interval[T] {
	var out []ivset.Interval[T]
	for _, it := range leftSorted {
		if cmp(it.Low, query.High) > 0 {
			break
		}
		if ivset.Overlaps(cmp, it, query) {
			out = append(out, it)
		}
	}
	return out
}

// filterOverlaps returns the subset of items overlapping query, with no
// assumption about their order or relationship to a pivot.
func filterOverlaps[T any](cmp func(a, b T) int, items []ivset.Interval[T], query ivset.Interval[T]) []ivset.Interval[T] {
	var out []ivset.Interval[T]
	for _, it := range items {
		if ivset.Overlaps(cmp, it, query) {
			out = append(out, it)
		}
	}
	return out
}

// scanRight is scanLeft's mirror over rightSorted (descending by High).
func scanRight[T any](cmp func(a, b T) int, rightSorted []ivset.Interval[T], query ivset.Interval[T]) []ivset.Interval[T] {
	var out []ivset.Interval[T]
	for _, it := range rightSorted {
		if cmp(it.High, query.Low) < 0 {
			break
		}
		if ivset.Overlaps(cmp, it, query) {
			out = append(out, it)
		}
	}
	return out
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
// false if the tree is empty.
func (t *Tree[T]) Span() (ivset.Interval[T], bool) {
	if t.IsEmpty() {
		return ivset.Interval[T]{}, false
	}
	span, ok, _ := ivset.SpanOf(t.cmp, t.IterateSorted())
	return span, ok
}

// Gaps returns the maximal sub-intervals of cover not covered by any
// member (spec §4.7).
func (t *Tree[T]) Gaps(cover ivset.Interval[T]) ivset.Cursor[T] {
	c, _ := ivset.GapsOf(t.cmp, t.IterateSorted(), cover)
	return c
}

// Iterate returns a cursor over every member in an implementation-
// defined order: a preorder walk of the tree (a node's own items, then
// its left subtree, then its right subtree).
func (t *Tree[T]) Iterate() ivset.Cursor[T] {
	var stack []*node[T]
	if t.root != nil {
		stack = append(stack, t.root)
	}
	var pending []ivset.Interval[T]
	idx := 0

	next := func() (ivset.Interval[T], bool, error) {
		for {
			if idx < len(pending) {
				v := pending[idx]
				idx++
				return v, true, nil
			}
			if len(stack) == 0 {
				return ivset.Interval[T]{}, false, nil
			}
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
			pending, idx = n.leftSorted, 0
		}
	}

	return ivset.NewCursor(next)
}

// IterateSorted returns a cursor over every member in canonical order.
// The canonical-sorted copy made once at build time (to pick medians)
// is kept for exactly this purpose, so no tree walk or merge is needed.
func (t *Tree[T]) IterateSorted() ivset.Cursor[T] {
	i := 0
	return ivset.NewCursor(func() (ivset.Interval[T], bool, error) {
		if i >= len(t.sorted) {
			return ivset.Interval[T]{}, false, nil
		}
		v := t.sorted[i]
		i++
		return v, true, nil
	})
}
