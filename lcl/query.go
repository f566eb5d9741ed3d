package lcl

import (
	"github.com/halvorsen/ivset"
	"github.com/halvorsen/ivset/sortutil"
)

// bounds binary-searches layer [lower, upper) for the half-open run of
// entries overlapping query (spec §4.3 query steps 1-3): first is the
// smallest index with CompareLowHigh(query, entry) ≤ 0, end is the
// smallest index with CompareLowHigh(entry, query) > 0. ok is false if
// the run is empty.
func (l *List[T]) bounds(layer, lower, upper int, query ivset.Interval[T]) (first, end int, ok bool) {
	entries := l.intervalLayers[layer]

	firstRel := sortutil.Search(upper-lower, func(i int) bool {
		return ivset.CompareLowHigh(l.cmp, query, entries[lower+i]) <= 0
	})
	first = lower + firstRel
	if first >= upper {
		return 0, 0, false
	}

	endRel := sortutil.Search(upper-lower, func(i int) bool {
		return ivset.CompareLowHigh(l.cmp, entries[lower+i], query) > 0
	})
	end = lower + endRel
	if end <= first {
		return 0, 0, false
	}
	return first, end, true
}

// FindOverlapsPoint returns a cursor over every interval containing
// point.
func (l *List[T]) FindOverlapsPoint(point T) ivset.Cursor[T] {
	q := ivset.Interval[T]{Low: point, High: point, LowIncluded: true, HighIncluded: true}
	return l.FindOverlaps(q)
}

// FindOverlaps returns a cursor over every interval overlapping query.
// Each pull descends one layer at a time, re-binary-searching only the
// combined pointer range left by the previous layer's match (spec
// §4.3's "set (layer, lower, upper)" loop).
func (l *List[T]) FindOverlaps(query ivset.Interval[T]) ivset.Cursor[T] {
	layer, idx, end := -1, 0, 0
	nextLower, nextUpper := 0, 0
	if len(l.intervalLayers) > 0 {
		nextUpper = len(l.intervalLayers[0])
	}

	next := func() (ivset.Interval[T], bool, error) {
		for {
			if idx < end {
				e := l.intervalLayers[layer][idx]
				idx++
				return e, true, nil
			}
			layer++
			lower, upper := nextLower, nextUpper
			if layer >= len(l.intervalLayers) || lower >= upper {
				return ivset.Interval[T]{}, false, nil
			}
			first, last, ok := l.bounds(layer, lower, upper, query)
			if !ok {
				return ivset.Interval[T]{}, false, nil
			}
			idx, end = first, last
			nextLower, nextUpper = l.pointerLayers[layer][first], l.pointerLayers[layer][last]
		}
	}

	return ivset.NewCursor(next)
}

// FindOverlap reports whether any interval overlaps query, and returns
// one such interval (the witness) if so.
func (l *List[T]) FindOverlap(query ivset.Interval[T]) (ivset.Interval[T], bool) {
	iv, ok, _ := l.FindOverlaps(query).Next()
	return iv, ok
}

// CountOverlaps returns the number of intervals overlapping query,
// summing (last-first) per layer descent without materializing any
// result (spec §4.3 "Counts are computed by summing last − first per
// section, without materialising results").
func (l *List[T]) CountOverlaps(query ivset.Interval[T]) int {
	if len(l.intervalLayers) == 0 {
		return 0
	}
	count := 0
	layer := 0
	lower, upper := 0, len(l.intervalLayers[0])
	for lower < upper && layer < len(l.intervalLayers) {
		first, last, ok := l.bounds(layer, lower, upper, query)
		if !ok {
			break
		}
		count += last - first
		lower, upper = l.pointerLayers[layer][first], l.pointerLayers[layer][last]
		layer++
	}
	return count
}

// Span returns the smallest interval containing every member, and
// false if the list is empty.
func (l *List[T]) Span() (ivset.Interval[T], bool) {
	if l.IsEmpty() {
		return ivset.Interval[T]{}, false
	}
	span, ok, _ := ivset.SpanOf(l.cmp, l.IterateSorted())
	return span, ok
}

// Gaps returns the maximal sub-intervals of cover not covered by any
// member (spec §4.7).
func (l *List[T]) Gaps(cover ivset.Interval[T]) ivset.Cursor[T] {
	c, _ := ivset.GapsOf(l.cmp, l.IterateSorted(), cover)
	return c
}

// frame is one level of the explicit layer-descent stack IterateSorted
// uses to rebuild canonical order from the layered arrays (spec §4.3
// "explicit stack... merges the layers back into canonical order").
type frame struct {
	layer, idx, last int
}

// Iterate returns a cursor over every member in an implementation-
// defined order: here, layer-major (every layer-0 entry, then every
// layer-1 entry, and so on), the order the backing arrays are actually
// stored in.
func (l *List[T]) Iterate() ivset.Cursor[T] {
	layer, idx := 0, 0

	next := func() (ivset.Interval[T], bool, error) {
		for layer < len(l.intervalLayers) {
			if idx < len(l.intervalLayers[layer]) {
				e := l.intervalLayers[layer][idx]
				idx++
				return e, true, nil
			}
			layer++
			idx = 0
		}
		return ivset.Interval[T]{}, false, nil
	}

	return ivset.NewCursor(next)
}

// IterateSorted returns a cursor over every member in canonical order,
// by a preorder walk of the containment forest the layers encode:
// visit an entry, then the run it points to in the next layer, then
// its next sibling.
func (l *List[T]) IterateSorted() ivset.Cursor[T] {
	if l.IsEmpty() {
		return ivset.NewCursor[T](func() (ivset.Interval[T], bool, error) { return ivset.Interval[T]{}, false, nil })
	}

	stack := []frame{{layer: 0, idx: 0, last: len(l.intervalLayers[0]) - 1}}

	next := func() (ivset.Interval[T], bool, error) {
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.idx > top.last {
				stack = stack[:len(stack)-1]
				continue
			}
			e := l.intervalLayers[top.layer][top.idx]
			childLo := l.pointerLayers[top.layer][top.idx]
			childHi := l.pointerLayers[top.layer][top.idx+1] - 1
			top.idx++

			if childHi >= childLo {
				stack = append(stack, frame{layer: top.layer + 1, idx: childLo, last: childHi})
			}
			return e, true, nil
		}
		return ivset.Interval[T]{}, false, nil
	}

	return ivset.NewCursor(next)
}
