package ncl

import (
	"github.com/halvorsen/ivset"
	"github.com/halvorsen/ivset/sortutil"
)

// entry is one record in the flat backing array: an interval plus the
// (offset, length) of the section holding the intervals strictly
// contained in it. length == 0 means no sublist.
type entry[T any] struct {
	iv     ivset.Interval[T]
	offset int
	length int
}

// section names a contiguous run [offset, offset+length) in the shared
// entries slice.
type section struct {
	offset int
	length int
}

func (s section) empty() bool { return s.length == 0 }

// List is a Nested Containment List: a static, read-only interval
// collection (spec §4.2). The zero value is not usable; construct with
// New.
type List[T any] struct {
	cmp     func(a, b T) int
	entries []entry[T]
	top     section
	count   int
}

// New builds a List from items, which need not be pre-sorted or
// deduplicated — New clones and canonically sorts them first (spec
// §4.2 "Build"). cmp compares two endpoint values.
func New[T any](cmp func(a, b T) int, items []ivset.Interval[T]) *List[T] {
	l := &List[T]{cmp: cmp}
	if len(items) == 0 {
		return l
	}
	l.count = len(items)

	sorted := make([]ivset.Interval[T], len(items))
	copy(sorted, items)
	sortutil.Sort(sorted, func(a, b ivset.Interval[T]) bool { return ivset.Less(cmp, a, b) })

	l.entries = make([]entry[T], len(sorted))
	tail := len(sorted)
	l.top = l.buildSection(sorted, &tail)
	return l
}

// buildSection writes items (a maximal run that forms one containment
// level) into the suffix of the array region [0, *tail), shrinking
// *tail by this level's own entry count, then recurses for each item's
// contained run into whatever remains below the newly written block.
//
// items may include descendants of this level's own entries (any run
// following an entry that it strictly contains), so the room reserved
// here must be only the count of this level's own entries, not
// len(items) — the descendants get their own room carved out of *tail
// by the recursive calls below.
func (l *List[T]) buildSection(items []ivset.Interval[T], tail *int) section {
	n := len(items)

	m := 0
	for i := 0; i < n; {
		j := i + 1
		for j < n && ivset.StrictlyContains(l.cmp, items[i], items[j]) {
			j++
		}
		m++
		i = j
	}

	offset := *tail - m
	*tail = offset

	idx := offset
	i := 0
	for i < n {
		cur := items[i]
		j := i + 1
		for j < n && ivset.StrictlyContains(l.cmp, cur, items[j]) {
			j++
		}

		var sub section
		if j > i+1 {
			sub = l.buildSection(items[i+1:j], tail)
		}

		l.entries[idx] = entry[T]{iv: cur, offset: sub.offset, length: sub.length}
		idx++
		i = j
	}

	return section{offset: offset, length: m}
}

// Count returns the number of intervals in the list. This is the total
// count across every containment level, not just l.top.length (which
// is only the number of entries at the outermost level).
func (l *List[T]) Count() int {
	if l == nil {
		return 0
	}
	return l.count
}

// IsEmpty reports whether Count() == 0.
func (l *List[T]) IsEmpty() bool { return l.Count() == 0 }

// Capabilities reports this index's capability flags (spec §9).
func (l *List[T]) Capabilities() ivset.Capabilities {
	return ivset.Capabilities{AllowsOverlaps: true, AllowsReferenceDuplicates: true, IsReadOnly: true}
}
