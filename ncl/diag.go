package ncl

import (
	"fmt"
	"io"
	"strings"

	"github.com/halvorsen/ivset"
)

// Clone returns a deep copy of the list. Static structures are cheap to
// clone: the backing array is immutable once built, so Clone need only
// copy the slice itself.
func (l *List[T]) Clone() *List[T] {
	if l == nil {
		return nil
	}
	out := &List[T]{cmp: l.cmp, top: l.top, count: l.count}
	out.entries = append([]entry[T](nil), l.entries...)
	return out
}

// Fprint writes a parent/child tree diagram of the list to w, one
// interval per line, indented by containment depth. This is a debugging
// aid only: its exact layout is not part of any compatibility contract.
func (l *List[T]) Fprint(w io.Writer) error {
	if l == nil || l.top.empty() {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return l.fprintSection(w, l.top, 0)
}

func (l *List[T]) fprintSection(w io.Writer, sec section, depth int) error {
	indent := strings.Repeat("  ", depth)
	for i := sec.offset; i < sec.offset+sec.length; i++ {
		e := l.entries[i]
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, e.iv.String()); err != nil {
			return err
		}
		if e.length > 0 {
			if err := l.fprintSection(w, section{offset: e.offset, length: e.length}, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// Statistics returns the maximum containment depth and the mean/
// standard deviation of containment depth across every entry,
// generalizing the teacher's Tree.Statistics from node depth to
// array-section nesting depth (spec §5/SPEC_FULL.md §5).
func (l *List[T]) Statistics() (maxDepth int, average, deviation float64) {
	if l == nil || l.top.empty() {
		return 0, 0, 0
	}
	depths := make(map[int]int)
	l.countDepths(l.top, 0, depths)
	return ivset.StatisticsOf(depths)
}

func (l *List[T]) countDepths(sec section, depth int, depths map[int]int) {
	for i := sec.offset; i < sec.offset+sec.length; i++ {
		depths[depth]++
		e := l.entries[i]
		if e.length > 0 {
			l.countDepths(section{offset: e.offset, length: e.length}, depth+1, depths)
		}
	}
}
