package lcl

import (
	"fmt"
	"io"
	"strings"

	"github.com/halvorsen/ivset"
)

// Clone returns a deep copy of the list. The backing layer arrays are
// immutable once built, so Clone need only copy the slices themselves.
func (l *List[T]) Clone() *List[T] {
	if l == nil {
		return nil
	}
	out := &List[T]{cmp: l.cmp, count: l.count}
	out.intervalLayers = make([][]ivset.Interval[T], len(l.intervalLayers))
	out.pointerLayers = make([][]int, len(l.pointerLayers))
	for i := range l.intervalLayers {
		out.intervalLayers[i] = append([]ivset.Interval[T](nil), l.intervalLayers[i]...)
		out.pointerLayers[i] = append([]int(nil), l.pointerLayers[i]...)
	}
	return out
}

// Fprint writes a layer-by-layer diagram of the list to w, each layer's
// entries indented by its layer index. This is a debugging aid only:
// its exact layout is not part of any compatibility contract.
func (l *List[T]) Fprint(w io.Writer) error {
	if l == nil || l.IsEmpty() {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	for lvl, entries := range l.intervalLayers {
		indent := strings.Repeat("  ", lvl)
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, e.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Statistics returns the maximum layer index and the mean/standard
// deviation of layer index across every entry, generalizing the
// teacher's Tree.Statistics from node depth to layer depth (spec
// §5/SPEC_FULL.md §5: "NCL/LCL implement it over their array
// sections").
func (l *List[T]) Statistics() (maxDepth int, average, deviation float64) {
	if l == nil || l.IsEmpty() {
		return 0, 0, 0
	}
	depths := make(map[int]int, len(l.intervalLayers))
	for lvl, entries := range l.intervalLayers {
		depths[lvl] = len(entries)
	}
	return ivset.StatisticsOf(depths)
}
