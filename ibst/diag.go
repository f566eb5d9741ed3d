package ibst

import (
	"fmt"
	"io"
	"strings"

	"github.com/halvorsen/ivset"
)

// Fprint writes a tree diagram of the index's LLRB structure to w, one
// node per line showing its key and Less/Equal/Greater set sizes,
// indented by depth. This is a debugging aid only: its exact layout is
// not part of any compatibility contract.
func (t *Tree[T]) Fprint(w io.Writer) error {
	if t == nil || t.root == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return fprintNode(w, t.root, 0)
}

func fprintNode[T any](w io.Writer, n *node[T], depth int) error {
	if n == nil {
		return nil
	}
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%skey=%v less=%d equal=%d greater=%d sum=%d max=%d\n",
		indent, n.key, len(n.less), len(n.equal), len(n.greater), n.sum, n.max); err != nil {
		return err
	}
	if err := fprintNode(w, n.left, depth+1); err != nil {
		return err
	}
	return fprintNode(w, n.right, depth+1)
}

// Statistics returns the maximum node depth and the mean/standard
// deviation of node depth across the LLRB structure, generalizing the
// teacher's Tree.Statistics (helpers.go) from its immutable treap to
// this index's low-path/high-path LLRB (spec §5/SPEC_FULL.md §5).
func (t *Tree[T]) Statistics() (maxDepth int, average, deviation float64) {
	if t == nil || t.root == nil {
		return 0, 0, 0
	}
	depths := make(map[int]int)
	countDepths(t.root, 0, depths)
	return ivset.StatisticsOf(depths)
}

func countDepths[T any](n *node[T], depth int, depths map[int]int) {
	if n == nil {
		return
	}
	depths[depth]++
	countDepths(n.left, depth+1, depths)
	countDepths(n.right, depth+1, depths)
}
