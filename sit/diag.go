package sit

import (
	"fmt"
	"io"
	"strings"

	"github.com/halvorsen/ivset"
)

// Clone returns a deep copy of the tree. Static structures are cheap to
// clone: the node tree is immutable once built, so Clone only needs to
// copy nodes, not rebuild them.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	out := &Tree[T]{cmp: t.cmp, count: t.count}
	out.sorted = append([]ivset.Interval[T](nil), t.sorted...)
	out.root = cloneNode(t.root)
	return out
}

func cloneNode[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	out := &node[T]{pivot: n.pivot}
	out.leftSorted = append([]ivset.Interval[T](nil), n.leftSorted...)
	out.rightSorted = append([]ivset.Interval[T](nil), n.rightSorted...)
	out.left = cloneNode(n.left)
	out.right = cloneNode(n.right)
	return out
}

// Fprint writes a left/pivot/right tree diagram of the tree to w, one
// node per line, indented by depth. This is a debugging aid only: its
// exact layout is not part of any compatibility contract.
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
	if _, err := fmt.Fprintf(w, "%spivot=%v (%d here)\n", indent, n.pivot, len(n.leftSorted)); err != nil {
		return err
	}
	if err := fprintNode(w, n.left, depth+1); err != nil {
		return err
	}
	return fprintNode(w, n.right, depth+1)
}

// Statistics returns the maximum node depth and the mean/standard
// deviation of node depth weighted by how many intervals pivot at each
// node, generalizing the teacher's Tree.Statistics from LLRB node depth
// to this median-split tree's node depth (spec §5/SPEC_FULL.md §5).
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
	depths[depth] += len(n.leftSorted)
	countDepths(n.left, depth+1, depths)
	countDepths(n.right, depth+1, depths)
}
