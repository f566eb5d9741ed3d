package dit

import "github.com/halvorsen/ivset"

const (
	red   = true
	black = false
)

// node holds one interval, keyed into the tree by its canonical order,
// plus the span of its whole subtree (spec §4.6).
type node[T any] struct {
	iv    ivset.Interval[T]
	color bool

	left, right *node[T]

	spanLow          T
	spanLowIncluded  bool
	spanHigh         T
	spanHighIncluded bool
}

// Tree is a Dynamic Interval Tree. The zero value is not usable;
// construct with New.
type Tree[T any] struct {
	cmp   func(a, b T) int
	root  *node[T]
	count int
}

// New constructs an empty Tree. cmp compares two endpoint values.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

func newNode[T any](iv ivset.Interval[T]) *node[T] {
	return &node[T]{
		iv:               iv,
		color:            red,
		spanLow:          iv.Low,
		spanLowIncluded:  iv.LowIncluded,
		spanHigh:         iv.High,
		spanHighIncluded: iv.HighIncluded,
	}
}

// Add inserts iv, returning true iff it was not already present
// (canonical-order equality). A value-equal interval already present
// is left untouched and Add returns false.
func (t *Tree[T]) Add(iv ivset.Interval[T]) bool {
	var inserted bool
	t.root, inserted = t.insert(t.root, iv)
	if t.root != nil {
		t.root.color = black
	}
	if inserted {
		t.count++
	}
	return inserted
}

func (t *Tree[T]) insert(n *node[T], iv ivset.Interval[T]) (*node[T], bool) {
	if n == nil {
		return newNode(iv), true
	}

	var inserted bool
	switch c := ivset.Canonical(t.cmp, iv, n.iv); {
	case c < 0:
		n.left, inserted = t.insert(n.left, iv)
	case c > 0:
		n.right, inserted = t.insert(n.right, iv)
	default:
		return n, false
	}

	n = fixUp(t.cmp, n)
	return n, inserted
}

// Remove deletes iv if a canonical-order-equal interval is present, and
// reports whether it was. Rather than an in-place red-black delete,
// this collects every surviving interval in sorted order and rebuilds
// the tree by re-inserting them — a much smaller surface to get right
// without a compiler to check rotations against (see DESIGN.md).
func (t *Tree[T]) Remove(iv ivset.Interval[T]) bool {
	if t.root == nil {
		return false
	}

	found := false
	var survivors []ivset.Interval[T]
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		if !found && ivset.Equal(t.cmp, n.iv, iv) {
			found = true
		} else {
			survivors = append(survivors, n.iv)
		}
		walk(n.right)
	}
	walk(t.root)

	if !found {
		return false
	}

	t.root, t.count = nil, 0
	for _, it := range survivors {
		t.Add(it)
	}
	return true
}

// Clear removes every member.
func (t *Tree[T]) Clear() {
	t.root, t.count = nil, 0
}

// Count returns the number of members.
func (t *Tree[T]) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether Count() == 0.
func (t *Tree[T]) IsEmpty() bool { return t.Count() == 0 }

// MaximumOverlap returns the MNO: the largest number of members sharing
// any single point. Spec §4.6 augments subtree MNO incrementally the
// same way ibst does; this module instead computes it on demand: for
// each member m it counts the members that overlap m and start no later
// than m (CompareLow <= 0). All of those share the start of m, and the
// member of a maximal overlapping group that starts last counts the
// whole group, so the largest such count is the MNO — also when
// endpoints are excluded. This trades the tighter incremental bound for
// reusing the already-verified overlap query instead of a second
// augmentation scheme threaded through rotations.
func (t *Tree[T]) MaximumOverlap() int {
	best := 0
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		c, cur := 0, t.FindOverlaps(n.iv)
		for {
			other, ok, _ := cur.Next()
			if !ok {
				break
			}
			if ivset.CompareLow(t.cmp, other, n.iv) <= 0 {
				c++
			}
		}
		if c > best {
			best = c
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return best
}

func pointQuery[T any](p T) ivset.Interval[T] {
	return ivset.Interval[T]{Low: p, High: p, LowIncluded: true, HighIncluded: true}
}

// Clone deep-copies the tree, generalizing the teacher's treap Clone.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	return &Tree[T]{cmp: t.cmp, root: cloneNode(t.root), count: t.count}
}

func cloneNode[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	m := *n
	m.left = cloneNode(n.left)
	m.right = cloneNode(n.right)
	return &m
}

// Capabilities reports this index's capability flags (spec §9).
func (t *Tree[T]) Capabilities() ivset.Capabilities {
	return ivset.Capabilities{AllowsOverlaps: true, AllowsReferenceDuplicates: false, IsReadOnly: false}
}

func isRed[T any](n *node[T]) bool { return n != nil && n.color == red }

func flipColors[T any](h *node[T]) {
	h.color = !h.color
	h.left.color = !h.left.color
	h.right.color = !h.right.color
}

func rotateLeft[T any](cmp func(a, b T) int, h *node[T]) *node[T] {
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = red
	recalcSpan(cmp, h)
	recalcSpan(cmp, x)
	return x
}

func rotateRight[T any](cmp func(a, b T) int, h *node[T]) *node[T] {
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = red
	recalcSpan(cmp, h)
	recalcSpan(cmp, x)
	return x
}

func fixUp[T any](cmp func(a, b T) int, h *node[T]) *node[T] {
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(cmp, h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(cmp, h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	recalcSpan(cmp, h)
	return h
}

// recalcSpan recomputes n's subtree span from its own interval and the
// cached spans of its (already-correct) children.
func recalcSpan[T any](cmp func(a, b T) int, n *node[T]) {
	low := ivset.Interval[T]{Low: n.iv.Low, LowIncluded: n.iv.LowIncluded}
	high := ivset.Interval[T]{High: n.iv.High, HighIncluded: n.iv.HighIncluded}

	if n.left != nil {
		l := ivset.Interval[T]{Low: n.left.spanLow, LowIncluded: n.left.spanLowIncluded}
		if ivset.CompareLow(cmp, l, low) < 0 {
			low = l
		}
		h := ivset.Interval[T]{High: n.left.spanHigh, HighIncluded: n.left.spanHighIncluded}
		if ivset.CompareHigh(cmp, h, high) > 0 {
			high = h
		}
	}
	if n.right != nil {
		l := ivset.Interval[T]{Low: n.right.spanLow, LowIncluded: n.right.spanLowIncluded}
		if ivset.CompareLow(cmp, l, low) < 0 {
			low = l
		}
		h := ivset.Interval[T]{High: n.right.spanHigh, HighIncluded: n.right.spanHighIncluded}
		if ivset.CompareHigh(cmp, h, high) > 0 {
			high = h
		}
	}

	n.spanLow, n.spanLowIncluded = low.Low, low.LowIncluded
	n.spanHigh, n.spanHighIncluded = high.High, high.HighIncluded
}
