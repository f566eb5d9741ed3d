package ibst

import "github.com/halvorsen/ivset"

const (
	red   = true
	black = false
)

// node is keyed by an endpoint value and carries the three interval
// reference sets spec §4.5 describes, plus the ±1 delta augmentation
// used to maintain the maximum number of overlapping intervals.
type node[T any] struct {
	key   T
	color bool

	less, equal, greater []*ivset.Interval[T]

	delta, deltaAfter int
	sum, max          int

	left, right *node[T]
}

// Tree is an Interval Binary Search Tree: a dynamic interval collection
// (spec §4.5). The zero value is not usable; construct with New.
type Tree[T any] struct {
	cmp     func(a, b T) int
	root    *node[T]
	members map[*ivset.Interval[T]]struct{}
}

// New constructs an empty Tree. cmp compares two endpoint values.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp, members: make(map[*ivset.Interval[T]]struct{})}
}

type path int

const (
	pathLow path = iota
	pathHigh
)

// Add inserts iv and returns true. Every call allocates a fresh
// reference for iv, so value-equal intervals added more than once are
// tracked as independent members (spec §3's allowsReferenceDuplicates).
func (t *Tree[T]) Add(iv ivset.Interval[T]) bool {
	store := new(ivset.Interval[T])
	*store = iv

	t.root = t.insertPath(t.root, store, iv.Low, iv.LowIncluded, pathLow)
	if t.cmp(iv.Low, iv.High) != 0 {
		t.root = t.insertPath(t.root, store, iv.High, iv.HighIncluded, pathHigh)
	} else {
		// A point interval's low and high coincide, so the high path
		// would retrace the exact same root-to-node descent as the low
		// path. Re-running insertPath is still correct (the equal-set
		// append is guarded against duplicates) and is what supplies the
		// high side's delta contribution at that shared node.
		t.root = t.insertPath(t.root, store, iv.High, iv.HighIncluded, pathHigh)
	}
	if t.root != nil {
		t.root.color = black
	}

	t.members[store] = struct{}{}
	t.recompute()
	return true
}

// insertPath descends toward key, creating the node if absent,
// applying the Less/Greater/Equal and delta/deltaAfter updates spec
// §4.5 describes along the way, then rebalances on the way back up.
func (t *Tree[T]) insertPath(n *node[T], store *ivset.Interval[T], key T, included bool, p path) *node[T] {
	if n == nil {
		nn := &node[T]{key: key, color: red}
		t.applyAtKey(nn, store, included, p)
		return nn
	}

	switch c := t.cmp(key, n.key); {
	case c < 0:
		if p == pathLow {
			n.less = appendRef(n.less, store)
		}
		n.left = t.insertPath(n.left, store, key, included, p)
	case c > 0:
		if p == pathHigh {
			n.greater = appendRef(n.greater, store)
		}
		n.right = t.insertPath(n.right, store, key, included, p)
	default:
		t.applyAtKey(n, store, included, p)
	}

	return fixUp(n)
}

// applyAtKey is the insertion-path's terminal step: the node whose key
// equals the path's target endpoint.
func (t *Tree[T]) applyAtKey(n *node[T], store *ivset.Interval[T], included bool, p path) {
	if included {
		n.equal = appendRef(n.equal, store)
	}
	switch p {
	case pathLow:
		if included {
			n.delta++
		} else {
			n.deltaAfter++
		}
	case pathHigh:
		if included {
			n.deltaAfter--
		} else {
			n.delta--
		}
	}
}

// Remove deletes one reference whose value equals iv, if any is
// present, and returns whether it found one. Node keys are never
// physically removed (see DESIGN.md): this only undoes the matched
// reference's delta contribution along its low and high paths and
// clears the reference from every node's Less/Equal/Greater sets (a
// whole-tree pass, since rotations may have copied it off those paths),
// which keeps deletion simple without a red-black delete-rebalance.
func (t *Tree[T]) Remove(iv ivset.Interval[T]) bool {
	var store *ivset.Interval[T]
	for ptr := range t.members {
		if ivset.Equal(t.cmp, *ptr, iv) {
			store = ptr
			break
		}
	}
	if store == nil {
		return false
	}
	delete(t.members, store)

	t.removePath(t.root, store, iv.Low, iv.LowIncluded, pathLow)
	if t.cmp(iv.Low, iv.High) != 0 {
		t.removePath(t.root, store, iv.High, iv.HighIncluded, pathHigh)
	} else {
		t.removePath(t.root, store, iv.High, iv.HighIncluded, pathHigh)
	}
	var scrub func(n *node[T])
	scrub = func(n *node[T]) {
		if n == nil {
			return
		}
		n.less = removeRef(n.less, store)
		n.equal = removeRef(n.equal, store)
		n.greater = removeRef(n.greater, store)
		scrub(n.left)
		scrub(n.right)
	}
	scrub(t.root)
	t.recompute()
	return true
}

func (t *Tree[T]) removePath(n *node[T], store *ivset.Interval[T], key T, included bool, p path) {
	if n == nil {
		return
	}
	switch c := t.cmp(key, n.key); {
	case c < 0:
		if p == pathLow {
			n.less = removeRef(n.less, store)
		}
		t.removePath(n.left, store, key, included, p)
	case c > 0:
		if p == pathHigh {
			n.greater = removeRef(n.greater, store)
		}
		t.removePath(n.right, store, key, included, p)
	default:
		n.equal = removeRef(n.equal, store)
		switch p {
		case pathLow:
			if included {
				n.delta--
			} else {
				n.deltaAfter--
			}
		case pathHigh:
			if included {
				n.deltaAfter++
			} else {
				n.delta++
			}
		}
	}
}

// Clear removes every member.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.members = make(map[*ivset.Interval[T]]struct{})
}

// Count returns the number of live members.
func (t *Tree[T]) Count() int {
	if t == nil {
		return 0
	}
	return len(t.members)
}

// IsEmpty reports whether Count() == 0.
func (t *Tree[T]) IsEmpty() bool { return t.Count() == 0 }

// MaximumOverlap returns the MNO, read directly off the augmented root
// (spec §4.5/§9).
func (t *Tree[T]) MaximumOverlap() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.max
}

// AllowsReferenceDuplicates reports true: every Add allocates its own
// reference (spec §6/§9 capability flag).
func (t *Tree[T]) AllowsReferenceDuplicates() bool { return true }

// Capabilities reports this index's capability flags (spec §9).
func (t *Tree[T]) Capabilities() ivset.Capabilities {
	return ivset.Capabilities{AllowsOverlaps: true, AllowsReferenceDuplicates: true, IsReadOnly: false}
}

func appendRef[T any](s []*ivset.Interval[T], v *ivset.Interval[T]) []*ivset.Interval[T] {
	if containsRef(s, v) {
		return s
	}
	return append(s, v)
}

func removeRef[T any](s []*ivset.Interval[T], v *ivset.Interval[T]) []*ivset.Interval[T] {
	for i, e := range s {
		if e == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func containsRef[T any](s []*ivset.Interval[T], v *ivset.Interval[T]) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func unionInto[T any](dst []*ivset.Interval[T], src []*ivset.Interval[T]) []*ivset.Interval[T] {
	for _, v := range src {
		dst = appendRef(dst, v)
	}
	return dst
}

func setMinus[T any](a, b []*ivset.Interval[T]) []*ivset.Interval[T] {
	var out []*ivset.Interval[T]
	for _, v := range a {
		if !containsRef(b, v) {
			out = append(out, v)
		}
	}
	return out
}

func isRed[T any](n *node[T]) bool { return n != nil && n.color == red }

func flipColors[T any](h *node[T]) {
	h.color = !h.color
	h.left.color = !h.left.color
	h.right.color = !h.right.color
}

func fixUp[T any](h *node[T]) *node[T] {
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	return h
}

// rotateLeft rotates root's right child up, transferring Less/Equal/
// Greater membership per spec §4.5's rotation rule so the per-node
// invariant survives the shape change.
func rotateLeft[T any](root *node[T]) *node[T] {
	x := root.right

	x.greater = unionInto(x.greater, root.greater)
	x.equal = unionInto(x.equal, root.greater)

	between := setMinus(x.less, root.less)
	root.greater = unionInto(root.greater, between)
	x.less = setMinus(x.less, between)

	root.equal = setMinus(root.equal, x.less)
	root.less = setMinus(root.less, x.less)

	root.right = x.left
	x.left = root
	x.color = root.color
	root.color = red
	return x
}

// rotateRight mirrors rotateLeft.
func rotateRight[T any](root *node[T]) *node[T] {
	x := root.left

	x.less = unionInto(x.less, root.less)
	x.equal = unionInto(x.equal, root.less)

	between := setMinus(x.greater, root.greater)
	root.less = unionInto(root.less, between)
	x.greater = setMinus(x.greater, between)

	root.equal = setMinus(root.equal, x.greater)
	root.greater = setMinus(root.greater, x.greater)

	root.left = x.right
	x.right = root
	x.color = root.color
	root.color = red
	return x
}

// recompute reaugments sum/max bottom-up over the whole tree. Spec
// §4.5 threads these incrementally through rotations for an O(log n)
// update; this module recomputes the whole tree after every mutation
// instead, trading that bound for a much simpler, easier-to-verify
// implementation (see DESIGN.md).
func (t *Tree[T]) recompute() {
	augment(t.root)
}

func augment[T any](n *node[T]) (sum, max int) {
	if n == nil {
		return 0, 0
	}
	lsum, lmax := augment(n.left)
	rsum, rmax := augment(n.right)

	n.sum = lsum + n.delta + n.deltaAfter + rsum

	m := lmax
	if v := lsum + n.delta; v > m {
		m = v
	}
	if v := lsum + n.delta + n.deltaAfter; v > m {
		m = v
	}
	if v := lsum + n.delta + n.deltaAfter + rmax; v > m {
		m = v
	}
	n.max = m

	return n.sum, n.max
}
