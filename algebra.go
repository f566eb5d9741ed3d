package ivset

// This file is the single definition of interval comparison reused by
// every index in the module (spec §4.1). Nothing here allocates or
// recurses; every index builds its queries on top of these
// functions plus the caller-supplied endpoint comparator.

// CompareLowHigh compares a's low endpoint against b's high endpoint,
// the primitive spec §4.1 defines overlap in terms of:
//
//	c := cmp(a.Low, b.High)
//	if c != 0 { return c }
//	return 0 if (a.LowIncluded && b.HighIncluded) else +1
func CompareLowHigh[T any](cmp func(a, b T) int, a, b Interval[T]) int {
	c := cmp(a.Low, b.High)
	if c != 0 {
		return c
	}
	if a.LowIncluded && b.HighIncluded {
		return 0
	}
	return 1
}

// Overlaps reports whether a and b share at least one point, per §4.1:
//
//	a overlaps b iff CompareLowHigh(a,b) <= 0 && CompareLowHigh(b,a) <= 0
func Overlaps[T any](cmp func(a, b T) int, a, b Interval[T]) bool {
	return CompareLowHigh(cmp, a, b) <= 0 && CompareLowHigh(cmp, b, a) <= 0
}

// CompareLow orders two intervals by their low endpoint, with included
// endpoints preceding excluded ones at a tied low value (an included
// low starts "earlier" in the half-open sense).
func CompareLow[T any](cmp func(a, b T) int, a, b Interval[T]) int {
	c := cmp(a.Low, b.Low)
	if c != 0 {
		return c
	}
	if a.LowIncluded == b.LowIncluded {
		return 0
	}
	if a.LowIncluded {
		return -1
	}
	return 1
}

// CompareHigh orders two intervals by their high endpoint, with
// excluded endpoints preceding included ones at a tied high value (an
// excluded high ends "earlier" in the half-open sense).
func CompareHigh[T any](cmp func(a, b T) int, a, b Interval[T]) int {
	c := cmp(a.High, b.High)
	if c != 0 {
		return c
	}
	if a.HighIncluded == b.HighIncluded {
		return 0
	}
	if !a.HighIncluded {
		return -1
	}
	return 1
}

// StrictlyContains reports whether a strictly contains b: a starts
// strictly earlier than b (CompareLow < 0) and ends strictly later
// (CompareHigh > 0), with inclusion flags breaking ties at equal values.
func StrictlyContains[T any](cmp func(a, b T) int, a, b Interval[T]) bool {
	return CompareLow(cmp, a, b) < 0 && CompareHigh(cmp, b, a) < 0
}

// Covers reports whether a contains b, strictly or by equality — the
// non-strict counterpart of StrictlyContains. No index in this module
// calls it; NCL's sublist construction uses StrictlyContains.
func Covers[T any](cmp func(a, b T) int, a, b Interval[T]) bool {
	return CompareLow(cmp, a, b) <= 0 && CompareHigh(cmp, b, a) <= 0
}

// Equal reports whether a and b are identical on all four fields.
func Equal[T any](cmp func(a, b T) int, a, b Interval[T]) bool {
	return CompareLow(cmp, a, b) == 0 && CompareHigh(cmp, a, b) == 0
}

// Less is the canonical total order over intervals (spec §4.1):
// intervals that start earlier sort first; among equal lows, the
// shorter interval (smaller high) sorts first.
func Less[T any](cmp func(a, b T) int, a, b Interval[T]) bool {
	if c := CompareLow(cmp, a, b); c != 0 {
		return c < 0
	}
	return CompareHigh(cmp, a, b) < 0
}

// Canonical is the three-way canonical-order comparator used by the
// sortutil package and by every static builder.
func Canonical[T any](cmp func(a, b T) int, a, b Interval[T]) int {
	if c := CompareLow(cmp, a, b); c != 0 {
		return c
	}
	return CompareHigh(cmp, a, b)
}

// hashCombine folds a bool into the running hash using the 17*31
// combining scheme named in spec §4.1.
func hashCombine(h uint64, b bool) uint64 {
	v := uint64(0)
	if b {
		v = 1
	}
	return h*31 + v
}

// Hash computes the canonical 17*31 hash of an interval's four fields,
// given a hash function for the endpoint type. Two intervals equal
// under Equal always hash equally.
func Hash[T any](hashT func(T) uint64, iv Interval[T]) uint64 {
	h := uint64(17)
	h = h*31 + hashT(iv.Low)
	h = h*31 + hashT(iv.High)
	h = hashCombine(h, iv.LowIncluded)
	h = hashCombine(h, iv.HighIncluded)
	return h
}
