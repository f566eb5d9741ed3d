// Package ivset is a library of ordered interval collections: data
// structures holding a set of one-dimensional intervals over a totally
// ordered endpoint domain, answering range/stabbing queries — "which
// intervals overlap this point or this interval?" — faster than a
// linear scan.
//
// This root package holds only the vocabulary every index shares: the
// Interval[T] value type, the interval algebra (CompareLow, CompareHigh,
// Overlaps, StrictlyContains, Canonical order), the Collection/Mutable
// capability contracts, the shared span/gaps query helpers, and the
// error taxonomy. The indexes themselves live in subpackages:
//
//	ncl/  Nested Containment List   (static,  O(log n + k))
//	lcl/  Layered Containment List  (static,  O(log n + k), cache-friendly)
//	sit/  Static Interval Tree      (static,  median-split)
//	ibst/ Interval Binary Search Tree (dynamic, red-black + MNO augmentation)
//	dit/  Dynamic Interval Tree     (dynamic, span augmentation; MNO computed on demand)
//
// Every index package imports this one; this package never imports an
// index package.
package ivset
