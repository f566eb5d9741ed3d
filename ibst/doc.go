// Package ibst implements the Interval Binary Search Tree: a dynamic,
// self-balancing collection keyed by endpoint value, where every node
// on an interval's insertion path records that interval in one of
// three sets — Less, Equal, Greater — so stabbing queries run in
// O(log n + k) without ever storing the interval more than a handful of
// times (spec §4.5). Range queries (FindOverlaps) visit every node.
//
// Inserting interval [l,h] walks two paths: the low path, ending at a
// node keyed l, and the high path, ending at a node keyed h. Every node
// the low path turns left at (key > l) gets [l,h] added to its Less
// set; the high path's right turns add it to Greater; the node keyed
// exactly l (if l is included) or exactly h (if h is included) gets it
// added to Equal. A balanced tree (here, a left-leaning red-black tree)
// keeps both paths O(log n); rotations additionally transfer Less/
// Equal/Greater membership between the rotated nodes to preserve the
// invariant the insertion rule establishes.
//
// Each node also carries a pair of deltas (delta, the change in live
// interval count exactly at its key; deltaAfter, the change just past
// it) and subtree-aggregated sum/max, so the maximum number of
// overlapping intervals at any point in T (the MNO) is always
// root.max — the tree is reaugmented bottom-up after every mutation.
package ibst
