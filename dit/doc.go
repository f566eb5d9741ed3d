// Package dit implements the Dynamic Interval Tree: a balanced binary
// search tree keyed by an interval's own canonical order (spec §4.1),
// augmented at every node with the span (the smallest interval
// covering the node's own interval and everything beneath it) of its
// subtree (spec §4.6).
//
// Overlap queries use a node's cached subtree span to prune: if a
// query doesn't overlap a subtree's span, nothing under that node can
// overlap it either, so the whole subtree is skipped without being
// visited. Insert and remove keep the tree balanced with the same
// left-leaning red-black discipline ibst uses; every rotation
// recomputes the span of the two nodes it touches, since span is a
// pure function of a node's own interval and its two children's spans.
//
// Unlike ibst, a DIT node holds exactly one interval value (spec §4.6
// keys the tree "by canonical order", not by endpoint), so inserting a
// value-equal duplicate is rejected rather than tracked as a second
// reference — dit does not allow reference duplicates.
package dit
