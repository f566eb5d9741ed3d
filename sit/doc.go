// Package sit implements the Static Interval Tree: a classic
// median-split binary tree supporting stabbing and range queries
// (spec §4.4).
//
// Each node picks a pivot endpoint (the median of the input's endpoint
// values), partitions the input into the intervals that contain the
// pivot ("here"), those entirely to its left, and those entirely to
// its right, and recurses on the left/right partitions. "Here" is kept
// twice, sorted two different ways — ascending by low, descending by
// high — so a query arriving from either side can scan only the prefix
// that could possibly still reach it before falling back to recursion.
package sit
