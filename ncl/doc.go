// Package ncl implements the Nested Containment List: a static,
// array-backed interval index exploiting interval containment to
// answer overlap queries in O(log n + k) (spec §4.2).
//
// The backing store is a single flat slice of entries, each carrying
// its interval plus the (offset, length) of a "sublist" section — the
// entries strictly contained in it. Sections are filled back-to-front:
// each container's own entries are written into the suffix of whatever
// index range is still free when its turn comes, and its sublist is
// then carved from what remains before it, so a deeply nested chain
// ends up physically clustered near the front of the array while each
// level's own siblings stay contiguous — the cache-friendly layout
// spec §4.2 describes.
package ncl
