// Package lcl implements the Layered Containment List: a static,
// cache-friendly alternative to ncl using parallel per-layer arrays
// instead of one array of nested sections (spec §4.3).
//
// Layer 0 holds every interval not strictly contained in any other.
// Layer l+1 holds the intervals strictly contained in some layer-l
// entry. Each layer-l entry carries a pointer into layer l+1 giving the
// start of the run of entries it contains; the next entry's pointer (or
// a trailing sentinel, for the last entry) gives the run's end. A query
// never recurses per-entry the way ncl does — it binary-searches one
// layer, then descends once using the combined pointer range of every
// entry it just matched, trading one extra array indirection per layer
// for better locality across a wide match.
package lcl
