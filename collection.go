package ivset

// Cursor is a lazy, pull-based sequence of intervals, produced by a
// query. Advance it by calling Next until ok is false. Per spec §5 the
// collection backing a cursor must not be mutated while the cursor is
// still being pulled; no index in this module detects such a mutation,
// and every cursor it returns reports a nil error from Next.
//
// Cursor never materializes the full result except where an index's
// own algorithm requires it (IBST range-query de-duplication, spec
// §4.5/§9).
type Cursor[T any] struct {
	next func() (Interval[T], bool, error)
}

// NewCursor wraps a pull function as a Cursor. Index packages use this
// to adapt their own traversal closures to the shared Cursor type.
func NewCursor[T any](next func() (Interval[T], bool, error)) Cursor[T] {
	return Cursor[T]{next: next}
}

// Next advances the cursor, returning the next interval and true, or
// the zero value and false when exhausted. err is whatever the wrapped
// pull function returns; the cursors the indexes build always return nil.
func (c Cursor[T]) Next() (Interval[T], bool, error) {
	if c.next == nil {
		return Interval[T]{}, false, nil
	}
	return c.next()
}

// Collect drains a cursor into a slice. Provided for tests and callers
// that don't need laziness; never used internally by an index.
func Collect[T any](c Cursor[T]) ([]Interval[T], error) {
	var out []Interval[T]
	for {
		iv, ok, err := c.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, iv)
	}
}

// Collection is the read contract every index in this module implements
// (spec §6 table, minus the dynamic-only operations). point and query
// are kept as `any` here because Go forbids a second type parameter on
// an interface method that isn't also a parameter of the interface
// itself; each concrete index exposes the concretely-typed FindOverlaps
// overloads (point T / query Interval[T]) directly. The interface is
// embedded by Mutable and by collectiontest's Queryable; the shared
// helpers in query.go (SpanOf, GapsOf) take a Cursor, not a Collection.
type Collection[T any] interface {
	// Count returns the number of intervals currently held.
	Count() int

	// IsEmpty reports whether Count() == 0.
	IsEmpty() bool

	// Span returns the smallest interval containing every member, and
	// false if the collection is empty.
	Span() (Interval[T], bool)

	// Iterate returns a cursor over every member in an
	// implementation-defined order.
	Iterate() Cursor[T]

	// IterateSorted returns a cursor over every member in canonical
	// order (spec §4.1).
	IterateSorted() Cursor[T]
}

// Mutable is implemented by the dynamic collections (ibst, dit). Static
// collections (ncl, lcl, sit) deliberately do not implement it — adding
// the methods to Collection itself would force every static index to
// carry dead Add/Remove/Clear stubs, which is the wrong default for a
// type that is supposed to reject mutation at compile time wherever
// possible and at the call site otherwise (spec §7 read-only errors).
type Mutable[T any] interface {
	Collection[T]

	// Add inserts iv, returning true if it was not already present
	// (value-equal reference duplicates may still be permitted; see
	// AllowsReferenceDuplicates).
	Add(iv Interval[T]) bool

	// Remove deletes iv if present, returning true iff it was.
	Remove(iv Interval[T]) bool

	// Clear removes every member.
	Clear()

	// MaximumOverlap returns the maximum, over every point in T, of the
	// number of members containing that point (the MNO, spec §4.5).
	MaximumOverlap() int
}

// Diagnosable is the optional debug/introspection capability described
// in SPEC_FULL.md §5, generalizing the teacher's Statistics() helper.
// Never required for correctness.
type Diagnosable interface {
	// Statistics returns the maximum depth and the mean/standard
	// deviation of node depths across the index's internal shape.
	Statistics() (maxDepth int, average, deviation float64)
}

// Capabilities describes, at runtime, which operations a concrete
// collection supports — the "capability set expressed as a struct with
// flags" alternative to an interface hierarchy called for in spec §9,
// useful for writing one polymorphic test suite against every index.
type Capabilities struct {
	// AllowsOverlaps is true for every collection in this module; kept
	// as an explicit field (rather than assumed) because spec §9 frames
	// overlap-querying as one tier of a capability set that a future,
	// more exotic index might not implement.
	AllowsOverlaps bool

	// AllowsReferenceDuplicates is true iff the same interval reference
	// may be inserted twice and tracked as two independent members.
	AllowsReferenceDuplicates bool

	// IsReadOnly is true for static collections (ncl, lcl, sit).
	IsReadOnly bool
}
