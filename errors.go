package ivset

import "fmt"

// Sentinel errors for the error taxonomy described in spec §7. Callers
// should compare against these with errors.Is; the wrapping types below
// attach the offending value for %v/%w formatting.
var (
	// ErrEmpty names the empty-collection condition. No function in this
	// module returns it: Span reports an empty collection with false.
	ErrEmpty = fmt.Errorf("ivset: collection is empty")

	// ErrReadOnly names a mutation of a static (read-only) collection. No
	// function in this module returns it: the static types have no
	// Add/Remove/Clear methods at all.
	ErrReadOnly = fmt.Errorf("ivset: collection is read-only")

	// ErrCursorInvalidated names a cursor whose backing collection was
	// mutated since the cursor was obtained. No cursor in this module
	// detects that or returns it.
	ErrCursorInvalidated = fmt.Errorf("ivset: cursor invalidated by mutation")

	// ErrInvalidInterval is returned when constructing an Interval whose
	// fields violate the invariants in spec §3 (low <= high, and a
	// degenerate half-open point interval is rejected).
	ErrInvalidInterval = fmt.Errorf("ivset: invalid interval")
)

// ReadOnlyError wraps ErrReadOnly with the name of the attempted
// mutating operation, e.g. "Add", "Remove", "Clear".
type ReadOnlyError struct {
	Op string
}

func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("ivset: %s: %v", e.Op, ErrReadOnly)
}

func (e *ReadOnlyError) Unwrap() error { return ErrReadOnly }

// InvalidIntervalError wraps ErrInvalidInterval with a human-readable
// reason, e.g. "low > high" or "degenerate half-open point interval".
type InvalidIntervalError struct {
	Reason string
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("ivset: %s: %v", e.Reason, ErrInvalidInterval)
}

func (e *InvalidIntervalError) Unwrap() error { return ErrInvalidInterval }
