// Package period provides a minimal int endpoint comparator shared by
// every index package's tests and examples, generalizing the teacher's
// own internal/period helper (an [2]int interval type) down to a bare
// ordered endpoint — ivset.Interval[int] now carries the inclusion
// flags itself, so the shared test helper only needs to supply Cmp.
package period

// Cmp compares two ints, the comparator threaded into ivset.Interval[int]
// and every index constructor across this module's tests and examples.
func Cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
