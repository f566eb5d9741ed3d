// Package ivset provides the interval algebra and collection contract
// shared by every interval-query index in this module (ncl, lcl, sit,
// ibst, dit).
//
// An Interval[T] carries a low and a high endpoint over any totally
// ordered T, plus independent open/closed flags on each side. The
// package itself never compares T values directly — every index and
// every algebra helper here takes an explicit comparator, the shape
// the teacher's later API generations use:
//
//	cmp := func(a, b int) int { return a - b }
//	iv  := ivset.MustNew(cmp, 3, 9, true, false) // [3, 9)
//
// so that Interval[T] works for ints, strings, time.Time, netip.Prefix
// ranges, or any other ordered domain without requiring T to implement
// an interface.
package ivset

import "fmt"

// Interval is a one-dimensional interval over T, with Low <= High and
// independent inclusion flags on each endpoint. Values are immutable
// after construction; a collection that stores an Interval never
// mutates it (spec §3).
type Interval[T any] struct {
	Low, High    T
	LowIncluded  bool
	HighIncluded bool
}

// New constructs an Interval, validating spec §3's invariants against
// the supplied comparator:
//
//   - low <= high
//   - if low == high, both endpoints must be included (a point interval);
//     a degenerate half-open interval like [x, x) is rejected.
//
// cmp must return <0, 0, >0 as a < b, a == b, a > b respectively.
func New[T any](cmp func(a, b T) int, low, high T, lowIncluded, highIncluded bool) (Interval[T], error) {
	c := cmp(low, high)
	if c > 0 {
		return Interval[T]{}, &InvalidIntervalError{Reason: "low > high"}
	}
	if c == 0 && !(lowIncluded && highIncluded) {
		return Interval[T]{}, &InvalidIntervalError{Reason: "degenerate half-open point interval"}
	}
	return Interval[T]{Low: low, High: high, LowIncluded: lowIncluded, HighIncluded: highIncluded}, nil
}

// MustNew is New but panics on an invalid interval. Useful for building
// literal test/example data, mirroring the teacher's mustParse helper.
func MustNew[T any](cmp func(a, b T) int, low, high T, lowIncluded, highIncluded bool) Interval[T] {
	iv, err := New(cmp, low, high, lowIncluded, highIncluded)
	if err != nil {
		panic(err)
	}
	return iv
}

// String formats the interval using standard bracket notation, e.g.
// "[3, 9)" or "[5, 5]" for a point interval.
func (iv Interval[T]) String() string {
	lb := "("
	if iv.LowIncluded {
		lb = "["
	}
	rb := ")"
	if iv.HighIncluded {
		rb = "]"
	}
	return fmt.Sprintf("%s%v, %v%s", lb, iv.Low, iv.High, rb)
}
