// Package collectiontest runs spec §8's universal laws against any
// concrete index built from the same input slice, generalizing the
// teacher's habit of sharing one example dataset (periods, cidrs)
// across many Example functions into a single reusable property suite
// every index package's own tests call into (SPEC_FULL.md §7).
package collectiontest

import (
	"testing"

	"github.com/halvorsen/ivset"
)

// Queryable is the shared surface every concrete index is built
// against here: the read-only Collection[T] contract plus the query
// methods spec §6's table lists for every index.
type Queryable[T any] interface {
	ivset.Collection[T]
	FindOverlaps(query ivset.Interval[T]) ivset.Cursor[T]
	FindOverlapsPoint(point T) ivset.Cursor[T]
	FindOverlap(query ivset.Interval[T]) (ivset.Interval[T], bool)
	CountOverlaps(query ivset.Interval[T]) int
	Capabilities() ivset.Capabilities
}

// Build constructs a Queryable from items. Each index package's test
// file supplies its own Build (ncl.New, lcl.New, sit.New wrapped to
// ignore their static nature, or an ibst/dit Tree populated by Add),
// so RunUniversalLaws exercises value-identical collections without
// this package importing any of them (it would be a cycle: ncl's own
// tests import collectiontest).
type Build[T any] func(items []ivset.Interval[T]) Queryable[T]

// Suite is the full set of laws RunUniversalLaws checks.
type Suite[T any] struct {
	Cmp     func(a, b T) int
	Items   []ivset.Interval[T]
	Queries []ivset.Interval[T]
	Points  []T
	Build   Build[T]
}

// RunUniversalLaws checks every law spec §8 states "over all
// collections and all valid interval sets S" against one index built
// from s.Items via s.Build, using s.Queries/s.Points as the probes to
// check findOverlaps/countOverlaps/findOverlap/findOverlapsPoint
// against the brute-force oracle in the root package.
func RunUniversalLaws[T any](t *testing.T, s Suite[T]) {
	t.Helper()
	cmp := s.Cmp
	idx := s.Build(s.Items)

	if got, want := idx.Count(), len(s.Items); got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	if got, want := idx.IsEmpty(), len(s.Items) == 0; got != want {
		t.Fatalf("IsEmpty() = %v, want %v", got, want)
	}

	for _, q := range s.Queries {
		want := ivset.BruteForceFindOverlaps(cmp, s.Items, q)
		got := mustCollect(t, idx.FindOverlaps(q))
		assertSameMultiset(t, cmp, q, want, got)

		if wantCount, gotCount := len(want), idx.CountOverlaps(q); wantCount != gotCount {
			t.Fatalf("countOverlaps(%v) = %d, want %d (= |findOverlaps(%v)|)", q, gotCount, wantCount, q)
		}

		witness, ok := idx.FindOverlap(q)
		if wantOK := len(want) > 0; ok != wantOK {
			t.Fatalf("findOverlap(%v) ok = %v, want %v", q, ok, wantOK)
		}
		if ok && !ivset.Overlaps(cmp, witness, q) {
			t.Fatalf("findOverlap(%v) witness %v does not overlap query", q, witness)
		}
	}

	for _, p := range s.Points {
		want := ivset.BruteForceFindOverlapsPoint(cmp, s.Items, p)
		got := mustCollect(t, idx.FindOverlapsPoint(p))
		q := ivset.Interval[T]{Low: p, High: p, LowIncluded: true, HighIncluded: true}
		assertSameMultiset(t, cmp, q, want, got)
	}

	unsorted := mustCollect(t, idx.Iterate())
	sorted := mustCollect(t, idx.IterateSorted())
	assertSameMultiset(t, cmp, ivset.Interval[T]{}, s.Items, unsorted)
	assertSameMultiset(t, cmp, ivset.Interval[T]{}, s.Items, sorted)
	for i := 1; i < len(sorted); i++ {
		if ivset.Canonical(cmp, sorted[i-1], sorted[i]) > 0 {
			t.Fatalf("iterateSorted not in canonical order at %d: %v then %v", i, sorted[i-1], sorted[i])
		}
	}

	wantSpan, wantOK, err := ivset.SpanOf(cmp, sliceCursor(s.Items))
	if err != nil {
		t.Fatalf("SpanOf oracle: %v", err)
	}
	gotSpan, gotOK := idx.Span()
	if gotOK != wantOK {
		t.Fatalf("span() ok = %v, want %v", gotOK, wantOK)
	}
	if wantOK && !ivset.Equal(cmp, gotSpan, wantSpan) {
		t.Fatalf("span() = %v, want %v", gotSpan, wantSpan)
	}

	for _, q := range s.Queries {
		again := mustCollect(t, idx.FindOverlaps(q))
		if got, want := idx.Count(), len(s.Items); got != want {
			t.Fatalf("findOverlaps(%v) mutated Count(): got %d, want %d", q, got, want)
		}
		assertSameMultiset(t, cmp, q, ivset.BruteForceFindOverlaps(cmp, s.Items, q), again)
	}
}

// RunMutableRoundTrip checks spec §8's dynamic-only law: add(I);
// remove(I) returns the collection to the prior state, observable by
// iteration and every query. idx must be an already populated Mutable
// index.
func RunMutableRoundTrip[T any](t *testing.T, cmp func(a, b T) int, idx ivset.Mutable[T], extra ivset.Interval[T]) {
	t.Helper()

	before := mustCollect(t, idx.IterateSorted())
	beforeCount := idx.Count()

	if !idx.Add(extra) {
		t.Fatalf("Add(%v) on a fresh reference should report true", extra)
	}
	if !idx.Remove(extra) {
		t.Fatalf("Remove(%v) right after Add should report true", extra)
	}

	if got := idx.Count(); got != beforeCount {
		t.Fatalf("Count() after add;remove round trip = %d, want %d", got, beforeCount)
	}
	after := mustCollect(t, idx.IterateSorted())
	assertSameMultiset(t, cmp, ivset.Interval[T]{}, before, after)
}

func mustCollect[T any](t *testing.T, c ivset.Cursor[T]) []ivset.Interval[T] {
	t.Helper()
	out, err := ivset.Collect(c)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return out
}

func sliceCursor[T any](items []ivset.Interval[T]) ivset.Cursor[T] {
	i := 0
	return ivset.NewCursor(func() (ivset.Interval[T], bool, error) {
		if i >= len(items) {
			return ivset.Interval[T]{}, false, nil
		}
		iv := items[i]
		i++
		return iv, true, nil
	})
}

func assertSameMultiset[T any](t *testing.T, cmp func(a, b T) int, q ivset.Interval[T], want, got []ivset.Interval[T]) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("query %v returned %d intervals, want %d (want=%v got=%v)", q, len(got), len(want), want, got)
	}
	remaining := append([]ivset.Interval[T](nil), want...)
	for _, g := range got {
		found := -1
		for i, w := range remaining {
			if ivset.Equal(cmp, g, w) {
				found = i
				break
			}
		}
		if found == -1 {
			t.Fatalf("query %v: unexpected result %v (want=%v got=%v)", q, g, want, got)
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
}
