package dit_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/ivset"
	"github.com/halvorsen/ivset/dit"
	"github.com/halvorsen/ivset/internal/collectiontest"
	"github.com/halvorsen/ivset/internal/period"
)

func closed(low, high int) ivset.Interval[int] {
	return ivset.MustNew(period.Cmp, low, high, true, true)
}

func halfOpen(low, high int) ivset.Interval[int] {
	return ivset.MustNew(period.Cmp, low, high, true, false)
}

func iv(low, high int, loInc, hiInc bool) ivset.Interval[int] {
	return ivset.MustNew(period.Cmp, low, high, loInc, hiInc)
}

// bensDataset is spec §8 concrete scenario 3: A=[5,9], B=[11,15],
// C=[15,20], D=[20,24], E=[26,30].
func bensDataset() []ivset.Interval[int] {
	return []ivset.Interval[int]{
		closed(5, 9), closed(11, 15), closed(15, 20), closed(20, 24), closed(26, 30),
	}
}

func sampleItems() []ivset.Interval[int] {
	return []ivset.Interval[int]{
		closed(0, 10), closed(5, 15), closed(12, 20), closed(3, 4),
		halfOpen(100, 200), closed(110, 120), closed(130, 140),
		closed(115, 116), closed(50, 60), closed(55, 58),
	}
}

func newTree(items []ivset.Interval[int]) *dit.Tree[int] {
	tr := dit.New(period.Cmp)
	for _, it := range items {
		tr.Add(it)
	}
	return tr
}

func TestEmpty(t *testing.T) {
	tr := dit.New(period.Cmp)
	if tr.Count() != 0 || !tr.IsEmpty() {
		t.Fatalf("expected empty tree, got Count=%d IsEmpty=%v", tr.Count(), tr.IsEmpty())
	}
	if _, ok := tr.Span(); ok {
		t.Fatal("Span on empty tree should report false")
	}
	if tr.MaximumOverlap() != 0 {
		t.Fatalf("MaximumOverlap on empty tree = %d, want 0", tr.MaximumOverlap())
	}
}

func TestAddRejectsDuplicate(t *testing.T) {
	tr := dit.New(period.Cmp)
	iv := closed(1, 5)
	if ok := tr.Add(iv); !ok {
		t.Fatal("first Add should report true")
	}
	if ok := tr.Add(iv); ok {
		t.Fatal("Add of a value-equal duplicate should report false")
	}
	if tr.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", tr.Count())
	}
	if tr.Capabilities().AllowsReferenceDuplicates {
		t.Fatal("dit should not advertise reference-duplicate support")
	}
}

func TestFindOverlapsMatchesBruteForce(t *testing.T) {
	items := sampleItems()
	tr := newTree(items)

	queries := []ivset.Interval[int]{
		closed(0, 0), closed(4, 4), closed(9, 13), closed(150, 160),
		closed(115, 115), closed(-5, 1000), closed(56, 57), closed(20, 50),
		closed(199, 199), closed(200, 200),
	}
	for _, q := range queries {
		want := ivset.BruteForceFindOverlaps(period.Cmp, items, q)
		got := mustCollect(t, tr.FindOverlaps(q))
		assertSameIntervals(t, q, want, got)

		if gotCount, wantCount := tr.CountOverlaps(q), len(want); gotCount != wantCount {
			t.Fatalf("CountOverlaps(%v) = %d, want %d", q, gotCount, wantCount)
		}
	}
}

func TestFindOverlapsPointMatchesBruteForce(t *testing.T) {
	items := sampleItems()
	tr := newTree(items)

	for _, p := range []int{0, 4, 13, 57, 115, 1000, 200} {
		want := ivset.BruteForceFindOverlapsPoint(period.Cmp, items, p)
		got := mustCollect(t, tr.FindOverlapsPoint(p))
		assertSameIntervals(t, closed(p, p), want, got)
	}
}

func TestFindOverlap(t *testing.T) {
	tr := newTree(sampleItems())
	if _, ok := tr.FindOverlap(closed(57, 57)); !ok {
		t.Fatal("expected a witness overlapping 57")
	}
	if _, ok := tr.FindOverlap(closed(21, 49)); ok {
		t.Fatal("expected no witness in the gap between 20 and 50")
	}
}

func TestRemove(t *testing.T) {
	items := sampleItems()
	tr := newTree(items)
	target := items[4] // halfOpen(100, 200)

	require.True(t, tr.Remove(target), "Remove of a present interval should report true")
	require.Equal(t, len(items)-1, tr.Count())

	assert.False(t, tr.Remove(target), "Remove of an already-removed interval should report false")

	remaining := mustCollect(t, tr.IterateSorted())
	for _, r := range remaining {
		assert.NotEqual(t, target, r, "removed interval still present")
	}
}

func TestDynamicChurn(t *testing.T) {
	tr := dit.New(period.Cmp)
	var added []ivset.Interval[int]
	for i := 0; i < 200; i++ {
		it := closed(i, i+10)
		require.True(t, tr.Add(it), "Add of a fresh interval should report true")
		added = append(added, it)
	}
	require.Equal(t, len(added), tr.Count())

	for _, it := range added {
		require.True(t, tr.Remove(it), "Remove of a present interval should report true")
	}
	assert.Equal(t, 0, tr.Count())
	assert.True(t, tr.IsEmpty())

	for _, it := range added {
		assert.False(t, tr.Remove(it), "double-remove should report false for %v", it)
	}
}

func TestSpan(t *testing.T) {
	items := sampleItems()
	tr := newTree(items)

	got, ok := tr.Span()
	if !ok {
		t.Fatal("Span should report true for a non-empty tree")
	}
	if want := ivset.MustNew(period.Cmp, 0, 200, true, false); got != want {
		t.Fatalf("Span() = %v, want %v", got, want)
	}
}

func TestSpanShrinksAfterRemovingExtremum(t *testing.T) {
	tr := newTree(sampleItems())
	tr.Remove(halfOpen(100, 200))

	got, ok := tr.Span()
	if !ok {
		t.Fatal("Span should report true for a non-empty tree")
	}
	if want := ivset.MustNew(period.Cmp, 0, 140, true, true); got != want {
		t.Fatalf("Span() after removing the extremum = %v, want %v", got, want)
	}
}

func TestIterateSortedIsCanonical(t *testing.T) {
	items := sampleItems()
	tr := newTree(items)

	got := mustCollect(t, tr.IterateSorted())
	if len(got) != len(items) {
		t.Fatalf("IterateSorted produced %d intervals, want %d", len(got), len(items))
	}
	want := append([]ivset.Interval[int](nil), items...)
	sort.Slice(want, func(i, j int) bool { return ivset.Less(period.Cmp, want[i], want[j]) })
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IterateSorted[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIterateEqualsIterateSorted(t *testing.T) {
	tr := newTree(sampleItems())
	a := mustCollect(t, tr.Iterate())
	b := mustCollect(t, tr.IterateSorted())
	if len(a) != len(b) {
		t.Fatalf("Iterate produced %d, IterateSorted produced %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Iterate[%d] = %v, IterateSorted[%d] = %v", i, a[i], i, b[i])
		}
	}
}

func TestMaximumOverlap(t *testing.T) {
	items := []ivset.Interval[int]{closed(0, 10), closed(5, 15), closed(8, 20)}
	tr := newTree(items)
	want := ivset.BruteForceMaximumOverlap(period.Cmp, items)
	if got := tr.MaximumOverlap(); got != want {
		t.Fatalf("MaximumOverlap() = %d, want %d", got, want)
	}
}

func TestMaximumOverlapAfterRemove(t *testing.T) {
	tr := dit.New(period.Cmp)
	a, b, c := closed(0, 10), closed(5, 15), closed(8, 20)
	tr.Add(a)
	tr.Add(b)
	tr.Add(c)
	tr.Remove(b)
	if got := tr.MaximumOverlap(); got != 2 {
		t.Fatalf("MaximumOverlap() after Remove = %d, want 2", got)
	}
}

func TestClone(t *testing.T) {
	tr := newTree(sampleItems())
	clone := tr.Clone()

	clone.Add(closed(300, 310))
	if tr.Count() == clone.Count() {
		t.Fatal("mutating the clone should not affect the original")
	}
	if tr.CountOverlaps(closed(300, 310)) != 0 {
		t.Fatal("original tree should not see the clone's addition")
	}
}

func TestClear(t *testing.T) {
	tr := newTree(sampleItems())
	tr.Clear()
	if !tr.IsEmpty() || tr.Count() != 0 {
		t.Fatalf("expected empty tree after Clear, got Count=%d", tr.Count())
	}
}

func TestCapabilities(t *testing.T) {
	tr := dit.New(period.Cmp)
	caps := tr.Capabilities()
	if !caps.AllowsOverlaps || caps.AllowsReferenceDuplicates || caps.IsReadOnly {
		t.Fatalf("unexpected Capabilities: %+v", caps)
	}
}

func TestStatistics(t *testing.T) {
	tr := newTree(sampleItems())
	maxDepth, average, deviation := tr.Statistics()
	if maxDepth < 0 {
		t.Fatalf("maxDepth = %d, want >= 0", maxDepth)
	}
	if average <= 0 {
		t.Fatalf("average = %v, want > 0 for a non-empty tree", average)
	}
	if deviation < 0 {
		t.Fatalf("deviation = %v, want >= 0", deviation)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	tr := dit.New(period.Cmp)
	maxDepth, average, deviation := tr.Statistics()
	if maxDepth != 0 || average != 0 || deviation != 0 {
		t.Fatalf("Statistics on empty tree = (%d, %v, %v), want zero values", maxDepth, average, deviation)
	}
}

func TestFprintEmpty(t *testing.T) {
	tr := dit.New(period.Cmp)
	var buf bytes.Buffer
	if err := tr.Fprint(&buf); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if buf.String() != "(empty)\n" {
		t.Fatalf("Fprint on empty tree = %q, want %q", buf.String(), "(empty)\n")
	}
}

func TestFprintNonEmpty(t *testing.T) {
	tr := newTree(sampleItems())
	var buf bytes.Buffer
	if err := tr.Fprint(&buf); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("Fprint on non-empty tree produced no output")
	}
}

func TestUniversalLaws(t *testing.T) {
	collectiontest.RunUniversalLaws(t, collectiontest.Suite[int]{
		Cmp:   period.Cmp,
		Items: bensDataset(),
		Queries: []ivset.Interval[int]{
			closed(10, 10), closed(10, 11), iv(5, 15, true, false),
			closed(0, 4), closed(14, 16), closed(-5, 40),
		},
		Points: []int{0, 5, 9, 10, 11, 15, 20, 24, 25, 30, 31},
		Build: func(items []ivset.Interval[int]) collectiontest.Queryable[int] {
			return newTree(items)
		},
	})
}

func TestMutableRoundTrip(t *testing.T) {
	tr := newTree(sampleItems())
	collectiontest.RunMutableRoundTrip[int](t, period.Cmp, tr, closed(1000, 2000))
}

func mustCollect(t *testing.T, c ivset.Cursor[int]) []ivset.Interval[int] {
	t.Helper()
	out, err := ivset.Collect(c)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return out
}

func assertSameIntervals(t *testing.T, q ivset.Interval[int], want, got []ivset.Interval[int]) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("query %v returned %d intervals, want %d (want=%v got=%v)", q, len(got), len(want), want, got)
	}
	index := make(map[ivset.Interval[int]]int, len(want))
	for _, w := range want {
		index[w]++
	}
	for _, g := range got {
		index[g]--
	}
	for k, v := range index {
		if v != 0 {
			t.Fatalf("query %v: mismatch around %v (want=%v got=%v)", q, k, want, got)
		}
	}
}
