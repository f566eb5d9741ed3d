package ivset_test

import (
	"net/netip"
	"testing"

	"github.com/gaissmai/extnetip"

	"github.com/halvorsen/ivset"
	"github.com/halvorsen/ivset/ibst"
	"github.com/halvorsen/ivset/lcl"
	"github.com/halvorsen/ivset/ncl"
	"github.com/halvorsen/ivset/sit"
)

// cmpAddr orders netip.Addr the way every index in this module expects
// its endpoint comparator to behave.
func cmpAddr(a, b netip.Addr) int {
	return a.Compare(b)
}

// mustPrefixInterval turns a CIDR literal into the closed range of
// addresses it covers, the same range extnetip.Range reports for the
// teacher's own MyCIDR.Compare.
func mustPrefixInterval(s string) ivset.Interval[netip.Addr] {
	pfx, err := netip.ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	lo, hi := extnetip.Range(pfx)
	return ivset.MustNew(cmpAddr, lo, hi, true, true)
}

// cidrDataset is a subset of the teacher's own CIDR corpus: a handful of
// nested IPv4 blocks, a handful of disjoint IPv4 blocks, and a couple of
// IPv6 blocks, enough to exercise deep containment and cross-family
// ordering without reproducing the teacher's full seventy-entry fixture.
func cidrDataset() []ivset.Interval[netip.Addr] {
	literals := []string{
		"10.0.0.0/8",
		"10.0.0.0/9",
		"10.0.0.0/11",
		"10.0.0.1/32",
		"10.0.16.0/20",
		"10.0.32.0/20",
		"10.0.32.1/32",
		"10.1.0.0/16",
		"10.32.0.0/11",
		"10.32.8.0/22",
		"10.32.12.0/22",
		"10.32.12.1/32",
		"10.64.0.0/11",
		"10.64.4.0/22",
		"10.80.0.0/12",
		"fc00::/7",
		"fdcd:aa59::/32",
		"fdcd:aa59:8000::/37",
		"fdcd:aa59:8bce::/48",
		"fdcd:aa59:8bce::/56",
	}
	out := make([]ivset.Interval[netip.Addr], len(literals))
	for i, s := range literals {
		out[i] = mustPrefixInterval(s)
	}
	return out
}

func TestCIDRIndexesAgreeWithBruteForce(t *testing.T) {
	items := cidrDataset()

	queries := []ivset.Interval[netip.Addr]{
		mustPrefixInterval("10.0.32.1/32"),
		mustPrefixInterval("10.0.0.0/10"),
		mustPrefixInterval("10.32.12.0/24"),
		mustPrefixInterval("10.64.0.0/11"),
		mustPrefixInterval("fdcd:aa59:8bce::/50"),
		mustPrefixInterval("192.168.0.0/16"),
	}

	nclIdx := ncl.New(cmpAddr, items)
	lclIdx := lcl.New(cmpAddr, items)
	sitIdx := sit.New(cmpAddr, items)
	ibstIdx := ibst.New(cmpAddr)
	for _, it := range items {
		ibstIdx.Add(it)
	}

	for _, q := range queries {
		want := ivset.BruteForceFindOverlaps(cmpAddr, items, q)

		for name, got := range map[string][]ivset.Interval[netip.Addr]{
			"ncl":  mustCollectCIDR(t, nclIdx.FindOverlaps(q)),
			"lcl":  mustCollectCIDR(t, lclIdx.FindOverlaps(q)),
			"sit":  mustCollectCIDR(t, sitIdx.FindOverlaps(q)),
			"ibst": mustCollectCIDR(t, ibstIdx.FindOverlaps(q)),
		} {
			assertSameCIDRSet(t, name, q, want, got)
		}
	}
}

func TestCIDRDeepContainmentViaNCL(t *testing.T) {
	items := cidrDataset()
	idx := ncl.New(cmpAddr, items)

	q := mustPrefixInterval("10.0.32.1/32")
	got := mustCollectCIDR(t, idx.FindOverlaps(q))
	if len(got) == 0 {
		t.Fatal("expected the address to overlap its enclosing blocks")
	}
	if n := idx.CountOverlaps(q); n != len(got) {
		t.Fatalf("CountOverlaps(%v) = %d, want %d", q, n, len(got))
	}
}

func mustCollectCIDR(t *testing.T, c ivset.Cursor[netip.Addr]) []ivset.Interval[netip.Addr] {
	t.Helper()
	out, err := ivset.Collect(c)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return out
}

func assertSameCIDRSet(t *testing.T, name string, q ivset.Interval[netip.Addr], want, got []ivset.Interval[netip.Addr]) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s.FindOverlaps(%v) returned %d intervals, want %d (want=%v got=%v)", name, q, len(got), len(want), want, got)
	}
	index := make(map[ivset.Interval[netip.Addr]]int, len(want))
	for _, w := range want {
		index[w]++
	}
	for _, g := range got {
		index[g]--
	}
	for k, v := range index {
		if v != 0 {
			t.Fatalf("%s.FindOverlaps(%v): mismatch around %v (want=%v got=%v)", name, q, k, want, got)
		}
	}
}
