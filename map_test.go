package avlmap

import (
	"cmp"
	"errors"
	"strconv"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/npillmayer/avlmap/avltree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZeroMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	var m Map[int]
	if !m.IsEmpty() || m.Len() != 0 || m.Has("a") {
		t.Fatalf("zero map should be empty")
	}
	if m.String() != "[]" {
		t.Errorf("expected zero map to print as [], is %s", m)
	}
	m = m.Add("a", 1)
	if m.MustGet("a") != 1 {
		t.Fatalf("zero map did not accept a binding")
	}
	var z Map[int]
	if z.Remove("a").Len() != 0 {
		t.Fatalf("removing from zero map should yield an empty map")
	}
}

func TestAddThenList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	m := Empty[int]().Add("b", 2).Add("a", 1)
	t.Logf("m = %s", m)
	want := []Pair[int]{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
	if diff := gocmp.Diff(want, m.ToSlice()); diff != "" {
		t.Fatalf("unexpected bindings (-want +got):\n%s", diff)
	}
	if m.String() != "[(a,1) (b,2)]" {
		t.Errorf("unexpected string form %s", m)
	}
}

func TestRemoveMiddle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	m := FromPairs([]Pair[int]{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}})
	r := m.Remove("b")
	if err := r.Check(); err != nil {
		t.Fatal(err)
	}
	if r.Has("b") || !m.Has("b") {
		t.Fatalf("remove should only affect the new map")
	}
	want := []Pair[int]{{Key: "a", Value: 1}, {Key: "c", Value: 3}}
	if diff := gocmp.Diff(want, r.ToSlice()); diff != "" {
		t.Fatalf("unexpected bindings (-want +got):\n%s", diff)
	}
	if !m.Remove("zz").Same(m) {
		t.Errorf("removing an absent key should return the identical map")
	}
}

func TestMergePreferLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	m1 := Singleton("a", 1)
	m2 := FromPairs([]Pair[int]{{Key: "a", Value: 2}, {Key: "b", Value: 3}})
	m := Merge(m1, m2, func(_ string, a int, inA bool, b int, inB bool) (int, bool) {
		if inA {
			return a, true
		}
		return b, inB
	})
	want := []Pair[int]{{Key: "a", Value: 1}, {Key: "b", Value: 3}}
	if diff := gocmp.Diff(want, m.ToSlice()); diff != "" {
		t.Fatalf("unexpected merge result (-want +got):\n%s", diff)
	}
}

func TestMustGetMissingKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	m := Singleton("x", 24)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, avltree.ErrKeyNotFound) {
			t.Fatalf("expected panic wrapping ErrKeyNotFound, got %v", r)
		}
	}()
	m.MustGet("y")
}

func TestLookups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	m := FromPairs([]Pair[string]{{Key: "m", Value: "em"}, {Key: "c", Value: "ce"}, {Key: "x", Value: "ex"}})
	if v, ok := m.Get("c"); !ok || v != "ce" {
		t.Errorf("Get(c) = (%q, %v)", v, ok)
	}
	if v := m.GetOr("d", "default"); v != "default" {
		t.Errorf("GetOr(d) = %q", v)
	}
	if k, _, ok := m.Min(); !ok || k != "c" {
		t.Errorf("Min = %q", k)
	}
	if k, _, ok := m.Max(); !ok || k != "x" {
		t.Errorf("Max = %q", k)
	}
	if m.Height() != 2 || m.Len() != 3 {
		t.Errorf("unexpected height %d or length %d", m.Height(), m.Len())
	}
}

func TestSplitJoinConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	b := NewBuilder[int]()
	for i := range 100 {
		if err := b.Append(strconv.Itoa(1000+i), i); err != nil {
			t.Fatal(err)
		}
	}
	m := b.Map()
	lt, v, found, gt := m.Split("1050")
	if !found || v != 50 || lt.Len() != 50 || gt.Len() != 49 {
		t.Fatalf("unexpected split: found=%v v=%d %d/%d", found, v, lt.Len(), gt.Len())
	}
	eq := func(a, b int) bool { return a == b }
	if !Equal(Join(lt, "1050", v, gt), m, eq) {
		t.Errorf("join of split parts differs from original")
	}
	if Equal(lt.Concat(gt), m, eq) {
		t.Errorf("concat of split parts must not contain the pivot")
	}
	if got := lt.Concat(gt).Len(); got != 99 {
		t.Errorf("concat of split parts has %d bindings", got)
	}
	var zero Map[int]
	if !Equal(zero.Concat(m), m, eq) || !Equal(Join(zero, "0", 0, zero), Singleton("0", 0), eq) {
		t.Errorf("zero maps should act as empty operands")
	}
}

func TestFilterPartitionFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	var pp []Pair[int]
	for i := range 20 {
		pp = append(pp, Pair[int]{Key: strconv.Itoa(i), Value: i})
	}
	m := FromPairs(pp)
	odd := func(_ string, v int) bool { return v%2 == 1 }
	yes, no := m.Partition(odd)
	if !Equal(yes, m.Filter(odd), func(a, b int) bool { return a == b }) {
		t.Errorf("Partition and Filter disagree")
	}
	if !yes.ForAll(odd) || no.Exists(odd) {
		t.Errorf("Partition misplaced bindings")
	}
	sum := Fold(m, 0, func(acc int, _ string, v int) int { return acc + v })
	if sum != 190 {
		t.Errorf("Fold sum = %d, want 190", sum)
	}
	n := 0
	for range m.All() {
		n++
	}
	m.Each(func(string, int) { n++ })
	if n != 40 {
		t.Errorf("iteration visited %d bindings, want 40", n)
	}
}

func TestMapValuesAndCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	m := FromPairs([]Pair[int]{{Key: "a", Value: 1}, {Key: "b", Value: 2}})
	s := MapValues(m, strconv.Itoa)
	if s.MustGet("b") != "2" || s.Height() != m.Height() {
		t.Errorf("MapValues produced %s", s)
	}
	k := MapWithKey(m, func(k string, v int) string { return k + strconv.Itoa(v) })
	if k.String() != "[(a,a1) (b,b2)]" {
		t.Errorf("MapWithKey produced %s", k)
	}
	if c := Compare(m, m.Add("c", 0), cmp.Compare[int]); c != -1 {
		t.Errorf("shorter map should compare less, got %d", c)
	}
	if c := Compare(m, m.Add("b", 3), cmp.Compare[int]); c >= 0 {
		t.Errorf("map with smaller value should compare less, got %d", c)
	}
	if c := Compare(m, FromPairs([]Pair[int]{{Key: "b", Value: 2}, {Key: "a", Value: 1}}), cmp.Compare[int]); c != 0 {
		t.Errorf("equal maps should compare 0, got %d", c)
	}
}

func TestCheckInvariantOnGrowingMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlmap")
	defer teardown()
	//
	m := Empty[int]()
	for i := range 1000 {
		m = m.Add(strconv.Itoa(i*7919%1000), i)
		if !m.CheckInvariant() {
			t.Fatalf("map unbalanced after %d insertions", i+1)
		}
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
}
