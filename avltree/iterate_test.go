package avltree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEachAndAll(t *testing.T) {
	tree, _ := FromPairs(stringConfig, pairs("c", 3, "a", 1, "b", 2))
	var b strings.Builder
	tree.Each(func(k string, v int) {
		fmt.Fprintf(&b, "%s%d", k, v)
	})
	if b.String() != "a1b2c3" {
		t.Fatalf("Each visited %q", b.String())
	}
	var keys []string
	for k := range tree.All() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Fatalf("All yielded unexpected keys (-want +got):\n%s", diff)
	}
	tree.Each(nil) // must not panic
}

func TestAllStopsOnBreak(t *testing.T) {
	tree := &Tree[string, int]{cfg: stringConfig, root: buildRange(0, 100)}
	count := 0
	for _, v := range tree.All() {
		if v == 10 {
			break
		}
		count++
	}
	if count != 10 {
		t.Fatalf("expected 10 bindings before break, got %d", count)
	}
	var nilTree *Tree[string, int]
	for range nilTree.All() {
		t.Fatalf("nil tree must not yield bindings")
	}
}

func TestFold(t *testing.T) {
	tree := &Tree[string, int]{cfg: stringConfig, root: buildRange(1, 11)}
	sum := Fold(tree, 0, func(acc int, _ string, v int) int { return acc + v })
	if sum != 55 {
		t.Fatalf("Fold sum = %d, want 55", sum)
	}
	// keys 00001..00010 contribute their last digit each
	keys := Fold(tree, "", func(acc string, k string, _ int) string { return acc + k[4:] })
	if keys != "1234567890" {
		t.Fatalf("Fold visited keys out of order: %q", keys)
	}
}

func TestForAllExistsShortCircuit(t *testing.T) {
	tree := &Tree[string, int]{cfg: stringConfig, root: buildRange(0, 1000)}
	var visited []int
	ok := tree.ForAll(func(_ string, v int) bool {
		visited = append(visited, v)
		return v < 10
	})
	if ok || len(visited) != 11 {
		t.Fatalf("ForAll should stop at the 11th binding, got ok=%v after %d calls", ok, len(visited))
	}
	for i, v := range visited {
		if v != i {
			t.Fatalf("ForAll should test bindings in key order, have %v", visited)
		}
	}
	if !tree.ForAll(func(_ string, v int) bool { return v >= 0 }) {
		t.Fatalf("ForAll should hold for all non-negative values")
	}
	calls := 0
	found := tree.Exists(func(_ string, v int) bool {
		calls++
		return v == 0
	})
	if !found || calls != 1 {
		t.Fatalf("Exists should stop at the smallest key, got found=%v after %d calls", found, calls)
	}
	if tree.Exists(func(_ string, v int) bool { return v < 0 }) {
		t.Fatalf("Exists found a negative value")
	}
	empty := newStringTree(t)
	if !empty.ForAll(func(string, int) bool { return false }) {
		t.Fatalf("ForAll must hold vacuously on an empty tree")
	}
	if empty.Exists(func(string, int) bool { return true }) {
		t.Fatalf("Exists must not hold on an empty tree")
	}
}

func TestFilterAndPartition(t *testing.T) {
	tree := &Tree[string, int]{cfg: stringConfig, root: buildRange(0, 500)}
	even := func(_ string, v int) bool { return v%2 == 0 }
	filtered := tree.Filter(even)
	mustCheck(t, filtered)
	if filtered.Len() != 250 || !filtered.ForAll(even) {
		t.Fatalf("Filter kept %d bindings", filtered.Len())
	}
	yes, no := tree.Partition(even)
	mustCheck(t, yes)
	mustCheck(t, no)
	if yes.Len() != 250 || no.Len() != 250 || no.Exists(even) {
		t.Fatalf("Partition produced %d/%d bindings", yes.Len(), no.Len())
	}
	eq := func(a, b int) bool { return a == b }
	if !yes.Equal(filtered, eq) {
		t.Fatalf("Partition and Filter disagree")
	}
	var visited []int
	tree.Filter(func(_ string, v int) bool {
		visited = append(visited, v)
		return true
	})
	for i, v := range visited {
		if v != i {
			t.Fatalf("Filter called predicate out of key order at %d: %d", i, v)
		}
	}
	empty := newStringTree(t)
	if empty.Filter(even) != empty {
		t.Fatalf("filtering an empty tree should return it unchanged")
	}
}
