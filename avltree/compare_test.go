package avltree

import (
	"cmp"
	"testing"
)

func TestCompare(t *testing.T) {
	small, _ := FromPairs(stringConfig, pairs("z", 9))
	big, _ := FromPairs(stringConfig, pairs("a", 1, "b", 2))
	if c := small.Compare(big, cmp.Compare[int]); c != -1 {
		t.Fatalf("smaller tree should compare less by size, got %d", c)
	}
	if c := big.Compare(small, cmp.Compare[int]); c != 1 {
		t.Fatalf("larger tree should compare greater by size, got %d", c)
	}
	t1, _ := FromPairs(stringConfig, pairs("a", 1, "b", 2))
	t2, _ := FromPairs(stringConfig, pairs("a", 1, "c", 2))
	if c := t1.Compare(t2, cmp.Compare[int]); c >= 0 {
		t.Fatalf("expected key 'b' < 'c' to decide, got %d", c)
	}
	t3, _ := FromPairs(stringConfig, pairs("a", 1, "b", 3))
	if c := t1.Compare(t3, cmp.Compare[int]); c >= 0 {
		t.Fatalf("expected value 2 < 3 to decide, got %d", c)
	}
	if c := t3.Compare(t1, cmp.Compare[int]); c <= 0 {
		t.Fatalf("expected value 3 > 2 to decide, got %d", c)
	}
	if c := t1.Compare(big, cmp.Compare[int]); c != 0 {
		t.Fatalf("equal trees should compare 0, got %d", c)
	}
	var nilTree *Tree[string, int]
	if c := nilTree.Compare(newStringTree(t), cmp.Compare[int]); c != 0 {
		t.Fatalf("nil and empty trees should compare 0, got %d", c)
	}
}

func TestEqualIgnoresShape(t *testing.T) {
	// same bindings, inserted in different orders
	asc, desc := newStringTree(t), newStringTree(t)
	for i := range 64 {
		asc = asc.Add(string(rune('A'+i)), i)
		desc = desc.Add(string(rune('A'+63-i)), 63-i)
	}
	eq := func(a, b int) bool { return a == b }
	if !asc.Equal(desc, eq) || asc.Compare(desc, cmp.Compare[int]) != 0 {
		t.Fatalf("trees with equal bindings should be equal")
	}
	changed := desc.Add("B", 100)
	if asc.Equal(changed, eq) {
		t.Fatalf("trees with different values should not be equal")
	}
	if !asc.Equal(changed, func(a, b int) bool { return true }) {
		t.Fatalf("value equality should be decided by the supplied predicate")
	}
	if asc.Equal(asc.Remove("C"), eq) {
		t.Fatalf("trees of different size should not be equal")
	}
}
