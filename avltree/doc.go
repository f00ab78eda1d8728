/*
Package avltree provides a persistent, height-balanced binary search tree
for ordered maps.

Trees are immutable. Every update returns a new tree which shares all
untouched subtrees with its predecessor; only the path from the root to the
modified position is copied. Old versions stay valid and may be read from
any number of goroutines without synchronization.

Keys are ordered by a client supplied three-way comparison (see Config).
Values are opaque to the tree.

The package is organized in layers:
  - node primitives: height bookkeeping, `create` and the rotating
    rebalancer `bal`, which is the only rebalancing mechanism,
  - composition operators: `join` (two trees around a pivot, arbitrary height
    gap), `concat` (two trees without pivot) and `split`,
  - map operations built on top of them: Add, Remove, Get, Merge, …,
  - traversal, aggregation and comparison.

Balance is the strict AVL property: the heights of the two subtrees of any
node differ by at most one.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avltree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
