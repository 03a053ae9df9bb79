package hierarchy

import (
	"cmp"
	"math/bits"
)

// Rebuild returns a new AVL tree holding the keys of t. Each subtree is
// built directly from a sorted sub-range with its midpoint as root, so the
// result has minimal height and never rotates. t is left untouched.
func Rebuild[K cmp.Ordered](t *Tree[K]) *Tree[K] {
	out := NewAVL[K]()
	keys := t.InOrder()
	var build func(lo, hi int) *node[K]
	build = func(lo, hi int) *node[K] {
		if lo > hi {
			return nil
		}
		mid := lo + (hi-lo)/2
		n := &node[K]{key: keys[mid]}
		n.left = build(lo, mid-1)
		n.right = build(mid+1, hi)
		update(n)

		return n
	}
	out.root = build(0, len(keys)-1)
	out.size = len(keys)

	return out
}

// Analyze measures how far t is from the shallowest tree of its size.
func Analyze[K cmp.Ordered](t *Tree[K]) BalanceReport {
	h, ok := check(t.root)
	optimal := bits.Len(uint(t.size))

	return BalanceReport{
		Size:          t.size,
		Height:        h,
		OptimalHeight: optimal,
		Overhead:      h - optimal,
		Balanced:      ok,
	}
}

// Levels lists every key with its depth in pre-order (node, left, right).
func Levels[K cmp.Ordered](t *Tree[K]) []Level[K] {
	out := make([]Level[K], 0, t.size)
	var walk func(n *node[K], depth int)
	walk = func(n *node[K], depth int) {
		if n == nil {
			return
		}
		out = append(out, Level[K]{Key: n.key, Depth: depth})
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(t.root, 0)

	return out
}
