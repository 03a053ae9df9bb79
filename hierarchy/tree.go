package hierarchy

import (
	"cmp"
	"fmt"
)

// New returns an empty tree. Without options it is a plain BST.
func New[K cmp.Ordered](opts ...Option) *Tree[K] {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	return &Tree[K]{balanced: o.Balanced}
}

// NewAVL returns an empty self-balancing tree.
func NewAVL[K cmp.Ordered]() *Tree[K] {
	return New[K](WithBalancing())
}

// Balanced reports whether t rebalances itself.
func (t *Tree[K]) Balanced() bool { return t.balanced }

// Size returns the number of keys.
func (t *Tree[K]) Size() int { return t.size }

// Insert adds key and reports whether it was absent.
func (t *Tree[K]) Insert(key K) bool {
	var added bool
	t.root = t.insert(t.root, key, &added)
	if added {
		t.size++
	}

	return added
}

func (t *Tree[K]) insert(n *node[K], key K, added *bool) *node[K] {
	if n == nil {
		*added = true
		return &node[K]{key: key, height: 1}
	}
	switch {
	case key < n.key:
		n.left = t.insert(n.left, key, added)
	case key > n.key:
		n.right = t.insert(n.right, key, added)
	default:
		return n
	}

	return t.fix(n)
}

// Delete removes key and reports whether it was present. A node with two
// children takes its in-order successor's key, and the successor is then
// deleted from the right subtree.
func (t *Tree[K]) Delete(key K) bool {
	var removed bool
	t.root = t.delete(t.root, key, &removed)
	if removed {
		t.size--
	}

	return removed
}

func (t *Tree[K]) delete(n *node[K], key K, removed *bool) *node[K] {
	if n == nil {
		return nil
	}
	switch {
	case key < n.key:
		n.left = t.delete(n.left, key, removed)
	case key > n.key:
		n.right = t.delete(n.right, key, removed)
	default:
		*removed = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		succ := minNode(n.right)
		n.key = succ.key
		var ignored bool
		n.right = t.delete(n.right, succ.key, &ignored)
	}

	return t.fix(n)
}

// Search reports whether key is present.
func (t *Tree[K]) Search(key K) bool {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Min returns the smallest key; ok is false for an empty tree.
func (t *Tree[K]) Min() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}

	return minNode(t.root).key, true
}

// Max returns the largest key; ok is false for an empty tree.
func (t *Tree[K]) Max() (key K, ok bool) {
	n := t.root
	if n == nil {
		return key, false
	}
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}

// InOrder returns the keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	out := make([]K, 0, t.size)
	var walk func(*node[K])
	walk = func(n *node[K]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// PreOrder returns the keys root first, then left subtree, then right.
func (t *Tree[K]) PreOrder() []K {
	out := make([]K, 0, t.size)
	for _, l := range Levels(t) {
		out = append(out, l.Key)
	}

	return out
}

// Height walks the tree and returns its height (0 when empty). It does not
// trust cached heights.
func (t *Tree[K]) Height() int {
	h, _ := check(t.root)
	return h
}

// IsBalanced walks the tree and reports whether every node satisfies the
// AVL height condition.
func (t *Tree[K]) IsBalanced() bool {
	_, ok := check(t.root)
	return ok
}

// check returns the measured height of n and whether its subtree is
// height-balanced.
func check[K cmp.Ordered](n *node[K]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := check(n.left)
	rh, rok := check(n.right)
	diff := lh - rh

	return 1 + max(lh, rh), lok && rok && diff >= -1 && diff <= 1
}

// fix refreshes n's cached height and, for the AVL variant, rebalances.
func (t *Tree[K]) fix(n *node[K]) *node[K] {
	update(n)
	if !t.balanced {
		return n
	}

	return rebalance(n)
}

func minNode[K cmp.Ordered](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func update[K cmp.Ordered](n *node[K]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func balanceFactor[K cmp.Ordered](n *node[K]) int {
	return height(n.left) - height(n.right)
}

// corrupt panics with ErrCorruptTree.
func corrupt[K cmp.Ordered](n *node[K], bf int) {
	panic(fmt.Errorf("%w: balance factor %d at key %v", ErrCorruptTree, bf, n.key))
}
