// Package hierarchy provides an ordered binary search tree over any
// cmp.Ordered key, with an optional AVL balancing mode.
//
// It backs the command-priority structure of a response network: keys are
// priorities, and operators need fast lookup plus a shape that stays shallow
// as commands come and go.
//
// Variants:
//
//   - New[K]() builds a plain BST; its shape depends on insertion order.
//   - NewAVL[K]() (or New[K](WithBalancing())) re-checks the balance factor
//     on the way back up from every insert and delete and restores
//     |height(left) − height(right)| ≤ 1 with one of four rotations.
//
// Rebuild turns any tree into a height-balanced AVL tree by linking the
// midpoint of each sorted sub-range as its root. Analyze and Levels are read-only
// diagnostics for display layers.
//
// Nodes are owned by their parent only; every recursive operation returns
// the (possibly new) root of its subtree. Duplicate keys are rejected.
//
// A cached height that contradicts the tree's shape means the tree was
// corrupted; the AVL variant panics with ErrCorruptTree when it meets one.
//
// Complexity:
//
//   - AVL Insert, Delete, Search: O(log n).
//   - Plain BST: O(h), O(n) in the worst case.
//   - Height, IsBalanced, InOrder, Rebuild: O(n).
package hierarchy
