package hierarchy

import (
	"cmp"
	"errors"
)

// ErrCorruptTree is the panic value (wrapped) raised when the AVL variant
// finds a subtree whose cached heights cannot result from valid operations.
var ErrCorruptTree = errors.New("hierarchy: corrupt tree")

// Options configures a Tree.
type Options struct {
	// Balanced enables AVL rebalancing after every insert and delete.
	Balanced bool
}

// Option configures Options.
type Option func(*Options)

// WithBalancing enables AVL rebalancing.
func WithBalancing() Option {
	return func(o *Options) { o.Balanced = true }
}

// node is one tree entry. height counts nodes on the longest downward path,
// so a leaf has height 1.
type node[K cmp.Ordered] struct {
	key         K
	left, right *node[K]
	height      int
}

// Tree is a binary search tree of unique keys. The zero value is not usable;
// construct with New or NewAVL.
type Tree[K cmp.Ordered] struct {
	root     *node[K]
	size     int
	balanced bool
}

// Level is a key with its depth (root = 0), as listed by Levels.
type Level[K cmp.Ordered] struct {
	Key   K
	Depth int
}

// BalanceReport compares a tree's height with the best possible.
type BalanceReport struct {
	Size int
	// Height is the current height (0 for an empty tree).
	Height int
	// OptimalHeight is ⌈log₂(Size+1)⌉, the height of a complete tree.
	OptimalHeight int
	// Overhead is Height − OptimalHeight.
	Overhead int
	// Balanced reports the AVL height condition at every node.
	Balanced bool
}
