package hierarchy

import "cmp"

// rebalance restores the AVL condition at n after one insert or delete
// below it and returns the new subtree root.
//
// Cases:
//   - Left-Left   (bf > 1, left child bf ≥ 0): rotate right.
//   - Left-Right  (bf > 1, left child bf < 0): rotate left child left, then n right.
//   - Right-Right (bf < −1, right child bf ≤ 0): rotate left.
//   - Right-Left  (bf < −1, right child bf > 0): rotate right child right, then n left.
//
// A single operation can unbalance a node by at most 2; anything larger
// means the tree was corrupted beforehand.
func rebalance[K cmp.Ordered](n *node[K]) *node[K] {
	bf := balanceFactor(n)
	switch {
	case bf > 2 || bf < -2:
		corrupt(n, bf)
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}

// rotateRight lifts y's left child:
//
//	    y          x
//	   / \        / \
//	  x   C  =>  A   y
//	 / \            / \
//	A   B          B   C
func rotateRight[K cmp.Ordered](y *node[K]) *node[K] {
	x := y.left
	y.left = x.right
	x.right = y
	update(y)
	update(x)

	return x
}

// rotateLeft lifts x's right child:
//
//	  x              y
//	 / \            / \
//	A   y    =>    x   C
//	   / \        / \
//	  B   C      A   B
func rotateLeft[K cmp.Ordered](x *node[K]) *node[K] {
	y := x.right
	x.right = y.left
	y.left = x
	update(x)
	update(y)

	return y
}
