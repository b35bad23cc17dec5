package rbtree

import (
	"github.com/anacrolix/missinggo/v2/panicif"
)

// Remove unlinks node from the tree. The node must currently be a member;
// removing an absent element is a fatal programming error.
//
// The wind phase records the path to node and on to the minimum of its right
// subtree (its in-order successor). If node has two children the successor
// assumes node's structural role and node is pruned from the successor's old
// position. Pruning a red node needs no fixup; pruning a black one unwinds
// the path applying the six rebalancing cases (three per side) until black
// height is restored.
func (me *Tree[T]) Remove(node *T) {
	var path [maxHeight]pathElem[T]
	path[0].node = me.root

	// Wind to node, then onward to the minimum of its right subtree.
	i := 0
	for ; ; i++ {
		// Hitting the sentinel means node was never in the tree.
		panicif.Eq(path[i].node, me.nilRef())
		cmp := me.cmp(node, path[i].node)
		path[i].cmp = cmp
		if cmp == Equal {
			path[i+1].node = me.right(path[i].node)
			break
		}
		if cmp.left() {
			path[i+1].node = me.left(path[i].node)
		} else {
			path[i+1].node = me.right(path[i].node)
		}
	}
	nodep := i
	// The prune happens below node, so the unwind must relink through node's
	// right side.
	path[nodep].cmp = Greater
	for i++; path[i].node != me.nilRef(); i++ {
		path[i].cmp = Less
		path[i+1].node = me.left(path[i].node)
	}
	i--
	panicif.NotEq(path[nodep].node, node)

	if path[i].node != node {
		// node has two children: its successor takes over node's color and
		// children, and node is left at the successor's old path position to
		// be pruned.
		succ := path[i].node
		tred := me.red(succ)
		me.setColor(succ, me.red(node))
		me.setLeft(succ, me.left(node))
		// If the successor is node's own right child this wires the wrong
		// right child, but the link is corrected when node is pruned from the
		// successor's old position below.
		me.setRight(succ, me.right(node))
		me.setColor(node, tred)
		// The pruned position's child links are never read again, so they
		// aren't cleared.
		path[nodep].node = succ
		path[i].node = node
		if nodep == 0 {
			me.root = succ
		} else {
			me.relink(path[nodep-1], succ)
		}
	} else {
		left := me.left(node)
		if left != me.nilRef() {
			// node has a left child but no successor. Splice node out and
			// promote the left child, blackened to keep the black height.
			panicif.True(me.red(node))
			panicif.False(me.red(left))
			me.setBlack(left)
			if i == 0 {
				me.root = left
			} else {
				me.relink(path[i-1], left)
			}
			return
		}
		if i == 0 {
			// The tree only contained node.
			me.root = me.nilRef()
			return
		}
	}

	if me.red(path[i].node) {
		// Pruning a red leaf requires no fixup.
		panicif.False(path[i-1].cmp.left())
		me.setLeft(path[i-1].node, me.nilRef())
		return
	}

	// The pruned element is black, so unwind until balance is restored. In
	// the diagrams below, || and // or \\ mark the path to the pruned node.
	path[i].node = me.nilRef()
	for i--; i >= 0; i-- {
		panicif.Eq(path[i].cmp, Equal)
		if path[i].cmp.left() {
			me.setLeft(path[i].node, path[i+1].node)
			if me.red(path[i].node) {
				right := me.right(path[i].node)
				rightLeft := me.left(right)
				var tnode *T
				if me.red(rightLeft) {
					//      ||
					//    path(r)
					//  //      \
					// (b)      (b)
					//          /
					//        (r)
					me.setBlack(path[i].node)
					me.setRight(path[i].node, me.rotateRight(right))
					tnode = me.rotateLeft(path[i].node)
				} else {
					//      ||
					//    path(r)
					//  //      \
					// (b)      (b)
					//          /
					//        (b)
					tnode = me.rotateLeft(path[i].node)
				}
				// Balance restored, but the rotation changed the subtree
				// root. A red node is never the tree root.
				panicif.Eq(i, 0)
				me.relink(path[i-1], tnode)
				return
			}
			right := me.right(path[i].node)
			rightLeft := me.left(right)
			if me.red(rightLeft) {
				//      ||
				//    path(b)
				//  //      \
				// (b)      (b)
				//          /
				//        (r)
				me.setBlack(rightLeft)
				me.setRight(path[i].node, me.rotateRight(right))
				tnode := me.rotateLeft(path[i].node)
				// Balance restored, but the subtree root changed, and it may
				// be the tree root.
				if i == 0 {
					me.root = tnode
				} else {
					me.relink(path[i-1], tnode)
				}
				return
			}
			//      ||
			//    path(b)
			//  //      \
			// (b)      (b)
			//          /
			//        (b)
			me.setRed(path[i].node)
			path[i].node = me.rotateLeft(path[i].node)
			// Still a black short on this subtree: keep unwinding.
		} else {
			me.setRight(path[i].node, path[i+1].node)
			left := me.left(path[i].node)
			if me.red(left) {
				var tnode *T
				leftRight := me.right(left)
				leftRightLeft := me.left(leftRight)
				if me.red(leftRightLeft) {
					//      ||
					//    path(b)
					//   /      \\
					// (r)      (b)
					//   \
					//   (b)
					//   /
					// (r)
					me.setBlack(leftRightLeft)
					unode := me.rotateRight(path[i].node)
					me.setRight(unode, me.rotateRight(path[i].node))
					tnode = me.rotateLeft(unode)
				} else {
					//      ||
					//    path(b)
					//   /      \\
					// (r)      (b)
					//   \
					//   (b)
					panicif.Eq(leftRight, me.nilRef())
					me.setRed(leftRight)
					tnode = me.rotateRight(path[i].node)
					me.setBlack(tnode)
				}
				// Balance restored, but the subtree root changed, and it may
				// be the tree root.
				if i == 0 {
					me.root = tnode
				} else {
					me.relink(path[i-1], tnode)
				}
				return
			} else if me.red(path[i].node) {
				leftLeft := me.left(left)
				if me.red(leftLeft) {
					//        ||
					//      path(r)
					//     /      \\
					//   (b)      (b)
					//   /
					// (r)
					me.setBlack(path[i].node)
					me.setRed(left)
					me.setBlack(leftLeft)
					tnode := me.rotateRight(path[i].node)
					// Balance restored, but the subtree root changed. A red
					// node is never the tree root.
					panicif.Eq(i, 0)
					me.relink(path[i-1], tnode)
					return
				}
				//        ||
				//      path(r)
				//     /      \\
				//   (b)      (b)
				//   /
				// (b)
				me.setRed(left)
				me.setBlack(path[i].node)
				// Balance restored.
				return
			} else {
				leftLeft := me.left(left)
				if me.red(leftLeft) {
					//             ||
					//           path(b)
					//          /      \\
					//        (b)      (b)
					//        /
					//      (r)
					me.setBlack(leftLeft)
					tnode := me.rotateRight(path[i].node)
					if i == 0 {
						me.root = tnode
					} else {
						me.relink(path[i-1], tnode)
					}
					return
				}
				//             ||
				//           path(b)
				//          /      \\
				//        (b)      (b)
				//        /
				//      (b)
				me.setRed(left)
				// Keep unwinding.
			}
		}
	}

	// The deficit propagated all the way up, which just shortens every path
	// equally. Set the root.
	me.root = path[0].node
	panicif.True(me.red(me.root))
}
