package rbtree

import (
	"github.com/anacrolix/missinggo/v2/panicif"
)

// Insert links node into the tree. The node must not already be a member of
// any tree, and no current member may compare Equal to it: inserting a
// duplicate key is a fatal programming error, not a recoverable outcome.
//
// The descent is recorded on a path stack, then unwound bottom-up applying
// the left-leaning fixups: right-rotate a red-red left spine, split a 4-node,
// or left-rotate a lone red right child.
func (me *Tree[T]) Insert(node *T) {
	var path [maxHeight]pathElem[T]
	n := me.node(node)
	n.left = me.nilRef()
	n.right = me.nilRef()
	n.red = true

	// Wind.
	path[0].node = me.root
	i := 0
	for ; path[i].node != me.nilRef(); i++ {
		cmp := me.cmp(node, path[i].node)
		panicif.Eq(cmp, Equal)
		path[i].cmp = cmp
		if cmp.left() {
			path[i+1].node = me.left(path[i].node)
		} else {
			path[i+1].node = me.right(path[i].node)
		}
	}
	path[i].node = node

	// Unwind.
	for i--; i >= 0; i-- {
		cnode := path[i].node
		if path[i].cmp.left() {
			left := path[i+1].node
			me.setLeft(cnode, left)
			if !me.red(left) {
				return
			}
			leftLeft := me.left(left)
			if me.red(leftLeft) {
				// Fix up 4-node.
				me.setBlack(leftLeft)
				cnode = me.rotateRight(cnode)
			}
		} else {
			right := path[i+1].node
			me.setRight(cnode, right)
			if !me.red(right) {
				return
			}
			left := me.left(cnode)
			if me.red(left) {
				// Split 4-node.
				me.setBlack(left)
				me.setBlack(right)
				me.setRed(cnode)
			} else {
				// Lean left.
				tred := me.red(cnode)
				tnode := me.rotateLeft(cnode)
				me.setColor(tnode, tred)
				me.setRed(cnode)
				cnode = tnode
			}
		}
		path[i].node = cnode
	}

	// Set root, and make it black.
	me.root = path[0].node
	me.setBlack(me.root)
}
