package rbtree

import (
	"math/bits"

	"github.com/anacrolix/missinggo/v2/panicif"
)

// Tree is an ordered set of caller-owned elements of type T. The zero value
// is not ready for use: call Init (or construct with New). A Tree must not be
// copied after Init, as the sentinel it embeds is self-referential.
//
// Operations are unsynchronized. Mutating the tree, or an in-tree element's
// key, concurrently with any other operation is the caller's problem to
// prevent.
type Tree[T any] struct {
	root *T
	// Total preorder over elements. Incomparable results are treated as Less.
	cmp func(l, r *T) Ordering
	// Returns the Node embedded in an element. Must not allocate.
	node func(*T) *Node[T]
	// The shared "no child" element. Always black, and its own left and right
	// child, so link-chasing code never checks for nil.
	nil_ T
}

// New returns an initialized empty tree using the given comparison and
// linkage accessor.
func New[T any](
	cmp func(l, r *T) Ordering,
	node func(*T) *Node[T],
) *Tree[T] {
	t := new(Tree[T])
	t.Init(cmp, node)
	return t
}

// Init readies an empty tree in place, for embedding Tree values without a
// separate allocation.
func (me *Tree[T]) Init(
	cmp func(l, r *T) Ordering,
	node func(*T) *Node[T],
) {
	me.cmp = cmp
	me.node = node
	me.root = me.nilRef()
	n := me.node(me.nilRef())
	n.left = me.nilRef()
	n.right = me.nilRef()
	n.red = false
}

func (me *Tree[T]) nilRef() *T {
	return &me.nil_
}

// Converts internal sentinel references to nil for callers.
func (me *Tree[T]) sanitize(ptr *T) *T {
	if ptr == me.nilRef() {
		return nil
	}
	return ptr
}

func (me *Tree[T]) left(x *T) *T      { return me.node(x).left }
func (me *Tree[T]) right(x *T) *T     { return me.node(x).right }
func (me *Tree[T]) setLeft(x, to *T)  { me.node(x).left = to }
func (me *Tree[T]) setRight(x, to *T) { me.node(x).right = to }
func (me *Tree[T]) red(x *T) bool     { return me.node(x).red }
func (me *Tree[T]) setRed(x *T)       { me.node(x).red = true }
func (me *Tree[T]) setBlack(x *T)     { me.node(x).red = false }

func (me *Tree[T]) setColor(x *T, red bool) {
	me.node(x).red = red
}

// Rotates the subtree rooted at x left, returning the new subtree root.
// Colors are untouched; callers fix them per case.
func (me *Tree[T]) rotateLeft(x *T) *T {
	oldRight := me.right(x)
	me.setRight(x, me.left(oldRight))
	me.setLeft(oldRight, x)
	return oldRight
}

func (me *Tree[T]) rotateRight(x *T) *T {
	oldLeft := me.left(x)
	me.setLeft(x, me.right(oldLeft))
	me.setRight(oldLeft, x)
	return oldLeft
}

// Insert and Remove record their descent here so they can unwind without
// parent pointers. Twice the pointer width is ample: a valid red-black tree
// over any addressable number of elements is at most 2*log2(n)+1 deep.
const maxHeight = 2 * bits.UintSize

type pathElem[T any] struct {
	node *T
	cmp  Ordering
}

// Redirects the child link recorded at a path step to point at child.
func (me *Tree[T]) relink(parent pathElem[T], child *T) {
	if parent.cmp.left() {
		me.setLeft(parent.node, child)
	} else {
		me.setRight(parent.node, child)
	}
}

func (me *Tree[T]) firstFrom(subtree *T) *T {
	node := subtree
	if node != me.nilRef() {
		for me.left(node) != me.nilRef() {
			node = me.left(node)
		}
	}
	return node
}

func (me *Tree[T]) lastFrom(subtree *T) *T {
	node := subtree
	if node != me.nilRef() {
		for me.right(node) != me.nilRef() {
			node = me.right(node)
		}
	}
	return node
}

// First returns the minimum element, or nil if the tree is empty.
func (me *Tree[T]) First() *T {
	return me.sanitize(me.firstFrom(me.root))
}

// Last returns the maximum element, or nil if the tree is empty.
func (me *Tree[T]) Last() *T {
	return me.sanitize(me.lastFrom(me.root))
}

// Next returns node's in-order successor, or nil if node is the maximum. The
// node must be in the tree: without parent pointers the successor of a node
// with no right child is found by searching from the root, which only
// terminates on an Equal comparison.
func (me *Tree[T]) Next(node *T) *T {
	var ret *T
	if me.right(node) != me.nilRef() {
		ret = me.firstFrom(me.right(node))
	} else {
		tnode := me.root
		ret = me.nilRef()
		panicif.Eq(tnode, me.nilRef())
		for {
			cmp := me.cmp(node, tnode)
			if cmp == Equal {
				break
			}
			if cmp.left() {
				ret = tnode
				tnode = me.left(tnode)
			} else {
				tnode = me.right(tnode)
			}
			panicif.Eq(tnode, me.nilRef())
		}
	}
	return me.sanitize(ret)
}

// Prev returns node's in-order predecessor, or nil if node is the minimum.
// The node must be in the tree.
func (me *Tree[T]) Prev(node *T) *T {
	var ret *T
	if me.left(node) != me.nilRef() {
		ret = me.lastFrom(me.left(node))
	} else {
		tnode := me.root
		ret = me.nilRef()
		panicif.Eq(tnode, me.nilRef())
		for {
			cmp := me.cmp(node, tnode)
			if cmp == Equal {
				break
			}
			if cmp.left() {
				tnode = me.left(tnode)
			} else {
				ret = tnode
				tnode = me.right(tnode)
			}
			panicif.Eq(tnode, me.nilRef())
		}
	}
	return me.sanitize(ret)
}

// Search returns the element comparing Equal to key, or nil. The key is
// itself an element reference, typically a stack-allocated probe with only
// its key fields set.
func (me *Tree[T]) Search(key *T) *T {
	ret := me.root
	for ret != me.nilRef() {
		cmp := me.cmp(key, ret)
		if cmp == Equal {
			break
		}
		if cmp.left() {
			ret = me.left(ret)
		} else {
			ret = me.right(ret)
		}
	}
	return me.sanitize(ret)
}

// Nsearch returns the smallest element not less than key (the ceiling), or
// nil.
func (me *Tree[T]) Nsearch(key *T) *T {
	ret := me.nilRef()
	tnode := me.root
	for tnode != me.nilRef() {
		cmp := me.cmp(key, tnode)
		if cmp == Equal {
			ret = tnode
			break
		}
		if cmp.left() {
			ret = tnode
			tnode = me.left(tnode)
		} else {
			tnode = me.right(tnode)
		}
	}
	return me.sanitize(ret)
}

// Psearch returns the largest element not greater than key (the floor), or
// nil.
func (me *Tree[T]) Psearch(key *T) *T {
	ret := me.nilRef()
	tnode := me.root
	for tnode != me.nilRef() {
		cmp := me.cmp(key, tnode)
		if cmp == Equal {
			ret = tnode
			break
		}
		if cmp.left() {
			tnode = me.left(tnode)
		} else {
			ret = tnode
			tnode = me.right(tnode)
		}
	}
	return me.sanitize(ret)
}
