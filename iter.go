package rbtree

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Iter visits every element in ascending order, or every element not less
// than start when one is given (an element comparing Equal to start is
// visited first, not skipped). f returns false to stop the walk; Iter reports
// whether the walk ran to completion. Recursion depth is bounded by the tree
// height. The tree must not be mutated during the walk.
func (me *Tree[T]) Iter(start g.Option[*T], f func(*T) bool) bool {
	if start.Ok {
		return me.iterStart(start.Value, me.root, f)
	}
	return me.iterAll(me.root, f)
}

func (me *Tree[T]) iterAll(node *T, f func(*T) bool) bool {
	if node == me.nilRef() {
		return true
	}
	return me.iterAll(me.left(node), f) && f(node) && me.iterAll(me.right(node), f)
}

func (me *Tree[T]) iterStart(start, node *T, f func(*T) bool) bool {
	if node == me.nilRef() {
		return true
	}
	cmp := me.cmp(start, node)
	if cmp == Equal {
		return f(node) && me.iterAll(me.right(node), f)
	}
	if cmp.left() {
		return me.iterStart(start, me.left(node), f) && f(node) && me.iterAll(me.right(node), f)
	}
	return me.iterStart(start, me.right(node), f)
}

// ReverseIter is Iter's descending mirror: every element, or every element
// not greater than start, in descending order.
func (me *Tree[T]) ReverseIter(start g.Option[*T], f func(*T) bool) bool {
	if start.Ok {
		return me.reverseIterStart(start.Value, me.root, f)
	}
	return me.reverseIterAll(me.root, f)
}

func (me *Tree[T]) reverseIterAll(node *T, f func(*T) bool) bool {
	if node == me.nilRef() {
		return true
	}
	return me.reverseIterAll(me.right(node), f) && f(node) && me.reverseIterAll(me.left(node), f)
}

func (me *Tree[T]) reverseIterStart(start, node *T, f func(*T) bool) bool {
	if node == me.nilRef() {
		return true
	}
	cmp := me.cmp(start, node)
	if cmp == Equal {
		return f(node) && me.reverseIterAll(me.left(node), f)
	}
	if cmp.left() {
		return me.reverseIterStart(start, me.left(node), f)
	}
	return me.reverseIterStart(start, me.right(node), f) && f(node) && me.reverseIterAll(me.left(node), f)
}

// All returns an ascending sequence over every element. The sequence is
// single-use per range statement but All can be ranged again.
func (me *Tree[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		me.Iter(g.None[*T](), yield)
	}
}

// From returns an ascending sequence starting at the smallest element not
// less than start.
func (me *Tree[T]) From(start *T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		me.Iter(g.Some(start), yield)
	}
}

// Backward returns a descending sequence over every element.
func (me *Tree[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		me.ReverseIter(g.None[*T](), yield)
	}
}

// BackwardFrom returns a descending sequence starting at the largest element
// not greater than start.
func (me *Tree[T]) BackwardFrom(start *T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		me.ReverseIter(g.Some(start), yield)
	}
}
