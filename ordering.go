package rbtree

import (
	"golang.org/x/exp/constraints"
)

// Ordering is the result of comparing two elements. Incomparable is allowed
// so partial orders can be dropped in unchanged: the tree treats it exactly
// like Less everywhere directions are taken. The values are arranged so that
// the normalization is a single comparison against Equal.
type Ordering int8

const (
	Incomparable Ordering = iota - 2
	Less
	Equal
	Greater
)

// Whether an operation comparing like this descends into the left child.
func (me Ordering) left() bool {
	return me < Equal
}

// CompareOrdered is a ready-made comparison for keys with a natural order.
func CompareOrdered[T constraints.Ordered](l, r T) Ordering {
	switch {
	case l < r:
		return Less
	case r < l:
		return Greater
	default:
		return Equal
	}
}
