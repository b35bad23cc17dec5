package rbtree

// Node is the linkage embedded in each element of a Tree. Add one to your
// element type and hand the tree an accessor for it. A Node's contents are
// meaningless until the element is inserted: Insert fully initializes it, and
// Remove leaves it unspecified, so an element must be re-inserted (never
// relinked by hand) to rejoin a tree.
//
// Pointer+color-bit packing is not possible under Go's GC, so the color is a
// plain field. Updating it never disturbs the child references, and vice
// versa.
type Node[T any] struct {
	left  *T
	right *T
	red   bool
}
