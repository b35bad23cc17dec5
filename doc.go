// Package rbtree implements an intrusive ordered set as a left-leaning 2-3
// red-black tree. Linkage is embedded in caller-owned elements, so the tree
// performs no allocation of its own and per-element overhead is a single
// small struct. Parent pointers are not kept. The algorithms derive from
// jemalloc's rb.h.
//
// Elements are handed to the tree by reference. The tree never copies or
// frees them; it only rewires their embedded Node and orders them with a
// caller-supplied comparison. An element's key must not change while it is in
// a tree, and its Node must not be touched by anything but the tree that owns
// it.
package rbtree
