package rbtree

import (
	"testing"

	g "github.com/anacrolix/generics"
	qt "github.com/go-quicktest/qt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intElem struct {
	key  int
	node Node[intElem]
}

func intCmp(l, r *intElem) Ordering {
	return CompareOrdered(l.key, r.key)
}

func intNode(e *intElem) *Node[intElem] {
	return &e.node
}

func newIntTree() *Tree[intElem] {
	return New(intCmp, intNode)
}

func intProbe(key int) *intElem {
	return &intElem{key: key}
}

func insertKeys(tree *Tree[intElem], keys ...int) map[int]*intElem {
	elems := make(map[int]*intElem, len(keys))
	for _, key := range keys {
		e := intProbe(key)
		tree.Insert(e)
		elems[key] = e
	}
	return elems
}

func collectKeys(tree *Tree[intElem]) (keys []int) {
	for e := range tree.All() {
		keys = append(keys, e.key)
	}
	return
}

func TestEmptyTree(t *testing.T) {
	tree := newIntTree()
	qt.Assert(t, qt.IsNil(tree.First()))
	qt.Assert(t, qt.IsNil(tree.Last()))
	qt.Assert(t, qt.IsNil(tree.Search(intProbe(42))))
	qt.Assert(t, qt.IsNil(tree.Nsearch(intProbe(42))))
	qt.Assert(t, qt.IsNil(tree.Psearch(intProbe(42))))
	visited := false
	qt.Assert(t, qt.IsTrue(tree.Iter(g.None[*intElem](), func(*intElem) bool {
		visited = true
		return true
	})))
	qt.Assert(t, qt.IsFalse(visited))
}

func TestSingleElement(t *testing.T) {
	tree := newIntTree()
	e := intProbe(7)
	tree.Insert(e)
	qt.Assert(t, qt.Equals(tree.First(), e))
	qt.Assert(t, qt.Equals(tree.Last(), e))
	qt.Assert(t, qt.Equals(tree.Search(intProbe(7)), e))
	qt.Assert(t, qt.IsNil(tree.Next(e)))
	qt.Assert(t, qt.IsNil(tree.Prev(e)))
	tree.Remove(e)
	qt.Assert(t, qt.IsNil(tree.First()))
	qt.Assert(t, qt.IsNil(tree.Search(intProbe(7))))
}

// The worked two-children removal scenario: the successor takes the removed
// element's structural place.
func TestRemoveElementWithTwoChildren(t *testing.T) {
	tree := newIntTree()
	elems := insertKeys(tree, 5, 3, 8, 1, 4, 7, 9)
	assert.Equal(t, 1, tree.First().key)
	assert.Equal(t, 9, tree.Last().key)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, collectKeys(tree))

	tree.Remove(elems[5])
	requireValidTree(t, tree)
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, collectKeys(tree))

	assert.Nil(t, tree.Search(intProbe(6)))
	assert.Equal(t, 7, tree.Nsearch(intProbe(6)).key)
	assert.Equal(t, 4, tree.Psearch(intProbe(6)).key)
}

func TestSearchVariants(t *testing.T) {
	tree := newIntTree()
	insertKeys(tree, 10, 20, 30)

	// Exact hits.
	for _, key := range []int{10, 20, 30} {
		require.NotNil(t, tree.Search(intProbe(key)))
		require.Equal(t, key, tree.Search(intProbe(key)).key)
		// Ceiling and floor of a present key are the key itself.
		require.Equal(t, key, tree.Nsearch(intProbe(key)).key)
		require.Equal(t, key, tree.Psearch(intProbe(key)).key)
	}

	// Misses.
	assert.Nil(t, tree.Search(intProbe(15)))
	assert.Equal(t, 20, tree.Nsearch(intProbe(15)).key)
	assert.Equal(t, 10, tree.Psearch(intProbe(15)).key)
	// Off both ends.
	assert.Equal(t, 10, tree.Nsearch(intProbe(-1)).key)
	assert.Nil(t, tree.Psearch(intProbe(-1)))
	assert.Nil(t, tree.Nsearch(intProbe(31)))
	assert.Equal(t, 30, tree.Psearch(intProbe(31)).key)
}

func TestNextPrevWalk(t *testing.T) {
	tree := newIntTree()
	keys := []int{13, 2, 29, 5, 23, 3, 11, 7, 19, 17}
	insertKeys(tree, keys...)

	var forward []int
	for e := tree.First(); e != nil; e = tree.Next(e) {
		forward = append(forward, e.key)
	}
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, forward)

	var backward []int
	for e := tree.Last(); e != nil; e = tree.Prev(e) {
		backward = append(backward, e.key)
	}
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	assert.Equal(t, forward, backward)
}

// Elements removed and re-inserted must rejoin cleanly even though Remove
// leaves their linkage unspecified.
func TestReinsertAfterRemove(t *testing.T) {
	tree := newIntTree()
	elems := insertKeys(tree, 1, 2, 3, 4, 5)
	tree.Remove(elems[3])
	assert.Equal(t, []int{1, 2, 4, 5}, collectKeys(tree))
	tree.Insert(elems[3])
	requireValidTree(t, tree)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collectKeys(tree))
}

func TestInsertDuplicatePanics(t *testing.T) {
	tree := newIntTree()
	insertKeys(tree, 1)
	assert.Panics(t, func() { tree.Insert(intProbe(1)) })
}

func TestRemoveAbsentPanics(t *testing.T) {
	tree := newIntTree()
	insertKeys(tree, 1, 2)
	assert.Panics(t, func() { tree.Remove(intProbe(3)) })
}

// Incomparable must steer exactly like Less wherever a direction is taken.
func TestIncomparableTreatedAsLess(t *testing.T) {
	tree := New(
		func(l, r *intElem) Ordering {
			cmp := intCmp(l, r)
			if cmp == Less {
				return Incomparable
			}
			return cmp
		},
		intNode,
	)
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(intProbe(key))
	}
	var keys []int
	for e := range tree.All() {
		keys = append(keys, e.key)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keys)
	assert.Equal(t, 7, tree.Nsearch(intProbe(6)).key)
	assert.Equal(t, 4, tree.Psearch(intProbe(6)).key)
	assert.Equal(t, 5, tree.Search(intProbe(5)).key)
}

func TestInitInPlace(t *testing.T) {
	// A Tree embedded in a larger value, initialized without New.
	var owner struct {
		tree Tree[intElem]
	}
	owner.tree.Init(intCmp, intNode)
	e := intProbe(1)
	owner.tree.Insert(e)
	qt.Assert(t, qt.Equals(owner.tree.First(), e))
}
