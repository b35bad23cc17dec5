// Hammers a tree with random insert/remove churn, cross-checking membership,
// ordering and the successor walk against a map as it goes. Profiling is
// available through the envpprof import if GOPPROF is set.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
	"github.com/anacrolix/rbtree"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
)

type element struct {
	key  uint64
	node rbtree.Node[element]
}

func compareElements(l, r *element) rbtree.Ordering {
	return rbtree.CompareOrdered(l.key, r.key)
}

func elementNode(e *element) *rbtree.Node[element] {
	return &e.node
}

var flags = struct {
	Ops        uint64 `help:"total operations to run"`
	Keyspace   uint64 `help:"key range; smaller means more removes"`
	CheckEvery uint64 `help:"validate every this many operations"`
	Seed       uint64 `help:"rng seed"`
}{
	Ops:        10_000_000,
	Keyspace:   1 << 20,
	CheckEvery: 1 << 16,
	Seed:       42,
}

func main() {
	defer envpprof.Stop()
	arg.MustParse(&flags)
	if err := stress(); err != nil {
		log.Printf("stress failed: %v", err)
		os.Exit(1)
	}
}

func stress() error {
	tree := rbtree.New(compareElements, elementNode)
	members := make(map[uint64]*element)
	rng := rand.New(rand.NewPCG(flags.Seed, 0))
	for op := uint64(1); op <= flags.Ops; op++ {
		key := rng.Uint64N(flags.Keyspace)
		if e, ok := members[key]; ok {
			tree.Remove(e)
			delete(members, key)
		} else {
			e := &element{key: key}
			tree.Insert(e)
			members[key] = e
		}
		if op%flags.CheckEvery == 0 {
			if err := validate(tree, members); err != nil {
				return fmt.Errorf("after %v ops: %w", humanize.Comma(int64(op)), err)
			}
			log.Printf(
				"%v ops, %v members",
				humanize.Comma(int64(op)),
				humanize.Comma(int64(len(members))))
		}
	}
	return validate(tree, members)
}

// Everything checkable from outside the tree: member count, strict ordering,
// membership both ways, endpoints, and agreement between traversal and the
// successor walk.
func validate(tree *rbtree.Tree[element], members map[uint64]*element) error {
	var walked []uint64
	ok := tree.Iter(g.None[*element](), func(e *element) bool {
		if len(walked) > 0 && e.key <= walked[len(walked)-1] {
			return false
		}
		if members[e.key] != e {
			return false
		}
		walked = append(walked, e.key)
		return true
	})
	if !ok {
		return fmt.Errorf("walk out of order or visited non-member: %s", spew.Sdump(tail(walked, 8)))
	}
	if len(walked) != len(members) {
		return fmt.Errorf("walk visited %d elements, want %d", len(walked), len(members))
	}
	if len(members) == 0 {
		if tree.First() != nil || tree.Last() != nil {
			return fmt.Errorf("empty tree has endpoints")
		}
		return nil
	}
	if tree.First().key != walked[0] || tree.Last().key != walked[len(walked)-1] {
		return fmt.Errorf("endpoints disagree with traversal")
	}
	i := 0
	for e := tree.First(); e != nil; e = tree.Next(e) {
		if i >= len(walked) || e.key != walked[i] {
			return fmt.Errorf("successor walk diverged from traversal at index %d", i)
		}
		i++
	}
	if i != len(walked) {
		return fmt.Errorf("successor walk stopped early at index %d", i)
	}
	return nil
}

func tail(keys []uint64, n int) []uint64 {
	if len(keys) <= n {
		return keys
	}
	return keys[len(keys)-n:]
}
