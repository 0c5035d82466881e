package polyclipping

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPolyTreeHole(t *testing.T) {
	outer := Path{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	inner := Path{{25, 25}, {25, 75}, {75, 75}, {75, 25}} // opposite orientation
	c := &Clipper{}
	test.Error(t, c.AddPaths(Paths{outer, inner}, Subject, false))
	tree, open, ok := c.ExecuteTree(Union, NonZero)
	test.That(t, ok)
	test.T(t, len(open), 0)

	test.T(t, tree.ChildCount(), 1)
	node := tree.Child(0)
	test.That(t, !node.IsHole())
	test.T(t, canonicalRing(node.Path()).String(), canonicalRing(outer).String())

	test.T(t, node.ChildCount(), 1)
	hole := node.Child(0)
	test.That(t, hole.IsHole())
	test.T(t, hole.Parent(), node)
	test.T(t, canonicalRing(hole.Path()).String(), canonicalRing(inner).String())

	test.T(t, len(tree.Paths()), 2)
}

func TestPolyTreeNested(t *testing.T) {
	// an island inside a hole inside an outer ring
	outer := Path{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	hole := Path{{20, 20}, {20, 80}, {80, 80}, {80, 20}} // opposite orientation
	island := Path{{40, 40}, {60, 40}, {60, 60}, {40, 60}}
	c := &Clipper{}
	test.Error(t, c.AddPaths(Paths{outer, hole, island}, Subject, false))
	tree, _, ok := c.ExecuteTree(Union, NonZero)
	test.That(t, ok)

	// depth parity alternates: outer, hole, outer
	test.T(t, tree.ChildCount(), 1)
	n1 := tree.Child(0)
	test.That(t, !n1.IsHole())
	test.T(t, n1.ChildCount(), 1)
	n2 := n1.Child(0)
	test.That(t, n2.IsHole())
	test.T(t, n2.ChildCount(), 1)
	n3 := n2.Child(0)
	test.That(t, !n3.IsHole())
	test.T(t, canonicalRing(n3.Path()).String(), canonicalRing(island).String())
}

func TestPolyTreeChildRange(t *testing.T) {
	tree := &PolyTree{}
	tree.addChild(Path{{0, 0}, {10, 0}, {10, 10}})
	test.T(t, tree.ChildCount(), 1)

	for _, i := range []int{-1, 1} {
		func() {
			defer func() {
				test.That(t, recover() != nil, "Child must panic for index", i)
			}()
			tree.Child(i)
		}()
	}
}

func TestPolyTreeClear(t *testing.T) {
	tree := &PolyTree{}
	tree.addChild(Path{{0, 0}, {10, 0}, {10, 10}})
	tree.Clear()
	test.T(t, tree.ChildCount(), 0)
	test.T(t, len(tree.Paths()), 0)
}
