// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/scene/tree"
	"cogentcore.org/scene/tree/testdata"
)

// assertOwnedOnce checks that every node below root is in exactly one
// children list, consistent with its parent reference.
func assertOwnedOnce(t *testing.T, root Node) {
	t.Helper()
	seen := map[Node]int{}
	root.AsTree().WalkDown(func(n Node) bool {
		for _, k := range n.AsTree().Children {
			seen[k]++
			assert.Equal(t, n, k.AsTree().Parent, "parent of %v", k)
		}
		return Continue
	})
	for n, c := range seen {
		assert.Equal(t, 1, c, "%v is owned %d times", n, c)
	}
}

func TestInitNode(t *testing.T) {
	f := &testdata.Folder{}
	InitNode(f)
	assert.Equal(t, f, f.This)
	assert.Len(t, f.ID, 36)
	id := f.ID
	InitNode(f)
	assert.Equal(t, id, f.ID)
	assert.NotEqual(t, NewID(), NewID())
}

func TestAddChild(t *testing.T) {
	root := testdata.NewFolder("root")
	a := testdata.NewLeaf(1, root)
	b := testdata.NewLeaf(2, root)
	assert.Equal(t, []Node{a, b}, root.Children)
	assert.Equal(t, Node(root), a.Parent)
	assert.Equal(t, 1, b.IndexInParent())
	assertOwnedOnce(t, root)
}

func TestAddChildInitializes(t *testing.T) {
	root := testdata.NewFolder("root")
	l := &testdata.Leaf{Value: 3}
	root.AddChild(l)
	assert.Equal(t, l, l.This)
	assert.NotEmpty(t, l.ID)
}

func TestMoveDetachesFirst(t *testing.T) {
	root := testdata.NewFolder("root")
	f1 := testdata.NewFolder("f1", root)
	f2 := testdata.NewFolder("f2", root)
	l := testdata.NewLeaf(1, f1)

	f2.AddChild(l)
	assert.Empty(t, f1.Children)
	assert.Equal(t, []Node{l}, f2.Children)
	assert.Equal(t, Node(f2), l.Parent)
	assertOwnedOnce(t, root)

	MoveToParent(l, f1)
	assert.Empty(t, f2.Children)
	assert.Equal(t, Node(f1), l.Parent)
	assertOwnedOnce(t, root)
}

func TestInsertChild(t *testing.T) {
	root := testdata.NewFolder("root")
	a := testdata.NewLeaf(1, root)
	b := testdata.NewLeaf(2, root)
	c := testdata.NewLeaf(3)
	root.InsertChild(c, 1)
	assert.Equal(t, []Node{a, c, b}, root.Children)

	// moving within the same parent
	root.InsertChild(a, 2)
	assert.Equal(t, []Node{c, b, a}, root.Children)
	assertOwnedOnce(t, root)

	assert.Panics(t, func() { root.InsertChild(testdata.NewLeaf(4), 5) })
	assert.Len(t, root.Children, 3)
}

func TestAddChildPanics(t *testing.T) {
	root := testdata.NewFolder("root")
	sub := testdata.NewFolder("sub", root)
	leaf := testdata.NewLeaf(1, sub)

	assert.Panics(t, func() { root.AddChild(nil) })
	assert.Panics(t, func() { sub.AddChild(root) }, "cycle")
	assert.Panics(t, func() { sub.AddChild(sub) }, "self")
	assert.Panics(t, func() { leaf.AddChild(testdata.NewLeaf(2)) }, "leaf")
	assert.Error(t, (&NodeBase{}).CanAddChild(leaf))
	assert.NoError(t, root.CanAddChild(leaf))

	// nothing moved
	assert.Equal(t, []Node{sub}, root.Children)
	assert.Equal(t, []Node{leaf}, sub.Children)
	assertOwnedOnce(t, root)
}

func TestRemoveChild(t *testing.T) {
	root := testdata.NewFolder("root")
	a := testdata.NewLeaf(1, root)
	b := testdata.NewLeaf(2, root)

	assert.True(t, root.RemoveChild(a))
	assert.Nil(t, a.Parent)
	assert.Equal(t, []Node{b}, root.Children)
	assert.False(t, root.RemoveChild(a))
	assert.False(t, root.RemoveChild(nil))
	assert.Nil(t, root.RemoveChildAt(3))

	b.Delete()
	assert.Empty(t, root.Children)
	assert.Nil(t, b.Parent)
}

func TestReplaceChild(t *testing.T) {
	root := testdata.NewFolder("root")
	a := testdata.NewLeaf(1, root)
	b := testdata.NewLeaf(2, root)
	c := testdata.NewLeaf(3, root)
	n := testdata.NewLeaf(4)

	require.True(t, root.ReplaceChild(b, n))
	assert.Equal(t, []Node{a, n, c}, root.Children)
	assert.Nil(t, b.Parent)
	assert.False(t, root.ReplaceChild(b, testdata.NewLeaf(5)))
}

func TestIsDescendantOf(t *testing.T) {
	root := testdata.NewFolder("root")
	sub := testdata.NewFolder("sub", root)
	leaf := testdata.NewLeaf(1, sub)
	other := testdata.NewLeaf(2)

	for _, n := range []Node{root, sub, leaf, other} {
		assert.True(t, n.AsTree().IsDescendantOf(n), "reflexive for %v", n)
	}
	assert.True(t, leaf.IsDescendantOf(root))
	assert.True(t, leaf.IsDescendantOf(sub))
	assert.False(t, root.IsDescendantOf(leaf))
	assert.False(t, other.IsDescendantOf(root))
	assert.False(t, leaf.IsDescendantOf(nil))

	assert.Equal(t, 2, leaf.ParentLevel(root))
	assert.Equal(t, -1, root.ParentLevel(leaf))
	assert.Equal(t, Node(root), Root(leaf))
	assert.True(t, IsRoot(root))
}

func TestFindByID(t *testing.T) {
	root := testdata.NewFolder("root")
	sub := testdata.NewFolder("sub", root)
	leaf := testdata.NewLeaf(1, sub)
	last := testdata.NewLeaf(2, root)

	assert.Equal(t, Node(leaf), root.FindByID(leaf.ID))
	assert.Equal(t, Node(last), root.FindByID(last.ID))
	assert.Equal(t, Node(root), root.FindByID(root.ID))
	assert.Nil(t, root.FindByID("missing"))
	assert.Nil(t, sub.FindByID(last.ID))

	// first match in child order wins
	dup := testdata.NewLeaf(3, root)
	dup.ID = leaf.ID
	assert.Equal(t, Node(leaf), root.FindByID(leaf.ID))
	assert.Equal(t, 1, IndexByID(root.Children, last.ID))
}
