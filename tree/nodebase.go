// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
)

// NodeBase implements the [Node] interface and provides the core functionality
// of the scene tree. You must use NodeBase as an embedded struct
// in all higher-level tree types, tagged with `copier:"-"` so that copying
// the fields of one node to another never copies tree structure.
//
// All nodes must be initialized with [InitNode] before use, which sets
// the [NodeBase.This] field and assigns an id. [NodeBase.AddChild] and
// [NodeBase.InsertChild] initialize the child automatically.
type NodeBase struct {

	// ID is the document-unique id of this node. It is assigned by
	// [InitNode] and only changes when a document is read.
	ID string `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types.
	This Node `copier:"-" json:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. It does not own the node.
	Parent Node `copier:"-" json:"-"`

	// Children is the list of children owned by this node. All of them have this node
	// as their parent. Use the NodeBase child helper functions to modify it.
	Children []Node `copier:"-" json:"-"`

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time. It is not guaranteed to be accurate;
	// use the [NodeBase.IndexInParent] method.
	index int
}

// String implements the [fmt.Stringer] interface.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return fmt.Sprintf("%T(%s)", n.This, n.ID)
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// AllowsChildren returns false; container types override it.
func (n *NodeBase) AllowsChildren() bool {
	return false
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index)
	n.index = idx
	return idx
}

// IsDescendantOf returns whether this node is the given node or
// is below it in the tree. Every node is a descendant of itself.
func (n *NodeBase) IsDescendantOf(ancestor Node) bool {
	if ancestor == nil {
		return false
	}
	ancestor = ancestor.AsTree().This
	found := false
	n.WalkUp(func(k Node) bool {
		if k == ancestor {
			found = true
			return Break
		}
		return Continue
	})
	return found
}

// ParentLevel finds a given potential parent node recursively up the
// hierarchy, returning the level above the current node that the parent was
// found, and -1 if not found.
func (n *NodeBase) ParentLevel(parent Node) int {
	parLev := -1
	level := 0
	n.WalkUp(func(k Node) bool {
		if k == parent {
			parLev = level
			return Break
		}
		level++
		return Continue
	})
	return parLev
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// FindByID returns the first node with the given id in a depth-first
// search from this node, visiting children in order, or nil if there is none.
func (n *NodeBase) FindByID(id string) Node {
	var res Node
	n.WalkDown(func(k Node) bool {
		if res != nil {
			return Break
		}
		if k.AsTree().ID == id {
			res = k
			return Break
		}
		return Continue
	})
	return res
}

// Adding and Inserting Children:

// CanAddChild returns an error if the given node can not be added
// as a child of this node. The child must be non-nil and must not be
// this node or one of its ancestors, and this node must allow children.
func (n *NodeBase) CanAddChild(kid Node) error {
	if kid == nil {
		return fmt.Errorf("tree: cannot add nil child to %v", n)
	}
	if n.This == nil {
		return fmt.Errorf("tree: parent node is not initialized; call InitNode first")
	}
	if !n.This.AllowsChildren() {
		return fmt.Errorf("tree: %v does not allow children", n)
	}
	kb := kid.AsTree()
	if kb.This != nil && n.IsDescendantOf(kb.This) {
		return fmt.Errorf("tree: adding %v to %v would create a cycle", kb, n)
	}
	return nil
}

// AddChild adds given child at end of children list,
// detaching it from its current parent first.
// It panics if [NodeBase.CanAddChild] returns an error.
func (n *NodeBase) AddChild(kid Node) {
	n.addChild(kid, -1)
}

// InsertChild adds given child at position in children list,
// detaching it from its current parent first; the index applies to the
// children list after that detachment. It panics if [NodeBase.CanAddChild]
// returns an error or the index is out of range.
func (n *NodeBase) InsertChild(kid Node, index int) {
	n.addChild(kid, index)
}

func (n *NodeBase) addChild(kid Node, index int) {
	if err := n.CanAddChild(kid); err != nil {
		panic(err)
	}
	InitNode(kid)
	kb := kid.AsTree()
	size := len(n.Children)
	if kb.Parent == n.This {
		size--
	}
	if index > size {
		panic(fmt.Sprintf("tree: insert index %d out of range [0, %d]", index, size))
	}
	if kb.Parent != nil {
		kb.Parent.AsTree().RemoveChild(kid)
	}
	if index < 0 {
		index = len(n.Children)
	}
	n.Children = slices.Insert(n.Children, index, kb.This)
	kb.Parent = n.This
	kb.index = index
}

// Removing Children:

// RemoveChildAt removes the child at the given index and returns it,
// or nil if there is no child at the given index. The removed node
// no longer has a parent.
func (n *NodeBase) RemoveChildAt(index int) Node {
	child := n.Child(index)
	if child == nil {
		return nil
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.AsTree().Parent = nil
	return child
}

// RemoveChild removes the given child node, returning false if
// it can not find it.
func (n *NodeBase) RemoveChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := IndexOf(n.Children, child, child.AsTree().index)
	if idx < 0 {
		return false
	}
	n.RemoveChildAt(idx)
	return true
}

// ReplaceChild puts the given new node in the position of the given
// old child, which is removed. It returns false if old is not a child
// of this node.
func (n *NodeBase) ReplaceChild(old, kid Node) bool {
	idx := IndexOf(n.Children, old, old.AsTree().index)
	if idx < 0 {
		return false
	}
	n.RemoveChildAt(idx)
	n.InsertChild(kid, idx)
	return true
}

// Delete removes this node from its parent, if it has one.
func (n *NodeBase) Delete() {
	if n.Parent != nil {
		n.Parent.AsTree().RemoveChild(n.This)
	}
}
