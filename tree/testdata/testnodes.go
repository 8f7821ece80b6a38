// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata provides node types for testing the tree package.
package testdata

import "cogentcore.org/scene/tree"

// Folder is a node that can own children.
type Folder struct {
	tree.NodeBase `copier:"-"`
	Label         string
}

func (f *Folder) AllowsChildren() bool { return true }

// Leaf is a node that can not own children.
type Leaf struct {
	tree.NodeBase `copier:"-"`
	Value         int
}

// NewFolder returns a new initialized [Folder], added to the given parent if any.
func NewFolder(label string, parent ...tree.Node) *Folder {
	f := &Folder{Label: label}
	tree.InitNode(f)
	if len(parent) > 0 {
		parent[0].AsTree().AddChild(f)
	}
	return f
}

// NewLeaf returns a new initialized [Leaf], added to the given parent if any.
func NewLeaf(value int, parent ...tree.Node) *Leaf {
	l := &Leaf{Value: value}
	tree.InitNode(l)
	if len(parent) > 0 {
		parent[0].AsTree().AddChild(l)
	}
	return l
}
