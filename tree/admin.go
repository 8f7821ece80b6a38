// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"crypto/rand"
	"encoding/hex"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node, setting [NodeBase.This] and
// assigning a fresh id if the node does not have one yet.
// It is safe to call more than once.
func InitNode(this Node) {
	n := this.AsTree()
	if n.This != this {
		n.This = this
	}
	if n.ID == "" {
		n.ID = NewID()
	}
}

// NewID returns a new random (version 4) UUID string, which is
// unique for all practical purposes.
func NewID() string {
	var u [16]byte
	rand.Read(u[:])
	u[6] = (u[6] & 0x0f) | 0x40
	u[8] = (u[8] & 0x3f) | 0x80
	var b [36]byte
	hex.Encode(b[0:8], u[0:4])
	b[8] = '-'
	hex.Encode(b[9:13], u[4:6])
	b[13] = '-'
	hex.Encode(b[14:18], u[6:8])
	b[18] = '-'
	hex.Encode(b[19:23], u[8:10])
	b[23] = '-'
	hex.Encode(b[24:], u[10:])
	return string(b[:])
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) {
	parent.AsTree().AddChild(child)
}

// IsRoot returns whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	cur := n.AsTree().This
	for {
		p := cur.AsTree().Parent
		if p == nil {
			return cur
		}
		cur = p
	}
}
