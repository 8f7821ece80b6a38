// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for cur != nil {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
	return true
}

// WalkDown strategy: https://stackoverflow.com/questions/5278580/non-recursive-depth-first-search-algorithm

// WalkDown calls the given function on the node and all of its owned
// children in pre-order: the node first, then each child subtree in order.
// It stops walking the current branch of the tree if the function
// returns [Break] and keeps walking if it returns [Continue].
// Nodes referenced but not owned, such as group members, are not visited.
// It is non-recursive, so deep trees do not grow the stack.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	tm := map[Node]int{} // traversal map
	start := n.This
	cur := start
	tm[cur] = -1
outer:
	for {
		cb := cur.AsTree()
		if fun(cur) && cb.HasChildren() {
			tm[cur] = 0
			if nxt := cb.Child(0); nxt != nil {
				cur = nxt
				tm[cur] = -1
				continue
			}
		} else {
			tm[cur] = cb.NumChildren()
		}
		// if we get here, we're in the ascent branch -- move to the right and then up
		for {
			cb := cur.AsTree()
			curChild := tm[cur]
			if (curChild + 1) < cb.NumChildren() {
				curChild++
				tm[cur] = curChild
				if nxt := cb.Child(curChild); nxt != nil {
					cur = nxt
					tm[cur] = -1
					continue outer
				}
				continue
			}
			delete(tm, cur)
			// couldn't go right, move up..
			if cur == start {
				break outer // done!
			}
			parent := cb.Parent
			if parent == nil || parent == cur {
				break outer
			}
			cur = parent
		}
	}
}

// Count returns the number of nodes in the tree starting at this node,
// including this node.
func (n *NodeBase) Count() int {
	c := 0
	n.WalkDown(func(Node) bool {
		c++
		return Continue
	})
	return c
}
