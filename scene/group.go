// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"cogentcore.org/scene/tree"
)

// Group is a logical set of entities. It does not own its members:
// they stay where they are in the tree and the group only holds their
// ids, which are resolved against the root when needed.
type Group struct {
	tree.NodeBase `copier:"-"`
	Editor
	Variable

	// Members are the ids of the member entities, in order.
	Members []string `copier:"-"`
}

// NewGroup returns a new [Group] added to the given parent, if any.
func NewGroup(parent ...tree.Node) *Group { return add(&Group{}, parent) }

func (g *Group) Type() Type              { return TypeGroup }
func (g *Group) Components() []Component { return []Component{&g.Editor, &g.Variable} }
func (g *Group) Init()                   { initEntity(g) }

// AddMember adds the given entity to the group, if it is not
// already a member.
func (g *Group) AddMember(e Entity) {
	id := e.AsTree().ID
	if !g.HasMember(id) {
		g.Members = append(g.Members, id)
	}
}

// RemoveMember removes the entity with the given id from the group,
// returning whether it was a member.
func (g *Group) RemoveMember(id string) bool {
	i := slices.Index(g.Members, id)
	if i < 0 {
		return false
	}
	g.Members = slices.Delete(g.Members, i, i+1)
	return true
}

// HasMember returns whether the entity with the given id is a member.
func (g *Group) HasMember(id string) bool {
	return slices.Contains(g.Members, id)
}

// Resolve returns the member entities found under the given root,
// in member order. Ids that are not found are skipped.
func (g *Group) Resolve(root tree.Node) []Entity {
	if root == nil {
		return nil
	}
	res := make([]Entity, 0, len(g.Members))
	for _, id := range g.Members {
		if e, ok := root.AsTree().FindByID(id).(Entity); ok {
			res = append(res, e)
		}
	}
	return res
}
