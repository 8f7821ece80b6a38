// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "fmt"

// Problem is an inconsistency found by [Validate].
type Problem struct {

	// ID is the id of the entity with the problem.
	ID string

	// Message describes the problem.
	Message string
}

func (p Problem) String() string {
	return p.ID + ": " + p.Message
}

// Validate returns the problems of the given model: duplicate ids,
// group members that are missing from the tree, groups that are members
// of themselves, and editor names shared by several entities.
func Validate(m *SceneModel) []Problem {
	var res []Problem
	if m.Root == nil {
		return nil
	}
	ids := map[string]Entity{}
	names := map[string]string{}
	var groups []*Group
	Walk(m.Root, func(e Entity) bool {
		id := e.AsTree().ID
		if _, dup := ids[id]; dup {
			res = append(res, Problem{ID: id, Message: "duplicate id"})
		}
		ids[id] = e
		if n := e.AsEditor().EditorName; n != "" {
			if other, dup := names[n]; dup {
				res = append(res, Problem{ID: id, Message: fmt.Sprintf("editor name %q is also used by %s", n, other)})
			} else {
				names[n] = id
			}
		}
		if g, ok := e.(*Group); ok {
			groups = append(groups, g)
		}
		return true
	})
	for _, g := range groups {
		for _, mid := range g.Members {
			switch {
			case mid == g.ID:
				res = append(res, Problem{ID: g.ID, Message: "group is a member of itself"})
			case ids[mid] == nil:
				res = append(res, Problem{ID: g.ID, Message: fmt.Sprintf("member %s is not in the scene", mid)})
			}
		}
	}
	return res
}
