// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/scene/tree"
)

// Keys of entity objects in the scene document.
const (
	KeyID       = "-id"
	KeyType     = "-type"
	KeyChildren = "children"
)

// ReadOptions control how scene documents are read.
type ReadOptions struct {

	// Lenient tolerates entities of unknown type: an unknown root
	// leaves the model without a root and unknown children are skipped.
	// Each is logged as a warning. By default an unknown type is an error.
	Lenient bool
}

// WriteEntity returns the document object of the given entity. Only
// attributes that differ from the defaults of the entity type are written.
// Worlds write their owned children and groups write member references.
func WriteEntity(e Entity) Data {
	d := Data{KeyID: e.AsTree().ID, KeyType: e.Type().String()}
	def := New(e.Type())
	dcs := def.Components()
	for i, c := range e.Components() {
		writeAttrs(c, dcs[i], d)
	}
	switch e := e.(type) {
	case *World:
		children := make([]any, 0, len(e.Children))
		for _, k := range e.Entities() {
			children = append(children, WriteEntity(k))
		}
		d[KeyChildren] = children
	case *Group:
		refs := make([]any, len(e.Members))
		for i, id := range e.Members {
			refs[i] = Data{KeyID: id}
		}
		d[KeyChildren] = refs
	}
	return d
}

// ReadEntity returns a new entity read from the given document object,
// including its children. It fails without returning a partial entity if
// any object in the subtree lacks an id or type, or has a bad attribute.
// With lenient options an entity of unknown type yields nil and no error.
func ReadEntity(d Data, opts ReadOptions) (Entity, error) {
	id, ok := dataString(d, KeyID)
	if !ok || id == "" {
		return nil, ErrMissingID
	}
	tname, ok := dataString(d, KeyType)
	if !ok || tname == "" {
		return nil, fmt.Errorf("%w (id %s)", ErrMissingType, id)
	}
	typ, err := ParseType(tname)
	if err != nil {
		if opts.Lenient {
			slog.Warn("skipping entity of unknown type", "type", tname, "id", id)
			return nil, nil
		}
		return nil, fmt.Errorf("%w (id %s)", err, id)
	}
	e := New(typ)
	e.AsTree().ID = id
	for _, c := range e.Components() {
		if err := readAttrs(c, d); err != nil {
			return nil, fmt.Errorf("%w (id %s)", err, id)
		}
	}
	children, err := dataList(d, KeyChildren, id)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case *World:
		for _, cd := range children {
			k, err := ReadEntity(cd, opts)
			if err != nil {
				return nil, err
			}
			if k != nil {
				e.AddChild(k)
			}
		}
	case *Group:
		for _, cd := range children {
			mid, ok := dataString(cd, KeyID)
			if !ok || mid == "" {
				return nil, fmt.Errorf("%w (member of group %s)", ErrMissingID, id)
			}
			e.Members = append(e.Members, mid)
		}
	}
	return e, nil
}

// dataList returns the list of objects under key, which may be absent.
func dataList(d Data, key, id string) ([]Data, error) {
	v, ok := d[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: not a list (id %s)", ErrBadAttribute, key, id)
	}
	res := make([]Data, len(list))
	for i, item := range list {
		cd, ok := item.(Data)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d]: not an object (id %s)", ErrBadAttribute, key, i, id)
		}
		res[i] = cd
	}
	return res, nil
}

// Walk calls fun on the given entity and every entity it owns, in
// pre-order. Group members are not visited through their group.
// Returning false from fun skips the children of that entity.
func Walk(root Entity, fun func(e Entity) bool) {
	if root == nil {
		return
	}
	root.AsTree().WalkDown(func(n tree.Node) bool {
		e, ok := n.(Entity)
		if !ok {
			return tree.Break
		}
		return fun(e)
	})
}
