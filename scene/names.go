// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strconv"
	"strings"
	"unicode"
)

// NameComputer allocates names that are not used by any entity of a tree.
// It is built from a snapshot of the tree and does not change the tree;
// build a new one after the tree changes.
type NameComputer struct {
	names map[string]bool
}

// NewNameComputer returns a [NameComputer] that knows the editor name
// of every entity owned by the given root, including the root.
func NewNameComputer(root Entity) *NameComputer {
	nc := &NameComputer{names: map[string]bool{}}
	Walk(root, func(e Entity) bool {
		if n := e.AsEditor().EditorName; n != "" {
			nc.names[n] = true
		}
		return true
	})
	return nc
}

// Has returns whether the given name is in use.
func (nc *NameComputer) Has(name string) bool {
	return nc.names[name]
}

// Add marks the given name as in use.
func (nc *NameComputer) Add(name string) {
	nc.names[name] = true
}

// NewName returns base if it is not in use, and otherwise the first of
// base_1, base_2, ... that is not. The returned name is marked as in use,
// so successive calls return distinct names.
func (nc *NameComputer) NewName(base string) string {
	name := base
	for i := 1; nc.names[name]; i++ {
		name = base + "_" + strconv.Itoa(i)
	}
	nc.names[name] = true
	return name
}

// reserved are the JavaScript and TypeScript reserved words, which
// can not be used as variable names.
var reserved = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`break case catch class const continue debugger default delete do
		else enum export extends false finally for function if import in instanceof new null return
		super switch this throw true try typeof var void while with yield let static implements
		interface package private protected public await arguments eval undefined`) {
		reserved[w] = true
	}
}

// Identifier converts the given name to a valid JavaScript identifier:
// invalid characters become underscores, a leading digit is prefixed with
// an underscore and reserved words get a trailing underscore.
// An empty name gives fallback.
func Identifier(name, fallback string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	id := b.String()
	if id == "" {
		id = fallback
	}
	if id != "" && unicode.IsDigit([]rune(id)[0]) {
		id = "_" + id
	}
	if reserved[id] {
		id += "_"
	}
	return id
}

// VarBase returns the base variable name of the given entity: its editor
// name as an identifier, or the lower-cased type name when it has none.
func VarBase(e Entity) string {
	t := e.Type().String()
	return Identifier(e.AsEditor().EditorName, strings.ToLower(t[:1])+t[1:])
}

// FieldName returns the class field name for the given variable name,
// which is "f" followed by the capitalized name.
func FieldName(local string) string {
	if local == "" {
		return "f"
	}
	r := []rune(local)
	r[0] = unicode.ToUpper(r[0])
	return "f" + string(r)
}
