// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"

	"cogentcore.org/scene/base/indent"
	"cogentcore.org/scene/codedom"
)

// Emitter writes a code DOM as source code of one language.
type Emitter struct {
	Language Language

	// Indent is the indentation character.
	Indent indent.Character

	// IndentWidth is the number of spaces per level when
	// Indent is [indent.Space].
	IndentWidth int

	w *indent.Writer
}

// NewEmitter returns an emitter for the given language that
// indents with tabs.
func NewEmitter(lang Language) *Emitter {
	return &Emitter{Language: lang, Indent: indent.Tab, IndentWidth: 4}
}

// Emit returns the source code of the given unit.
func (em *Emitter) Emit(u *codedom.Unit) string {
	em.w = indent.NewWriter(em.Indent, em.IndentWidth)
	for i, e := range u.Elements {
		if i > 0 {
			em.w.Line("")
		}
		switch e := e.(type) {
		case *codedom.ClassDecl:
			em.class(e)
		case *codedom.RawCode:
			em.w.Lines(e.Code)
		}
	}
	return em.w.String()
}

func (em *Emitter) class(c *codedom.ClassDecl) {
	head := "class " + c.Name
	if c.SuperClass != "" {
		head += " extends " + c.SuperClass
	}
	em.w.Line(head + " {")
	em.w.In()
	for _, m := range c.Methods() {
		em.w.Line("")
		em.method(m)
	}
	if em.Language == TypeScript {
		if fields := c.Fields(); len(fields) > 0 {
			em.w.Line("")
			for _, f := range fields {
				em.field(f)
			}
		}
	}
	em.w.Out()
	em.w.Line("}")
}

func (em *Emitter) field(f *codedom.FieldDecl) {
	s := f.Name + "!: " + f.Type + ";"
	if f.Public {
		s = "public " + s
	} else {
		s = "private " + s
	}
	em.w.Line(s)
}

func (em *Emitter) method(m *codedom.MethodDecl) {
	head := m.Name + "()"
	if em.Language == TypeScript && m.ReturnType != "" {
		head += ": " + m.ReturnType
	}
	em.w.Line(head + " {")
	em.w.In()
	blank := true
	for _, in := range trimBlank(m.Instructions) {
		switch in := in.(type) {
		case *codedom.RawCode:
			if in.Code == "" {
				if !blank {
					em.w.Line("")
				}
				blank = true
				continue
			}
			em.w.Lines(in.Code)
		case *codedom.MethodCall:
			em.w.Line(methodCall(in))
		case *codedom.AssignProperty:
			em.w.Line(qualify(in.Context, in.Property) + " = " + in.Value + ";")
		}
		blank = false
	}
	em.w.Out()
	em.w.Line("}")
}

func methodCall(c *codedom.MethodCall) string {
	s := qualify(c.Context, c.Method) + "(" + strings.Join(c.Args, ", ") + ");"
	if c.ReturnToVar != "" {
		s = "const " + c.ReturnToVar + " = " + s
	}
	return s
}

func qualify(context, name string) string {
	if context == "" {
		return name
	}
	return context + "." + name
}

// trimBlank returns the instructions without leading and trailing blank lines.
func trimBlank(ins []codedom.Instruction) []codedom.Instruction {
	isBlank := func(in codedom.Instruction) bool {
		r, ok := in.(*codedom.RawCode)
		return ok && r.Code == ""
	}
	for len(ins) > 0 && isBlank(ins[0]) {
		ins = ins[1:]
	}
	for len(ins) > 0 && isBlank(ins[len(ins)-1]) {
		ins = ins[:len(ins)-1]
	}
	return ins
}
