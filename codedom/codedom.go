// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codedom is a small language-neutral representation of
// generated source code: a unit of class declarations whose methods
// hold a flat list of instructions. Emitters for a target language
// walk it to produce text.
package codedom

// Element is a top level element of a [Unit].
type Element interface {
	isElement()
}

// Member is a member of a [ClassDecl].
type Member interface {
	isMember()
}

// Instruction is a statement in the body of a [MethodDecl].
type Instruction interface {
	isInstruction()
}

// Unit is one generated source file.
type Unit struct {
	Elements []Element
}

// Add adds the given elements to the unit.
func (u *Unit) Add(e ...Element) {
	u.Elements = append(u.Elements, e...)
}

// ClassDecl declares a class.
type ClassDecl struct {
	Name string

	// SuperClass is the class this one extends, or empty.
	SuperClass string

	Members []Member
}

func (*ClassDecl) isElement() {}

// Add adds the given members to the class.
func (c *ClassDecl) Add(m ...Member) {
	c.Members = append(c.Members, m...)
}

// Fields returns the field declarations of the class.
func (c *ClassDecl) Fields() []*FieldDecl {
	var res []*FieldDecl
	for _, m := range c.Members {
		if f, ok := m.(*FieldDecl); ok {
			res = append(res, f)
		}
	}
	return res
}

// Methods returns the method declarations of the class.
func (c *ClassDecl) Methods() []*MethodDecl {
	var res []*MethodDecl
	for _, m := range c.Members {
		if f, ok := m.(*MethodDecl); ok {
			res = append(res, f)
		}
	}
	return res
}

// FieldDecl declares a class field. Languages without field
// declarations ignore it.
type FieldDecl struct {
	Name string

	// Type is the type of the field in languages that declare one.
	Type string

	Public bool
}

func (*FieldDecl) isMember() {}

// MethodDecl declares a method.
type MethodDecl struct {
	Name string

	// ReturnType is the declared return type in languages that
	// declare one, or empty.
	ReturnType string

	Instructions []Instruction
}

func (*MethodDecl) isMember() {}

// Add adds the given instructions at the end of the method body.
func (m *MethodDecl) Add(in ...Instruction) {
	m.Instructions = append(m.Instructions, in...)
}

// Prepend adds the given instructions at the start of the method body.
func (m *MethodDecl) Prepend(in ...Instruction) {
	m.Instructions = append(append([]Instruction{}, in...), m.Instructions...)
}

// IsEmpty returns whether the method has no instructions
// other than blank lines.
func (m *MethodDecl) IsEmpty() bool {
	for _, in := range m.Instructions {
		if r, ok := in.(*RawCode); !ok || r.Code != "" {
			return false
		}
	}
	return true
}

// MethodCall calls a method, optionally storing the result
// in a new local variable.
type MethodCall struct {
	Method string

	// Context is the expression the method is called on,
	// such as "this.add", or empty for a plain function call.
	Context string

	// Args are the argument expressions.
	Args []string

	// ReturnToVar is the name of the local variable declared
	// with the result, or empty.
	ReturnToVar string
}

func (*MethodCall) isInstruction() {}

// NewMethodCall returns a call of the given method on context.
func NewMethodCall(method, context string) *MethodCall {
	return &MethodCall{Method: method, Context: context}
}

// Arg adds argument expressions.
func (c *MethodCall) Arg(expr ...string) *MethodCall {
	c.Args = append(c.Args, expr...)
	return c
}

// ArgLiteral adds a string literal argument.
func (c *MethodCall) ArgLiteral(s string) *MethodCall {
	return c.Arg(String(s))
}

// ArgFloat adds a number argument.
func (c *MethodCall) ArgFloat(v float64) *MethodCall {
	return c.Arg(Float(v))
}

// ArgInt adds an integer argument.
func (c *MethodCall) ArgInt(v int) *MethodCall {
	return c.Arg(Int(v))
}

// ArgBool adds a boolean argument.
func (c *MethodCall) ArgBool(v bool) *MethodCall {
	return c.Arg(Bool(v))
}

// AssignProperty assigns a value to a property of an object.
type AssignProperty struct {
	Property string

	// Context is the object expression, such as "this".
	Context string

	// Value is the value expression.
	Value string
}

func (*AssignProperty) isInstruction() {}

// NewAssignProperty returns an assignment of value to
// the given property of context.
func NewAssignProperty(property, context, value string) *AssignProperty {
	return &AssignProperty{Property: property, Context: context, Value: value}
}

// RawCode is verbatim code, such as developer code blocks and comments.
// An empty RawCode is a blank line.
type RawCode struct {
	Code string
}

func (*RawCode) isInstruction() {}
func (*RawCode) isElement()     {}

// Raw returns a [RawCode] with the given code.
func Raw(code string) *RawCode {
	return &RawCode{Code: code}
}
