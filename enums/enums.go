// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums defines the interfaces of the integer enum types of
// scene documents and the compiler, and the helpers their generated
// methods are written with.
package enums

import "fmt"

// Enum is a value of an integer enum type with named values.
type Enum interface {
	fmt.Stringer

	Int64() int64

	// Desc returns the doc comment of the value, or its name.
	Desc() string

	// Values returns every value of the type, in order.
	Values() []Enum
}

// EnumSetter is a pointer to an [Enum], settable by name or number.
type EnumSetter interface {
	Enum

	// SetString sets the value from its name, returning an
	// error for an unknown name.
	SetString(s string) error

	SetInt64(i int64)
}
