// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strings"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/scene"
)

// ErrUnsupportedLanguage is returned when compiling to a target language
// that is not supported. Nothing is read or written in that case.
var ErrUnsupportedLanguage = errors.New("codegen: unsupported language")

// Language is a target language of the compiler.
type Language int32 //enums:enum

const (
	// JavaScript is ES6 JavaScript with classes.
	JavaScript Language = iota

	// TypeScript is TypeScript with declared class fields.
	TypeScript
)

// Ext returns the file extension of the language.
func (l Language) Ext() string {
	if l == TypeScript {
		return ".ts"
	}
	return ".js"
}

// ParseLanguage returns the language with the given name, such as
// "JavaScript". Names are matched without regard to case. An unknown name
// returns an error wrapping [ErrUnsupportedLanguage].
func ParseLanguage(name string) (Language, error) {
	for _, l := range LanguageValues() {
		if strings.EqualFold(name, l.String()) {
			return l, nil
		}
	}
	return JavaScript, fmt.Errorf("%w %q%s", ErrUnsupportedLanguage, name, scene.Suggest(name, LanguageValues()))
}
