// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRegion(t *testing.T) {
	tests := []struct {
		src            string
		prefix, suffix string
		ok             bool
	}{
		{"", "", "", false},
		{"a" + StartMarker + "b" + EndMarker + "c", "a", "c", true},
		{StartMarker + EndMarker, "", "", true},
		{"a" + EndMarker + "b" + StartMarker + "c", "", "", false},
		{"a" + StartMarker + "b", "", "", false},
		{"a" + StartMarker + "b" + EndMarker + "c" + EndMarker + "d", "a", "c" + EndMarker + "d", true},
	}
	for _, tt := range tests {
		prefix, suffix, ok := SplitRegion(tt.src)
		assert.Equal(t, tt.ok, ok, "%q", tt.src)
		assert.Equal(t, tt.prefix, prefix, "%q", tt.src)
		assert.Equal(t, tt.suffix, suffix, "%q", tt.src)
	}
}

func TestMerge(t *testing.T) {
	src, ok := Merge("", "class A {}\n")
	assert.False(t, ok)
	assert.Equal(t, DefaultPrefix+StartMarker+"\n\nclass A {}\n\n"+EndMarker+DefaultSuffix, src)

	again, ok := Merge(src, "class B {}\n")
	assert.True(t, ok)
	assert.Equal(t, DefaultPrefix+StartMarker+"\n\nclass B {}\n\n"+EndMarker+DefaultSuffix, again)

	crlf, ok := Merge("x\r\n"+StartMarker+EndMarker+"\r\ny", "class A {\n}\n")
	assert.True(t, ok)
	assert.Equal(t, "x\r\n"+StartMarker+"\r\n\r\nclass A {\r\n}\r\n\r\n"+EndMarker+"\r\ny", crlf)

	blank, ok := Merge(" \n", "class A {}\n")
	assert.False(t, ok)
	assert.Equal(t, src, blank)
}

func TestMergeWithoutRegion(t *testing.T) {
	helper := "function helper() { return 42; }\n"
	src, ok := Merge(helper, "class A {}\n")
	assert.False(t, ok)
	assert.Equal(t, helper+"\n"+StartMarker+"\n\nclass A {}\n\n"+EndMarker+DefaultSuffix, src)

	again, ok := Merge(src, "class A {}\n")
	assert.True(t, ok)
	assert.Equal(t, src, again)

	crlf, ok := Merge("a();\r\nb();\r\n", "class A {}\n")
	assert.False(t, ok)
	assert.True(t, strings.HasPrefix(crlf, "a();\r\nb();\r\n\r\n"+StartMarker+"\r\n"))
	assert.NotContains(t, strings.ReplaceAll(crlf, "\r\n", ""), "\n")
}

func TestHasMarker(t *testing.T) {
	assert.False(t, HasMarker("// compiled code"))
	assert.True(t, HasMarker("// see "+EndMarker))
	assert.True(t, HasMarker(StartMarker))
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("TypeScript")
	assert.NoError(t, err)
	assert.Equal(t, TypeScript, l)
	assert.Equal(t, ".ts", l.Ext())

	l, err = ParseLanguage("JAVASCRIPT")
	assert.NoError(t, err)
	assert.Equal(t, JavaScript, l)
	assert.Equal(t, ".js", l.Ext())

	_, err = ParseLanguage("Lua")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.NotContains(t, err.Error(), "did you mean")
	_, err = ParseLanguage("")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}
