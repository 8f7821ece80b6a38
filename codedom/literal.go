// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codedom

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// String returns s as a double quoted JavaScript string literal.
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029', utf8.RuneError:
			b.WriteString(`\u` + strconv.FormatInt(int64(r), 16))
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\u00`)
				if r < 0x10 {
					b.WriteByte('0')
				}
				b.WriteString(strconv.FormatInt(int64(r), 16))
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Float returns v as a JavaScript number literal, in the shortest
// decimal form without an exponent.
func Float(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Int returns v as a JavaScript number literal.
func Int(v int) string {
	return strconv.Itoa(v)
}

// Hex returns v as a hexadecimal JavaScript number literal,
// negated with a leading minus sign when v is negative.
func Hex(v int) string {
	if v < 0 {
		return "-0x" + strconv.FormatUint(-uint64(v), 16)
	}
	return "0x" + strconv.FormatInt(int64(v), 16)
}

// Bool returns v as a JavaScript boolean literal.
func Bool(v bool) string {
	return strconv.FormatBool(v)
}

// Null is the JavaScript null literal.
const Null = "null"
