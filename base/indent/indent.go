// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods.
package indent

import (
	"strings"
)

// Character is the type of indentation character to use.
type Character int32 //enums:enum -transform lower

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// Tabs returns a string of n tabs.
func Tabs(n int) string {
	return strings.Repeat("\t", n)
}

// Spaces returns a string of n*width spaces.
func Spaces(n, width int) string {
	return strings.Repeat(" ", n*width)
}

// String returns a string of n tabs or n*width spaces depending on the indent character.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return Tabs(n)
	}
	return Spaces(n, width)
}

// Len returns the length of the indent string given indent character and indent level.
func Len(ich Character, n, width int) int {
	if ich == Tab {
		return n
	}
	return n * width
}

// Writer accumulates indented lines of text.
type Writer struct {
	strings.Builder

	// Char is the indentation character.
	Char Character

	// Width is the number of spaces per level when Char is [Space].
	Width int

	// Level is the current indentation level.
	Level int
}

// NewWriter returns a new [Writer] using the given character and width.
func NewWriter(ich Character, width int) *Writer {
	return &Writer{Char: ich, Width: width}
}

// In increases the indentation level.
func (w *Writer) In() { w.Level++ }

// Out decreases the indentation level.
func (w *Writer) Out() {
	if w.Level > 0 {
		w.Level--
	}
}

// Line writes s prefixed by the current indentation and followed by a
// newline. Empty lines are not indented.
func (w *Writer) Line(s string) {
	if s != "" {
		w.WriteString(String(w.Char, w.Level, w.Width))
		w.WriteString(s)
	}
	w.WriteByte('\n')
}

// Lines writes each line of the given multi-line text with [Writer.Line].
// Lines keep all their own whitespace in addition to the current level.
// CRLF line endings are written as a newline.
func (w *Writer) Lines(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, l := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		w.Line(l)
	}
}
