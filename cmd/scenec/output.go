// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"

	"cogentcore.org/scene/codegen"
)

// writeDiff writes a unified diff from old to updated, both named name,
// to w. It writes nothing if they are equal.
func writeDiff(w io.Writer, name, old, updated string) error {
	if old == updated {
		return nil
	}
	return difflib.WriteUnifiedDiff(w, difflib.UnifiedDiff{
		A:        difflib.SplitLines(old),
		B:        difflib.SplitLines(updated),
		FromFile: name,
		ToFile:   name,
		Context:  3,
	})
}

// writeResultDiff writes the diff from the old content of the
// compiled file of r to its new content.
func writeResultDiff(w io.Writer, r *codegen.Result) error {
	old := ""
	if r.Old != nil {
		var err error
		if old, err = r.Charset.Decode(r.Old); err != nil {
			return err
		}
	}
	return writeDiff(w, r.Path, old, r.Source)
}

// highlight writes the source of r to w, with syntax highlighting
// if w is a color terminal.
func highlight(w io.Writer, r *codegen.Result) error {
	formatter := "terminal256"
	if termenv.NewOutput(w).Profile == termenv.Ascii {
		formatter = "noop"
	}
	return quick.Highlight(w, r.Source, strings.ToLower(r.Language.String()), formatter, "monokai")
}
