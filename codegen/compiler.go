// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	"cogentcore.org/scene/assets"
	"cogentcore.org/scene/base/charsetx"
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/base/fsx"
	"cogentcore.org/scene/base/indent"
	"cogentcore.org/scene/scene"
)

var (
	// ErrSyntax is returned when the generated JavaScript does not parse.
	ErrSyntax = errors.New("codegen: syntax error in compiled code")

	// ErrMarker is returned when the generated code, through user code,
	// editor names or text, contains a region marker, which would end
	// the region early when the file is compiled again.
	ErrMarker = errors.New("codegen: compiled code contains a region marker")
)

// Compiler compiles scene documents to source files.
// A Compiler may be reused, but not concurrently.
type Compiler struct {

	// FS is the project filesystem that scene paths are relative to.
	FS hackpadfs.FS

	// Finder resolves asset keys. It may be nil.
	Finder assets.Finder

	// Language, if set, overrides the compiler language of scenes.
	Language string

	// Indent is the indentation character of generated code.
	Indent indent.Character

	// IndentWidth is the number of spaces per level when
	// Indent is [indent.Space].
	IndentWidth int

	// Charset is the charset of new files. Existing files keep their
	// own charset. Nil means UTF-8.
	Charset *charsetx.Charset

	// CheckSyntax parses compiled JavaScript before it is returned.
	CheckSyntax bool
}

// Result is the outcome of compiling one scene.
type Result struct {

	// Path is the path of the target file in the compiler filesystem.
	Path string

	Language Language

	// Source is the complete text of the target file.
	Source string

	// Data is Source in the target charset.
	Data []byte

	Charset *charsetx.Charset

	// Old is the previous content of the target file, or nil
	// if it did not exist.
	Old []byte

	// Changed is whether Data differs from Old.
	Changed bool
}

// TargetPath returns the path of the file compiled from the scene
// at scenePath, for the given language.
func TargetPath(scenePath string, lang Language) string {
	return fsx.ReplaceExt(scenePath, lang.Ext())
}

// ClassName returns the name of the class compiled from the scene
// at scenePath, which is its base name as an identifier.
func ClassName(scenePath string) string {
	base := path.Base(scenePath)
	return scene.Identifier(base[:len(base)-len(path.Ext(base))], "Scene")
}

// Compile returns the compiled code of the scene m, stored at scenePath,
// merged with the existing target file. It does not write anything.
// An unsupported language fails before anything is read.
func (c *Compiler) Compile(m *scene.SceneModel, scenePath string) (*Result, error) {
	name := c.Language
	if name == "" {
		name = m.CompilerLang
	}
	lang, err := ParseLanguage(name)
	if err != nil {
		return nil, err
	}
	r := &Result{Path: TargetPath(scenePath, lang), Language: lang}

	old, err := fs.ReadFile(c.FS, r.Path)
	switch {
	case err == nil:
		r.Old = old
		r.Charset = charsetx.Detect(old)
	case errors.Is(err, fs.ErrNotExist):
		r.Charset = c.Charset
		if r.Charset == nil {
			r.Charset = charsetx.Default()
		}
	default:
		return nil, err
	}
	var baseline string
	if r.Old != nil {
		if baseline, err = r.Charset.Decode(r.Old); err != nil {
			return nil, err
		}
	}

	b := &Builder{ClassName: ClassName(scenePath), Finder: c.Finder}
	em := &Emitter{Language: lang, Indent: c.Indent, IndentWidth: c.IndentWidth}
	if em.IndentWidth <= 0 {
		em.IndentWidth = 4
	}
	code := em.Emit(b.Build(m))
	if HasMarker(code) {
		return nil, fmt.Errorf("%w: %s", ErrMarker, r.Path)
	}
	src, ok := Merge(baseline, code)
	if !ok && strings.TrimSpace(baseline) != "" {
		slog.Info("adding compiled code region after the existing code", "path", r.Path)
	}
	r.Source = src

	if c.CheckSyntax && lang == JavaScript {
		if _, err := js.Parse(parse.NewInputString(src), js.Options{}); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSyntax, r.Path, err)
		}
	}
	if r.Data, err = r.Charset.Encode(src); err != nil {
		return nil, err
	}
	r.Changed = r.Old == nil || !bytes.Equal(r.Data, r.Old)
	return r, nil
}

// CompileToFile compiles the scene m like [Compiler.Compile] and writes
// the result atomically to the target file, if it changed.
func (c *Compiler) CompileToFile(m *scene.SceneModel, scenePath string) (*Result, error) {
	r, err := c.Compile(m, scenePath)
	if err != nil {
		return nil, err
	}
	if !r.Changed {
		slog.Debug("compiled file is up to date", "path", r.Path)
		return r, nil
	}
	if err := fsx.WriteFileAtomic(c.FS, r.Path, r.Data, 0o644); err != nil {
		return nil, err
	}
	slog.Info("compiled scene", "scene", scenePath, "path", r.Path, "language", r.Language, "charset", r.Charset)
	return r, nil
}
