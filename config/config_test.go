// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/base/indent"
)

func writeFile(t *testing.T, dir, name, content string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestOpenTOML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "scenec.toml", `
language = "TypeScript"
indent = "space"
indentWidth = 2
checkSyntax = true
packs = ["assets/pack.json"]
`)
	c, err := Open(p)
	require.NoError(t, err)
	assert.Equal(t, "TypeScript", c.Language)
	assert.Equal(t, indent.Space, c.Indent)
	assert.Equal(t, 2, c.IndentWidth)
	assert.True(t, c.CheckSyntax)
	assert.False(t, c.Lenient)
	assert.Equal(t, "utf-8", c.Charset, "unset values keep their defaults")
	assert.Equal(t, []string{"assets/pack.json"}, c.Packs)
}

func TestOpenYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "scenec.yaml", "lenient: true\ncharset: latin1\nindent: Tab\n")
	c, err := Open(p)
	require.NoError(t, err)
	assert.True(t, c.Lenient)
	assert.True(t, c.ReadOptions().Lenient)
	assert.Equal(t, "latin1", c.Charset)
	assert.Equal(t, indent.Tab, c.Indent)
	assert.Equal(t, 4, c.IndentWidth)

	p = writeFile(t, t.TempDir(), "empty.yml", "")
	c, err = Open(p)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(writeFile(t, dir, "a.toml", "langage = \"TypeScript\"\n"))
	assert.Error(t, err, "unknown keys are errors")
	_, err = Open(writeFile(t, dir, "b.yaml", "indent: wide\n"))
	assert.Error(t, err)
	_, err = Open(writeFile(t, dir, "c.json", "{}"))
	assert.ErrorContains(t, err, "unsupported file type")
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	assert.Equal(t, "", Find())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	writeFile(t, dir, "scenec.yaml", "language: TypeScript\n")
	assert.Equal(t, "scenec.yaml", Find())
	writeFile(t, dir, "scenec.toml", "language = \"JavaScript\"\n")
	assert.Equal(t, "scenec.toml", Find())

	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "JavaScript", c.Language)
	c, err = Load("scenec.yaml")
	require.NoError(t, err)
	assert.Equal(t, "TypeScript", c.Language)
}

func TestCompiler(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.WriteFullFile(fsys, "pack.json",
		[]byte(`{"boot": {"files": [{"type": "image", "key": "logo", "url": "logo.png"}]}}`), 0o644))

	c := Default()
	c.Language = "TypeScript"
	c.Packs = []string{"pack.json"}
	comp, err := c.Compiler(fsys)
	require.NoError(t, err)
	assert.Equal(t, "TypeScript", comp.Language)
	assert.Equal(t, "utf-8", comp.Charset.Name)
	require.NotNil(t, comp.Finder)
	assert.NotNil(t, comp.Finder.FindTexture("logo", ""))

	c.Packs = []string{"missing.json"}
	_, err = c.Compiler(fsys)
	assert.Error(t, err)

	c.Packs = nil
	c.Charset = "klingon"
	_, err = c.Compiler(fsys)
	assert.Error(t, err)
}
