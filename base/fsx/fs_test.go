// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExistsFS(t *testing.T) {
	mfs, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.MkdirAll(mfs, "scenes", 0755))
	require.NoError(t, hackpadfs.WriteFullFile(mfs, "scenes/a.scene", []byte("{}"), 0644))

	has, err := FileExistsFS(mfs, "scenes/a.scene")
	assert.NoError(t, err)
	assert.True(t, has)

	has, err = FileExistsFS(mfs, "scenes/b.scene")
	assert.NoError(t, err)
	assert.False(t, has)

	has, err = FileExistsFS(mfs, "scenes")
	assert.NoError(t, err)
	assert.False(t, has)
}

func TestReplaceExt(t *testing.T) {
	assert.Equal(t, "scenes/Level1.js", ReplaceExt("scenes/Level1.scene", ".js"))
	assert.Equal(t, "Level1.ts", ReplaceExt("Level1", ".ts"))
	assert.Equal(t, "a.b/c.ts", ReplaceExt("a.b/c.scene", ".ts"))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	fsys, err := OSDir(dir)
	require.NoError(t, err)

	require.NoError(t, WriteFileAtomic(fsys, "out.js", []byte("first"), 0644))
	b, err := os.ReadFile(filepath.Join(dir, "out.js"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))

	require.NoError(t, os.Chmod(filepath.Join(dir, "out.js"), 0600))
	require.NoError(t, WriteFileAtomic(fsys, "out.js", []byte("second"), 0644))
	b, err = fs.ReadFile(fsys, "out.js")
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	info, err := os.Stat(filepath.Join(dir, "out.js"))
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	fsys, err := OSDir(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, WriteFileAtomic(fsys, "missing/out.js", []byte("x"), 0644))
}
