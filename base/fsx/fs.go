// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides filesystem helpers over [hackpadfs.FS],
// which is used for all project file access so that the same
// code runs against the operating system and in-memory filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"

	"cogentcore.org/scene/base/errors"
)

// OSDir returns an operating system filesystem rooted at the given
// directory. Paths passed to it are slash-separated and relative.
func OSDir(dir string) (hackpadfs.FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	p := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if vol := filepath.VolumeName(abs); vol != "" {
		p = strings.TrimPrefix(p, filepath.ToSlash(vol)+"/")
	}
	if p == "" {
		p = "."
	}
	return osfs.NewFS().Sub(p)
}

// DirFS returns the directory part of given file path as an OS filesystem
// and the filename as a string. These can then be used to access the file
// using the FS-based interface.
func DirFS(fpath string) (hackpadfs.FS, string, error) {
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	dfs, err := OSDir(dir)
	return dfs, fname, err
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys hackpadfs.FS, filePath string) (bool, error) {
	fileInfo, err := hackpadfs.Stat(fsys, filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReplaceExt returns the given slash path with its extension
// replaced by ext, which should include the leading dot.
func ReplaceExt(fpath, ext string) string {
	return strings.TrimSuffix(fpath, path.Ext(fpath)) + ext
}

var tempCounter atomic.Uint64

// WriteFileAtomic writes data to the named file so that readers never
// observe a partially written file: the data goes to a temporary file in
// the same directory, which is then renamed over the target. An existing
// target keeps its permissions. The temporary file is closed on every path
// and removed if anything fails.
func WriteFileAtomic(fsys hackpadfs.FS, name string, data []byte, perm fs.FileMode) (err error) {
	if info, serr := hackpadfs.Stat(fsys, name); serr == nil {
		perm = info.Mode().Perm()
	}
	dir, base := path.Split(name)
	var tmp string
	var f hackpadfs.File
	for range 10 {
		tmp = path.Join(dir, "."+base+".tmp"+strconv.Itoa(os.Getpid())+"-"+strconv.FormatUint(tempCounter.Add(1), 10))
		f, err = hackpadfs.OpenFile(fsys, tmp, hackpadfs.FlagWriteOnly|hackpadfs.FlagCreate|hackpadfs.FlagExclusive, perm)
		if !errors.Is(err, fs.ErrExist) {
			break
		}
	}
	if err != nil {
		return err
	}
	defer func() {
		if f != nil {
			f.Close()
		}
		if err != nil {
			hackpadfs.Remove(fsys, tmp)
		}
	}()
	if _, err = hackpadfs.WriteFile(f, data); err != nil {
		return err
	}
	err = f.Close()
	f = nil
	if err != nil {
		return err
	}
	return hackpadfs.Rename(fsys, tmp, name)
}
