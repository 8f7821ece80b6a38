// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/spf13/cobra"

	"cogentcore.org/scene/base/fsx"
	"cogentcore.org/scene/codegen"
	"cogentcore.org/scene/config"
	"cogentcore.org/scene/logx"
	"cogentcore.org/scene/scene"
)

// sceneExt is the extension of scene documents.
const sceneExt = ".scene"

// app is the state shared by all commands.
type app struct {

	// dir is the project directory.
	dir string

	// configPath is the configuration file, found with
	// [config.Find] when empty.
	configPath string

	vv, v, q bool

	cfg *config.Config

	// fsys is the project filesystem, rooted at dir.
	fsys hackpadfs.FS
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:          "scenec",
		Short:        "scenec compiles scene documents to scene classes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
			logx.SetDefaultLogger()
			return a.init()
		},
	}
	f := cmd.PersistentFlags()
	f.StringVarP(&a.dir, "dir", "C", ".", "project directory that scene and pack paths are relative to")
	f.StringVar(&a.configPath, "config", "", "configuration file (default: the first of "+strings.Join(config.Files, ", ")+")")
	f.BoolVarP(&a.v, "verbose", "v", false, "log informational messages")
	f.BoolVar(&a.vv, "vv", false, "log debugging messages")
	f.BoolVarP(&a.q, "quiet", "q", false, "only log errors")
	cmd.AddCommand(newCompileCmd(a), newWatchCmd(a), newCheckCmd(a), newFmtCmd(a))
	return cmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.fsys, err = fsx.OSDir(a.dir)
	return err
}

// compiler returns a new compiler over the project filesystem.
func (a *app) compiler() (*codegen.Compiler, error) {
	return a.cfg.Compiler(a.fsys)
}

// projectPath returns the slash path of the given file, relative
// to the working directory, in the project filesystem.
func (a *app) projectPath(file string) (string, error) {
	root, err := filepath.Abs(a.dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside of the project directory %s", file, a.dir)
	}
	return filepath.ToSlash(rel), nil
}

// scenes returns the project paths of the given files, or of all
// the scene documents of the project if there are none.
func (a *app) scenes(args []string) ([]string, error) {
	if len(args) == 0 {
		return findScenes(a.fsys)
	}
	res := make([]string, len(args))
	for i, arg := range args {
		p, err := a.projectPath(arg)
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}

// skipDir returns whether the directory with the given name
// is not searched for scenes.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

// findScenes returns the paths of all the scene documents of fsys,
// in lexical order.
func findScenes(fsys hackpadfs.FS) ([]string, error) {
	var res []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && skipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if path.Ext(p) == sceneExt {
			res = append(res, p)
		}
		return nil
	})
	slices.Sort(res)
	return res, err
}

// open reads the scene document at the given project path.
func (a *app) open(p string) (*scene.SceneModel, error) {
	return scene.Open(a.fsys, p, a.cfg.ReadOptions())
}

// compile compiles the scene at the given project path, writing
// the target file if write is set.
func (a *app) compile(comp *codegen.Compiler, p string, write bool) (*codegen.Result, error) {
	m, err := a.open(p)
	if err != nil {
		return nil, err
	}
	if write {
		return comp.CompileToFile(m, p)
	}
	return comp.Compile(m, p)
}
