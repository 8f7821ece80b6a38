// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/codegen"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Compile scenes whenever they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := a.compiler()
			if err != nil {
				return err
			}
			fw, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer fw.Close()
			w := &watcher{app: a, comp: comp, fw: fw}
			root, err := filepath.Abs(a.dir)
			if err != nil {
				return err
			}
			if err := w.addDirs(root); err != nil {
				return err
			}
			slog.Info("watching scenes", "dir", root)
			return w.run(cmd.Context())
		},
	}
}

// watcher compiles the scenes of a project when they are written.
// Events are handled one at a time, so compilations never overlap.
type watcher struct {
	app  *app
	comp *codegen.Compiler
	fw   *fsnotify.Watcher
}

// addDirs watches dir and all its subdirectories that are
// searched for scenes.
func (w *watcher) addDirs(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.fw.Add(p)
	})
}

func (w *watcher) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

// handle handles the given event, returning whether it compiled a scene.
func (w *watcher) handle(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			errors.Log(w.addDirs(ev.Name))
			return false
		}
	}
	if filepath.Ext(ev.Name) != sceneExt {
		return false
	}
	p, err := w.app.projectPath(ev.Name)
	if errors.Log(err) != nil {
		return false
	}
	_, err = w.app.compile(w.comp, p, true)
	return errors.Log(err) == nil
}
