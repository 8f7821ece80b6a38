// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"cogentcore.org/scene/base/errors"
)

func newFmtCmd(a *app) *cobra.Command {
	var diff bool
	cmd := &cobra.Command{
		Use:   "fmt [scene files]",
		Short: "Rewrite scenes in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.scenes(args)
			if err != nil {
				return err
			}
			var errs []error
			for _, p := range paths {
				errs = append(errs, a.format(cmd, p, diff))
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print the changes instead of writing them")
	return cmd
}

// format rewrites the scene at project path p in canonical form
// if it is not already.
func (a *app) format(cmd *cobra.Command, p string, diff bool) error {
	old, err := fs.ReadFile(a.fsys, p)
	if err != nil {
		return err
	}
	m, err := a.open(p)
	if err != nil {
		return err
	}
	b, err := m.Bytes()
	if err != nil {
		return err
	}
	if string(b) == string(old) {
		return nil
	}
	if diff {
		return writeDiff(cmd.OutOrStdout(), p, string(old), string(b))
	}
	if err := m.Save(a.fsys, p); err != nil {
		return err
	}
	slog.Info("formatted scene", "path", p)
	return nil
}
