// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"cogentcore.org/scene/base/errors"
)

func newCompileCmd(a *app) *cobra.Command {
	var lang string
	var dryRun, diff, printSrc bool
	cmd := &cobra.Command{
		Use:   "compile [scene files]",
		Short: "Compile scenes to scene classes",
		Long: `Compile compiles the given scene documents, or all the scene documents
of the project directory, next to them. Only the compiled code region of
existing files is replaced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.scenes(args)
			if err != nil {
				return err
			}
			comp, err := a.compiler()
			if err != nil {
				return err
			}
			if lang != "" {
				comp.Language = lang
			}
			out := cmd.OutOrStdout()
			var errs []error
			for _, p := range paths {
				r, err := a.compile(comp, p, !dryRun)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				if diff {
					errs = append(errs, writeResultDiff(out, r))
				}
				if printSrc {
					errs = append(errs, highlight(out, r))
				}
			}
			return errors.Join(errs...)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&lang, "lang", "l", "", "compiler language, overriding the one of the scenes and the configuration")
	f.BoolVarP(&dryRun, "dry-run", "n", false, "do not write the compiled files")
	f.BoolVarP(&diff, "diff", "d", false, "print the changes to the compiled files")
	f.BoolVarP(&printSrc, "print", "p", false, "print the compiled files")
	return cmd
}
