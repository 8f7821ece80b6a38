// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cogentcore.org/scene/scene"
)

func newCheckCmd(a *app) *cobra.Command {
	var lenient, showTree bool
	cmd := &cobra.Command{
		Use:   "check [scene files]",
		Short: "Check scenes for problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.scenes(args)
			if err != nil {
				return err
			}
			if lenient {
				a.cfg.Lenient = true
			}
			out := cmd.OutOrStdout()
			n := 0
			for _, p := range paths {
				m, err := a.open(p)
				if err != nil {
					fmt.Fprintln(out, err)
					n++
					continue
				}
				if showTree {
					fmt.Fprintln(out, p)
					printTree(out, m.Root, 1)
				}
				for _, pr := range scene.Validate(m) {
					fmt.Fprintf(out, "%s: %s\n", p, pr)
					n++
				}
			}
			if n > 0 {
				return fmt.Errorf("found %d problem(s)", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&lenient, "lenient", false, "skip entities of unknown type")
	cmd.Flags().BoolVarP(&showTree, "tree", "t", false, "print the entity tree of each scene")
	return cmd
}

// printTree writes one line per entity of the tree rooted at e,
// indented by depth.
func printTree(w io.Writer, e scene.Entity, depth int) {
	if e == nil {
		return
	}
	fmt.Fprintf(w, "%s%s %q %s\n", strings.Repeat("  ", depth), e.Type(), e.AsEditor().EditorName, e.AsTree().ID)
	for _, k := range e.AsTree().Children {
		if ke, ok := k.(scene.Entity); ok {
			printTree(w, ke, depth+1)
		}
	}
}
