// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument is a
// guess at where the node might be, which is checked first.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	if len(startIndex) > 0 {
		si := startIndex[0]
		if si >= 0 && si < len(slice) && slice[si] == child {
			return si
		}
	}
	return slices.Index(slice, child)
}

// IndexByID returns the index of the first element in the given slice that
// has the given id, or -1 if none is found.
func IndexByID(slice []Node, id string) int {
	return slices.IndexFunc(slice, func(ch Node) bool { return ch.AsTree().ID == id })
}
