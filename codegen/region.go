// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"
)

// Markers delimiting the generated region of a compiled file.
// Everything between them belongs to the compiler; everything
// outside them belongs to the developer.
const (
	StartMarker = "/* START OF COMPILED CODE */"
	EndMarker   = "/* END OF COMPILED CODE */"
)

// Text around the generated region of a new file.
const (
	DefaultPrefix = "\n// You can write more code here\n\n"
	DefaultSuffix = "\n\n// You can write more code here\n"
)

// SplitRegion returns the text before the start marker and after
// the end marker of src. ok is false if src does not have a start
// marker followed by an end marker.
func SplitRegion(src string) (prefix, suffix string, ok bool) {
	start := strings.Index(src, StartMarker)
	if start < 0 {
		return "", "", false
	}
	end := strings.Index(src[start+len(StartMarker):], EndMarker)
	if end < 0 {
		return "", "", false
	}
	end += start + len(StartMarker)
	return src[:start], src[end+len(EndMarker):], true
}

// Region returns the generated region for the given code,
// including the markers.
func Region(code string) string {
	return StartMarker + "\n\n" + strings.TrimRight(code, "\n") + "\n\n" + EndMarker
}

// Merge returns the file content with the generated region for code and
// the text outside the region of baseline. ok reports whether baseline
// had a region. A blank baseline gets the default text around the
// region. Any other baseline without a region is kept whole, with the
// region added after it. Line endings follow the baseline.
func Merge(baseline string, code string) (src string, ok bool) {
	crlf := strings.Contains(baseline, "\r\n")
	eol := func(s string) string {
		if crlf {
			return strings.ReplaceAll(s, "\n", "\r\n")
		}
		return s
	}
	prefix, suffix, ok := SplitRegion(baseline)
	switch {
	case ok:
	case strings.TrimSpace(baseline) == "":
		prefix, suffix = eol(DefaultPrefix), eol(DefaultSuffix)
	default:
		prefix, suffix = strings.TrimRight(baseline, "\r\n")+eol("\n\n"), eol(DefaultSuffix)
	}
	return prefix + eol(Region(code)) + suffix, ok
}

// HasMarker returns whether s contains the start or end marker.
func HasMarker(s string) bool {
	return strings.Contains(s, StartMarker) || strings.Contains(s, EndMarker)
}
