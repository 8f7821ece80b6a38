// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charsetx detects, decodes and encodes the character set
// of text files so that a rewritten file keeps the encoding it had.
package charsetx

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UTF8 is the canonical name of the default charset.
const UTF8 = "utf-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Charset is a named text encoding.
type Charset struct {

	// Name is the canonical name, as returned by [charset.Lookup].
	Name string

	// BOM is whether encoded text starts with a byte order mark.
	BOM bool

	enc encoding.Encoding
}

// Default returns the UTF-8 charset without a byte order mark.
func Default() *Charset {
	return &Charset{Name: UTF8, enc: unicode.UTF8}
}

// Lookup returns the charset with the given label, such as "utf-8",
// "latin1" or "windows-1252".
func Lookup(label string) (*Charset, error) {
	if label == "" {
		return Default(), nil
	}
	e, name := charset.Lookup(label)
	if e == nil {
		return nil, fmt.Errorf("charsetx: unknown charset %q", label)
	}
	return &Charset{Name: name, enc: e}, nil
}

// Detect determines the charset of the given file contents.
// A byte order mark wins; otherwise valid UTF-8 is reported as UTF-8
// and anything else falls back to the platform guess.
func Detect(b []byte) *Charset {
	if bytes.HasPrefix(b, utf8BOM) {
		cs := Default()
		cs.BOM = true
		return cs
	}
	e, name, certain := charset.DetermineEncoding(b, "text/plain")
	if (!certain && utf8.Valid(b)) || name == UTF8 {
		return Default()
	}
	cs := &Charset{Name: name, enc: e}
	if strings.HasPrefix(name, "utf-16") {
		cs.BOM = true
	}
	return cs
}

// Decode returns the given bytes as a UTF-8 string.
func (cs *Charset) Decode(b []byte) (string, error) {
	if cs.Name == UTF8 {
		return string(bytes.TrimPrefix(b, utf8BOM)), nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(cs.enc.NewDecoder()), b)
	if err != nil {
		return "", fmt.Errorf("charsetx: decoding %s: %w", cs.Name, err)
	}
	return string(out), nil
}

// Encode returns the given string in this charset, with a
// byte order mark if the charset has one.
func (cs *Charset) Encode(s string) ([]byte, error) {
	if cs.Name == UTF8 {
		if cs.BOM {
			return append(bytes.Clone(utf8BOM), s...), nil
		}
		return []byte(s), nil
	}
	enc := cs.enc
	if strings.HasPrefix(cs.Name, "utf-16") {
		if cs.Name == "utf-16le" {
			enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
		} else {
			enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
		}
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("charsetx: encoding %s: %w", cs.Name, err)
	}
	return out, nil
}

func (cs *Charset) String() string {
	if cs.BOM {
		return cs.Name + " (BOM)"
	}
	return cs.Name
}
