// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/hack-pad/hackpadfs"

	"cogentcore.org/scene/base/ordmap"
)

// Pack is a Phaser asset pack file: named sections of file entries.
type Pack struct {

	// URL is the project url of the pack file, as passed to
	// this.load.pack in generated code.
	URL string

	// Sections are the assets of each section, in file order.
	Sections *ordmap.Map[string, []*Asset]
}

// ReadPack parses the given pack file content. The "meta" section and
// entries without a key are ignored.
func ReadPack(b []byte, url string) (*Pack, error) {
	p := &Pack{URL: url, Sections: ordmap.New[string, []*Asset]()}
	dec := json.NewDecoder(bytes.NewReader(b))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, fmt.Errorf("asset pack %s: not a JSON object", url)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("asset pack %s: %w", url, err)
		}
		name, _ := tok.(string)
		var sec struct {
			Files []*Asset `json:"files"`
		}
		if name == "meta" {
			var skip json.RawMessage
			err = dec.Decode(&skip)
		} else {
			err = dec.Decode(&sec)
		}
		if err != nil {
			return nil, fmt.Errorf("asset pack %s: section %q: %w", url, name, err)
		}
		if name == "meta" {
			continue
		}
		assets := make([]*Asset, 0, len(sec.Files))
		for _, a := range sec.Files {
			if a == nil || a.Key == "" {
				slog.Debug("skipping asset pack entry without key", "pack", url, "section", name)
				continue
			}
			a.Section = name
			a.Pack = url
			assets = append(assets, a)
		}
		p.Sections.Add(name, assets)
	}
	return p, nil
}

// OpenPack reads the pack file at the given path of fsys. The path is
// also the url of the pack.
func OpenPack(fsys hackpadfs.FS, path string) (*Pack, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return ReadPack(b, path)
}
