// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"log/slog"

	"github.com/hack-pad/hackpadfs"

	"cogentcore.org/scene/base/ordmap"
)

// PackFinder is a [Finder] over a list of asset packs. When several
// entries share a key, the first one in pack order wins.
type PackFinder struct {
	Packs []*Pack

	assets *ordmap.Map[string, *Asset]
}

// NewPackFinder returns a finder over the given packs.
func NewPackFinder(packs ...*Pack) *PackFinder {
	f := &PackFinder{assets: ordmap.New[string, *Asset]()}
	for _, p := range packs {
		f.AddPack(p)
	}
	return f
}

// OpenPackFinder returns a finder over the pack files at the given
// paths of fsys.
func OpenPackFinder(fsys hackpadfs.FS, paths ...string) (*PackFinder, error) {
	f := NewPackFinder()
	for _, path := range paths {
		p, err := OpenPack(fsys, path)
		if err != nil {
			return nil, err
		}
		f.AddPack(p)
	}
	return f, nil
}

// AddPack adds the assets of the given pack that do not
// shadow a key already known.
func (f *PackFinder) AddPack(p *Pack) {
	f.Packs = append(f.Packs, p)
	for _, assets := range p.Sections.All() {
		for _, a := range assets {
			if !f.assets.AddIfNew(a.Key, a) {
				slog.Debug("duplicate asset key", "key", a.Key, "pack", p.URL)
			}
		}
	}
}

// Keys returns the known asset keys, in pack order.
func (f *PackFinder) Keys() []string {
	return f.assets.Keys()
}

func (f *PackFinder) FindAssetKey(key string) *Asset {
	a, _ := f.assets.Get(key)
	return a
}

func (f *PackFinder) FindTexture(key, frame string) *Texture {
	a := f.FindAssetKey(key)
	if a == nil || !a.IsTexture() {
		return nil
	}
	t := &Texture{Asset: a, Frame: frame}
	if !t.HasFrame() {
		t.Frame = ""
	}
	return t
}
