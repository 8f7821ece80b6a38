// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"log/slog"

	"cogentcore.org/scene/base/ordmap"
	"cogentcore.org/scene/scene"
)

// PackRef is a section of a pack file.
type PackRef struct {
	Section string
	Pack    string
}

// AssetRef is an asset key and the url of its file.
type AssetRef struct {
	Key string
	URL string
}

// Collect returns the assets used by the entities owned by root, grouped
// by the pack section they are in. Sections and the assets in each are in
// order of first use in tree order, without duplicates. References that
// the finder can not resolve are skipped.
func Collect(root scene.Entity, f Finder) *ordmap.Map[PackRef, []AssetRef] {
	res := ordmap.New[PackRef, []AssetRef]()
	if f == nil {
		return res
	}
	seen := map[*Asset]bool{}
	use := func(a *Asset) {
		if seen[a] {
			return
		}
		seen[a] = true
		ref := PackRef{Section: a.Section, Pack: a.Pack}
		list, _ := res.Get(ref)
		res.Add(ref, append(list, AssetRef{Key: a.Key, URL: a.FileURL()}))
	}
	scene.Walk(root, func(e scene.Entity) bool {
		if t, ok := e.(scene.HasTexture); ok {
			if tc := t.AsTexture(); tc.TextureKey != "" {
				if tex := f.FindTexture(tc.TextureKey, tc.TextureFrame); tex != nil {
					use(tex.Asset)
				} else {
					slog.Debug("texture not found", "id", e.AsTree().ID, "key", tc.TextureKey, "frame", tc.TextureFrame)
				}
			}
		}
		if b, ok := e.(scene.HasBitmapFont); ok {
			if key := b.AsBitmapFont().FontAssetKey; key != "" {
				if a := f.FindAssetKey(key); a != nil {
					use(a)
				} else {
					slog.Debug("bitmap font not found", "id", e.AsTree().ID, "key", key)
				}
			}
		}
		return true
	})
	return res
}
