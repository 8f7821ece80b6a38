// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets resolves the texture and font references of scene
// entities against Phaser asset packs.
package assets

import (
	"encoding/json"
	"strconv"
)

// Asset types of Phaser asset pack files.
const (
	TypeImage       = "image"
	TypeSVG         = "svg"
	TypeSpritesheet = "spritesheet"
	TypeAtlas       = "atlas"
	TypeAtlasXML    = "atlasXML"
	TypeUnityAtlas  = "unityAtlas"
	TypeMultiAtlas  = "multiatlas"
	TypeBitmapFont  = "bitmapFont"
)

// Asset is one file entry of an asset pack.
type Asset struct {
	Key  string `json:"key"`
	Type string `json:"type"`

	// URL is the file of single-file assets such as images.
	URL string `json:"url,omitempty"`

	// TextureURL is the image file of atlases and bitmap fonts.
	TextureURL string `json:"textureURL,omitempty"`

	// Section is the key of the pack section the asset is in.
	Section string `json:"-"`

	// Pack is the url of the pack file the asset is in.
	Pack string `json:"-"`
}

// UnmarshalJSON reads a pack file entry. Entries with several
// urls, such as audio files, keep the first one.
func (a *Asset) UnmarshalJSON(b []byte) error {
	var raw struct {
		Key        string `json:"key"`
		Type       string `json:"type"`
		URL        any    `json:"url"`
		TextureURL string `json:"textureURL"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	a.Key, a.Type, a.TextureURL = raw.Key, raw.Type, raw.TextureURL
	switch u := raw.URL.(type) {
	case string:
		a.URL = u
	case []any:
		if len(u) > 0 {
			a.URL, _ = u[0].(string)
		}
	}
	return nil
}

// FileURL returns the url of the main file of the asset.
func (a *Asset) FileURL() string {
	if a.URL != "" {
		return a.URL
	}
	return a.TextureURL
}

// IsTexture returns whether the asset can be the texture of a game object.
func (a *Asset) IsTexture() bool {
	switch a.Type {
	case TypeImage, TypeSVG, TypeSpritesheet, TypeAtlas, TypeAtlasXML, TypeUnityAtlas, TypeMultiAtlas:
		return true
	}
	return false
}

// Texture is a texture asset and a frame in it.
type Texture struct {
	Asset *Asset

	// Frame is the frame name in an atlas, the frame index in a
	// spritesheet, or empty for the whole image.
	Frame string
}

// FrameIndex returns the frame index of a spritesheet frame.
func (t *Texture) FrameIndex() (int, bool) {
	if t.Asset.Type != TypeSpritesheet {
		return 0, false
	}
	i, err := strconv.Atoi(t.Frame)
	return i, err == nil
}

// HasFrame returns whether the texture refers to one frame of its asset
// rather than to the whole image.
func (t *Texture) HasFrame() bool {
	switch t.Asset.Type {
	case TypeImage, TypeSVG:
		return false
	}
	return t.Frame != ""
}

// Finder resolves asset keys. It returns nil for keys it does not know;
// a miss is never an error.
type Finder interface {

	// FindTexture returns the texture with the given key and frame.
	FindTexture(key, frame string) *Texture

	// FindAssetKey returns the asset with the given key.
	FindAssetKey(key string) *Asset
}
