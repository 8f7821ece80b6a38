// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/scene/scene"
)

func TestMorphTargets(t *testing.T) {
	for _, typ := range TypeValues() {
		assert.False(t, AllowMorphTo(typ, typ), "%v to itself", typ)
		for _, to := range MorphTargets(typ) {
			assert.True(t, AllowMorphTo(typ, to))
			assert.True(t, AllowMorphTo(to, typ), "%v and %v morph both ways", typ, to)
		}
	}
	assert.ElementsMatch(t, []Type{TypeSprite, TypeTileSprite}, MorphTargets(TypeImage))
	assert.Empty(t, MorphTargets(TypeWorld))
	assert.Empty(t, MorphTargets(TypeGroup))
	assert.False(t, AllowMorphTo(TypeText, TypeBitmapText))

	ts := MorphTargets(TypeSprite)
	ts[0] = TypeWorld
	assert.False(t, AllowMorphTo(TypeSprite, TypeWorld), "targets are a copy")
}

func TestMorphImageToSprite(t *testing.T) {
	w := NewWorld()
	before := NewImage(w)
	img := NewImage(w)
	after := NewImage(w)
	img.EditorName = "hero"
	img.X, img.Y = 40, 80
	img.TextureKey = "atlas"
	img.TextureFrame = "hero-0"
	img.TintFill = true
	img.OriginX = 0
	g := NewGroup(w)
	g.AddMember(img)

	e, err := Morph(img, TypeSprite)
	require.NoError(t, err)
	sp := e.(*Sprite)
	assert.Equal(t, img.ID, sp.ID)
	assert.Equal(t, "hero", sp.EditorName)
	assert.Equal(t, 40.0, sp.X)
	assert.Equal(t, 80.0, sp.Y)
	assert.Equal(t, "atlas", sp.TextureKey)
	assert.Equal(t, "hero-0", sp.TextureFrame)
	assert.True(t, sp.TintFill)
	assert.Equal(t, 0.0, sp.OriginX)
	assert.Equal(t, 0.5, sp.OriginY)
	assert.Equal(t, "", sp.AutoPlayAnimKey)

	require.Equal(t, 4, w.NumChildren())
	assert.Equal(t, Entity(before), w.Child(0))
	assert.Equal(t, Entity(sp), w.Child(1))
	assert.Equal(t, Entity(after), w.Child(2))
	assert.Equal(t, Entity(w), sp.Parent)
	assert.Nil(t, img.Parent)
	assert.Equal(t, []Entity{sp}, g.Resolve(w))

	sp.X = 1
	assert.Equal(t, 40.0, img.X, "components are copied")
}

func TestMorphTileSprite(t *testing.T) {
	ts := NewTileSprite()
	ts.Width, ts.Height = 300, 20
	ts.TileScaleX = 2
	ts.TextureKey = "ground"

	e, err := Morph(ts, TypeImage)
	require.NoError(t, err)
	img := e.(*Image)
	assert.Equal(t, "ground", img.TextureKey)
	assert.Nil(t, img.Parent)

	e, err = Morph(img, TypeTileSprite)
	require.NoError(t, err)
	back := e.(*TileSprite)
	assert.Equal(t, 0.0, back.Width, "tiling is not kept by images")
	assert.Equal(t, 1.0, back.TileScaleX)
	assert.Equal(t, ts.ID, back.ID)
}

func TestMorphBitmapText(t *testing.T) {
	bt := NewBitmapText()
	bt.Text = "hi"
	bt.FontAssetKey = "arcade"
	bt.FontSize = 24
	bt.Align = AlignCenter

	e, err := Morph(bt, TypeDynamicBitmapText)
	require.NoError(t, err)
	dt := e.(*DynamicBitmapText)
	assert.Equal(t, "hi", dt.Text)
	assert.Equal(t, "arcade", dt.FontAssetKey)
	assert.Equal(t, 24.0, dt.FontSize)
	assert.Equal(t, AlignCenter, dt.Align)
	assert.Equal(t, 0.0, dt.OriginX)
}

func TestMorphNotAllowed(t *testing.T) {
	w := NewWorld()
	tx := NewText(w)
	for _, to := range []Type{TypeText, TypeSprite, TypeBitmapText, TypeWorld, TypeGroup} {
		e, err := Morph(tx, to)
		assert.ErrorIs(t, err, ErrMorph, "%v", to)
		assert.Nil(t, e)
	}
	assert.Equal(t, Entity(tx), w.Child(0), "a failed morph leaves the tree unchanged")
}
