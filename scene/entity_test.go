// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/scene/scene"
)

// roundTrip writes e to JSON text and reads it back.
func roundTrip(t *testing.T, e Entity) Entity {
	t.Helper()
	b, err := json.Marshal(WriteEntity(e))
	require.NoError(t, err)
	var d Data
	require.NoError(t, json.Unmarshal(b, &d))
	r, err := ReadEntity(d, ReadOptions{})
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func TestDefaultsOmitted(t *testing.T) {
	for _, typ := range TypeValues() {
		t.Run(typ.String(), func(t *testing.T) {
			e := New(typ)
			d := WriteEntity(e)
			assert.Equal(t, e.AsTree().ID, d[KeyID])
			assert.Equal(t, typ.String(), d[KeyType])
			delete(d, KeyID)
			delete(d, KeyType)
			if typ == TypeWorld || typ == TypeGroup {
				assert.Equal(t, Data{KeyChildren: []any{}}, d)
			} else {
				assert.Empty(t, d)
			}
		})
	}
}

func TestOriginDefaults(t *testing.T) {
	assert.Equal(t, Origin{OriginX: 0.5, OriginY: 0.5}, NewSprite().Origin)
	assert.Equal(t, Origin{OriginX: 0.5, OriginY: 0.5}, NewImage().Origin)
	assert.Equal(t, Origin{}, NewText().Origin)
	assert.Equal(t, Origin{}, NewBitmapText().Origin)
	assert.Equal(t, Origin{}, NewDynamicBitmapText().Origin)

	// the computed default is what is compared against on write
	bt := NewBitmapText()
	bt.OriginX = 0.5
	d := WriteEntity(bt)
	assert.Equal(t, 0.5, d["originX"])
	assert.NotContains(t, d, "originY")
}

func TestRoundTrip(t *testing.T) {
	sp := NewSprite()
	sp.X, sp.Y = 10, -20.5
	sp.ScaleX = 2
	sp.Angle = 45
	sp.OriginX = 0
	sp.FlipX = true
	sp.Visible = false
	sp.Alpha = 0.25
	sp.BlendMode = 1
	sp.TextureKey, sp.TextureFrame = "atlas", "hero/run1"
	sp.TintTopLeft = 0xff0000
	sp.TintFill = true
	sp.ScrollFactorY = 0
	sp.EditorName = "hero"
	sp.EditorShow = false
	sp.VariableField = true
	sp.AutoPlayAnimKey = "run"
	sp.Active = false
	sp.Depth = 3

	ts := NewTileSprite()
	ts.Width, ts.Height = 800, 64
	ts.TilePositionX = 12
	ts.TileScaleY = 0.5

	tx := NewText()
	tx.Text = "Score: 0"
	tx.FontFamily = "Arial"
	tx.FontSize = "32px"
	tx.MaxLines = 2
	tx.ShadowFill = true
	tx.Align = "center"

	bt := NewBitmapText()
	bt.Text = "hello"
	bt.FontAssetKey = "desyrel"
	bt.FontSize = 48
	bt.Align = AlignRight
	bt.LetterSpacing = 2

	dt := NewDynamicBitmapText()
	dt.Text = "wave"
	dt.DisplayCallback = "this.waveText"
	dt.CropWidth, dt.CropHeight = 100, 20
	dt.ScrollX = 4

	g := NewGroup()
	g.EditorName = "enemies"
	g.AddMember(sp)
	g.AddMember(ts)

	for _, e := range []Entity{sp, ts, tx, bt, dt, g, NewImage()} {
		t.Run(e.Type().String(), func(t *testing.T) {
			r := roundTrip(t, e)
			assert.Equal(t, e.AsTree().ID, r.AsTree().ID)
			assert.Equal(t, e.Type(), r.Type())
			assert.Equal(t, e.Components(), r.Components())
			assert.Equal(t, WriteEntity(e), WriteEntity(r))
		})
	}
	assert.Equal(t, g.Members, roundTrip(t, g).(*Group).Members)
}

func TestWorldRoundTrip(t *testing.T) {
	w := NewWorld()
	a := NewSprite(w)
	a.EditorName = "a"
	b := NewImage(w)
	b.EditorName = "b"
	g := NewGroup(w)
	g.AddMember(a)

	r := roundTrip(t, w).(*World)
	require.Len(t, r.Children, 3)
	assert.Equal(t, a.ID, r.Child(0).AsTree().ID)
	assert.Equal(t, "b", r.Child(1).(*Image).EditorName)
	assert.Equal(t, r.Children[0].AsTree().Parent, Entity(r))
	rg := r.Child(2).(*Group)
	assert.Empty(t, rg.Children, "groups never own their members")
	assert.Equal(t, []Entity{r.Children[0].(Entity)}, rg.Resolve(r))
}

func TestReadMissingKeys(t *testing.T) {
	_, err := ReadEntity(Data{KeyType: "Sprite"}, ReadOptions{})
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = ReadEntity(Data{KeyID: "a"}, ReadOptions{})
	assert.ErrorIs(t, err, ErrMissingType)

	// deep in the tree still fails the whole read
	_, err = ReadEntity(Data{KeyID: "w", KeyType: "World", KeyChildren: []any{
		Data{KeyID: "a", KeyType: "Sprite"},
		Data{KeyType: "Image"},
	}}, ReadOptions{Lenient: true})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestReadBadAttribute(t *testing.T) {
	_, err := ReadEntity(Data{KeyID: "a", KeyType: "Sprite", "x": "ten"}, ReadOptions{})
	assert.ErrorIs(t, err, ErrBadAttribute)

	_, err = ReadEntity(Data{KeyID: "a", KeyType: "Sprite", "blendMode": 1.5}, ReadOptions{})
	assert.ErrorIs(t, err, ErrBadAttribute)

	_, err = ReadEntity(Data{KeyID: "w", KeyType: "World", KeyChildren: "none"}, ReadOptions{})
	assert.ErrorIs(t, err, ErrBadAttribute)
}

func TestReadUnknownType(t *testing.T) {
	d := Data{KeyID: "w", KeyType: "World", KeyChildren: []any{
		Data{KeyID: "a", KeyType: "Sprit"},
		Data{KeyID: "b", KeyType: "Image"},
	}}
	_, err := ReadEntity(d, ReadOptions{})
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "did you mean Sprite?")

	e, err := ReadEntity(d, ReadOptions{Lenient: true})
	require.NoError(t, err)
	require.Len(t, e.AsTree().Children, 1)
	assert.Equal(t, "b", e.AsTree().Child(0).AsTree().ID)

	e, err = ReadEntity(Data{KeyID: "x", KeyType: "Container"}, ReadOptions{Lenient: true})
	assert.NoError(t, err)
	assert.Nil(t, e)
}

func TestReadText(t *testing.T) {
	e, err := ReadEntity(Data{KeyID: "t", KeyType: "Text", "text": "Score"}, ReadOptions{})
	require.NoError(t, err)
	txt, ok := e.(*Text)
	require.True(t, ok)
	assert.Equal(t, "t", txt.ID)
	assert.Equal(t, "Score", txt.Text)
	assert.Equal(t, 0.0, txt.OriginX)
}

func TestReadTintRange(t *testing.T) {
	_, err := ReadEntity(Data{KeyID: "a", KeyType: "Sprite", "tintTopLeft": -1}, ReadOptions{})
	assert.ErrorIs(t, err, ErrBadAttribute)
	_, err = ReadEntity(Data{KeyID: "a", KeyType: "Sprite", "tintTopLeft": 0x1000000}, ReadOptions{})
	assert.ErrorIs(t, err, ErrBadAttribute)

	e, err := ReadEntity(Data{KeyID: "a", KeyType: "Sprite", "tintTopLeft": 0, "tintBottomRight": 0xffffff}, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, e.(*Sprite).TintTopLeft)
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("DynamicBitmapText")
	assert.NoError(t, err)
	assert.Equal(t, TypeDynamicBitmapText, typ)
	typ, err = ParseType("Text")
	assert.NoError(t, err)
	assert.Equal(t, TypeText, typ)

	_, err = ParseType("Zebra")
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestCapabilities(t *testing.T) {
	var e Entity = NewBitmapText()
	_, ok := e.(HasFlip)
	assert.False(t, ok, "bitmap text can not be flipped")
	_, ok = e.(HasTextual)
	assert.True(t, ok)
	_, ok = e.(HasTexture)
	assert.False(t, ok)

	e = NewTileSprite()
	for _, ok := range []bool{
		isA[HasTexture](e), isA[HasTiling](e), isA[HasAnimations](e), isA[HasVariable](e),
	} {
		assert.True(t, ok)
	}
	assert.False(t, isA[HasTransform](NewWorld()))
	assert.False(t, isA[HasTransform](NewGroup()))
}

func isA[T any](e Entity) bool {
	_, ok := e.(T)
	return ok
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, []string{"x", "y", "scaleX", "scaleY", "angle"}, Attrs(&Transform{}))
	assert.Equal(t, []string{"tintFill", "tintTopLeft", "tintTopRight", "tintBottomLeft", "tintBottomRight"}, Attrs(&Tint{}))
}

func TestGroupMembers(t *testing.T) {
	w := NewWorld()
	a := NewSprite(w)
	b := NewSprite(w)
	g := NewGroup(w)
	g.AddMember(a)
	g.AddMember(b)
	g.AddMember(a)
	assert.Equal(t, []string{a.ID, b.ID}, g.Members)
	assert.True(t, g.HasMember(b.ID))
	assert.Panics(t, func() { g.AddChild(NewSprite()) }, "groups do not own entities")

	b.Delete()
	assert.Equal(t, []Entity{a}, g.Resolve(w), "dangling members are skipped")
	assert.True(t, g.RemoveMember(b.ID))
	assert.False(t, g.RemoveMember(b.ID))
	assert.Nil(t, g.Resolve(nil))
}

func TestWalk(t *testing.T) {
	w := NewWorld()
	a := NewSprite(w)
	g := NewGroup(w)
	g.AddMember(a)
	var types []Type
	Walk(w, func(e Entity) bool {
		types = append(types, e.Type())
		return true
	})
	assert.Equal(t, []Type{TypeWorld, TypeSprite, TypeGroup}, types, "members are visited once, as owned")
	Walk(nil, func(e Entity) bool { panic("not called") })
}

func BenchmarkWriteEntity(b *testing.B) {
	w := NewWorld()
	for range 200 {
		s := NewSprite(w)
		s.X = 3
	}
	for b.Loop() {
		WriteEntity(w)
	}
}
