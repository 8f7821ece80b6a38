// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/scene/tree"
)

// Entity is one node of the scene tree. Every entity has an id
// (see [tree.NodeBase.ID]), an immutable [Type], and the attributes of
// the components it embeds.
type Entity interface {
	tree.Node

	// Type returns the type of the entity.
	Type() Type

	// Components returns the components of the entity in
	// initialization order.
	Components() []Component

	// AsEditor returns the editor attributes, which all entities have.
	AsEditor() *Editor

	// Init sets all attributes to their defaults.
	Init()
}

// Capabilities. Use a type assertion to test whether an entity has one,
// for example:
//
//	if t, ok := e.(scene.HasTransform); ok {
//		t.AsTransform().X = 10
//	}
type (
	HasGameObject   interface{ AsGameObject() *GameObject }
	HasTransform    interface{ AsTransform() *Transform }
	HasOrigin       interface{ AsOrigin() *Origin }
	HasFlip         interface{ AsFlip() *Flip }
	HasVisibility   interface{ AsVisibility() *Visibility }
	HasDisplay      interface{ AsDisplay() *Display }
	HasTexture      interface{ AsTexture() *Texture }
	HasAnimations   interface{ AsAnimations() *Animations }
	HasTint         interface{ AsTint() *Tint }
	HasScrollFactor interface{ AsScrollFactor() *ScrollFactor }
	HasVariable     interface{ AsVariable() *Variable }
	HasTextual      interface{ AsTextual() *Textual }
	HasTextStyle    interface{ AsTextStyle() *TextStyle }
	HasBitmapFont   interface{ AsBitmapFont() *BitmapFont }
	HasDynamic      interface{ AsDynamicBitmap() *DynamicBitmap }
	HasTiling       interface{ AsTiling() *Tiling }
)

// initEntity sets every component of e to its defaults and makes
// e a valid tree node.
func initEntity(e Entity) {
	for _, c := range e.Components() {
		c.setDefaults()
	}
	tree.InitNode(e)
}

// add initializes e and adds it to the first parent, if any.
func add[T Entity](e T, parent []tree.Node) T {
	e.Init()
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(e)
	}
	return e
}

// World is the root container of a scene. It owns its children.
type World struct {
	tree.NodeBase `copier:"-"`
	Editor
}

// NewWorld returns a new [World].
func NewWorld() *World { return add(&World{}, nil) }

func (w *World) Type() Type              { return TypeWorld }
func (w *World) AllowsChildren() bool    { return true }
func (w *World) Components() []Component { return []Component{&w.Editor} }
func (w *World) Init()                   { initEntity(w) }

// Entities returns the children of the world as entities.
func (w *World) Entities() []Entity {
	res := make([]Entity, 0, len(w.Children))
	for _, k := range w.Children {
		if e, ok := k.(Entity); ok {
			res = append(res, e)
		}
	}
	return res
}

// Image is a static textured game object.
type Image struct {
	tree.NodeBase `copier:"-"`
	GameObject
	Transform
	Origin
	Flip
	Visibility
	Display
	Texture
	Tint
	ScrollFactor
	Editor
	Variable
}

// NewImage returns a new [Image] added to the given parent, if any.
func NewImage(parent ...tree.Node) *Image { return add(&Image{}, parent) }

func (o *Image) Type() Type { return TypeImage }
func (o *Image) Init()      { initEntity(o) }

func (o *Image) Components() []Component {
	return []Component{&o.GameObject, &o.Transform, &o.Origin, &o.Flip, &o.Visibility,
		&o.Display, &o.Texture, &o.Tint, &o.ScrollFactor, &o.Editor, &o.Variable}
}

// Sprite is a textured game object that can play animations.
type Sprite struct {
	tree.NodeBase `copier:"-"`
	GameObject
	Transform
	Origin
	Flip
	Visibility
	Display
	Texture
	Tint
	ScrollFactor
	Editor
	Variable
	Animations
}

// NewSprite returns a new [Sprite] added to the given parent, if any.
func NewSprite(parent ...tree.Node) *Sprite { return add(&Sprite{}, parent) }

func (o *Sprite) Type() Type { return TypeSprite }
func (o *Sprite) Init()      { initEntity(o) }

func (o *Sprite) Components() []Component {
	return []Component{&o.GameObject, &o.Transform, &o.Origin, &o.Flip, &o.Visibility,
		&o.Display, &o.Texture, &o.Tint, &o.ScrollFactor, &o.Editor, &o.Variable, &o.Animations}
}

// TileSprite is a sprite whose texture repeats over its area.
type TileSprite struct {
	tree.NodeBase `copier:"-"`
	GameObject
	Transform
	Origin
	Flip
	Visibility
	Display
	Texture
	Tint
	ScrollFactor
	Editor
	Variable
	Animations
	Tiling
}

// NewTileSprite returns a new [TileSprite] added to the given parent, if any.
func NewTileSprite(parent ...tree.Node) *TileSprite { return add(&TileSprite{}, parent) }

func (o *TileSprite) Type() Type { return TypeTileSprite }
func (o *TileSprite) Init()      { initEntity(o) }

func (o *TileSprite) Components() []Component {
	return []Component{&o.GameObject, &o.Transform, &o.Origin, &o.Flip, &o.Visibility,
		&o.Display, &o.Texture, &o.Tint, &o.ScrollFactor, &o.Editor, &o.Variable, &o.Animations,
		&o.Tiling}
}

// Text is a text object rendered with a web font.
type Text struct {
	tree.NodeBase `copier:"-"`
	GameObject
	Transform
	Origin
	Flip
	Visibility
	Display
	Tint
	ScrollFactor
	Editor
	Variable
	Textual
	TextStyle
}

// NewText returns a new [Text] added to the given parent, if any.
func NewText(parent ...tree.Node) *Text { return add(&Text{}, parent) }

func (o *Text) Type() Type { return TypeText }

func (o *Text) Init() {
	initEntity(o)
	o.Origin = Origin{}
}

func (o *Text) Components() []Component {
	return []Component{&o.GameObject, &o.Transform, &o.Origin, &o.Flip, &o.Visibility,
		&o.Display, &o.Tint, &o.ScrollFactor, &o.Editor, &o.Variable, &o.Textual, &o.TextStyle}
}

// BitmapText is a text object rendered with a bitmap font.
type BitmapText struct {
	tree.NodeBase `copier:"-"`
	GameObject
	Transform
	Origin
	Visibility
	Display
	Tint
	ScrollFactor
	Editor
	Variable
	Textual
	BitmapFont
}

// NewBitmapText returns a new [BitmapText] added to the given parent, if any.
func NewBitmapText(parent ...tree.Node) *BitmapText { return add(&BitmapText{}, parent) }

func (o *BitmapText) Type() Type { return TypeBitmapText }

func (o *BitmapText) Init() {
	initEntity(o)
	o.Origin = Origin{}
}

func (o *BitmapText) Components() []Component {
	return []Component{&o.GameObject, &o.Transform, &o.Origin, &o.Visibility,
		&o.Display, &o.Tint, &o.ScrollFactor, &o.Editor, &o.Variable, &o.Textual, &o.BitmapFont}
}

// DynamicBitmapText is a bitmap text object with per-character
// display callbacks, cropping and scrolling.
type DynamicBitmapText struct {
	tree.NodeBase `copier:"-"`
	GameObject
	Transform
	Origin
	Visibility
	Display
	Tint
	ScrollFactor
	Editor
	Variable
	Textual
	BitmapFont
	DynamicBitmap
}

// NewDynamicBitmapText returns a new [DynamicBitmapText] added to the given parent, if any.
func NewDynamicBitmapText(parent ...tree.Node) *DynamicBitmapText {
	return add(&DynamicBitmapText{}, parent)
}

func (o *DynamicBitmapText) Type() Type { return TypeDynamicBitmapText }

func (o *DynamicBitmapText) Init() {
	initEntity(o)
	o.Origin = Origin{}
}

func (o *DynamicBitmapText) Components() []Component {
	return []Component{&o.GameObject, &o.Transform, &o.Origin, &o.Visibility,
		&o.Display, &o.Tint, &o.ScrollFactor, &o.Editor, &o.Variable, &o.Textual, &o.BitmapFont,
		&o.DynamicBitmap}
}
