// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/scene/assets"
	"cogentcore.org/scene/codedom"
	"cogentcore.org/scene/scene"
)

// Builder builds the code DOM of a scene: one class extending the
// scene's super class, with preload and create methods.
type Builder struct {

	// ClassName is the name of the generated class.
	ClassName string

	// Finder resolves texture and font keys. It may be nil, in which
	// case no asset packs are loaded and texture frames are written
	// as they are stored.
	Finder assets.Finder

	// vars are the variable names of the entities.
	vars map[scene.Entity]string
}

// Build returns the code DOM of the given scene.
func (b *Builder) Build(m *scene.SceneModel) *codedom.Unit {
	b.vars = map[scene.Entity]string{}
	b.allocNames(m.Root)

	cls := &codedom.ClassDecl{Name: b.ClassName, SuperClass: m.SuperClass}
	if m.SceneKey != "" {
		ctor := &codedom.MethodDecl{Name: "constructor"}
		ctor.Add(codedom.NewMethodCall("super", "").ArgLiteral(m.SceneKey))
		cls.Add(ctor)
	}
	cls.Add(b.buildPreload(m))
	create, fields := b.buildCreate(m)
	cls.Add(create)
	for _, f := range fields {
		cls.Add(f)
	}
	u := &codedom.Unit{}
	u.Add(cls)
	return u
}

// allocNames gives every entity below root a unique variable name.
// The first entity with a given base name keeps it and later ones
// get a numbered name that no entity uses as its base.
func (b *Builder) allocNames(root scene.Entity) {
	var ents []scene.Entity
	nc := scene.NewNameComputer(nil)
	scene.Walk(root, func(e scene.Entity) bool {
		if e != root {
			ents = append(ents, e)
			nc.Add(scene.VarBase(e))
		}
		return true
	})
	claimed := map[string]bool{}
	for _, e := range ents {
		base := scene.VarBase(e)
		if !claimed[base] {
			claimed[base] = true
			b.vars[e] = base
			continue
		}
		b.vars[e] = nc.NewName(base)
	}
}

// fieldNames returns a unique field name for each of the given entities.
// Variable names that differ only in the case of their first letter
// map to the same field name, so the first keeps it and later ones are
// numbered like variable names.
func (b *Builder) fieldNames(fields []scene.Entity) []string {
	nc := scene.NewNameComputer(nil)
	for _, e := range fields {
		nc.Add(scene.FieldName(b.vars[e]))
	}
	res := make([]string, len(fields))
	claimed := map[string]bool{}
	for i, e := range fields {
		f := scene.FieldName(b.vars[e])
		if claimed[f] {
			f = nc.NewName(f)
		}
		claimed[f] = true
		res[i] = f
	}
	return res
}

// VarName returns the variable name given to the entity by the last build.
func (b *Builder) VarName(e scene.Entity) string {
	return b.vars[e]
}

func (b *Builder) buildPreload(m *scene.SceneModel) *codedom.MethodDecl {
	md := &codedom.MethodDecl{Name: scene.MethodPreload, ReturnType: "void"}
	if m.AutoLoadAssets && b.Finder != nil {
		for ref := range assets.Collect(m.Root, b.Finder).All() {
			md.Add(codedom.NewMethodCall("pack", "this.load").ArgLiteral(ref.Section).ArgLiteral(ref.Pack))
		}
	}
	addUserCode(md, m.UserCode[scene.MethodPreload])
	return md
}

func addUserCode(md *codedom.MethodDecl, uc *scene.MethodUserCode) {
	if uc == nil {
		return
	}
	if uc.Before != "" {
		md.Prepend(codedom.Raw(uc.Before), codedom.Raw(""))
	}
	if uc.After != "" {
		md.Add(codedom.Raw(""), codedom.Raw(uc.After))
	}
}

// buildCreate returns the create method and the field declarations.
func (b *Builder) buildCreate(m *scene.SceneModel) (*codedom.MethodDecl, []*codedom.FieldDecl) {
	md := &codedom.MethodDecl{Name: scene.MethodCreate, ReturnType: "void"}
	var groups []*scene.Group
	var fields []scene.Entity
	scene.Walk(m.Root, func(e scene.Entity) bool {
		if e == m.Root {
			return true
		}
		if v, ok := e.(scene.HasVariable); ok && v.AsVariable().VariableField {
			fields = append(fields, e)
		}
		if g, ok := e.(*scene.Group); ok {
			groups = append(groups, g)
			return true
		}
		b.buildObject(md, e)
		return true
	})
	for _, g := range groups {
		name := b.vars[g]
		md.Add(codedom.Raw("// " + name))
		var members []string
		for _, e := range g.Resolve(m.Root) {
			if mv, ok := b.vars[e]; ok && e != scene.Entity(g) {
				members = append(members, mv)
			}
		}
		c := codedom.NewMethodCall("group", "this.add").Arg("[" + strings.Join(members, ", ") + "]")
		c.ReturnToVar = name
		md.Add(c, codedom.Raw(""))
	}
	var decls []*codedom.FieldDecl
	for i, f := range b.fieldNames(fields) {
		e := fields[i]
		md.Add(codedom.NewAssignProperty(f, "this", b.vars[e]))
		decls = append(decls, &codedom.FieldDecl{Name: f, Type: phaserType(e), Public: true})
	}
	addUserCode(md, m.UserCode[scene.MethodCreate])
	return md, decls
}

// phaserType returns the Phaser class of objects created for e.
func phaserType(e scene.Entity) string {
	switch e.Type() {
	case scene.TypeWorld:
		return "Phaser.GameObjects.Layer"
	case scene.TypeGroup:
		return "Phaser.GameObjects.Group"
	case scene.TypeDynamicBitmapText:
		return "Phaser.GameObjects.DynamicBitmapText"
	}
	return "Phaser.GameObjects." + e.Type().String()
}

// factories are the this.add methods that create each type.
var factories = map[scene.Type]string{
	scene.TypeWorld:             "layer",
	scene.TypeImage:             "image",
	scene.TypeSprite:            "sprite",
	scene.TypeTileSprite:        "tileSprite",
	scene.TypeText:              "text",
	scene.TypeBitmapText:        "bitmapText",
	scene.TypeDynamicBitmapText: "dynamicBitmapText",
}

// buildObject adds the statements that create and configure e.
func (b *Builder) buildObject(md *codedom.MethodDecl, e scene.Entity) {
	name := b.vars[e]
	md.Add(codedom.Raw("// " + name))
	c := codedom.NewMethodCall(factories[e.Type()], "this.add")
	c.ReturnToVar = name
	if t, ok := e.(scene.HasTransform); ok {
		c.ArgFloat(t.AsTransform().X).ArgFloat(t.AsTransform().Y)
	}
	if t, ok := e.(scene.HasTiling); ok {
		c.ArgFloat(t.AsTiling().Width).ArgFloat(t.AsTiling().Height)
	}
	if t, ok := e.(scene.HasTexture); ok {
		b.textureArgs(c, e, t.AsTexture())
	}
	if _, ok := e.(scene.HasTextStyle); ok {
		c.ArgLiteral(e.(scene.HasTextual).AsTextual().Text).Arg("{}")
	}
	if t, ok := e.(scene.HasBitmapFont); ok {
		b.bitmapFontArgs(c, e, t.AsBitmapFont())
	}
	md.Add(c)

	p := &props{md: md, name: name}
	def := scene.New(e.Type())
	p.origin(e, def)
	p.transform(e, def)
	p.flip(e, def)
	p.visibility(e, def)
	p.display(e, def)
	p.gameObject(e, def)
	p.tint(e, def)
	p.scrollFactor(e, def)
	p.textStyle(e, def)
	p.bitmapFont(e, def)
	p.dynamicBitmap(e, def)
	p.tiling(e, def)
	p.animations(e)
	if parent, ok := e.AsTree().Parent.(*scene.World); ok && parent.Parent != nil {
		md.Add(codedom.NewMethodCall("add", b.vars[parent]).Arg(name))
	}
	md.Add(codedom.Raw(""))
}

// textureArgs adds the texture key and frame arguments. Sprite sheet
// frames are indices, other frames are names and whole images have none.
// Keys the finder does not know are written as stored.
func (b *Builder) textureArgs(c *codedom.MethodCall, e scene.Entity, t *scene.Texture) {
	if t.TextureKey == "" {
		c.Arg(codedom.Null)
		return
	}
	c.ArgLiteral(t.TextureKey)
	if b.Finder != nil {
		if tex := b.Finder.FindTexture(t.TextureKey, t.TextureFrame); tex != nil {
			if i, ok := tex.FrameIndex(); ok {
				c.ArgInt(i)
			} else if tex.HasFrame() {
				c.ArgLiteral(tex.Frame)
			}
			return
		}
		slog.Warn("texture not found", "id", e.AsTree().ID, "key", t.TextureKey, "frame", t.TextureFrame)
	}
	if t.TextureFrame == "" {
		return
	}
	if i, err := strconv.Atoi(t.TextureFrame); err == nil {
		c.ArgInt(i)
	} else {
		c.ArgLiteral(t.TextureFrame)
	}
}

func (b *Builder) bitmapFontArgs(c *codedom.MethodCall, e scene.Entity, f *scene.BitmapFont) {
	switch {
	case f.FontAssetKey == "":
		c.Arg(codedom.Null)
	case b.Finder != nil && b.Finder.FindAssetKey(f.FontAssetKey) == nil:
		slog.Warn("bitmap font not found", "id", e.AsTree().ID, "key", f.FontAssetKey)
		fallthrough
	default:
		c.ArgLiteral(f.FontAssetKey)
	}
	c.ArgLiteral(e.(scene.HasTextual).AsTextual().Text)
	if f.FontSize == 0 {
		c.Arg("undefined")
	} else {
		c.ArgFloat(f.FontSize)
	}
	c.ArgInt(f.Align)
}
