// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"

	"cogentcore.org/scene/codedom"
	"cogentcore.org/scene/scene"
)

// props adds the statements that set the attributes of one object
// that differ from the defaults of its type.
type props struct {
	md   *codedom.MethodDecl
	name string
}

func (p *props) call(method string, args ...string) {
	p.md.Add(codedom.NewMethodCall(method, p.name).Arg(args...))
}

func (p *props) assign(property, value string) {
	p.md.Add(codedom.NewAssignProperty(property, p.name, value))
}

func (p *props) origin(e, def scene.Entity) {
	t, ok := e.(scene.HasOrigin)
	if !ok {
		return
	}
	c, d := t.AsOrigin(), def.(scene.HasOrigin).AsOrigin()
	if *c != *d {
		p.call("setOrigin", codedom.Float(c.OriginX), codedom.Float(c.OriginY))
	}
}

func (p *props) transform(e, def scene.Entity) {
	t, ok := e.(scene.HasTransform)
	if !ok {
		return
	}
	c, d := t.AsTransform(), def.(scene.HasTransform).AsTransform()
	if c.ScaleX != d.ScaleX || c.ScaleY != d.ScaleY {
		p.call("setScale", codedom.Float(c.ScaleX), codedom.Float(c.ScaleY))
	}
	if c.Angle != d.Angle {
		p.call("setAngle", codedom.Float(c.Angle))
	}
}

func (p *props) flip(e, def scene.Entity) {
	t, ok := e.(scene.HasFlip)
	if !ok {
		return
	}
	c, d := t.AsFlip(), def.(scene.HasFlip).AsFlip()
	if c.FlipX != d.FlipX {
		p.assign("flipX", codedom.Bool(c.FlipX))
	}
	if c.FlipY != d.FlipY {
		p.assign("flipY", codedom.Bool(c.FlipY))
	}
}

func (p *props) visibility(e, def scene.Entity) {
	t, ok := e.(scene.HasVisibility)
	if !ok {
		return
	}
	if c := t.AsVisibility(); c.Visible != def.(scene.HasVisibility).AsVisibility().Visible {
		p.assign("visible", codedom.Bool(c.Visible))
	}
}

func (p *props) display(e, def scene.Entity) {
	t, ok := e.(scene.HasDisplay)
	if !ok {
		return
	}
	c, d := t.AsDisplay(), def.(scene.HasDisplay).AsDisplay()
	if c.Alpha != d.Alpha {
		p.assign("alpha", codedom.Float(c.Alpha))
	}
	if c.BlendMode != d.BlendMode {
		p.call("setBlendMode", codedom.Int(c.BlendMode))
	}
}

func (p *props) gameObject(e, def scene.Entity) {
	t, ok := e.(scene.HasGameObject)
	if !ok {
		return
	}
	c, d := t.AsGameObject(), def.(scene.HasGameObject).AsGameObject()
	if c.Depth != d.Depth {
		p.call("setDepth", codedom.Float(c.Depth))
	}
	if c.Active != d.Active {
		p.assign("active", codedom.Bool(c.Active))
	}
}

func (p *props) tint(e, def scene.Entity) {
	t, ok := e.(scene.HasTint)
	if !ok {
		return
	}
	c, d := t.AsTint(), def.(scene.HasTint).AsTint()
	if *c == *d {
		return
	}
	method := "setTint"
	if c.TintFill {
		method = "setTintFill"
	}
	p.call(method, codedom.Hex(c.TintTopLeft), codedom.Hex(c.TintTopRight),
		codedom.Hex(c.TintBottomLeft), codedom.Hex(c.TintBottomRight))
}

func (p *props) scrollFactor(e, def scene.Entity) {
	t, ok := e.(scene.HasScrollFactor)
	if !ok {
		return
	}
	c, d := t.AsScrollFactor(), def.(scene.HasScrollFactor).AsScrollFactor()
	if *c != *d {
		p.call("setScrollFactor", codedom.Float(c.ScrollFactorX), codedom.Float(c.ScrollFactorY))
	}
}

func (p *props) textStyle(e, def scene.Entity) {
	t, ok := e.(scene.HasTextStyle)
	if !ok {
		return
	}
	c, d := t.AsTextStyle(), def.(scene.HasTextStyle).AsTextStyle()
	str := func(method, v, dv string) {
		if v != dv {
			p.call(method, codedom.String(v))
		}
	}
	str("setFontFamily", c.FontFamily, d.FontFamily)
	str("setFontSize", c.FontSize, d.FontSize)
	str("setFontStyle", c.FontStyle, d.FontStyle)
	str("setColor", c.Color, d.Color)
	if c.Stroke != d.Stroke || c.StrokeThickness != d.StrokeThickness {
		p.call("setStroke", codedom.String(c.Stroke), codedom.Float(c.StrokeThickness))
	}
	str("setBackgroundColor", c.BackgroundColor, d.BackgroundColor)
	str("setAlign", c.Align, d.Align)
	if c.FixedWidth != d.FixedWidth || c.FixedHeight != d.FixedHeight {
		p.call("setFixedSize", codedom.Float(c.FixedWidth), codedom.Float(c.FixedHeight))
	}
	if c.LineSpacing != d.LineSpacing {
		p.call("setLineSpacing", codedom.Float(c.LineSpacing))
	}
	if c.MaxLines != d.MaxLines {
		p.call("setMaxLines", codedom.Int(c.MaxLines))
	}
	if c.PaddingLeft != d.PaddingLeft || c.PaddingTop != d.PaddingTop ||
		c.PaddingRight != d.PaddingRight || c.PaddingBottom != d.PaddingBottom {
		p.call("setPadding", codedom.Float(c.PaddingLeft), codedom.Float(c.PaddingTop),
			codedom.Float(c.PaddingRight), codedom.Float(c.PaddingBottom))
	}
	if c.ShadowOffsetX != d.ShadowOffsetX || c.ShadowOffsetY != d.ShadowOffsetY ||
		c.ShadowColor != d.ShadowColor || c.ShadowBlur != d.ShadowBlur ||
		c.ShadowStroke != d.ShadowStroke || c.ShadowFill != d.ShadowFill {
		p.call("setShadow", codedom.Float(c.ShadowOffsetX), codedom.Float(c.ShadowOffsetY),
			codedom.String(c.ShadowColor), codedom.Float(c.ShadowBlur),
			codedom.Bool(c.ShadowStroke), codedom.Bool(c.ShadowFill))
	}
	if c.WordWrapWidth != d.WordWrapWidth || c.WordWrapUseAdvanced != d.WordWrapUseAdvanced {
		p.call("setWordWrapWidth", codedom.Float(c.WordWrapWidth), codedom.Bool(c.WordWrapUseAdvanced))
	}
}

// bitmapFont sets the attributes that the factory call does not take.
func (p *props) bitmapFont(e, def scene.Entity) {
	t, ok := e.(scene.HasBitmapFont)
	if !ok {
		return
	}
	if c := t.AsBitmapFont(); c.LetterSpacing != def.(scene.HasBitmapFont).AsBitmapFont().LetterSpacing {
		p.assign("letterSpacing", codedom.Float(c.LetterSpacing))
	}
}

func (p *props) dynamicBitmap(e, def scene.Entity) {
	t, ok := e.(scene.HasDynamic)
	if !ok {
		return
	}
	c, d := t.AsDynamicBitmap(), def.(scene.HasDynamic).AsDynamicBitmap()
	if cb := strings.TrimSpace(c.DisplayCallback); cb != "" {
		p.call("setDisplayCallback", cb)
	}
	// the text is only cropped when both sizes are set
	if c.CropWidth != d.CropWidth && c.CropHeight != d.CropHeight {
		p.call("setSize", codedom.Float(c.CropWidth), codedom.Float(c.CropHeight))
	}
	if c.ScrollX != d.ScrollX {
		p.assign("scrollX", codedom.Float(c.ScrollX))
	}
	if c.ScrollY != d.ScrollY {
		p.assign("scrollY", codedom.Float(c.ScrollY))
	}
}

func (p *props) tiling(e, def scene.Entity) {
	t, ok := e.(scene.HasTiling)
	if !ok {
		return
	}
	c, d := t.AsTiling(), def.(scene.HasTiling).AsTiling()
	if c.TilePositionX != d.TilePositionX {
		p.assign("tilePositionX", codedom.Float(c.TilePositionX))
	}
	if c.TilePositionY != d.TilePositionY {
		p.assign("tilePositionY", codedom.Float(c.TilePositionY))
	}
	if c.TileScaleX != d.TileScaleX {
		p.assign("tileScaleX", codedom.Float(c.TileScaleX))
	}
	if c.TileScaleY != d.TileScaleY {
		p.assign("tileScaleY", codedom.Float(c.TileScaleY))
	}
}

func (p *props) animations(e scene.Entity) {
	t, ok := e.(scene.HasAnimations)
	if !ok {
		return
	}
	if key := t.AsAnimations().AutoPlayAnimKey; key != "" {
		p.md.Add(codedom.NewMethodCall("play", p.name+".anims").ArgLiteral(key))
	}
}
