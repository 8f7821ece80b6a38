// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Component is a capability: a named set of typed, defaulted attributes
// that entity types compose by embedding. The json tag of each field is
// the attribute name in the scene document. An attribute is written only
// when it differs from its default and read back as its default when absent.
type Component interface {

	// ComponentName returns the name of the capability, such as "Transform".
	ComponentName() string

	// setDefaults sets every attribute to its default value.
	setDefaults()
}

// GameObject has the attributes shared by all runtime game objects.
type GameObject struct {
	Active bool    `json:"active"`
	Depth  float64 `json:"depth"`
}

func (c *GameObject) ComponentName() string     { return "GameObject" }
func (c *GameObject) setDefaults()              { *c = GameObject{Active: true} }
func (c *GameObject) AsGameObject() *GameObject { return c }

// Transform is the position, scale and rotation of an object.
type Transform struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ScaleX float64 `json:"scaleX"`
	ScaleY float64 `json:"scaleY"`

	// Angle is the rotation in degrees.
	Angle float64 `json:"angle"`
}

func (c *Transform) ComponentName() string   { return "Transform" }
func (c *Transform) setDefaults()            { *c = Transform{ScaleX: 1, ScaleY: 1} }
func (c *Transform) AsTransform() *Transform { return c }

// Origin is the normalized pivot point of an object. Its default is
// the center, except for text types where it is the top left corner.
type Origin struct {
	OriginX float64 `json:"originX"`
	OriginY float64 `json:"originY"`
}

func (c *Origin) ComponentName() string { return "Origin" }
func (c *Origin) setDefaults()          { *c = Origin{OriginX: 0.5, OriginY: 0.5} }
func (c *Origin) AsOrigin() *Origin     { return c }

// Flip mirrors an object horizontally or vertically.
type Flip struct {
	FlipX bool `json:"flipX"`
	FlipY bool `json:"flipY"`
}

func (c *Flip) ComponentName() string { return "Flip" }
func (c *Flip) setDefaults()          { *c = Flip{} }
func (c *Flip) AsFlip() *Flip         { return c }

// Visibility controls whether an object is rendered.
type Visibility struct {
	Visible bool `json:"visible"`
}

func (c *Visibility) ComponentName() string     { return "Visible" }
func (c *Visibility) setDefaults()              { *c = Visibility{Visible: true} }
func (c *Visibility) AsVisibility() *Visibility { return c }

// Display has the alpha and blend mode of an object.
type Display struct {
	Alpha float64 `json:"alpha"`

	// BlendMode is a Phaser.BlendModes value; 0 is NORMAL.
	BlendMode int `json:"blendMode"`
}

func (c *Display) ComponentName() string { return "Display" }
func (c *Display) setDefaults()          { *c = Display{Alpha: 1} }
func (c *Display) AsDisplay() *Display   { return c }

// Texture references an image asset by key and, for atlases
// and sprite sheets, a frame within it.
type Texture struct {
	TextureKey   string `json:"textureKey"`
	TextureFrame string `json:"textureFrame"`
}

func (c *Texture) ComponentName() string { return "Texture" }
func (c *Texture) setDefaults()          { *c = Texture{} }
func (c *Texture) AsTexture() *Texture   { return c }

// Animations has the animation started when the object is created.
type Animations struct {
	AutoPlayAnimKey string `json:"autoPlayAnimKey"`
}

func (c *Animations) ComponentName() string     { return "Animations" }
func (c *Animations) setDefaults()              { *c = Animations{} }
func (c *Animations) AsAnimations() *Animations { return c }

// White is the default tint, which leaves colors unchanged.
const White = 0xffffff

// Tint colors the corners of an object with 0xRRGGBB values.
type Tint struct {
	TintFill        bool `json:"tintFill"`
	TintTopLeft     int  `json:"tintTopLeft" min:"0" max:"16777215"`
	TintTopRight    int  `json:"tintTopRight" min:"0" max:"16777215"`
	TintBottomLeft  int  `json:"tintBottomLeft" min:"0" max:"16777215"`
	TintBottomRight int  `json:"tintBottomRight" min:"0" max:"16777215"`
}

func (c *Tint) ComponentName() string { return "Tint" }
func (c *Tint) AsTint() *Tint         { return c }

func (c *Tint) setDefaults() {
	*c = Tint{TintTopLeft: White, TintTopRight: White, TintBottomLeft: White, TintBottomRight: White}
}

// ScrollFactor is how much an object moves with the camera.
type ScrollFactor struct {
	ScrollFactorX float64 `json:"scrollFactorX"`
	ScrollFactorY float64 `json:"scrollFactorY"`
}

func (c *ScrollFactor) ComponentName() string { return "ScrollFactor" }
func (c *ScrollFactor) setDefaults()          { *c = ScrollFactor{ScrollFactorX: 1, ScrollFactorY: 1} }
func (c *ScrollFactor) AsScrollFactor() *ScrollFactor {
	return c
}

// Editor has editor-only attributes. EditorName is the human-chosen
// name that generated variables are named after.
type Editor struct {
	EditorName         string  `json:"editorName"`
	EditorShow         bool    `json:"editorShow"`
	EditorTransparency float64 `json:"editorTransparency"`
}

func (c *Editor) ComponentName() string { return "Editor" }
func (c *Editor) setDefaults()          { *c = Editor{EditorShow: true, EditorTransparency: 1} }
func (c *Editor) AsEditor() *Editor     { return c }

// Variable marks objects that are declared as variables in generated
// code. When VariableField is set the variable is also published as
// a field of the generated class.
type Variable struct {
	VariableField bool `json:"variableField"`
}

func (c *Variable) ComponentName() string { return "Variable" }
func (c *Variable) setDefaults()          { *c = Variable{} }
func (c *Variable) AsVariable() *Variable { return c }

// Textual is the text content of text objects.
type Textual struct {
	Text string `json:"text"`
}

func (c *Textual) ComponentName() string { return "Textual" }
func (c *Textual) setDefaults()          { *c = Textual{} }
func (c *Textual) AsTextual() *Textual   { return c }

// TextStyle has the Phaser.Types.GameObjects.Text.TextStyle
// attributes of a [Text] object.
type TextStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontSize            string  `json:"fontSize"`
	FontStyle           string  `json:"fontStyle"`
	Color               string  `json:"color"`
	Stroke              string  `json:"stroke"`
	StrokeThickness     float64 `json:"strokeThickness"`
	BackgroundColor     string  `json:"backgroundColor"`
	Align               string  `json:"align"`
	FixedWidth          float64 `json:"fixedWidth"`
	FixedHeight         float64 `json:"fixedHeight"`
	LineSpacing         float64 `json:"lineSpacing"`
	MaxLines            int     `json:"maxLines"`
	PaddingLeft         float64 `json:"paddingLeft"`
	PaddingTop          float64 `json:"paddingTop"`
	PaddingRight        float64 `json:"paddingRight"`
	PaddingBottom       float64 `json:"paddingBottom"`
	ShadowOffsetX       float64 `json:"shadowOffsetX"`
	ShadowOffsetY       float64 `json:"shadowOffsetY"`
	ShadowColor         string  `json:"shadowColor"`
	ShadowBlur          float64 `json:"shadowBlur"`
	ShadowStroke        bool    `json:"shadowStroke"`
	ShadowFill          bool    `json:"shadowFill"`
	WordWrapWidth       float64 `json:"wordWrapWidth"`
	WordWrapUseAdvanced bool    `json:"wordWrapUseAdvanced"`
}

func (c *TextStyle) ComponentName() string   { return "TextStyle" }
func (c *TextStyle) AsTextStyle() *TextStyle { return c }

func (c *TextStyle) setDefaults() {
	*c = TextStyle{
		FontFamily:  "Courier",
		FontSize:    "16px",
		Color:       "#fff",
		Stroke:      "#fff",
		Align:       "left",
		ShadowColor: "#000",
	}
}

// Bitmap text alignment values.
const (
	AlignLeft = iota
	AlignCenter
	AlignRight
)

// BitmapFont has the font attributes of bitmap text objects.
type BitmapFont struct {
	FontAssetKey string `json:"fontAssetKey"`

	// FontSize of 0 uses the size the font was generated with.
	FontSize      float64 `json:"fontSize"`
	Align         int     `json:"align"`
	LetterSpacing float64 `json:"letterSpacing"`
}

func (c *BitmapFont) ComponentName() string     { return "BitmapText" }
func (c *BitmapFont) setDefaults()              { *c = BitmapFont{} }
func (c *BitmapFont) AsBitmapFont() *BitmapFont { return c }

// DynamicBitmap has the attributes specific to [DynamicBitmapText].
type DynamicBitmap struct {

	// DisplayCallback is a code expression evaluating to the
	// per-character display callback.
	DisplayCallback string  `json:"displayCallback"`
	CropWidth       float64 `json:"cropWidth"`
	CropHeight      float64 `json:"cropHeight"`
	ScrollX         float64 `json:"scrollX"`
	ScrollY         float64 `json:"scrollY"`
}

func (c *DynamicBitmap) ComponentName() string           { return "DynamicBitmapText" }
func (c *DynamicBitmap) setDefaults()                    { *c = DynamicBitmap{} }
func (c *DynamicBitmap) AsDynamicBitmap() *DynamicBitmap { return c }

// Tiling has the size and texture offset of a [TileSprite].
type Tiling struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	TilePositionX float64 `json:"tilePositionX"`
	TilePositionY float64 `json:"tilePositionY"`
	TileScaleX    float64 `json:"tileScaleX"`
	TileScaleY    float64 `json:"tileScaleY"`
}

func (c *Tiling) ComponentName() string { return "TileSprite" }
func (c *Tiling) setDefaults()          { *c = Tiling{TileScaleX: 1, TileScaleY: 1} }
func (c *Tiling) AsTiling() *Tiling     { return c }
