// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Type is the type of an entity, stored in the "-type" key
// of its scene document object.
type Type int32 //enums:enum -trim-prefix Type

const (
	TypeWorld Type = iota
	TypeGroup
	TypeSprite
	TypeImage
	TypeTileSprite
	TypeText
	TypeBitmapText
	TypeDynamicBitmapText
)

// constructors is the closed registry of entity types.
var constructors = map[Type]func() Entity{
	TypeWorld:             func() Entity { return &World{} },
	TypeGroup:             func() Entity { return &Group{} },
	TypeSprite:            func() Entity { return &Sprite{} },
	TypeImage:             func() Entity { return &Image{} },
	TypeTileSprite:        func() Entity { return &TileSprite{} },
	TypeText:              func() Entity { return &Text{} },
	TypeBitmapText:        func() Entity { return &BitmapText{} },
	TypeDynamicBitmapText: func() Entity { return &DynamicBitmapText{} },
}

// New returns a new initialized entity of the given type,
// which has all attributes at their defaults and a fresh id.
func New(t Type) Entity {
	ctor, ok := constructors[t]
	if !ok {
		panic(fmt.Sprintf("scene.New: invalid type %d", t))
	}
	e := ctor()
	e.Init()
	return e
}

// ParseType returns the type with the given name, such as "Sprite".
// An unknown name returns an error wrapping [ErrUnknownType] that
// suggests the closest known name.
func ParseType(name string) (Type, error) {
	var t Type
	if err := t.SetString(name); err != nil {
		return t, fmt.Errorf("%w %q%s", ErrUnknownType, name, Suggest(name, TypeValues()))
	}
	return t, nil
}

// Suggest returns a " (did you mean X?)" hint naming the value most
// similar to name, or "" if none is similar enough.
func Suggest[T fmt.Stringer](name string, values []T) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, score := "", 0.5
	for _, v := range values {
		s := v.String()
		if sim := strutil.Similarity(name, s, lev); sim > score {
			best, score = s, sim
		}
	}
	if best == "" {
		return ""
	}
	return " (did you mean " + best + "?)"
}

// morphs lists the types each type can be morphed to.
var morphs = map[Type][]Type{
	TypeImage:             {TypeSprite, TypeTileSprite},
	TypeSprite:            {TypeImage, TypeTileSprite},
	TypeTileSprite:        {TypeImage, TypeSprite},
	TypeBitmapText:        {TypeDynamicBitmapText},
	TypeDynamicBitmapText: {TypeBitmapText},
}

// MorphTargets returns the types that the given type can be morphed to.
func MorphTargets(t Type) []Type {
	return slices.Clone(morphs[t])
}

// AllowMorphTo returns whether an entity of type from can be morphed
// into one of type to. No type can be morphed to itself.
func AllowMorphTo(from, to Type) bool {
	return slices.Contains(morphs[from], to)
}
