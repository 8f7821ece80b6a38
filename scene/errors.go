// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/scene/base/errors"

var (
	// ErrMissingID is returned when reading an entity without an "-id".
	ErrMissingID = errors.New("scene: entity has no -id")

	// ErrMissingType is returned when reading an entity without a "-type".
	ErrMissingType = errors.New("scene: entity has no -type")

	// ErrUnknownType is returned when reading an entity whose "-type" is
	// not a registered [Type], unless reading leniently.
	ErrUnknownType = errors.New("scene: unknown entity type")

	// ErrBadAttribute is returned when an attribute value has the wrong JSON type.
	ErrBadAttribute = errors.New("scene: bad attribute value")

	// ErrMorph is returned when morphing to a type that is not allowed.
	ErrMorph = errors.New("scene: morph not allowed")
)
