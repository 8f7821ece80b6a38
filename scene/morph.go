// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Morph replaces the given entity with a new entity of the given type,
// copying every component the two types share. The new entity keeps the
// id of the old one, so group references stay valid, and takes its place
// in the parent. The old entity is detached. Attributes of components
// that only the new type has keep their defaults.
func Morph(e Entity, to Type) (Entity, error) {
	from := e.Type()
	if !AllowMorphTo(from, to) {
		return nil, fmt.Errorf("%w: %v to %v", ErrMorph, from, to)
	}
	n := New(to)
	err := copier.CopyWithOption(n, e, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		return nil, fmt.Errorf("scene.Morph %v to %v: %w", from, to, err)
	}
	n.AsTree().ID = e.AsTree().ID
	if p := e.AsTree().Parent; p != nil {
		p.AsTree().ReplaceChild(e, n)
	}
	return n, nil
}
