// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog1(t *testing.T) {
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, fs.ErrNotExist))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(fs.ErrClosed) })
	assert.Equal(t, "a", Must1("a", nil))
}

func TestIs(t *testing.T) {
	err := Join(fs.ErrExist, fs.ErrPermission)
	assert.True(t, Is(err, fs.ErrPermission))
	assert.False(t, Is(err, fs.ErrNotExist))
}
