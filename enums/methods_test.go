// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// it is much easier to test with an independent enum mock
type enum int64

func (e enum) String() string    { return String(e, map[enum]string{5: "Apple"}) }
func (e enum) Int64() int64      { return int64(e) }
func (e enum) Desc() string      { return Desc(e, map[enum]string{5: "A red fruit"}) }
func (e enum) Values() []Enum    { return Values([]enum{5, 7}) }
func (e *enum) SetInt64(i int64) { *e = enum(i) }
func (e *enum) SetString(s string) error {
	return SetString(e, s, map[string]enum{"Apple": 5}, "Fruits")
}

func TestString(t *testing.T) {
	m := map[enum]string{5: "Apple"}
	assert.Equal(t, "Apple", String(5, m))
	assert.Equal(t, "3", String(3, m))
}

func TestSetString(t *testing.T) {
	valueMap := map[string]enum{"apple": 5}

	i := enum(0)
	assert.NoError(t, SetString(&i, "apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err := SetString(&i, "Apple", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Apple is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)

	assert.NoError(t, SetStringLower(&i, "Apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err = SetStringLower(&i, "Orange", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Orange is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)
}

func TestDesc(t *testing.T) {
	assert.Equal(t, "A red fruit", enum(5).Desc())
	assert.Equal(t, "7", enum(7).Desc())
}

func TestValues(t *testing.T) {
	var e enum
	assert.Equal(t, []string{"Apple", "7"}, Strings([]enum{5, 7}))
	assert.Len(t, e.Values(), 2)
	assert.NoError(t, UnmarshalText(&e, []byte("Apple")))
	assert.Equal(t, enum(5), e)
	assert.Error(t, UnmarshalText(&e, []byte("Pear")))
}
