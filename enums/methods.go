// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// String returns the string representation of the given
// enum value with the given map.
func String[T integer](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message.
func SetString[T integer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is like [SetString] but matches case insensitively.
// valueMap must be keyed by lower case names.
func SetStringLower[T integer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value,
// falling back on its string representation.
func Desc[T integer](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return String(i, map[T]string{})
}

// Values returns the given values as [Enum]s.
func Values[T Enum](vals []T) []Enum {
	res := make([]Enum, len(vals))
	for i, val := range vals {
		res[i] = val
	}
	return res
}

// Strings returns the string representations of the given values.
func Strings[T Enum](vals []T) []string {
	res := make([]string, len(vals))
	for i, val := range vals {
		res[i] = val.String()
	}
	return res
}

// UnmarshalText sets the given enum value from the given text,
// returning any error from SetString.
func UnmarshalText(e EnumSetter, text []byte) error {
	return e.SetString(string(text))
}
