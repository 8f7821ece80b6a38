// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Data is the decoded JSON object form of an entity or document.
type Data = map[string]any

// attrKey returns the attribute name of the given component field,
// from its json tag.
func attrKey(f reflect.StructField) string {
	key, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if key == "" || key == "-" {
		return ""
	}
	return key
}

// writeAttrs puts every attribute of component c whose value differs from
// the same attribute of def into d. c and def must be pointers to the
// same component type.
func writeAttrs(c, def Component, d Data) {
	cv := reflect.ValueOf(c).Elem()
	dv := reflect.ValueOf(def).Elem()
	typ := cv.Type()
	for i := range typ.NumField() {
		key := attrKey(typ.Field(i))
		if key == "" {
			continue
		}
		f := cv.Field(i)
		if f.Interface() == dv.Field(i).Interface() {
			continue
		}
		switch f.Kind() {
		case reflect.Float64:
			d[key] = f.Float()
		case reflect.Int:
			d[key] = f.Int()
		case reflect.Bool:
			d[key] = f.Bool()
		case reflect.String:
			d[key] = f.String()
		default:
			panic(fmt.Sprintf("scene: unsupported attribute kind %v for %q", f.Kind(), key))
		}
	}
}

// inRange returns whether n is within the min and max tags of f, if any.
func inRange(f reflect.StructField, n float64) bool {
	if m, err := strconv.ParseFloat(f.Tag.Get("min"), 64); err == nil && n < m {
		return false
	}
	if m, err := strconv.ParseFloat(f.Tag.Get("max"), 64); err == nil && n > m {
		return false
	}
	return true
}

// readAttrs sets each attribute of component c that is present in d.
// Absent attributes keep their current value, which is the default
// for a freshly initialized entity.
func readAttrs(c Component, d Data) error {
	cv := reflect.ValueOf(c).Elem()
	typ := cv.Type()
	for i := range typ.NumField() {
		sf := typ.Field(i)
		key := attrKey(sf)
		if key == "" {
			continue
		}
		v, ok := d[key]
		if !ok || v == nil {
			continue
		}
		f := cv.Field(i)
		bad := func() error {
			return fmt.Errorf("%w: %s.%s: unexpected value %v (%T)", ErrBadAttribute, c.ComponentName(), key, v, v)
		}
		switch f.Kind() {
		case reflect.Float64:
			n, ok := number(v)
			if !ok || !inRange(sf, n) {
				return bad()
			}
			f.SetFloat(n)
		case reflect.Int:
			n, ok := number(v)
			if !ok || n != math.Trunc(n) || !inRange(sf, n) {
				return bad()
			}
			f.SetInt(int64(n))
		case reflect.Bool:
			b, ok := v.(bool)
			if !ok {
				return bad()
			}
			f.SetBool(b)
		case reflect.String:
			s, ok := v.(string)
			if !ok {
				return bad()
			}
			f.SetString(s)
		}
	}
	return nil
}

// Attrs returns the names of the attributes owned by the given component,
// in declaration order.
func Attrs(c Component) []string {
	typ := reflect.TypeOf(c).Elem()
	var res []string
	for i := range typ.NumField() {
		if key := attrKey(typ.Field(i)); key != "" {
			res = append(res, key)
		}
	}
	return res
}

// number returns v as a float64 if it is a number, which is a float64
// when decoded from JSON but may be an integer in data built in memory.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func dataString(d Data, key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}
