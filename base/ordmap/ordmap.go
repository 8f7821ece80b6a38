// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap provides a map that iterates in insertion order.
// Asset packs and preload calls use it so that generated output is
// deterministic.
package ordmap

import "iter"

// entry is one key-value pair of a [Map].
type entry[K comparable, V any] struct {
	key K
	val V
}

// Map is a map that remembers the order in which keys were first added.
// The zero value is an empty map ready to use.
type Map[K comparable, V any] struct {
	entries []entry[K, V]

	// index maps a key to its position in entries.
	index map[K]int
}

// New returns a new empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: map[K]int{}}
}

// put stores val at the position of key, appending key if it is new.
// It returns whether key was new.
func (om *Map[K, V]) put(key K, val V, replace bool) bool {
	if om.index == nil {
		om.index = map[K]int{}
	}
	if i, ok := om.index[key]; ok {
		if replace {
			om.entries[i].val = val
		}
		return false
	}
	om.index[key] = len(om.entries)
	om.entries = append(om.entries, entry[K, V]{key, val})
	return true
}

// Add sets the value for key. An existing key keeps its position.
func (om *Map[K, V]) Add(key K, val V) { om.put(key, val, true) }

// AddIfNew adds the value for key only if key is not present,
// and returns whether it did.
func (om *Map[K, V]) AddIfNew(key K, val V) bool { return om.put(key, val, false) }

// Get returns the value for key and whether it is present.
func (om *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := om.index[key]; ok {
		return om.entries[i].val, true
	}
	var zero V
	return zero, false
}

// Len returns the number of keys. A nil map is empty.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.entries)
}

// All returns an iterator over the keys and values, in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for _, e := range om.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	res := make([]K, 0, om.Len())
	for k := range om.All() {
		res = append(res, k)
	}
	return res
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	res := make([]V, 0, om.Len())
	for _, v := range om.All() {
		res = append(res, v)
	}
	return res
}
