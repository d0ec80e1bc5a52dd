// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package contrail

import "github.com/billyrieger/contrail-go/mem"

// Value is a reference to a single value stored on the trail. The type
// parameter M picks which arena backs it: a Value[Trailed, T] lives in
// trailed memory and is reset on Backtrack; a Value[Stable, T] lives in
// stable memory and is untouched by NewLevel/Backtrack.
//
// Like mem.Pointer, Value is a tiny copy-cheap token; it owns nothing and
// holds no borrow of the trail.
type Value[M StorageMode, T any] struct {
	pointer mem.Pointer[T]
	id      trailID
}

// TrailedValue is a Value stored in trailed memory.
type TrailedValue[T any] = Value[Trailed, T]

// StableValue is a Value stored in stable memory.
type StableValue[T any] = Value[Stable, T]

// NewValue allocates a slot for val in the arena M selects and returns a
// handle to it. The handle is only legal to use against the Trail that
// builder eventually produces.
func NewValue[M StorageMode, T any](builder *TrailBuilder, codec mem.Codec[T], val T) Value[M, T] {
	var mode M
	return Value[M, T]{
		pointer: mem.NewPointer(mode.builderOf(builder), codec, val),
		id:      builder.id,
	}
}

// Get reads the value from the trail.
func (v Value[M, T]) Get(trail *Trail) T {
	trail.checkID(v.id)
	var mode M
	return v.pointer.Get(mode.arenaOf(trail))
}

// Set writes the value to the trail.
func (v Value[M, T]) Set(trail *Trail, newVal T) {
	trail.checkID(v.id)
	var mode M
	v.pointer.Set(mode.arenaOfMut(trail), newVal)
}

// Update replaces the value on the trail with f applied to its current
// value. If f panics, the trail is left unmodified.
func (v Value[M, T]) Update(trail *Trail, f func(T) T) {
	trail.checkID(v.id)
	var mode M
	v.pointer.Update(mode.arenaOfMut(trail), f)
}
