// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package contrail

import "github.com/billyrieger/contrail-go/mem"

// Array is a reference to a fixed-length array of values stored on the
// trail, analogous to Value but for ArrayPointer.
type Array[M StorageMode, T any] struct {
	pointer mem.ArrayPointer[T]
	id      trailID
}

// TrailedArray is an Array stored in trailed memory.
type TrailedArray[T any] = Array[Trailed, T]

// StableArray is an Array stored in stable memory.
type StableArray[T any] = Array[Stable, T]

// NewArray allocates space for vals in the arena M selects and returns a
// handle to it.
func NewArray[M StorageMode, T any](builder *TrailBuilder, codec mem.Codec[T], vals []T) Array[M, T] {
	var mode M
	return Array[M, T]{
		pointer: mem.NewArrayPointer(mode.builderOf(builder), codec, vals),
		id:      builder.id,
	}
}

// Len returns the number of elements in the array.
func (a Array[M, T]) Len() int {
	return a.pointer.Len()
}

// IsEmpty reports whether the array has zero elements.
func (a Array[M, T]) IsEmpty() bool {
	return a.pointer.IsEmpty()
}

// Get reads element i from the trail.
func (a Array[M, T]) Get(trail *Trail, i int) T {
	trail.checkID(a.id)
	var mode M
	return a.pointer.Get(mode.arenaOf(trail), i)
}

// Set writes element i on the trail.
func (a Array[M, T]) Set(trail *Trail, i int, newVal T) {
	trail.checkID(a.id)
	var mode M
	a.pointer.Set(mode.arenaOfMut(trail), i, newVal)
}

// Update replaces element i with f applied to its current value. If f
// panics, the trail is left unmodified.
func (a Array[M, T]) Update(trail *Trail, i int, f func(T) T) {
	trail.checkID(a.id)
	var mode M
	a.pointer.Update(mode.arenaOfMut(trail), i, f)
}

// Swap exchanges elements i and j on the trail. It is correct even when
// i == j.
func (a Array[M, T]) Swap(trail *Trail, i, j int) {
	trail.checkID(a.id)
	var mode M
	a.pointer.Swap(mode.arenaOfMut(trail), i, j)
}

// All returns a single-pass iterator over the array's current elements,
// in range-over-func style (for v := range a.All(trail) { ... }).
func (a Array[M, T]) All(trail *Trail) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(a.Get(trail, i)) {
				return
			}
		}
	}
}

// ArrayIter is a stateful, single-pass, non-restartable iterator over an
// Array's current elements, for callers that prefer an explicit Next
// loop over range-over-func.
type ArrayIter[M StorageMode, T any] struct {
	array *Array[M, T]
	trail *Trail
	next  int
}

// NewArrayIter returns an ArrayIter over a's elements as of the moment
// Next is called (each Next call reads the trail fresh, so concurrent
// mutation of a through the same trail between Next calls is visible to
// the iterator, matching a live view rather than a point-in-time copy).
func NewArrayIter[M StorageMode, T any](a *Array[M, T], trail *Trail) *ArrayIter[M, T] {
	return &ArrayIter[M, T]{array: a, trail: trail}
}

// Next returns the next element and true, or the zero value and false
// once the array is exhausted.
func (it *ArrayIter[M, T]) Next() (T, bool) {
	if it.next >= it.array.Len() {
		var zero T
		return zero, false
	}
	v := it.array.Get(it.trail, it.next)
	it.next++
	return v, true
}
