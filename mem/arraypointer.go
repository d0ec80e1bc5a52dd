// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package mem

// ArrayPointer is a reference to a fixed-length, contiguous array of
// values of type T living in an arena. Element i occupies
// [offset+i*codec.Length(), offset+(i+1)*codec.Length()).
type ArrayPointer[T any] struct {
	offset int
	length int
	codec  Codec[T]
}

// NewArrayPointer allocates codec.Length()*len(vals) bytes in builder,
// writes each element consecutively, and returns a handle to the array.
func NewArrayPointer[T any](builder *MemoryBuilder, codec Codec[T], vals []T) ArrayPointer[T] {
	elemLen := codec.Length()
	offset := builder.Allocate(elemLen * len(vals))
	for i, v := range vals {
		start := offset + i*elemLen
		codec.Write(v, builder.bytes[start:start+elemLen])
	}
	return ArrayPointer[T]{offset: offset, length: len(vals), codec: codec}
}

// Len returns the number of elements in the array.
func (a ArrayPointer[T]) Len() int {
	return a.length
}

// IsEmpty reports whether the array has zero elements.
func (a ArrayPointer[T]) IsEmpty() bool {
	return a.length == 0
}

func (a ArrayPointer[T]) checkIndex(i int) {
	if i < 0 || i >= a.length {
		panic(IndexOutOfRangeError{Index: i, Len: a.length})
	}
}

func (a ArrayPointer[T]) elemOffset(i int) int {
	return a.offset + i*a.codec.Length()
}

// Get reads element i out of memory. It panics if i is not in [0, Len()).
func (a ArrayPointer[T]) Get(memory Memory, i int) T {
	a.checkIndex(i)
	span := memory.readSpan(a.elemOffset(i), a.codec.Length())
	return a.codec.Read(span)
}

// Set overwrites element i in memory. It panics if i is not in
// [0, Len()).
func (a ArrayPointer[T]) Set(memory *Memory, i int, val T) {
	a.checkIndex(i)
	span := memory.writeSpan(a.elemOffset(i), a.codec.Length())
	a.codec.Write(val, span)
}

// Update is equivalent to a.Set(memory, i, f(a.Get(memory, i))), except
// that if f panics, no write occurs.
func (a ArrayPointer[T]) Update(memory *Memory, i int, f func(T) T) {
	newVal := f(a.Get(*memory, i))
	a.Set(memory, i, newVal)
}

// Swap exchanges the elements at indices i and j. It is correct even when
// i == j.
func (a ArrayPointer[T]) Swap(memory *Memory, i, j int) {
	vi := a.Get(*memory, i)
	vj := a.Get(*memory, j)
	a.Set(memory, i, vj)
	a.Set(memory, j, vi)
}
