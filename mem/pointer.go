// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package mem

// Pointer is a reference to a single value of type T living at a fixed
// offset in an arena. It carries no runtime ownership; its safety relies
// entirely on pairing it with the arena it was allocated from (building
// it with a MemoryBuilder, then reading/writing through the Memory that
// builder finishes into).
//
// Pointer is intentionally a tiny value type (an int offset plus a Codec)
// so that copying it is always a pure data copy, just like copying an
// int.
type Pointer[T any] struct {
	offset int
	codec  Codec[T]
}

// NewPointer allocates Length() bytes in builder, writes val into them,
// and returns a handle to that slot. The handle is only valid to use
// against a Memory obtained from builder's eventual Finish/FinishMapped
// call.
func NewPointer[T any](builder *MemoryBuilder, codec Codec[T], val T) Pointer[T] {
	length := codec.Length()
	offset := builder.Allocate(length)
	codec.Write(val, builder.bytes[offset:offset+length])
	return Pointer[T]{offset: offset, codec: codec}
}

// Offset returns the byte offset of the pointed-to value. Exposed mainly
// for debugging and for callers that need a stable identity for a slot.
func (p Pointer[T]) Offset() int {
	return p.offset
}

// Get reads the pointed-to value out of memory.
func (p Pointer[T]) Get(memory Memory) T {
	span := memory.readSpan(p.offset, p.codec.Length())
	return p.codec.Read(span)
}

// Set overwrites the pointed-to value in memory.
func (p Pointer[T]) Set(memory *Memory, val T) {
	span := memory.writeSpan(p.offset, p.codec.Length())
	p.codec.Write(val, span)
}

// Update is equivalent to p.Set(memory, f(p.Get(memory))), except that if
// f panics, no write occurs — f is fully evaluated against the
// pre-update value before anything is written back.
func (p Pointer[T]) Update(memory *Memory, f func(T) T) {
	newVal := f(p.Get(*memory))
	p.Set(memory, newVal)
}
