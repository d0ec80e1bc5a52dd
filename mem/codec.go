// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package mem provides the low-level byte-arena memory manager that the
// rest of contrail is built on: a growable byte buffer (MemoryBuilder), a
// finalized snapshot-cloneable byte buffer (Memory), and typed offset
// handles (Pointer, ArrayPointer) that serialize values in and out of raw
// bytes via a Codec.
package mem

import (
	"encoding/binary"
	"math"
)

// Codec describes a fixed-width serialization strategy for values of type
// T: a byte length plus a pair of unchecked read/write operations over a
// byte span of exactly that length.
//
// Read is a precondition-bearing operation: it is undefined unless span
// was last written by Write for some value of type T. Write must
// serialize its argument into exactly Length() bytes. The representation
// need not be portable across machines or process runs; it only needs to
// round-trip within a single run, since that is all a trail snapshot
// (which clones raw bytes) ever relies on.
type Codec[T any] interface {
	// Length is the number of bytes a value of type T occupies.
	Length() int

	// Read reconstructs a value from span, which must have length
	// exactly Length().
	Read(span []byte) T

	// Write serializes v into span, which must have length exactly
	// Length().
	Write(v T, span []byte)
}

// byteOrder matches the teacher's (go-interpreter/wagon) convention of a
// single package-wide endianness for every fixed-width field.
var byteOrder = binary.LittleEndian

type int8Codec struct{}

func (int8Codec) Length() int            { return 1 }
func (int8Codec) Read(b []byte) int8     { return int8(b[0]) }
func (int8Codec) Write(v int8, b []byte) { b[0] = byte(v) }

type uint8Codec struct{}

func (uint8Codec) Length() int             { return 1 }
func (uint8Codec) Read(b []byte) uint8     { return b[0] }
func (uint8Codec) Write(v uint8, b []byte) { b[0] = v }

type boolCodec struct{}

func (boolCodec) Length() int { return 1 }
func (boolCodec) Read(b []byte) bool {
	return b[0] != 0
}
func (boolCodec) Write(v bool, b []byte) {
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}

type int16Codec struct{}

func (int16Codec) Length() int             { return 2 }
func (int16Codec) Read(b []byte) int16     { return int16(byteOrder.Uint16(b)) }
func (int16Codec) Write(v int16, b []byte) { byteOrder.PutUint16(b, uint16(v)) }

type uint16Codec struct{}

func (uint16Codec) Length() int              { return 2 }
func (uint16Codec) Read(b []byte) uint16     { return byteOrder.Uint16(b) }
func (uint16Codec) Write(v uint16, b []byte) { byteOrder.PutUint16(b, v) }

type int32Codec struct{}

func (int32Codec) Length() int             { return 4 }
func (int32Codec) Read(b []byte) int32     { return int32(byteOrder.Uint32(b)) }
func (int32Codec) Write(v int32, b []byte) { byteOrder.PutUint32(b, uint32(v)) }

type uint32Codec struct{}

func (uint32Codec) Length() int              { return 4 }
func (uint32Codec) Read(b []byte) uint32     { return byteOrder.Uint32(b) }
func (uint32Codec) Write(v uint32, b []byte) { byteOrder.PutUint32(b, v) }

type int64Codec struct{}

func (int64Codec) Length() int             { return 8 }
func (int64Codec) Read(b []byte) int64     { return int64(byteOrder.Uint64(b)) }
func (int64Codec) Write(v int64, b []byte) { byteOrder.PutUint64(b, uint64(v)) }

type uint64Codec struct{}

func (uint64Codec) Length() int              { return 8 }
func (uint64Codec) Read(b []byte) uint64     { return byteOrder.Uint64(b) }
func (uint64Codec) Write(v uint64, b []byte) { byteOrder.PutUint64(b, v) }

type float32Codec struct{}

func (float32Codec) Length() int { return 4 }
func (float32Codec) Read(b []byte) float32 {
	return math.Float32frombits(byteOrder.Uint32(b))
}
func (float32Codec) Write(v float32, b []byte) {
	byteOrder.PutUint32(b, math.Float32bits(v))
}

type float64Codec struct{}

func (float64Codec) Length() int { return 8 }
func (float64Codec) Read(b []byte) float64 {
	return math.Float64frombits(byteOrder.Uint64(b))
}
func (float64Codec) Write(v float64, b []byte) {
	byteOrder.PutUint64(b, math.Float64bits(v))
}

type uintptrCodec struct{}

func (uintptrCodec) Length() int               { return 8 }
func (uintptrCodec) Read(b []byte) uintptr     { return uintptr(byteOrder.Uint64(b)) }
func (uintptrCodec) Write(v uintptr, b []byte) { byteOrder.PutUint64(b, uint64(v)) }

// intCodec/uintCodec cover Go's platform-sized int/uint, the Go
// counterparts of the reference implementation's isize/usize. They
// always use 8 bytes regardless of GOARCH so that a Memory's byte layout
// doesn't vary across platforms.
type intCodec struct{}

func (intCodec) Length() int           { return 8 }
func (intCodec) Read(b []byte) int     { return int(int64(byteOrder.Uint64(b))) }
func (intCodec) Write(v int, b []byte) { byteOrder.PutUint64(b, uint64(int64(v))) }

type uintCodec struct{}

func (uintCodec) Length() int            { return 8 }
func (uintCodec) Read(b []byte) uint     { return uint(byteOrder.Uint64(b)) }
func (uintCodec) Write(v uint, b []byte) { byteOrder.PutUint64(b, uint64(v)) }

// Int8, Uint8, Bool, Int16, Uint16, Int32, Uint32, Int64, Uint64, Float32,
// Float64, Uintptr, Int and Uint are the primitive Codec values, analogous
// to the reference implementation's blanket Bytes impls for the
// fixed-width primitive types. rune is covered by Int32 (rune is an alias
// of int32); the unit value () is covered by codec.Struct[struct{}](),
// whose Length is naturally 0.
var (
	Int8    Codec[int8]    = int8Codec{}
	Uint8   Codec[uint8]   = uint8Codec{}
	Bool    Codec[bool]    = boolCodec{}
	Int16   Codec[int16]   = int16Codec{}
	Uint16  Codec[uint16]  = uint16Codec{}
	Int32   Codec[int32]   = int32Codec{}
	Uint32  Codec[uint32]  = uint32Codec{}
	Int64   Codec[int64]   = int64Codec{}
	Uint64  Codec[uint64]  = uint64Codec{}
	Float32 Codec[float32] = float32Codec{}
	Float64 Codec[float64] = float64Codec{}
	Uintptr Codec[uintptr] = uintptrCodec{}
	Int     Codec[int]     = intCodec{}
	Uint    Codec[uint]    = uintCodec{}
)
