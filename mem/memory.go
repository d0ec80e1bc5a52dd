// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package mem

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
)

// Memory is a fixed-size chunk of bytes accessed and updated through
// Pointer and ArrayPointer handles. Memory contains no methods for typed
// access itself; all reads and writes happen through handles, which is
// what keeps Memory ignorant of which offsets hold which types.
//
// A Memory is only ever obtained by finalizing a MemoryBuilder.
type Memory struct {
	bytes   []byte
	mapping mmap.MMap // non-nil when bytes is backed by an OS mapping
}

// Clone returns a deep byte-for-byte copy of m. This is the operation the
// trail uses to snapshot the trailed arena on every new_level.
func (m Memory) Clone() Memory {
	cp := make([]byte, len(m.bytes))
	copy(cp, m.bytes)
	return Memory{bytes: cp}
}

// Len returns the byte length of the arena.
func (m Memory) Len() int {
	return len(m.bytes)
}

// Equal reports whether m and other hold byte-identical contents.
func (m Memory) Equal(other Memory) bool {
	return bytes.Equal(m.bytes, other.bytes)
}

// Fingerprint returns a fast, non-cryptographic digest of the arena's
// bytes. It is meant for cheap approximate change detection in tests and
// caller-side memoization; Equal (byte equality) remains the correctness
// primitive, never Fingerprint.
func (m Memory) Fingerprint() uint64 {
	return xxhash.Sum64(m.bytes)
}

// Close releases resources held by m. It is a no-op unless m is backed by
// an OS mapping created via MemoryBuilder.FinishMapped, in which case it
// unmaps the region. Close is safe to call on a zero Memory.
func (m Memory) Close() error {
	if m.mapping == nil {
		return nil
	}
	return m.mapping.Unmap()
}

func (m Memory) readSpan(off, length int) []byte {
	if off < 0 || length < 0 || off+length > len(m.bytes) {
		panic(OutOfBoundsError{Offset: off, Length: length, ArenaLength: len(m.bytes)})
	}
	return m.bytes[off : off+length]
}

func (m Memory) writeSpan(off, length int) []byte {
	if off < 0 || length < 0 || off+length > len(m.bytes) {
		panic(OutOfBoundsError{Offset: off, Length: length, ArenaLength: len(m.bytes)})
	}
	return m.bytes[off : off+length]
}

// MemoryBuilder is an append-only byte sequence used to lay out a Memory
// before it is finalized. Each allocation grows the buffer and returns the
// offset at which the new bytes begin.
type MemoryBuilder struct {
	bytes []byte
}

// NewMemoryBuilder returns a new empty MemoryBuilder.
func NewMemoryBuilder() *MemoryBuilder {
	return &MemoryBuilder{}
}

// Allocate appends n zero bytes to the builder and returns the offset at
// which they begin. It is the primitive every Pointer/ArrayPointer
// constructor is built on.
func (b *MemoryBuilder) Allocate(n int) int {
	offset := len(b.bytes)
	b.bytes = append(b.bytes, make([]byte, n)...)
	return offset
}

// Len returns the number of bytes allocated so far.
func (b *MemoryBuilder) Len() int {
	return len(b.bytes)
}

// Finish consumes the builder, producing a Memory backed by an ordinary
// Go-heap byte slice.
func (b *MemoryBuilder) Finish() Memory {
	return Memory{bytes: b.bytes}
}

// FinishMapped consumes the builder, producing a Memory whose backing
// bytes live in an anonymous OS memory mapping instead of on the Go heap.
// This is intended for large stable arenas (e.g. big fixed lookup tables)
// where keeping bytes off the Go heap avoids GC scan pressure; it is
// never required for correctness, since Memory's read/write contract is
// identical regardless of backing store.
//
// If the builder is empty, FinishMapped falls back to Finish rather than
// attempting a zero-length mapping, which most mmap implementations
// reject.
func (b *MemoryBuilder) FinishMapped() (Memory, error) {
	if len(b.bytes) == 0 {
		return b.Finish(), nil
	}

	region, err := mmap.MapRegion(nil, len(b.bytes), mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return Memory{}, err
	}
	copy(region, b.bytes)
	return Memory{bytes: []byte(region), mapping: region}, nil
}
