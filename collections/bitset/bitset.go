// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package bitset provides a backtrack-aware dense bit set over 0..n.
package bitset

import (
	"fmt"
	"math/bits"
	"strings"

	contrail "github.com/billyrieger/contrail-go"
	"github.com/billyrieger/contrail-go/mem"
)

const blockSize = 64

// BitSet is a dense bit map of a fixed capacity n, laid out in 64-bit
// blocks stored as an Array inside the arena M selects.
type BitSet[M contrail.StorageMode] struct {
	blocks contrail.Array[M, uint64]
	max    uint64
}

// TrailedBitSet is a BitSet stored in trailed memory.
type TrailedBitSet = BitSet[contrail.Trailed]

// StableBitSet is a BitSet stored in stable memory.
type StableBitSet = BitSet[contrail.Stable]

// ZeroCapacityError is panicked by NewFull/NewEmpty when asked to build a
// bit set of capacity 0.
type ZeroCapacityError struct{}

func (ZeroCapacityError) Error() string {
	return "bitset: capacity must be greater than 0"
}

func numBlocks(max uint64) int {
	return int(max/blockSize) + 1
}

// NewFull builds a BitSet of capacity n with every bit set. It panics
// with ZeroCapacityError if n == 0.
func NewFull[M contrail.StorageMode](builder *contrail.TrailBuilder, n uint64) BitSet[M] {
	if n == 0 {
		panic(ZeroCapacityError{})
	}
	max := n - 1
	blocks := make([]uint64, numBlocks(max))
	for i := range blocks {
		blocks[i] = ^uint64(0)
	}
	return BitSet[M]{
		blocks: contrail.NewArray[M](builder, mem.Uint64, blocks),
		max:    max,
	}
}

// NewEmpty builds a BitSet of capacity n with every bit clear. It panics
// with ZeroCapacityError if n == 0.
func NewEmpty[M contrail.StorageMode](builder *contrail.TrailBuilder, n uint64) BitSet[M] {
	if n == 0 {
		panic(ZeroCapacityError{})
	}
	max := n - 1
	blocks := make([]uint64, numBlocks(max))
	return BitSet[M]{
		blocks: contrail.NewArray[M](builder, mem.Uint64, blocks),
		max:    max,
	}
}

// Capacity returns n, the number of logical bits (0..n) the set covers.
func (s BitSet[M]) Capacity() uint64 {
	return s.max + 1
}

// Clear zeroes every block, emptying the set.
func (s BitSet[M]) Clear(trail *contrail.Trail) {
	for i := 0; i < s.blocks.Len(); i++ {
		s.blocks.Set(trail, i, 0)
	}
}

// Insert adds value to the set. Values past capacity are a silent no-op,
// not an error.
func (s BitSet[M]) Insert(trail *contrail.Trail, value uint64) {
	if value > s.max {
		return
	}
	index := int(value / blockSize)
	block := s.blocks.Get(trail, index)
	s.blocks.Set(trail, index, block|(1<<(value%blockSize)))
}

// Remove removes value from the set. Values past capacity are a silent
// no-op, not an error.
func (s BitSet[M]) Remove(trail *contrail.Trail, value uint64) {
	if value > s.max {
		return
	}
	index := int(value / blockSize)
	block := s.blocks.Get(trail, index)
	s.blocks.Set(trail, index, block&^(1<<(value%blockSize)))
}

// Contains reports whether value is a member. Values past capacity
// always report false.
func (s BitSet[M]) Contains(trail *contrail.Trail, value uint64) bool {
	if value > s.max {
		return false
	}
	index := int(value / blockSize)
	block := s.blocks.Get(trail, index)
	return (block>>(value%blockSize))&1 == 1
}

// CountBetween returns the number of set bits with index in
// [min, min(max, s.max)]. It returns 0 when min > max or min > s.max.
func (s BitSet[M]) CountBetween(trail *contrail.Trail, min, max uint64) uint64 {
	if min > max || min > s.max {
		return 0
	}
	if max > s.max {
		max = s.max
	}

	minBlockIndex := int(min / blockSize)
	maxBlockIndex := int(max / blockSize)
	minOffset := min % blockSize
	maxOffset := max % blockSize
	minMask := ^uint64(0) << minOffset
	maxMask := ^uint64(0) >> (blockSize - maxOffset - 1)

	if minBlockIndex == maxBlockIndex {
		mask := minMask & maxMask
		block := s.blocks.Get(trail, minBlockIndex)
		return uint64(bits.OnesCount64(block & mask))
	}

	minBlock := s.blocks.Get(trail, minBlockIndex)
	total := uint64(bits.OnesCount64(minBlock & minMask))
	maxBlock := s.blocks.Get(trail, maxBlockIndex)
	total += uint64(bits.OnesCount64(maxBlock & maxMask))
	for i := minBlockIndex + 1; i < maxBlockIndex; i++ {
		total += uint64(bits.OnesCount64(s.blocks.Get(trail, i)))
	}
	return total
}

// NextAbove returns the smallest set bit with index >= value, or false if
// no such bit exists within [0, s.max].
func (s BitSet[M]) NextAbove(trail *contrail.Trail, value uint64) (uint64, bool) {
	if value > s.max {
		return 0, false
	}
	block := value / blockSize
	offset := value % blockSize
	toSkip := uint64(bits.TrailingZeros64(s.blocks.Get(trail, int(block)) >> offset))
	if toSkip == blockSize {
		return s.NextAbove(trail, (block+1)*blockSize)
	}
	if value+toSkip > s.max {
		return 0, false
	}
	return value + toSkip, true
}

// NextBelow returns the largest set bit with index <= min(value, s.max),
// or false if no set bit has such an index.
func (s BitSet[M]) NextBelow(trail *contrail.Trail, value uint64) (uint64, bool) {
	if value > s.max {
		value = s.max
	}
	block := value / blockSize
	offset := value % blockSize
	toSkip := uint64(bits.LeadingZeros64(s.blocks.Get(trail, int(block)) << (blockSize - offset - 1)))
	if toSkip == blockSize {
		if block == 0 {
			return 0, false
		}
		return s.NextBelow(trail, block*blockSize-1)
	}
	return value - toSkip, true
}

// Union sets, in self, every bit that is set in self or other. self and
// other must have equal capacity.
func (s BitSet[M]) Union(trail *contrail.Trail, other BitSet[M]) {
	s.combine(trail, other, func(a, b uint64) uint64 { return a | b })
}

// Intersect sets, in self, every bit that is set in both self and other.
// self and other must have equal capacity.
func (s BitSet[M]) Intersect(trail *contrail.Trail, other BitSet[M]) {
	s.combine(trail, other, func(a, b uint64) uint64 { return a & b })
}

// Difference clears, in self, every bit that is set in other. self and
// other must have equal capacity.
func (s BitSet[M]) Difference(trail *contrail.Trail, other BitSet[M]) {
	s.combine(trail, other, func(a, b uint64) uint64 { return a &^ b })
}

func (s BitSet[M]) combine(trail *contrail.Trail, other BitSet[M], op func(a, b uint64) uint64) {
	if s.max != other.max {
		panic(fmt.Sprintf("bitset: capacity mismatch: %d != %d", s.Capacity(), other.Capacity()))
	}
	for i := 0; i < s.blocks.Len(); i++ {
		s.blocks.Set(trail, i, op(s.blocks.Get(trail, i), other.blocks.Get(trail, i)))
	}
}

// String renders the set's members as a comma-separated list, e.g.
// "{1, 4, 7}".
func (s BitSet[M]) String(trail *contrail.Trail) string {
	var b strings.Builder
	b.WriteByte('{')
	v, ok := s.NextAbove(trail, 0)
	first := true
	for ok {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%d", v)
		if v == s.max {
			break
		}
		v, ok = s.NextAbove(trail, v+1)
	}
	b.WriteByte('}')
	return b.String()
}
