// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sparseset provides a decreasing-only subset of 0..n with O(1)
// membership, removal, and iteration, and O(1) restore on backtrack.
//
// values and positions hold the bulk of the set's storage and live in
// stable memory: they are never cloned by Trail.NewLevel and never
// restored by Trail.Backtrack. Only the set's size lives on the trail.
// A value removed at a deep search level is never actually erased from
// values/positions; it is swapped past the live prefix, and restoring
// len on backtrack re-exposes it without touching either array. Moving
// either array into trailed storage would make backtracking correct but
// O(n) instead of O(1), defeating the point of the type.
package sparseset

import (
	"sort"

	contrail "github.com/billyrieger/contrail-go"
	"github.com/billyrieger/contrail-go/mem"
)

// SparseSet is a decreasing-only subset of 0..n. Unlike the other
// collections in this module it is not generic over a storage mode: its
// split between stable and trailed storage is part of its contract, not
// a caller choice.
type SparseSet struct {
	values    contrail.StableArray[int]
	positions contrail.StableArray[int]
	length    contrail.TrailedValue[int]
	n         int
}

// NewFull builds a SparseSet containing every value in 0..n. n == 0 is
// permitted and yields an always-empty set.
func NewFull(builder *contrail.TrailBuilder, n int) SparseSet {
	identity := make([]int, n)
	for i := range identity {
		identity[i] = i
	}
	return SparseSet{
		values:    contrail.NewArray[contrail.Stable](builder, mem.Int, identity),
		positions: contrail.NewArray[contrail.Stable](builder, mem.Int, append([]int(nil), identity...)),
		length:    contrail.NewValue[contrail.Trailed](builder, mem.Int, n),
		n:         n,
	}
}

// Len returns the current number of members.
func (s SparseSet) Len(trail *contrail.Trail) int {
	return s.length.Get(trail)
}

// IsEmpty reports whether Len is zero.
func (s SparseSet) IsEmpty(trail *contrail.Trail) bool {
	return s.Len(trail) == 0
}

// Contains reports whether v is currently a member. Values outside
// 0..n are never members.
func (s SparseSet) Contains(trail *contrail.Trail, v int) bool {
	if v < 0 || v >= s.n {
		return false
	}
	return s.positions.Get(trail, v) < s.Len(trail)
}

// Iter returns a lazy, single-pass, finite iterator over the set's
// current members, in the order they currently lie in the backing
// array. That order is not sorted; it reflects prior removals.
func (s SparseSet) Iter(trail *contrail.Trail) func(yield func(int) bool) {
	return func(yield func(int) bool) {
		length := s.Len(trail)
		for i := 0; i < length; i++ {
			if !yield(s.values.Get(trail, i)) {
				return
			}
		}
	}
}

// Remove removes v from the set. It is a no-op when v is already absent
// or out of range. O(1).
func (s SparseSet) Remove(trail *contrail.Trail, v int) {
	if !s.Contains(trail, v) {
		return
	}
	p := s.positions.Get(trail, v)
	m := s.Len(trail) - 1
	s.swap(trail, p, m)
	s.length.Set(trail, m)
}

// swap exchanges the values at slots i and j, keeping positions the
// inverse permutation of values. Correct even when i == j.
func (s SparseSet) swap(trail *contrail.Trail, i, j int) {
	vi := s.values.Get(trail, i)
	vj := s.values.Get(trail, j)
	s.values.Set(trail, i, vj)
	s.values.Set(trail, j, vi)
	s.positions.Set(trail, vj, i)
	s.positions.Set(trail, vi, j)
}

// Filter retains only members for which keep returns true, discarding
// the rest. O(n).
func (s SparseSet) Filter(trail *contrail.Trail, keep func(int) bool) {
	length := s.Len(trail)
	for position := length - 1; position >= 0; position-- {
		v := s.values.Get(trail, position)
		if !keep(v) {
			length--
			s.swap(trail, position, length)
		}
	}
	s.length.Set(trail, length)
}

// Intersect restricts the set to its intersection with vs: after the
// call, a value is a member iff it was a member before the call and it
// appears in vs. O((k + n) log k) for len(vs) == k.
func (s SparseSet) Intersect(trail *contrail.Trail, vs []int) {
	candidates := sortedUnique(vs)
	newSize := 0
	for _, v := range candidates {
		if s.Contains(trail, v) {
			s.swap(trail, s.positions.Get(trail, v), newSize)
			newSize++
		}
	}
	s.length.Set(trail, newSize)
}

// Subtract removes every value present in vs from the set: after the
// call, a value is a member iff it was a member before the call and it
// does not appear in vs. O(k log k + k) for len(vs) == k.
func (s SparseSet) Subtract(trail *contrail.Trail, vs []int) {
	for _, v := range sortedUnique(vs) {
		s.Remove(trail, v)
	}
}

func sortedUnique(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)
	if len(out) == 0 {
		return out
	}
	w := 1
	for r := 1; r < len(out); r++ {
		if out[r] != out[w-1] {
			out[w] = out[r]
			w++
		}
	}
	return out[:w]
}
