// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package linkedlist provides a doubly-linked-list arena: nodes are dense
// indices into three parallel fixed-length arrays (prev, next, data)
// rather than pointers, so the whole structure lives in one of contrail's
// two arenas and backtracks along with it.
package linkedlist

import (
	contrail "github.com/billyrieger/contrail-go"
	"github.com/billyrieger/contrail-go/mem"
)

// Arena holds n nodes, indexed 0..n. Initially each node is its own
// singleton ring (prev[i] == next[i] == i).
type Arena[M contrail.StorageMode, T any] struct {
	prev contrail.Array[M, int]
	next contrail.Array[M, int]
	data contrail.Array[M, T]
}

// TrailedArena is an Arena stored in trailed memory.
type TrailedArena[T any] = Arena[contrail.Trailed, T]

// StableArena is an Arena stored in stable memory.
type StableArena[T any] = Arena[contrail.Stable, T]

// New builds an Arena of len(data) nodes, with node i initialized to
// hold data[i].
func New[M contrail.StorageMode, T any](builder *contrail.TrailBuilder, codec mem.Codec[T], data []T) Arena[M, T] {
	identity := make([]int, len(data))
	for i := range identity {
		identity[i] = i
	}
	return Arena[M, T]{
		prev: contrail.NewArray[M](builder, mem.Int, identity),
		next: contrail.NewArray[M](builder, mem.Int, append([]int(nil), identity...)),
		data: contrail.NewArray[M](builder, codec, data),
	}
}

// Len returns the number of nodes in the arena.
func (a Arena[M, T]) Len() int {
	return a.data.Len()
}

// Node returns a handle to the node at index i.
func (a Arena[M, T]) Node(i int) Node[M, T] {
	return Node[M, T]{arena: a, index: i}
}

// Node is a handle to one node of an Arena. Two Nodes are equal iff their
// indices are equal; a caller must not compare or mix Nodes from
// different Arenas.
type Node[M contrail.StorageMode, T any] struct {
	arena Arena[M, T]
	index int
}

// Index returns the node's dense index within its arena.
func (n Node[M, T]) Index() int {
	return n.index
}

// Equal reports whether n and other refer to the same index. It does not
// check that they come from the same arena; mixing arenas is undefined
// behavior per the Node documentation.
func (n Node[M, T]) Equal(other Node[M, T]) bool {
	return n.index == other.index
}

// Data reads the node's payload.
func (n Node[M, T]) Data(trail *contrail.Trail) T {
	return n.arena.data.Get(trail, n.index)
}

// SetData writes the node's payload.
func (n Node[M, T]) SetData(trail *contrail.Trail, v T) {
	n.arena.data.Set(trail, n.index, v)
}

// Next returns the node following n in its ring.
func (n Node[M, T]) Next(trail *contrail.Trail) Node[M, T] {
	return Node[M, T]{arena: n.arena, index: n.arena.next.Get(trail, n.index)}
}

// Prev returns the node preceding n in its ring.
func (n Node[M, T]) Prev(trail *contrail.Trail) Node[M, T] {
	return Node[M, T]{arena: n.arena, index: n.arena.prev.Get(trail, n.index)}
}

func (n Node[M, T]) setNext(trail *contrail.Trail, next Node[M, T]) {
	n.arena.next.Set(trail, n.index, next.index)
}

func (n Node[M, T]) setPrev(trail *contrail.Trail, prev Node[M, T]) {
	n.arena.prev.Set(trail, n.index, prev.index)
}

// unlinkFromCurrentRing splices n out of whatever ring it is currently
// part of, without relinking it to anything. Every read happens before
// any write, so the intermediate state is never observed: if n is
// already a singleton this is a correct no-op (p == next == n).
func (n Node[M, T]) unlinkFromCurrentRing(trail *contrail.Trail) {
	p := n.Prev(trail)
	nx := n.Next(trail)
	p.setNext(trail, nx)
	nx.setPrev(trail, p)
}

// Unlink splices n out of its current ring, leaving n as a new singleton
// ring. A no-op (in effect) if n is already a singleton.
func (n Node[M, T]) Unlink(trail *contrail.Trail) {
	n.unlinkFromCurrentRing(trail)
	n.setPrev(trail, n)
	n.setNext(trail, n)
}

// InsertAfter removes n from its current ring, then splices it in
// immediately after anchor in anchor's ring. If anchor == n, this is a
// no-op: n is first unlinked (becoming a singleton, with anchor now also
// referring to that same singleton) and then spliced back in after
// itself, which reproduces the singleton ring unchanged.
func (n Node[M, T]) InsertAfter(trail *contrail.Trail, anchor Node[M, T]) {
	n.Unlink(trail)

	next := anchor.Next(trail)
	n.setNext(trail, next)
	next.setPrev(trail, n)

	anchor.setNext(trail, n)
	n.setPrev(trail, anchor)
}

// InsertBefore removes n from its current ring, then splices it in
// immediately before anchor in anchor's ring. Symmetric to InsertAfter,
// including the anchor == n no-op case.
func (n Node[M, T]) InsertBefore(trail *contrail.Trail, anchor Node[M, T]) {
	n.Unlink(trail)

	prev := anchor.Prev(trail)
	prev.setNext(trail, n)
	n.setPrev(trail, prev)

	n.setNext(trail, anchor)
	anchor.setPrev(trail, n)
}
