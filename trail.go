// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package contrail provides state management for backtracking search
// algorithms.
//
// # Motivation
//
// A recursive search algorithm explores a tree of partial assignments.
// At each branch point it needs to try a change, recurse, and then undo
// the change before trying the next branch. Cloning the entire search
// state at every branch point is the simplest way to make that safe, but
// it is also the slowest: most of a typical search state doesn't change
// between branches.
//
// contrail splits state into two areas. Trailed state is automatically
// snapshotted when a new search level begins and restored when the
// search backtracks out of it. Stable state is left alone across
// branches entirely — useful for the parts of a search's bookkeeping
// that should persist no matter how the search tree is explored (e.g.
// the backing arrays of a [collections/sparseset.SparseSet]).
//
//	builder := contrail.NewTrailBuilder()
//	trailedCounter := contrail.NewValue[contrail.Trailed](builder, mem.Int64, int64(0))
//	stableCounter := contrail.NewValue[contrail.Stable](builder, mem.Int64, int64(0))
//	trail := builder.Finish()
//
//	trail.NewLevel()
//	trailedCounter.Update(&trail, func(x int64) int64 { return x + 1 })
//	stableCounter.Update(&trail, func(x int64) int64 { return x + 1 })
//	// both counters read 1 here
//	trail.Backtrack()
//	// trailedCounter reads 0 again; stableCounter still reads 1
package contrail

import "github.com/billyrieger/contrail-go/mem"

// Trail holds the trailed arena, the stable arena, and a LIFO stack of
// prior trailed-arena snapshots. It is the sole mutable state object in
// this library: every Value, Array, and collection handle is a
// copy-cheap token that reads and writes through a *Trail.
//
// The only way to create a Trail is to finish a TrailBuilder.
type Trail struct {
	trailedMem mem.Memory
	stableMem  mem.Memory
	snapshots  []mem.Memory
	id         trailID
}

// NewLevel pushes a deep clone of the current trailed arena onto the
// snapshot stack. The stable arena is never cloned. Cost is O(size of the
// trailed arena).
func (t *Trail) NewLevel() {
	t.snapshots = append(t.snapshots, t.trailedMem.Clone())
}

// Backtrack pops the most recent snapshot off the stack and replaces the
// trailed arena with it. If the stack is empty, Backtrack is a documented
// no-op, not an error.
func (t *Trail) Backtrack() {
	n := len(t.snapshots)
	if n == 0 {
		return
	}
	t.trailedMem = t.snapshots[n-1]
	t.snapshots = t.snapshots[:n-1]
}

// TrailLen returns the current depth of the snapshot stack: the number of
// NewLevel calls not yet matched by a Backtrack.
func (t *Trail) TrailLen() int {
	return len(t.snapshots)
}

// IsTrailEmpty reports whether TrailLen is zero.
func (t *Trail) IsTrailEmpty() bool {
	return len(t.snapshots) == 0
}

// TrailBuilder lays out the trailed and stable arenas before they are
// finalized into a Trail. Every Value/Array/collection handle must be
// constructed from a TrailBuilder before that builder's Finish is called;
// the resulting handle is then only legal to use against the Trail that
// Finish produced.
type TrailBuilder struct {
	trailedMem mem.MemoryBuilder
	stableMem  mem.MemoryBuilder
	id         trailID
}

// NewTrailBuilder returns a new, empty TrailBuilder.
func NewTrailBuilder() *TrailBuilder {
	return &TrailBuilder{id: newTrailID()}
}

// Finish consumes the builder, producing a Trail with an empty snapshot
// stack.
func (b *TrailBuilder) Finish() Trail {
	return Trail{
		trailedMem: b.trailedMem.Finish(),
		stableMem:  b.stableMem.Finish(),
		id:         b.id,
	}
}
