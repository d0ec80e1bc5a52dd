// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package contrail

import "github.com/billyrieger/contrail-go/mem"

// StorageMode selects, for a given TrailBuilder/Trail pair, which of the
// two underlying arenas a Value/Array/collection routes its operations
// to. It has exactly two implementations, Trailed and Stable; there is no
// third variant and no runtime dispatch beyond picking one of two struct
// fields.
//
// Rust gets away with this selection being truly zero-cost via a trait
// with only associated functions, dispatched statically per monomorphized
// instantiation. Go's generics get close: StorageMode is a type
// parameter, not a value, and the marker types below carry no state, so
// `var m M` plus a method call on it compiles to effectively the same
// thing — a tiny, inlinable indirection kept out of the innermost
// read/write loops, which is the alternative spec.md's design notes
// explicitly sanction for a language without Rust's const-generic
// dispatch.
type StorageMode interface {
	builderOf(b *TrailBuilder) *mem.MemoryBuilder
	arenaOf(t *Trail) mem.Memory
	arenaOfMut(t *Trail) *mem.Memory
}

// Trailed selects the trailed arena: its contents are snapshotted by
// Trail.NewLevel and restored by Trail.Backtrack.
type Trailed struct{}

func (Trailed) builderOf(b *TrailBuilder) *mem.MemoryBuilder { return &b.trailedMem }
func (Trailed) arenaOf(t *Trail) mem.Memory                  { return t.trailedMem }
func (Trailed) arenaOfMut(t *Trail) *mem.Memory              { return &t.trailedMem }

// Stable selects the stable arena: its contents are never affected by
// NewLevel/Backtrack.
type Stable struct{}

func (Stable) builderOf(b *TrailBuilder) *mem.MemoryBuilder { return &b.stableMem }
func (Stable) arenaOf(t *Trail) mem.Memory                  { return t.stableMem }
func (Stable) arenaOfMut(t *Trail) *mem.Memory              { return &t.stableMem }
