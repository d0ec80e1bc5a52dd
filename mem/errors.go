// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package mem

import "fmt"

// OutOfBoundsError is panicked when a span read or write would fall
// outside the bounds of the arena it targets. In a correct program built
// on contrail this should never happen; Pointer and ArrayPointer compute
// offsets that are always in bounds for the arena they were allocated
// from, so an OutOfBoundsError signals either a cross-arena handle or a
// library bug.
type OutOfBoundsError struct {
	Offset      int
	Length      int
	ArenaLength int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("mem: span [%d, %d) out of bounds for arena of length %d", e.Offset, e.Offset+e.Length, e.ArenaLength)
}

// IndexOutOfRangeError is panicked by ArrayPointer.Get/Set/Update/Swap
// when an index is not less than the array's length.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("mem: index %d out of range for array of length %d", e.Index, e.Len)
}
