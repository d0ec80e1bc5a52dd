// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package mem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayPointerGetSet(t *testing.T) {
	b := NewMemoryBuilder()
	a := NewArrayPointer(b, Int32, []int32{1, 2, 3})
	m := b.Finish()

	require.Equal(t, 3, a.Len())
	require.False(t, a.IsEmpty())
	require.Equal(t, int32(2), a.Get(m, 1))

	a.Set(&m, 1, 99)
	require.Equal(t, int32(99), a.Get(m, 1))
}

func TestArrayPointerEmpty(t *testing.T) {
	b := NewMemoryBuilder()
	a := NewArrayPointer[int32](b, Int32, nil)
	require.True(t, a.IsEmpty())
	require.Equal(t, 0, a.Len())
}

func TestArrayPointerUpdate(t *testing.T) {
	b := NewMemoryBuilder()
	a := NewArrayPointer(b, Int64, []int64{10, 20, 30})
	m := b.Finish()

	a.Update(&m, 2, func(v int64) int64 { return v + 1 })
	require.Equal(t, int64(31), a.Get(m, 2))
}

func TestArrayPointerSwap(t *testing.T) {
	b := NewMemoryBuilder()
	a := NewArrayPointer(b, Int32, []int32{1, 2, 3})
	m := b.Finish()

	a.Swap(&m, 0, 2)
	require.Equal(t, int32(3), a.Get(m, 0))
	require.Equal(t, int32(1), a.Get(m, 2))
}

func TestArrayPointerSwapSameIndexIsNoOp(t *testing.T) {
	b := NewMemoryBuilder()
	a := NewArrayPointer(b, Int32, []int32{1, 2, 3})
	m := b.Finish()

	a.Swap(&m, 1, 1)
	require.Equal(t, int32(2), a.Get(m, 1))
}

func TestArrayPointerGetOutOfRangePanics(t *testing.T) {
	b := NewMemoryBuilder()
	a := NewArrayPointer(b, Int32, []int32{1, 2, 3})
	m := b.Finish()

	require.Panics(t, func() {
		a.Get(m, 3)
	})
	require.Panics(t, func() {
		a.Get(m, -1)
	})
}
