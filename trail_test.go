// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package contrail

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billyrieger/contrail-go/mem"
)

func TestTrailedVsStableCounter(t *testing.T) {
	builder := NewTrailBuilder()
	trailed := NewValue[Trailed](builder, mem.Int64, int64(0))
	stable := NewValue[Stable](builder, mem.Int64, int64(0))
	trail := builder.Finish()

	trail.NewLevel()
	trailed.Set(&trail, 1)
	stable.Set(&trail, 1)
	require.Equal(t, int64(1), trailed.Get(&trail))
	require.Equal(t, int64(1), stable.Get(&trail))

	trail.Backtrack()
	require.Equal(t, int64(0), trailed.Get(&trail))
	require.Equal(t, int64(1), stable.Get(&trail))
}

func TestCountdownAndUnwind(t *testing.T) {
	builder := NewTrailBuilder()
	counter := NewValue[Trailed](builder, mem.Int64, int64(3))
	trail := builder.Finish()

	var trace []int64
	for counter.Get(&trail) > 0 {
		trail.NewLevel()
		trace = append(trace, counter.Get(&trail))
		counter.Set(&trail, counter.Get(&trail)-1)
	}
	trace = append(trace, counter.Get(&trail))
	for !trail.IsTrailEmpty() {
		trail.Backtrack()
		trace = append(trace, counter.Get(&trail))
	}

	require.Equal(t, []int64{3, 2, 1, 0, 1, 2, 3}, trace)
}

func TestStackDepthLaw(t *testing.T) {
	builder := NewTrailBuilder()
	trail := builder.Finish()

	for i := 0; i < 5; i++ {
		trail.NewLevel()
	}
	require.Equal(t, 5, trail.TrailLen())
	trail.Backtrack()
	trail.Backtrack()
	require.Equal(t, 3, trail.TrailLen())
	require.False(t, trail.IsTrailEmpty())
}

func TestBacktrackOnEmptyStackIsNoOp(t *testing.T) {
	builder := NewTrailBuilder()
	v := NewValue[Trailed](builder, mem.Int64, int64(42))
	trail := builder.Finish()

	require.True(t, trail.IsTrailEmpty())
	trail.Backtrack()
	require.True(t, trail.IsTrailEmpty())
	require.Equal(t, int64(42), v.Get(&trail))
}

func TestArrayAllIteratesCurrentValues(t *testing.T) {
	builder := NewTrailBuilder()
	arr := NewArray[Trailed](builder, mem.Int32, []int32{1, 2, 3})
	trail := builder.Finish()

	var got []int32
	for v := range arr.All(&trail) {
		got = append(got, v)
	}
	require.Equal(t, []int32{1, 2, 3}, got)
}

func TestArrayIterNext(t *testing.T) {
	builder := NewTrailBuilder()
	arr := NewArray[Trailed](builder, mem.Int32, []int32{10, 20})
	trail := builder.Finish()

	it := NewArrayIter(&arr, &trail)
	v, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, int32(10), v)
	v, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, int32(20), v)
	_, ok = it.Next()
	require.False(t, ok)
}

func TestUpdatePanicLeavesValueUnchanged(t *testing.T) {
	builder := NewTrailBuilder()
	v := NewValue[Trailed](builder, mem.Int64, int64(7))
	trail := builder.Finish()

	require.Panics(t, func() {
		v.Update(&trail, func(int64) int64 { panic("boom") })
	})
	require.Equal(t, int64(7), v.Get(&trail))
}
