// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"

	contrail "github.com/billyrieger/contrail-go"
)

func TestNewFullZeroCapacityPanics(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	require.Panics(t, func() {
		NewFull[contrail.Trailed](builder, 0)
	})
}

func TestInsertRemoveContains(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	s := NewEmpty[contrail.Trailed](builder, 10)
	trail := builder.Finish()

	require.False(t, s.Contains(&trail, 5))
	s.Insert(&trail, 5)
	require.True(t, s.Contains(&trail, 5))
	s.Remove(&trail, 5)
	require.False(t, s.Contains(&trail, 5))
}

func TestInsertRemoveOutOfCapacityIsNoOp(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	s := NewEmpty[contrail.Trailed](builder, 10)
	trail := builder.Finish()

	s.Insert(&trail, 100)
	require.False(t, s.Contains(&trail, 100))
	s.Remove(&trail, 100)
}

func TestCountBetweenMatchesMembership(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	s := NewEmpty[contrail.Trailed](builder, 200)
	trail := builder.Finish()

	for _, v := range []uint64{0, 1, 63, 64, 65, 127, 128, 199} {
		s.Insert(&trail, v)
	}

	var want uint64
	for v := uint64(0); v < s.Capacity(); v++ {
		if s.Contains(&trail, v) {
			want++
		}
	}
	require.Equal(t, want, s.CountBetween(&trail, 0, s.Capacity()-1))
}

func TestNextAboveSparseMarkers(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	s := NewEmpty[contrail.Trailed](builder, 1000)
	trail := builder.Finish()

	for v := uint64(100); v <= 900; v += 100 {
		s.Insert(&trail, v)
	}

	for v := uint64(0); v < 100; v++ {
		got, ok := s.NextAbove(&trail, v)
		require.True(t, ok)
		require.Equal(t, uint64(100), got)
		_, ok = s.NextBelow(&trail, v)
		require.False(t, ok)
	}

	for v := uint64(401); v < 500; v++ {
		got, ok := s.NextAbove(&trail, v)
		require.True(t, ok)
		require.Equal(t, uint64(500), got)
		below, ok := s.NextBelow(&trail, v)
		require.True(t, ok)
		require.Equal(t, uint64(400), below)
	}

	for v := uint64(901); v < 1000; v++ {
		_, ok := s.NextAbove(&trail, v)
		require.False(t, ok)
		below, ok := s.NextBelow(&trail, v)
		require.True(t, ok)
		require.Equal(t, uint64(900), below)
	}
}

func TestUnionSetsBitsFromEither(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	a := NewEmpty[contrail.Trailed](builder, 10)
	b := NewEmpty[contrail.Trailed](builder, 10)
	trail := builder.Finish()

	for _, v := range []uint64{0, 2, 4} {
		a.Insert(&trail, v)
	}
	for _, v := range []uint64{2, 3, 4} {
		b.Insert(&trail, v)
	}

	a.Union(&trail, b)
	require.True(t, a.Contains(&trail, 0))
	require.True(t, a.Contains(&trail, 3))
	require.True(t, a.Contains(&trail, 4))
}

func TestIntersectKeepsOnlyShared(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	a := NewEmpty[contrail.Trailed](builder, 10)
	b := NewEmpty[contrail.Trailed](builder, 10)
	trail := builder.Finish()

	for _, v := range []uint64{0, 2, 4} {
		a.Insert(&trail, v)
	}
	for _, v := range []uint64{2, 3, 4} {
		b.Insert(&trail, v)
	}

	a.Intersect(&trail, b)
	require.False(t, a.Contains(&trail, 0))
	require.True(t, a.Contains(&trail, 2))
	require.True(t, a.Contains(&trail, 4))
	require.False(t, a.Contains(&trail, 3))
}

func TestDifferenceRemovesShared(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	a := NewEmpty[contrail.Trailed](builder, 10)
	b := NewEmpty[contrail.Trailed](builder, 10)
	trail := builder.Finish()

	for _, v := range []uint64{0, 2, 4} {
		a.Insert(&trail, v)
	}
	for _, v := range []uint64{2, 3, 4} {
		b.Insert(&trail, v)
	}

	a.Difference(&trail, b)
	require.True(t, a.Contains(&trail, 0))
	require.False(t, a.Contains(&trail, 2))
	require.False(t, a.Contains(&trail, 4))
}

func TestCombineCapacityMismatchPanics(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	a := NewEmpty[contrail.Trailed](builder, 10)
	b := NewEmpty[contrail.Trailed](builder, 20)
	trail := builder.Finish()

	require.Panics(t, func() {
		a.Union(&trail, b)
	})
}

func TestString(t *testing.T) {
	builder := contrail.NewTrailBuilder()
	s := NewEmpty[contrail.Trailed](builder, 10)
	trail := builder.Finish()

	s.Insert(&trail, 1)
	s.Insert(&trail, 4)
	s.Insert(&trail, 7)
	require.Equal(t, "{1, 4, 7}", s.String(&trail))
}
