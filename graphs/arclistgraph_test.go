// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package graphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcListGraphGroupsSortedArcs(t *testing.T) {
	arcs := []Arc{
		{0, 1}, {0, 3}, {1, 2}, {3, 0},
	}
	g, err := NewArcListGraph(4, NewSliceArcIterator(arcs))
	require.NoError(t, err)
	require.EqualValues(t, 4, g.NumArcs())

	succ0, err := g.Successors(0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3}, succ0)

	succ2, err := g.Successors(2)
	require.NoError(t, err)
	assert.Empty(t, succ2)
}

func TestArcListGraphRejectsUnsorted(t *testing.T) {
	arcs := []Arc{{1, 0}, {0, 1}}
	_, err := NewArcListGraph(2, NewSliceArcIterator(arcs))
	assert.ErrorIs(t, err, ErrUnsorted)
}

func TestArcListGraphRejectsOutOfRange(t *testing.T) {
	arcs := []Arc{{0, 5}}
	_, err := NewArcListGraph(2, NewSliceArcIterator(arcs))
	assert.ErrorIs(t, err, ErrNodeRange)
}

func TestKMergeArcIteratorsProducesSortedUnion(t *testing.T) {
	a := NewSliceArcIterator([]Arc{{0, 1}, {2, 0}})
	b := NewSliceArcIterator([]Arc{{0, 2}, {1, 0}})
	merged := KMergeArcIterators(a, b)

	var got []Arc
	for {
		arc, ok, err := merged.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, arc)
	}

	want := []Arc{{0, 1}, {0, 2}, {1, 0}, {2, 0}}
	assert.Equal(t, want, got)
}
