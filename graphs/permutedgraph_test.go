// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package graphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCycleGraph() *VecGraph {
	g := NewVecGraph(4)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 3)
	g.AddArc(3, 0)
	return g
}

func TestPermutedGraphRemapsEndpoints(t *testing.T) {
	g := buildCycleGraph()
	perm := []uint64{2, 0, 3, 1} // view node v -> base node perm[v]
	view := NewPermutedGraph(g, perm)

	require.EqualValues(t, g.NumNodes(), view.NumNodes())
	require.EqualValues(t, g.NumArcs(), view.NumArcs())

	for v := uint64(0); v < 4; v++ {
		base, err := g.Successors(perm[v])
		require.NoError(t, err)
		got, err := view.Successors(v)
		require.NoError(t, err)
		want := make([]uint64, len(base))
		for i, u := range base {
			for j, p := range perm {
				if p == u {
					want[i] = uint64(j)
				}
			}
		}
		assert.ElementsMatch(t, want, got)
	}
}

func TestPermutedGraphIdentityPreservesArcs(t *testing.T) {
	g := buildCycleGraph()
	identity := []uint64{0, 1, 2, 3}
	view := NewPermutedGraph(g, identity)

	for v := uint64(0); v < 4; v++ {
		want, err := g.Successors(v)
		require.NoError(t, err)
		got, err := view.Successors(v)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPermutedGraphNodeRange(t *testing.T) {
	g := buildCycleGraph()
	view := NewPermutedGraph(g, []uint64{0, 1, 2, 3})
	_, err := view.Successors(4)
	assert.ErrorIs(t, err, ErrNodeRange)
}
