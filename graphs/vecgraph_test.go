// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package graphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecGraphRoundTrip(t *testing.T) {
	g := NewVecGraph(4)
	g.AddArc(0, 1)
	g.AddArc(0, 3)
	g.AddArc(0, 1) // duplicate, no-op
	g.AddArc(2, 0)

	require.EqualValues(t, 4, g.NumNodes())
	require.EqualValues(t, 3, g.NumArcs())

	succ0, err := g.Successors(0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3}, succ0)

	succ1, err := g.Successors(1)
	require.NoError(t, err)
	assert.Empty(t, succ1)

	g.RemoveArc(0, 1)
	succ0, err = g.Successors(0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, succ0)
	assert.EqualValues(t, 2, g.NumArcs())

	g.RemoveArc(0, 1) // already removed, no-op
	assert.EqualValues(t, 2, g.NumArcs())

	_, err = g.Successors(4)
	assert.ErrorIs(t, err, ErrNodeRange)
}

func TestVecGraphAddArcGrowsNodeSet(t *testing.T) {
	g := NewVecGraph(0)
	g.AddArc(0, 5)
	assert.EqualValues(t, 6, g.NumNodes())
	succ, err := g.Successors(0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{5}, succ)
}

func TestVecGraphAddNode(t *testing.T) {
	g := NewVecGraph(1)
	id := g.AddNode()
	assert.EqualValues(t, 1, id)
	assert.EqualValues(t, 2, g.NumNodes())
}
