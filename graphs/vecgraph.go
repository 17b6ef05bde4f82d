// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package graphs

import "sort"

// VecGraph is a mutable, in-memory adjacency-list graph: each node's
// successor list is a sorted, de-duplicated []uint64. It is the graph view
// used to build small graphs by hand (tests, the encode side of a
// round-trip) and as the target of AddNode/AddArc/RemoveArc mutation.
type VecGraph struct {
	succ [][]uint64
	arcs uint64
}

var _ Graph = (*VecGraph)(nil)

// NewVecGraph builds an empty VecGraph with n nodes and no arcs.
func NewVecGraph(n uint64) *VecGraph {
	return &VecGraph{succ: make([][]uint64, n)}
}

// NumNodes reports the number of nodes.
func (g *VecGraph) NumNodes() uint64 { return uint64(len(g.succ)) }

// NumArcs reports the total number of arcs.
func (g *VecGraph) NumArcs() uint64 { return g.arcs }

// AddNode appends a single new node with no arcs, returning its id.
func (g *VecGraph) AddNode() uint64 {
	g.succ = append(g.succ, nil)
	return uint64(len(g.succ)) - 1
}

// AddArc adds the arc src -> dst, growing the node set if either endpoint
// is out of range. Adding an arc that already exists is a no-op.
func (g *VecGraph) AddArc(src, dst uint64) {
	g.grow(src)
	g.grow(dst)
	list := g.succ[src]
	i := sort.Search(len(list), func(i int) bool { return list[i] >= dst })
	if i < len(list) && list[i] == dst {
		return
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = dst
	g.succ[src] = list
	g.arcs++
}

// RemoveArc removes the arc src -> dst if present.
func (g *VecGraph) RemoveArc(src, dst uint64) {
	if src >= uint64(len(g.succ)) {
		return
	}
	list := g.succ[src]
	i := sort.Search(len(list), func(i int) bool { return list[i] >= dst })
	if i >= len(list) || list[i] != dst {
		return
	}
	g.succ[src] = append(list[:i], list[i+1:]...)
	g.arcs--
}

// Successors returns node v's sorted successor list. The returned slice is
// the graph's own backing array; callers that mutate the graph afterward
// must copy it first.
func (g *VecGraph) Successors(v uint64) ([]uint64, error) {
	if v >= uint64(len(g.succ)) {
		return nil, ErrNodeRange
	}
	return g.succ[v], nil
}

func (g *VecGraph) grow(v uint64) {
	for uint64(len(g.succ)) <= v {
		g.succ = append(g.succ, nil)
	}
}
