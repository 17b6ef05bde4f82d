// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package graphs

import "sort"

// PermutedGraph is a lazy view of base under a permutation: node v in the
// view corresponds to node perm[v] in base, and every arc endpoint crossing
// the view boundary is remapped through perm. No copy of base is made;
// each Successors call re-sorts its result, trading memory for the
// round-trip guarantee that the view's arc set is exactly base's arc set
// relabeled, with no precomputation step to get out of sync with base.
type PermutedGraph struct {
	base    Graph
	perm    []uint64 // perm[v] = node id in base
	invPerm []uint64 // invPerm[u] = node id in view, the inverse of perm
}

var _ Graph = (*PermutedGraph)(nil)

// NewPermutedGraph builds a view of base where view node v is base node
// perm[v]. perm must be a permutation of [0, base.NumNodes()).
func NewPermutedGraph(base Graph, perm []uint64) *PermutedGraph {
	inv := make([]uint64, len(perm))
	for v, u := range perm {
		inv[u] = uint64(v)
	}
	return &PermutedGraph{base: base, perm: perm, invPerm: inv}
}

// NumNodes reports the number of nodes.
func (g *PermutedGraph) NumNodes() uint64 { return g.base.NumNodes() }

// NumArcs reports the number of arcs.
func (g *PermutedGraph) NumArcs() uint64 { return g.base.NumArcs() }

// Successors returns node v's sorted successor list in the permuted node
// space: base.Successors(perm[v]), with each entry u remapped to invPerm[u].
func (g *PermutedGraph) Successors(v uint64) ([]uint64, error) {
	if v >= uint64(len(g.perm)) {
		return nil, ErrNodeRange
	}
	base, err := g.base.Successors(g.perm[v])
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(base))
	for i, u := range base {
		out[i] = g.invPerm[u]
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
