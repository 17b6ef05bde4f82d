// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "github.com/dsnet/webgraph/graphs"

// RandomGraph builds a VecGraph of n nodes where each node is given up to
// maxOutDegree arcs to pseudo-randomly chosen successors, using seed to
// drive a Rand so the result is reproducible across runs and Go versions —
// the same guarantee Rand was originally built to give byte-level codec
// fixtures, applied here to graph fixtures instead.
func RandomGraph(n uint64, maxOutDegree int, seed int) *graphs.VecGraph {
	g := graphs.NewVecGraph(n)
	if n == 0 {
		return g
	}
	r := NewRand(seed)
	for v := uint64(0); v < n; v++ {
		deg := r.Intn(maxOutDegree + 1)
		for i := 0; i < deg; i++ {
			dst := uint64(r.Intn(int(n)))
			g.AddArc(v, dst)
		}
	}
	return g
}
