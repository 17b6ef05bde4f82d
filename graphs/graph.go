// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package graphs

// Graph is the common read interface every graph view in this package (and
// bvgraph.Graph) satisfies: enough to walk a graph's arcs without caring
// whether it is backed by a compressed bit stream, an in-memory adjacency
// list, or a permuted/sorted view over one of those.
type Graph interface {
	// NumNodes reports the number of nodes, numbered [0, NumNodes).
	NumNodes() uint64
	// NumArcs reports the total number of arcs.
	NumArcs() uint64
	// Successors returns the sorted, de-duplicated successor list of node
	// v. Implementations may return a slice the caller must not retain
	// past the next call against the same Graph value.
	Successors(v uint64) ([]uint64, error)
}
