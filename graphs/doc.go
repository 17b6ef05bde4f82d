// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package graphs provides the in-memory graph views used around the
// bvgraph codec and the llp reordering engine: a mutable adjacency-list
// graph, a lazy permuted view over another graph, and a view over an
// externally-sorted arc stream.
package graphs
