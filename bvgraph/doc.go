// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bvgraph implements a streaming decoder for the BVGraph compressed
// representation of directed graphs, as described by Boldi and Vigna. It
// reconstructs the successor list of each node from a bit-level stream,
// exploiting back-references to previously decoded nodes, run-length
// interval encoding, and residual gap encoding.
//
// Only decoding is implemented; the compressor/writer path that produces
// BVGraph files is an external collaborator.
package bvgraph
