// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package llp implements Layered Label Propagation: a parallel, iterative
// graph-reordering heuristic that assigns each node a cluster label, then
// derives a node permutation from the resulting labeling that tends to
// place adjacent nodes near each other in id space, improving the
// gap-coding ratio a BVGraph-style compressor achieves over the reordered
// graph.
package llp
