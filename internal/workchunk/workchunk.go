// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package workchunk factors out the cumulative-out-degree range
// partitioning both the llp driver and its log-gap-cost pass need, the way
// go-ethereum factors range-partition helpers (e.g. common/bitutil,
// core/state's trie range iteration) out of their call sites instead of
// re-deriving chunk math at every use.
package workchunk

// Range is a half-open node-id range [Start, End) carrying approximately
// Granularity arcs, per degCumul.
type Range struct {
	Start, End uint64
}

// Partition splits [0, numNodes) into ranges of approximately granularity
// cumulative out-degree each, using degCumul (length numNodes+1, degCumul[i]
// = total out-degree of nodes [0, i)) to weigh nodes by arc count rather
// than by count alone. The last range absorbs any remainder.
func Partition(degCumul []uint64, numNodes uint64, granularity int) []Range {
	if numNodes == 0 {
		return nil
	}
	if granularity < 1 {
		granularity = 1
	}
	var ranges []Range
	start := uint64(0)
	target := degCumul[0] + uint64(granularity)
	for end := uint64(1); end <= numNodes; end++ {
		if end == numNodes || degCumul[end] >= target {
			ranges = append(ranges, Range{Start: start, End: end})
			start = end
			if end < numNodes {
				target = degCumul[end] + uint64(granularity)
			}
		}
	}
	return ranges
}

// CumulativeDegrees builds the degCumul prefix-sum array Partition expects
// from a per-node degree function.
func CumulativeDegrees(numNodes uint64, degree func(uint64) uint64) []uint64 {
	cum := make([]uint64, numNodes+1)
	for i := uint64(0); i < numNodes; i++ {
		cum[i+1] = cum[i] + degree(i)
	}
	return cum
}
