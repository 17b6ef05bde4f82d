// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package llp

import (
	"context"
	"math"

	"github.com/dsnet/webgraph/graphs"
	"github.com/dsnet/webgraph/internal/workchunk"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ComputeLogGapCost estimates, in bits per arc, the cost of gap-coding g's
// arcs under its current node numbering: for each node, the ZigZag-coded
// offset to its first successor and the gap between each subsequent pair of
// (already-sorted) successors are each charged ceil(log2(gap+1)) bits, a
// log-scale estimate of (not the exact) length a gamma/zeta code spends on
// that value, and the
// node-summed total is normalized by the arc count so that candidate
// permutations of differently-sized subgraphs remain comparable.
//
// Ported from compute_log_gap_cost in the Rust reference, parallelized the
// same way the driver parallelizes its own node loop: cumulative-out-degree
// chunking via internal/workchunk, farmed out over an errgroup bounded to
// numThreads+1 in-flight chunks.
func ComputeLogGapCost(ctx context.Context, g graphs.Graph, degCumul []uint64, numThreads int) (float64, error) {
	numNodes := g.NumNodes()
	ranges := workchunk.Partition(degCumul, numNodes, defaultGranularity(g.NumArcs()))
	if len(ranges) == 0 {
		return 0, nil
	}

	if numThreads < 1 {
		numThreads = 1
	}
	sem := semaphore.NewWeighted(int64(numThreads + 1))
	grp, ctx := errgroup.WithContext(ctx)
	costs := make([]float64, len(ranges))

	for i, r := range ranges {
		i, r := i, r
		if err := sem.Acquire(ctx, 1); err != nil {
			return 0, err
		}
		grp.Go(func() error {
			defer sem.Release(1)
			var local float64
			for v := r.Start; v < r.End; v++ {
				succ, err := g.Successors(v)
				if err != nil {
					return err
				}
				local += nodeGapCost(v, succ)
			}
			costs[i] = local
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, err
	}

	var total float64
	for _, c := range costs {
		total += c
	}
	numArcs := g.NumArcs()
	if numArcs == 0 {
		return 0, nil
	}
	return total / float64(numArcs), nil
}

func nodeGapCost(v uint64, succ []uint64) float64 {
	if len(succ) == 0 {
		return 0
	}
	var cost float64
	first := zigZag(int64(succ[0]) - int64(v))
	cost += log2GapBits(first)
	for i := 1; i < len(succ); i++ {
		cost += log2GapBits(succ[i] - succ[i-1] - 1)
	}
	return cost
}

// zigZag maps a signed offset to a non-negative value, the same
// even-non-negative/odd-negative convention as bvgraph's nat2int/int2nat,
// so that the first successor's signed gap is charged on the same
// non-negative value a gamma/zeta code would encode.
func zigZag(x int64) uint64 {
	if x >= 0 {
		return uint64(x) << 1
	}
	return uint64(-x)<<1 - 1
}

// log2GapBits is the cost charged for a gap: ceil(log2(1+gap)), a log-scale
// estimate of a gamma/zeta code's length (gamma spends 2*floor(log2(1+gap))+1
// bits), the same per-gap charge the Rust reference uses.
func log2GapBits(gap uint64) float64 {
	return math.Ceil(math.Log2(1 + float64(gap)))
}

func defaultGranularity(numArcs uint64) int {
	g := int(numArcs >> 9)
	if g < 1024 {
		g = 1024
	}
	return g
}
