// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package llp

import "sort"

// Combine merges labels into result in place, producing a single
// relabeling that refines both: nodes are grouped by the lexicographic key
// (result[labels[x]], labels[x], result[x]) and assigned fresh, contiguous
// label ids in that sorted order. tempPerm is scratch space reused across
// calls (the driver calls this once per step of its post-sweep
// recombination loop) to avoid a fresh allocation each time; its contents
// on entry are irrelevant and it is left holding scratch state on return.
//
// Ported from the `combine` helper in the Rust reference, keyed identically
// so the same gamma sweep produces the same final permutation at a fixed
// seed.
func Combine(result, labels []uint64, tempPerm []int) int {
	for i := range tempPerm {
		tempPerm[i] = i
	}
	sort.Slice(tempPerm, func(a, b int) bool {
		x, y := tempPerm[a], tempPerm[b]
		rx, ry := result[labels[x]], result[labels[y]]
		if rx != ry {
			return rx < ry
		}
		if labels[x] != labels[y] {
			return labels[x] < labels[y]
		}
		return result[x] < result[y]
	})

	prevResult, prevLabel := result[tempPerm[0]], labels[tempPerm[0]]
	currLabel := uint64(0)
	result[tempPerm[0]] = currLabel

	for i := 1; i < len(tempPerm); i++ {
		x := tempPerm[i]
		if result[x] != prevResult || labels[x] != prevLabel {
			currLabel++
			prevResult, prevLabel = result[x], labels[x]
		}
		result[x] = currLabel
	}
	return int(currLabel) + 1
}
