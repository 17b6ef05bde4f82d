// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import "sort"

// decodeRecord decodes node nodeID's successor list from codes: the
// block/interval/residual walk shared by sequential decoding
// (SuccessorIterator.decodeOne) and random-access decoding (Graph.resolve),
// the two places a BVGraph record is ever read apart. buf, if non-nil, is
// an already-reset slice whose backing array is reused for the result,
// matching the circular window's buffer-reuse contract; callers with no
// buffer to reuse pass nil. resolveRef is called at most once, only when
// the record carries a back-reference, and must return the already-sorted
// successor list of node nodeID-refDelta; it owns bounds-checking refDelta
// against whatever window the caller maintains.
func decodeRecord(codes CodesReader, nodeID uint64, minIntervalLength int, buf []uint64, resolveRef func(refDelta uint64) []uint64) []uint64 {
	degree := codes.ReadOutdegree()
	if degree == 0 {
		return buf
	}
	results := buf

	refDelta := codes.ReadReferenceOffset()
	if refDelta != 0 {
		neighbours := resolveRef(refDelta)
		numBlocks := codes.ReadBlockCount()
		if numBlocks == 0 {
			results = append(results, neighbours...)
		} else {
			idx := codes.ReadBlocks()
			results = append(results, neighbours[:idx]...)
			for b := uint64(1); b < numBlocks; b++ {
				block := codes.ReadBlocks()
				end := idx + block + 1
				if b%2 == 0 {
					results = append(results, neighbours[idx:end]...)
				}
				idx = end
			}
			if numBlocks%2 == 0 {
				results = append(results, neighbours[idx:]...)
			}
		}
	}

	left := subOrPanic(degree, uint64(len(results)))
	if left != 0 {
		numIntervals := codes.ReadIntervalCount()
		if numIntervals != 0 {
			offset := nat2int(codes.ReadIntervalStart())
			start := int64(nodeID) + offset
			if start < 0 {
				panic(ErrCorrupt)
			}
			u := uint64(start)
			delta := codes.ReadIntervalLen() + uint64(minIntervalLength)
			for i := uint64(0); i < delta; i++ {
				results = append(results, u+i)
			}
			u += delta
			for i := uint64(1); i < numIntervals; i++ {
				u += 1 + codes.ReadIntervalStart()
				delta = codes.ReadIntervalLen() + uint64(minIntervalLength)
				for j := uint64(0); j < delta; j++ {
					results = append(results, u+j)
				}
				u += delta
			}
		}
	}

	left = subOrPanic(degree, uint64(len(results)))
	if left != 0 {
		offset := nat2int(codes.ReadFirstResidual())
		v := int64(nodeID) + offset
		if v < 0 {
			panic(ErrCorrupt)
		}
		extra := uint64(v)
		results = append(results, extra)
		for i := uint64(1); i < left; i++ {
			extra += 1 + codes.ReadResidual()
			results = append(results, extra)
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })
	return results
}
