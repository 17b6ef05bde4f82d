// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import "github.com/dsnet/golib/errs"

// DegreeIterator sequentially decodes only the outdegree of each node,
// discarding the copied/interval/residual payload. It is used to
// synthesize an .offsets file when one is missing, and is substantially
// faster than the full SuccessorIterator since it never materializes a
// successor list.
//
// Ported from original_source/src/webgraph/reader_degrees.rs, generalized
// from a Rust Iterator to a Go pull-style Next method.
type DegreeIterator struct {
	codes             CodesReader
	br                *BitReader
	window            *degreeWindow
	minIntervalLength int
	numNodes          uint64
	nodeID            uint64
	err               error
	done              bool
}

// NewDegreeIterator builds a DegreeIterator over codes (backed by br, used
// only to report bit position).
func NewDegreeIterator(codes CodesReader, br *BitReader, minIntervalLength, windowSize int, numNodes uint64) *DegreeIterator {
	return &DegreeIterator{
		codes:             codes,
		br:                br,
		window:            newDegreeWindow(windowSize + 1),
		minIntervalLength: minIntervalLength,
		numNodes:          numNodes,
	}
}

// Position reports the current absolute bit offset.
func (it *DegreeIterator) Position() int64 { return it.br.Position() }

// Next decodes the next node's degree. ok is false once every node has
// been produced or a previous call returned a terminal error.
func (it *DegreeIterator) Next() (offset int64, nodeID, degree uint64, ok bool, err error) {
	if it.done || it.err != nil {
		return 0, 0, 0, false, it.err
	}
	if it.nodeID >= it.numNodes {
		it.done = true
		return 0, 0, 0, false, nil
	}
	offset = it.Position()
	nodeID = it.nodeID
	func() {
		defer errRecover(&it.err)
		degree = it.nextDegree()
	}()
	if it.err != nil {
		it.done = true
		return 0, 0, 0, false, it.err
	}
	it.nodeID++
	return offset, nodeID, degree, true, nil
}

func (it *DegreeIterator) nextDegree() uint64 {
	nodeID := it.window.nodeID
	degree := it.codes.ReadOutdegree()
	if degree == 0 {
		it.window.push(0)
		return 0
	}

	left := degree
	refDelta := it.codes.ReadReferenceOffset()
	if refDelta != 0 {
		if refDelta > nodeID {
			panic(ErrWindowExceeded)
		}
		refDegree := it.window.get(nodeID - refDelta)
		numBlocks := it.codes.ReadBlockCount()
		if numBlocks == 0 {
			left = subOrPanic(left, refDegree)
		} else {
			idx := it.codes.ReadBlocks()
			left = subOrPanic(left, idx)
			for b := uint64(1); b < numBlocks; b++ {
				block := it.codes.ReadBlocks()
				end := idx + block + 1
				if b%2 == 0 {
					left = subOrPanic(left, block+1)
				}
				idx = end
			}
			if numBlocks%2 == 0 {
				left = subOrPanic(left, subOrPanic(refDegree, idx))
			}
		}
	}

	if left != 0 {
		numIntervals := it.codes.ReadIntervalCount()
		if numIntervals != 0 {
			_ = it.codes.ReadIntervalStart()
			delta := it.codes.ReadIntervalLen() + uint64(it.minIntervalLength)
			left = subOrPanic(left, delta)
			for i := uint64(1); i < numIntervals; i++ {
				_ = it.codes.ReadIntervalStart()
				delta = it.codes.ReadIntervalLen() + uint64(it.minIntervalLength)
				left = subOrPanic(left, delta)
			}
		}
	}

	if left != 0 {
		_ = it.codes.ReadFirstResidual()
		for i := uint64(1); i < left; i++ {
			_ = it.codes.ReadResidual()
		}
	}

	it.window.push(degree)
	return degree
}

// subOrPanic subtracts b from a, panicking with ErrCorrupt on underflow:
// the spec explicitly treats this as a decode error (arithmetic
// underflow in nodes_left_to_decode), not a programming bug.
func subOrPanic(a, b uint64) uint64 {
	errs.Assert(b <= a, ErrCorrupt)
	return a - b
}
