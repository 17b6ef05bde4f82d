// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

// SuccessorIterator sequentially decodes the full successor list of each
// node, maintaining a circular back-reference window of the last
// windowSize+1 decoded lists.
//
// Ported from original_source/src/webgraph/reader_sequential.rs.
type SuccessorIterator struct {
	codes             CodesReader
	br                *BitReader
	backrefs          *circularBuffer
	minIntervalLength int
	numNodes          uint64
	err               error
	done              bool
}

// NewSuccessorIterator builds a SuccessorIterator over codes (backed by br,
// used only to report bit position).
func NewSuccessorIterator(codes CodesReader, br *BitReader, minIntervalLength, windowSize int, numNodes uint64) *SuccessorIterator {
	return &SuccessorIterator{
		codes:             codes,
		br:                br,
		backrefs:          newCircularBuffer(windowSize + 1),
		minIntervalLength: minIntervalLength,
		numNodes:          numNodes,
	}
}

// Position reports the current absolute bit offset.
func (it *SuccessorIterator) Position() int64 { return it.br.Position() }

// Next decodes the next node's successor list. The returned slice is
// owned by the iterator and is invalidated by the following call to Next;
// callers that need to retain it must copy it.
func (it *SuccessorIterator) Next() (nodeID uint64, successors []uint64, ok bool, err error) {
	if it.done || it.err != nil {
		return 0, nil, false, it.err
	}
	nodeID = it.backrefs.endNodeID()
	if nodeID >= it.numNodes {
		it.done = true
		return 0, nil, false, nil
	}
	res := it.backrefs.take()
	func() {
		defer errRecover(&it.err)
		res = it.decodeOne(nodeID, res)
	}()
	if it.err != nil {
		it.done = true
		return 0, nil, false, it.err
	}
	return nodeID, it.backrefs.push(res), true, nil
}

// decodeOne decodes node nodeID's record via the shared decodeRecord walk,
// resolving any back-reference against the circular window.
func (it *SuccessorIterator) decodeOne(nodeID uint64, results []uint64) []uint64 {
	return decodeRecord(it.codes, nodeID, it.minIntervalLength, results, func(refDelta uint64) []uint64 {
		if refDelta > nodeID {
			panic(ErrWindowExceeded)
		}
		return it.backrefs.get(nodeID - refDelta)
	})
}
