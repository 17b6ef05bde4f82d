// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

// Graph adds offset-indexed random access on top of the bit stream: once
// .offsets has been loaded, Successors(v) for an arbitrary v is an O(1)
// seek plus one successor decode.
type Graph struct {
	words    WordReader
	props    *Properties
	offsets  []int64 // absolute bit offset of each node's record
	endBit   int64   // total bit length, terminator entry of .offsets
	numNodes uint64
}

// NewGraph builds a random-access Graph over words (the decoded .graph
// contents) using offsets (already decoded from .offsets, one entry per
// node plus a trailing terminator) and props.
func NewGraph(words WordReader, props *Properties, offsets []int64) *Graph {
	g := &Graph{words: words, props: props, numNodes: props.Nodes}
	if len(offsets) > 0 {
		g.offsets = offsets[:len(offsets)-1]
		g.endBit = offsets[len(offsets)-1]
	}
	return g
}

// NumNodes reports the number of nodes in the graph.
func (g *Graph) NumNodes() uint64 { return g.numNodes }

// NumArcs reports the number of arcs in the graph, as recorded in
// .properties.
func (g *Graph) NumArcs() uint64 { return g.props.Arcs }

// DecodeOffsets decodes an .offsets bit stream: a sequence of gamma-coded
// gaps from the previous bit offset, one per node, plus a terminator equal
// to the total bit length of .graph.
func DecodeOffsets(words WordReader, order Order, numNodes uint64) ([]int64, error) {
	br := NewBitReader(words, order)
	offsets := make([]int64, 0, numNodes+1)
	var err error
	func() {
		defer errRecover(&err)
		var cur int64
		for i := uint64(0); i <= numNodes; i++ {
			cur += int64(br.ReadGamma())
			offsets = append(offsets, cur)
		}
	}()
	if err != nil {
		return nil, err
	}
	return offsets, nil
}

// Successors returns the sorted successor list of node v. Random access
// recursively (and, here, memoized per call) decodes up to windowsize
// predecessors as needed to resolve back-references; the cache is
// per-call, never shared across goroutines, matching the "per-iterator,
// not shared" window rule for random-access graphs.
func (g *Graph) Successors(v uint64) ([]uint64, error) {
	if v >= g.numNodes {
		return nil, Error("node id out of range")
	}
	cache := make(map[uint64][]uint64)
	var result []uint64
	var err error
	func() {
		defer errRecover(&err)
		result = g.resolve(v, cache)
	}()
	return result, err
}

// resolve decodes node v's successor list via the shared decodeRecord walk,
// recursively resolving any back-reference through cache. Panics with a
// bvgraph Error on decode failure, consistent with the rest of the decode
// path.
func (g *Graph) resolve(v uint64, cache map[uint64][]uint64) []uint64 {
	if s, ok := cache[v]; ok {
		return s
	}
	br := NewBitReader(g.cursor(), M2L)
	br.SetPosition(g.offsets[v])
	codes, err := g.props.NewCodesReader(br)
	if err != nil {
		panic(err)
	}

	results := decodeRecord(codes, v, g.props.MinIntervalLength, nil, func(refDelta uint64) []uint64 {
		if refDelta > uint64(g.props.WindowSize) || refDelta > v {
			panic(ErrWindowExceeded)
		}
		return g.resolve(v-refDelta, cache)
	})
	cache[v] = results
	return results
}

// Degree reports the outdegree of node v without decoding its successor
// list.
func (g *Graph) Degree(v uint64) (degree uint64, err error) {
	if v >= g.numNodes {
		return 0, Error("node id out of range")
	}
	defer errRecover(&err)
	br := NewBitReader(g.cursor(), M2L)
	br.SetPosition(g.offsets[v])
	codes, err := g.props.NewCodesReader(br)
	if err != nil {
		return 0, err
	}
	return codes.ReadOutdegree(), nil
}

// cursor returns a WordReader over g's words with a position of its own,
// so that every BitReader built on one seeks independently of the others.
// A WordReader not built by NewWords or NewMappedWords cannot be copied
// and is returned as it is, its position shared.
func (g *Graph) cursor() WordReader {
	switch w := g.words.(type) {
	case *sliceWords:
		return &sliceWords{words: w.words}
	case *mmapWords:
		return &mmapWords{data: w.data, order: w.order}
	}
	return g.words
}

// Iterator returns a fresh SuccessorIterator over g's full node range,
// starting from bit position 0, independent of and not sharing state with
// any other iterator or Successors call on g (for words built by NewWords
// or NewMappedWords; see cursor).
func (g *Graph) Iterator() (*SuccessorIterator, error) {
	br := NewBitReader(g.cursor(), M2L)
	codes, err := g.props.NewCodesReader(br)
	if err != nil {
		return nil, err
	}
	return NewSuccessorIterator(codes, br, g.props.MinIntervalLength, g.props.WindowSize, g.numNodes), nil
}
