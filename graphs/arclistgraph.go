// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package graphs

import "container/heap"

// Arc is a single (src, dst) edge, the unit ArcIterator yields.
type Arc struct {
	Src, Dst uint64
}

// ArcIterator yields arcs in ascending (src, dst) order. It is the
// streaming input ArcListGraph and KMergeArcIterators consume.
type ArcIterator interface {
	// Next returns the next arc. ok is false once the stream is exhausted.
	Next() (arc Arc, ok bool, err error)
}

// sliceArcIterator adapts a pre-sorted []Arc to ArcIterator, for building
// small fixtures by hand.
type sliceArcIterator struct {
	arcs []Arc
}

// NewSliceArcIterator wraps arcs (assumed already sorted) as an
// ArcIterator.
func NewSliceArcIterator(arcs []Arc) ArcIterator {
	return &sliceArcIterator{arcs: arcs}
}

func (it *sliceArcIterator) Next() (Arc, bool, error) {
	if len(it.arcs) == 0 {
		return Arc{}, false, nil
	}
	a := it.arcs[0]
	it.arcs = it.arcs[1:]
	return a, true, nil
}

// ArcListGraph is a view over a sorted (src, dst) arc stream: it groups
// consecutive arcs sharing a src into that node's successor run. The
// stream's sortedness is a precondition this type enforces on ingress
// rather than trusts silently, per the contract an ArcIterator promises.
type ArcListGraph struct {
	succ [][]uint64
	arcs uint64
}

var _ Graph = (*ArcListGraph)(nil)

// NewArcListGraph consumes it in full, grouping arcs into per-node
// successor runs for a graph of n nodes. It returns ErrUnsorted if it does
// not yield arcs in non-decreasing (src, dst) order, or ErrNodeRange if an
// endpoint falls outside [0, n).
func NewArcListGraph(n uint64, it ArcIterator) (*ArcListGraph, error) {
	g := &ArcListGraph{succ: make([][]uint64, n)}
	havePrev := false
	var prev Arc
	for {
		a, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if a.Src >= n || a.Dst >= n {
			return nil, ErrNodeRange
		}
		if havePrev && (a.Src < prev.Src || (a.Src == prev.Src && a.Dst < prev.Dst)) {
			return nil, ErrUnsorted
		}
		g.succ[a.Src] = append(g.succ[a.Src], a.Dst)
		g.arcs++
		prev, havePrev = a, true
	}
	return g, nil
}

// NumNodes reports the number of nodes.
func (g *ArcListGraph) NumNodes() uint64 { return uint64(len(g.succ)) }

// NumArcs reports the number of arcs.
func (g *ArcListGraph) NumArcs() uint64 { return g.arcs }

// Successors returns node v's successor run, already sorted since the
// backing arc stream was validated in order.
func (g *ArcListGraph) Successors(v uint64) ([]uint64, error) {
	if v >= uint64(len(g.succ)) {
		return nil, ErrNodeRange
	}
	return g.succ[v], nil
}

// KMergeArcIterators merges n already-sorted ArcIterators into a single
// sorted stream via a min-heap, the way a BVGraph compressor merges
// multiple sorted arc-list shards into one pass without materializing
// their union.
func KMergeArcIterators(iters ...ArcIterator) ArcIterator {
	m := &mergeIterator{h: make(arcHeap, 0, len(iters))}
	for _, it := range iters {
		a, ok, err := it.Next()
		if err != nil {
			m.err = err
			continue
		}
		if ok {
			heap.Push(&m.h, heapItem{arc: a, it: it})
		}
	}
	if m.err == nil {
		heap.Init(&m.h)
	}
	return m
}

type heapItem struct {
	arc Arc
	it  ArcIterator
}

type arcHeap []heapItem

func (h arcHeap) Len() int { return len(h) }
func (h arcHeap) Less(i, j int) bool {
	if h[i].arc.Src != h[j].arc.Src {
		return h[i].arc.Src < h[j].arc.Src
	}
	return h[i].arc.Dst < h[j].arc.Dst
}
func (h arcHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *arcHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *arcHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

type mergeIterator struct {
	h   arcHeap
	err error
}

func (m *mergeIterator) Next() (Arc, bool, error) {
	if m.err != nil {
		return Arc{}, false, m.err
	}
	if len(m.h) == 0 {
		return Arc{}, false, nil
	}
	top := heap.Pop(&m.h).(heapItem)
	next, ok, err := top.it.Next()
	if err != nil {
		m.err = err
	} else if ok {
		heap.Push(&m.h, heapItem{arc: next, it: top.it})
	}
	return top.arc, true, nil
}
