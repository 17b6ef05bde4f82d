// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

// circularBuffer holds the last len(slots) fully decoded successor lists
// (windowSize+1 for the successor iterator), indexed by node id modulo
// len(slots). It backs the successor iterator's
// back-reference window (spec §3 "Back-reference window").
type circularBuffer struct {
	slots  [][]uint64
	nodeID uint64 // id of the node whose slot will be written next
}

func newCircularBuffer(size int) *circularBuffer {
	return &circularBuffer{slots: make([][]uint64, size)}
}

// endNodeID reports the id of the next node to be decoded.
func (c *circularBuffer) endNodeID() uint64 { return c.nodeID }

// take returns the slice currently occupying the slot about to be
// overwritten, reset to length 0, so callers can reuse its backing array
// instead of allocating.
func (c *circularBuffer) take() []uint64 {
	idx := int(c.nodeID) % len(c.slots)
	return c.slots[idx][:0]
}

// push installs results as the successor list of the current node and
// advances the window by one node, returning the now-canonical slice.
func (c *circularBuffer) push(results []uint64) []uint64 {
	idx := int(c.nodeID) % len(c.slots)
	c.slots[idx] = results
	c.nodeID++
	return results
}

// get returns the successor list of node, which must be within the
// window (node > endNodeID()-len(slots)), panicking with
// ErrWindowExceeded otherwise.
func (c *circularBuffer) get(node uint64) []uint64 {
	if node >= c.nodeID || c.nodeID-node >= uint64(len(c.slots)) {
		panic(ErrWindowExceeded)
	}
	return c.slots[int(node)%len(c.slots)]
}

// degreeWindow is the degrees-only analogue used by the degree iterator,
// which never materializes successor lists.
type degreeWindow struct {
	degrees []uint64
	nodeID  uint64
}

func newDegreeWindow(size int) *degreeWindow {
	return &degreeWindow{degrees: make([]uint64, size)}
}

func (w *degreeWindow) get(node uint64) uint64 {
	if node >= w.nodeID || w.nodeID-node > uint64(len(w.degrees)) {
		panic(ErrWindowExceeded)
	}
	return w.degrees[int(node)%len(w.degrees)]
}

func (w *degreeWindow) push(degree uint64) {
	w.degrees[int(w.nodeID)%len(w.degrees)] = degree
	w.nodeID++
}
