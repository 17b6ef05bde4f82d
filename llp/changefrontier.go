// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package llp

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// changeFrontier is the can_change bitset: a dense boolean over [0, N)
// recording which nodes are worth revisiting next iteration. bitset.BitSet
// is the allocation-free, word-packed representation the rest of the
// retrieval pack's router/graph code reaches for over a []bool or a slice
// of atomic.Bool; it is not itself safe for concurrent access, so access
// here is guarded by a small stripe of mutexes rather than one global lock,
// trading a little memory for less contention across the worker pool.
type changeFrontier struct {
	bits    *bitset.BitSet
	stripes []sync.Mutex
	n       uint64
}

const frontierStripes = 64

func newChangeFrontier(n uint64) *changeFrontier {
	return &changeFrontier{
		bits:    bitset.New(uint(n)),
		stripes: make([]sync.Mutex, frontierStripes),
		n:       n,
	}
}

func (f *changeFrontier) lockFor(i uint64) *sync.Mutex {
	return &f.stripes[i%frontierStripes]
}

// fillTrue marks every node as changeable, the reset done at the start of
// each gamma's convergence loop.
func (f *changeFrontier) fillTrue() {
	for i := range f.stripes {
		f.stripes[i].Lock()
	}
	for i := uint64(0); i < f.n; i++ {
		f.bits.Set(uint(i))
	}
	for i := range f.stripes {
		f.stripes[i].Unlock()
	}
}

func (f *changeFrontier) get(i uint64) bool {
	m := f.lockFor(i)
	m.Lock()
	defer m.Unlock()
	return f.bits.Test(uint(i))
}

func (f *changeFrontier) set(i uint64, v bool) {
	m := f.lockFor(i)
	m.Lock()
	defer m.Unlock()
	if v {
		f.bits.Set(uint(i))
	} else {
		f.bits.Clear(uint(i))
	}
}
