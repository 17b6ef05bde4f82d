// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package llp

import "sync/atomic"

// LabelStore tracks, for each node, the cluster label it currently carries,
// and for each label, the total number of nodes (its volume) that carry
// it. Both are plain atomic.Uint64 slices: labels are updated with Store,
// volumes with atomic Add, and no lock or CAS loop ties a node's label to
// the volumes it moves between, so concurrent writers may observe
// and act on a stale volume for one iteration, which is the same transient
// inconsistency the Rust driver accepts by using Ordering::Relaxed
// AtomicUsize updates instead of a lock. The algorithm tolerates this by
// design; see the driver's convergence loop.
type LabelStore struct {
	label  []atomic.Uint64
	volume []atomic.Uint64
}

// NewLabelStore allocates a LabelStore for n nodes.
func NewLabelStore(n uint64) *LabelStore {
	return &LabelStore{
		label:  make([]atomic.Uint64, n),
		volume: make([]atomic.Uint64, n),
	}
}

// Init resets every node to its own label (node v labeled v) and every
// label's volume to 1, the starting state for a fresh gamma sweep.
func (s *LabelStore) Init() {
	for v := range s.label {
		s.label[v].Store(uint64(v))
	}
	for l := range s.volume {
		s.volume[l].Store(1)
	}
}

// Label returns node v's current label.
func (s *LabelStore) Label(v uint64) uint64 { return s.label[v].Load() }

// Volume returns label l's current volume.
func (s *LabelStore) Volume(l uint64) uint64 { return s.volume[l].Load() }

// Set moves node v from its current label to newLabel, decrementing the
// old label's volume and incrementing the new one's. Callers must already
// know the old label (typically the value just returned by Label) so this
// does not need to re-read it under any synchronization stronger than the
// plain atomic loads above.
func (s *LabelStore) Set(v, oldLabel, newLabel uint64) {
	s.volume[oldLabel].Add(^uint64(0)) // -1
	s.volume[newLabel].Add(1)
	s.label[v].Store(newLabel)
}

// Labels returns a plain, non-atomic snapshot of every node's label. The
// caller must not call this while any goroutine may still be writing to
// the store (i.e. after the iteration barrier at the end of a gamma's
// convergence loop).
func (s *LabelStore) Labels() []uint64 {
	out := make([]uint64, len(s.label))
	for v := range s.label {
		out[v] = s.label[v].Load()
	}
	return out
}
