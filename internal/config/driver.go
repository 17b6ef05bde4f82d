// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package config holds the tunables for the llp driver: the Rust reference
// reads most of these from environment variables (RUST_MIN_STACK chief
// among them) or CLI flags; here they are plain struct fields set by the
// caller (a cmd/ binary, or a test), following the driver's own design note
// that these are better off as explicit configuration than ambient state.
package config

import (
	"math/bits"

	"go.uber.org/automaxprocs/maxprocs"
)

// Driver holds the tunables for a single llp.Run call.
type Driver struct {
	// NumThreads is the number of worker goroutines used per iteration, in
	// addition to the coordinator. 0 selects runtime.GOMAXPROCS(0) after
	// automaxprocs has had a chance to correct it for a container's CPU
	// quota.
	NumThreads int
	// ChunkSize is the shuffle granularity: update_perm is reshuffled in
	// slices of this length every iteration.
	ChunkSize int
	// Granularity is the target arc count per parallel work range. 0
	// selects max(NumArcs/512, 1024).
	Granularity int
	// Seed is the initial value of the shared, monotonically-incrementing
	// per-chunk shuffle seed counter.
	Seed uint64
	// StackSize mirrors RUST_MIN_STACK; unused directly (Go goroutine
	// stacks grow on demand) but retained so callers porting a RUST_MIN_STACK
	// value have somewhere to put it, and so DefaultStackSize(n) stays
	// available for documentation/parity purposes.
	StackSize int
	// TempDir is the directory per-gamma label files are written to.
	TempDir string
}

var maxProcsOnce bool

// ResolveNumThreads returns d.NumThreads if positive, else the value of
// gomaxprocs (the llp driver passes runtime.GOMAXPROCS(0)). It does not
// apply automaxprocs itself; Init does that once per process.
func (d Driver) ResolveNumThreads(gomaxprocs func() int) int {
	if d.NumThreads > 0 {
		return d.NumThreads
	}
	return gomaxprocs()
}

// ResolveGranularity returns d.Granularity if positive, else
// max(numArcs/512, 1024).
func (d Driver) ResolveGranularity(numArcs uint64) int {
	if d.Granularity > 0 {
		return d.Granularity
	}
	g := int(numArcs >> 9)
	if g < 1024 {
		g = 1024
	}
	return g
}

// DefaultStackSize mirrors the Rust driver's 1024*ilog2_ceil(numNodes)
// fallback for RUST_MIN_STACK.
func DefaultStackSize(numNodes uint64) int {
	if numNodes < 2 {
		return 1024
	}
	return 1024 * bits.Len64(numNodes-1)
}

// Init runs automaxprocs once for the process, matching the way
// go-ethereum's cmd/geth imports it for side effects at startup rather than
// calling it from library code.
func Init(logf func(string, ...interface{})) {
	if maxProcsOnce {
		return
	}
	maxProcsOnce = true
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}
