// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package llp

import "fmt"

// PredParams is the state snapshot a Predicate evaluates after each
// iteration of a gamma's convergence loop, mirroring llp::preds::PredParams
// in the Rust reference.
type PredParams struct {
	NumNodes uint64
	NumArcs  uint64
	Gain     float64
	Modified uint64
	Update   int
}

// Predicate decides whether the current gamma's convergence loop should
// stop early. The loop always stops once an iteration modifies zero nodes,
// regardless of what the predicate reports; a Predicate is an additional,
// optional early-stop condition layered on top of that.
type Predicate interface {
	Eval(PredParams) bool
	fmt.Stringer
}

// NoOp never requests an early stop: the loop runs until an iteration
// modifies nothing. Used by tests that want to observe pure convergence
// behavior without a predicate's influence.
type NoOp struct{}

func (NoOp) Eval(PredParams) bool { return false }
func (NoOp) String() string       { return "no-op" }

// MaxUpdates stops once Update reaches n.
type MaxUpdates int

func (n MaxUpdates) Eval(p PredParams) bool { return p.Update >= int(n) }
func (n MaxUpdates) String() string         { return fmt.Sprintf("max-updates(%d)", int(n)) }

// MinGain stops once Gain drops below the threshold.
type MinGain float64

func (g MinGain) Eval(p PredParams) bool { return p.Gain < float64(g) }
func (g MinGain) String() string         { return fmt.Sprintf("min-gain(%g)", float64(g)) }

// And stops once every sub-predicate would stop.
type And []Predicate

func (a And) Eval(p PredParams) bool {
	for _, pred := range a {
		if !pred.Eval(p) {
			return false
		}
	}
	return len(a) > 0
}
func (a And) String() string { return joinPreds(a, " && ") }

// Or stops once any sub-predicate would stop.
type Or []Predicate

func (o Or) Eval(p PredParams) bool {
	for _, pred := range o {
		if pred.Eval(p) {
			return true
		}
	}
	return false
}
func (o Or) String() string { return joinPreds(o, " || ") }

func joinPreds(preds []Predicate, sep string) string {
	s := ""
	for i, p := range preds {
		if i > 0 {
			s += sep
		}
		s += p.String()
	}
	return s
}
