// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import "github.com/dsnet/golib/errs"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bvgraph: " + string(e) }

var (
	// ErrCorrupt reports a malformed bit stream: a short read, a negative
	// interval start or residual, or arithmetic underflow while tracking
	// the number of nodes left to decode. References outside the
	// back-reference window are reported as ErrWindowExceeded.
	ErrCorrupt error = Error("stream is corrupted")

	// ErrUnaryTooLong reports a unary code whose length exceeds the
	// configured cap, almost always a symptom of decoding from the wrong
	// offset or with the wrong bit order.
	ErrUnaryTooLong error = Error("unary code exceeds maximum length")

	// ErrWindowExceeded reports a reference offset greater than the
	// configured window size.
	ErrWindowExceeded error = Error("reference offset exceeds window size")

	// ErrFormat reports a malformed .properties file or an unsupported
	// compressionflags/endianness combination.
	ErrFormat error = Error("malformed graph properties")

	// ErrClosed reports an iterator that has already terminated. The
	// iterators in this package do not return it: a Next call after a
	// terminal error returns that same error again.
	ErrClosed error = Error("iterator already terminated")
)

// errRecover is installed via defer at every exported decode entry point.
// Internal decode steps signal failure by panicking with an error value;
// errRecover turns that panic into a normal error return without the
// overhead of checking errors on every bit read in the hot path. It is a
// thin alias over the teacher's own github.com/dsnet/golib/errs.Recover,
// used the same way xflate/meta panics its way through a decode and
// recovers at the single exported entry point.
func errRecover(err *error) { errs.Recover(err) }
