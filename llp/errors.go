// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package llp

import "github.com/dsnet/golib/errs"

// Error is this package's error type, following the same prefixed-string
// convention as bvgraph.Error.
type Error string

func (e Error) Error() string { return "llp: " + string(e) }

// errRecover mirrors bvgraph's errRecover: installed via defer at an
// exported entry point, it turns a panic carrying an error value into a
// normal error return.
func errRecover(err *error) { errs.Recover(err) }
