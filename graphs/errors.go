// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package graphs

// Error is the error type returned by this package, following the same
// prefixed-string convention as bvgraph.Error.
type Error string

func (e Error) Error() string { return "graphs: " + string(e) }

// ErrUnsorted is returned by ArcListGraph when the underlying arc stream
// is not presented in ascending (src, dst) order.
const ErrUnsorted = Error("arc stream is not sorted")

// ErrNodeRange is returned when a node id falls outside [0, NumNodes).
const ErrNodeRange = Error("node id out of range")
