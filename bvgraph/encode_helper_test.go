// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import "github.com/dsnet/webgraph/graphs"

// encodeGraph writes g as a BVGraph bit stream using only the residual
// path (no back-references, no intervals): every successor list is
// encoded as an outdegree, a reference offset of 0, an interval count of
// 0, then residuals (first as a ZigZag-coded offset from the node id,
// each subsequent one as a gap from the previous). This is sufficient to
// represent any graph and, critically, decodes through exactly the same
// DefaultCodesReader path as a real compressor's output, making it a
// faithful round-trip fixture generator for tests even though it never
// emits a back-reference or an interval.
func encodeGraph(g graphs.Graph, zetaK uint) (words []uint32, offsets []int64) {
	var growable growableWords
	bw := NewBitWriter(&growable, M2L)

	n := g.NumNodes()
	offsets = make([]int64, 0, n+1)
	for v := uint64(0); v < n; v++ {
		offsets = append(offsets, bw.Position())
		succ, err := g.Successors(v)
		if err != nil {
			panic(err)
		}
		must(bw.WriteGamma(uint64(len(succ))))
		if len(succ) == 0 {
			continue
		}
		must(bw.WriteUnary(0)) // reference offset
		must(bw.WriteGamma(0)) // interval count
		must(bw.WriteZeta(int2nat(int64(succ[0])-int64(v)), zetaK))
		for i := 1; i < len(succ); i++ {
			must(bw.WriteZeta(succ[i]-succ[i-1]-1, zetaK))
		}
	}
	must(bw.Close())
	offsets = append(offsets, bw.Position())
	return growable.words, offsets
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// growableWords is a WordWriter over a slice that grows on demand, used
// only to build encodeGraph's output without needing to pre-size a buffer.
type growableWords struct {
	words []uint32
	pos   int
}

func (g *growableWords) Len() int      { return len(g.words) }
func (g *growableWords) Position() int { return g.pos }
func (g *growableWords) SetPosition(i int) {
	if i < 0 || i > len(g.words) {
		return
	}
	g.pos = i
}
func (g *growableWords) ReadNextWord() (uint32, error) {
	if g.pos >= len(g.words) {
		return 0, Error("read past end")
	}
	w := g.words[g.pos]
	g.pos++
	return w, nil
}
func (g *growableWords) WriteWord(w uint32) error {
	if g.pos == len(g.words) {
		g.words = append(g.words, w)
	} else {
		g.words[g.pos] = w
	}
	g.pos++
	return nil
}
