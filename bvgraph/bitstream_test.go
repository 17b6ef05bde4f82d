// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import (
	"testing"

	"pgregory.net/rapid"
)

func roundTripWords(words []uint32) []uint32 {
	w := NewWords(words)
	return w.(*sliceWords).words
}

func TestGammaRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint64Range(0, 1<<40).Draw(t, "v")
		words := make([]uint32, 8)
		bw := NewBitWriter(NewWords(words), M2L)
		if err := bw.WriteGamma(v); err != nil {
			t.Fatalf("WriteGamma: %v", err)
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		br := NewBitReader(NewWords(roundTripWords(words)), M2L)
		got := br.ReadGamma()
		if got != v {
			t.Fatalf("ReadGamma() = %d, want %d", got, v)
		}
	})
}

func TestDeltaRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint64Range(0, 1<<40).Draw(t, "v")
		words := make([]uint32, 8)
		bw := NewBitWriter(NewWords(words), M2L)
		if err := bw.WriteDelta(v); err != nil {
			t.Fatalf("WriteDelta: %v", err)
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		br := NewBitReader(NewWords(roundTripWords(words)), M2L)
		got := br.ReadDelta()
		if got != v {
			t.Fatalf("ReadDelta() = %d, want %d", got, v)
		}
	})
}

func TestZetaRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := uint(rapid.IntRange(1, 6).Draw(t, "k"))
		v := rapid.Uint64Range(0, 1<<30).Draw(t, "v")
		words := make([]uint32, 8)
		bw := NewBitWriter(NewWords(words), M2L)
		if err := bw.WriteZeta(v, k); err != nil {
			t.Fatalf("WriteZeta: %v", err)
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		br := NewBitReader(NewWords(roundTripWords(words)), M2L)
		got := br.ReadZeta(k)
		if got != v {
			t.Fatalf("ReadZeta(%d) = %d, want %d", k, got, v)
		}
	})
}

func TestUnaryRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint64Range(0, 1<<16).Draw(t, "v")
		words := make([]uint32, v/wordBits+2)
		bw := NewBitWriter(NewWords(words), M2L)
		if err := bw.WriteUnary(v); err != nil {
			t.Fatalf("WriteUnary: %v", err)
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		br := NewBitReader(NewWords(roundTripWords(words)), M2L)
		br.SetUnaryCap(1 << 20)
		got := br.ReadUnary()
		if got != v {
			t.Fatalf("ReadUnary() = %d, want %d", got, v)
		}
	})
}

func TestUnaryCapExceeded(t *testing.T) {
	words := make([]uint32, 4)
	bw := NewBitWriter(NewWords(words), M2L)
	if err := bw.WriteUnary(100); err != nil {
		t.Fatalf("WriteUnary: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	br := NewBitReader(NewWords(roundTripWords(words)), M2L)
	br.SetUnaryCap(10)
	defer func() {
		r := recover()
		if r != ErrUnaryTooLong {
			t.Fatalf("recover() = %v, want ErrUnaryTooLong", r)
		}
	}()
	br.ReadUnary()
	t.Fatal("ReadUnary did not panic")
}

func TestNat2IntZigZag(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int64Range(-1<<40, 1<<40).Draw(t, "v")
		got := nat2int(int2nat(v))
		if got != v {
			t.Fatalf("nat2int(int2nat(%d)) = %d", v, got)
		}
	})
}

func TestL2MOrderRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint64Range(0, 1<<20).Draw(t, "v")
		words := make([]uint32, 8)
		bw := NewBitWriter(NewWords(words), L2M)
		if err := bw.WriteGamma(v); err != nil {
			t.Fatalf("WriteGamma: %v", err)
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		br := NewBitReader(NewWords(roundTripWords(words)), L2M)
		got := br.ReadGamma()
		if got != v {
			t.Fatalf("ReadGamma() = %d, want %d (L2M)", got, v)
		}
	})
}
