// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import (
	"encoding/binary"
	"testing"

	"pgregory.net/rapid"
)

func TestSliceWordsReadWrite(t *testing.T) {
	words := []uint32{1, 2, 3, 4}
	w := NewWords(words)
	for i, want := range words {
		got, err := w.ReadNextWord()
		if err != nil {
			t.Fatalf("ReadNextWord(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("ReadNextWord(%d) = %d, want %d", i, got, want)
		}
	}
	if _, err := w.ReadNextWord(); err == nil {
		t.Error("ReadNextWord at end: got nil error, want non-nil")
	}
}

func TestMappedWordsDecodesByteOrder(t *testing.T) {
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[0:4], 0xdeadbeef)
	binary.BigEndian.PutUint32(buf[4:8], 0x12345678)

	r := NewMappedWords(buf[:], binary.BigEndian)
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	w0, err := r.ReadNextWord()
	if err != nil || w0 != 0xdeadbeef {
		t.Errorf("ReadNextWord(0) = %#x, %v; want 0xdeadbeef, nil", w0, err)
	}
	w1, err := r.ReadNextWord()
	if err != nil || w1 != 0x12345678 {
		t.Errorf("ReadNextWord(1) = %#x, %v; want 0x12345678, nil", w1, err)
	}
}

// TestWordStreamSetPositionSilentFailure verifies the contract the fuzz
// harness in original_source/fuzz/fuzz_targets/mem_word_write.rs depends
// on: an out-of-range SetPosition leaves the cursor untouched rather than
// failing loudly.
func TestWordStreamSetPositionSilentFailure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 64).Draw(t, "n")
		words := make([]uint32, n)
		w := NewWords(words)

		validPos := rapid.IntRange(0, n).Draw(t, "validPos")
		w.SetPosition(validPos)
		if w.Position() != validPos {
			t.Fatalf("SetPosition(%d) then Position() = %d", validPos, w.Position())
		}

		badPos := rapid.OneOf(
			rapid.IntRange(-1000, -1),
			rapid.IntRange(n+1, n+1000),
		).Draw(t, "badPos")
		w.SetPosition(badPos)
		if w.Position() != validPos {
			t.Fatalf("out-of-range SetPosition(%d) changed position: got %d, want %d", badPos, w.Position(), validPos)
		}
	})
}

func TestInfiniteWordReaderReturnsZeroPastEnd(t *testing.T) {
	r := newInfiniteWordReader(NewWords([]uint32{7}))
	w, err := r.ReadNextWord()
	if err != nil || w != 7 {
		t.Fatalf("first ReadNextWord = %d, %v; want 7, nil", w, err)
	}
	for i := 0; i < 3; i++ {
		w, err := r.ReadNextWord()
		if err != nil || w != 0 {
			t.Fatalf("past-end ReadNextWord = %d, %v; want 0, nil", w, err)
		}
	}
}
