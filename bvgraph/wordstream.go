// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import "encoding/binary"

// WordReader is a cursor over a stream of fixed-width machine words.
//
// SetPosition fails silently: if the requested index is out of range, the
// position is left unchanged and no error is returned. This matches the
// original Rust MemWordRead contract, which a fuzz harness depends on.
type WordReader interface {
	// Len reports the total number of words in the stream.
	Len() int
	// Position reports the current cursor, in words.
	Position() int
	// SetPosition moves the cursor to i. If i is out of range, the call is
	// a silent no-op and the cursor is left unchanged.
	SetPosition(i int)
	// ReadNextWord returns the word at the cursor and advances it. It
	// fails if the cursor is already at the end of the stream.
	ReadNextWord() (uint32, error)
}

// WordWriter additionally allows overwriting the word at the cursor.
type WordWriter interface {
	WordReader
	// WriteWord overwrites the word at the cursor with w and advances it.
	// It fails if the cursor is already at the end of the stream.
	WriteWord(w uint32) error
}

// sliceWords is an owned or borrowed []uint32 backing, used for both
// reading and writing. It implements WordWriter.
type sliceWords struct {
	words []uint32
	pos   int
}

// NewWords wraps words (borrowed, not copied) in a WordWriter.
func NewWords(words []uint32) WordWriter {
	return &sliceWords{words: words}
}

func (s *sliceWords) Len() int      { return len(s.words) }
func (s *sliceWords) Position() int { return s.pos }

func (s *sliceWords) SetPosition(i int) {
	if i < 0 || i > len(s.words) {
		return
	}
	s.pos = i
}

func (s *sliceWords) ReadNextWord() (uint32, error) {
	if s.pos >= len(s.words) {
		return 0, Error("read past end of word stream")
	}
	w := s.words[s.pos]
	s.pos++
	return w, nil
}

func (s *sliceWords) WriteWord(w uint32) error {
	if s.pos >= len(s.words) {
		return Error("write past end of word stream")
	}
	s.words[s.pos] = w
	s.pos++
	return nil
}

// mmapWords is a read-only WordReader over a memory-mapped byte region,
// reinterpreted as a sequence of u32 words in the given byte order. No
// copy is made on read: each ReadNextWord decodes directly out of the
// mapping.
type mmapWords struct {
	data  []byte
	order binary.ByteOrder
	pos   int
}

// NewMappedWords builds a read-only WordReader over data (expected to be a
// memory-mapped or otherwise borrowed byte slice whose length is a
// multiple of 4), decoding each 4-byte group as a u32 in order.
func NewMappedWords(data []byte, order binary.ByteOrder) WordReader {
	return &mmapWords{data: data, order: order}
}

func (m *mmapWords) Len() int      { return len(m.data) / 4 }
func (m *mmapWords) Position() int { return m.pos }

func (m *mmapWords) SetPosition(i int) {
	if i < 0 || i > m.Len() {
		return
	}
	m.pos = i
}

func (m *mmapWords) ReadNextWord() (uint32, error) {
	if m.pos >= m.Len() {
		return 0, Error("read past end of word stream")
	}
	w := m.order.Uint32(m.data[m.pos*4 : m.pos*4+4])
	m.pos++
	return w, nil
}

// infiniteWordReader wraps a WordReader so that reads past the end of the
// stream yield 0 instead of failing. It is used exclusively by the bit
// reader so that the last partial word never needs a bounds check: the
// decoder may over-read a handful of zero bits past the true end of a
// well-formed stream without ever observing an error, exactly like the
// Rust MemWordReadInfinite backing.
type infiniteWordReader struct {
	WordReader
}

func newInfiniteWordReader(r WordReader) *infiniteWordReader {
	return &infiniteWordReader{WordReader: r}
}

func (r *infiniteWordReader) ReadNextWord() (uint32, error) {
	if r.Position() >= r.Len() {
		return 0, nil
	}
	return r.WordReader.ReadNextWord()
}
