// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import "strings"

// Code identifies one of the variable-length integer codes BVGraph can use
// for a given slot.
type Code int

const (
	CodeGamma Code = iota
	CodeDelta
	CodeZeta
	CodeUnary
)

func (c Code) String() string {
	switch c {
	case CodeGamma:
		return "GAMMA"
	case CodeDelta:
		return "DELTA"
	case CodeZeta:
		return "ZETA"
	case CodeUnary:
		return "UNARY"
	default:
		return "UNKNOWN"
	}
}

// CodesReader exposes the seven logical code slots a BVGraph record reads
// from, each dispatching to whichever concrete code was chosen for that
// slot at construction time.
type CodesReader interface {
	ReadOutdegree() uint64
	ReadReferenceOffset() uint64
	ReadBlockCount() uint64
	ReadBlocks() uint64
	ReadIntervalCount() uint64
	ReadIntervalStart() uint64
	ReadIntervalLen() uint64
	ReadFirstResidual() uint64
	ReadResidual() uint64
}

// slot identifies each of the seven logical code slots, used only to
// build the dynamic dispatch table from compressionflags.
type slot int

const (
	slotOutdegree slot = iota
	slotReferenceOffset
	slotBlockCount
	slotBlocks
	slotIntervalCount
	slotIntervalStart
	slotIntervalLen
	slotResidual // also used for the first residual
)

var slotNames = map[string]slot{
	"OUTDEGREES":  slotOutdegree,
	"REFERENCES":  slotReferenceOffset,
	"BLOCKS":      slotBlockCount,
	"INTERVALS":   slotIntervalCount,
	"RESIDUALS":   slotResidual,
	"BLOCK_COUNT": slotBlockCount,
}

func readCode(br *BitReader, c Code, zetaK uint) uint64 {
	switch c {
	case CodeGamma:
		return br.ReadGamma()
	case CodeDelta:
		return br.ReadDelta()
	case CodeZeta:
		return br.ReadZeta(zetaK)
	case CodeUnary:
		return br.ReadUnary()
	default:
		panic(Error("unknown code"))
	}
}

// DefaultCodesReader is the static-dispatch CodesReader used when a
// graph's compressionflags property is empty: outdegrees, block counts,
// blocks, interval counts, interval starts and interval lengths are
// gamma-coded; reference offsets are unary; residuals are zeta-coded with
// the graph's configured zeta_k. Static dispatch means
// every method is a direct, non-branching call into the matching
// BitReader method, which the compiler can inline.
type DefaultCodesReader struct {
	br    *BitReader
	zetaK uint
}

// NewDefaultCodesReader builds the static-dispatch reader used for graphs
// with an empty compressionflags property.
func NewDefaultCodesReader(br *BitReader, zetaK uint) *DefaultCodesReader {
	return &DefaultCodesReader{br: br, zetaK: zetaK}
}

func (r *DefaultCodesReader) ReadOutdegree() uint64        { return r.br.ReadGamma() }
func (r *DefaultCodesReader) ReadReferenceOffset() uint64  { return r.br.ReadUnary() }
func (r *DefaultCodesReader) ReadBlockCount() uint64       { return r.br.ReadGamma() }
func (r *DefaultCodesReader) ReadBlocks() uint64           { return r.br.ReadGamma() }
func (r *DefaultCodesReader) ReadIntervalCount() uint64    { return r.br.ReadGamma() }
func (r *DefaultCodesReader) ReadIntervalStart() uint64    { return r.br.ReadGamma() }
func (r *DefaultCodesReader) ReadIntervalLen() uint64      { return r.br.ReadGamma() }
func (r *DefaultCodesReader) ReadFirstResidual() uint64    { return r.br.ReadZeta(r.zetaK) }
func (r *DefaultCodesReader) ReadResidual() uint64         { return r.br.ReadZeta(r.zetaK) }

// DynamicCodesReader dispatches each slot through a function-pointer table
// built from a graph's compressionflags property, e.g.
// "OUTDEGREES_GAMMA,RESIDUALS_ZETA3". Slots not mentioned keep their
// DefaultCodesReader assignment.
type DynamicCodesReader struct {
	br    *BitReader
	zetaK uint
	codes [8]Code
}

// NewDynamicCodesReader parses flags (the compressionflags property
// value) and builds a dispatch table over br.
func NewDynamicCodesReader(br *BitReader, zetaK uint, flags string) (*DynamicCodesReader, error) {
	r := &DynamicCodesReader{
		br:    br,
		zetaK: zetaK,
		codes: [8]Code{
			slotOutdegree:       CodeGamma,
			slotReferenceOffset: CodeUnary,
			slotBlockCount:      CodeGamma,
			slotBlocks:          CodeGamma,
			slotIntervalCount:   CodeGamma,
			slotIntervalStart:   CodeGamma,
			slotIntervalLen:     CodeGamma,
			slotResidual:        CodeZeta,
		},
	}
	flags = strings.TrimSpace(flags)
	if flags == "" {
		return r, nil
	}
	for _, part := range strings.Split(flags, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, code, err := parseFlag(part)
		if err != nil {
			return nil, err
		}
		s, ok := slotNames[name]
		if !ok {
			return nil, ErrFormat
		}
		r.codes[s] = code
	}
	return r, nil
}

func parseFlag(part string) (name string, code Code, err error) {
	i := strings.LastIndexByte(part, '_')
	if i < 0 {
		return "", 0, ErrFormat
	}
	name, codeStr := part[:i], part[i+1:]
	switch {
	case codeStr == "GAMMA":
		code = CodeGamma
	case codeStr == "DELTA":
		code = CodeDelta
	case codeStr == "UNARY":
		code = CodeUnary
	case strings.HasPrefix(codeStr, "ZETA"):
		code = CodeZeta
	default:
		return "", 0, ErrFormat
	}
	return name, code, nil
}

func (r *DynamicCodesReader) ReadOutdegree() uint64 {
	return readCode(r.br, r.codes[slotOutdegree], r.zetaK)
}
func (r *DynamicCodesReader) ReadReferenceOffset() uint64 {
	return readCode(r.br, r.codes[slotReferenceOffset], r.zetaK)
}
func (r *DynamicCodesReader) ReadBlockCount() uint64 {
	return readCode(r.br, r.codes[slotBlockCount], r.zetaK)
}
func (r *DynamicCodesReader) ReadBlocks() uint64 {
	return readCode(r.br, r.codes[slotBlocks], r.zetaK)
}
func (r *DynamicCodesReader) ReadIntervalCount() uint64 {
	return readCode(r.br, r.codes[slotIntervalCount], r.zetaK)
}
func (r *DynamicCodesReader) ReadIntervalStart() uint64 {
	return readCode(r.br, r.codes[slotIntervalStart], r.zetaK)
}
func (r *DynamicCodesReader) ReadIntervalLen() uint64 {
	return readCode(r.br, r.codes[slotIntervalLen], r.zetaK)
}
func (r *DynamicCodesReader) ReadFirstResidual() uint64 {
	return readCode(r.br, r.codes[slotResidual], r.zetaK)
}
func (r *DynamicCodesReader) ReadResidual() uint64 {
	return readCode(r.br, r.codes[slotResidual], r.zetaK)
}
