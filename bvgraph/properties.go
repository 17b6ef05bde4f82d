// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import (
	"encoding/binary"
	"io"

	"github.com/dsnet/webgraph/internal/properties"
)

// Properties is the parsed content of a BVGraph .properties sidecar file.
type Properties struct {
	Nodes             uint64
	Arcs              uint64
	WindowSize        int
	MinIntervalLength int
	ZetaK             uint
	CompressionFlags  string
	Endianness        binary.ByteOrder
}

// Defaults, per spec.md §6.
const (
	DefaultWindowSize        = 7
	DefaultMinIntervalLength = 4
	DefaultZetaK             = 3
)

// ReadProperties parses a .properties file.
func ReadProperties(r io.Reader) (*Properties, error) {
	m, err := properties.Parse(r)
	if err != nil {
		return nil, err
	}
	p := &Properties{Endianness: binary.BigEndian}
	nodes, err := m.Int("nodes", 0)
	if err != nil {
		return nil, ErrFormat
	}
	arcs, err := m.Int("arcs", 0)
	if err != nil {
		return nil, ErrFormat
	}
	p.Nodes, p.Arcs = uint64(nodes), uint64(arcs)

	if p.WindowSize, err = m.Int("windowsize", DefaultWindowSize); err != nil {
		return nil, ErrFormat
	}
	if p.MinIntervalLength, err = m.Int("minintervallength", DefaultMinIntervalLength); err != nil {
		return nil, ErrFormat
	}
	zetaK, err := m.Int("zeta_k", DefaultZetaK)
	if err != nil {
		return nil, ErrFormat
	}
	p.ZetaK = uint(zetaK)
	p.CompressionFlags = m.String("compressionflags", "")

	switch m.String("endianness", "BIG") {
	case "BIG", "BE":
		p.Endianness = binary.BigEndian
	case "LITTLE", "LE":
		p.Endianness = binary.LittleEndian
	default:
		return nil, ErrFormat
	}
	return p, nil
}

// NewCodesReader builds the CodesReader indicated by p.CompressionFlags
// (static dispatch when empty, dynamic otherwise) over br.
func (p *Properties) NewCodesReader(br *BitReader) (CodesReader, error) {
	if p.CompressionFlags == "" {
		return NewDefaultCodesReader(br, p.ZetaK), nil
	}
	return NewDynamicCodesReader(br, p.ZetaK, p.CompressionFlags)
}
