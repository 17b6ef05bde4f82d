// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import (
	"os"
	"syscall"
)

// Load memory-maps basename+".graph" and basename+".offsets" read-only and
// parses basename+".properties", returning a ready-to-query Graph. The
// returned close func unmaps both files; callers must call it once done
// with the Graph.
func Load(basename string) (graph *Graph, close func() error, err error) {
	propsFile, err := os.Open(basename + ".properties")
	if err != nil {
		return nil, nil, err
	}
	defer propsFile.Close()
	props, err := ReadProperties(propsFile)
	if err != nil {
		return nil, nil, err
	}

	graphData, unmapGraph, err := mmapFile(basename + ".graph")
	if err != nil {
		return nil, nil, err
	}
	offsetsData, unmapOffsets, err := mmapFile(basename + ".offsets")
	if err != nil {
		unmapGraph()
		return nil, nil, err
	}
	closeAll := func() error {
		err1 := unmapOffsets()
		err2 := unmapGraph()
		if err1 != nil {
			return err1
		}
		return err2
	}

	offsetsWords := NewMappedWords(offsetsData, props.Endianness)
	offsets, err := DecodeOffsets(offsetsWords, M2L, props.Nodes)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	g := NewGraph(NewMappedWords(graphData, props.Endianness), props, offsets)
	return g, closeAll, nil
}

// mmapFile memory-maps path read-only for its full length.
func mmapFile(path string) (data []byte, unmap func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if fi.Size() == 0 {
		return nil, func() error { return nil }, nil
	}
	data, err = syscall.Mmap(int(f.Fd()), 0, int(fi.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return syscall.Munmap(data) }, nil
}
