// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bench benchmarks and checks the BVGraph decoder, following the
// teacher's internal/tool/bench posture (a standalone harness comparing
// codec behavior) adapted from "compare multiple compressors" to "measure
// and validate one decoder against itself across run configurations",
// since BVGraph decode has no alternate Go implementation in this module to
// compare against.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dsnet/webgraph/bvgraph"
	"github.com/dsnet/webgraph/internal/config"
)

func main() {
	app := &cli.App{
		Name:  "bench",
		Usage: "benchmark or check the BVGraph codec",
		Commands: []*cli.Command{
			{
				Name:      "bvgraph",
				ArgsUsage: "BASENAME",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "r", Value: 1, Usage: "number of sequential decode repetitions"},
					&cli.IntFlag{Name: "R", Value: 1, Usage: "number of random-access decode repetitions"},
					&cli.BoolFlag{Name: "f", Usage: "check full successor-list equality between sequential and random-access decode"},
					&cli.BoolFlag{Name: "s", Usage: "suppress the timing summary line"},
					&cli.BoolFlag{Name: "d", Usage: "verify decoded successor lists are strictly increasing"},
					&cli.BoolFlag{Name: "c", Usage: "verify degree sum equals arcs recorded in .properties"},
				},
				Action: runBench,
			},
		},
	}
	config.Init(log.Printf)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runBench(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: bench bvgraph BASENAME", 2)
	}
	basename := c.Args().Get(0)

	graph, closeGraph, err := bvgraph.Load(basename)
	if err != nil {
		return err
	}
	defer closeGraph()

	var mismatches int
	seqRepeats, randRepeats := c.Int("r"), c.Int("R")

	if c.Bool("f") {
		n, err := compareSequentialRandom(graph)
		if err != nil {
			return err
		}
		mismatches += n
	}

	var seqElapsed time.Duration
	for i := 0; i < seqRepeats; i++ {
		start := time.Now()
		for v := uint64(0); v < graph.NumNodes(); v++ {
			succ, err := graph.Successors(v)
			if err != nil {
				return fmt.Errorf("node %d: %w", v, err)
			}
			if c.Bool("d") && !strictlyIncreasing(succ) {
				mismatches++
			}
		}
		seqElapsed += time.Since(start)
	}

	var randElapsed time.Duration
	for i := 0; i < randRepeats; i++ {
		start := time.Now()
		for v := graph.NumNodes(); v > 0; v-- {
			if _, err := graph.Successors(v - 1); err != nil {
				return fmt.Errorf("node %d: %w", v-1, err)
			}
		}
		randElapsed += time.Since(start)
	}

	if c.Bool("c") {
		var arcs uint64
		for v := uint64(0); v < graph.NumNodes(); v++ {
			deg, err := graph.Degree(v)
			if err != nil {
				return err
			}
			arcs += deg
		}
		if arcs != graph.NumArcs() {
			mismatches++
			log.Printf("bench: degree sum %d does not match .properties arcs %d", arcs, graph.NumArcs())
		}
	}

	if !c.Bool("s") {
		log.Printf("bench: %d nodes, %d arcs, sequential %v (x%d), random %v (x%d)",
			graph.NumNodes(), graph.NumArcs(), seqElapsed, seqRepeats, randElapsed, randRepeats)
	}
	if mismatches > 0 {
		return cli.Exit(fmt.Sprintf("bench: %d mismatches found", mismatches), 1)
	}
	return nil
}

// compareSequentialRandom walks graph with a sequential SuccessorIterator
// and cross-checks each node's list against an independent random-access
// Successors call, the -f check: both paths run bvgraph.decodeRecord and
// the bit-level readers beneath it and differ only in how they resolve a
// back-reference (circular window versus recursive decode), so divergence
// here points at one of those two resolution paths.
func compareSequentialRandom(graph *bvgraph.Graph) (int, error) {
	it, err := graph.Iterator()
	if err != nil {
		return 0, err
	}
	var mismatches int
	for {
		nodeID, seq, ok, err := it.Next()
		if err != nil {
			return mismatches, err
		}
		if !ok {
			break
		}
		rnd, err := graph.Successors(nodeID)
		if err != nil {
			return mismatches, err
		}
		if len(seq) != len(rnd) {
			mismatches++
			continue
		}
		for i := range seq {
			if seq[i] != rnd[i] {
				mismatches++
				break
			}
		}
	}
	return mismatches, nil
}

func strictlyIncreasing(succ []uint64) bool {
	for i := 1; i < len(succ); i++ {
		if succ[i] <= succ[i-1] {
			return false
		}
	}
	return true
}
