// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bfsutil provides a minimal breadth-first traversal order over a
// graphs.Graph: every node appears exactly once, in the order a BFS visits
// it, restarting from the lowest-numbered unvisited node whenever the
// current component is exhausted so that orphans and disconnected
// components are still covered.
package bfsutil

import "github.com/dsnet/webgraph/graphs"

// Order returns every node of g exactly once, in full-graph breadth-first
// order: BFS from node 0, then from the lowest-numbered node not yet
// visited, repeating until every node has been visited.
//
// Ported from the BfsOrder iterator exercised in
// original_source/tests/bfs_order.rs.
func Order(g graphs.Graph) ([]uint64, error) {
	n := g.NumNodes()
	order := make([]uint64, 0, n)
	visited := make([]bool, n)
	queue := make([]uint64, 0, n)

	visit := func(start uint64) error {
		if visited[start] {
			return nil
		}
		visited[start] = true
		queue = append(queue, start)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)

			succ, err := g.Successors(v)
			if err != nil {
				return err
			}
			for _, u := range succ {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		return nil
	}

	for v := uint64(0); v < n; v++ {
		if err := visit(v); err != nil {
			return nil, err
		}
	}
	return order, nil
}
