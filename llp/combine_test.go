// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package llp

import "testing"

func TestCombineMonotonicity(t *testing.T) {
	// result starts as two coarse clusters {0,1,2} and {3,4,5}; labels
	// splits each in half. Combine should produce exactly four refined
	// clusters, one per distinct (result, label) pair.
	result := []uint64{0, 0, 0, 1, 1, 1}
	labels := []uint64{0, 0, 1, 0, 1, 1}
	tempPerm := make([]int, len(result))

	numLabels := Combine(result, labels, tempPerm)
	if numLabels != 4 {
		t.Fatalf("Combine returned %d labels, want 4", numLabels)
	}

	// Every node sharing the same original (result, label) pair must end
	// up with the same refined label, and nodes with different pairs must
	// end up with different refined labels.
	orig := map[int][2]uint64{
		0: {0, 0}, 1: {0, 0}, 2: {0, 1},
		3: {1, 0}, 4: {1, 1}, 5: {1, 1},
	}
	seen := map[[2]uint64]uint64{}
	for x, pair := range orig {
		if want, ok := seen[pair]; ok {
			if result[x] != want {
				t.Errorf("node %d: refined label %d, want %d (same original pair %v)", x, result[x], want, pair)
			}
		} else {
			seen[pair] = result[x]
		}
	}
	for a, pa := range orig {
		for b, pb := range orig {
			if pa != pb && result[a] == result[b] {
				t.Errorf("nodes %d and %d have distinct original pairs %v/%v but same refined label %d", a, b, pa, pb, result[a])
			}
		}
	}
}

func TestCombineSingleCluster(t *testing.T) {
	// Labels index result, so both hold values in [0, len(result)).
	result := []uint64{2, 2, 2}
	labels := []uint64{1, 1, 1}
	tempPerm := make([]int, len(result))
	n := Combine(result, labels, tempPerm)
	if n != 1 {
		t.Fatalf("Combine returned %d labels, want 1", n)
	}
	for _, r := range result {
		if r != 0 {
			t.Errorf("result = %v, want all zero", result)
		}
	}
}
