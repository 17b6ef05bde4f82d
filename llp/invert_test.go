// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package llp

import (
	"testing"

	"pgregory.net/rapid"
)

func TestInvertInPlaceInvolutive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 1000).Draw(t, "n")
		perm := seq(n)
		for i := n - 1; i > 0; i-- {
			j := rapid.IntRange(0, i).Draw(t, "j")
			perm[i], perm[j] = perm[j], perm[i]
		}

		want := make([]int, n)
		for i, v := range perm {
			want[v] = i
		}

		got := append([]int(nil), perm...)
		InvertInPlace(got)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("InvertInPlace(%v)[%d] = %d, want %d", perm, i, got[i], want[i])
			}
		}

		InvertInPlace(got)
		for i := range perm {
			if got[i] != perm[i] {
				t.Fatalf("InvertInPlace applied twice did not recover original: got %v, want %v", got, perm)
			}
		}
	})
}

func TestInvertInPlaceIdentity(t *testing.T) {
	perm := []int{0, 1, 2, 3}
	InvertInPlace(perm)
	for i, v := range perm {
		if v != i {
			t.Fatalf("InvertInPlace(identity)[%d] = %d, want %d", i, v, i)
		}
	}
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
