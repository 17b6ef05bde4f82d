// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package llp

import "testing"

func TestLabelStoreInitAndSet(t *testing.T) {
	s := NewLabelStore(4)
	s.Init()

	for v := uint64(0); v < 4; v++ {
		if got := s.Label(v); got != v {
			t.Fatalf("Label(%d) = %d, want %d", v, got, v)
		}
		if got := s.Volume(v); got != 1 {
			t.Fatalf("Volume(%d) = %d, want 1", v, got)
		}
	}

	s.Set(1, s.Label(1), 0)
	if got := s.Label(1); got != 0 {
		t.Fatalf("Label(1) after Set = %d, want 0", got)
	}
	if got := s.Volume(0); got != 2 {
		t.Fatalf("Volume(0) after Set = %d, want 2", got)
	}
	if got := s.Volume(1); got != 0 {
		t.Fatalf("Volume(1) after Set = %d, want 0", got)
	}

	snap := s.Labels()
	want := []uint64{0, 0, 2, 3}
	for v, l := range want {
		if snap[v] != l {
			t.Errorf("Labels()[%d] = %d, want %d", v, snap[v], l)
		}
	}
}
