package ndarray

import "testing"

func TestResolveZeroPad(t *testing.T) {
	tests := []struct {
		index, extent int
		want          bool
	}{
		{index: 0, extent: 4, want: true},
		{index: 3, extent: 4, want: true},
		{index: -1, extent: 4, want: false},
		{index: 4, extent: 4, want: false},
		{index: 0, extent: 1, want: true},
	}

	for _, tt := range tests {
		got, ok := Resolve(tt.index, tt.extent, ZeroPad)
		if ok != tt.want {
			t.Fatalf("Resolve(%d, %d) ok = %v, want %v", tt.index, tt.extent, ok, tt.want)
		}
		if got != tt.index {
			t.Fatalf("Resolve(%d, %d) index = %d, want unchanged", tt.index, tt.extent, got)
		}
	}
}

func TestResolveMirror(t *testing.T) {
	// extent 4: ... 1 0 | 0 1 2 3 | 3 2 1 0 | 0 1 ...
	tests := []struct {
		index, want int
	}{
		{-1, 0}, {-2, 1}, {-4, 3}, {-5, 3}, {-8, 0}, {-9, 0},
		{0, 0}, {3, 3}, {4, 3}, {5, 2}, {7, 0}, {8, 0}, {11, 3}, {12, 3},
	}

	for _, tt := range tests {
		got, ok := Resolve(tt.index, 4, Mirror)
		if !ok {
			t.Fatalf("Resolve(%d, 4, Mirror) reported out of bounds", tt.index)
		}
		if got != tt.want {
			t.Errorf("Resolve(%d, 4, Mirror) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestResolveMirrorMatchesExplicitExtension(t *testing.T) {
	for extent := 1; extent <= 6; extent++ {
		// One period of the half-sample symmetric extension: x, reverse(x).
		period := make([]int, 0, 2*extent)
		for i := range extent {
			period = append(period, i)
		}
		for i := extent - 1; i >= 0; i-- {
			period = append(period, i)
		}

		for index := -5 * extent; index < 5*extent; index++ {
			p := index % len(period)
			if p < 0 {
				p += len(period)
			}
			got, _ := Resolve(index, extent, Mirror)
			if got != period[p] {
				t.Fatalf("extent %d index %d: got %d, want %d", extent, index, got, period[p])
			}
		}
	}
}

func TestResolveDegenerate(t *testing.T) {
	for _, index := range []int{-100, -1, 0, 1, 100} {
		got, ok := Resolve(index, 1, Mirror)
		if !ok || got != 0 {
			t.Fatalf("Resolve(%d, 1, Mirror) = (%d, %v), want (0, true)", index, got, ok)
		}
	}
	if _, ok := Resolve(0, 0, Mirror); ok {
		t.Fatal("extent 0 must not resolve")
	}
	if _, ok := Resolve(0, 3, Boundary(9)); ok {
		t.Fatal("unknown boundary must not resolve")
	}
}

func TestBoundaryString(t *testing.T) {
	if ZeroPad.String() != "zero-pad" || Mirror.String() != "mirror" {
		t.Fatalf("unexpected names %q %q", ZeroPad, Mirror)
	}
	if Boundary(7).Valid() {
		t.Fatal("Boundary(7) must be invalid")
	}
}
