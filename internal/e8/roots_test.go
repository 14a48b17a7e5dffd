package e8

import (
	"math"
	"testing"
)

func TestGenerateCount(t *testing.T) {
	rs := Generate()

	if len(rs.Roots) != NumRoots {
		t.Fatalf("expected %d roots, got %d", NumRoots, len(rs.Roots))
	}

	integer, half := rs.CountByFamily()
	if integer != 112 {
		t.Errorf("expected 112 integer roots, got %d", integer)
	}
	if half != 128 {
		t.Errorf("expected 128 half-integer roots, got %d", half)
	}
}

func TestRootNorms(t *testing.T) {
	rs := Generate()

	for _, r := range rs.Roots {
		if math.Abs(r.NormSq()-2.0) > 1e-12 {
			t.Errorf("root %d: squared norm %.12f, expected 2", r.Index, r.NormSq())
		}
	}
}

func TestHalfIntegerParity(t *testing.T) {
	rs := Generate()

	for _, r := range rs.Roots {
		if !r.IsHalfInteger() {
			continue
		}
		negatives := 0
		for _, v := range r.Coords {
			if v < 0 {
				negatives++
			}
		}
		if negatives%2 != 0 {
			t.Errorf("root %d: odd number of negative signs (%d)", r.Index, negatives)
		}
	}
}

func TestRootsDistinct(t *testing.T) {
	rs := Generate()

	seen := make(map[[Dim]float64]int, NumRoots)
	for _, r := range rs.Roots {
		if prev, ok := seen[r.Coords]; ok {
			t.Fatalf("roots %d and %d are identical: %v", prev, r.Index, r.Coords)
		}
		seen[r.Coords] = r.Index
	}
}

func TestIndexStability(t *testing.T) {
	rs := Generate()

	for k, r := range rs.Roots {
		if r.Index != k {
			t.Fatalf("roots[%d].Index = %d", k, r.Index)
		}
	}
}

func TestFirstRoot(t *testing.T) {
	rs := Generate()

	expected := [Dim]float64{1, 1, 0, 0, 0, 0, 0, 0}
	if rs.Roots[0].Coords != expected {
		t.Errorf("roots[0] = %v, expected %v", rs.Roots[0].Coords, expected)
	}
}

func TestHalfIntegerMembership(t *testing.T) {
	rs := Generate()

	allHalf := [Dim]float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	oneNeg := [Dim]float64{-0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}

	foundAllHalf := false
	for _, r := range rs.Roots {
		if r.Coords == allHalf {
			foundAllHalf = true
		}
		if r.Coords == oneNeg {
			t.Errorf("root with odd parity %v should not be generated", oneNeg)
		}
	}
	if !foundAllHalf {
		t.Errorf("root %v missing from generated set", allHalf)
	}
}

func TestCartanMatrix(t *testing.T) {
	rs := Generate()

	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			want := 0
			switch {
			case i == j:
				want = 2
			case i == j+1 || j == i+1:
				want = -1
			}
			if rs.Cartan[i][j] != want {
				t.Errorf("cartan[%d][%d] = %d, expected %d", i, j, rs.Cartan[i][j], want)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate()
	b := Generate()

	for i := range a.Roots {
		if a.Roots[i].Coords != b.Roots[i].Coords {
			t.Fatalf("generation not deterministic at index %d", i)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Generate()
	}
}
