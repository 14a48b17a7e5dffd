package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/rootviz/internal/e8"
)

func TestRootDistanceSpectrum(t *testing.T) {
	points := e8.Generate().Points()

	got := DistinctDistances(points, 1e-9)
	want := []float64{math.Sqrt2, 2, math.Sqrt(6), 2 * math.Sqrt2}

	if len(got) != len(want) {
		t.Fatalf("expected %d distinct distances, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("distance %d: got %.9f, expected %.9f", i, got[i], want[i])
		}
	}
}

func TestDistanceHistogramTotals(t *testing.T) {
	points := e8.Generate().Points()

	h := DistanceHistogram(points, 32)
	total := 0.0
	for _, c := range h.Counts {
		total += c
	}

	pairs := float64(e8.NumRoots * (e8.NumRoots - 1) / 2)
	if total != pairs {
		t.Errorf("histogram holds %.0f pairs, expected %.0f", total, pairs)
	}
	if math.Abs(h.Max-2*math.Sqrt2) > 1e-9 {
		t.Errorf("max distance %.9f, expected 2*sqrt2", h.Max)
	}
}

func TestThresholdSweepMonotonic(t *testing.T) {
	points := e8.Generate().Points()

	sweep := ThresholdSweep(points, 3.0, 30)
	for k := 1; k < len(sweep); k++ {
		if sweep[k] < sweep[k-1] {
			t.Fatalf("sweep not monotonic at step %d: %f < %f", k, sweep[k], sweep[k-1])
		}
	}

	// Just past sqrt2 the count must equal the neighbour-pair total.
	idx := int(1.5/3.0*30) - 1
	if sweep[idx] != 240*56/2 {
		t.Errorf("count at threshold 1.5 = %.0f, expected %d", sweep[idx], 240*56/2)
	}
}

func TestEmptyInput(t *testing.T) {
	h := DistanceHistogram(nil, 10)
	for _, c := range h.Counts {
		if c != 0 {
			t.Fatal("expected empty histogram")
		}
	}
	if d := DistinctDistances(nil, 1e-9); len(d) != 0 {
		t.Errorf("expected no distances, got %v", d)
	}
}
