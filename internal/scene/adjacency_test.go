package scene

import (
	"math/rand"
	"sort"
	"testing"
)

func TestBruteForceSimple(t *testing.T) {
	points := [][]float64{
		{0, 0},
		{1, 0},
		{5, 5},
	}

	edges := NewBruteForce().Edges(points, 1.5)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].A != 0 || edges[0].B != 1 {
		t.Errorf("expected edge (0,1), got (%d,%d)", edges[0].A, edges[0].B)
	}
}

func TestBruteForceThresholdInclusive(t *testing.T) {
	points := [][]float64{{0, 0}, {2, 0}}

	if edges := NewBruteForce().Edges(points, 2.0); len(edges) != 1 {
		t.Errorf("distance equal to threshold should produce an edge")
	}
	if edges := NewBruteForce().Edges(points, 1.999); len(edges) != 0 {
		t.Errorf("distance above threshold should not produce an edge")
	}
}

func TestParallelMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([][]float64, 700)
	for i := range points {
		p := make([]float64, 3)
		for d := range p {
			p[d] = rng.Float64() * 10
		}
		points[i] = p
	}

	brute := NewBruteForce().Edges(points, 1.0)
	par := NewParallel(4).Edges(points, 1.0)

	key := func(e Edge) int { return e.A*10000 + e.B }
	sort.Slice(brute, func(i, j int) bool { return key(brute[i]) < key(brute[j]) })
	sort.Slice(par, func(i, j int) bool { return key(par[i]) < key(par[j]) })

	if len(brute) != len(par) {
		t.Fatalf("edge counts differ: brute %d, parallel %d", len(brute), len(par))
	}
	for i := range brute {
		if brute[i] != par[i] {
			t.Fatalf("edge %d differs: %v vs %v", i, brute[i], par[i])
		}
	}
}

func BenchmarkBruteForce240(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	points := make([][]float64, 240)
	for i := range points {
		p := make([]float64, 3)
		for d := range p {
			p[d] = rng.Float64() * 4
		}
		points[i] = p
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewBruteForce().Edges(points, 0.8)
	}
}
