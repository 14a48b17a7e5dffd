package scene

import "math"

// Edge links two point indices whose distance falls under a threshold.
type Edge struct {
	A, B int
}

// EdgeFinder computes the proximity edge list for a point set. It is
// an interface so the O(n^2) scan can later be swapped for a spatial
// index without touching the rotation/projection pipeline.
type EdgeFinder interface {
	Edges(points [][]float64, threshold float64) []Edge
}

// NearestRootDistance is the distance between adjacent E8 roots in 8D.
var NearestRootDistance = math.Sqrt2

// DefaultThreshold sits just above the nearest-neighbour distance so
// the unrotated 8D graph links true neighbours only.
const DefaultThreshold = 1.5

// BruteForce scans all pairs. At 240 points that is ~29k distance
// checks per frame, well inside an animation budget.
type BruteForce struct{}

func NewBruteForce() *BruteForce { return &BruteForce{} }

func (b *BruteForce) Edges(points [][]float64, threshold float64) []Edge {
	limit := threshold * threshold
	edges := make([]Edge, 0, len(points)*8)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if distSq(points[i], points[j]) <= limit {
				edges = append(edges, Edge{i, j})
			}
		}
	}
	return edges
}

func distSq(a, b []float64) float64 {
	sum := 0.0
	for k := range a {
		d := a[k] - b[k]
		sum += d * d
	}
	return sum
}
