package analysis

import (
	"math"
	"sort"
)

// Histogram buckets pairwise distances into fixed-width bins over
// [0, max]; Counts[k] holds pairs with distance in bin k.
type Histogram struct {
	Counts   []float64
	BinWidth float64
	Max      float64
}

// DistanceHistogram scans all pairs and bins their distances.
func DistanceHistogram(points [][]float64, bins int) Histogram {
	max := 0.0
	dists := make([]float64, 0, len(points)*(len(points)-1)/2)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := dist(points[i], points[j])
			dists = append(dists, d)
			if d > max {
				max = d
			}
		}
	}

	h := Histogram{
		Counts: make([]float64, bins),
		Max:    max,
	}
	if max == 0 || bins == 0 {
		return h
	}
	h.BinWidth = max / float64(bins)

	for _, d := range dists {
		k := int(d / h.BinWidth)
		if k >= bins {
			k = bins - 1
		}
		h.Counts[k]++
	}
	return h
}

// DistinctDistances returns the sorted distinct pairwise distances,
// merging values within tol. On the unprojected roots this yields the
// exact spectrum {sqrt2, 2, sqrt6, 2*sqrt2}.
func DistinctDistances(points [][]float64, tol float64) []float64 {
	seen := make([]float64, 0, 8)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := dist(points[i], points[j])
			found := false
			for _, s := range seen {
				if math.Abs(s-d) <= tol {
					found = true
					break
				}
			}
			if !found {
				seen = append(seen, d)
			}
		}
	}
	sort.Float64s(seen)
	return seen
}

// ThresholdSweep counts proximity edges at evenly spaced thresholds
// from 0 to max, one count per step. Feeding it to a line chart shows
// the plateaus between the spectrum's distance values.
func ThresholdSweep(points [][]float64, max float64, steps int) []float64 {
	dists := make([]float64, 0, len(points)*(len(points)-1)/2)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			dists = append(dists, dist(points[i], points[j]))
		}
	}
	sort.Float64s(dists)

	counts := make([]float64, steps)
	for k := 0; k < steps; k++ {
		threshold := max * float64(k+1) / float64(steps)
		counts[k] = float64(sort.SearchFloat64s(dists, threshold+1e-12))
	}
	return counts
}

func dist(a, b []float64) float64 {
	sum := 0.0
	for k := range a {
		d := a[k] - b[k]
		sum += d * d
	}
	return math.Sqrt(sum)
}
