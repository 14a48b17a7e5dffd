package scene

import (
	"runtime"
	"sync"
)

// Parallel fans the outer loop of the pairwise scan across workers.
// Only worth it when the point count grows past the base 240.
type Parallel struct {
	workers int
}

func NewParallel(workers int) *Parallel {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Parallel{workers: workers}
}

func (p *Parallel) Edges(points [][]float64, threshold float64) []Edge {
	n := len(points)
	if n < 512 || p.workers <= 1 {
		return NewBruteForce().Edges(points, threshold)
	}

	limit := threshold * threshold
	chunks := make([][]Edge, p.workers)
	chunkSize := (n + p.workers - 1) / p.workers

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			local := make([]Edge, 0, (end-start)*8)
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					if distSq(points[i], points[j]) <= limit {
						local = append(local, Edge{i, j})
					}
				}
			}
			chunks[w] = local
		}(w, start, end)
	}
	wg.Wait()

	edges := make([]Edge, 0, n*8)
	for _, c := range chunks {
		edges = append(edges, c...)
	}
	return edges
}
