package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/rootviz/internal/scene"
)

func readPointsCSV(path string, outDim int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty points file", path)
	}

	points := make([][]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != outDim+1 {
			return nil, fmt.Errorf("%s: row has %d fields, expected %d", path, len(rec), outDim+1)
		}
		p := make([]float64, outDim)
		for d := 0; d < outDim; d++ {
			v, err := strconv.ParseFloat(rec[d+1], 64)
			if err != nil {
				return nil, err
			}
			p[d] = v
		}
		points = append(points, p)
	}
	return points, nil
}

func readEdgesCSV(path string) ([]scene.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	edges := make([]scene.Edge, 0, len(records))
	for i, rec := range records {
		if i == 0 {
			continue
		}
		a, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, err
		}
		b, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, err
		}
		edges = append(edges, scene.Edge{A: a, B: b})
	}
	return edges, nil
}
