// Package storage persists projected-frame snapshots under a data
// directory, one subdirectory per snapshot holding metadata.json,
// points.csv and edges.csv.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/rootviz/internal/export"
	"github.com/san-kum/rootviz/internal/scene"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// SnapshotMetadata describes a stored frame.
type SnapshotMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	PlaneSet  string    `json:"plane_set"`
	OutDim    int       `json:"out_dim"`
	Threshold float64   `json:"threshold"`
	Angles    []float64 `json:"angles"`
	NumPoints int       `json:"num_points"`
	NumEdges  int       `json:"num_edges"`
}

// Save writes a frame snapshot and returns its generated id.
func (s *Store) Save(planeSet string, threshold float64, f *scene.Frame) (string, error) {
	id := fmt.Sprintf("%s_%d", planeSet, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SnapshotMetadata{
		ID:        id,
		Timestamp: time.Now(),
		PlaneSet:  planeSet,
		OutDim:    f.OutDim,
		Threshold: threshold,
		Angles:    f.Angles,
		NumPoints: len(f.Points),
		NumEdges:  len(f.Edges),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	pointsFile, err := os.Create(filepath.Join(dir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer pointsFile.Close()
	if err := export.WriteCSV(pointsFile, f); err != nil {
		return "", err
	}

	edgesFile, err := os.Create(filepath.Join(dir, "edges.csv"))
	if err != nil {
		return "", err
	}
	defer edgesFile.Close()
	if err := export.WriteEdgesCSV(edgesFile, f); err != nil {
		return "", err
	}

	return id, nil
}

// Load reads a snapshot's metadata.
func (s *Store) Load(id string) (*SnapshotMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", id, err)
	}
	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrame reconstructs the stored frame from its CSV files.
func (s *Store) LoadFrame(id string) (*scene.Frame, error) {
	meta, err := s.Load(id)
	if err != nil {
		return nil, err
	}

	points, err := readPointsCSV(filepath.Join(s.baseDir, id, "points.csv"), meta.OutDim)
	if err != nil {
		return nil, err
	}
	edges, err := readEdgesCSV(filepath.Join(s.baseDir, id, "edges.csv"))
	if err != nil {
		return nil, err
	}

	return &scene.Frame{
		Points: points,
		Edges:  edges,
		Angles: meta.Angles,
		OutDim: meta.OutDim,
	}, nil
}

// List returns metadata for every stored snapshot, newest first.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	snaps := make([]SnapshotMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Timestamp.After(snaps[j].Timestamp)
	})
	return snaps, nil
}
