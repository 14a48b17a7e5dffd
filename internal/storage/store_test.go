package storage

import (
	"math"
	"testing"

	"github.com/san-kum/rootviz/internal/e8"
	"github.com/san-kum/rootviz/internal/geom"
	"github.com/san-kum/rootviz/internal/scene"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	sc := scene.New(e8.Generate(), scene.PlaneSets["quad"], geom.Default8to3)
	if err := sc.SetAngles([]float64{0.5, -0.3, 1.2, 0.0}); err != nil {
		t.Fatal(err)
	}
	f, err := sc.Frame()
	if err != nil {
		t.Fatal(err)
	}

	id, err := st.Save("quad", sc.Threshold(), f)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.PlaneSet != "quad" || meta.NumPoints != e8.NumRoots {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Angles[0] != 0.5 {
		t.Errorf("angles not persisted: %v", meta.Angles)
	}

	loaded, err := st.LoadFrame(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Points) != len(f.Points) {
		t.Fatalf("point count mismatch: %d vs %d", len(loaded.Points), len(f.Points))
	}
	for i := range f.Points {
		for d := range f.Points[i] {
			// CSV stores 6 decimal places.
			if math.Abs(loaded.Points[i][d]-f.Points[i][d]) > 1e-5 {
				t.Fatalf("point %d dim %d: %.8f vs %.8f", i, d, loaded.Points[i][d], f.Points[i][d])
			}
		}
	}
	if len(loaded.Edges) != len(f.Edges) {
		t.Errorf("edge count mismatch: %d vs %d", len(loaded.Edges), len(f.Edges))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	snaps, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 0 {
		t.Fatalf("expected empty store, got %d snapshots", len(snaps))
	}

	sc := scene.New(e8.Generate(), scene.PlaneSets["dual"], geom.Default8to2)
	f, err := sc.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save("dual", scene.DefaultThreshold, f); err != nil {
		t.Fatal(err)
	}

	snaps, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps))
	}
	if snaps[0].OutDim != 2 {
		t.Errorf("expected 2D snapshot, got %dD", snaps[0].OutDim)
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing snapshot")
	}
}
