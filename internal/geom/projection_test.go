package geom

import (
	"errors"
	"math"
	"testing"
)

func TestProjectLinearity(t *testing.T) {
	a := []float64{1, 1, 0, 0, 0, 0, 0, 0}
	b := []float64{0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5}
	sum := make([]float64, 8)
	for i := range sum {
		sum[i] = a[i] + b[i]
	}

	pa, err := Project([][]float64{a}, Default8to3)
	if err != nil {
		t.Fatal(err)
	}
	pb, err := Project([][]float64{b}, Default8to3)
	if err != nil {
		t.Fatal(err)
	}
	psum, err := Project([][]float64{sum}, Default8to3)
	if err != nil {
		t.Fatal(err)
	}

	for d := 0; d < 3; d++ {
		if math.Abs(pa[0][d]+pb[0][d]-psum[0][d]) > 1e-12 {
			t.Errorf("dim %d: project(a)+project(b)=%.12f, project(a+b)=%.12f",
				d, pa[0][d]+pb[0][d], psum[0][d])
		}
	}
}

func TestProjectDimensions(t *testing.T) {
	points := [][]float64{{1, 0, 0, 0, 0, 0, 0, 0}}

	p2, err := Project(points, Default8to2)
	if err != nil {
		t.Fatal(err)
	}
	if len(p2[0]) != 2 {
		t.Errorf("expected 2D output, got %d", len(p2[0]))
	}

	p3, err := Project(points, Default8to3)
	if err != nil {
		t.Fatal(err)
	}
	if len(p3[0]) != 3 {
		t.Errorf("expected 3D output, got %d", len(p3[0]))
	}
}

func TestProjectMismatch(t *testing.T) {
	_, err := Project([][]float64{{1, 2, 3}}, Default8to2)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}

	// A batch with one bad point returns no partial result.
	good := make([]float64, 8)
	out, err := Project([][]float64{good, {1, 2}}, Default8to2)
	if err == nil || out != nil {
		t.Error("expected whole-batch rejection")
	}
}

func TestDefaultProjectionLookup(t *testing.T) {
	for _, m := range []int{2, 3} {
		p, err := Default(m)
		if err != nil {
			t.Fatal(err)
		}
		if p.Rows() != 8 || p.OutDim() != m {
			t.Errorf("Default(%d): got %dx%d", m, p.Rows(), p.OutDim())
		}
	}
	if _, err := Default(4); err == nil {
		t.Error("expected error for unsupported output dimension")
	}
}

func TestZeroRotationRoundTrip(t *testing.T) {
	points := [][]float64{
		{1, 1, 0, 0, 0, 0, 0, 0},
		{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
	}

	rot, err := NewRotation(8, make([]float64, NumPlanes(8)))
	if err != nil {
		t.Fatal(err)
	}
	rotated, err := rot.ApplyAll(points)
	if err != nil {
		t.Fatal(err)
	}

	direct, err := Project(points, Default8to3)
	if err != nil {
		t.Fatal(err)
	}
	viaRotation, err := Project(rotated, Default8to3)
	if err != nil {
		t.Fatal(err)
	}

	for i := range direct {
		for d := range direct[i] {
			if math.Abs(direct[i][d]-viaRotation[i][d]) > 1e-9 {
				t.Errorf("point %d dim %d: direct %.12f vs via zero rotation %.12f",
					i, d, direct[i][d], viaRotation[i][d])
			}
		}
	}
}

func BenchmarkProject240to3(b *testing.B) {
	points := make([][]float64, 240)
	for i := range points {
		points[i] = make([]float64, 8)
		points[i][i%8] = 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Project(points, Default8to3); err != nil {
			b.Fatal(err)
		}
	}
}
