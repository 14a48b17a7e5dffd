package geom

import "fmt"

// Projection is an n-by-m linear map (m = 2 or 3) from the ambient
// space to display coordinates, stored row-major: Rows() input
// dimensions by OutDim() output dimensions. It is an arbitrary linear
// map, neither orthogonal nor norm-preserving.
type Projection [][]float64

// Rows returns the input dimension.
func (p Projection) Rows() int { return len(p) }

// OutDim returns the output (display) dimension.
func (p Projection) OutDim() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Default projections for 8-dimensional input. The entries are fixed
// constants chosen to spread the shadow of the root system visually;
// they carry no algebraic meaning.
var (
	Default8to2 = Projection{
		{0.80, 0.10},
		{0.40, 0.35},
		{0.15, 0.60},
		{-0.10, 0.80},
		{-0.35, 0.55},
		{-0.60, 0.25},
		{-0.75, -0.15},
		{0.25, -0.50},
	}

	Default8to3 = Projection{
		{0.80, 0.10, 0.05},
		{0.40, 0.35, -0.30},
		{0.15, 0.60, 0.25},
		{-0.10, 0.80, -0.10},
		{-0.35, 0.55, 0.45},
		{-0.60, 0.25, -0.45},
		{-0.75, -0.15, 0.30},
		{0.25, -0.50, -0.60},
	}
)

// Default returns the package default 8-to-m projection.
func Default(outDim int) (Projection, error) {
	switch outDim {
	case 2:
		return Default8to2, nil
	case 3:
		return Default8to3, nil
	default:
		return nil, fmt.Errorf("geom: no default projection to %d dimensions", outDim)
	}
}

// Project maps each point down to OutDim coordinates:
// out[d] = sum_j p[j] * proj[j][d]. The batch is rejected whole on the
// first dimension mismatch; no partial result is returned.
func Project(points [][]float64, proj Projection) ([][]float64, error) {
	n, m := proj.Rows(), proj.OutDim()
	for i, p := range points {
		if len(p) != n {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, projection expects %d",
				ErrDimensionMismatch, i, len(p), n)
		}
	}
	out := make([][]float64, len(points))
	for i, p := range points {
		q := make([]float64, m)
		for d := 0; d < m; d++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += p[j] * proj[j][d]
			}
			q[d] = sum
		}
		out[i] = q
	}
	return out, nil
}
