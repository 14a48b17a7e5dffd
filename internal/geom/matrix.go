package geom

import "fmt"

// Matrix is a dense square matrix, row-major.
type Matrix [][]float64

// Identity returns the n-by-n identity matrix.
func Identity(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

// Size returns the dimension of the square matrix.
func (m Matrix) Size() int { return len(m) }

// Mul returns the product m*other via the standard triple loop.
func (m Matrix) Mul(other Matrix) Matrix {
	n := len(m)
	out := make(Matrix, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Transpose returns a new transposed matrix.
func (m Matrix) Transpose() Matrix {
	n := len(m)
	out := make(Matrix, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Apply transforms a point as a column vector: out[i] = sum_j m[i][j]*p[j].
func (m Matrix) Apply(p []float64) ([]float64, error) {
	n := len(m)
	if len(p) != n {
		return nil, fmt.Errorf("%w: point has %d coordinates, matrix is %dx%d",
			ErrDimensionMismatch, len(p), n, n)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += m[i][j] * p[j]
		}
		out[i] = sum
	}
	return out, nil
}

// ApplyAll transforms a batch of points; the batch is rejected whole
// if any point has the wrong dimension.
func (m Matrix) ApplyAll(points [][]float64) ([][]float64, error) {
	n := len(m)
	for i, p := range points {
		if len(p) != n {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, matrix is %dx%d",
				ErrDimensionMismatch, i, len(p), n, n)
		}
	}
	out := make([][]float64, len(points))
	for i, p := range points {
		q, _ := m.Apply(p)
		out[i] = q
	}
	return out, nil
}

// MaxDeviationFromIdentity returns the largest absolute difference
// between m and the identity, used to check orthogonality via m^T*m.
func (m Matrix) MaxDeviationFromIdentity() float64 {
	max := 0.0
	for i := range m {
		for j := range m[i] {
			want := 0.0
			if i == j {
				want = 1.0
			}
			d := m[i][j] - want
			if d < 0 {
				d = -d
			}
			if d > max {
				max = d
			}
		}
	}
	return max
}
