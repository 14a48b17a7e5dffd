package geom

import (
	"fmt"
	"math"
)

// Plane is an unordered pair of coordinate axes spanning a 2D subspace
// in which an elementary rotation acts.
type Plane struct {
	I, J int
}

// AllPlanes enumerates every axis pair of an n-dimensional space in
// canonical order: i ascending, then j>i ascending. Rotation
// composition is order-sensitive, so this enumeration is part of the
// contract, not an implementation detail.
func AllPlanes(n int) []Plane {
	planes := make([]Plane, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			planes = append(planes, Plane{i, j})
		}
	}
	return planes
}

// NumPlanes returns C(n,2), the angle count NewRotation expects.
func NumPlanes(n int) int { return n * (n - 1) / 2 }

// elementary returns the n-by-n rotation that is identity except in
// rows/columns i and j, where it embeds a 2D rotation by theta.
func elementary(n, i, j int, theta float64) Matrix {
	m := Identity(n)
	c, s := math.Cos(theta), math.Sin(theta)
	m[i][i] = c
	m[i][j] = -s
	m[j][i] = s
	m[j][j] = c
	return m
}

// NewRotation builds an n-dimensional rotation from one angle per axis
// pair, composing elementary rotations over AllPlanes(n) in order.
// Zero angles are skipped since their elementary rotation is identity.
// The angle slice must have exactly C(n,2) entries.
func NewRotation(n int, angles []float64) (Matrix, error) {
	if len(angles) != NumPlanes(n) {
		return nil, fmt.Errorf("%w: got %d angles, need %d for dim %d",
			ErrAngleCount, len(angles), NumPlanes(n), n)
	}
	return compose(n, AllPlanes(n), angles)
}

// NewPlaneRotation builds a rotation over a caller-supplied plane
// list, one angle per plane, for callers exposing only a subset of the
// rotation degrees of freedom.
func NewPlaneRotation(n int, planes []Plane, angles []float64) (Matrix, error) {
	if len(angles) != len(planes) {
		return nil, fmt.Errorf("%w: got %d angles for %d planes",
			ErrAngleCount, len(angles), len(planes))
	}
	for _, p := range planes {
		if p.I < 0 || p.I >= n || p.J < 0 || p.J >= n || p.I == p.J {
			return nil, fmt.Errorf("%w: plane (%d,%d) in dim %d", ErrPlaneRange, p.I, p.J, n)
		}
	}
	return compose(n, planes, angles)
}

func compose(n int, planes []Plane, angles []float64) (Matrix, error) {
	acc := Identity(n)
	for k, p := range planes {
		if angles[k] == 0 {
			continue
		}
		acc = elementary(n, p.I, p.J, angles[k]).Mul(acc)
	}
	return acc, nil
}
