// Package geom provides the linear algebra used to display
// high-dimensional point sets: dense square matrices, rotation
// operators composed from per-plane elementary rotations, and linear
// projections down to 2 or 3 display dimensions.
//
// One convention holds everywhere: matrices act on column vectors, so
// Apply(p)[i] = sum_j M[i][j]*p[j], and rotations compose by
// left-multiplying the accumulator in canonical plane order.
package geom
