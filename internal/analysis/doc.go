// Package analysis computes summary statistics over point sets for
// the analyze command: the pairwise-distance spectrum (which for the
// 8D roots collapses onto a handful of exact algebraic values) and the
// edge-count-versus-threshold sweep used to tune adjacency.
package analysis
