// Package e8 generates the E8 root system: the 240 vectors of squared
// length 2 in R^8 that characterize the largest exceptional simple Lie
// algebra's symmetry.
//
// The set splits into two families:
//
//   - 112 integer roots: all permutations of (±1, ±1, 0, ..., 0)
//   - 128 half-integer roots: (±1/2, ..., ±1/2) with an even number
//     of minus signs
//
// Generation is deterministic and allocation is done once; the
// resulting [RootSystem] is treated as immutable by every consumer.
package e8
