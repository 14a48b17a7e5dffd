// Package scene assembles display frames from the static root system:
// it snapshots the caller-owned angle state, builds one rotation
// matrix, rotates every root, projects the result to display
// coordinates and computes a proximity edge list for line drawing.
//
// A Frame is computed atomically from a single angle snapshot, so a
// renderer never sees half of one update and half of another. Scene
// instances are NOT safe for concurrent use; drive one from a single
// animation loop.
package scene
