package scene

import (
	"fmt"
	"sort"

	"github.com/san-kum/rootviz/internal/e8"
	"github.com/san-kum/rootviz/internal/geom"
)

// Frame is one rendered-ready snapshot: projected points, their
// proximity edges, and the angle snapshot that produced them.
type Frame struct {
	Points [][]float64
	Edges  []Edge
	Angles []float64
	OutDim int
}

// Scene owns the immutable root system and the mutable per-plane
// angle state the animation driver updates between frames.
type Scene struct {
	roots     *e8.RootSystem
	base      [][]float64
	planes    []geom.Plane
	angles    []float64
	rates     []float64
	proj      geom.Projection
	finder    EdgeFinder
	threshold float64
}

// New creates a scene rotating in the given planes and projecting with
// proj. Angles start at zero; spin rates default to zero.
func New(rs *e8.RootSystem, planes []geom.Plane, proj geom.Projection) *Scene {
	return &Scene{
		roots:     rs,
		base:      rs.Points(),
		planes:    planes,
		angles:    make([]float64, len(planes)),
		rates:     make([]float64, len(planes)),
		proj:      proj,
		finder:    NewBruteForce(),
		threshold: DefaultThreshold,
	}
}

func (s *Scene) Roots() *e8.RootSystem  { return s.roots }
func (s *Scene) Planes() []geom.Plane   { return s.planes }
func (s *Scene) Threshold() float64     { return s.threshold }
func (s *Scene) SetThreshold(t float64) { s.threshold = t }
func (s *Scene) SetFinder(f EdgeFinder) { s.finder = f }

// Angles returns a copy of the current angle state.
func (s *Scene) Angles() []float64 {
	out := make([]float64, len(s.angles))
	copy(out, s.angles)
	return out
}

// SetAngles replaces the angle state; the slice length must match the
// plane count.
func (s *Scene) SetAngles(angles []float64) error {
	if len(angles) != len(s.planes) {
		return fmt.Errorf("%w: got %d angles for %d planes",
			geom.ErrAngleCount, len(angles), len(s.planes))
	}
	copy(s.angles, angles)
	return nil
}

// Rate returns the spin rate (radians per second) of plane k.
func (s *Scene) Rate(k int) float64 { return s.rates[k] }

// SetRate sets the spin rate of plane k.
func (s *Scene) SetRate(k int, radPerSec float64) {
	if k >= 0 && k < len(s.rates) {
		s.rates[k] = radPerSec
	}
}

// Advance integrates the spin rates into the angle state. This is the
// read-modify-store step of the animation driver; the core math below
// it stays a pure function of the resulting snapshot.
func (s *Scene) Advance(dt float64) {
	for k := range s.angles {
		s.angles[k] += s.rates[k] * dt
	}
}

// Reset zeroes all angles.
func (s *Scene) Reset() {
	for k := range s.angles {
		s.angles[k] = 0
	}
}

// Frame snapshots the angles, builds one rotation, rotates and
// projects all roots, and computes adjacency on the projected points.
func (s *Scene) Frame() (*Frame, error) {
	angles := s.Angles()

	rot, err := geom.NewPlaneRotation(s.roots.Dim, s.planes, angles)
	if err != nil {
		return nil, err
	}

	rotated, err := rot.ApplyAll(s.base)
	if err != nil {
		return nil, err
	}

	projected, err := geom.Project(rotated, s.proj)
	if err != nil {
		return nil, err
	}

	return &Frame{
		Points: projected,
		Edges:  s.finder.Edges(projected, s.threshold),
		Angles: angles,
		OutDim: s.proj.OutDim(),
	}, nil
}

// HighDimEdges computes adjacency on the unprojected roots, where the
// nearest-neighbour structure is exact rather than a shadow.
func (s *Scene) HighDimEdges() []Edge {
	return s.finder.Edges(s.base, s.threshold)
}

// PlaneSets names the rotation-plane subsets the CLI exposes. "all"
// spans every C(8,2) pair; the rest pick disjoint planes so their
// spins commute and compose smoothly on screen.
var PlaneSets = map[string][]geom.Plane{
	"all":  geom.AllPlanes(8),
	"quad": {{I: 0, J: 1}, {I: 2, J: 3}, {I: 4, J: 5}, {I: 6, J: 7}},
	"dual": {{I: 0, J: 1}, {I: 4, J: 5}},
	"mix":  {{I: 0, J: 2}, {I: 1, J: 3}, {I: 4, J: 6}, {I: 5, J: 7}},
}

// ListPlaneSets returns the available plane-set names, sorted.
func ListPlaneSets() []string {
	names := make([]string, 0, len(PlaneSets))
	for name := range PlaneSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPlaneSet resolves a named plane set.
func GetPlaneSet(name string) ([]geom.Plane, error) {
	planes, ok := PlaneSets[name]
	if !ok {
		return nil, fmt.Errorf("unknown plane set: %s (available: %v)", name, ListPlaneSets())
	}
	return planes, nil
}
