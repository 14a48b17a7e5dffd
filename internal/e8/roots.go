package e8

// Dim is the ambient dimension of the E8 lattice.
const Dim = 8

// NumRoots is the number of root vectors: 112 integer + 128 half-integer.
const NumRoots = 240

// WeylOrder is the order of the E8 Weyl group.
const WeylOrder = 696729600

// Root is a single root vector with its stable insertion index.
type Root struct {
	Coords [Dim]float64
	Index  int
}

// RootSystem holds the generated roots plus the structural constants
// of E8. It is built once and never mutated.
type RootSystem struct {
	Roots     []Root
	Dim       int
	Rank      int
	Cartan    [Dim][Dim]int
	WeylOrder int
}

// Generate constructs the full E8 root system.
//
// Integer roots come first, enumerated with i ascending, j>i ascending
// and signs cycling s1 then s2, so roots[0] is (1,1,0,...,0). The 128
// half-integer roots follow, in ascending order of their 8-bit sign
// pattern. Each root's Index equals its position in that sequence.
func Generate() *RootSystem {
	rs := &RootSystem{
		Roots:     make([]Root, 0, NumRoots),
		Dim:       Dim,
		Rank:      Dim,
		Cartan:    cartanMatrix(),
		WeylOrder: WeylOrder,
	}

	signs := [2]float64{1, -1}

	for i := 0; i < Dim; i++ {
		for j := i + 1; j < Dim; j++ {
			for _, s1 := range signs {
				for _, s2 := range signs {
					var r Root
					r.Coords[i] = s1
					r.Coords[j] = s2
					r.Index = len(rs.Roots)
					rs.Roots = append(rs.Roots, r)
				}
			}
		}
	}

	for bits := 0; bits < 1<<Dim; bits++ {
		if popcount(bits)%2 != 0 {
			continue
		}
		var r Root
		for k := 0; k < Dim; k++ {
			if bits&(1<<k) != 0 {
				r.Coords[k] = -0.5
			} else {
				r.Coords[k] = 0.5
			}
		}
		r.Index = len(rs.Roots)
		rs.Roots = append(rs.Roots, r)
	}

	return rs
}

// cartanMatrix returns the fixed 8x8 Cartan matrix attached to the
// root system as metadata: 2 on the diagonal, -1 on the immediate
// off-diagonals.
func cartanMatrix() [Dim][Dim]int {
	var c [Dim][Dim]int
	for i := 0; i < Dim; i++ {
		c[i][i] = 2
		if i > 0 {
			c[i][i-1] = -1
		}
		if i < Dim-1 {
			c[i][i+1] = -1
		}
	}
	return c
}

func popcount(x int) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

// NormSq returns the squared euclidean length of the root. Every E8
// root has NormSq exactly 2.
func (r Root) NormSq() float64 {
	sum := 0.0
	for _, v := range r.Coords {
		sum += v * v
	}
	return sum
}

// IsHalfInteger reports whether the root belongs to the half-integer
// family (all coordinates ±1/2).
func (r Root) IsHalfInteger() bool {
	return r.Coords[0] == 0.5 || r.Coords[0] == -0.5
}

// Points returns the root coordinates as a slice of float64 slices,
// the form the rotation and projection layers consume.
func (rs *RootSystem) Points() [][]float64 {
	pts := make([][]float64, len(rs.Roots))
	for i, r := range rs.Roots {
		p := make([]float64, Dim)
		copy(p, r.Coords[:])
		pts[i] = p
	}
	return pts
}

// CountByFamily returns the number of integer and half-integer roots.
func (rs *RootSystem) CountByFamily() (integer, half int) {
	for _, r := range rs.Roots {
		if r.IsHalfInteger() {
			half++
		} else {
			integer++
		}
	}
	return integer, half
}
