package viz

import "github.com/san-kum/rootviz/internal/scene"

// RenderFrame draws a projected frame onto the canvas: every
// adjacency edge as a line, every point as a lit dot. Points outside
// the viewport clip at the canvas edge.
func RenderFrame(c *Canvas, f *scene.Frame, cam *Camera) {
	if c == nil || f == nil {
		return
	}
	pw, ph := c.PixelWidth(), c.PixelHeight()

	type screenPt struct {
		x, y int
		ok   bool
	}
	pts := make([]screenPt, len(f.Points))
	for i, p := range f.Points {
		x, y, ok := cam.Screen(p, pw, ph)
		pts[i] = screenPt{x, y, ok}
	}

	for _, e := range f.Edges {
		a, b := pts[e.A], pts[e.B]
		if a.ok || b.ok {
			c.Line(a.x, a.y, b.x, b.y)
		}
	}
	for _, p := range pts {
		if p.ok {
			c.Set(p.x, p.y)
		}
	}
}
