package viz

import "math"

// Camera turns projected 3D display coordinates into canvas
// sub-pixels: an extra viewing rotation (user-controlled, separate
// from the 8D scene rotation), perspective division, and scaling.
type Camera struct {
	Distance         float64
	Zoom             float64
	RotX, RotY, RotZ float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 12, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(8, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(x, y, z float64) (float64, float64, float64) {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	y, z = y*cx-z*sx, y*sx+z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	x, z = x*cy+z*sy, -x*sy+z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	x, y = x*cz-y*sz, x*sz+y*cz
	return x, y, z
}

// Screen maps a 2D or 3D display point to sub-pixel coordinates on a
// canvas of the given pixel size. 2D points skip the camera entirely.
func (c *Camera) Screen(p []float64, pw, ph int) (int, int, bool) {
	min := float64(ph)
	if float64(pw) < min {
		min = float64(pw)
	}
	// Root projections land roughly in [-3, 3]; fill the short axis.
	unit := min / 6.5

	if len(p) == 2 {
		x := int(p[0]*unit*c.Zoom) + pw/2
		y := int(-p[1]*unit*c.Zoom) + ph/2
		return x, y, x >= 0 && x < pw && y >= 0 && y < ph
	}

	x, y, z := c.rotate(p[0], p[1], p[2])
	x, y, z = x*c.Zoom, y*c.Zoom, z*c.Zoom
	if z >= c.Distance-0.1 {
		return 0, 0, false
	}
	persp := c.Distance / (c.Distance - z)
	sx := int(x*persp*unit) + pw/2
	sy := int(-y*persp*unit) + ph/2
	return sx, sy, sx >= 0 && sx < pw && sy >= 0 && sy < ph
}
