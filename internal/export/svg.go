// Package export writes projected frames to SVG, CSV and JSON.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/rootviz/internal/scene"
)

// FrameToSVG renders a frame as vector graphics: edges as lines,
// points as circles. 3D frames are flattened by dropping the depth
// coordinate; callers wanting a specific viewpoint should bake it into
// the projection instead.
func FrameToSVG(f *scene.Frame, size float64) string {
	if f == nil || len(f.Points) == 0 {
		return ""
	}

	minX, maxX := f.Points[0][0], f.Points[0][0]
	minY, maxY := f.Points[0][1], f.Points[0][1]
	for _, p := range f.Points {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	margin := size * 0.05
	sx := func(x float64) float64 { return margin + (x-minX)/spanX*(size-2*margin) }
	sy := func(y float64) float64 { return size - margin - (y-minY)/spanY*(size-2*margin) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	sb.WriteString(`<g stroke="#00cc00" stroke-width="0.4" stroke-opacity="0.5">` + "\n")
	for _, e := range f.Edges {
		a, b := f.Points[e.A], f.Points[e.B]
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
			sx(a[0]), sy(a[1]), sx(b[0]), sy(b[1])))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g fill="#00ff00">` + "\n")
	for _, p := range f.Points {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="1.6"/>`+"\n", sx(p[0]), sy(p[1])))
	}
	sb.WriteString("</g>\n</svg>\n")

	return sb.String()
}
