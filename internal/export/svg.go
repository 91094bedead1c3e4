package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/stepperanch/projsim/internal/geom"
)

// TrajectorySVG renders the side view of a trajectory (horizontal range
// on the x axis, altitude on the y axis) as an SVG polyline.
func TrajectorySVG(points []geom.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	rangeOf := func(p geom.Point) float64 {
		return math.Hypot(p.X, p.Y)
	}

	minX, maxX := rangeOf(points[0]), rangeOf(points[0])
	minZ, maxZ := points[0].Z, points[0].Z
	for _, p := range points {
		r := rangeOf(p)
		if r < minX {
			minX = r
		}
		if r > maxX {
			maxX = r
		}
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}

	spanX := maxX - minX
	spanZ := maxZ - minZ
	if spanX == 0 {
		spanX = 1
	}
	if spanZ == 0 {
		spanZ = 1
	}

	pad := 10.0
	w := float64(width) - 2*pad
	h := float64(height) - 2*pad

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<polyline fill="none" stroke="%s" stroke-width="1.5" points="`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		px := pad + w*(rangeOf(p)-minX)/spanX
		py := pad + h*(1-(p.Z-minZ)/spanZ) // flip: SVG y grows downward
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
	}

	sb.WriteString("\"/>\n</svg>")
	return sb.String()
}
