package icon

import (
	"math"

	"github.com/lumos-dev/icongen/internal/render"
)

// vertexAngle returns the angle of hexagon vertex i. Vertices sit at 60°
// steps, rotated back 30° so one vertex points straight up.
func vertexAngle(i int) float64 {
	return math.Pi/3*float64(i) - math.Pi/6
}

// HexagonVertices returns the six vertices of a pointy-top hexagon with the
// given center and circumradius, in drawing order.
func HexagonVertices(cx, cy, radius float64) []render.Point {
	pts := make([]render.Point, 6)
	for i := range pts {
		a := vertexAngle(i)
		pts[i] = render.Point{
			X: cx + radius*math.Cos(a),
			Y: cy + radius*math.Sin(a),
		}
	}
	return pts
}

// beamSegment returns the endpoints of beam i, running from just outside the
// hexagon edge (hexRadius+gap) out to hexRadius+length along the vertex angle.
func beamSegment(cx, cy, hexRadius, gap, length float64, i int) (x1, y1, x2, y2 float64) {
	a := vertexAngle(i)
	x1 = cx + (hexRadius+gap)*math.Cos(a)
	y1 = cy + (hexRadius+gap)*math.Sin(a)
	x2 = cx + (hexRadius+length)*math.Cos(a)
	y2 = cy + (hexRadius+length)*math.Sin(a)
	return
}
