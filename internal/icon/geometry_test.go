package icon

import (
	"math"
	"testing"
)

func TestHexagonVertices_Count(t *testing.T) {
	pts := HexagonVertices(64, 64, 32)
	if len(pts) != 6 {
		t.Fatalf("vertex count: got %d, want 6", len(pts))
	}
}

func TestHexagonVertices_OnCircumcircle(t *testing.T) {
	const radius = 32.0
	pts := HexagonVertices(64, 64, radius)

	for i, p := range pts {
		d := math.Hypot(p.X-64, p.Y-64)
		if math.Abs(d-radius) > 1e-9 {
			t.Errorf("vertex %d: distance %f from center, want %f", i, d, radius)
		}
	}
}

func TestHexagonVertices_Rotation(t *testing.T) {
	// The first vertex sits at -30 degrees; the last points straight up
	// (y grows downward, so 270 degrees is the top of the canvas).
	pts := HexagonVertices(0, 0, 1)

	wantX := math.Cos(-math.Pi / 6)
	wantY := math.Sin(-math.Pi / 6)
	if math.Abs(pts[0].X-wantX) > 1e-9 || math.Abs(pts[0].Y-wantY) > 1e-9 {
		t.Errorf("first vertex: got (%f,%f), want (%f,%f)", pts[0].X, pts[0].Y, wantX, wantY)
	}
}

func TestHexagonVertices_EvenSpacing(t *testing.T) {
	pts := HexagonVertices(0, 0, 10)

	// All edges of a regular hexagon equal the circumradius.
	for i := range pts {
		next := pts[(i+1)%6]
		edge := math.Hypot(next.X-pts[i].X, next.Y-pts[i].Y)
		if math.Abs(edge-10) > 1e-9 {
			t.Errorf("edge %d: length %f, want 10", i, edge)
		}
	}
}

func TestBeamSegment_Extent(t *testing.T) {
	const (
		hexRadius = 32.0
		gap       = 2.0
		length    = 50.0
	)

	for i := 0; i < 6; i++ {
		x1, y1, x2, y2 := beamSegment(64, 64, hexRadius, gap, length, i)

		d1 := math.Hypot(x1-64, y1-64)
		d2 := math.Hypot(x2-64, y2-64)
		if math.Abs(d1-(hexRadius+gap)) > 1e-9 {
			t.Errorf("beam %d start: distance %f, want %f", i, d1, hexRadius+gap)
		}
		if math.Abs(d2-(hexRadius+length)) > 1e-9 {
			t.Errorf("beam %d end: distance %f, want %f", i, d2, hexRadius+length)
		}
	}
}

func TestBeamSegment_AlignedWithVertices(t *testing.T) {
	pts := HexagonVertices(64, 64, 32)

	for i := 0; i < 6; i++ {
		x1, y1, _, _ := beamSegment(64, 64, 32, 0, 50, i)
		// With zero gap the beam starts exactly at the vertex.
		if math.Abs(x1-pts[i].X) > 1e-9 || math.Abs(y1-pts[i].Y) > 1e-9 {
			t.Errorf("beam %d start (%f,%f) not at vertex (%f,%f)", i, x1, y1, pts[i].X, pts[i].Y)
		}
	}
}
