package render

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Point is a 2D coordinate in layer space.
type Point struct {
	X, Y float64
}

// NewLayer creates a fully transparent w×h drawing surface.
func NewLayer(w, h int) *gg.Context {
	return gg.NewContext(w, h)
}

// FillPolygon fills the closed polygon described by pts.
func FillPolygon(dc *gg.Context, pts []Point, c color.NRGBA) {
	tracePolygon(dc, pts)
	dc.SetColor(c)
	dc.Fill()
}

// StrokePolygon outlines the closed polygon described by pts.
func StrokePolygon(dc *gg.Context, pts []Point, width float64, c color.NRGBA) {
	tracePolygon(dc, pts)
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.Stroke()
}

// FillCircle fills a circle of the given radius centered at (cx, cy).
func FillCircle(dc *gg.Context, cx, cy, r float64, c color.NRGBA) {
	dc.DrawCircle(cx, cy, r)
	dc.SetColor(c)
	dc.Fill()
}

// StrokeLine draws a straight line segment of the given width.
func StrokeLine(dc *gg.Context, x1, y1, x2, y2, width float64, c color.NRGBA) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

func tracePolygon(dc *gg.Context, pts []Point) {
	if len(pts) == 0 {
		return
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}
