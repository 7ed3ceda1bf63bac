package icon

import (
	"image"

	"github.com/lumos-dev/icongen/internal/render"
)

// Design holds the numeric parameters of one icon rendition. All lengths are
// in pixels of the target canvas.
type Design struct {
	Size int // square canvas edge

	HexRadius    float64 // hexagon circumradius
	OutlineWidth float64 // hexagon outline stroke width

	BeamGap    float64 // gap between hexagon edge and beam start
	BeamLength float64 // beam extent beyond the hexagon radius
	BeamWidth  float64 // beam stroke width
	DotRadius  float64 // accent dot at each beam tip

	CoreRadius      float64 // solid bright center circle
	CoreGlowRadius  float64 // soft glow around the core
	InnerGlowRadius float64 // glow inside the hexagon
	OuterGlowRadius float64 // background glow behind everything

	BlurRadius float64 // Gaussian radius of the luminous underlay
}

// Master is the 128×128 rendition used as the extension icon and as the
// source for the downscaled 64 and 32 pixel variants.
func Master() Design {
	return Design{
		Size:            128,
		HexRadius:       32,
		OutlineWidth:    2,
		BeamGap:         2,
		BeamLength:      50,
		BeamWidth:       2,
		DotRadius:       2,
		CoreRadius:      8,
		CoreGlowRadius:  18,
		InnerGlowRadius: 35,
		OuterGlowRadius: 70,
		BlurRadius:      1.5,
	}
}

// Large is the 512×512 branding rendition. Not a straight 4x scale of
// Master: outline, beams and blur are tuned independently for the higher
// resolution.
func Large() Design {
	return Design{
		Size:            512,
		HexRadius:       128,
		OutlineWidth:    6,
		BeamGap:         4,
		BeamLength:      200,
		BeamWidth:       6,
		DotRadius:       6,
		CoreRadius:      32,
		CoreGlowRadius:  72,
		InnerGlowRadius: 140,
		OuterGlowRadius: 280,
		BlurRadius:      4,
	}
}

// Render draws the full icon for the given design. Layers are composited in
// a fixed order: background, outer glow, hexagon (fill, inner glow,
// outline), beams, core with its glow, accent dots. The finished composite
// is then laid over a Gaussian-blurred copy of itself so the sharp geometry
// keeps a luminous halo.
func Render(d Design) *image.NRGBA {
	w, h := d.Size, d.Size
	cx, cy := float64(d.Size)/2, float64(d.Size)/2
	center := image.Pt(d.Size/2, d.Size/2)

	canvas := render.NewCanvas(w, h, background)

	outerGlow := render.RadialGradient(w, h, center, outerGlowInner, transparent, d.OuterGlowRadius)
	canvas = render.Composite(canvas, outerGlow)

	canvas = render.Composite(canvas, hexagonLayer(d, cx, cy))
	canvas = render.Composite(canvas, beamLayer(d, cx, cy))
	canvas = render.Composite(canvas, coreLayer(d, center, cx, cy))
	canvas = render.Composite(canvas, dotLayer(d, cx, cy))

	// Sharp geometry over its own blur.
	return render.Composite(render.Blur(canvas, d.BlurRadius), canvas)
}

// hexagonLayer fills the hexagon, lays the inner glow over the fill, then
// strokes the outline so it stays crisp above the glow.
func hexagonLayer(d Design, cx, cy float64) image.Image {
	pts := HexagonVertices(cx, cy, d.HexRadius)

	dc := render.NewLayer(d.Size, d.Size)
	render.FillPolygon(dc, pts, hexFill)

	innerGlow := render.RadialGradient(d.Size, d.Size, image.Pt(d.Size/2, d.Size/2),
		innerGlowInner, transparent, d.InnerGlowRadius)
	layer := render.Composite(dc.Image(), innerGlow)

	outline := render.NewLayer(d.Size, d.Size)
	render.StrokePolygon(outline, pts, d.OutlineWidth, hexOutline)
	return render.Composite(layer, outline.Image())
}

func beamLayer(d Design, cx, cy float64) image.Image {
	dc := render.NewLayer(d.Size, d.Size)
	for i := 0; i < 6; i++ {
		x1, y1, x2, y2 := beamSegment(cx, cy, d.HexRadius, d.BeamGap, d.BeamLength, i)
		render.StrokeLine(dc, x1, y1, x2, y2, d.BeamWidth, beamColor)
	}
	return dc.Image()
}

func coreLayer(d Design, center image.Point, cx, cy float64) image.Image {
	dc := render.NewLayer(d.Size, d.Size)
	render.FillCircle(dc, cx, cy, d.CoreRadius, coreFill)

	glow := render.RadialGradient(d.Size, d.Size, center, coreGlowInner, transparent, d.CoreGlowRadius)
	return render.Composite(dc.Image(), glow)
}

func dotLayer(d Design, cx, cy float64) image.Image {
	dc := render.NewLayer(d.Size, d.Size)
	for i := 0; i < 6; i++ {
		_, _, x, y := beamSegment(cx, cy, d.HexRadius, d.BeamGap, d.BeamLength, i)
		render.FillCircle(dc, x, y, d.DotRadius, dotColor)
	}
	return dc.Image()
}
