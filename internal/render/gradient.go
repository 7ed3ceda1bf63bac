package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RadialGradient renders a w×h layer whose color fades from inner at the
// center point to outer at distance radius. Pixels beyond radius are set to
// the outer color, so a fully transparent outer stop yields a layer that is
// transparent outside the glow.
//
// Parameters:
//   - w, h: layer dimensions in pixels.
//   - center: gradient origin.
//   - inner: color at distance 0.
//   - outer: color at distance >= radius.
//   - radius: falloff distance in pixels. Must be > 0.
//
// RGB components are interpolated with go-colorful's RGB blend; alpha is
// interpolated linearly over the same parameter.
func RadialGradient(w, h int, center image.Point, inner, outer color.NRGBA, radius float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	innerC := colorful.Color{R: float64(inner.R) / 255, G: float64(inner.G) / 255, B: float64(inner.B) / 255}
	outerC := colorful.Color{R: float64(outer.R) / 255, G: float64(outer.G) / 255, B: float64(outer.B) / 255}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x - center.X)
			dy := float64(y - center.Y)
			t := math.Sqrt(dx*dx+dy*dy) / radius
			if t > 1 {
				t = 1
			}

			blended := innerC.BlendRgb(outerC, t)
			r8, g8, b8 := blended.RGB255()
			a8 := uint8(math.Round(float64(inner.A)*(1-t) + float64(outer.A)*t))

			img.SetNRGBA(x, y, color.NRGBA{R: r8, G: g8, B: b8, A: a8})
		}
	}

	return img
}
