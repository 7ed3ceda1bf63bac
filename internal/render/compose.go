package render

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// NewCanvas allocates a w×h image filled with a uniform color.
func NewCanvas(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

// Composite alpha-blends src over dst at full opacity and returns the result.
// Both images must share the same dimensions.
func Composite(dst, src image.Image) *image.NRGBA {
	return imaging.Overlay(dst, src, image.Point{}, 1.0)
}

// Blur returns a Gaussian-blurred copy of img. The radius is in pixels;
// dimensions are preserved.
func Blur(img image.Image, radius float64) image.Image {
	return blur.Gaussian(img, radius)
}

// Fit resizes img to a size×size square using Lanczos resampling.
func Fit(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}
