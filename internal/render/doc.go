// Package render provides the raster primitives the icon generator is built
// from: radial gradients, vector shape layers, alpha compositing, Gaussian
// blur, and high-quality resizing.
//
// All functions are pure: they take images (or draw onto a freshly created
// layer) and return new images, never mutating their inputs. Rendering the
// same inputs twice produces pixel-identical output.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner, X
// increasing rightward and Y increasing downward. Shape coordinates are
// floating point; gg rasterizes them with antialiasing.
//
// # Layers and Compositing
//
// A layer starts fully transparent (NewLayer). Shapes are drawn onto it and
// the finished layer is merged over a base image with Composite, which
// performs a standard source-over alpha blend at full opacity.
//
// # Color Representation
//
// Colors are color.NRGBA (non-premultiplied 8-bit RGBA). Gradient
// interpolation happens in RGB via go-colorful with alpha interpolated
// linearly alongside.
package render
