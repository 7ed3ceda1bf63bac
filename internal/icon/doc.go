// Package icon renders the lumos hexagon icon: a pointy-top hexagon inside a
// radial glow, six radiating beams with accent dots at their tips, and a
// bright central core, finished with a soft blurred underlay.
//
// The design exists in two hand-tuned renditions, Master (128×128, the
// VSCode extension icon) and Large (512×512, branding), which share the same
// palette and layer order but carry independently scaled geometry. Smaller
// variants are derived from the master by Lanczos downscaling rather than
// re-rendering.
//
// Rendering is deterministic: the layer sequence, colors, radii, and angles
// are fixed constants, so the same Design always produces the same pixels.
package icon
