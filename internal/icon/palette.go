package icon

import "image/color"

// Palette. Deep purple base with purple-to-magenta glows and orange accents.
var (
	background = color.NRGBA{20, 15, 35, 255}

	outerGlowInner = color.NRGBA{120, 100, 255, 200}
	innerGlowInner = color.NRGBA{160, 140, 255, 255}

	hexFill    = color.NRGBA{80, 70, 150, 255}
	hexOutline = color.NRGBA{200, 180, 255, 255}

	beamColor = color.NRGBA{255, 160, 100, 180}
	dotColor  = color.NRGBA{255, 180, 120, 200}

	coreFill      = color.NRGBA{255, 240, 255, 255}
	coreGlowInner = color.NRGBA{255, 220, 255, 255}

	// Glow gradients all fade to full transparency.
	transparent = color.NRGBA{0, 0, 0, 0}
)
