package nightfall

import colorful "github.com/lucasb-eyer/go-colorful"

// Scene palette. Base hues are defined once here; the draw passes derive
// their gradients and glows from these via perceptual blending so that
// brightness ramps stay smooth instead of dipping through muddy RGB
// midpoints.

var (
	skyZenith  = colorful.Color{R: 0.016, G: 0.008, B: 0.090}
	skyHorizon = colorful.Color{R: 0.165, G: 0.055, B: 0.235}
	skyGlow    = colorful.Color{R: 0.310, G: 0.090, B: 0.180}

	buildingDark  = colorful.Color{R: 0.035, G: 0.030, B: 0.070}
	buildingLight = colorful.Color{R: 0.110, G: 0.095, B: 0.190}

	windowLit  = Color{R: 1.0, G: 0.85, B: 0.45, A: 1}
	windowDim  = Color{R: 0.45, G: 0.55, B: 0.85, A: 1}
	billboardC = Color{R: 0.2, G: 0.95, B: 1.0, A: 1}

	shockwaveC = Color{R: 1.0, G: 0.55, B: 0.15, A: 1}
	arenaGrid  = Color{R: 0.95, G: 0.25, B: 0.75, A: 1}
	arenaTitle = Color{R: 1.0, G: 0.9, B: 0.5, A: 1}
	heroGlow   = Color{R: 0.45, G: 0.85, B: 1.0, A: 1}
	heroBody   = Color{R: 0.04, G: 0.06, B: 0.12, A: 1}
	ballGlow   = Color{R: 1.0, G: 0.95, B: 0.6, A: 1}
	energyC    = Color{R: 0.3, G: 1.0, B: 0.8, A: 1}
	finaleC    = Color{R: 1.0, G: 0.95, B: 0.8, A: 1}
)

// skyRamp returns the sky color at normalized height t (0 = top of frame,
// 1 = horizon), blended in Luv space across three stops.
func skyRamp(t float64) Color {
	var c colorful.Color
	switch {
	case t < 0.6:
		c = skyZenith.BlendLuv(skyHorizon, t/0.6)
	default:
		c = skyHorizon.BlendLuv(skyGlow, (t-0.6)/0.4)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// buildingRamp returns the facade color at normalized height t (0 = roof,
// 1 = street level).
func buildingRamp(t float64) Color {
	c := buildingLight.BlendLuv(buildingDark, t)
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// portalHue returns the ring color of portal i. Hues are spaced around a
// violet-to-teal arc so the four portals read as distinct at a glance.
func portalHue(i int) Color {
	h := 265 - float64(i)*32
	c := colorful.Hsv(h, 0.75, 1.0)
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// monsterHue returns the body color of antagonist i: three distinct hues in
// the red-green-violet corners of the wheel.
func monsterHue(i int) Color {
	hues := [...]float64{8, 130, 285}
	c := colorful.Hsv(hues[i%len(hues)], 0.85, 0.9)
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// markerHue returns the timeline dot color for beat i of n, ramped through
// HCL space from cool to hot as the narrative escalates.
func markerHue(i, n int) Color {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	cool := colorful.Hcl(250, 0.5, 0.7)
	hot := colorful.Hcl(20, 0.75, 0.75)
	c := cool.BlendHcl(hot, t).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}
