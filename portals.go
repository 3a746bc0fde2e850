package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// portalSpot is a fixed portal placement plus its appearance delay within
// the portal window and the name shown beneath the silhouette.
type portalSpot struct {
	x, y  float64 // normalized center
	delay float64 // seconds after portalStart before this portal opens
	label string
}

var portalSpots = [...]portalSpot{
	{x: 0.16, y: 0.52, delay: 0.0, label: "RONALDO"},
	{x: 0.38, y: 0.46, delay: 1.5, label: "MESSI"},
	{x: 0.62, y: 0.46, delay: 3.0, label: "MBAPPÉ"},
	{x: 0.84, y: 0.52, delay: 4.5, label: "NEYMAR"},
}

// portalReveal returns how far portal i has opened at loop time t, in
// [0, 1], honoring the per-portal delay. Inactive outside the window.
func portalReveal(t float64, i int) (float64, bool) {
	p, active := windowProgress(t, portalStart+portalSpots[i].delay, portalEnd)
	if !active {
		return 0, false
	}
	// Each portal pops open over its first two seconds, then holds.
	window := portalEnd - portalStart - portalSpots[i].delay
	return easeOutCubic(clamp01(p * window / 2)), true
}

// drawPortals renders the four summoning rings with rotating inner swirls,
// an arriving silhouette, and a label beneath each. Additive blending
// throughout so overlapping portals brighten. Active 18-31s.
func (r *Renderer) drawPortals(dst *ebiten.Image, t, w, h float64) {
	for i := range portalSpots {
		reveal, active := portalReveal(t, i)
		if !active || reveal <= 0 {
			continue
		}
		spot := portalSpots[i]
		cx := spot.x * w
		cy := spot.y * h
		radius := reveal * h * 0.085
		c := portalHue(i)

		// Outer ring plus soft interior glow.
		r.drawGlowRing(dst, cx, cy, radius, math.Max(radius*0.22, 4), c.WithAlpha(0.9), blendAdd)
		r.drawDisc(dst, cx, cy, radius*0.85, c.WithAlpha(0.2), blendAdd)

		// Inner swirl: three arcs chasing each other around the rim.
		r.drawPortalSwirl(dst, t, i, cx, cy, radius*0.7, c)

		// Silhouette steps through once the ring is mostly open.
		if reveal > 0.6 {
			presence := clamp01((reveal - 0.6) / 0.4)
			r.drawPortalFigure(dst, cx, cy, radius, presence)
		}

		r.drawTextCentered(dst, spot.label, cx, cy+radius+h*0.012, h*0.022, c.WithAlpha(reveal), blendAdd)
	}
}

// drawPortalSwirl draws three short rotating arcs inside a portal, traced
// as chains of glow dots so the arcs taper at both ends.
func (r *Renderer) drawPortalSwirl(dst *ebiten.Image, t float64, index int, cx, cy, radius float64, c Color) {
	const arcs = 3
	const steps = 9
	for k := 0; k < arcs; k++ {
		base := t*1.8 + float64(index) + float64(k)*2*math.Pi/arcs
		for s := 0; s < steps; s++ {
			f := float64(s) / (steps - 1)
			a := base + f*1.1
			taper := math.Sin(f * math.Pi)
			r.drawDisc(dst,
				cx+math.Cos(a)*radius, cy+math.Sin(a)*radius,
				2+2*taper, c.WithAlpha(0.6*taper), blendAdd)
		}
	}
}

// drawPortalFigure draws the arriving silhouette: a filled body ellipse and
// a head circle fading in with presence.
func (r *Renderer) drawPortalFigure(dst *ebiten.Image, cx, cy, radius, presence float64) {
	body := Color{R: 0.02, G: 0.02, B: 0.05, A: presence}
	r.drawBlob(dst, cx, cy+radius*0.15, radius*0.32, radius*0.62, body, ebiten.BlendSourceOver)
	r.drawDisc(dst, cx, cy-radius*0.52, radius*0.2, body, ebiten.BlendSourceOver)
}
