package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// shockwaveRadius returns the ring radius at loop time t, or false when the
// pass is inactive. The radius eases (cubic in/out) from 0 at the window
// start to 1.2x the larger frame dimension at the end.
func shockwaveRadius(t, w, h float64) (float64, bool) {
	p, active := windowProgress(t, shockwaveStart, shockwaveEnd)
	if !active {
		return 0, false
	}
	return easeInOutCubic(p) * math.Max(w, h) * 1.2, true
}

// drawShockwave renders the single expanding radial ring, centered at the
// mid-lower frame where the impact lands. Active 5-11s.
func (r *Renderer) drawShockwave(dst *ebiten.Image, t, w, h float64) {
	radius, active := shockwaveRadius(t, w, h)
	if !active || radius < 1 {
		return
	}
	p, _ := windowProgress(t, shockwaveStart, shockwaveEnd)
	cx := w * 0.5
	cy := h * 0.68
	fade := 1 - p*p // the ring thins and dims as it expands

	r.drawGlowRing(dst, cx, cy, radius, math.Max(radius*0.25, 8), shockwaveC.WithAlpha(0.8*fade), blendAdd)
	r.drawDisc(dst, cx, cy, radius*0.35, shockwaveC.WithAlpha(0.25*fade), blendAdd)
}
