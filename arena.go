package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	arenaGridLines = 12
	arenaBursts    = 6
	arenaTitleText = "THE ARENA"
)

// drawArena renders the arena reveal: a perspective floor grid converging
// toward a vanishing region, staggered firework ring bursts, the pulsing
// title, and light beams rising from each billboard. Active 9-20s.
func (r *Renderer) drawArena(dst *ebiten.Image, t, w, h float64) {
	p, active := windowProgress(t, arenaStart, arenaEnd)
	if !active {
		return
	}
	reveal := easeOutCubic(clamp01(p * 3)) // grid fades in over the first third

	r.drawArenaGrid(dst, t, w, h, reveal)
	r.drawArenaBursts(dst, t, w, h, p)

	// Title pulses while the arena holds.
	pulse := 0.75 + 0.25*math.Sin(t*4)
	size := h * 0.07
	r.drawDisc(dst, w/2, h*0.3, size*2.2, arenaTitle.WithAlpha(0.25*reveal*pulse), blendAdd)
	r.drawTextCentered(dst, arenaTitleText, w/2, h*0.3-size/2, size, arenaTitle.WithAlpha(reveal*pulse), blendAdd)

	// Beams rise from each billboard with a per-billboard phase offset.
	for i, bb := range r.billboards {
		phase := frac(t*0.5 + float64(i)/float64(len(r.billboards)))
		top := bb.Y*h - phase*h*0.5
		alpha := reveal * 0.5 * (1 - phase)
		vector.StrokeLine(dst,
			float32(bb.X*w), float32(bb.Y*h),
			float32(bb.X*w), float32(top),
			float32(3+2*math.Sin(t*3+float64(i))),
			billboardC.WithAlpha(alpha), true)
	}
}

// drawArenaGrid draws the floor: horizontal rows packed toward the horizon
// plus spokes converging on the vanishing region. Brightness ramps with the
// reveal fraction.
func (r *Renderer) drawArenaGrid(dst *ebiten.Image, t, w, h, reveal float64) {
	vanishY := h * 0.62
	floor := h - vanishY

	// Rows: squared spacing packs lines toward the horizon.
	for i := 1; i <= arenaGridLines; i++ {
		f := float64(i) / arenaGridLines
		y := vanishY + floor*f*f
		alpha := reveal * (0.12 + 0.45*f) * (0.8 + 0.2*math.Sin(t*2+f*6))
		vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1.5, arenaGrid.WithAlpha(alpha), true)
	}

	// Spokes: fan out from the vanishing region to the bottom edge.
	for i := 0; i <= arenaGridLines; i++ {
		f := float64(i)/arenaGridLines*2 - 1
		vector.StrokeLine(dst,
			float32(w*0.5+f*w*0.08), float32(vanishY),
			float32(w*0.5+f*w*0.9), float32(h),
			1.5, arenaGrid.WithAlpha(reveal*0.3), true)
	}
}

// drawArenaBursts draws six rotating firework rings on staggered phase
// cycles around the arena floor.
func (r *Renderer) drawArenaBursts(dst *ebiten.Image, t, w, h, p float64) {
	for i := 0; i < arenaBursts; i++ {
		fi := float64(i)
		phase := frac(t*0.45 + fi/arenaBursts)
		cx := w * (0.15 + 0.7*hash01(fi, 21))
		cy := h * (0.66 + 0.22*hash01(fi, 22))
		radius := phase * w * 0.05
		alpha := p * (1 - phase) * 0.8
		if alpha <= 0 || radius < 1 {
			continue
		}

		c := portalHue(i % 4)
		r.drawGlowRing(dst, cx, cy, radius, math.Max(radius*0.3, 3), c.WithAlpha(alpha), blendAdd)

		// Rotating sparks on the burst rim.
		for k := 0; k < 5; k++ {
			a := t*2 + fi + float64(k)*2*math.Pi/5
			r.drawDisc(dst, cx+math.Cos(a)*radius, cy+math.Sin(a)*radius, 2.5, c.WithAlpha(alpha), blendAdd)
		}
	}
}
