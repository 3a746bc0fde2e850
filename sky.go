package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const starCount = 90

// drawSky paints the vertical night gradient and a field of twinkling
// stars. Always active. Star positions drift on slow sine/cosine orbits of
// their index so the field shimmers without any per-frame randomness.
func (r *Renderer) drawSky(dst *ebiten.Image, t, w, h float64) {
	r.drawRamp(dst, r.tex.ramp("sky", skyRamp), 0, 0, w, h, 1)

	for i := 0; i < starCount; i++ {
		fi := float64(i)
		bx := hash01(fi, 11)
		by := hash01(fi, 12) * 0.65

		x := (bx + 0.004*math.Sin(t*0.3+fi)) * w
		y := (by + 0.003*math.Cos(t*0.25+fi*1.7)) * h

		// Twinkle: brightness oscillates per star, clipped so most stars sit
		// dim and a few flare at any moment.
		b := 0.25 + 0.75*clamp01(math.Sin(t*(1.2+hash01(fi, 13))+fi*2.4))
		size := 0.8 + 1.6*hash01(fi, 14)

		r.drawDisc(dst, x, y, size, Color{R: 1, G: 1, B: 1, A: b * 0.8}, blendAdd)
	}
}
