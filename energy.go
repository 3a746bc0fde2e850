package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	energyRibbons = 18
	energySparks  = 70
)

// drawEnergy renders the ambient energy layer: horizontal sine ribbons
// whose height and opacity decay on a one-second cycle offset per ribbon,
// plus flickering ground-level sparks. Always active.
func (r *Renderer) drawEnergy(dst *ebiten.Image, t, w, h float64) {
	for i := 0; i < energyRibbons; i++ {
		fi := float64(i)
		// Per-ribbon cycle: period 1, offset by index.
		cycle := frac(t + fi/energyRibbons)
		alpha := 0.35 * (1 - cycle)
		if alpha <= 0.01 {
			continue
		}
		baseY := h * (0.55 + 0.4*hash01(fi, 41))
		rise := cycle * h * 0.06
		amp := h * 0.01 * (1 + hash01(fi, 42))
		freq := 2 + 3*hash01(fi, 43)

		var path vector.Path
		const steps = 24
		for s := 0; s <= steps; s++ {
			f := float64(s) / steps
			x := float32(f * w)
			y := float32(baseY - rise + amp*math.Sin(f*freq*2*math.Pi+t*2+fi))
			if s == 0 {
				path.MoveTo(x, y)
			} else {
				path.LineTo(x, y)
			}
		}
		r.strokePath(dst, &path, 1.5, energyC.WithAlpha(alpha), blendAdd)
	}

	for i := 0; i < energySparks; i++ {
		fi := float64(i)
		flicker := clamp01(math.Sin(t*(3+2*hash01(fi, 44)) + fi*1.7))
		if flicker < 0.4 {
			continue
		}
		x := hash01(fi, 45) * w
		y := h * (0.82 + 0.16*hash01(fi, 46))
		r.drawDisc(dst, x, y, 1.5+1.5*hash01(fi, 47), energyC.WithAlpha(0.7*flicker), blendAdd)
	}
}
