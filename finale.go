package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const finaleShards = 30

// drawFinale renders the closing strike: a screen-blended light beam from
// the hero toward an off-frame impact point, a radial impact flash, and a
// spray of rotating glass shards, all scaled by the 7-second finale ramp.
// Active 38-45s.
func (r *Renderer) drawFinale(dst *ebiten.Image, t, w, h float64) {
	p, active := windowProgress(t, finaleStart, finaleEnd)
	if !active {
		return
	}
	ramp := easeOutCubic(p)

	heroX := w * 0.5
	heroY := h * 0.6
	impactX := w * 1.08 // just past the right edge
	impactY := h * 0.18

	// Directional beam: a narrow quad widening toward the impact point,
	// screen-blended so it brightens whatever it crosses.
	dx := impactX - heroX
	dy := impactY - heroY
	dist := math.Hypot(dx, dy)
	nx := -dy / dist // beam-normal unit vector
	ny := dx / dist
	wHero := 4 + 10*ramp
	wImpact := 30 + 60*ramp

	var beam vector.Path
	beam.MoveTo(float32(heroX+nx*wHero), float32(heroY+ny*wHero))
	beam.LineTo(float32(impactX+nx*wImpact), float32(impactY+ny*wImpact))
	beam.LineTo(float32(impactX-nx*wImpact), float32(impactY-ny*wImpact))
	beam.LineTo(float32(heroX-nx*wHero), float32(heroY-ny*wHero))
	beam.Close()
	r.fillPath(dst, &beam, finaleC.WithAlpha(0.35*ramp), blendScreen)

	// Impact flash.
	flash := ramp * (0.8 + 0.2*math.Sin(t*18))
	r.drawDisc(dst, impactX, impactY, w*0.25*ramp, finaleC.WithAlpha(0.5*flash), blendScreen)

	r.drawFinaleShards(dst, t, impactX, impactY, w, ramp)
}

// drawFinaleShards sprays rotating angular triangles outward from the
// impact point.
func (r *Renderer) drawFinaleShards(dst *ebiten.Image, t, ix, iy, w, ramp float64) {
	for i := 0; i < finaleShards; i++ {
		fi := float64(i)
		angle := fi*2*math.Pi/finaleShards + t*0.4
		dist := w * ramp * (0.1 + 0.35*hash01(fi, 51))
		cx := ix + math.Cos(angle)*dist
		cy := iy + math.Sin(angle)*dist
		size := 3 + 9*hash01(fi, 52)
		spin := t*(2+hash01(fi, 53)) + fi

		var shard vector.Path
		for k := 0; k < 3; k++ {
			a := spin + float64(k)*2*math.Pi/3
			x := float32(cx + math.Cos(a)*size)
			y := float32(cy + math.Sin(a)*size*1.6)
			if k == 0 {
				shard.MoveTo(x, y)
			} else {
				shard.LineTo(x, y)
			}
		}
		shard.Close()
		r.fillPath(dst, &shard, finaleC.WithAlpha(0.6*ramp*(1-0.5*hash01(fi, 54))), blendAdd)
	}
}
