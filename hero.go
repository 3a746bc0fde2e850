package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ballGrowEnd     = 5.0  // ball reaches full size
	ballShrinkStart = 40.0 // ball starts collapsing for the loop seam
	throwStart      = 5.0
	throwEnd        = 5.5
)

// ballEnvelope is the three-phase size factor of the hero's held ball:
// grows 0..1 over the first 5 seconds, holds at 1 until t=40, then shrinks
// back to 0 at the loop seam so the cycle restarts clean.
func ballEnvelope(t float64) float64 {
	switch {
	case t < ballGrowEnd:
		return easeOutCubic(t / ballGrowEnd)
	case t < ballShrinkStart:
		return 1
	default:
		return 1 - easeInOutCubic((t-ballShrinkStart)/(TotalDuration-ballShrinkStart))
	}
}

// throwOffset is the brief horizontal kick of the ball at the shockwave
// moment: out and back over [5, 5.5], zero elsewhere.
func throwOffset(t float64) float64 {
	if t < throwStart || t > throwEnd {
		return 0
	}
	p := (t - throwStart) / (throwEnd - throwStart)
	return math.Sin(p * math.Pi)
}

// drawHero renders the central figure: radiating lightning arcs (after
// t=28), body glow, silhouette, armor highlight, head, and the held
// glowing ball. Always active.
func (r *Renderer) drawHero(dst *ebiten.Image, t, w, h float64) {
	cx := w * 0.5
	cy := h * 0.64
	scale := h * 0.16

	if t > heroBeamStart {
		r.drawHeroLightning(dst, t, cx, cy, scale, w, h)
	}

	pulse := 0.85 + 0.15*math.Sin(t*2.4)
	r.drawDisc(dst, cx, cy, scale*1.6*pulse, heroGlow.WithAlpha(0.3), blendAdd)

	// Silhouette: torso and head, solid against the glow.
	r.drawBlob(dst, cx, cy+scale*0.15, scale*0.34, scale*0.7, heroBody, ebiten.BlendSourceOver)
	r.drawDisc(dst, cx, cy-scale*0.72, scale*0.22, heroBody, ebiten.BlendSourceOver)

	// Armor highlight: a bright crescent along the left shoulder line.
	var armor vector.Path
	const steps = 10
	for s := 0; s <= steps; s++ {
		a := math.Pi*0.75 + float64(s)/steps*math.Pi*0.6
		x := float32(cx + math.Cos(a)*scale*0.4)
		y := float32(cy + scale*0.1 + math.Sin(a)*scale*0.55)
		if s == 0 {
			armor.MoveTo(x, y)
		} else {
			armor.LineTo(x, y)
		}
	}
	r.strokePath(dst, &armor, 2.5, heroGlow.WithAlpha(0.8*pulse), blendAdd)

	r.drawHeroBall(dst, t, cx, cy, scale)
}

// drawHeroBall draws the held glowing ball following its three-phase size
// envelope, offset to the hero's side with the throw kick layered on top.
func (r *Renderer) drawHeroBall(dst *ebiten.Image, t, cx, cy, scale float64) {
	factor := ballEnvelope(t)
	if factor <= 0 {
		return
	}
	radius := scale * 0.28 * factor
	x := cx + scale*0.65 + throwOffset(t)*scale*1.4
	y := cy + scale*0.05 + 2*math.Sin(t*3)

	r.drawDisc(dst, x, y, radius*2.2, ballGlow.WithAlpha(0.35*factor), blendAdd)
	r.drawDisc(dst, x, y, radius, ballGlow.WithAlpha(0.95*factor), blendAdd)
	r.drawDisc(dst, x-radius*0.25, y-radius*0.25, radius*0.4, Color{R: 1, G: 1, B: 1, A: factor}, blendAdd)
}

// drawHeroLightning radiates jagged arcs from the hero. Jitter is
// sine-driven from segment index and time, so the arcs crackle
// deterministically.
func (r *Renderer) drawHeroLightning(dst *ebiten.Image, t, cx, cy, scale, w, h float64) {
	const arcs = 7
	const segments = 6
	for i := 0; i < arcs; i++ {
		fi := float64(i)
		flick := clamp01(math.Sin(t*7 + fi*2.6))
		if flick < 0.3 {
			continue // arcs strobe on and off
		}
		angle := fi*2*math.Pi/arcs + 0.3*math.Sin(t*1.1+fi)
		length := scale * (1.8 + 1.2*hash01(fi, 31))

		var path vector.Path
		path.MoveTo(float32(cx), float32(cy))
		for s := 1; s <= segments; s++ {
			f := float64(s) / segments
			jitter := scale * 0.22 * math.Sin(t*13+fi*5+float64(s)*3)
			px := cx + math.Cos(angle)*length*f - math.Sin(angle)*jitter
			py := cy + math.Sin(angle)*length*f + math.Cos(angle)*jitter
			path.LineTo(float32(px), float32(py))
		}
		r.strokePath(dst, &path, 1.8, heroGlow.WithAlpha(0.7*flick), blendAdd)
	}
}
