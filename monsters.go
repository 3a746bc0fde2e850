package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// monsterSpot fixes one antagonist's position and its appearance delay
// within the monster window.
type monsterSpot struct {
	x, y  float64 // normalized center
	scale float64 // body size relative to frame height
	delay float64 // seconds after monsterStart before it emerges
}

var monsterSpots = [...]monsterSpot{
	{x: 0.22, y: 0.40, scale: 0.11, delay: 0.0},
	{x: 0.78, y: 0.36, scale: 0.13, delay: 2.0},
	{x: 0.52, y: 0.28, scale: 0.09, delay: 4.0},
}

// monsterPresence returns how far antagonist i has emerged at loop time t,
// in [0, 1], honoring its delay. Inactive outside the window.
func monsterPresence(t float64, i int) (float64, bool) {
	p, active := windowProgress(t, monsterStart+monsterSpots[i].delay, monsterEnd)
	if !active {
		return 0, false
	}
	window := monsterEnd - monsterStart - monsterSpots[i].delay
	return easeOutCubic(clamp01(p * window / 3)), true
}

// drawMonsters renders the three antagonists: a radial-gradient body blob
// in a distinct hue, an outlined armor curve, a glowing eye, and three
// sweeping laser beams each. Active 24-44s.
func (r *Renderer) drawMonsters(dst *ebiten.Image, t, w, h float64) {
	for i := range monsterSpots {
		presence, active := monsterPresence(t, i)
		if !active || presence <= 0 {
			continue
		}
		spot := monsterSpots[i]
		cx := spot.x * w
		cy := spot.y * h
		size := spot.scale * h * presence
		c := monsterHue(i)
		breathe := 1 + 0.06*math.Sin(t*1.6+float64(i)*2.1)

		// Body: layered gradient ellipses, wider than tall.
		r.drawBlob(dst, cx, cy, size*1.5*breathe, size*breathe, c.WithAlpha(0.35*presence), blendAdd)
		r.drawBlob(dst, cx, cy, size*0.9*breathe, size*0.65*breathe, c.WithAlpha(0.6*presence), blendAdd)

		r.drawMonsterArmor(dst, cx, cy, size, c, presence)

		// Eye: hot core over a colored glow, drifting as the monster scans.
		eyeX := cx + size*0.3*math.Sin(t*0.9+float64(i))
		eyeY := cy - size*0.2
		r.drawDisc(dst, eyeX, eyeY, size*0.22, c.WithAlpha(0.9*presence), blendAdd)
		r.drawDisc(dst, eyeX, eyeY, size*0.09, Color{R: 1, G: 1, B: 1, A: presence}, blendAdd)

		r.drawMonsterLasers(dst, t, i, eyeX, eyeY, w, h, c, presence)
	}
}

// drawMonsterArmor strokes a crescent over the body's upper edge.
func (r *Renderer) drawMonsterArmor(dst *ebiten.Image, cx, cy, size float64, c Color, presence float64) {
	var path vector.Path
	const steps = 14
	for s := 0; s <= steps; s++ {
		a := math.Pi + float64(s)/steps*math.Pi
		x := float32(cx + math.Cos(a)*size*1.2)
		y := float32(cy + math.Sin(a)*size*0.85)
		if s == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	r.strokePath(dst, &path, 3, c.Scaled(1.3).WithAlpha(0.8*presence), blendAdd)
}

// drawMonsterLasers draws three rotating beams sweeping from the eye, with
// length and intensity oscillating on separate frequencies per beam.
func (r *Renderer) drawMonsterLasers(dst *ebiten.Image, t float64, index int, ex, ey, w, h float64, c Color, presence float64) {
	const beams = 3
	for k := 0; k < beams; k++ {
		fk := float64(k)
		angle := t*(0.6+0.15*fk) + float64(index)*2 + fk*2*math.Pi/beams
		length := math.Max(w, h) * (0.2 + 0.25*clamp01(math.Sin(t*1.3+fk*1.9)))
		intensity := presence * (0.25 + 0.45*clamp01(math.Sin(t*2.2+fk+float64(index))))
		if intensity <= 0 {
			continue
		}
		tx := ex + math.Cos(angle)*length
		ty := ey + math.Sin(angle)*length

		var beam vector.Path
		beam.MoveTo(float32(ex), float32(ey))
		beam.LineTo(float32(tx), float32(ty))
		r.strokePath(dst, &beam, 5, c.WithAlpha(intensity*0.4), blendAdd)
		r.strokePath(dst, &beam, 2, c.Scaled(1.4).WithAlpha(intensity), blendAdd)
	}
}
