package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawCity renders the skyline: every building as a gradient-filled block
// with a grid of flickering windows, then the billboards as rotated glowing
// outlined panels. Always active.
func (r *Renderer) drawCity(dst *ebiten.Image, t, w, h float64) {
	ramp := r.tex.ramp("building", buildingRamp)

	for i, b := range r.buildings {
		bw := b.Width * w
		bh := b.Height * h * 0.72
		bx := b.X * w
		by := h - bh

		r.drawRamp(dst, ramp, bx, by, bw, bh, 1)
		r.drawWindows(dst, t, i, b, bx, by, bw, bh)
	}

	for i, bb := range r.billboards {
		r.drawBillboard(dst, t, i, bb, w, h)
	}
}

// windowGrid sizes a facade's window grid from its pixel extents. The
// minimums are built into the formulas: even a degenerate facade gets a
// 2x3 grid, so the cell math below never divides by zero.
func windowGrid(bw, bh float64) (cols, rows int) {
	return 2 + int(bw/9), 3 + int(bh/16)
}

// drawWindows fills a building facade with a row/column grid of window
// rectangles. Whether a window is lit depends on (row+col+index) mod 3 and
// a sine brightness term seeded by the building's LightSeed, so each
// facade flickers on its own phase.
func (r *Renderer) drawWindows(dst *ebiten.Image, t float64, index int, b Building, bx, by, bw, bh float64) {
	const margin = 0.18
	cols, rows := windowGrid(bw, bh)

	cellW := bw * (1 - 2*margin) / float64(cols)
	cellH := bh * (1 - 2*margin) / float64(rows)
	winW := cellW * 0.55
	winH := cellH * 0.5

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			mode := (row + col + index) % 3
			if mode == 0 {
				continue // permanently dark window
			}
			flicker := 0.5 + 0.5*math.Sin(t*3+b.LightSeed+float64(row*7+col*3))
			c := windowDim
			alpha := 0.35 + 0.3*flicker
			if mode == 1 {
				c = windowLit
				alpha = 0.5 + 0.5*flicker
			}

			x := bx + bw*margin + float64(col)*cellW + (cellW-winW)/2
			y := by + bh*margin + float64(row)*cellH + (cellH-winH)/2
			vector.FillRect(dst, float32(x), float32(y), float32(winW), float32(winH), c.WithAlpha(alpha), false)
		}
	}
}

// drawBillboard renders one rotated glowing panel: soft backlight, filled
// face, bright outline. The glow pulse is phase-offset per billboard.
func (r *Renderer) drawBillboard(dst *ebiten.Image, t float64, index int, bb Billboard, w, h float64) {
	cx := bb.X * w
	cy := bb.Y * h
	bw := bb.Width * w
	bh := bb.Height * h
	pulse := 0.7 + 0.3*math.Sin(t*2+float64(index)*1.3)

	r.drawDisc(dst, cx, cy, math.Hypot(bw, bh)*0.75, billboardC.WithAlpha(0.18*pulse), blendAdd)

	cos := math.Cos(bb.Rotation)
	sin := math.Sin(bb.Rotation)
	corner := func(dx, dy float64) (float32, float32) {
		return float32(cx + dx*cos - dy*sin), float32(cy + dx*sin + dy*cos)
	}
	x0, y0 := corner(-bw/2, -bh/2)
	x1, y1 := corner(bw/2, -bh/2)
	x2, y2 := corner(bw/2, bh/2)
	x3, y3 := corner(-bw/2, bh/2)

	var face vector.Path
	face.MoveTo(x0, y0)
	face.LineTo(x1, y1)
	face.LineTo(x2, y2)
	face.LineTo(x3, y3)
	face.Close()

	r.fillPath(dst, &face, Color{R: 0.05, G: 0.12, B: 0.2, A: 0.9}, ebiten.BlendSourceOver)
	r.strokePath(dst, &face, 2, billboardC.WithAlpha(0.55+0.45*pulse), blendAdd)
}
