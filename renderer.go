package nightfall

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// Activation windows for the time-gated passes, in seconds within the loop.
const (
	shockwaveStart = 5.0
	shockwaveEnd   = 11.0
	arenaStart     = 9.0
	arenaEnd       = 20.0
	portalStart    = 18.0
	portalEnd      = 31.0
	monsterStart   = 24.0
	monsterEnd     = 44.0
	heroBeamStart  = 28.0
	finaleStart    = 38.0
	finaleEnd      = 45.0
)

// Renderer draws one complete frame of the cinematic for any loop time.
// It owns the immutable layout descriptors, the gradient texture cache and
// the text face source. A Renderer is not safe for concurrent use.
type Renderer struct {
	buildings  []Building
	billboards []Billboard
	tex        *textureCache
	fontSource *text.GoTextFaceSource
}

// NewRenderer generates the scene layout once and prepares the render
// resources. The layout slices are never regenerated afterwards; the draw
// passes treat them as read-only shared data.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Renderer{
		buildings:  GenerateBuildings(BuildingCount),
		billboards: GenerateBillboards(),
		tex:        newTextureCache(),
		fontSource: src,
	}, nil
}

// RenderFrame clears dst and composites the nine draw passes in their fixed
// order for loop time t. Later passes layer over earlier ones; several use
// additive or screen blending, so the order is a contract. Each pass
// computes purely from (t, frame size, layout); recomputing the frame at
// the same t always yields the same pixels. A nil dst is a no-op.
func (r *Renderer) RenderFrame(dst *ebiten.Image, t float64) {
	if r == nil || dst == nil {
		return
	}
	bounds := dst.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	if w <= 0 || h <= 0 {
		return
	}
	dst.Clear()

	r.drawSky(dst, t, w, h)
	r.drawCity(dst, t, w, h)
	r.drawShockwave(dst, t, w, h)
	r.drawArena(dst, t, w, h)
	r.drawPortals(dst, t, w, h)
	r.drawMonsters(dst, t, w, h)
	r.drawHero(dst, t, w, h)
	r.drawEnergy(dst, t, w, h)
	r.drawFinale(dst, t, w, h)
}

// Dispose releases the cached gradient textures. The renderer can be used
// again afterwards; textures regenerate on demand.
func (r *Renderer) Dispose() {
	r.tex.dispose()
}

// face returns a text face at the given pixel size. Faces are cheap value
// wrappers around the shared source.
func (r *Renderer) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: r.fontSource, Size: size}
}

// windowProgress maps t onto a pass activation window. Outside [start, end]
// the pass is inactive and must draw nothing. At t == start the pass is
// active at zero progress; the returned fraction is clamped to [0, 1] so a
// boundary-straddling t never extrapolates.
func windowProgress(t, start, end float64) (float64, bool) {
	if t < start || t > end {
		return 0, false
	}
	if end <= start {
		return 0, true
	}
	return clamp01((t - start) / (end - start)), true
}

func easeInOutCubic(p float64) float64 {
	return float64(ease.InOutCubic(float32(clamp01(p)), 0, 1, 1))
}

func easeOutCubic(p float64) float64 {
	return float64(ease.OutCubic(float32(clamp01(p)), 0, 1, 1))
}

// drawDisc draws a tinted feathered disc centered at (cx, cy): the radial
// gradient primitive behind every glow in the scene.
func (r *Renderer) drawDisc(dst *ebiten.Image, cx, cy, radius float64, c Color, blend ebiten.Blend) {
	r.drawBlob(dst, cx, cy, radius, radius, c, blend)
}

// drawBlob draws a tinted feathered ellipse with independent radii.
func (r *Renderer) drawBlob(dst *ebiten.Image, cx, cy, rx, ry float64, c Color, blend ebiten.Blend) {
	if rx <= 0 || ry <= 0 || c.A <= 0 {
		return
	}
	img := r.tex.disc(max(rx, ry))
	sz := float64(img.Bounds().Dx())
	op := &ebiten.DrawImageOptions{Blend: blend, Filter: ebiten.FilterLinear}
	op.GeoM.Scale(rx*2/sz, ry*2/sz)
	op.GeoM.Translate(cx-rx, cy-ry)
	tintScale(&op.ColorScale, c)
	dst.DrawImage(img, op)
}

// drawGlowRing draws a tinted feathered annulus centered at (cx, cy).
func (r *Renderer) drawGlowRing(dst *ebiten.Image, cx, cy, radius, thickness float64, c Color, blend ebiten.Blend) {
	if radius <= 0 || thickness <= 0 || c.A <= 0 {
		return
	}
	img := r.tex.ring(radius, thickness)
	sz := float64(img.Bounds().Dx())
	outer := radius + thickness/2
	op := &ebiten.DrawImageOptions{Blend: blend, Filter: ebiten.FilterLinear}
	op.GeoM.Scale(outer*2/sz, outer*2/sz)
	op.GeoM.Translate(cx-outer, cy-outer)
	tintScale(&op.ColorScale, c)
	dst.DrawImage(img, op)
}

// drawRamp stretches a baked 1xN vertical gradient strip over the given
// rectangle.
func (r *Renderer) drawRamp(dst *ebiten.Image, ramp *ebiten.Image, x, y, w, h, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(w, h/float64(rampResolution))
	op.GeoM.Translate(x, y)
	a := float32(clamp01(alpha))
	op.ColorScale.Scale(a, a, a, a)
	dst.DrawImage(ramp, op)
}

// fillPath fills a vector path with a solid color under the given blend.
func (r *Renderer) fillPath(dst *ebiten.Image, path *vector.Path, c Color, blend ebiten.Blend) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawTris(dst, vs, is, c, blend)
}

// strokePath strokes a vector path with a solid color under the given blend.
func (r *Renderer) strokePath(dst *ebiten.Image, path *vector.Path, width float64, c Color, blend ebiten.Blend) {
	op := &vector.StrokeOptions{Width: float32(width), LineCap: vector.LineCapRound, LineJoin: vector.LineJoinRound}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawTris(dst, vs, is, c, blend)
}

func drawTris(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, c Color, blend ebiten.Blend) {
	cr := float32(clamp01(c.R))
	cg := float32(clamp01(c.G))
	cb := float32(clamp01(c.B))
	ca := float32(clamp01(c.A))
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.FillRuleNonZero}
	op.Blend = blend
	dst.DrawTriangles(vs, is, whitePixel, op)
}

// drawTextCentered draws s horizontally centered at (cx, y) in the given
// size and color, optionally under an alternate blend for glow layers.
func (r *Renderer) drawTextCentered(dst *ebiten.Image, s string, cx, y, size float64, c Color, blend ebiten.Blend) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.Blend = blend
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, r.face(size), op)
}

// tintScale configures cs to tint a premultiplied white texture with c.
func tintScale(cs *ebiten.ColorScale, c Color) {
	a := float32(clamp01(c.A))
	cs.Scale(float32(clamp01(c.R))*a, float32(clamp01(c.G))*a, float32(clamp01(c.B))*a, a)
}
