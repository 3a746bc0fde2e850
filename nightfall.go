package nightfall

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied;
// premultiplication happens when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// RGBA implements color.Color. Components are premultiplied by alpha, which
// is what Ebitengine's vector and fill primitives expect.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(clamp01(c.R*c.A) * 0xffff),
		uint32(clamp01(c.G*c.A) * 0xffff),
		uint32(clamp01(c.B*c.A) * 0xffff),
		uint32(clamp01(c.A) * 0xffff)
}

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Scaled returns the color with R, G and B multiplied by f. Alpha is kept.
// Useful for dimming a base hue without changing its coverage.
func (c Color) Scaled(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

var _ color.Color = Color{}

// whitePixel is a small white image used as the source texture for solid
// color triangle fills. 3x3 so that sampling at (1, 1) never bleeds.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(3, 3)
	whitePixel.Fill(color.White)
}

// blendAdd is the additive ("lighter") compositing mode used by the glow
// layers: portals, monsters, hero aura, energy flows.
var blendAdd = ebiten.BlendLighter

// blendScreen is the screen compositing mode (1 - (1-src)*(1-dst)); it only
// brightens. Used by the finale light beam.
var blendScreen = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// frac returns the fractional part of v, always in [0, 1).
func frac(v float64) float64 {
	f := v - math.Floor(v)
	if f < 0 {
		f += 1
	}
	return f
}

// hash01 is the deterministic pseudo-random source for layout generation:
// a transcendental hash of the index with no external entropy. The same
// index always yields the same value in [0, 1).
func hash01(i, salt float64) float64 {
	return frac(math.Sin(i*12.9898+salt*78.233) * 43758.5453)
}
