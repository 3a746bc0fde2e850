package nightfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Gradient textures. Ebitengine has no gradient fill primitive, so the
// renderer bakes small grayscale alpha textures once and tints them with
// ColorScale at draw time. Textures are cached by quantized size so tiny
// per-frame radius changes reuse one texture scaled through GeoM.

const rampResolution = 256

type ringKey struct {
	radius    int
	thickness int
}

// textureCache holds lazily generated gradient textures. Not safe for
// concurrent use; the renderer owns one and uses it from the draw loop only.
type textureCache struct {
	discs map[int]*ebiten.Image
	rings map[ringKey]*ebiten.Image
	ramps map[string]*ebiten.Image
}

func newTextureCache() *textureCache {
	return &textureCache{
		discs: make(map[int]*ebiten.Image),
		rings: make(map[ringKey]*ebiten.Image),
		ramps: make(map[string]*ebiten.Image),
	}
}

// disc returns a feathered white disc texture: full alpha at the center
// falling to zero at the rim with smoothstep. This is the radial gradient
// building block for glows and flashes.
func (tc *textureCache) disc(radius float64) *ebiten.Image {
	key := quantize(radius)
	if img, ok := tc.discs[key]; ok {
		return img
	}
	img := generateDisc(float64(key))
	tc.discs[key] = img
	return img
}

// ring returns an annular texture whose alpha peaks at the ring radius and
// feathers to zero over half the thickness on both sides.
func (tc *textureCache) ring(radius, thickness float64) *ebiten.Image {
	key := ringKey{radius: quantize(radius), thickness: quantize(thickness)}
	if img, ok := tc.rings[key]; ok {
		return img
	}
	img := generateRing(float64(key.radius), float64(key.thickness))
	tc.rings[key] = img
	return img
}

// ramp returns a 1-by-rampResolution vertical color strip baked from fn,
// where fn maps normalized height to color. Keyed by name; fn must be
// stable for a given name.
func (tc *textureCache) ramp(name string, fn func(t float64) Color) *ebiten.Image {
	if img, ok := tc.ramps[name]; ok {
		return img
	}
	img := generateRamp(fn)
	tc.ramps[name] = img
	return img
}

func quantize(v float64) int {
	key := int(math.Ceil(v))
	if key < 1 {
		key = 1
	}
	return key
}

// generateDisc creates a feathered white circle with smoothstep falloff.
// Premultiplied alpha.
func generateDisc(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - radius
			dy := float64(y) + 0.5 - radius
			dist := math.Sqrt(dx*dx+dy*dy) / radius

			var alpha float64
			if dist < 1 {
				t := 1 - dist
				alpha = t * t * (3 - 2*t)
			}
			writeWhite(pix, (y*size+x)*4, alpha)
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// generateRing creates a white annulus: alpha 1 at the ring radius,
// smoothstepped to 0 at radius +/- thickness/2.
func generateRing(radius, thickness float64) *ebiten.Image {
	outer := radius + thickness/2
	size := int(math.Ceil(outer * 2))
	if size < 1 {
		size = 1
	}
	half := thickness / 2
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - outer
			dy := float64(y) + 0.5 - outer
			dist := math.Sqrt(dx*dx + dy*dy)

			var alpha float64
			if d := math.Abs(dist-radius) / half; d < 1 {
				t := 1 - d
				alpha = t * t * (3 - 2*t)
			}
			writeWhite(pix, (y*size+x)*4, alpha)
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// generateRamp bakes a vertical 1xN color strip. Drawn scaled to an
// arbitrary rectangle it reads as a smooth vertical gradient.
func generateRamp(fn func(t float64) Color) *ebiten.Image {
	pix := make([]byte, rampResolution*4)
	for y := 0; y < rampResolution; y++ {
		c := fn(float64(y) / float64(rampResolution-1))
		off := y * 4
		pix[off+0] = byte(clamp01(c.R*c.A) * 255)
		pix[off+1] = byte(clamp01(c.G*c.A) * 255)
		pix[off+2] = byte(clamp01(c.B*c.A) * 255)
		pix[off+3] = byte(clamp01(c.A) * 255)
	}
	img := ebiten.NewImage(1, rampResolution)
	img.WritePixels(pix)
	return img
}

func writeWhite(pix []byte, off int, alpha float64) {
	a := byte(clamp01(alpha) * 255)
	pix[off+0] = a // premultiplied white
	pix[off+1] = a
	pix[off+2] = a
	pix[off+3] = a
}

// dispose releases every cached texture.
func (tc *textureCache) dispose() {
	for _, img := range tc.discs {
		img.Deallocate()
	}
	for _, img := range tc.rings {
		img.Deallocate()
	}
	for _, img := range tc.ramps {
		img.Deallocate()
	}
	tc.discs = make(map[int]*ebiten.Image)
	tc.rings = make(map[ringKey]*ebiten.Image)
	tc.ramps = make(map[string]*ebiten.Image)
}
