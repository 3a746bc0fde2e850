package nightfall

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderStill renders the frame at loop time t into an offscreen image of
// the given pixel size and writes it to path as a PNG. Because frames are
// pure functions of time, the still is exactly what the live animation
// shows at that instant.
//
// Must be called from within a running Ebitengine context (the cmd entry
// point runs it inside a one-shot game).
func RenderStill(r *Renderer, path string, w, h int, t float64) error {
	if r == nil {
		return fmt.Errorf("render still: nil renderer")
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("render still: invalid size %dx%d", w, h)
	}

	frame := ebiten.NewImage(w, h)
	defer frame.Deallocate()
	r.RenderFrame(frame, WrapSeconds(t, TotalDuration))

	pixels := make([]byte, 4*w*h)
	frame.ReadPixels(pixels)

	// Convert premultiplied RGBA to straight-alpha NRGBA for encoding.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r8, g8, b8, a8 := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a8 > 0 && a8 < 255 {
			r8 = uint8(min(int(r8)*255/int(a8), 255))
			g8 = uint8(min(int(g8)*255/int(a8), 255))
			b8 = uint8(min(int(b8)*255/int(a8), 255))
		}
		img.Pix[i] = r8
		img.Pix[i+1] = g8
		img.Pix[i+2] = b8
		img.Pix[i+3] = a8
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render still: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render still: encode %s: %w", path, err)
	}
	return f.Close()
}
