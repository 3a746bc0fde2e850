package nightfall

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// timelineStripFrac is the fraction of window height reserved at the bottom
// for the timeline overlay.
const timelineStripFrac = 0.08

// Driver ties the renderer and the timeline overlay to the Ebitengine game
// loop. It owns the backing-buffer sizing (viewport times device scale
// factor) and clean cancellation: after Stop, the loop terminates and no
// further draw ticks reach the surface.
//
// Frames are pure functions of absolute time, so Update advances no state;
// each Draw recomputes the loop time from the clock.
type Driver struct {
	renderer *Renderer
	timeline *Timeline
	clock    Clock
	debug    *debugOverlay
	stopped  bool

	// stripImg is the offscreen buffer the timeline overlay draws into;
	// recreated whenever the window size changes.
	stripImg *ebiten.Image
}

// NewDriver creates a driver around the given renderer, capturing the loop
// start timestamp now. A nil renderer yields a driver that draws nothing
// and raises nothing -- the blank-surface degradation path.
func NewDriver(renderer *Renderer) *Driver {
	d := &Driver{
		renderer: renderer,
		clock:    NewClock(TotalDuration),
	}
	if renderer != nil {
		// The timeline keeps its own clock with its own start timestamp.
		// Its font load can only fail if the embedded TTF is corrupt, in
		// which case the overlay is dropped and the scene still runs.
		d.timeline, _ = NewTimeline()
	}
	return d
}

// SetDebug toggles the FPS / loop-time readout.
func (d *Driver) SetDebug(enabled bool) {
	if enabled && d.debug == nil {
		d.debug = newDebugOverlay()
	}
	if !enabled {
		d.debug = nil
	}
}

// Stop cancels the animation: the next Update returns ebiten.Termination
// and the scheduled frame chain ends. The timeline strip buffer and the
// renderer's cached gradient textures are released; both regenerate on
// demand if the driver is somehow drawn again. Idempotent.
func (d *Driver) Stop() {
	d.stopped = true
	if d.stripImg != nil {
		d.stripImg.Deallocate()
		d.stripImg = nil
	}
	if d.renderer != nil {
		d.renderer.Dispose()
	}
}

// Update implements ebiten.Game. The animation holds no per-tick state;
// Update only honors cancellation.
func (d *Driver) Update() error {
	if d.stopped {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game: the scene over the full frame minus the
// bottom strip, the timeline overlay in the strip, then the optional debug
// readout. After Stop this is never reached again; a missing renderer or
// surface degrades to a blank frame.
func (d *Driver) Draw(screen *ebiten.Image) {
	if d.stopped || d.renderer == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	strip := int(float64(h) * timelineStripFrac)

	sceneRect := image.Rect(0, 0, w, h-strip)
	d.renderer.RenderFrame(screen.SubImage(sceneRect).(*ebiten.Image), d.clock.Now())

	if strip > 0 && d.timeline != nil {
		if d.stripImg == nil || d.stripImg.Bounds().Dx() != w || d.stripImg.Bounds().Dy() != strip {
			if d.stripImg != nil {
				d.stripImg.Deallocate()
			}
			d.stripImg = ebiten.NewImage(w, strip)
		}
		d.timeline.Draw(d.stripImg)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, float64(h-strip))
		screen.DrawImage(d.stripImg, op)
	}

	if d.debug != nil {
		d.debug.draw(screen, d.clock.Now())
	}
}

// Layout implements ebiten.Game. Unused; LayoutF takes precedence.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("nightfall: Layout should never be called when LayoutF is implemented")
}

// LayoutF sizes the backing pixel buffer to the viewport scaled by the
// device pixel density, so the normalized scene geometry stays sharp on
// high-DPI displays and rescales cleanly on every window resize.
func (d *Driver) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	return outsideWidth * scale, outsideHeight * scale
}
