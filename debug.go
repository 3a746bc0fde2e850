package nightfall

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugOverlay prints FPS/TPS and the current loop time in the top-left
// corner. The text is refreshed at a coarse cadence so the readout is
// legible rather than a blur of digits.
type debugOverlay struct {
	lastRefresh time.Time
	line        string
}

func newDebugOverlay() *debugOverlay {
	return &debugOverlay{}
}

func (o *debugOverlay) draw(screen *ebiten.Image, loopTime float64) {
	if time.Since(o.lastRefresh) > 500*time.Millisecond {
		o.line = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		o.lastRefresh = time.Now()
	}
	// Loop time updates every frame; it is the thing being debugged.
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nt = %05.2fs / %.0fs", o.line, loopTime, TotalDuration))
}
