package nightfall

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDriverUpdateRunsUntilStopped(t *testing.T) {
	d := NewDriver(nil)
	for i := 0; i < 5; i++ {
		if err := d.Update(); err != nil {
			t.Fatalf("Update before Stop returned %v", err)
		}
	}
}

func TestDriverStopTerminatesLoop(t *testing.T) {
	d := NewDriver(nil)
	d.Stop()
	if err := d.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update after Stop = %v, want ebiten.Termination", err)
	}
	// Idempotent: stopping again keeps terminating.
	d.Stop()
	if err := d.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatal("second Stop lost the termination state")
	}
}

func TestDriverDrawAfterStopIsNoOp(t *testing.T) {
	d := NewDriver(nil)
	d.Stop()
	d.Draw(nil) // must not panic and must not touch any surface
}

func TestDriverNilRendererDegradesSilently(t *testing.T) {
	d := NewDriver(nil)
	d.Draw(nil) // blank-surface path: no work, no panic
	if err := d.Update(); err != nil {
		t.Fatalf("nil-renderer driver Update = %v, want nil", err)
	}
}

func TestDriverStopReleasesResources(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	d := NewDriver(renderer)
	d.stripImg = ebiten.NewImage(64, 16)
	cached := renderer.tex.disc(16)

	d.Stop()

	if d.stripImg != nil {
		t.Error("Stop did not release the timeline strip buffer")
	}
	if renderer.tex.disc(16) == cached {
		t.Error("Stop did not drop the renderer's cached textures")
	}

	// A second Stop must not panic on the already-released buffer.
	d.Stop()
}

func TestDriverSetDebugToggle(t *testing.T) {
	d := NewDriver(nil)
	d.SetDebug(true)
	if d.debug == nil {
		t.Fatal("SetDebug(true) did not install the overlay")
	}
	d.SetDebug(false)
	if d.debug != nil {
		t.Fatal("SetDebug(false) did not remove the overlay")
	}
}
