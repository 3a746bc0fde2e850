package nightfall

import "testing"

func TestDiscTextureSizeAndCache(t *testing.T) {
	tc := newTextureCache()

	img := tc.disc(32)
	if got := img.Bounds().Dx(); got != 64 {
		t.Errorf("disc(32) width = %d, want 64", got)
	}
	if img.Bounds().Dx() != img.Bounds().Dy() {
		t.Error("disc texture not square")
	}

	// Same quantized radius returns the cached texture.
	if tc.disc(32) != img {
		t.Error("disc(32) not cached")
	}
	if tc.disc(31.2) != img {
		t.Error("disc(31.2) should quantize up to the same texture")
	}
	if tc.disc(64) == img {
		t.Error("different radius should generate a different texture")
	}
}

func TestRingTextureSize(t *testing.T) {
	tc := newTextureCache()
	img := tc.ring(40, 10)
	// Outer extent is radius + thickness/2 in each direction.
	if got := img.Bounds().Dx(); got != 90 {
		t.Errorf("ring(40, 10) width = %d, want 90", got)
	}
	if tc.ring(40, 10) != img {
		t.Error("ring not cached")
	}
}

func TestRampTextureCachedByName(t *testing.T) {
	tc := newTextureCache()
	a := tc.ramp("sky", skyRamp)
	if a.Bounds().Dy() != rampResolution {
		t.Errorf("ramp height = %d, want %d", a.Bounds().Dy(), rampResolution)
	}
	if tc.ramp("sky", skyRamp) != a {
		t.Error("ramp not cached by name")
	}
	if tc.ramp("building", buildingRamp) == a {
		t.Error("distinct ramp names should not share a texture")
	}
}

func TestTinyDiscDoesNotUnderflow(t *testing.T) {
	tc := newTextureCache()
	img := tc.disc(0.2)
	if img.Bounds().Dx() < 1 {
		t.Errorf("disc(0.2) width = %d, want >= 1", img.Bounds().Dx())
	}
}

func TestDisposeClearsCaches(t *testing.T) {
	tc := newTextureCache()
	old := tc.disc(16)
	tc.dispose()
	if tc.disc(16) == old {
		t.Error("dispose should drop cached textures")
	}
}
