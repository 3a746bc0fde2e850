package nightfall

import "testing"

func TestSkyRampEndpointsOpaque(t *testing.T) {
	for _, tt := range []float64{0, 0.3, 0.6, 0.95, 1} {
		c := skyRamp(tt)
		if c.A != 1 {
			t.Errorf("skyRamp(%f).A = %f, want 1", tt, c.A)
		}
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Errorf("skyRamp(%f) component %f outside [0, 1]", tt, v)
			}
		}
	}
}

func TestPortalHuesDistinct(t *testing.T) {
	seen := make(map[Color]bool)
	for i := 0; i < len(portalSpots); i++ {
		c := portalHue(i)
		if seen[c] {
			t.Errorf("portal %d reuses an earlier hue", i)
		}
		seen[c] = true
	}
}

func TestMonsterHuesDistinct(t *testing.T) {
	seen := make(map[Color]bool)
	for i := 0; i < len(monsterSpots); i++ {
		c := monsterHue(i)
		if seen[c] {
			t.Errorf("monster %d reuses an earlier hue", i)
		}
		seen[c] = true
	}
}

func TestMarkerHueInGamut(t *testing.T) {
	n := len(DefaultMarkers)
	for i := 0; i < n; i++ {
		c := markerHue(i, n)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Errorf("markerHue(%d, %d) component %f outside [0, 1]", i, n, v)
			}
		}
	}
}

func TestColorPremultipliedRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	r, g, b, a := c.RGBA()
	if r != 0x7fff || a != 0x7fff {
		t.Errorf("RGBA premultiplication off: r=%#x a=%#x, want both 0x7fff", r, a)
	}
	if g >= r || b != 0 {
		t.Errorf("unexpected premultiplied components: g=%#x b=%#x", g, b)
	}
}
