package nightfall

import (
	"math"
	"testing"
)

func TestWindowProgressGating(t *testing.T) {
	tests := []struct {
		name       string
		t          float64
		wantActive bool
		wantP      float64
	}{
		{"before start", 4.999, false, 0},
		{"exact start", 5, true, 0},
		{"midpoint", 8, true, 0.5},
		{"exact end", 11, true, 1},
		{"after end", 11.001, false, 0},
	}
	for _, tt := range tests {
		p, active := windowProgress(tt.t, 5, 11)
		if active != tt.wantActive {
			t.Errorf("%s: active = %v, want %v", tt.name, active, tt.wantActive)
			continue
		}
		if math.Abs(p-tt.wantP) > 1e-9 {
			t.Errorf("%s: progress = %f, want %f", tt.name, p, tt.wantP)
		}
	}
}

func TestWindowProgressAlwaysClamped(t *testing.T) {
	for tt := 0.0; tt < TotalDuration; tt += 0.37 {
		p, _ := windowProgress(tt, arenaStart, arenaEnd)
		if p < 0 || p > 1 {
			t.Fatalf("t=%f: progress %f outside [0, 1]", tt, p)
		}
	}
}

func TestEaseInOutCubicEndpoints(t *testing.T) {
	if got := easeInOutCubic(0); math.Abs(got) > 1e-6 {
		t.Errorf("easeInOutCubic(0) = %f, want 0", got)
	}
	if got := easeInOutCubic(1); math.Abs(got-1) > 1e-6 {
		t.Errorf("easeInOutCubic(1) = %f, want 1", got)
	}
	if got := easeInOutCubic(0.5); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("easeInOutCubic(0.5) = %f, want 0.5", got)
	}
	// Out-of-range inputs clamp rather than extrapolate.
	if got := easeInOutCubic(1.7); math.Abs(got-1) > 1e-6 {
		t.Errorf("easeInOutCubic(1.7) = %f, want 1", got)
	}
}

func TestShockwaveRadiusBoundaries(t *testing.T) {
	const w, h = 1280.0, 720.0
	maxR := math.Max(w, h) * 1.2

	if r, active := shockwaveRadius(shockwaveStart, w, h); !active || math.Abs(r) > 1e-6 {
		t.Errorf("t=5: radius = %f active = %v, want 0 and active", r, active)
	}
	if r, active := shockwaveRadius(shockwaveEnd, w, h); !active || math.Abs(r-maxR) > 1e-6 {
		t.Errorf("t=11: radius = %f active = %v, want %f and active", r, active, maxR)
	}
	if _, active := shockwaveRadius(4.999, w, h); active {
		t.Error("t=4.999: shockwave active before its window")
	}
	if _, active := shockwaveRadius(11.001, w, h); active {
		t.Error("t=11.001: shockwave active after its window")
	}
}

func TestRenderFrameNilSafe(t *testing.T) {
	var r *Renderer
	r.RenderFrame(nil, 10) // must not panic

	real, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	real.RenderFrame(nil, 10) // must not panic
}

func TestNewRendererLayoutIsStable(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if len(r.buildings) != BuildingCount {
		t.Errorf("renderer holds %d buildings, want %d", len(r.buildings), BuildingCount)
	}
	if len(r.billboards) != BillboardCount {
		t.Errorf("renderer holds %d billboards, want %d", len(r.billboards), BillboardCount)
	}
	// The slices are the generator output verbatim; nothing regenerates them.
	fresh := GenerateBuildings(BuildingCount)
	for i := range fresh {
		if r.buildings[i] != fresh[i] {
			t.Fatalf("renderer building %d diverged from generator output", i)
		}
	}
}
