package nightfall

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderStillNilRenderer(t *testing.T) {
	err := RenderStill(nil, filepath.Join(t.TempDir(), "out.png"), 320, 180, 0)
	if err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if !strings.Contains(err.Error(), "nil renderer") {
		t.Errorf("error = %q, want mention of nil renderer", err)
	}
}

func TestRenderStillRejectsInvalidSize(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.png")

	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 180},
		{"zero height", 320, 0},
		{"negative width", -1, 180},
		{"negative height", 320, -1},
	}
	for _, tt := range tests {
		err := RenderStill(r, path, tt.w, tt.h, 0)
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), "invalid size") {
			t.Errorf("%s: error = %q, want mention of invalid size", tt.name, err)
		}
	}
}
