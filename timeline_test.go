package nightfall

import "testing"

func TestActiveMarkerSelection(t *testing.T) {
	markers := []Marker{
		{Time: 0, Label: "A"},
		{Time: 5, Label: "B"},
		{Time: 12, Label: "C"},
		{Time: 20, Label: "D"},
		{Time: 28, Label: "E"},
		{Time: 38, Label: "F"},
	}

	tests := []struct {
		elapsed float64
		want    string
	}{
		{0, "A"},
		{4.999, "A"},
		{5, "B"},
		{12, "C"},
		{27.9, "D"},
		{28, "E"},
		{44.999, "F"},
		// The loop wraps past 45 back to 0: A again.
		{WrapSeconds(45, TotalDuration), "A"},
	}
	for _, tt := range tests {
		idx := ActiveMarker(markers, tt.elapsed)
		if idx < 0 {
			t.Errorf("elapsed=%f: no active marker, want %q", tt.elapsed, tt.want)
			continue
		}
		if got := markers[idx].Label; got != tt.want {
			t.Errorf("elapsed=%f: active = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestActiveMarkerTieGoesToLaterEntry(t *testing.T) {
	markers := []Marker{
		{Time: 0, Label: "first"},
		{Time: 10, Label: "early"},
		{Time: 10, Label: "late"},
	}
	idx := ActiveMarker(markers, 10)
	if markers[idx].Label != "late" {
		t.Errorf("tie at t=10 resolved to %q, want %q", markers[idx].Label, "late")
	}
}

func TestActiveMarkerEmptyList(t *testing.T) {
	if idx := ActiveMarker(nil, 10); idx != -1 {
		t.Errorf("ActiveMarker(nil) = %d, want -1", idx)
	}
}

func TestDefaultMarkersSortedAndSized(t *testing.T) {
	if len(DefaultMarkers) != 6 {
		t.Fatalf("DefaultMarkers has %d entries, want 6", len(DefaultMarkers))
	}
	for i := 1; i < len(DefaultMarkers); i++ {
		if DefaultMarkers[i].Time < DefaultMarkers[i-1].Time {
			t.Errorf("DefaultMarkers not sorted at %d: %f < %f", i, DefaultMarkers[i].Time, DefaultMarkers[i-1].Time)
		}
	}
	if last := DefaultMarkers[len(DefaultMarkers)-1].Time; last >= TotalDuration {
		t.Errorf("last marker at %f, want before %f", last, TotalDuration)
	}
}

func TestTimelineDrawNilReceiverAndDst(t *testing.T) {
	var tl *Timeline
	tl.Draw(nil) // must not panic

	real, err := NewTimeline()
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	real.Draw(nil) // must not panic
}
