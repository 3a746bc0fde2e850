package nightfall

import (
	"math"
	"testing"
)

func TestWrapSecondsStaysInRange(t *testing.T) {
	for _, elapsed := range []float64{0, 0.001, 4.999, 5, 22.5, 44.999, 45, 45.001, 90, 1234.56} {
		got := WrapSeconds(elapsed, TotalDuration)
		if got < 0 || got >= TotalDuration {
			t.Errorf("WrapSeconds(%f) = %f, want in [0, %f)", elapsed, got, TotalDuration)
		}
	}
}

func TestWrapSecondsPeriodicity(t *testing.T) {
	for _, elapsed := range []float64{0, 1.5, 17, 44.25} {
		a := WrapSeconds(elapsed, TotalDuration)
		b := WrapSeconds(elapsed+TotalDuration, TotalDuration)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("WrapSeconds(%f) = %f but WrapSeconds(+45) = %f", elapsed, a, b)
		}
	}
}

func TestWrapSecondsNegativeInput(t *testing.T) {
	got := WrapSeconds(-5, TotalDuration)
	if math.Abs(got-40) > 1e-9 {
		t.Errorf("WrapSeconds(-5) = %f, want 40", got)
	}
	if got := WrapSeconds(-90, TotalDuration); got < 0 || got >= TotalDuration {
		t.Errorf("WrapSeconds(-90) = %f, want in [0, 45)", got)
	}
}

func TestClockNowInRange(t *testing.T) {
	c := NewClock(TotalDuration)
	for i := 0; i < 100; i++ {
		now := c.Now()
		if now < 0 || now >= TotalDuration {
			t.Fatalf("Clock.Now() = %f, want in [0, %f)", now, TotalDuration)
		}
	}
}

func TestClockProgressInRange(t *testing.T) {
	c := NewClock(TotalDuration)
	p := c.Progress()
	if p < 0 || p >= 1 {
		t.Errorf("Clock.Progress() = %f, want in [0, 1)", p)
	}
}
