package nightfall

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Marker is one narrative beat on the timeline: the loop time at which it
// becomes active and the label shown while it is.
type Marker struct {
	Time  float64
	Label string
}

// DefaultMarkers is the fixed beat list for the 45-second loop, sorted
// ascending by time.
var DefaultMarkers = []Marker{
	{Time: 0, Label: "Night City"},
	{Time: 5, Label: "The Shockwave"},
	{Time: 12, Label: "Arena Rises"},
	{Time: 20, Label: "Portals Open"},
	{Time: 28, Label: "Monsters Emerge"},
	{Time: 38, Label: "Final Strike"},
}

// ActiveMarker returns the index of the last marker whose Time is at or
// before elapsed. Markers must be sorted ascending by Time; entries sharing
// a Time resolve to the later one. Returns -1 for an empty list.
func ActiveMarker(markers []Marker, elapsed float64) int {
	active := -1
	for i, m := range markers {
		if m.Time <= elapsed {
			active = i
		}
	}
	return active
}

// Timeline draws the scrubbing beat track. It runs on its own clock with
// its own start timestamp, fully independent of the frame renderer; the two
// stay visually aligned only because both wrap against TotalDuration.
type Timeline struct {
	markers    []Marker
	clock      Clock
	fontSource *text.GoTextFaceSource
}

// NewTimeline creates a timeline over the default markers, starting its
// cycle now.
func NewTimeline() (*Timeline, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Timeline{
		markers:    DefaultMarkers,
		clock:      NewClock(TotalDuration),
		fontSource: src,
	}, nil
}

// Markers returns the beat list. The returned slice must not be mutated.
func (tl *Timeline) Markers() []Marker {
	return tl.markers
}

// Draw renders the track, beat dots, tracker bar and active label into dst,
// which is the overlay strip the host reserves for the timeline. A nil dst
// is a no-op.
func (tl *Timeline) Draw(dst *ebiten.Image) {
	if tl == nil || dst == nil {
		return
	}
	tl.drawAt(dst, tl.clock.Now())
}

// drawAt renders the overlay for an explicit elapsed time. Split from Draw
// so layout stays testable and still-frame capture stays time-idempotent.
func (tl *Timeline) drawAt(dst *ebiten.Image, elapsed float64) {
	bounds := dst.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	if w <= 0 || h <= 0 {
		return
	}
	dst.Fill(Color{R: 0.02, G: 0.02, B: 0.05, A: 1})

	trackY := h * 0.58
	margin := w * 0.04
	trackW := w - 2*margin

	// Base track, then the filled tracker bar up to the current fraction.
	vector.StrokeLine(dst, float32(margin), float32(trackY), float32(margin+trackW), float32(trackY),
		2, Color{R: 1, G: 1, B: 1, A: 0.2}, true)
	fill := trackW * elapsed / TotalDuration
	vector.StrokeLine(dst, float32(margin), float32(trackY), float32(margin+fill), float32(trackY),
		3, heroGlow.WithAlpha(0.9), true)

	active := ActiveMarker(tl.markers, elapsed)
	for i, m := range tl.markers {
		x := margin + trackW*m.Time/TotalDuration
		c := markerHue(i, len(tl.markers))
		radius := 3.5
		if i == active {
			radius = 5.5
		}
		vector.FillCircle(dst, float32(x), float32(trackY), float32(radius), c, true)
	}

	if active >= 0 {
		op := &text.DrawOptions{}
		op.GeoM.Translate(w/2, h*0.08)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(Color{R: 1, G: 1, B: 1, A: 0.9})
		face := &text.GoTextFace{Source: tl.fontSource, Size: h * 0.26}
		text.Draw(dst, tl.markers[active].Label, face, op)
	}
}
