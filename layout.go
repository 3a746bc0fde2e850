package nightfall

// Layout generation. All descriptors are produced once per animation
// instance and never regenerated: the pseudo-random jitter comes from
// transcendental hashes of the index, so regenerating would be harmless
// numerically, but holding one immutable slice for the lifetime of the
// animation is the contract the draw passes rely on.

// BuildingCount is the number of skyline buildings in the scene.
const BuildingCount = 45

// BillboardCount is the number of glowing billboards scattered over the city.
const BillboardCount = 6

// Building is a skyline layout descriptor. All fields are normalized to the
// frame: X and Width relative to frame width, Height relative to frame
// height. LightSeed desynchronizes the window-flicker phase per building.
type Building struct {
	X         float64
	Width     float64
	Height    float64
	LightSeed float64
}

// Billboard is a layout descriptor for one rotated glowing billboard.
// Position and size are normalized to the frame; Rotation is in radians.
type Billboard struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
}

// GenerateBuildings returns count buildings spread index-proportionally
// across a slightly overscanned horizontal range so the skyline bleeds past
// both frame edges. Deterministic: same count, same slice.
func GenerateBuildings(count int) []Building {
	buildings := make([]Building, count)
	for i := range buildings {
		fi := float64(i)
		buildings[i] = Building{
			X:         -0.05 + 1.05*fi/float64(count) + 0.015*hash01(fi, 1),
			Width:     0.03 + 0.05*hash01(fi, 2),
			Height:    0.3 + 0.7*hash01(fi, 3),
			LightSeed: hash01(fi, 4) * 10,
		}
	}
	return buildings
}

// GenerateBillboards returns the fixed set of 6 billboards, positioned in a
// bounded band of the upper frame with a small rotation. Deterministic.
func GenerateBillboards() []Billboard {
	billboards := make([]Billboard, BillboardCount)
	for i := range billboards {
		fi := float64(i)
		billboards[i] = Billboard{
			X:        0.08 + 0.84*hash01(fi, 5),
			Y:        0.12 + 0.38*hash01(fi, 6),
			Width:    0.06 + 0.08*hash01(fi, 7),
			Height:   0.04 + 0.05*hash01(fi, 8),
			Rotation: (hash01(fi, 9) - 0.5) * 0.3,
		}
	}
	return billboards
}
