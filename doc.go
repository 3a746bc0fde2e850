// Package nightfall renders a fixed-length, looping, procedurally driven
// cinematic for [Ebitengine]: a stylized hero-versus-monsters night scene
// in an urban setting, composed from nine time-parameterized draw passes,
// with a timeline overlay that tracks the narrative beats of the 45-second
// loop.
//
// The animation is stateless per frame: every pass computes its output
// purely from the current loop time, the frame dimensions, and a set of
// layout descriptors generated once at startup. Rendering the frame at
// time T always yields the same picture regardless of what was drawn
// before.
//
// # Quick start
//
//	renderer, err := nightfall.NewRenderer()
//	if err != nil {
//		log.Fatal(err)
//	}
//	driver := nightfall.NewDriver(renderer)
//	ebiten.SetWindowSize(1280, 720)
//	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
//	if err := ebiten.RunGame(driver); err != nil {
//		log.Fatal(err)
//	}
//
// For offline use, [RenderStill] writes the frame at an arbitrary loop
// time to a PNG file without opening a window. See cmd/nightfall for a
// complete entry point with flags.
//
// # Structure
//
// [Clock] wraps wall-clock time into the loop. [GenerateBuildings] and
// [GenerateBillboards] produce the immutable layout. [Renderer.RenderFrame]
// executes the draw passes in their fixed compositing order. [Timeline]
// runs its own independent clock over the same total duration and draws
// the beat track. [Driver] ties renderer and timeline to the Ebitengine
// game loop and owns resize handling and cancellation.
//
// [Ebitengine]: https://ebitengine.org
package nightfall
