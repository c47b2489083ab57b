// Package render turns styled scenes into raster images.
//
// # Overview
//
// Rendering is split into a pure half and a pixel half:
//
//   - [Dispatcher.Compose] resolves a style, validates the canvas size and
//     runs the style's pattern with a seeded generator, producing a
//     [scene.Scene] of immutable draw commands.
//   - [Surface.Paint] clears the surface, fills the background gradient and
//     replays the commands, setting and restoring drawing state per command.
//
// [Dispatcher.Generate] does both, validating everything before the surface
// is touched. A failed generate leaves the previous image intact.
//
//	d := render.NewDispatcher(styles.Default())
//	var s render.Surface
//	res, err := d.Generate(ctx, &s, "quantum_ai", 1584, 396)
//	png, err := s.Snapshot()
//
// # Export
//
// [Surface.Snapshot] encodes the current pixels as PNG and [Export] writes
// them to a file. Encoding and write failures are reported as
// EXPORT_FAILED errors.
//
// # Glow
//
// Commands with a [scene.Glow] get a halo: the shape is painted in the glow
// colour onto a small transparent layer, blurred with a Gaussian of sigma
// blur/2, and composited beneath the shape.
//
// [scene.Scene]: github.com/matzehuels/backdrop/pkg/scene
// [scene.Glow]: github.com/matzehuels/backdrop/pkg/scene
package render
