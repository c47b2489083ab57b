// Package scene describes a background image as data.
//
// # Overview
//
// A [Scene] is a canvas size, a background [Gradient] and an ordered list of
// [Command] values. Commands are immutable: each one carries its own shape,
// fill, stroke and glow, so nothing a pattern sets can leak into the next
// primitive. Renderers (see package render) replay the list in order.
//
// Pattern generators never touch pixels. They append commands to a
// [Recorder]:
//
//	rec := scene.NewRecorder(800, 600)
//	rec.Add(scene.Line(scene.Pt(0, 0), scene.Pt(800, 600)).
//	    Stroked(scene.RGBA(0, 255, 255, 0.3), 1).
//	    As(scene.RoleConnection))
//	s := rec.Scene(background)
//
// # Roles
//
// Every command may be tagged with a [Role] (connection, node, particle ...).
// Roles have no effect on rendering; they make the structure of a pattern
// observable, e.g. [Scene.Count] reports how many connections were drawn.
package scene
