// Package pkg provides the core libraries for backdrop background rendering.
//
// # Overview
//
// Backdrop draws procedural, tech-themed backgrounds (neural networks, data
// streams, circuit boards, matrix rain and six more) sized for profile
// banners. The pkg directory is organized leaf first:
//
//  1. [errors] - Coded errors and input validation
//  2. [scene] - Immutable draw commands, gradients and the command recorder
//  3. [fonts] - The embedded monospace face and text measurement
//  4. [patterns] - The ten pattern generators
//  5. [styles] - The style registry: key to title, gradient and pattern
//  6. [render] - Surface, command replay with glow, dispatcher and PNG export
//  7. [config] - TOML settings
//  8. [observability] - Render and export hooks
//
// # Architecture
//
// The data flow for one render:
//
//	style key
//	    ↓
//	[styles] registry (resolve gradient + pattern)
//	    ↓
//	[patterns] generator with a seeded RNG → [scene] commands
//	    ↓
//	[render] surface (clear, gradient, replay, glow)
//	    ↓
//	PNG bytes / file
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/backdrop/pkg/render"
//	)
//
//	d := render.NewDispatcher(nil, render.WithSeed(42))
//	var s render.Surface
//	if _, err := d.Generate(context.Background(), &s, "ai_circuit", 1584, 396); err != nil {
//	    return err
//	}
//	_, err := render.Export(context.Background(), &s, "banner.png")
//
// [errors]: github.com/matzehuels/backdrop/pkg/errors
// [scene]: github.com/matzehuels/backdrop/pkg/scene
// [fonts]: github.com/matzehuels/backdrop/pkg/fonts
// [patterns]: github.com/matzehuels/backdrop/pkg/patterns
// [styles]: github.com/matzehuels/backdrop/pkg/styles
// [render]: github.com/matzehuels/backdrop/pkg/render
// [config]: github.com/matzehuels/backdrop/pkg/config
// [observability]: github.com/matzehuels/backdrop/pkg/observability
package pkg
