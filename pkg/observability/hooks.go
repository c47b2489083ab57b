// Package observability provides hooks for timing and logging renders.
//
// The rendering core calls hooks at the start and end of each generate and
// export. Hooks default to no-ops; the CLI registers a logging
// implementation when run with --verbose.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnGenerateStart(ctx, style, width, height)
//	// ... draw ...
//	observability.Render().OnGenerateComplete(ctx, style, commands, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the dispatcher and exporter.
type RenderHooks interface {
	// Generate events
	OnGenerateStart(ctx context.Context, style string, width, height int)
	OnGenerateComplete(ctx context.Context, style string, commands int, duration time.Duration, err error)

	// Export events
	OnExport(ctx context.Context, path string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnGenerateStart(context.Context, string, int, int) {}
func (NoopRenderHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {}
func (NoopRenderHooks) OnExport(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
