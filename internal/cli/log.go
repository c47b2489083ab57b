package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/backdrop/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Rendered 10 styles (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Render Hooks
// =============================================================================

// logHooks logs render and export events at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.RenderHooks = logHooks{}

func (h logHooks) OnGenerateStart(_ context.Context, style string, width, height int) {
	h.logger.Debug("generate", "style", style, "size", fmt.Sprintf("%dx%d", width, height))
}

func (h logHooks) OnGenerateComplete(_ context.Context, style string, commands int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "style", style, "err", err)
		return
	}
	h.logger.Debug("generate done", "style", style, "commands", commands, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnExport(_ context.Context, path string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("export done", "path", path, "bytes", size, "took", d.Round(time.Microsecond))
}
