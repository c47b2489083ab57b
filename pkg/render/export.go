package render

import (
	"context"
	"os"
	"path/filepath"
	"time"

	errs "github.com/matzehuels/backdrop/pkg/errors"
	"github.com/matzehuels/backdrop/pkg/observability"
)

// DefaultFilename is the file name used when no output path is given.
const DefaultFilename = "linkedin-background.png"

// Export writes the surface as a PNG file at path, creating missing parent
// directories. An empty path means [DefaultFilename] in the working
// directory. It returns the number of bytes written.
func Export(ctx context.Context, s *Surface, path string) (n int, err error) {
	if path == "" {
		path = DefaultFilename
	}
	if err := errs.ValidateOutputPath(path); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	start := time.Now()
	defer func() {
		observability.Render().OnExport(ctx, path, n, time.Since(start), err)
	}()

	data, err := s.Snapshot()
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, errs.Wrap(errs.ErrCodeExport, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, errs.Wrap(errs.ErrCodeExport, err, "write %s", path)
	}
	return len(data), nil
}
