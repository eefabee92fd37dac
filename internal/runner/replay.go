package runner

import (
	"context"
	"io"
	"log/slog"

	"kytoken/internal/storage"
)

// ReplayRunner serves analyzer output recorded earlier, for machines
// without the analyzer installed. The input is not read.
type ReplayRunner struct {
	path   string
	logger *slog.Logger
}

// Run returns the recorded output.
func (r *ReplayRunner) Run(ctx context.Context, _ io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LaunchError{Op: "replay", Err: err}
	}

	out, err := storage.ReadFile(r.path)
	if err != nil {
		return nil, &LaunchError{Op: "replay", Err: err}
	}

	r.logger.Debug("replayed analyzer output",
		"path", r.path,
		"compression", storage.CompressionFor(r.path),
		"output_bytes", len(out),
	)
	return out, nil
}
