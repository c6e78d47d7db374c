// Package slog provides logging decorators for tpdb services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tpdb"
)

// Ensure LoggingPageReader implements tpdb.PageReader.
var _ tpdb.PageReader = (*LoggingPageReader)(nil)

// LoggingPageReader wraps a PageReader with debug logging.
type LoggingPageReader struct {
	next   tpdb.PageReader
	logger *slog.Logger
}

// NewLoggingPageReader creates a new LoggingPageReader.
func NewLoggingPageReader(next tpdb.PageReader, logger *slog.Logger) *LoggingPageReader {
	return &LoggingPageReader{next: next, logger: logger}
}

// ReadPage delegates to the wrapped reader and logs the operation.
func (r *LoggingPageReader) ReadPage(ctx context.Context, path string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("page read",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadPage(ctx, path)
}
