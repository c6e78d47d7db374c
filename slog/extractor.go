package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/tpdb"
)

// Ensure LoggingPosterExtractor implements tpdb.PosterExtractor.
var _ tpdb.PosterExtractor = (*LoggingPosterExtractor)(nil)

// LoggingPosterExtractor wraps a PosterExtractor with debug logging.
type LoggingPosterExtractor struct {
	next   tpdb.PosterExtractor
	logger *slog.Logger
}

// NewLoggingPosterExtractor creates a new LoggingPosterExtractor.
func NewLoggingPosterExtractor(next tpdb.PosterExtractor, logger *slog.Logger) *LoggingPosterExtractor {
	return &LoggingPosterExtractor{next: next, logger: logger}
}

// ExtractPosters delegates to the wrapped extractor and logs how many
// posters were found.
func (e *LoggingPosterExtractor) ExtractPosters(html string) (posters []tpdb.Poster, err error) {
	defer func(begin time.Time) {
		e.logger.Info("poster extraction",
			"bytes", len(html),
			"count", len(posters),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPosters(html)
}
