package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/tpdb"
	"github.com/fwojciec/tpdb/mock"
	tpdbslog "github.com/fwojciec/tpdb/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPosterExtractor_ExtractPosters(t *testing.T) {
	t.Parallel()

	t.Run("logs poster count with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PosterExtractor{
			ExtractPostersFn: func(html string) ([]tpdb.Poster, error) {
				return []tpdb.Poster{
					{ID: "1", Type: "Show", Title: "Loki"},
					{ID: "2", Type: "Season", Title: "Loki - Season 1"},
				}, nil
			},
		}

		e := tpdbslog.NewLoggingPosterExtractor(inner, logger)
		posters, err := e.ExtractPosters("<html></html>")

		require.NoError(t, err)
		assert.Len(t, posters, 2)
		output := buf.String()
		assert.Contains(t, output, "poster extraction")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PosterExtractor{
			ExtractPostersFn: func(html string) ([]tpdb.Poster, error) {
				return nil, errors.New("parse failed")
			},
		}

		e := tpdbslog.NewLoggingPosterExtractor(inner, logger)
		_, err := e.ExtractPosters("<html>")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "poster extraction")
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "err=\"parse failed\"")
	})
}
