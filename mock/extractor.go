package mock

import "github.com/fwojciec/tpdb"

var _ tpdb.PosterExtractor = (*PosterExtractor)(nil)

// PosterExtractor is a mock implementation of tpdb.PosterExtractor.
type PosterExtractor struct {
	ExtractPostersFn func(html string) ([]tpdb.Poster, error)
}

func (e *PosterExtractor) ExtractPosters(html string) ([]tpdb.Poster, error) {
	return e.ExtractPostersFn(html)
}
