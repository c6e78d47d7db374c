package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tpdb"
)

// Ensure PosterExtractor implements tpdb.PosterExtractor at compile time.
var _ tpdb.PosterExtractor = (*PosterExtractor)(nil)

// CSS selectors and attributes describing a TPDb set page.
const (
	// PosterSelector matches one poster overlay per listed item.
	PosterSelector = "div.overlay.rounded-poster"

	// PrimarySetSelector matches the container of the page's own posters,
	// as opposed to the "Additional Sets" listed below it.
	PrimarySetSelector = "div.row.d-flex.flex-wrap.m-0.w-100.mx-n1.mt-n1"

	// TitleSelector matches the title paragraph inside a poster overlay.
	TitleSelector = "p.p-0.mb-1.text-break"

	PosterIDAttr   = "data-poster-id"
	PosterTypeAttr = "data-poster-type"
)

// PosterExtractor reads poster overlays from TPDb set pages.
type PosterExtractor struct {
	primaryOnly bool
}

// Option configures a PosterExtractor.
type Option func(*PosterExtractor)

// WithPrimaryOnly restricts extraction to the primary set, ignoring any
// additional sets on the page.
func WithPrimaryOnly() Option {
	return func(e *PosterExtractor) {
		e.primaryOnly = true
	}
}

// NewPosterExtractor creates a new PosterExtractor.
func NewPosterExtractor(opts ...Option) *PosterExtractor {
	e := &PosterExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractPosters parses HTML and returns posters in document order.
// Returns ENOTFOUND if only the primary set is requested and the page has
// none, and EINVALID if a poster overlay lacks its ID, type or title.
func (e *PosterExtractor) ExtractPosters(html string) ([]tpdb.Poster, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tpdb.Errorf(tpdb.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Selection
	if e.primaryOnly {
		root = doc.Find(PrimarySetSelector).First()
		if root.Length() == 0 {
			return nil, tpdb.Errorf(tpdb.ENOTFOUND, "primary poster set not found")
		}
	}

	var posters []tpdb.Poster
	var extractErr error
	root.Find(PosterSelector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		p, err := extractPoster(sel)
		if err != nil {
			extractErr = tpdb.Errorf(tpdb.EINVALID, "poster %d: %s", i+1, tpdb.ErrorMessage(err))
			return false
		}
		posters = append(posters, p)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return posters, nil
}

// extractPoster reads the ID, type and title of a single poster overlay.
func extractPoster(sel *goquery.Selection) (tpdb.Poster, error) {
	id, ok := sel.Attr(PosterIDAttr)
	if !ok {
		return tpdb.Poster{}, tpdb.Errorf(tpdb.EINVALID, "missing %s attribute", PosterIDAttr)
	}

	typ, ok := sel.Attr(PosterTypeAttr)
	if !ok {
		return tpdb.Poster{}, tpdb.Errorf(tpdb.EINVALID, "missing %s attribute", PosterTypeAttr)
	}

	title := sel.Find(TitleSelector).First()
	if title.Length() == 0 {
		return tpdb.Poster{}, tpdb.Errorf(tpdb.EINVALID, "missing title for poster %s", id)
	}

	return tpdb.Poster{
		ID:    strings.TrimSpace(id),
		Type:  typ,
		Title: strings.TrimSpace(title.Text()),
	}, nil
}
