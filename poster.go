package tpdb

import "context"

// Poster is a single poster overlay as scraped from a set page.
type Poster struct {
	ID    string
	Type  string
	Title string
}

// PageReader loads a saved set page.
type PageReader interface {
	// ReadPage returns the page at path decoded to UTF-8.
	// Returns ENOTFOUND if no file exists at path.
	ReadPage(ctx context.Context, path string) (html string, err error)
}

// PosterExtractor extracts poster overlays from a set page.
type PosterExtractor interface {
	// ExtractPosters parses HTML and returns posters in document order.
	// Returns EINVALID if a poster node lacks its ID, type or title.
	ExtractPosters(html string) ([]Poster, error)
}
