package tpdb

import (
	"fmt"
	"strings"
)

// Kind identifies the type of content a poster belongs to.
type Kind string

// Supported content kinds.
const (
	KindCategory   Kind = "category"
	KindCollection Kind = "collection"
	KindShow       Kind = "show"
	KindMovie      Kind = "movie"
	KindCompany    Kind = "company"
	KindSeason     Kind = "season"
)

// ParseKind converts a scraped poster type (e.g. "Movie") into a Kind.
// Returns EINVALID for unknown types.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCategory, KindCollection, KindShow, KindMovie, KindCompany, KindSeason:
		return k, nil
	}
	return "", Errorf(EINVALID, "unknown poster type %q", s)
}

// Plural returns the label used for a report section of this kind.
func (k Kind) Plural() string {
	switch k {
	case KindCategory:
		return "categories"
	case KindCompany:
		return "companies"
	}
	return string(k) + "s"
}

// AssetURLFormat is the TPDb poster download URL, parameterised by poster ID.
const AssetURLFormat = "https://theposterdb.com/api/assets/%s"

// AssetURL returns the poster download URL for a poster ID.
func AssetURL(posterID string) string {
	return fmt.Sprintf(AssetURLFormat, posterID)
}

// Content is a poster classified into one of its kinds. It is implemented
// by *Item, *Show and *Season only.
type Content interface {
	// Kind returns the kind of content.
	Kind() Kind

	// Base returns the fields shared by all kinds.
	Base() *Entry

	isContent()
}

// Entry holds the fields shared by every kind of content.
type Entry struct {
	PosterID string
	Title    Title
}

// Base returns the entry itself.
func (e *Entry) Base() *Entry { return e }

// URL returns the poster download URL.
func (e *Entry) URL() string { return AssetURL(e.PosterID) }

// Item is a category, collection, movie or company.
type Item struct {
	Entry
	kind Kind
}

func (i *Item) Kind() Kind { return i.kind }
func (*Item) isContent()   {}

// Show is a TV show. Its seasons are referenced by position in the owning
// registry rather than held directly.
type Show struct {
	Entry

	// Seasons maps a season number to the index of the season in the
	// registry's season list.
	Seasons map[int]int
}

func (*Show) Kind() Kind { return KindShow }
func (*Show) isContent() {}

// Season is a single season (or the specials) of a show.
type Season struct {
	Entry

	// Number is the season number; 0 for specials.
	Number int
}

func (*Season) Kind() Kind { return KindSeason }
func (*Season) isContent() {}

// BelongsTo reports whether s is a season of show. Yearless titles must be
// equal and the show's raw title must appear within the season's raw title.
func (s *Season) BelongsTo(show *Show) bool {
	return s.Title.Yearless == show.Title.Yearless &&
		strings.Contains(s.Title.Raw, show.Title.Raw)
}

// NewContent classifies a poster. Titles ending in a season marker become
// seasons whatever the scraped type says. Returns EINVALID for unknown
// poster types and for seasons without a season marker.
func NewContent(p Poster, mustQuote bool) (Content, error) {
	entry := Entry{
		PosterID: p.ID,
		Title:    ParseTitle(p.Title, mustQuote),
	}

	if n, ok := ParseSeasonNumber(p.Title); ok {
		return &Season{Entry: entry, Number: n}, nil
	}

	kind, err := ParseKind(p.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindShow:
		return &Show{Entry: entry, Seasons: make(map[int]int)}, nil
	case KindSeason:
		return nil, Errorf(EINVALID, "season %q has no season number", p.Title)
	default:
		return &Item{Entry: entry, kind: kind}, nil
	}
}
