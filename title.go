package tpdb

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// yearRe matches a trailing "(YYYY)", optionally followed by a season marker.
	yearRe = regexp.MustCompile(`^(.*) \(\d+\)($| - (?:Season \d+|Specials))$`)

	// seasonRe matches a trailing " - Season N" or " - Specials".
	seasonRe = regexp.MustCompile(`^(.*) - (?:Season (\d+)|(Specials))$`)
)

// Title is a scraped title together with its normalised forms.
type Title struct {
	// Raw is the title exactly as scraped.
	Raw string

	// Yearless is Raw without its trailing year and season marker.
	// Equals Raw when neither is present.
	Yearless string

	// UseYear forces Raw to be displayed. Set when another content of the
	// same kind has an identical raw title.
	UseYear bool

	// MustQuote wraps the displayed title in quotes.
	MustQuote bool
}

// ParseTitle derives the normalised forms of raw. Titles containing ": "
// are always quoted.
func ParseTitle(raw string, mustQuote bool) Title {
	t := Title{
		Raw:       raw,
		Yearless:  raw,
		MustQuote: mustQuote || strings.Contains(raw, ": "),
	}
	if m := yearRe.FindStringSubmatch(raw); m != nil {
		t.Yearless = m[1]
	} else if m := seasonRe.FindStringSubmatch(raw); m != nil {
		t.Yearless = m[1]
	}
	return t
}

// Display returns the title as it appears in the report.
func (t Title) Display() string {
	title := t.Yearless
	if t.UseYear {
		title = t.Raw
	}
	if t.MustQuote {
		return `"` + title + `"`
	}
	return title
}

// ParseSeasonNumber extracts the season number from a title ending in
// " - Season N" or " - Specials". Specials are season 0.
// Reports false when the title carries no season marker.
func ParseSeasonNumber(raw string) (int, bool) {
	m := seasonRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	if m[3] != "" {
		return 0, true
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		// Digits too long for an int.
		return 0, false
	}
	return n, true
}
