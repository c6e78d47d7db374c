package tpdb_test

import (
	"testing"

	"github.com/fwojciec/tpdb"
	"github.com/stretchr/testify/assert"
)

func TestParseTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		yearless string
	}{
		{"strips trailing year", "Inception (2010)", "Inception"},
		{"keeps title without year", "The Matrix Collection", "The Matrix Collection"},
		{"strips year and season marker", "Severance (2022) - Season 1", "Severance"},
		{"strips year and specials marker", "Show (2020) - Specials", "Show"},
		{"strips season marker without year", "Loki - Season 2", "Loki"},
		{"strips specials marker without year", "Loki - Specials", "Loki"},
		{"strips only the last year", "Blade Runner (1982) (2049)", "Blade Runner (1982)"},
		{"ignores year in the middle", "Dune (2021) Part One", "Dune (2021) Part One"},
		{"ignores non-numeric parentheses", "Halloween (Remake)", "Halloween (Remake)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			title := tpdb.ParseTitle(tt.raw, false)

			assert.Equal(t, tt.raw, title.Raw)
			assert.Equal(t, tt.yearless, title.Yearless)
			assert.False(t, title.UseYear)
		})
	}
}

func TestParseTitle_Quoting(t *testing.T) {
	t.Parallel()

	t.Run("quotes titles containing colon and space", func(t *testing.T) {
		t.Parallel()

		title := tpdb.ParseTitle("Show: Subtitle", false)

		assert.True(t, title.MustQuote)
		assert.Equal(t, `"Show: Subtitle"`, title.Display())
	})

	t.Run("does not quote colon without space", func(t *testing.T) {
		t.Parallel()

		title := tpdb.ParseTitle("Re:Zero", false)

		assert.False(t, title.MustQuote)
		assert.Equal(t, "Re:Zero", title.Display())
	})

	t.Run("quotes everything when forced", func(t *testing.T) {
		t.Parallel()

		title := tpdb.ParseTitle("Dune (2021)", true)

		assert.Equal(t, `"Dune"`, title.Display())
	})
}

func TestTitle_Display(t *testing.T) {
	t.Parallel()

	t.Run("uses yearless title by default", func(t *testing.T) {
		t.Parallel()

		title := tpdb.ParseTitle("Dune (2021)", false)

		assert.Equal(t, "Dune", title.Display())
	})

	t.Run("uses raw title when year is required", func(t *testing.T) {
		t.Parallel()

		title := tpdb.ParseTitle("Dune (2021)", false)
		title.UseYear = true

		assert.Equal(t, "Dune (2021)", title.Display())
	})

	t.Run("quotes raw title when year is required", func(t *testing.T) {
		t.Parallel()

		title := tpdb.Title{Raw: "Dune (1984)", Yearless: "Dune", UseYear: true, MustQuote: true}

		assert.Equal(t, `"Dune (1984)"`, title.Display())
	})
}

func TestParseSeasonNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		number int
		ok     bool
	}{
		{"numbered season", "Loki - Season 2", 2, true},
		{"specials are season zero", "Loki - Specials", 0, true},
		{"season with year", "Fargo (2014) - Season 3", 3, true},
		{"multi-digit season", "The Simpsons (1989) - Season 34", 34, true},
		{"no marker", "Loki (2021)", 0, false},
		{"marker must be a suffix", "Loki - Season 2 Poster", 0, false},
		{"marker needs separator", "Season 2", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			number, ok := tpdb.ParseSeasonNumber(tt.raw)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.number, number)
		})
	}
}
