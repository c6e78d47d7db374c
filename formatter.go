package tpdb

import (
	"strconv"
	"strings"
)

// sectionOrder is the order in which report sections are written.
// Seasons are written under their shows, not as a section of their own.
var sectionOrder = []Kind{KindCategory, KindCollection, KindMovie, KindShow, KindCompany}

// UnassignedLabel is the label of the section listing seasons when the page
// contained no shows.
const UnassignedLabel = "Unassigned Content"

// FormatReport renders the registry as PMM-style YAML fragments grouped into
// commented sections. Returns an empty string for an empty registry.
func FormatReport(r *Registry, opts Options) string {
	f := formatter{
		lead:   strings.Repeat(" ", opts.LeadingIndent),
		indent: strings.Repeat(" ", opts.Indent),
	}

	var b strings.Builder
	for _, kind := range sectionOrder {
		contents := r.Contents(kind)
		if len(contents) == 0 {
			continue
		}
		writeDivider(&b, kind.Plural())
		for _, c := range contents {
			f.writeContent(&b, r, c)
		}
	}

	if len(r.Seasons()) > 0 && len(r.Shows()) == 0 {
		writeDivider(&b, UnassignedLabel)
		for _, s := range r.Seasons() {
			b.WriteString(f.lead)
			b.WriteString(seasonLine(s))
			b.WriteString("\n")
		}
	}

	return b.String()
}

type formatter struct {
	lead   string
	indent string
}

func (f formatter) writeContent(b *strings.Builder, r *Registry, c Content) {
	base := c.Base()
	b.WriteString(f.lead + base.Title.Display() + ":\n")
	b.WriteString(f.lead + f.indent + "url_poster: " + base.URL() + "\n")

	show, ok := c.(*Show)
	if !ok || len(show.Seasons) == 0 {
		return
	}
	b.WriteString(f.lead + f.indent + "seasons:\n")
	for _, s := range r.SeasonsOf(show) {
		b.WriteString(f.lead + f.indent + f.indent + seasonLine(s) + "\n")
	}
}

// seasonLine renders a season as a single flow-style mapping entry.
func seasonLine(s *Season) string {
	return strconv.Itoa(s.Number) + ": {url_poster: " + s.URL() + "}"
}

func writeDivider(b *strings.Builder, label string) {
	rule := "# " + strings.Repeat("-", 80) + "\n"
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("# " + label + "\n")
	b.WriteString(rule)
}
