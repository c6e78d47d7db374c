// Package tpdb turns saved ThePosterDB set pages into Plex-Meta-Manager
// poster listings. It reads poster overlays, normalises their titles,
// groups seasons under their shows, and renders a text report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, slog/).
package tpdb

// Options configures how posters are collected and how the report is
// rendered.
type Options struct {
	// AlwaysQuote wraps every title in quotes, not only those containing ": ".
	AlwaysQuote bool

	// Indent is the number of spaces per nesting level.
	Indent int

	// LeadingIndent is the number of spaces written before every content line.
	LeadingIndent int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Indent: 2}
}

// Validate returns an error if the options cannot produce a report.
func (o Options) Validate() error {
	if o.Indent < 0 {
		return Errorf(EINVALID, "indent must not be negative, got %d", o.Indent)
	}
	if o.LeadingIndent < 0 {
		return Errorf(EINVALID, "leading indent must not be negative, got %d", o.LeadingIndent)
	}
	return nil
}
