package tpdb

import "sort"

// Registry groups content by kind in insertion order and links seasons to
// their shows as content is added.
type Registry struct {
	byKind  map[Kind][]Content
	shows   []*Show
	seasons []*Season
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[Kind][]Content),
	}
}

// Collect builds a registry from posters in the order given.
// The first poster that cannot be classified aborts collection.
func Collect(posters []Poster, opts Options) (*Registry, error) {
	r := NewRegistry()
	for _, p := range posters {
		c, err := NewContent(p, opts.AlwaysQuote)
		if err != nil {
			return nil, err
		}
		r.Add(c)
	}
	return r, nil
}

// Add records c. A season is attached to the first show it belongs to; a
// show adopts every earlier season that belongs to it. Content whose raw
// title repeats an earlier title of the same kind displays its year.
// Seasons remain in the flat season list even when attached to a show.
func (r *Registry) Add(c Content) {
	switch c := c.(type) {
	case *Season:
		for _, show := range r.shows {
			if c.BelongsTo(show) {
				show.Seasons[c.Number] = len(r.seasons)
				break
			}
		}
		r.seasons = append(r.seasons, c)
	case *Show:
		for i, season := range r.seasons {
			if season.BelongsTo(c) {
				c.Seasons[season.Number] = i
			}
		}
		r.shows = append(r.shows, c)
	}

	base := c.Base()
	for _, existing := range r.byKind[c.Kind()] {
		if existing.Base().Title.Raw == base.Title.Raw {
			base.Title.UseYear = true
			break
		}
	}

	r.byKind[c.Kind()] = append(r.byKind[c.Kind()], c)
}

// Len returns the total number of content recorded, seasons included.
func (r *Registry) Len() int {
	n := 0
	for _, contents := range r.byKind {
		n += len(contents)
	}
	return n
}

// Contents returns the content of kind k in insertion order.
func (r *Registry) Contents(k Kind) []Content {
	return r.byKind[k]
}

// Shows returns all shows in insertion order.
func (r *Registry) Shows() []*Show {
	return r.shows
}

// Seasons returns all seasons in insertion order, attached or not.
func (r *Registry) Seasons() []*Season {
	return r.seasons
}

// SeasonsOf returns the seasons attached to show in ascending season number.
func (r *Registry) SeasonsOf(show *Show) []*Season {
	numbers := make([]int, 0, len(show.Seasons))
	for n := range show.Seasons {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	seasons := make([]*Season, 0, len(numbers))
	for _, n := range numbers {
		seasons = append(seasons, r.seasons[show.Seasons[n]])
	}
	return seasons
}
