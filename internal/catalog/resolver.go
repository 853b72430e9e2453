package catalog

import (
	"context"
	"fmt"

	"github.com/jfmyers9/discog/internal/music"
	"github.com/rs/zerolog"
)

// Resolver maps a typed artist name to a catalog identity.
type Resolver struct {
	search Searcher
	logger zerolog.Logger
}

// NewResolver creates a resolver over the given search client.
func NewResolver(search Searcher, logger zerolog.Logger) *Resolver {
	return &Resolver{
		search: search,
		logger: logger.With().Str("component", "resolver").Logger(),
	}
}

// ResolveArtist returns the most relevant artist for query.
//
// Exactly one search is issued, limited to a single result. ErrNotFound is
// returned when nothing matches; catalog failures are returned wrapped.
func (r *Resolver) ResolveArtist(ctx context.Context, query string) (music.Artist, error) {
	query = normalizeQuery(query)
	if query == "" {
		return music.Artist{}, ErrEmptyQuery
	}

	artists, err := r.search.Artists(ctx, query, 1)
	if err != nil {
		return music.Artist{}, fmt.Errorf("failed to search for artist %q: %w", query, err)
	}

	if len(artists) == 0 {
		r.logger.Debug().Str("query", query).Msg("No artist matched")
		return music.Artist{}, ErrNotFound
	}

	first := artists[0]
	r.logger.Debug().
		Str("query", query).
		Str("artist_id", first.ID).
		Str("artist", first.Name).
		Msg("Resolved artist")

	return music.Artist{ID: first.ID, Name: first.Name}, nil
}
