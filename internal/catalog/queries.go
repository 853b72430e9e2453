package catalog

import (
	"context"
	"fmt"

	"github.com/jfmyers9/discog/internal/music"
	"github.com/jfmyers9/discog/pkg/spotify"
	"github.com/rs/zerolog"
)

// Queries provides the per-artist catalog views.
type Queries struct {
	search  Searcher
	artists ArtistLookup
	market  string
	logger  zerolog.Logger
}

// NewQueries creates the catalog views. An empty market selects DefaultMarket.
func NewQueries(search Searcher, artists ArtistLookup, market string, logger zerolog.Logger) *Queries {
	if market == "" {
		market = DefaultMarket
	}
	return &Queries{
		search:  search,
		artists: artists,
		market:  market,
		logger:  logger.With().Str("component", "queries").Logger(),
	}
}

// New wires a Resolver and Queries to a Spotify client.
func New(client *spotify.Client, market string, logger zerolog.Logger) (*Resolver, *Queries) {
	return NewResolver(client.Search(), logger),
		NewQueries(client.Search(), client.Artists(), market, logger)
}

// TopTracks returns the artist's top tracks in the order the service ranks them.
func (q *Queries) TopTracks(ctx context.Context, artistID string) ([]music.Track, error) {
	wire, err := q.artists.TopTracks(ctx, artistID, q.market)
	if err != nil {
		return nil, fmt.Errorf("failed to get top tracks: %w", err)
	}

	tracks := make([]music.Track, 0, len(wire))
	for _, t := range wire {
		tracks = append(tracks, trackFromWire(t))
	}

	q.logger.Debug().Str("artist_id", artistID).Int("count", len(tracks)).Msg("Fetched top tracks")
	return tracks, nil
}

// Albums returns the artist's albums in service order, variants included.
func (q *Queries) Albums(ctx context.Context, artistID string) ([]music.Album, error) {
	wire, err := q.artists.Albums(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get albums: %w", err)
	}

	albums := make([]music.Album, 0, len(wire))
	for _, a := range wire {
		albums = append(albums, music.Album{Name: a.Name})
	}

	q.logger.Debug().Str("artist_id", artistID).Int("count", len(albums)).Msg("Fetched albums")
	return albums, nil
}

// FindTrack searches for a track by name within one artist's catalog.
//
// The search is scoped with the artist's display name and limited to one
// result. ErrNotFound is returned when nothing matches.
func (q *Queries) FindTrack(ctx context.Context, artist music.Artist, trackQuery string) (music.Track, error) {
	trackQuery = normalizeQuery(trackQuery)
	if trackQuery == "" {
		return music.Track{}, ErrEmptyQuery
	}

	wire, err := q.search.Tracks(ctx, spotify.TrackQuery(artist.Name, trackQuery), 1)
	if err != nil {
		return music.Track{}, fmt.Errorf("failed to search for track %q: %w", trackQuery, err)
	}

	if len(wire) == 0 {
		q.logger.Debug().Str("artist_id", artist.ID).Str("query", trackQuery).Msg("No track matched")
		return music.Track{}, ErrNotFound
	}

	return trackFromWire(wire[0]), nil
}
