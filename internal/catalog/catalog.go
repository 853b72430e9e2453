// Package catalog turns Spotify catalog responses into music records.
//
// Resolver maps free text to an artist identity; Queries offers the three
// per-artist lookups. Both are stateless over the client they wrap.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/jfmyers9/discog/internal/music"
	"github.com/jfmyers9/discog/pkg/spotify"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrNotFound is returned when a search matches nothing. It is an
	// expected outcome, not a failure.
	ErrNotFound = errors.New("no match found")

	// ErrEmptyQuery is returned for a blank search query. No request is made.
	ErrEmptyQuery = errors.New("search query is empty")
)

// DefaultMarket is the market used for top tracks when none is configured.
const DefaultMarket = "US"

// Searcher is the search surface of the catalog client.
type Searcher interface {
	Artists(ctx context.Context, query string, limit int) ([]spotify.Artist, error)
	Tracks(ctx context.Context, query string, limit int) ([]spotify.Track, error)
}

// ArtistLookup is the per-artist surface of the catalog client.
type ArtistLookup interface {
	TopTracks(ctx context.Context, artistID, market string) ([]spotify.Track, error)
	Albums(ctx context.Context, artistID string) ([]spotify.Album, error)
}

// normalizeQuery trims surrounding whitespace and puts the text in NFC so
// composed and decomposed accents search the same way.
func normalizeQuery(query string) string {
	return norm.NFC.String(strings.TrimSpace(query))
}

func trackFromWire(t spotify.Track) music.Track {
	url := t.PreviewURL
	if url == "" {
		url = t.ExternalURLs.Spotify
	}
	return music.Track{
		Name:     t.Name,
		Duration: t.Duration(),
		URL:      url,
	}
}
