package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchService provides catalog search operations.
type SearchService struct {
	client *Client
}

// Search types accepted by the Web API.
const (
	SearchTypeArtist = "artist"
	SearchTypeTrack  = "track"
)

// Artists searches the catalog for artists matching query.
//
// Results are returned in the service's relevance order. An empty slice
// means nothing matched; it is not an error.
//
// Example:
//
//	artists, err := client.Search().Artists(ctx, "Radiohead", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if len(artists) > 0 {
//	    fmt.Println(artists[0].ID)
//	}
func (s *SearchService) Artists(ctx context.Context, query string, limit int) ([]Artist, error) {
	var resp artistSearchResponse
	if err := s.client.get(ctx, "/search", searchParams(query, SearchTypeArtist, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Artists.Items, nil
}

// Tracks searches the catalog for tracks matching query.
//
// Field filters such as "artist:" and "track:" are passed through
// unchanged.
func (s *SearchService) Tracks(ctx context.Context, query string, limit int) ([]Track, error) {
	var resp trackSearchResponse
	if err := s.client.get(ctx, "/search", searchParams(query, SearchTypeTrack, limit), &resp); err != nil {
		return nil, err
	}
	return resp.Tracks.Items, nil
}

// TrackQuery builds a track search scoped to one artist.
func TrackQuery(artistName, trackName string) string {
	return fmt.Sprintf("artist:%s track:%s", artistName, trackName)
}

func searchParams(query, searchType string, limit int) url.Values {
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", searchType)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return params
}
