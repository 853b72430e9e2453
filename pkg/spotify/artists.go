package spotify

import (
	"context"
	"net/url"
)

// ArtistService provides per-artist catalog lookups.
type ArtistService struct {
	client *Client
}

// TopTracks returns an artist's most popular tracks in a market.
//
// The service caps the list (currently at 10) and orders it by
// popularity; the order is preserved.
func (s *ArtistService) TopTracks(ctx context.Context, artistID, market string) ([]Track, error) {
	params := url.Values{}
	if market != "" {
		params.Set("country", market)
	}

	var resp topTracksResponse
	if err := s.client.get(ctx, "/artists/"+url.PathEscape(artistID)+"/top-tracks", params, &resp); err != nil {
		return nil, err
	}
	return resp.Tracks, nil
}

// Albums returns the first page of an artist's albums in service order.
//
// Reissues and regional variants are returned as the service lists them.
func (s *ArtistService) Albums(ctx context.Context, artistID string) ([]Album, error) {
	var resp albumsResponse
	if err := s.client.get(ctx, "/artists/"+url.PathEscape(artistID)+"/albums", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
