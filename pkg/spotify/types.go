package spotify

import (
	"fmt"
	"time"
)

// Token is a client-credentials bearer token.
type Token struct {
	AccessToken string    // Value sent in the Authorization header
	TokenType   string    // Usually "Bearer"
	Expiry      time.Time // Reported expiry; the client does not refresh
}

// ExternalURLs holds the public web links of a catalog object.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// Artist is an artist object as returned by search.
type Artist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

func (a Artist) validate() error {
	if a.ID == "" {
		return errMissingField("id")
	}
	if a.Name == "" {
		return errMissingField("name")
	}
	return nil
}

// Track is a track object as returned by search and top-tracks.
type Track struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DurationMs   *int         `json:"duration_ms"`
	PreviewURL   string       `json:"preview_url"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// Duration returns the track length. It is zero when the service did not
// report one.
func (t Track) Duration() time.Duration {
	if t.DurationMs == nil {
		return 0
	}
	return time.Duration(*t.DurationMs) * time.Millisecond
}

func (t Track) validate() error {
	if t.Name == "" {
		return errMissingField("name")
	}
	if t.DurationMs == nil {
		return errMissingField("duration_ms")
	}
	return nil
}

// Album is a simplified album object as returned by the artist albums
// endpoint.
type Album struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AlbumType   string `json:"album_type"`
	ReleaseDate string `json:"release_date"`
}

func (a Album) validate() error {
	if a.Name == "" {
		return errMissingField("name")
	}
	return nil
}

// artistSearchResponse is the body of GET /search?type=artist.
type artistSearchResponse struct {
	Artists *struct {
		Items []Artist `json:"items"`
	} `json:"artists"`
}

func (r *artistSearchResponse) validate() error {
	if r.Artists == nil {
		return errMissingField("artists")
	}
	if r.Artists.Items == nil {
		return errMissingField("artists.items")
	}
	for i, a := range r.Artists.Items {
		if err := a.validate(); err != nil {
			return fmt.Errorf("artists.items[%d]: %w", i, err)
		}
	}
	return nil
}

// trackSearchResponse is the body of GET /search?type=track.
type trackSearchResponse struct {
	Tracks *struct {
		Items []Track `json:"items"`
	} `json:"tracks"`
}

func (r *trackSearchResponse) validate() error {
	if r.Tracks == nil {
		return errMissingField("tracks")
	}
	if r.Tracks.Items == nil {
		return errMissingField("tracks.items")
	}
	for i, t := range r.Tracks.Items {
		if err := t.validate(); err != nil {
			return fmt.Errorf("tracks.items[%d]: %w", i, err)
		}
	}
	return nil
}

// topTracksResponse is the body of GET /artists/{id}/top-tracks.
type topTracksResponse struct {
	Tracks []Track `json:"tracks"`
}

func (r *topTracksResponse) validate() error {
	if r.Tracks == nil {
		return errMissingField("tracks")
	}
	for i, t := range r.Tracks {
		if err := t.validate(); err != nil {
			return fmt.Errorf("tracks[%d]: %w", i, err)
		}
	}
	return nil
}

// albumsResponse is the body of GET /artists/{id}/albums.
type albumsResponse struct {
	Items []Album `json:"items"`
}

func (r *albumsResponse) validate() error {
	if r.Items == nil {
		return errMissingField("items")
	}
	for i, a := range r.Items {
		if err := a.validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}
