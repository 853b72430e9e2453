package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchService_Artists(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantNames []string
		wantErr   bool
	}{
		{
			name:      "single match",
			response:  `{"artists":{"items":[{"id":"4Z8W4fKeB5YxbusRsdQVPb","name":"Radiohead"}]}}`,
			wantNames: []string{"Radiohead"},
		},
		{
			name:      "no match",
			response:  `{"artists":{"items":[]}}`,
			wantNames: []string{},
		},
		{
			name:     "missing artists container",
			response: `{"tracks":{"items":[]}}`,
			wantErr:  true,
		},
		{
			name:     "artist without id",
			response: `{"artists":{"items":[{"name":"Radiohead"}]}}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search" {
					t.Errorf("expected path /search, got %s", r.URL.Path)
				}
				q := r.URL.Query()
				if got := q.Get("q"); got != "Radiohead" {
					t.Errorf("expected q Radiohead, got %q", got)
				}
				if got := q.Get("type"); got != "artist" {
					t.Errorf("expected type artist, got %q", got)
				}
				if got := q.Get("limit"); got != "1" {
					t.Errorf("expected limit 1, got %q", got)
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			artists, err := client.Search().Artists(context.Background(), "Radiohead", 1)

			if tt.wantErr {
				var respErr *ResponseError
				if !errors.As(err, &respErr) {
					t.Fatalf("expected *ResponseError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(artists) != len(tt.wantNames) {
				t.Fatalf("expected %d artists, got %d", len(tt.wantNames), len(artists))
			}
			for i, name := range tt.wantNames {
				if artists[i].Name != name {
					t.Errorf("expected artist %d to be %q, got %q", i, name, artists[i].Name)
				}
			}
		})
	}
}

func TestSearchService_Tracks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("q"); got != "artist:Radiohead track:Creep" {
			t.Errorf("expected scoped query, got %q", got)
		}
		if got := q.Get("type"); got != "track" {
			t.Errorf("expected type track, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tracks":{"items":[{"id":"t1","name":"Creep","duration_ms":238640,
			"preview_url":"https://p.scdn.co/mp3-preview/creep",
			"external_urls":{"spotify":"https://open.spotify.com/track/t1"}}]}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	tracks, err := client.Search().Tracks(context.Background(), TrackQuery("Radiohead", "Creep"), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	if tracks[0].Name != "Creep" {
		t.Errorf("expected Creep, got %q", tracks[0].Name)
	}
	if got := tracks[0].Duration().Milliseconds(); got != 238640 {
		t.Errorf("expected 238640ms, got %d", got)
	}
	if tracks[0].PreviewURL != "https://p.scdn.co/mp3-preview/creep" {
		t.Errorf("unexpected preview url %q", tracks[0].PreviewURL)
	}
}

func TestSearchService_Tracks_MissingDuration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tracks":{"items":[{"id":"t1","name":"Creep"}]}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Search().Tracks(context.Background(), "Creep", 1)

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected *ResponseError, got %v", err)
	}
}
