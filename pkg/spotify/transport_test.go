package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient returns a client pointed at server with a token installed.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		BaseURL:      server.URL,
		TokenURL:     server.URL + "/api/token",
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	client.SetToken(&Token{AccessToken: "test-token", TokenType: "Bearer"})
	return client
}

func TestClient_Get_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET request, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("expected Authorization %q, got %q", "Bearer test-token", auth)
		}
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("expected User-Agent %q, got %q", DefaultUserAgent, ua)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	var resp albumsResponse
	if err := client.get(context.Background(), "/artists/x/albums", nil, &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Get_RequiresToken(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestClient(t, server)
	client.SetToken(nil)

	var resp albumsResponse
	err := client.get(context.Background(), "/artists/x/albums", nil, &resp)
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("expected ErrNoToken, got %v", err)
	}
	if requests != 0 {
		t.Errorf("expected no requests, got %d", requests)
	}
}

func TestClient_Get_Errors(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantStatus  int
		wantMessage string
		wantRequest bool
		wantParse   bool
	}{
		{
			name:        "unauthorized with api error body",
			statusCode:  http.StatusUnauthorized,
			body:        `{"error":{"status":401,"message":"The access token expired"}}`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "The access token expired",
			wantRequest: true,
		},
		{
			name:        "not found without body",
			statusCode:  http.StatusNotFound,
			body:        ``,
			wantStatus:  http.StatusNotFound,
			wantRequest: true,
		},
		{
			name:        "rate limited",
			statusCode:  http.StatusTooManyRequests,
			body:        `{"error":{"status":429,"message":"API rate limit exceeded"}}`,
			wantStatus:  http.StatusTooManyRequests,
			wantMessage: "API rate limit exceeded",
			wantRequest: true,
		},
		{
			name:       "malformed json",
			statusCode: http.StatusOK,
			body:       `{"items": [`,
			wantParse:  true,
		},
		{
			name:       "mistyped field",
			statusCode: http.StatusOK,
			body:       `{"items": "nope"}`,
			wantParse:  true,
		},
		{
			name:       "missing container",
			statusCode: http.StatusOK,
			body:       `{}`,
			wantParse:  true,
		},
		{
			name:       "missing album name",
			statusCode: http.StatusOK,
			body:       `{"items": [{"id": "a1"}]}`,
			wantParse:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server)

			var resp albumsResponse
			err := client.get(context.Background(), "/artists/x/albums", nil, &resp)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var reqErr *RequestError
			var respErr *ResponseError
			switch {
			case tt.wantRequest:
				if !errors.As(err, &reqErr) {
					t.Fatalf("expected *RequestError, got %T: %v", err, err)
				}
				if reqErr.StatusCode != tt.wantStatus {
					t.Errorf("expected status %d, got %d", tt.wantStatus, reqErr.StatusCode)
				}
				if reqErr.Path != "/artists/x/albums" {
					t.Errorf("expected path /artists/x/albums, got %s", reqErr.Path)
				}
				if reqErr.Message != tt.wantMessage {
					t.Errorf("expected message %q, got %q", tt.wantMessage, reqErr.Message)
				}
				if !errors.Is(err, &RequestError{StatusCode: tt.wantStatus}) {
					t.Error("expected errors.Is to match on status code")
				}
			case tt.wantParse:
				if !errors.As(err, &respErr) {
					t.Fatalf("expected *ResponseError, got %T: %v", err, err)
				}
				if respErr.Path != "/artists/x/albums" {
					t.Errorf("expected path /artists/x/albums, got %s", respErr.Path)
				}
			}
		})
	}
}

func TestClient_Get_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(t, server)
	server.Close()

	var resp albumsResponse
	err := client.get(context.Background(), "/artists/x/albums", nil, &resp)

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
	if reqErr.StatusCode != 0 {
		t.Errorf("expected status 0 for transport failure, got %d", reqErr.StatusCode)
	}
	if reqErr.Err == nil {
		t.Error("expected underlying transport error")
	}
}
