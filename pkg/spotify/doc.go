// Package spotify provides a small client for the Spotify Web API catalog.
//
// # Overview
//
// The package covers the read-only endpoints needed to look up an artist
// and browse their catalog with an application (client-credentials)
// token: artist and track search, an artist's top tracks, and an
// artist's albums.
//
// # Quick Start
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := client.Auth().AcquireToken(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	artists, err := client.Search().Artists(ctx, "Radiohead", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tracks, err := client.Artists().TopTracks(ctx, artists[0].ID, "US")
//
// # Tokens
//
// AcquireToken is called once. The token is kept on the Client and sent
// with every request. Expiry is recorded but never acted upon: long
// running callers must acquire a new token themselves.
//
// # Error Handling
//
// Failures are typed so callers can react per class:
//
//	tracks, err := client.Artists().TopTracks(ctx, id, "US")
//	if err != nil {
//	    var reqErr *spotify.RequestError
//	    var respErr *spotify.ResponseError
//	    switch {
//	    case errors.As(err, &reqErr):
//	        // transport failure or non-2xx, reqErr.StatusCode and reqErr.Path
//	    case errors.As(err, &respErr):
//	        // body was not valid JSON or lacked required fields
//	    }
//	}
//
// Token exchange failures are reported as *AuthenticationError.
//
// # Configuration
//
// Base URLs can be overridden for testing, and an optional logger
// receives debug output:
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "id",
//	    ClientSecret: "secret",
//	    HTTPClient:   &http.Client{Timeout: 10 * time.Second},
//	    BaseURL:      server.URL,
//	    TokenURL:     server.URL + "/api/token",
//	    Logger:       myLogger,
//	})
//
// There is no pagination, rate-limit handling or retry logic.
package spotify
