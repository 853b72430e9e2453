package spotify

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	oauthspotify "golang.org/x/oauth2/spotify"
)

// DefaultTokenURL is the Spotify accounts token endpoint.
var DefaultTokenURL = oauthspotify.Endpoint.TokenURL

// AuthService provides the client-credentials token exchange.
type AuthService struct {
	client *Client
}

// AcquireToken exchanges the client credentials for a bearer token.
//
// The request is a form-encoded POST carrying grant_type=client_credentials
// with the credentials in a Basic Authorization header. On success the
// token is installed on the client and returned.
//
// The header follows RFC 6749 section 2.3.1: the ID and secret are
// form-URL-encoded before base64, so it is
// base64(QueryEscape(id) + ":" + QueryEscape(secret)). For the alphanumeric
// credentials Spotify issues this equals base64(id + ":" + secret).
//
// Any failure is reported as *AuthenticationError. No retry is performed.
//
// Example:
//
//	token, err := client.Auth().AcquireToken(ctx)
//	if err != nil {
//	    var authErr *spotify.AuthenticationError
//	    if errors.As(err, &authErr) {
//	        log.Fatalf("login rejected: %v", authErr)
//	    }
//	}
//	fmt.Println("token expires at", token.Expiry)
func (a *AuthService) AcquireToken(ctx context.Context) (*Token, error) {
	cfg := clientcredentials.Config{
		ClientID:     a.client.clientID,
		ClientSecret: a.client.clientSecret,
		TokenURL:     a.client.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// The oauth2 package picks its HTTP client out of the context.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.client.httpClient)

	a.client.logDebugf("spotify: requesting client credentials token from %s", a.client.tokenURL)

	tok, err := cfg.Token(ctx)
	if err != nil {
		authErr := &AuthenticationError{Err: err}
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			authErr.StatusCode = retrieveErr.Response.StatusCode
		}
		return nil, authErr
	}

	if tok.AccessToken == "" {
		return nil, &AuthenticationError{Err: fmt.Errorf("token response has no access_token")}
	}

	token := &Token{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		Expiry:      tok.Expiry,
	}
	a.client.SetToken(token)

	a.client.logDebugf("spotify: token acquired (expires %s)", token.Expiry)
	return token, nil
}
