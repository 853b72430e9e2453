package spotify

import (
	"fmt"
	"net/http"
)

// Config holds client configuration.
type Config struct {
	ClientID     string       // Required: Spotify application client ID
	ClientSecret string       // Required: Spotify application client secret
	HTTPClient   *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL      string       // Optional: Web API base URL (defaults to DefaultBaseURL, used for testing)
	TokenURL     string       // Optional: token endpoint (defaults to DefaultTokenURL, used for testing)
	UserAgent    string       // Optional: User-Agent header for catalog requests
	Logger       Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Spotify Web API operations.
//
// A Client holds at most one bearer token. It is obtained once through
// Auth().AcquireToken and reused for every catalog request; it is never
// refreshed.
type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	baseURL      string
	tokenURL     string
	userAgent    string
	logger       Logger

	token *Token

	auth    *AuthService
	search  *SearchService
	artists *ArtistService
}

const (
	// DefaultBaseURL is the default Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com/v1"

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "discog/1.0"
)

// NewClient creates a new Spotify API client.
//
// Returns an error if required configuration (ClientID, ClientSecret) is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("%w: ClientID is required", ErrInvalidConfig)
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: ClientSecret is required", ErrInvalidConfig)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   httpClient,
		baseURL:      baseURL,
		tokenURL:     tokenURL,
		userAgent:    userAgent,
		logger:       cfg.Logger,
	}

	c.auth = &AuthService{client: c}
	c.search = &SearchService{client: c}
	c.artists = &ArtistService{client: c}

	return c, nil
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService {
	return c.auth
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return c.search
}

// Artists returns the artist catalog service.
func (c *Client) Artists() *ArtistService {
	return c.artists
}

// SetToken sets the bearer token used for catalog requests.
func (c *Client) SetToken(token *Token) {
	c.token = token
}

// Token returns the current bearer token, or nil if none was acquired.
func (c *Client) Token() *Token {
	return c.token
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
