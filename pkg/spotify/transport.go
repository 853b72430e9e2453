package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// apiError is the error envelope the Web API returns on non-2xx responses.
type apiError struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// validator is implemented by response envelopes that check their own
// required fields after decoding.
type validator interface {
	validate() error
}

// get makes an authenticated GET request to the Web API and decodes the
// JSON body into out.
//
// It handles:
// - URL construction from base URL, path and encoded query parameters
// - The Bearer Authorization header
// - Mapping transport and non-2xx failures to *RequestError
// - Mapping malformed or incomplete bodies to *ResponseError
//
// Every catalog call goes through here. There are no retries.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if c.token == nil || c.token.AccessToken == "" {
		return ErrNoToken
	}

	endpoint := strings.TrimRight(c.baseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	c.logDebugf("spotify: GET %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &RequestError{Path: path, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Authorization", "Bearer "+c.token.AccessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{Path: path, StatusCode: resp.StatusCode}
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil {
			reqErr.Message = apiErr.Error.Message
		}
		c.logDebugf("spotify: GET %s returned %d", path, resp.StatusCode)
		return reqErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ResponseError{Path: path, Err: err}
	}

	if v, ok := out.(validator); ok {
		if err := v.validate(); err != nil {
			return &ResponseError{Path: path, Err: err}
		}
	}

	c.logDebugf("spotify: GET %s succeeded", path)
	return nil
}
