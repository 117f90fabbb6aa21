package pipes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotAvailable is returned when the token provider could not be reached or
// did not produce a usable response (network error, non-2xx status, malformed
// payload). Callers never see raw HTTP status codes.
var ErrNotAvailable = errors.New("google token not available")

// AccessToken is the provider-minted Google token. It lives only for the
// duration of a single request and is never persisted.
type AccessToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenResponse is the body of the integration token endpoint.
type TokenResponse struct {
	Active      bool         `json:"active"`
	AccessToken *AccessToken `json:"access_token,omitempty"`
	Error       string       `json:"error,omitempty"`
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetGoogleToken exchanges the user identifier for a Google access token.
// Every call goes upstream; responses are never cached. The client does not
// retry, the calling layer decides what a failure means.
func (c *Client) GetGoogleToken(ctx context.Context, userID string) (*TokenResponse, error) {
	payload, err := json.Marshal(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/data-integrations/google/token", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrNotAvailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrNotAvailable
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, ErrNotAvailable
	}

	return &tokenResp, nil
}
