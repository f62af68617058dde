// Package backend talks to the node API the two pages front: one GET for
// the health object and one POST for profile updates.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iliyamo/iavo-ui/internal/model"
)

// Client issues the outbound calls. The zero Timeout leaves requests bound
// only by the caller's context.
type Client struct {
	HealthURL        string
	ProfileUpdateURL string
	HTTP             *http.Client
}

// New builds a Client. A timeout of zero means no timeout.
func New(healthURL, profileUpdateURL string, timeout time.Duration) *Client {
	return &Client{
		HealthURL:        healthURL,
		ProfileUpdateURL: profileUpdateURL,
		HTTP:             &http.Client{Timeout: timeout},
	}
}

// Health fetches the backend status object.
func (c *Client) Health(ctx context.Context) (model.HealthStatus, error) {
	raw, err := c.do(ctx, http.MethodGet, c.HealthURL, nil)
	if err != nil {
		return model.HealthStatus{}, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.HealthStatus{}, fmt.Errorf("backend decode %s: %w", c.HealthURL, err)
	}
	if fields == nil {
		return model.HealthStatus{}, ErrNotObject
	}
	return model.HealthStatus{Fields: fields, Raw: raw}, nil
}

// UpdateProfile posts form as JSON and returns the raw response body.
func (c *Client) UpdateProfile(ctx context.Context, form model.ProfileForm) (json.RawMessage, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, c.ProfileUpdateURL, body)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Method: method, URL: url, Code: resp.StatusCode, Status: resp.Status}
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend read %s: %w", url, err)
	}
	return raw, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
