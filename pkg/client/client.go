// Package client is the typed Go client for the food-safety gateway. Every
// method issues exactly one HTTP call, parses the shared
// {success, data, error} envelope and normalizes all failure modes into an
// error carrying the backend's message when one is present.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the gateway. Zero retries: every failure is terminal for
// that call.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    Session
}

// New creates a client for the given gateway base URL. A nil session gets an
// in-memory one.
func New(baseURL string, session Session) *Client {
	if session == nil {
		session = NewMemorySession()
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: http.DefaultClient,
		Session:    session,
	}
}

// Logout clears the session.
func (c *Client) Logout() { c.Session.Clear() }

// envelope mirrors the gateway's uniform response body.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// do issues one JSON request and decodes the envelope's data into out.
// fallback is the per-operation error message used when the payload carries
// none.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, fallback string) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	return c.decode(resp, out, fallback)
}

// decode normalizes transport status, parse failures and the envelope's own
// success flag into a single error shape.
func (c *Client) decode(resp *http.Response, out interface{}, fallback string) error {
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: status %d", fallback, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		if env.Error != "" {
			return fmt.Errorf("%s", env.Error)
		}
		return fmt.Errorf("%s", fallback)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
	}
	return nil
}
