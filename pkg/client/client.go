// Package client is a typed Go client for the fablecraft REST API. It mirrors
// the server's endpoint structure and conventions: the acting user's id rides
// along as a query parameter on GET and DELETE requests and as a body field on
// POST and PUT, responses unwrap the resource key, and API failures surface as
// *APIError values.
//
// A Client is bound to one user at construction. Editors typically pair it
// with an autosave.Coordinator, closing a SaveFunc over UpdateScene.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client provides typed access to the REST API. It is safe for concurrent
// use by multiple goroutines.
type Client struct {
	baseURL    string
	userID     uuid.UUID
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (30 second timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client bound to one user. baseURL includes protocol and host
// without a trailing slash, e.g. "http://localhost:8080".
func New(baseURL string, userID uuid.UUID, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		userID:  userID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserID returns the user this client acts as.
func (c *Client) UserID() uuid.UUID {
	return c.userID
}

// do performs a request. GET and DELETE get the userId query parameter;
// callers of POST and PUT include userId in the body themselves.
func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	u := c.baseURL + path
	if method == http.MethodGet || method == http.MethodDelete {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		u += sep + "userId=" + url.QueryEscape(c.userID.String())
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		payload.Error = strings.TrimSpace(string(body))
	}
	return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
}

// ClientConfig holds the server-recommended auto-save intervals from
// GET /api/config.
type ClientConfig struct {
	AutoSave AutoSaveConfig `json:"autosave"`
}

// AutoSaveConfig is the autosave section of ClientConfig.
type AutoSaveConfig struct {
	DebounceDelayMs int64 `json:"debounceDelayMs"`
	FlushIntervalMs int64 `json:"flushIntervalMs"`
}

// DebounceDelay returns the debounce delay as a duration.
func (c AutoSaveConfig) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceDelayMs) * time.Millisecond
}

// FlushInterval returns the flush interval as a duration.
func (c AutoSaveConfig) FlushInterval() time.Duration {
	return time.Duration(c.FlushIntervalMs) * time.Millisecond
}

// Config fetches the server-recommended client configuration.
func (c *Client) Config(ctx context.Context) (*ClientConfig, error) {
	var cfg ClientConfig
	if err := c.do(ctx, http.MethodGet, "/api/config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
