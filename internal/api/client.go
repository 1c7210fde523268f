package api

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

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/logger"
)

// ErrRequestFailed covers network failure, non-success status and decode
// failure alike.
var ErrRequestFailed = errors.New("request failed")

// Client talks to the EduSync HTTP API
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the transport timeout for each round trip. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// apiError is the error body shape used by the server
type apiError struct {
	Detail string `json:"detail"`
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do performs a request and decodes a JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s %s: encode body: %v", ErrRequestFailed, method, path, err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(constants.RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqLog := logger.Request(requestID, method, path)

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		reqLog.Debug("API request failed", "error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}
	defer res.Body.Close()

	reqLog.Debug("API request", "status", res.StatusCode, "elapsed", time.Since(start))

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: %s %s: read body: %v", ErrRequestFailed, method, path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Detail != "" {
			return fmt.Errorf("%w: %s %s: status %d: %s", ErrRequestFailed, method, path, res.StatusCode, apiErr.Detail)
		}
		return fmt.Errorf("%w: %s %s: status %d", ErrRequestFailed, method, path, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: decode: %v", ErrRequestFailed, method, path, err)
	}
	return nil
}
