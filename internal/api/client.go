// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds construction options for the API client.
type ClientConfig struct {
	// BaseURL is the server root, e.g. "https://hub.example.com:8080".
	// The API prefix is appended internally.
	BaseURL string

	// SkipTLSVerify disables certificate verification (ssl_validation =
	// false in the config file).
	SkipTLSVerify bool

	// Timeout for any single request (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond caps outgoing requests; completion keystrokes
	// can otherwise fan out quickly (default: 10).
	RequestsPerSecond float64
}

// apiPrefix is the versioned path every endpoint lives under.
const apiPrefix = "/api/v1"

// =============================================================================
// CLIENT
// =============================================================================

// Client communicates with the remote resource-management API. It is
// created unauthenticated; Login or LoginWithToken must succeed before
// resource calls work.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *Cache
	log        *zap.Logger
	token      string
}

// New creates a client from cfg. A nil logger disables diagnostics.
func New(cfg ClientConfig, log *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 10
	}
	if log == nil {
		log = zap.NewNop()
	}

	transport := http.DefaultTransport
	if cfg.SkipTLSVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + apiPrefix,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(cfg.RequestsPerSecond)),
		log:     log,
	}
}

// SetCache attaches a response cache. Passing nil removes it.
func (c *Client) SetCache(cache *Cache) {
	c.cache = cache
}

// HTTPClient exposes the underlying HTTP client so option-value URL
// dereferencing shares the same timeout and TLS settings.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Token returns the current session token, empty before login.
func (c *Client) Token() string {
	return c.token
}

// Authenticated reports whether a login has succeeded.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// =============================================================================
// AUTHENTICATION
// =============================================================================

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates with username and password and stores the issued
// token on the client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// LoginWithToken installs a previously issued token and verifies it is
// still accepted by the server. On rejection the token is cleared.
func (c *Client) LoginWithToken(ctx context.Context, token string) error {
	c.token = token
	if err := c.do(ctx, http.MethodGet, "/auth/validate", nil, nil, nil); err != nil {
		c.token = ""
		return err
	}
	return nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// do performs one API request. body (when non-nil) is JSON-encoded; out
// (when non-nil) receives the decoded JSON response. Non-2xx responses
// become *Error with the server's message when one was sent.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	// Resource endpoints reject anonymous requests anyway; failing here
	// gives a clear error without a round trip.
	if c.token == "" && !strings.HasPrefix(path, "/auth/") {
		return ErrNotAuthenticated
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Status:    resp.StatusCode,
			Message:   serverMessage(data),
			RequestID: requestID,
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// getList performs a filtered GET, answering from the cache when one is
// attached and the entry is fresh.
func (c *Client) getList(ctx context.Context, path string, filters []Filter, out any) error {
	query := encodeFilters(filters)

	if c.cache != nil {
		key := path + "?" + query.Encode()
		if data, ok := c.cache.Get(key); ok {
			return json.Unmarshal(data, out)
		}
		if err := c.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
			return err
		}
		if data, err := json.Marshal(out); err == nil {
			c.cache.Put(key, data)
		}
		return nil
	}

	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// serverMessage extracts the error text from an API error body. The
// server sends {"error": "..."}; anything else is used verbatim when
// short enough to be a message rather than a page.
func serverMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	text := strings.TrimSpace(string(data))
	if len(text) > 0 && len(text) <= 200 && !strings.HasPrefix(text, "<") {
		return text
	}
	return ""
}
