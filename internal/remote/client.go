// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

// Package remote adapts the hosted content platform: row CRUD over its
// REST interface, object storage, and the auth service. The site data
// store depends only on the small interfaces in sitedata; this package
// provides the real implementations.
package remote

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
)

// ErrNotConfigured indicates the remote platform credentials are absent.
// Callers degrade to built-in defaults and the local mirror.
var ErrNotConfigured = errors.New("remote content store is not configured")

// Config holds remote platform connection settings.
type Config struct {
	// URL is the base URL of the hosted content platform project.
	URL string

	// AnonKey is the public anonymous API key, safe for row reads.
	AnonKey string

	// ServiceKey is the privileged service key. Server-only: it must
	// never reach a browser. Empty disables admin auth operations.
	ServiceKey string

	// Timeout bounds each remote call. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout is the per-request timeout for remote calls.
const DefaultTimeout = 15 * time.Second

// Client is an HTTP client for the remote content platform.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
}

// NewClient creates a remote client. Returns ErrNotConfigured when the
// URL or anonymous key is missing so startup can degrade instead of
// crashing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" || cfg.AnonKey == "" {
		return nil, ErrNotConfigured
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// HasServiceKey reports whether privileged admin operations are available.
func (c *Client) HasServiceKey() bool {
	return c.serviceKey != ""
}

// request describes one remote call.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	raw    []byte // raw body, used instead of body when set
	// headers are added verbatim (Prefer, Content-Type overrides).
	headers map[string]string
	// bearer overrides the default key-based Authorization header,
	// used for calls on behalf of a signed-in user.
	bearer string
	// service selects the privileged service key instead of the anon key.
	service bool
}

// do executes a remote call and returns the response body.
// Non-2xx responses are decoded into an *APIError.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	var body io.Reader
	if req.raw != nil {
		body = bytes.NewReader(req.raw)
	} else if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	key := c.anonKey
	if req.service {
		if c.serviceKey == "" {
			return nil, ErrNotConfigured
		}
		key = c.serviceKey
	}
	httpReq.Header.Set("apikey", key)
	if req.bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.bearer)
	} else {
		httpReq.Header.Set("Authorization", "Bearer "+key)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling remote store: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading remote response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, data)
	}

	return data, nil
}
