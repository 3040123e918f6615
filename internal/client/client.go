package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/alesr/pricewatch/internal/listing"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	searchPath     = "/api/search"
	maxBodyBytes   = 4 << 20
)

var (
	ErrTransport = errors.New("transport failure")
	ErrStatus    = errors.New("unexpected status")
	ErrDecode    = errors.New("malformed response")
)

type Client struct {
	http      *http.Client
	searchURL string
	userAgent string
}

func New(opts ...Option) (*Client, error) {
	var cfg options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	baseURL := cfg.baseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("could not create listing client: base url %q must be absolute", baseURL)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		http:      httpClient,
		searchURL: strings.TrimRight(u.String(), "/") + searchPath,
		userAgent: cfg.userAgent,
	}, nil
}

// FetchListings returns the decoded envelope for any 2xx response, including
// envelopes that report success=false. Transport failures, non-2xx statuses
// and malformed bodies are returned as errors wrapping ErrTransport, ErrStatus
// and ErrDecode respectively.
func (c *Client) FetchListings(ctx context.Context) (*listing.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch listings: %w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("could not fetch listings: %w: %s", ErrStatus, resp.Status)
	}

	var env listing.Envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&env); err != nil {
		return nil, fmt.Errorf("could not decode listings: %w: %w", ErrDecode, err)
	}

	if env.Listings == nil {
		env.Listings = []listing.Listing{}
	}
	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("could not decode listings: %w: %w", ErrDecode, err)
	}
	return &env, nil
}
