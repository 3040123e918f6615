package client

import (
	"net/http"
	"time"
)

type Option func(*options)

type options struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

func WithBaseURL(baseURL string) Option {
	return func(opts *options) {
		opts.baseURL = baseURL
	}
}

func WithUserAgent(userAgent string) Option {
	return func(opts *options) {
		opts.userAgent = userAgent
	}
}

// WithTimeout bounds each request. It is ignored when WithHTTPClient is set.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(opts *options) {
		opts.httpClient = httpClient
	}
}
