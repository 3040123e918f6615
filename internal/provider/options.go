package provider

import (
	"time"

	"go.uber.org/zap"

	"github.com/alesr/pricewatch/internal/listing"
)

const DefaultLatency = 1500 * time.Millisecond

type Option func(*options)

type options struct {
	latency time.Duration
	source  func() ([]listing.Listing, error)
	now     func() time.Time
	logger  *zap.Logger
}

// WithLatency sets the simulated fetch latency. Zero disables it.
func WithLatency(latency time.Duration) Option {
	return func(opts *options) {
		if latency < 0 {
			latency = 0
		}
		opts.latency = latency
	}
}

func WithSource(source func() ([]listing.Listing, error)) Option {
	return func(opts *options) {
		opts.source = source
	}
}

func WithClock(now func() time.Time) Option {
	return func(opts *options) {
		opts.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}
