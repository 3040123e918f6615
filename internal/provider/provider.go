package provider

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alesr/pricewatch/internal/listing"
)

const FailureMessage = "failed to fetch listings"

// Provider serves the mock listing catalog sorted by price. It holds no
// mutable state and is safe for concurrent use.
type Provider struct {
	latency time.Duration
	source  func() ([]listing.Listing, error)
	now     func() time.Time
	logger  *zap.Logger
}

func New(opts ...Option) *Provider {
	cfg := options{latency: DefaultLatency}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	p := &Provider{
		latency: cfg.latency,
		source:  cfg.source,
		now:     cfg.now,
		logger:  cfg.logger,
	}
	if p.source == nil {
		p.source = staticCatalog
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// FetchListings never returns a fault to the caller: any error or panic while
// building the catalog is turned into a failure envelope.
func (p *Provider) FetchListings(ctx context.Context) listing.Envelope {
	if err := p.wait(ctx); err != nil {
		p.logger.Warn("listing fetch interrupted", zap.Error(err))
		return listing.NewFailure(fmt.Sprintf("%s: %v", FailureMessage, err))
	}

	listings, err := p.build()
	if err != nil {
		p.logger.Error("could not build listings", zap.Error(err))
		return listing.NewFailure(FailureMessage)
	}
	return listing.NewSuccess(listings, p.now())
}

func (p *Provider) wait(ctx context.Context) error {
	if p.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *Provider) build() (out []listing.Listing, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("could not build listings: panic: %v", r)
		}
	}()

	items, err := p.source()
	if err != nil {
		return nil, fmt.Errorf("could not load catalog: %w", err)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	return listing.SortByPrice(items), nil
}

func staticCatalog() ([]listing.Listing, error) {
	return listing.Catalog(), nil
}
