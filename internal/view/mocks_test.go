package view

import (
	"context"

	"github.com/alesr/pricewatch/internal/listing"
)

var _ Fetcher = (*mockFetcher)(nil)

type mockFetcher struct {
	fetchListingsFunc func(context.Context) (*listing.Envelope, error)
}

func (m *mockFetcher) FetchListings(ctx context.Context) (*listing.Envelope, error) {
	return m.fetchListingsFunc(ctx)
}
