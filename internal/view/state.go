package view

import "github.com/alesr/pricewatch/internal/listing"

const (
	GenericErrorMessage = "An error occurred"
	EmptyMessage        = "No washing machines found. Try refreshing the page."
	LoadingMessage      = "Searching across multiple e-commerce sites..."
)

// State is one of Loading, Loaded or Failed.
type State interface {
	state()
}

type Loading struct{}

type Loaded struct {
	Listings []listing.Listing
}

type Failed struct {
	Message string
}

func (Loading) state() {}
func (Loaded) state()  {}
func (Failed) state()  {}
