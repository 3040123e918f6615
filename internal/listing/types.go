package listing

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Listing struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Site  string `json:"site"`
	URL   string `json:"url"`
	Image string `json:"image,omitempty"`
}

func (l Listing) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("could not validate listing: name is empty")
	}
	if l.Price <= 0 {
		return fmt.Errorf("could not validate listing %q: price must be positive", l.Name)
	}
	if strings.TrimSpace(l.Site) == "" {
		return fmt.Errorf("could not validate listing %q: site is empty", l.Name)
	}
	if !isAbsoluteURL(l.URL) {
		return fmt.Errorf("could not validate listing %q: url must be absolute", l.Name)
	}
	if l.Image != "" && !isAbsoluteURL(l.Image) {
		return fmt.Errorf("could not validate listing %q: image must be absolute", l.Name)
	}
	return nil
}

// HasImage reports whether an image block should be rendered for the listing.
func (l Listing) HasImage() bool {
	return l.Image != ""
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Envelope is the only unit exchanged between the provider and its consumers.
type Envelope struct {
	Success   bool       `json:"success"`
	Listings  []Listing  `json:"listings"`
	Count     int        `json:"count"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Error     string     `json:"error,omitempty"`
}

func NewSuccess(listings []Listing, now time.Time) Envelope {
	if listings == nil {
		listings = []Listing{}
	}
	ts := now.UTC().Truncate(time.Millisecond)
	return Envelope{
		Success:   true,
		Listings:  listings,
		Count:     len(listings),
		Timestamp: &ts,
	}
}

func NewFailure(message string) Envelope {
	if strings.TrimSpace(message) == "" {
		message = "unknown error"
	}
	return Envelope{
		Success:  false,
		Listings: []Listing{},
		Error:    message,
	}
}

// Validate checks the properties a consumer relies on after decoding.
func (e Envelope) Validate() error {
	if e.Count != len(e.Listings) {
		return fmt.Errorf("could not validate envelope: count %d does not match %d listings", e.Count, len(e.Listings))
	}
	if !e.Success {
		if strings.TrimSpace(e.Error) == "" {
			return errors.New("could not validate envelope: failure without error message")
		}
		if len(e.Listings) > 0 {
			return errors.New("could not validate envelope: failure carries listings")
		}
		return nil
	}
	if !IsSortedByPrice(e.Listings) {
		return errors.New("could not validate envelope: listings are not sorted by price")
	}
	return nil
}
