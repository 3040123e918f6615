package view

import (
	"fmt"

	"github.com/alesr/pricewatch/internal/listing"
	"github.com/alesr/pricewatch/internal/pkg/money"
)

// Card is a listing projected for display.
type Card struct {
	Site   string
	Name   string
	Price  string
	Image  string
	URL    string
	Action string
}

func NewCard(l listing.Listing, f money.Formatter) Card {
	return Card{
		Site:   l.Site,
		Name:   l.Name,
		Price:  f.Format(l.Price),
		Image:  l.Image,
		URL:    l.URL,
		Action: "View on " + l.Site,
	}
}

// Cheapest returns the first listing of a non-empty Loaded state. Listings
// arrive sorted, so it is the minimum price.
func Cheapest(s State) (listing.Listing, bool) {
	loaded, ok := s.(Loaded)
	if !ok || len(loaded.Listings) == 0 {
		return listing.Listing{}, false
	}
	return loaded.Listings[0], true
}

func IsEmpty(s State) bool {
	loaded, ok := s.(Loaded)
	return ok && len(loaded.Listings) == 0
}

func Grid(s State, f money.Formatter) []Card {
	loaded, ok := s.(Loaded)
	if !ok || len(loaded.Listings) == 0 {
		return nil
	}

	cards := make([]Card, 0, len(loaded.Listings))
	for _, l := range loaded.Listings {
		cards = append(cards, NewCard(l, f))
	}
	return cards
}

// Banner is the error text shown in Failed, or "" otherwise.
func Banner(s State) string {
	if failed, ok := s.(Failed); ok {
		return failed.Message
	}
	return ""
}

func CountLine(n int) string {
	if n == 1 {
		return "Found 1 washing machine sorted by price"
	}
	return fmt.Sprintf("Found %d washing machines sorted by price", n)
}
