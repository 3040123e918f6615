package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alesr/pricewatch/internal/listing"
	"github.com/alesr/pricewatch/internal/view"
)

type jsonReport struct {
	Status   string            `json:"status"`
	Cheapest *listing.Listing  `json:"cheapest,omitempty"`
	Listings []listing.Listing `json:"listings"`
	Count    int               `json:"count"`
	Error    string            `json:"error,omitempty"`
}

func PrintJSON(w io.Writer, s view.State) error {
	rep := jsonReport{Listings: []listing.Listing{}}

	switch st := s.(type) {
	case view.Loading:
		rep.Status = "loading"
	case view.Failed:
		rep.Status = "failed"
		rep.Error = st.Message
	case view.Loaded:
		rep.Status = "loaded"
		if len(st.Listings) > 0 {
			rep.Listings = st.Listings
		}
		rep.Count = len(rep.Listings)
		if cheapest, ok := view.Cheapest(s); ok {
			rep.Cheapest = &cheapest
		}
	default:
		return fmt.Errorf("could not encode json report: unknown state %T", s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("could not encode json report: %w", err)
	}
	return nil
}
