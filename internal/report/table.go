package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/alesr/pricewatch/internal/pkg/money"
	"github.com/alesr/pricewatch/internal/view"
)

// PrintTable renders exactly one of the error banner, the empty message or
// the best price summary followed by the listing grid.
func PrintTable(w io.Writer, s view.State, f money.Formatter) error {
	switch st := s.(type) {
	case view.Loading:
		fmt.Fprintln(w, view.LoadingMessage)
		return nil
	case view.Failed:
		fmt.Fprintf(w, "Error: %s\n", st.Message)
		return nil
	case view.Loaded:
	default:
		return fmt.Errorf("could not render table: unknown state %T", s)
	}

	if view.IsEmpty(s) {
		fmt.Fprintln(w, view.EmptyMessage)
		return nil
	}

	cheapest, _ := view.Cheapest(s)
	best := view.NewCard(cheapest, f)
	fmt.Fprintf(w, "Best price\n")
	fmt.Fprintf(w, "  %s  %s\n", best.Price, best.Name)
	fmt.Fprintf(w, "  %s: %s\n\n", best.Action, best.URL)

	cards := view.Grid(s, f)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"#", "SITE", "NAME", "PRICE", "IMAGE", "URL"})
	for i, card := range cards {
		image := "-"
		if card.Image != "" {
			image = "yes"
		}
		tw.AppendRow(table.Row{i + 1, card.Site, card.Name, card.Price, image, card.URL})
	}
	tw.AppendFooter(table.Row{"", "", view.CountLine(len(cards))})
	tw.Render()
	return nil
}
