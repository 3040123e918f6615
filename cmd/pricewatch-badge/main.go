package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alesr/pricewatch/internal/pkg/money"
)

type searchReport struct {
	Status   string `json:"status"`
	Count    int    `json:"count"`
	Error    string `json:"error"`
	Cheapest *struct {
		Site  string `json:"site"`
		Price int64  `json:"price"`
	} `json:"cheapest"`
}

type badge struct {
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	Color         string `json:"color"`
	CacheSeconds  int    `json:"cacheSeconds"`
}

func main() {
	input := flag.String("input", "", "Path to search JSON (from `pricewatch search --format json`).")
	output := flag.String("output", "", "Path to write Shields endpoint JSON.")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "both --input and --output are required")
		os.Exit(2)
	}

	rep, err := readSearchReport(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read search report: %v\n", err)
		os.Exit(1)
	}

	b := buildBadge(rep, money.Default())
	if err := writeBadge(*output, b); err != nil {
		fmt.Fprintf(os.Stderr, "could not write badge: %v\n", err)
		os.Exit(1)
	}
}

func readSearchReport(path string) (*searchReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rep searchReport
	if err := json.NewDecoder(f).Decode(&rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

func buildBadge(rep *searchReport, f money.Formatter) badge {
	b := badge{
		SchemaVersion: 1,
		Label:         "best price",
		Message:       "price unavailable",
		Color:         "9e9e9e",
		CacheSeconds:  3600,
	}

	switch {
	case rep == nil:
		return b
	case rep.Status == "failed":
		b.Message = "fetch failed"
		b.Color = "c62828"
	case rep.Cheapest == nil:
		b.Message = "no listings"
	default:
		b.Message = fmt.Sprintf("%s @ %s", f.Format(rep.Cheapest.Price), rep.Cheapest.Site)
		b.Color = "2e7d32"
	}
	return b
}

func writeBadge(path string, b badge) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}

	payload = append(payload, '\n')
	return os.WriteFile(path, payload, 0o644)
}
