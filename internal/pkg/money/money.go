package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbols = map[currency.Unit]string{
	currency.INR: "₹",
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// Formatter renders whole currency amounts with locale grouping and no
// fraction digits.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

func NewFormatter(locale, code string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("could not parse locale %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("could not parse currency %q: %w", code, err)
	}

	symbol, ok := symbols[unit]
	if !ok {
		symbol = unit.String() + " "
	}

	return Formatter{printer: message.NewPrinter(tag), symbol: symbol}, nil
}

// Default formats Indian rupees for the en-IN locale.
func Default() Formatter {
	return Formatter{printer: message.NewPrinter(language.Make("en-IN")), symbol: symbols[currency.INR]}
}

func (f Formatter) Format(amount int64) string {
	if f.printer == nil {
		f = Default()
	}
	if amount < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%d", -amount)
	}
	return f.symbol + f.printer.Sprintf("%d", amount)
}
