package results

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders grouped decimal numbers for the en-US locale.
var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats an amount as a locale-aware two-decimal currency string,
// e.g. 1234.5 -> "$1,234.50".
func Currency(amount float64) string {
	return printer.Sprintf("$%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// dateLayouts are the input formats ShortDate understands, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ShortDate formats a stored date string as a short month/day/year, e.g.
// "Jan 2, 2026". Unparseable input is returned unmodified; formatting never
// fails a query.
func ShortDate(raw string) string {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("Jan 2, 2006")
		}
	}
	return raw
}
