package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders an amount with thousands separators, e.g. $12,345.60.
func FormatCurrency(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("$%.2f", f)
}

func FormatPercent(pct *float64) string {
	if pct == nil {
		return "-"
	}

	return printer.Sprintf("%.2f%%", *pct)
}
