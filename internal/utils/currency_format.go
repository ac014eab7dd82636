package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The receipt layout uses a single fixed locale and currency (Indian Rupees
// with Indian digit grouping), so the printer is package-level state.
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount formats a donation amount as a fixed-locale currency string.
// Example: 150000 returns "₹1,50,000.00". Deterministic for numeric input.
func FormatAmount(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Float64()
	return inrPrinter.Sprintf("₹%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatAmountPlain formats an amount with two decimal places and no currency
// symbol or grouping, for machine-facing fields.
func FormatAmountPlain(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}
